package repository

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/model"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d userDocument) toModel() *model.User {
	return &model.User{
		ID:        d.ID.Hex(),
		Username:  d.Username,
		Email:     d.Email,
		Password:  d.Password,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type productDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	URL       string             `bson:"url"`
	Price     float64            `bson:"price"`
	Rate      float64            `bson:"rate"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d productDocument) toModel() model.Product {
	return model.Product{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		URL:       d.URL,
		Price:     d.Price,
		Rate:      d.Rate,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type orderDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	User           primitive.ObjectID `bson:"user"`
	Address        bson.M             `bson:"address"`
	ContactDetails string             `bson:"contactDetails"`
	OrderedItems   bson.A             `bson:"orderedItems"`
	TotalPrice     float64            `bson:"totalPrice"`
	OrderDate      time.Time          `bson:"orderDate"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

func (d orderDocument) toModel() model.Order {
	address, _ := plain(d.Address).(map[string]interface{})
	items, _ := plain(d.OrderedItems).([]interface{})
	if items == nil {
		items = []interface{}{}
	}
	return model.Order{
		ID:             d.ID.Hex(),
		UserID:         d.User.Hex(),
		Address:        address,
		ContactDetails: d.ContactDetails,
		OrderedItems:   items,
		TotalPrice:     d.TotalPrice,
		OrderDate:      d.OrderDate,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// userOrderDocument is an order joined with its owner by $lookup.
type userOrderDocument struct {
	Order orderDocument  `bson:",inline"`
	Owner []userDocument `bson:"owner"`
}

func objectID(hex string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("parse object id %q: %w", hex, err)
	}
	return oid, nil
}

// plain converts decoded BSON containers into maps and slices so that
// free-form fields encode as regular JSON objects and arrays.
func plain(v interface{}) interface{} {
	switch t := v.(type) {
	case bson.M:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = plain(val)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = plain(val)
		}
		return out
	case bson.D:
		out := make(map[string]interface{}, len(t))
		for _, e := range t {
			out[e.Key] = plain(e.Value)
		}
		return out
	case bson.A:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = plain(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = plain(val)
		}
		return out
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time()
	default:
		return v
	}
}
