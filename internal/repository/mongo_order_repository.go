package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/db"
	"storefront/internal/model"
)

type mongoOrderRepository struct {
	coll *mongo.Collection
}

// NewMongoOrderRepository builds a MongoDB-backed repository.
func NewMongoOrderRepository(database *mongo.Database) OrderRepository {
	return &mongoOrderRepository{coll: database.Collection(db.OrdersCollection)}
}

func (r *mongoOrderRepository) Create(ctx context.Context, order *model.Order) error {
	owner, err := objectID(order.UserID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	orderDate := order.OrderDate
	if orderDate.IsZero() {
		orderDate = now
	}
	doc := orderDocument{
		ID:             primitive.NewObjectID(),
		User:           owner,
		Address:        bson.M(order.Address),
		ContactDetails: order.ContactDetails,
		OrderedItems:   bson.A(order.OrderedItems),
		TotalPrice:     order.TotalPrice,
		OrderDate:      orderDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	*order = doc.toModel()
	return nil
}

// ListByUser joins each order with its owner from the users collection.
func (r *mongoOrderRepository) ListByUser(ctx context.Context, userID string) ([]model.UserOrder, error) {
	owner, err := objectID(userID)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "user", Value: owner}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: db.UsersCollection},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
		}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate orders: %w", err)
	}
	defer cur.Close(ctx)

	var docs []userOrderDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	orders := make([]model.UserOrder, 0, len(docs))
	for _, d := range docs {
		uo := model.UserOrder{Order: d.Order.toModel()}
		if len(d.Owner) > 0 {
			uo.User = d.Owner[0].toModel()
		}
		orders = append(orders, uo)
	}
	return orders, nil
}
