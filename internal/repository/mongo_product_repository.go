package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/db"
	"storefront/internal/model"
)

type mongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository builds a MongoDB-backed repository.
func NewMongoProductRepository(database *mongo.Database) ProductRepository {
	return &mongoProductRepository{coll: database.Collection(db.ProductsCollection)}
}

func (r *mongoProductRepository) Create(ctx context.Context, product *model.Product) error {
	now := time.Now().UTC()
	doc := productDocument{
		ID:        primitive.NewObjectID(),
		Title:     product.Title,
		URL:       product.URL,
		Price:     product.Price,
		Rate:      product.Rate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	*product = doc.toModel()
	return nil
}

func (r *mongoProductRepository) ListSummaries(ctx context.Context) ([]model.ProductSummary, error) {
	opts := options.Find().SetProjection(bson.D{
		{Key: "_id", Value: 0},
		{Key: "title", Value: 1},
		{Key: "url", Value: 1},
		{Key: "price", Value: 1},
		{Key: "rate", Value: 1},
	})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)

	summaries := []model.ProductSummary{}
	if err := cur.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return summaries, nil
}

// SearchByTitle passes pattern to the server as a regular expression, so an
// empty pattern matches every title.
func (r *mongoProductRepository) SearchByTitle(ctx context.Context, pattern string) ([]model.Product, error) {
	filter := bson.M{"title": primitive.Regex{Pattern: pattern, Options: "i"}}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer cur.Close(ctx)

	var docs []productDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	products := make([]model.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toModel())
	}
	return products, nil
}
