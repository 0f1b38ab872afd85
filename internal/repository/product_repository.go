package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductDocument is the stored form of a catalog product.
// Prices are kept as Decimal128 so no precision is lost at rest.
type ProductDocument struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty"`
	ProductID      int64                `bson:"product_id"`
	Name           string               `bson:"name"`
	Price          primitive.Decimal128 `bson:"price"`
	AvailableCount int                  `bson:"available_count"`
	Position       int                  `bson:"position"`
	UpdatedAt      time.Time            `bson:"updated_at"`
}

func newProductDocument(p model.Product, position int, now time.Time) (ProductDocument, error) {
	price, err := primitive.ParseDecimal128(p.Price.String())
	if err != nil {
		return ProductDocument{}, fmt.Errorf("product %d: price %s: %w", p.ID, p.Price, err)
	}
	return ProductDocument{
		ProductID:      p.ID,
		Name:           p.Name,
		Price:          price,
		AvailableCount: p.AvailableCount,
		Position:       position,
		UpdatedAt:      now,
	}, nil
}

// Product converts the document back to the domain type.
func (d ProductDocument) Product() (model.Product, error) {
	price, err := decimal.NewFromString(d.Price.String())
	if err != nil {
		return model.Product{}, fmt.Errorf("product %d: stored price %q: %w", d.ProductID, d.Price.String(), err)
	}
	return model.Product{
		ID:             d.ProductID,
		Name:           d.Name,
		Price:          price,
		AvailableCount: d.AvailableCount,
	}, nil
}

// ProductRepository stores the catalog in the products collection.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a product repository on db.Products.
func NewProductRepository(db *MongoDB) *ProductRepository {
	return &ProductRepository{collection: db.Products}
}

// List returns the catalog in the order it was stored.
func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []ProductDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(docs))
	for _, doc := range docs {
		p, err := doc.Product()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// ReplaceAll swaps the stored catalog for products.
func (r *ProductRepository) ReplaceAll(ctx context.Context, products []model.Product) error {
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(products))
	for i, p := range products {
		doc, err := newProductDocument(p, i, now)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	return err
}

// Count returns the number of stored products.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
