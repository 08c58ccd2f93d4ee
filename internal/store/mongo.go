package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JonMunkholm/pharmacatalog/internal/core"
)

const productCollectionName = "products"

// ConnectMongo opens a client and verifies it with a ping.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return client, nil
}

// productDoc is the stored shape of a product. Field names match the
// documents written by earlier versions of the catalog.
type productDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Unit      string             `bson:"unit"`
	Company   string             `bson:"company"`
	Category  string             `bson:"category"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d productDoc) product() core.Product {
	return core.Product{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Unit:     d.Unit,
		Company:  d.Company,
		Category: d.Category,
	}
}

// MongoPrimary stores each product as one document in the products
// collection. Ids are ObjectID hex strings.
type MongoPrimary struct {
	collection *mongo.Collection
}

var _ Primary = (*MongoPrimary)(nil)

// NewMongoPrimary uses the products collection of db.
func NewMongoPrimary(db *mongo.Database) *MongoPrimary {
	return &MongoPrimary{collection: db.Collection(productCollectionName)}
}

func (s *MongoPrimary) Name() string { return "mongo" }

func (s *MongoPrimary) List(ctx context.Context) ([]core.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]core.Product, len(docs))
	for i, d := range docs {
		products[i] = d.product()
	}
	return products, nil
}

func (s *MongoPrimary) Insert(ctx context.Context, p core.Product) (string, error) {
	doc := productDoc{
		ID:        primitive.NewObjectID(),
		Name:      p.Name,
		Unit:      p.Unit,
		Company:   p.Company,
		Category:  p.Category,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("insert product %q: %w", p.Name, err)
	}
	return doc.ID.Hex(), nil
}

func (s *MongoPrimary) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid product id %q: %w", id, err)
	}
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}
