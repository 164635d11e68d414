package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/modabay/storefront-api/internal/core/domain"
)

const productCollection = "products"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productCollection)}
}

type productDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Image       string             `bson:"image"`
	Category    string             `bson:"category"`
	IsFeatured  bool               `bson:"is_featured"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	var doc productDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	product := fromProductDoc(doc)
	return &product, nil
}

func (r *ProductRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			// Malformed references cannot match anything; skip them like any
			// other dangling cart entry.
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []domain.Product{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *ProductRepository) FindFeatured(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, bson.M{"is_featured": true})
}

func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *ProductRepository) Sample(ctx context.Context, n int) ([]domain.Product, error) {
	cursor, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$sample", Value: bson.M{"size": n}}},
	})
	if err != nil {
		return nil, fmt.Errorf("sample products: %w", err)
	}
	return decodeProducts(ctx, cursor)
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	doc := productDoc{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Image:       product.Image,
		Category:    product.Category,
		IsFeatured:  product.IsFeatured,
		CreatedAt:   product.CreatedAt.Unix(),
		UpdatedAt:   product.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *product
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) SetFeatured(ctx context.Context, id string, featured bool) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	var doc productDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"is_featured": featured}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("set featured: %w", err)
	}

	product := fromProductDoc(doc)
	return &product, nil
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]domain.Product, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	return decodeProducts(ctx, cursor)
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]domain.Product, error) {
	defer cursor.Close(ctx)

	products := make([]domain.Product, 0)
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, fromProductDoc(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func fromProductDoc(doc productDoc) domain.Product {
	return domain.Product{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Description: doc.Description,
		Price:       doc.Price,
		Image:       doc.Image,
		Category:    doc.Category,
		IsFeatured:  doc.IsFeatured,
		CreatedAt:   unixToTime(doc.CreatedAt),
		UpdatedAt:   unixToTime(doc.UpdatedAt),
	}
}
