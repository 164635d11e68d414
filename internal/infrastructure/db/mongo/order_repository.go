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

const orderCollection = "orders"

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(orderCollection)}
}

type orderItemDoc struct {
	ProductID  string `bson:"product_id"`
	Quantity   int64  `bson:"quantity"`
	UnitAmount int64  `bson:"unit_amount"`
}

type orderDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	UserID            string             `bson:"user_id"`
	Items             []orderItemDoc     `bson:"items"`
	TotalAmount       int64              `bson:"total_amount"`
	ProviderSessionID string             `bson:"provider_session_id"`
	CreatedAt         int64              `bson:"created_at"`
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	items := make([]orderItemDoc, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemDoc{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitAmount: item.UnitAmount,
		})
	}

	doc := orderDoc{
		UserID:            order.UserID,
		Items:             items,
		TotalAmount:       order.TotalAmount,
		ProviderSessionID: order.ProviderSessionID,
		CreatedAt:         order.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	created := *order
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *OrderRepository) FindByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	cursor, err := r.coll.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.M{"created_at": -1}),
	)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := make([]domain.Order, 0)
	for cursor.Next(ctx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, fromOrderDoc(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

func fromOrderDoc(doc orderDoc) domain.Order {
	items := make([]domain.OrderItem, 0, len(doc.Items))
	for _, item := range doc.Items {
		items = append(items, domain.OrderItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitAmount: item.UnitAmount,
		})
	}
	return domain.Order{
		ID:                doc.ID.Hex(),
		UserID:            doc.UserID,
		Items:             items,
		TotalAmount:       doc.TotalAmount,
		ProviderSessionID: doc.ProviderSessionID,
		CreatedAt:         unixToTime(doc.CreatedAt),
	}
}
