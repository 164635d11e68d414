package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/modabay/storefront-api/internal/core/domain"
)

const couponCollection = "coupons"

type CouponRepository struct {
	coll *mongo.Collection
}

func NewCouponRepository(db *mongo.Database) *CouponRepository {
	return &CouponRepository{coll: db.Collection(couponCollection)}
}

type couponDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Code               string             `bson:"code"`
	DiscountPercentage int                `bson:"discount_percentage"`
	ExpirationDate     int64              `bson:"expiration_date"`
	IsActive           bool               `bson:"is_active"`
	UserID             string             `bson:"user_id"`
	CreatedAt          int64              `bson:"created_at"`
}

func (r *CouponRepository) FindActiveByUser(ctx context.Context, userID string) (*domain.Coupon, error) {
	return r.findOne(ctx, bson.M{"user_id": userID, "is_active": true})
}

func (r *CouponRepository) FindActiveByCode(ctx context.Context, code, userID string) (*domain.Coupon, error) {
	return r.findOne(ctx, bson.M{"code": code, "user_id": userID, "is_active": true})
}

func (r *CouponRepository) Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	doc := couponDoc{
		Code:               coupon.Code,
		DiscountPercentage: coupon.DiscountPercentage,
		ExpirationDate:     coupon.ExpirationDate.Unix(),
		IsActive:           coupon.IsActive,
		UserID:             coupon.UserID,
		CreatedAt:          coupon.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert coupon: %w", err)
	}

	created := *coupon
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CouponRepository) Deactivate(ctx context.Context, code, userID string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"code": code, "user_id": userID},
		bson.M{"$set": bson.M{"is_active": false}},
	)
	if err != nil {
		return fmt.Errorf("deactivate coupon: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCouponNotFound
	}
	return nil
}

func (r *CouponRepository) findOne(ctx context.Context, filter bson.M) (*domain.Coupon, error) {
	var doc couponDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCouponNotFound
		}
		return nil, fmt.Errorf("find coupon: %w", err)
	}

	return &domain.Coupon{
		ID:                 doc.ID.Hex(),
		Code:               doc.Code,
		DiscountPercentage: doc.DiscountPercentage,
		ExpirationDate:     unixToTime(doc.ExpirationDate),
		IsActive:           doc.IsActive,
		UserID:             doc.UserID,
		CreatedAt:          unixToTime(doc.CreatedAt),
	}, nil
}
