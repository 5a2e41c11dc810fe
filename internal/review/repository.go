package review

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository struct {
	c *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{c: db.Collection("reviews")}
}

func (r *Repository) List(ctx context.Context) ([]Review, error) {
	return r.find(ctx, bson.M{})
}

func (r *Repository) ListByEmail(ctx context.Context, email string) ([]Review, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *Repository) find(ctx context.Context, filter bson.M) ([]Review, error) {
	cur, err := r.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	reviews := []Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByEmail returns (nil, nil) when the email has no reviews.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*Review, error) {
	rv := &Review{}
	err := r.c.FindOne(ctx, bson.M{"email": email}).Decode(rv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *Repository) Insert(ctx context.Context, rv Review) (*Review, error) {
	res, err := r.c.InsertOne(ctx, rv)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rv.ID = oid
	}
	return &rv, nil
}
