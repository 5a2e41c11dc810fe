package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateResult summarizes a role-grant write.
type UpdateResult struct {
	Matched  int64 `json:"matchedCount"`
	Modified int64 `json:"modifiedCount"`
	Upserted int64 `json:"upsertedCount"`
}

type Repository struct {
	c *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{c: db.Collection("users")}
}

func (r *Repository) List(ctx context.Context) ([]User, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := []User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByEmail returns (nil, nil) when no user exists for the email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	u := &User{}
	err := r.c.FindOne(ctx, bson.M{"email": email}).Decode(u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Repository) Insert(ctx context.Context, name, email string) (*User, error) {
	u := &User{Name: name, Email: email}
	res, err := r.c.InsertOne(ctx, u)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return u, nil
}

// GrantAdmin sets the role for the email to "admin", creating the user
// document if it does not exist yet.
func (r *Repository) GrantAdmin(ctx context.Context, email string) (*UpdateResult, error) {
	res, err := r.c.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": "admin"}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return &UpdateResult{
		Matched:  res.MatchedCount,
		Modified: res.ModifiedCount,
		Upserted: res.UpsertedCount,
	}, nil
}

// RoleByEmail implements authz.RoleFinder. An unknown user has no role.
func (r *Repository) RoleByEmail(ctx context.Context, email string) (string, error) {
	u, err := r.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", nil
	}
	return u.Role, nil
}
