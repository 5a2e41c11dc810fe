package order

import (
	"context"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateResult struct {
	Matched  int64 `json:"matchedCount"`
	Modified int64 `json:"modifiedCount"`
	Upserted int64 `json:"upsertedCount"`
}

type DeleteResult struct {
	Deleted int64 `json:"deletedCount"`
}

// orderDoc is the bson shape; the total travels as a canonical decimal
// string, same convention as the product price.
type orderDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Address    string             `bson:"address"`
	TotalItems int                `bson:"totalItems"`
	Total      string             `bson:"total"`
	Email      string             `bson:"email"`
	Completed  bool               `bson:"completed"`
}

func docFrom(o Order) orderDoc {
	return orderDoc{
		ID:         o.ID,
		Address:    o.Address,
		TotalItems: o.TotalItems,
		Total:      o.Total.String(),
		Email:      o.Email,
		Completed:  o.Completed,
	}
}

func (d orderDoc) order() (Order, error) {
	total := decimal.Zero
	if d.Total != "" {
		var err error
		total, err = decimal.NewFromString(d.Total)
		if err != nil {
			return Order{}, err
		}
	}
	return Order{
		ID:         d.ID,
		Address:    d.Address,
		TotalItems: d.TotalItems,
		Total:      total,
		Email:      d.Email,
		Completed:  d.Completed,
	}, nil
}

type Repository struct {
	c *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{c: db.Collection("orders")}
}

func (r *Repository) List(ctx context.Context) ([]Order, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	docs := []orderDoc{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	orders := make([]Order, 0, len(docs))
	for _, d := range docs {
		o, err := d.order()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *Repository) Insert(ctx context.Context, o Order) (*Order, error) {
	res, err := r.c.InsertOne(ctx, docFrom(o))
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = oid
	}
	return &o, nil
}

func (r *Repository) DeleteByID(ctx context.Context, id string) (*DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	return &DeleteResult{Deleted: res.DeletedCount}, nil
}

// SetCompleted flips the completion flag with an upsert. Applying the same
// value twice converges to the same document state.
func (r *Repository) SetCompleted(ctx context.Context, id string, completed bool) (*UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	res, err := r.c.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"completed": completed}},
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
