package product

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DeleteResult summarizes a delete-by-id.
type DeleteResult struct {
	Deleted int64 `json:"deletedCount"`
}

// productDoc is the bson shape. Decimal has no native bson encoding, so the
// price travels as its canonical string.
type productDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Price       string             `bson:"price"`
	Description string             `bson:"description"`
	Image       string             `bson:"image"`
}

func docFrom(p Product) productDoc {
	return productDoc{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price.String(),
		Description: p.Description,
		Image:       p.Image,
	}
}

func (d productDoc) product() (Product, error) {
	price := decimal.Zero
	if d.Price != "" {
		var err error
		price, err = decimal.NewFromString(d.Price)
		if err != nil {
			return Product{}, err
		}
	}
	return Product{
		ID:          d.ID,
		Title:       d.Title,
		Price:       price,
		Description: d.Description,
		Image:       d.Image,
	}, nil
}

type Repository struct {
	c *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{c: db.Collection("products")}
}

func (r *Repository) List(ctx context.Context) ([]Product, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	docs := []productDoc{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	products := make([]Product, 0, len(docs))
	for _, d := range docs {
		p, err := d.product()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// FindByID returns (nil, nil) when no product exists for the id. A malformed
// id is a store-level error.
func (r *Repository) FindByID(ctx context.Context, id string) (*Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var d productDoc
	err = r.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p, err := d.product()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Insert(ctx context.Context, p Product) (*Product, error) {
	res, err := r.c.InsertOne(ctx, docFrom(p))
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return &p, nil
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
