package product

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry. Prices are decimals end to end; they are
// persisted as canonical strings (see repository.go).
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty"`
	Title       string             `json:"title"`
	Price       decimal.Decimal    `json:"price"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
}
