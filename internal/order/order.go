package order

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a placed checkout. The email is the verified caller who placed
// it; completion is flipped later by an admin.
type Order struct {
	ID         primitive.ObjectID `json:"id,omitempty"`
	Address    string             `json:"address"`
	TotalItems int                `json:"totalItems"`
	Total      decimal.Decimal    `json:"total"`
	Email      string             `json:"email"`
	Completed  bool               `json:"completed"`
}
