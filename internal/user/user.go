package user

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a storefront account. Accounts are created on first
// self-registration; the only mutation afterwards is promoting the role to
// "admin". Users are never deleted.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}
