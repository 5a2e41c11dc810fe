package review

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is customer feedback. Reviews are write-once: there is no update or
// delete path.
type Review struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Text  string             `bson:"text" json:"text"`
	Star  int                `bson:"star" json:"star"`
}
