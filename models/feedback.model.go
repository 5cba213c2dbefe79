package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is free-form and append-only, no relationships.
type Feedback struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Email   string             `bson:"email,omitempty" json:"email,omitempty"`
	Rating  int                `bson:"rating,omitempty" json:"rating,omitempty"`
	Comment string             `bson:"comment,omitempty" json:"comment,omitempty"`
}
