package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is seeded at startup and read-only from the API.
type Category struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"categoryName" json:"categoryName"`
	Slug     string             `bson:"slug" json:"slug"`
	ImageURL string             `bson:"imageURL,omitempty" json:"imageURL,omitempty"`
}
