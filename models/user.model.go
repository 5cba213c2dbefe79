package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"` // unique key; never removed, only soft-deleted

	// Role & Status
	Role       string `bson:"role" json:"role"` // buyer, seller, admin
	IsVerified bool   `bson:"isVerified" json:"isVerified"`
	IsDeleted  bool   `bson:"isDeleted" json:"isDeleted"`
}
