package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking holds at most one entry per (email, productId) pair. The guard is
// an existence check before insert, not a store-level uniqueness constraint.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	ProductID   string             `bson:"productId" json:"productId"`
	BuyerName   string             `bson:"buyerName,omitempty" json:"buyerName,omitempty"`
	ProductName string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
}
