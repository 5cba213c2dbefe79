package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed charge. Inserting one also flips the
// referenced product's isSold flag.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	ProductID     string             `bson:"productId" json:"productId"`
	ProductName   string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
