package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SellerEmail string             `bson:"sellerEmail" json:"sellerEmail"`
	SellerName  string             `bson:"sellerName,omitempty" json:"sellerName,omitempty"`
	CategoryID  string             `bson:"categoryId" json:"categoryId"`

	Name          string  `bson:"name" json:"name"`
	Price         float64 `bson:"price" json:"price"`
	OriginalPrice float64 `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Condition     string  `bson:"condition,omitempty" json:"condition,omitempty"` // new, used
	Description   string  `bson:"description,omitempty" json:"description,omitempty"`
	Location      string  `bson:"location,omitempty" json:"location,omitempty"`
	ImageURL      string  `bson:"imageURL,omitempty" json:"imageURL,omitempty"`
	YearsOfUse    string  `bson:"yearsOfUse,omitempty" json:"yearsOfUse,omitempty"`

	IsSold       bool      `bson:"isSold" json:"isSold"`
	IsAdvertised bool      `bson:"isAdvertised" json:"isAdvertised"`
	PostedAt     time.Time `bson:"postedAt" json:"postedAt"` // server-assigned on insert
}
