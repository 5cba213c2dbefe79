package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report flags a product. Deleting a report removes the product and every
// other report referencing it.
type Report struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID   string             `bson:"productId" json:"productId"`
	ProductName string             `bson:"productName,omitempty" json:"productName,omitempty"`
	SellerEmail string             `bson:"sellerEmail,omitempty" json:"sellerEmail,omitempty"`
	ReportedBy  string             `bson:"reportedBy,omitempty" json:"reportedBy,omitempty"`
	Reason      string             `bson:"reason,omitempty" json:"reason,omitempty"`
}
