// internal/domain/models/transaction.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction is an immutable record of one purchase event. TotalPrice
// and PointsAdded are computed at creation time from the product's price
// and point value; later product edits never touch historical
// transactions. There is no update or delete path for transactions.
type Transaction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberID    primitive.ObjectID `bson:"member_id" json:"memberId"`
	ProductID   primitive.ObjectID `bson:"product_id" json:"productId"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	TotalPrice  float64            `bson:"total_price" json:"totalPrice"`
	PointsAdded int                `bson:"points_added" json:"pointsAdded"`
	Receipt     string             `bson:"receipt" json:"receipt"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// ExpandedTransaction is a transaction with its related member and
// product documents joined inline, as returned by the list query.
type ExpandedTransaction struct {
	Transaction `bson:",inline"`

	Member  *Member  `bson:"member,omitempty" json:"member,omitempty"`
	Product *Product `bson:"product,omitempty" json:"product,omitempty"`
}
