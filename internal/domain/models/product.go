// internal/domain/models/product.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a purchasable item. PointValue is the number of loyalty
// points earned per unit purchased. Name uniqueness is case-insensitive
// via NameCI.
type Product struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	NameCI     string             `bson:"name_ci" json:"-"`
	Price      float64            `bson:"price" json:"price"`
	PointValue int                `bson:"point_value" json:"pointValue"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
