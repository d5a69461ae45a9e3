// internal/domain/models/member.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a loyalty-program customer.
//
// Phone is the natural key for duplicate detection; a unique index on it
// is ensured at startup. NameCI holds the folded (lowercase,
// diacritics-stripped) name used for case-insensitive search.
type Member struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name           string              `bson:"name" json:"name"`
	NameCI         string              `bson:"name_ci" json:"-"`
	Phone          string              `bson:"phone" json:"phone"`
	ClubCategoryID *primitive.ObjectID `bson:"club_category_id,omitempty" json:"clubCategoryId,omitempty"`
	ValidUntil     time.Time           `bson:"valid_until" json:"validUntil"`
	Points         int                 `bson:"points" json:"points"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsValidAt reports whether the membership has not expired at t.
func (m Member) IsValidAt(t time.Time) bool {
	return !m.ValidUntil.Before(t)
}
