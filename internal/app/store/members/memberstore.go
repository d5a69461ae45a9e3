// internal/app/store/members/memberstore.go
package memberstore

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/beanledger/beanledger/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrDuplicatePhone     = errors.New("a member with this phone already exists")
	ErrInsufficientPoints = errors.New("insufficient points")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("members")}
}

func (s *Store) Create(ctx context.Context, m models.Member) (models.Member, error) {
	now := time.Now().UTC()
	m.ID = primitive.NewObjectID()
	m.NameCI = text.Fold(m.Name)
	m.CreatedAt = now
	m.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, m)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Member{}, ErrDuplicatePhone
		}
		return models.Member{}, err
	}
	return m, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Member, error) {
	var m models.Member
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		return models.Member{}, err
	}
	return m, nil
}

// PhoneExists checks whether any member is registered with this phone.
func (s *Store) PhoneExists(ctx context.Context, phone string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"phone": phone}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PhoneExistsForOther checks whether the phone is registered to a member
// other than excludeID. Used by edit validation so a member can keep
// their own phone.
func (s *Store) PhoneExistsForOther(ctx context.Context, phone string, excludeID primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{
		"phone": phone,
		"_id":   bson.M{"$ne": excludeID},
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Update holds the optional fields of a partial member update. Nil
// pointers are left untouched. ClearCategory removes the club category
// reference; it wins over ClubCategoryID.
type Update struct {
	Name           *string
	Phone          *string
	ClubCategoryID *primitive.ObjectID
	ClearCategory  bool
	ValidUntil     *time.Time
	Points         *int
}

// Apply performs a partial update and returns the updated member.
// Returns mongo.ErrNoDocuments if the member does not exist.
func (s *Store) Apply(ctx context.Context, id primitive.ObjectID, upd Update) (models.Member, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	unset := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
		set["name_ci"] = text.Fold(*upd.Name)
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.ClearCategory {
		unset["club_category_id"] = ""
	} else if upd.ClubCategoryID != nil {
		set["club_category_id"] = *upd.ClubCategoryID
	}
	if upd.ValidUntil != nil {
		set["valid_until"] = upd.ValidUntil.UTC()
	}
	if upd.Points != nil {
		set["points"] = *upd.Points
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var m models.Member
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&m)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Member{}, ErrDuplicatePhone
		}
		return models.Member{}, err
	}
	return m, nil
}

// AddPoints increments the member's point balance by delta. $inc treats
// an absent points field as zero, which matches the accrual rule for
// legacy documents without a balance.
func (s *Store) AddPoints(ctx context.Context, id primitive.ObjectID, delta int) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"points": delta},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeductPoints decrements the balance by points, guarded so the balance
// can never go negative even under concurrent redemptions. Returns
// ErrInsufficientPoints when the member exists but the balance is short,
// mongo.ErrNoDocuments when the member does not exist.
func (s *Store) DeductPoints(ctx context.Context, id primitive.ObjectID, points int) error {
	res, err := s.c.UpdateOne(ctx, bson.M{
		"_id":    id,
		"points": bson.M{"$gte": points},
	}, bson.M{
		"$inc": bson.M{"points": -points},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Distinguish "not found" from "not enough points".
		if exErr := s.c.FindOne(ctx, bson.M{"_id": id}).Err(); exErr == mongo.ErrNoDocuments {
			return mongo.ErrNoDocuments
		} else if exErr != nil {
			return exErr
		}
		return ErrInsufficientPoints
	}
	return nil
}

// Find returns members matching the given filter with optional find
// options. Callers build the filter (validity window, category, ...).
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Member, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []models.Member
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Search performs a case-insensitive substring match against member name
// or phone. The query is folded for the name_ci comparison and
// regex-escaped so user input is never interpreted as a pattern.
func (s *Store) Search(ctx context.Context, query string) ([]models.Member, error) {
	nameNeedle := regexp.QuoteMeta(text.Fold(query))
	phoneNeedle := regexp.QuoteMeta(query)
	return s.Find(ctx, bson.M{
		"$or": []bson.M{
			{"name_ci": bson.M{"$regex": nameNeedle}},
			{"phone": bson.M{"$regex": phoneNeedle, "$options": "i"}},
		},
	})
}
