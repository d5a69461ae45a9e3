// internal/app/store/categories/categorystore.go
package categorystore

import (
	"context"
	"errors"
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

var ErrDuplicateCategory = errors.New("a club category with this name already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("club_categories")}
}

func (s *Store) Create(ctx context.Context, cat models.ClubCategory) (models.ClubCategory, error) {
	now := time.Now().UTC()
	cat.ID = primitive.NewObjectID()
	cat.NameCI = text.Fold(cat.Name)
	cat.CreatedAt = now
	cat.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, cat)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.ClubCategory{}, ErrDuplicateCategory
		}
		return models.ClubCategory{}, err
	}
	return cat, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.ClubCategory, error) {
	var cat models.ClubCategory
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cat)
	if err != nil {
		return models.ClubCategory{}, err
	}
	return cat, nil
}

// GetByName resolves a category by its case-insensitive name. Member
// create/edit supply the category by name, not id.
func (s *Store) GetByName(ctx context.Context, name string) (models.ClubCategory, error) {
	var cat models.ClubCategory
	err := s.c.FindOne(ctx, bson.M{"name_ci": text.Fold(name)}).Decode(&cat)
	if err != nil {
		return models.ClubCategory{}, err
	}
	return cat, nil
}

// All returns every club category sorted by folded name.
func (s *Store) All(ctx context.Context) ([]models.ClubCategory, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var cats []models.ClubCategory
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}
