// internal/app/store/products/productstore.go
package productstore

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

var ErrDuplicateProduct = errors.New("a product with this name already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("products")}
}

func (s *Store) Create(ctx context.Context, p models.Product) (models.Product, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.NameCI = text.Fold(p.Name)
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, p)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Product{}, ErrDuplicateProduct
		}
		return models.Product{}, err
	}
	return p, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var p models.Product
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// NameExistsForOther checks whether a product with the folded name
// exists, excluding the record being edited. Editing a product to its
// own unchanged name must not trip the duplicate check.
func (s *Store) NameExistsForOther(ctx context.Context, nameCI string, excludeID primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{
		"name_ci": nameCI,
		"_id":     bson.M{"$ne": excludeID},
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Update holds the optional fields of a partial product update.
type Update struct {
	Name       *string
	Price      *float64
	PointValue *int
}

// Apply performs a partial update and returns the updated product.
// Returns mongo.ErrNoDocuments if the product does not exist.
func (s *Store) Apply(ctx context.Context, id primitive.ObjectID, upd Update) (models.Product, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
		set["name_ci"] = text.Fold(*upd.Name)
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.PointValue != nil {
		set["point_value"] = *upd.PointValue
	}

	var p models.Product
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&p)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Product{}, ErrDuplicateProduct
		}
		return models.Product{}, err
	}
	return p, nil
}

// All returns every product, unfiltered, sorted by folded name.
func (s *Store) All(ctx context.Context) ([]models.Product, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
