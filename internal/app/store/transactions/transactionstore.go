// internal/app/store/transactions/transactionstore.go
package transactionstore

import (
	"context"
	"time"

	"github.com/beanledger/beanledger/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("transactions")}
}

// Create persists a new purchase record. Transactions are immutable;
// this is the only write path for the collection. The receipt number is
// generated here so every persisted transaction carries one.
func (s *Store) Create(ctx context.Context, txn models.Transaction) (models.Transaction, error) {
	txn.ID = primitive.NewObjectID()
	txn.Receipt = "R-" + uuid.New().String()[:8]
	txn.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, txn); err != nil {
		return models.Transaction{}, err
	}
	return txn, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Transaction, error) {
	var txn models.Transaction
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&txn)
	if err != nil {
		return models.Transaction{}, err
	}
	return txn, nil
}

// Find returns transactions matching the filter, newest first.
func (s *Store) Find(ctx context.Context, filter bson.M) ([]models.Transaction, error) {
	cur, err := s.c.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var txns []models.Transaction
	if err := cur.All(ctx, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}
