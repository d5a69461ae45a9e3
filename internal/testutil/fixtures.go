package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/beanledger/beanledger/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateMember inserts a member with the given name, phone, and point
// balance, valid for one year. Returns the created member.
func (f *Fixtures) CreateMember(ctx context.Context, name, phone string, points int) models.Member {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.Member{
		ID:         primitive.NewObjectID(),
		Name:       name,
		NameCI:     text.Fold(name),
		Phone:      phone,
		ValidUntil: now.Add(365 * 24 * time.Hour),
		Points:     points,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := f.db.Collection("members").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("fixture: insert member: %v", err)
	}
	return m
}

// CreateExpiredMember inserts a member whose validity ended yesterday.
func (f *Fixtures) CreateExpiredMember(ctx context.Context, name, phone string, points int) models.Member {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.Member{
		ID:         primitive.NewObjectID(),
		Name:       name,
		NameCI:     text.Fold(name),
		Phone:      phone,
		ValidUntil: now.Add(-24 * time.Hour),
		Points:     points,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := f.db.Collection("members").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("fixture: insert expired member: %v", err)
	}
	return m
}

// CreateProduct inserts a product with the given price and point value.
func (f *Fixtures) CreateProduct(ctx context.Context, name string, price float64, pointValue int) models.Product {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Product{
		ID:         primitive.NewObjectID(),
		Name:       name,
		NameCI:     text.Fold(name),
		Price:      price,
		PointValue: pointValue,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := f.db.Collection("products").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("fixture: insert product: %v", err)
	}
	return p
}

// CreateCategory inserts a club category with the given name.
func (f *Fixtures) CreateCategory(ctx context.Context, name string) models.ClubCategory {
	f.t.Helper()

	now := time.Now().UTC()
	cat := models.ClubCategory{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("club_categories").InsertOne(ctx, cat); err != nil {
		f.t.Fatalf("fixture: insert category: %v", err)
	}
	return cat
}

// CreateTransaction inserts a transaction for the given member and
// product at the given time. CreatedAt is explicit so ordering and
// date-range tests can control it.
func (f *Fixtures) CreateTransaction(ctx context.Context, member models.Member, product models.Product, quantity int, createdAt time.Time) models.Transaction {
	f.t.Helper()

	txn := models.Transaction{
		ID:          primitive.NewObjectID(),
		MemberID:    member.ID,
		ProductID:   product.ID,
		Quantity:    quantity,
		TotalPrice:  product.Price * float64(quantity),
		PointsAdded: product.PointValue * quantity,
		Receipt:     "R-fixture",
		CreatedAt:   createdAt.UTC(),
	}
	if _, err := f.db.Collection("transactions").InsertOne(ctx, txn); err != nil {
		f.t.Fatalf("fixture: insert transaction: %v", err)
	}
	return txn
}
