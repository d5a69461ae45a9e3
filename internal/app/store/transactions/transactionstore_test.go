package transactionstore

import (
	"strings"
	"testing"
	"time"

	"github.com/beanledger/beanledger/internal/domain/models"
	"github.com/beanledger/beanledger/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCreateAssignsReceiptAndTimestamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)

	created, err := store.Create(ctx, models.Transaction{
		MemberID:    primitive.NewObjectID(),
		ProductID:   primitive.NewObjectID(),
		Quantity:    2,
		TotalPrice:  9,
		PointsAdded: 2,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("expected an assigned id")
	}
	if !strings.HasPrefix(created.Receipt, "R-") {
		t.Errorf("receipt = %q, want R- prefix", created.Receipt)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}

	// Receipts differ between transactions.
	second, err := store.Create(ctx, models.Transaction{
		MemberID:  created.MemberID,
		ProductID: created.ProductID,
		Quantity:  1,
	})
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	if second.Receipt == created.Receipt {
		t.Error("expected distinct receipts")
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := New(db).GetByID(ctx, primitive.NewObjectID())
	if err != mongo.ErrNoDocuments {
		t.Fatalf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestFindSortedNewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := fx.CreateMember(ctx, "Pia Pour", "555-5000", 0)
	product := fx.CreateProduct(ctx, "Pour Over", 6, 1)

	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	first := fx.CreateTransaction(ctx, member, product, 1, base)
	second := fx.CreateTransaction(ctx, member, product, 1, base.Add(time.Minute))

	got, err := New(db).Find(ctx, bson.M{"member_id": member.ID})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d transactions, want 2", len(got))
	}
	if got[0].ID != second.ID || got[1].ID != first.ID {
		t.Error("transactions not sorted newest first")
	}
}
