package transactionqueries

import (
	"testing"
	"time"

	"github.com/beanledger/beanledger/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestListExpandsAndSorts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := fx.CreateMember(ctx, "Nia Nitro", "555-4000", 0)
	product := fx.CreateProduct(ctx, "Nitro Cold Brew", 7, 2)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	older := fx.CreateTransaction(ctx, member, product, 1, base)
	newer := fx.CreateTransaction(ctx, member, product, 2, base.Add(time.Hour))

	got, err := List(ctx, db, ListFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d transactions, want 2", len(got))
	}
	// Newest first.
	if got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Error("transactions not sorted newest first")
	}
	if got[0].Member == nil || got[0].Member.Name != "Nia Nitro" {
		t.Errorf("member not expanded: %+v", got[0].Member)
	}
	if got[0].Product == nil || got[0].Product.Name != "Nitro Cold Brew" {
		t.Errorf("product not expanded: %+v", got[0].Product)
	}
}

func TestListFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	alice := fx.CreateMember(ctx, "Alice", "555-4001", 0)
	bob := fx.CreateMember(ctx, "Bob", "555-4002", 0)
	espresso := fx.CreateProduct(ctx, "Espresso", 4, 1)
	scone := fx.CreateProduct(ctx, "Scone", 3, 1)

	day1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	day3 := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)

	fx.CreateTransaction(ctx, alice, espresso, 1, day1)
	fx.CreateTransaction(ctx, alice, scone, 1, day2)
	fx.CreateTransaction(ctx, bob, espresso, 1, day3)

	byMember, err := List(ctx, db, ListFilter{MemberID: &alice.ID})
	if err != nil {
		t.Fatalf("List by member failed: %v", err)
	}
	if len(byMember) != 2 {
		t.Errorf("by member: got %d, want 2", len(byMember))
	}

	byProduct, err := List(ctx, db, ListFilter{ProductID: &scone.ID})
	if err != nil {
		t.Fatalf("List by product failed: %v", err)
	}
	if len(byProduct) != 1 {
		t.Errorf("by product: got %d, want 1", len(byProduct))
	}

	// Date bounds are inclusive on both ends.
	from := day2
	to := day3
	byDate, err := List(ctx, db, ListFilter{DateFrom: &from, DateTo: &to})
	if err != nil {
		t.Fatalf("List by date failed: %v", err)
	}
	if len(byDate) != 2 {
		t.Errorf("by date: got %d, want 2", len(byDate))
	}

	combined, err := List(ctx, db, ListFilter{MemberID: &alice.ID, ProductID: &espresso.ID})
	if err != nil {
		t.Fatalf("List combined failed: %v", err)
	}
	if len(combined) != 1 {
		t.Errorf("combined: got %d, want 1", len(combined))
	}
}

func TestListKeepsOrphanedReferences(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := fx.CreateMember(ctx, "Olla Oat", "555-4003", 0)
	product := fx.CreateProduct(ctx, "Oat Latte", 5, 1)
	fx.CreateTransaction(ctx, member, product, 1, time.Now().UTC())

	// History survives even when the referenced member disappears.
	if _, err := db.Collection("members").DeleteOne(ctx, bson.M{"_id": member.ID}); err != nil {
		t.Fatalf("delete member: %v", err)
	}

	got, err := List(ctx, db, ListFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d transactions, want 1", len(got))
	}
	if got[0].Member != nil {
		t.Error("expected nil member for orphaned reference")
	}
	if got[0].Product == nil {
		t.Error("expected product still expanded")
	}
}
