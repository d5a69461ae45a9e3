package ledger

import (
	"testing"

	memberstore "github.com/beanledger/beanledger/internal/app/store/members"
	"github.com/beanledger/beanledger/internal/app/system/apperrors"
	"github.com/beanledger/beanledger/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestRecordPurchaseAccrual(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := fx.CreateMember(ctx, "Ada Aroma", "555-0001", 0)
	product := fx.CreateProduct(ctx, "Flat White", 10, 2)

	l := New(db, 0, zap.NewNop())

	txn, err := l.RecordPurchase(ctx, member.ID.Hex(), product.ID.Hex(), 3)
	if err != nil {
		t.Fatalf("RecordPurchase failed: %v", err)
	}
	if txn.TotalPrice != 30 {
		t.Errorf("totalPrice = %v, want 30", txn.TotalPrice)
	}
	if txn.PointsAdded != 6 {
		t.Errorf("pointsAdded = %d, want 6", txn.PointsAdded)
	}
	if txn.Receipt == "" {
		t.Error("expected a generated receipt number")
	}
	if txn.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}

	got, err := memberstore.New(db).GetByID(ctx, member.ID)
	if err != nil {
		t.Fatalf("reload member: %v", err)
	}
	if got.Points != 6 {
		t.Errorf("member points = %d, want 6", got.Points)
	}
}

func TestRecordPurchaseSnapshotsProduct(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := fx.CreateMember(ctx, "Bea Brew", "555-0002", 0)
	product := fx.CreateProduct(ctx, "Espresso", 4.5, 1)

	l := New(db, 0, zap.NewNop())

	txn, err := l.RecordPurchase(ctx, member.ID.Hex(), product.ID.Hex(), 2)
	if err != nil {
		t.Fatalf("RecordPurchase failed: %v", err)
	}
	if txn.TotalPrice != 9 {
		t.Errorf("totalPrice = %v, want 9", txn.TotalPrice)
	}
	if txn.PointsAdded != 2 {
		t.Errorf("pointsAdded = %d, want 2", txn.PointsAdded)
	}
}

func TestRecordPurchasePreconditions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := fx.CreateMember(ctx, "Cal Crema", "555-0003", 0)
	expired := fx.CreateExpiredMember(ctx, "Dot Drip", "555-0004", 0)
	product := fx.CreateProduct(ctx, "Latte", 5, 1)

	l := New(db, 0, zap.NewNop())

	tests := []struct {
		name      string
		memberID  string
		productID string
		wantKind  apperrors.Kind
		wantMsg   string
	}{
		{"malformed member id", "not-an-id", product.ID.Hex(), apperrors.KindValidation, "Invalid member id."},
		{"unknown member", primitive.NewObjectID().Hex(), product.ID.Hex(), apperrors.KindNotFound, "Member not found."},
		{"expired membership", expired.ID.Hex(), product.ID.Hex(), apperrors.KindRule, "Membership expired."},
		{"malformed product id", member.ID.Hex(), "nope", apperrors.KindValidation, "Invalid product id."},
		{"unknown product", member.ID.Hex(), primitive.NewObjectID().Hex(), apperrors.KindNotFound, "Product not found."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := l.RecordPurchase(ctx, tc.memberID, tc.productID, 1)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !apperrors.IsKind(err, tc.wantKind) {
				t.Errorf("error kind mismatch, got %v", err)
			}
			if got := apperrors.Message(err); got != tc.wantMsg {
				t.Errorf("message = %q, want %q", got, tc.wantMsg)
			}
		})
	}
}

func TestRedeemPointsSuccess(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := fx.CreateMember(ctx, "Eve Ember", "555-0005", 20)

	l := New(db, 0, zap.NewNop())

	if err := l.RedeemPoints(ctx, member.ID.Hex(), 15); err != nil {
		t.Fatalf("RedeemPoints failed: %v", err)
	}

	got, err := memberstore.New(db).GetByID(ctx, member.ID)
	if err != nil {
		t.Fatalf("reload member: %v", err)
	}
	if got.Points != 5 {
		t.Errorf("member points = %d, want 5", got.Points)
	}
}

func TestRedeemPointsRules(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rich := fx.CreateMember(ctx, "Fay Froth", "555-0006", 100)
	poor := fx.CreateMember(ctx, "Gus Grind", "555-0007", 5)
	expired := fx.CreateExpiredMember(ctx, "Hal Husk", "555-0008", 100)

	l := New(db, 0, zap.NewNop())

	tests := []struct {
		name     string
		memberID string
		points   int
		wantKind apperrors.Kind
		wantMsg  string
	}{
		{"malformed id", "bogus", 10, apperrors.KindValidation, "Invalid member id."},
		{"non-positive amount", rich.ID.Hex(), 0, apperrors.KindValidation, "Points must be a positive number."},
		{"unknown member", primitive.NewObjectID().Hex(), 10, apperrors.KindNotFound, "Member not found."},
		{"expired membership", expired.ID.Hex(), 10, apperrors.KindRule, "Membership expired."},
		{"insufficient balance", poor.ID.Hex(), 10, apperrors.KindRule, "Insufficient points."},
		{"below minimum", rich.ID.Hex(), 5, apperrors.KindRule, "Minimum redemption is 10 points."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := l.RedeemPoints(ctx, tc.memberID, tc.points)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !apperrors.IsKind(err, tc.wantKind) {
				t.Errorf("error kind mismatch, got %v", err)
			}
			if got := apperrors.Message(err); got != tc.wantMsg {
				t.Errorf("message = %q, want %q", got, tc.wantMsg)
			}
		})
	}

	// Failed redemptions must not touch the balance.
	got, err := memberstore.New(db).GetByID(ctx, poor.ID)
	if err != nil {
		t.Fatalf("reload member: %v", err)
	}
	if got.Points != 5 {
		t.Errorf("member points = %d, want 5 (unchanged)", got.Points)
	}
}

func TestRedeemInsufficientBeforeMinimum(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Balance 3, redeeming 5: both the balance rule and the minimum
	// rule fail, the balance rule must win.
	member := fx.CreateMember(ctx, "Ivy Infuse", "555-0009", 3)

	l := New(db, 0, zap.NewNop())

	err := l.RedeemPoints(ctx, member.ID.Hex(), 5)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got := apperrors.Message(err); got != "Insufficient points." {
		t.Errorf("message = %q, want %q", got, "Insufficient points.")
	}
}

func TestRedeemCustomMinimum(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := fx.CreateMember(ctx, "Joe Java", "555-0010", 100)

	l := New(db, 25, zap.NewNop())

	err := l.RedeemPoints(ctx, member.ID.Hex(), 20)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got := apperrors.Message(err); got != "Minimum redemption is 25 points." {
		t.Errorf("message = %q, want %q", got, "Minimum redemption is 25 points.")
	}

	if err := l.RedeemPoints(ctx, member.ID.Hex(), 25); err != nil {
		t.Fatalf("RedeemPoints at threshold failed: %v", err)
	}
}
