// Package ledger holds the points-accounting rules: accrual on
// purchase and the redemption checks. It is the only place where
// money/points arithmetic and membership-validity rules live; the
// feature handlers above it only translate HTTP, the stores below it
// only move documents.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	memberstore "github.com/beanledger/beanledger/internal/app/store/members"
	productstore "github.com/beanledger/beanledger/internal/app/store/products"
	transactionstore "github.com/beanledger/beanledger/internal/app/store/transactions"
	"github.com/beanledger/beanledger/internal/app/system/apperrors"
	"github.com/beanledger/beanledger/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultMinRedeemPoints is the smallest redemption the program accepts
// when no override is configured.
const DefaultMinRedeemPoints = 10

// Ledger applies point movements triggered by purchases and
// redemptions.
type Ledger struct {
	Members      *memberstore.Store
	Products     *productstore.Store
	Transactions *transactionstore.Store
	Log          *zap.Logger

	// MinRedeemPoints is the minimum redemption threshold; zero means
	// DefaultMinRedeemPoints.
	MinRedeemPoints int

	// now is swappable for tests.
	now func() time.Time
}

// New builds a Ledger over the given database stores.
func New(db *mongo.Database, minRedeem int, logger *zap.Logger) *Ledger {
	return &Ledger{
		Members:         memberstore.New(db),
		Products:        productstore.New(db),
		Transactions:    transactionstore.New(db),
		Log:             logger,
		MinRedeemPoints: minRedeem,
		now:             time.Now,
	}
}

func (l *Ledger) minRedeem() int {
	if l.MinRedeemPoints > 0 {
		return l.MinRedeemPoints
	}
	return DefaultMinRedeemPoints
}

func (l *Ledger) clock() time.Time {
	if l.now != nil {
		return l.now().UTC()
	}
	return time.Now().UTC()
}

// RecordPurchase validates the purchase, persists the transaction, and
// credits the member's balance.
//
// Preconditions are checked in order, first failure wins: member id
// well-formed, member exists, membership not expired, product id
// well-formed, product exists. totalPrice and pointsAdded are computed
// exactly from the product at purchase time, so later product edits
// never change history.
//
// The transaction insert and the member update are two separate
// single-document writes, not one cross-document transaction. If the
// points update fails after the insert succeeded, the transaction
// record stands without a matching balance increment; that gap is
// logged and surfaced as a storage error, never silently repaired.
func (l *Ledger) RecordPurchase(ctx context.Context, memberID, productID string, quantity int) (models.Transaction, error) {
	mID, err := primitive.ObjectIDFromHex(memberID)
	if err != nil {
		return models.Transaction{}, apperrors.Validation("Invalid member id.")
	}
	member, err := l.Members.GetByID(ctx, mID)
	if err == mongo.ErrNoDocuments {
		return models.Transaction{}, apperrors.NotFound("Member not found.")
	}
	if err != nil {
		return models.Transaction{}, apperrors.Storage(err)
	}
	if !member.IsValidAt(l.clock()) {
		return models.Transaction{}, apperrors.Rule("Membership expired.")
	}

	pID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return models.Transaction{}, apperrors.Validation("Invalid product id.")
	}
	product, err := l.Products.GetByID(ctx, pID)
	if err == mongo.ErrNoDocuments {
		return models.Transaction{}, apperrors.NotFound("Product not found.")
	}
	if err != nil {
		return models.Transaction{}, apperrors.Storage(err)
	}

	if quantity < 1 {
		return models.Transaction{}, apperrors.Validation("Quantity must be at least 1.")
	}

	txn := models.Transaction{
		MemberID:    member.ID,
		ProductID:   product.ID,
		Quantity:    quantity,
		TotalPrice:  product.Price * float64(quantity),
		PointsAdded: product.PointValue * quantity,
	}

	created, err := l.Transactions.Create(ctx, txn)
	if err != nil {
		return models.Transaction{}, apperrors.Storage(err)
	}

	if err := l.Members.AddPoints(ctx, member.ID, created.PointsAdded); err != nil {
		// The transaction record is already persisted; there is no
		// rollback. See the package docs for the accepted gap.
		l.Log.Error("points credit failed after transaction insert",
			zap.String("transaction_id", created.ID.Hex()),
			zap.String("member_id", member.ID.Hex()),
			zap.Int("points", created.PointsAdded),
			zap.Error(err))
		return models.Transaction{}, apperrors.Storage(err)
	}

	return created, nil
}

// RedeemPoints deducts points from a member's balance. Rules are
// checked in order, first failure wins: points positive, member exists,
// membership not expired, balance sufficient, amount at or above the
// minimum redemption threshold. Redemption is not recorded as a
// transaction; only the balance moves.
func (l *Ledger) RedeemPoints(ctx context.Context, memberID string, points int) error {
	mID, err := primitive.ObjectIDFromHex(memberID)
	if err != nil {
		return apperrors.Validation("Invalid member id.")
	}
	if points <= 0 {
		return apperrors.Validation("Points must be a positive number.")
	}

	member, err := l.Members.GetByID(ctx, mID)
	if err == mongo.ErrNoDocuments {
		return apperrors.NotFound("Member not found.")
	}
	if err != nil {
		return apperrors.Storage(err)
	}
	if !member.IsValidAt(l.clock()) {
		return apperrors.Rule("Membership expired.")
	}
	if member.Points < points {
		return apperrors.Rule("Insufficient points.")
	}
	if points < l.minRedeem() {
		return apperrors.Rule(ErrBelowMinimumMessage(l.minRedeem()))
	}

	if err := l.Members.DeductPoints(ctx, mID, points); err != nil {
		switch {
		case errors.Is(err, memberstore.ErrInsufficientPoints):
			// Lost a race with a concurrent redemption.
			return apperrors.Rule("Insufficient points.")
		case err == mongo.ErrNoDocuments:
			return apperrors.NotFound("Member not found.")
		default:
			return apperrors.Storage(err)
		}
	}
	return nil
}

// ErrBelowMinimumMessage builds the rule message for redemptions under
// the configured threshold.
func ErrBelowMinimumMessage(min int) string {
	return fmt.Sprintf("Minimum redemption is %d points.", min)
}
