// internal/app/features/members/handler.go
package members

import (
	"time"

	"github.com/beanledger/beanledger/internal/app/ledger"
	categorystore "github.com/beanledger/beanledger/internal/app/store/categories"
	memberstore "github.com/beanledger/beanledger/internal/app/store/members"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for Members. It holds the DB
// handle, the stores, the points ledger, and the configured membership
// term used to default validUntil on create.
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	Members    *memberstore.Store
	Categories *categorystore.Store
	Ledger     *ledger.Ledger

	// MembershipTerm is how long a new membership is valid when the
	// request does not supply validUntil (one year by default).
	MembershipTerm time.Duration
}

func NewHandler(db *mongo.Database, ldg *ledger.Ledger, term time.Duration, logger *zap.Logger) *Handler {
	return &Handler{
		DB:             db,
		Log:            logger,
		Members:        memberstore.New(db),
		Categories:     categorystore.New(db),
		Ledger:         ldg,
		MembershipTerm: term,
	}
}
