// internal/app/features/transactions/handler.go
package transactions

import (
	"github.com/beanledger/beanledger/internal/app/ledger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for Transactions. Creation goes
// through the points ledger; listing goes through the aggregation
// query that expands the related member and product.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	Ledger *ledger.Ledger
}

func NewHandler(db *mongo.Database, ldg *ledger.Ledger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Log:    logger,
		Ledger: ldg,
	}
}
