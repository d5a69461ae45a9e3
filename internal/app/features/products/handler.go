// internal/app/features/products/handler.go
package products

import (
	productstore "github.com/beanledger/beanledger/internal/app/store/products"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for Products.
type Handler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	Products *productstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Log:      logger,
		Products: productstore.New(db),
	}
}
