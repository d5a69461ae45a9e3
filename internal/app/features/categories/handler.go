// internal/app/features/categories/handler.go
package categories

import (
	categorystore "github.com/beanledger/beanledger/internal/app/store/categories"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for ClubCategories. Categories
// are referenced by name from member create/edit, so they need a small
// management surface of their own.
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	Categories *categorystore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		Categories: categorystore.New(db),
	}
}
