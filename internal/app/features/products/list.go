// internal/app/features/products/list.go
package products

import (
	"context"
	"net/http"

	"github.com/beanledger/beanledger/internal/app/system/apperrors"
	"github.com/beanledger/beanledger/internal/app/system/httpjson"
	"github.com/beanledger/beanledger/internal/app/system/timeouts"
	"github.com/beanledger/beanledger/internal/domain/models"
)

// HandleList returns the whole catalog, unfiltered.
//
// Route: GET /products
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Products.All(ctx)
	if err != nil {
		httpjson.Error(w, h.Log, apperrors.Storage(err))
		return
	}
	if all == nil {
		all = []models.Product{}
	}

	httpjson.Respond(w, http.StatusOK, all)
}
