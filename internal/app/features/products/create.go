// internal/app/features/products/create.go
package products

import (
	"context"
	"errors"
	"net/http"

	productstore "github.com/beanledger/beanledger/internal/app/store/products"
	"github.com/beanledger/beanledger/internal/app/system/apperrors"
	"github.com/beanledger/beanledger/internal/app/system/httpjson"
	"github.com/beanledger/beanledger/internal/app/system/inputval"
	"github.com/beanledger/beanledger/internal/app/system/timeouts"
	"github.com/beanledger/beanledger/internal/domain/models"
)

// HandleCreate adds a product to the catalog.
//
// Route: POST /products
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	name, ok := inputval.TrimmedNonEmpty(req.Name)
	if !ok {
		httpjson.Error(w, h.Log, apperrors.Validation("Name is required."))
		return
	}
	if req.Price == nil || *req.Price < 0 {
		httpjson.Error(w, h.Log, apperrors.Validation("Price must be a non-negative number."))
		return
	}
	pointValue := 0
	if req.PointValue != nil {
		if *req.PointValue < 0 {
			httpjson.Error(w, h.Log, apperrors.Validation("Point value must be a non-negative number."))
			return
		}
		pointValue = *req.PointValue
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Products.Create(ctx, models.Product{
		Name:       name,
		Price:      *req.Price,
		PointValue: pointValue,
	})
	if err != nil {
		if errors.Is(err, productstore.ErrDuplicateProduct) {
			httpjson.Error(w, h.Log, apperrors.Rule("A product with this name already exists."))
			return
		}
		httpjson.Error(w, h.Log, apperrors.Storage(err))
		return
	}

	httpjson.Respond(w, http.StatusOK, created)
}
