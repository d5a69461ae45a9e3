// internal/app/features/products/edit.go
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
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleEdit applies a partial update to a product. When the name
// changes, the duplicate check excludes the record being edited, so
// saving a product under its own unchanged name is never a conflict.
//
// Route: PUT /products/{id}
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, apperrors.NotFound("Product not found."))
		return
	}

	var req editRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	upd := productstore.Update{}

	if req.Price != nil {
		if *req.Price < 0 {
			httpjson.Error(w, h.Log, apperrors.Validation("Price must be a non-negative number."))
			return
		}
		upd.Price = req.Price
	}
	if req.PointValue != nil {
		if *req.PointValue < 0 {
			httpjson.Error(w, h.Log, apperrors.Validation("Point value must be a non-negative number."))
			return
		}
		upd.PointValue = req.PointValue
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if req.Name != nil {
		if name, ok := inputval.TrimmedNonEmpty(*req.Name); ok {
			taken, err := h.Products.NameExistsForOther(ctx, text.Fold(name), id)
			if err != nil {
				httpjson.Error(w, h.Log, apperrors.Storage(err))
				return
			}
			if taken {
				httpjson.Error(w, h.Log, apperrors.Rule("A product with this name already exists."))
				return
			}
			upd.Name = &name
		}
	}

	updated, err := h.Products.Apply(ctx, id, upd)
	switch {
	case err == mongo.ErrNoDocuments:
		httpjson.Error(w, h.Log, apperrors.NotFound("Product not found."))
		return
	case errors.Is(err, productstore.ErrDuplicateProduct):
		httpjson.Error(w, h.Log, apperrors.Rule("A product with this name already exists."))
		return
	case err != nil:
		httpjson.Error(w, h.Log, apperrors.Storage(err))
		return
	}

	httpjson.Respond(w, http.StatusOK, updated)
}
