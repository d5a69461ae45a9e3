// internal/app/features/categories/categories.go
package categories

import (
	"context"
	"errors"
	"net/http"

	categorystore "github.com/beanledger/beanledger/internal/app/store/categories"
	"github.com/beanledger/beanledger/internal/app/system/apperrors"
	"github.com/beanledger/beanledger/internal/app/system/httpjson"
	"github.com/beanledger/beanledger/internal/app/system/inputval"
	"github.com/beanledger/beanledger/internal/app/system/timeouts"
	"github.com/beanledger/beanledger/internal/domain/models"
)

type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// HandleCreate adds a club category.
//
// Route: POST /categories
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Categories.Create(ctx, models.ClubCategory{
		Name:        name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, categorystore.ErrDuplicateCategory) {
			httpjson.Error(w, h.Log, apperrors.Rule("A club category with this name already exists."))
			return
		}
		httpjson.Error(w, h.Log, apperrors.Storage(err))
		return
	}

	httpjson.Respond(w, http.StatusOK, created)
}

// HandleList returns all club categories.
//
// Route: GET /categories
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Categories.All(ctx)
	if err != nil {
		httpjson.Error(w, h.Log, apperrors.Storage(err))
		return
	}
	if all == nil {
		all = []models.ClubCategory{}
	}

	httpjson.Respond(w, http.StatusOK, all)
}
