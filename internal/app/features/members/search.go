// internal/app/features/members/search.go
package members

import (
	"context"
	"net/http"

	"github.com/beanledger/beanledger/internal/app/system/apperrors"
	"github.com/beanledger/beanledger/internal/app/system/httpjson"
	"github.com/beanledger/beanledger/internal/app/system/inputval"
	"github.com/beanledger/beanledger/internal/app/system/timeouts"
	"github.com/beanledger/beanledger/internal/domain/models"
)

// HandleSearch performs a case-insensitive substring search against
// member name or phone. An empty or whitespace-only query is rejected.
//
// Route: GET /members/search?query=str
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query, ok := inputval.TrimmedNonEmpty(r.URL.Query().Get("query"))
	if !ok {
		httpjson.Error(w, h.Log, apperrors.Validation("Search query is required."))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	found, err := h.Members.Search(ctx, query)
	if err != nil {
		httpjson.Error(w, h.Log, apperrors.Storage(err))
		return
	}
	if found == nil {
		found = []models.Member{}
	}

	httpjson.Respond(w, http.StatusOK, found)
}
