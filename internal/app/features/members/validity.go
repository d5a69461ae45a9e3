// internal/app/features/members/validity.go
package members

import (
	"context"
	"net/http"
	"time"

	"github.com/beanledger/beanledger/internal/app/system/apperrors"
	"github.com/beanledger/beanledger/internal/app/system/httpjson"
	"github.com/beanledger/beanledger/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleValidity reports whether the member's validUntil has not yet
// passed. A malformed id is indistinguishable from an unknown member
// here; both are 404.
//
// Route: GET /members/{id}/validity
func (h *Handler) HandleValidity(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, apperrors.NotFound("Member not found."))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	member, err := h.Members.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		httpjson.Error(w, h.Log, apperrors.NotFound("Member not found."))
		return
	}
	if err != nil {
		httpjson.Error(w, h.Log, apperrors.Storage(err))
		return
	}

	httpjson.Respond(w, http.StatusOK, validityResponse{
		Valid: member.IsValidAt(time.Now().UTC()),
	})
}
