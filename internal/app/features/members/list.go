// internal/app/features/members/list.go
package members

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/beanledger/beanledger/internal/app/system/apperrors"
	"github.com/beanledger/beanledger/internal/app/system/httpjson"
	"github.com/beanledger/beanledger/internal/app/system/inputval"
	"github.com/beanledger/beanledger/internal/app/system/timeouts"
	"github.com/beanledger/beanledger/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HandleList returns members, optionally restricted by the ?filter=
// JSON payload: validUntil (members valid on/after that date) and/or
// clubCategory (exact category id). A malformed payload or malformed
// individual fields are silently ignored, never rejected.
//
// Route: GET /members
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}

	if raw := r.URL.Query().Get("filter"); raw != "" {
		var f listFilter
		if err := json.Unmarshal([]byte(raw), &f); err == nil {
			if f.ValidUntil != "" {
				if t, _, err := inputval.ParseDate(f.ValidUntil); err == nil {
					filter["valid_until"] = bson.M{"$gte": t}
				}
			}
			if f.ClubCategory != "" {
				if catID, err := primitive.ObjectIDFromHex(f.ClubCategory); err == nil {
					filter["club_category_id"] = catID
				}
			}
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	found, err := h.Members.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		httpjson.Error(w, h.Log, apperrors.Storage(err))
		return
	}
	if found == nil {
		found = []models.Member{}
	}

	httpjson.Respond(w, http.StatusOK, found)
}
