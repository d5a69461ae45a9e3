// internal/app/features/members/edit.go
package members

import (
	"context"
	"errors"
	"net/http"

	memberstore "github.com/beanledger/beanledger/internal/app/store/members"
	"github.com/beanledger/beanledger/internal/app/system/apperrors"
	"github.com/beanledger/beanledger/internal/app/system/httpjson"
	"github.com/beanledger/beanledger/internal/app/system/inputval"
	"github.com/beanledger/beanledger/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleEdit applies a partial update to a member. Fields absent from
// the body are left untouched; name, phone, and validUntil are skipped
// when present but empty or unparseable, while clubCategory and points
// fail the whole request when present but invalid.
//
// Route: PUT /members/{id}
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, apperrors.Validation("Invalid member id."))
		return
	}

	var req editRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	upd := memberstore.Update{}

	if req.Name != nil {
		if name, ok := inputval.TrimmedNonEmpty(*req.Name); ok {
			upd.Name = &name
		}
	}
	if req.Points != nil {
		if *req.Points < 0 {
			httpjson.Error(w, h.Log, apperrors.Validation("Points must be a non-negative number."))
			return
		}
		upd.Points = req.Points
	}
	if req.ValidUntil != nil {
		if t, _, err := inputval.ParseDate(*req.ValidUntil); err == nil {
			upd.ValidUntil = &t
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if req.ClubCategory != nil {
		catName, ok := inputval.TrimmedNonEmpty(*req.ClubCategory)
		if ok {
			cat, err := h.Categories.GetByName(ctx, catName)
			if err == mongo.ErrNoDocuments {
				httpjson.Error(w, h.Log, apperrors.Validation("Unknown club category."))
				return
			}
			if err != nil {
				httpjson.Error(w, h.Log, apperrors.Storage(err))
				return
			}
			upd.ClubCategoryID = &cat.ID
		}
	}

	if req.Phone != nil {
		if phone, ok := inputval.TrimmedNonEmpty(*req.Phone); ok {
			taken, err := h.Members.PhoneExistsForOther(ctx, phone, id)
			if err != nil {
				httpjson.Error(w, h.Log, apperrors.Storage(err))
				return
			}
			if taken {
				httpjson.Error(w, h.Log, apperrors.Rule("A member with this phone already exists."))
				return
			}
			upd.Phone = &phone
		}
	}

	updated, err := h.Members.Apply(ctx, id, upd)
	switch {
	case err == mongo.ErrNoDocuments:
		httpjson.Error(w, h.Log, apperrors.NotFound("Member not found."))
		return
	case errors.Is(err, memberstore.ErrDuplicatePhone):
		httpjson.Error(w, h.Log, apperrors.Rule("A member with this phone already exists."))
		return
	case err != nil:
		httpjson.Error(w, h.Log, apperrors.Storage(err))
		return
	}

	httpjson.Respond(w, http.StatusOK, updated)
}
