// internal/app/features/members/create.go
package members

import (
	"context"
	"errors"
	"net/http"
	"time"

	memberstore "github.com/beanledger/beanledger/internal/app/store/members"
	"github.com/beanledger/beanledger/internal/app/system/apperrors"
	"github.com/beanledger/beanledger/internal/app/system/httpjson"
	"github.com/beanledger/beanledger/internal/app/system/inputval"
	"github.com/beanledger/beanledger/internal/app/system/timeouts"
	"github.com/beanledger/beanledger/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleCreate registers a new member.
//
// Route: POST /members
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
	phone, ok := inputval.TrimmedNonEmpty(req.Phone)
	if !ok {
		httpjson.Error(w, h.Log, apperrors.Validation("Phone is required."))
		return
	}

	points := 0
	if req.Points != nil {
		if *req.Points < 0 {
			httpjson.Error(w, h.Log, apperrors.Validation("Points must be a non-negative number."))
			return
		}
		points = *req.Points
	}

	validUntil := time.Now().UTC().Add(h.MembershipTerm)
	if req.ValidUntil != nil {
		t, _, err := inputval.ParseDate(*req.ValidUntil)
		if err != nil {
			httpjson.Error(w, h.Log, apperrors.Validation("validUntil is not a valid date."))
			return
		}
		validUntil = t
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var categoryID *primitive.ObjectID
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
			categoryID = &cat.ID
		}
	}

	// Duplicate-phone check; the unique index backstops races.
	exists, err := h.Members.PhoneExists(ctx, phone)
	if err != nil {
		httpjson.Error(w, h.Log, apperrors.Storage(err))
		return
	}
	if exists {
		httpjson.Error(w, h.Log, apperrors.Rule("A member with this phone already exists."))
		return
	}

	created, err := h.Members.Create(ctx, models.Member{
		Name:           name,
		Phone:          phone,
		ClubCategoryID: categoryID,
		ValidUntil:     validUntil,
		Points:         points,
	})
	if err != nil {
		if errors.Is(err, memberstore.ErrDuplicatePhone) {
			httpjson.Error(w, h.Log, apperrors.Rule("A member with this phone already exists."))
			return
		}
		httpjson.Error(w, h.Log, apperrors.Storage(err))
		return
	}

	httpjson.Respond(w, http.StatusOK, created)
}
