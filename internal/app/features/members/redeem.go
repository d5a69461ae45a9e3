// internal/app/features/members/redeem.go
package members

import (
	"context"
	"math"
	"net/http"

	"github.com/beanledger/beanledger/internal/app/system/apperrors"
	"github.com/beanledger/beanledger/internal/app/system/httpjson"
	"github.com/beanledger/beanledger/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleRedeem deducts points from the member's balance through the
// ledger. Rule failures come back as 400/404 with the same
// {success,message} shape the success path uses; storage failures stay
// generic 500s.
//
// Route: POST /members/{id}/redeem
func (h *Handler) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "id")

	var req redeemRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if req.Points == nil || *req.Points <= 0 {
		h.redeemFail(w, http.StatusBadRequest, "Points must be a positive number.")
		return
	}
	if *req.Points != math.Trunc(*req.Points) {
		h.redeemFail(w, http.StatusBadRequest, "Points must be a whole number.")
		return
	}
	points := int(*req.Points)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Ledger.RedeemPoints(ctx, memberID, points); err != nil {
		status := apperrors.Status(err)
		if status == http.StatusInternalServerError {
			httpjson.Error(w, h.Log, err)
			return
		}
		h.redeemFail(w, status, apperrors.Message(err))
		return
	}

	httpjson.Respond(w, http.StatusOK, redeemResponse{
		Success: true,
		Message: "Points redeemed.",
	})
}

func (h *Handler) redeemFail(w http.ResponseWriter, status int, msg string) {
	httpjson.Respond(w, status, redeemResponse{Success: false, Message: msg})
}
