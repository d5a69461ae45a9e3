// internal/app/features/transactions/create.go
package transactions

import (
	"net/http"

	"github.com/beanledger/beanledger/internal/app/system/apperrors"
	"github.com/beanledger/beanledger/internal/app/system/httpjson"
	"github.com/beanledger/beanledger/internal/app/system/timeouts"
)

// HandleCreate records a purchase: validates the member and product,
// persists the immutable transaction, and credits the member's points.
//
// Route: POST /transactions
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			httpjson.Error(w, h.Log, apperrors.Validation("Quantity must be at least 1."))
			return
		}
		quantity = *req.Quantity
	}

	// Long tier: this is the two-step write (insert + points credit).
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "record purchase")
	defer cancel()

	created, err := h.Ledger.RecordPurchase(ctx, req.MemberID, req.ProductID, quantity)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, created)
}
