// internal/app/features/transactions/list.go
package transactions

import (
	"encoding/json"
	"net/http"

	"github.com/beanledger/beanledger/internal/app/store/queries/transactionqueries"
	"github.com/beanledger/beanledger/internal/app/system/apperrors"
	"github.com/beanledger/beanledger/internal/app/system/httpjson"
	"github.com/beanledger/beanledger/internal/app/system/inputval"
	"github.com/beanledger/beanledger/internal/app/system/timeouts"
	"github.com/beanledger/beanledger/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleList returns transactions newest first with the related member
// and product expanded inline, optionally restricted by the ?filter=
// JSON payload: memberId, productId, dateFrom, dateTo (both bounds
// inclusive on createdAt). Malformed filter input never fails the
// request; it just widens it.
//
// Route: GET /transactions
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := parseFilter(r.URL.Query().Get("filter"))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list transactions")
	defer cancel()

	rows, err := transactionqueries.List(ctx, h.DB, filter)
	if err != nil {
		httpjson.Error(w, h.Log, apperrors.Storage(err))
		return
	}
	if rows == nil {
		rows = []models.ExpandedTransaction{}
	}

	httpjson.Respond(w, http.StatusOK, rows)
}

func parseFilter(raw string) transactionqueries.ListFilter {
	var out transactionqueries.ListFilter
	if raw == "" {
		return out
	}

	var f listFilter
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return out
	}

	if f.MemberID != "" {
		if id, err := primitive.ObjectIDFromHex(f.MemberID); err == nil {
			out.MemberID = &id
		}
	}
	if f.ProductID != "" {
		if id, err := primitive.ObjectIDFromHex(f.ProductID); err == nil {
			out.ProductID = &id
		}
	}
	if f.DateFrom != "" {
		if t, _, err := inputval.ParseDate(f.DateFrom); err == nil {
			out.DateFrom = &t
		}
	}
	if f.DateTo != "" {
		if t, dateOnly, err := inputval.ParseDate(f.DateTo); err == nil {
			if dateOnly {
				// a bare date means "through the end of that day"
				t = inputval.EndOfDay(t)
			}
			out.DateTo = &t
		}
	}
	return out
}
