// internal/app/features/members/import.go
package members

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	memberstore "github.com/beanledger/beanledger/internal/app/store/members"
	"github.com/beanledger/beanledger/internal/app/system/apperrors"
	"github.com/beanledger/beanledger/internal/app/system/csvutil"
	"github.com/beanledger/beanledger/internal/app/system/httpjson"
	"github.com/beanledger/beanledger/internal/app/system/timeouts"
	"github.com/beanledger/beanledger/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// importRejection is the 400 payload when the upload fails pre-scan.
type importRejection struct {
	Error string             `json:"error"`
	Rows  []csvutil.RowError `json:"rows"`
}

// importSkip reports one row that passed pre-scan but could not be
// inserted.
type importSkip struct {
	Phone  string `json:"phone"`
	Reason string `json:"reason"`
}

// importResult is the 200 payload of a completed import.
type importResult struct {
	Created int          `json:"created"`
	Skipped []importSkip `json:"skipped"`
}

// HandleImport bulk-registers members from a CSV body with columns
// Name, Phone, and an optional Club Category name. The whole upload is
// pre-scanned first; structurally invalid rows reject it outright.
// Rows that fail only at insert time (duplicate phone, unknown
// category) are skipped and reported, the rest are created with the
// default membership term.
//
// Route: POST /members/import
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	body := io.LimitReader(r.Body, csvutil.MaxUploadSize)

	rows, rowErrs, err := csvutil.PreScanMembersCSV(body)
	if err != nil {
		httpjson.Error(w, h.Log, apperrors.Validation("Upload is not valid CSV."))
		return
	}
	if len(rowErrs) > 0 {
		httpjson.Respond(w, http.StatusBadRequest, importRejection{
			Error: "Upload rejected: one or more rows are invalid.",
			Rows:  rowErrs,
		})
		return
	}
	if len(rows) == 0 {
		httpjson.Error(w, h.Log, apperrors.Validation("Upload contains no rows."))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	validUntil := time.Now().UTC().Add(h.MembershipTerm)
	result := importResult{Skipped: []importSkip{}}

	for _, row := range rows {
		var categoryID *primitive.ObjectID
		if row.ClubCategory != "" {
			cat, err := h.Categories.GetByName(ctx, row.ClubCategory)
			if err == mongo.ErrNoDocuments {
				result.Skipped = append(result.Skipped, importSkip{
					Phone: row.Phone, Reason: "unknown club category",
				})
				continue
			}
			if err != nil {
				httpjson.Error(w, h.Log, apperrors.Storage(err))
				return
			}
			categoryID = &cat.ID
		}

		_, err := h.Members.Create(ctx, models.Member{
			Name:           row.Name,
			Phone:          row.Phone,
			ClubCategoryID: categoryID,
			ValidUntil:     validUntil,
		})
		if errors.Is(err, memberstore.ErrDuplicatePhone) {
			result.Skipped = append(result.Skipped, importSkip{
				Phone: row.Phone, Reason: "a member with this phone already exists",
			})
			continue
		}
		if err != nil {
			httpjson.Error(w, h.Log, apperrors.Storage(err))
			return
		}
		result.Created++
	}

	httpjson.Respond(w, http.StatusOK, result)
}
