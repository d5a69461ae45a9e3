// internal/app/features/transactions/types.go
package transactions

// createRequest is the body of POST /transactions. Quantity defaults
// to 1 when absent.
type createRequest struct {
	MemberID  string `json:"memberId"`
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity,omitempty"`
}

// listFilter is the optional ?filter= payload of GET /transactions. A
// malformed payload is treated as no filter; individual fields are
// applied only when well-formed.
type listFilter struct {
	MemberID  string `json:"memberId,omitempty"`
	ProductID string `json:"productId,omitempty"`
	DateFrom  string `json:"dateFrom,omitempty"` // inclusive
	DateTo    string `json:"dateTo,omitempty"`   // inclusive
}
