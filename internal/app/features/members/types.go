// internal/app/features/members/types.go
package members

// createRequest is the body of POST /members. Optional fields are
// pointers so "absent" and "zero" stay distinguishable.
type createRequest struct {
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	ClubCategory *string `json:"clubCategory,omitempty"` // category name, must resolve
	ValidUntil   *string `json:"validUntil,omitempty"`   // RFC 3339 or YYYY-MM-DD; default now + term
	Points       *int    `json:"points,omitempty"`       // default 0, must be >= 0
}

// editRequest is the body of PUT /members/{id}. Every field is
// optional; nil fields are left untouched.
type editRequest struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	ClubCategory *string `json:"clubCategory,omitempty"`
	ValidUntil   *string `json:"validUntil,omitempty"`
	Points       *int    `json:"points,omitempty"`
}

// listFilter is the optional ?filter= payload of GET /members. A
// malformed payload is treated as no filter.
type listFilter struct {
	ValidUntil   string `json:"validUntil,omitempty"`   // members valid on/after this date
	ClubCategory string `json:"clubCategory,omitempty"` // exact category id
}

// redeemRequest is the body of POST /members/{id}/redeem. Points is a
// float so fractional input can be rejected with a precise message
// instead of a JSON decode error.
type redeemRequest struct {
	Points *float64 `json:"points"`
}

// redeemResponse is the acknowledgement for redemption, success or
// rule failure alike.
type redeemResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// validityResponse is the body of GET /members/{id}/validity.
type validityResponse struct {
	Valid bool `json:"valid"`
}
