// internal/app/features/products/types.go
package products

// createRequest is the body of POST /products.
type createRequest struct {
	Name       string   `json:"name"`
	Price      *float64 `json:"price"`
	PointValue *int     `json:"pointValue,omitempty"` // default 0
}

// editRequest is the body of PUT /products/{id}. Nil fields are left
// untouched.
type editRequest struct {
	Name       *string  `json:"name,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	PointValue *int     `json:"pointValue,omitempty"`
}
