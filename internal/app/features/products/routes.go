// internal/app/features/products/routes.go
package products

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts all product routes under the path where the caller
// mounts it. Typically: r.Mount("/products", products.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleList)
	r.Put("/{id}", h.HandleEdit)

	return r
}
