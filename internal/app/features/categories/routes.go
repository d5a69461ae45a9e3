// internal/app/features/categories/routes.go
package categories

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the category routes.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleList)

	return r
}
