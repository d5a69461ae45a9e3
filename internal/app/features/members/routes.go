// internal/app/features/members/routes.go
package members

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts all member routes under the path where the caller
// mounts it. Typically: r.Mount("/members", members.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleList)
	r.Get("/search", h.HandleSearch)
	r.Post("/import", h.HandleImport)
	r.Put("/{id}", h.HandleEdit)
	r.Get("/{id}/validity", h.HandleValidity)
	r.Post("/{id}/redeem", h.HandleRedeem)

	return r
}
