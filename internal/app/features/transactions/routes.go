// internal/app/features/transactions/routes.go
package transactions

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the transaction routes. Transactions are immutable;
// there is deliberately no update or delete route here.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleList)

	return r
}
