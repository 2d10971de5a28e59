// internal/app/features/conferences/routes.go
package conferences

import (
	"github.com/chapterhub/chapterhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the conference endpoints. Reading is open; writes are
// adviser-only.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole("adviser"))
		r.Post("/", h.HandleCreate)
		r.Delete("/{id}", h.HandleDelete)
	})
	return r
}
