// internal/app/features/events/routes.go
package events

import (
	"github.com/chapterhub/chapterhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the competitive-events directory. The directory is readable
// by everyone; adding entries is adviser-only.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)
	r.Get("/categories", h.HandleCategories)
	r.With(auth.RequireRole("adviser")).Post("/", h.HandleCreate)
	return r
}
