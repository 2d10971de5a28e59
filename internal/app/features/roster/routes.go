// internal/app/features/roster/routes.go
package roster

import (
	"github.com/chapterhub/chapterhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the roster endpoints under /chapters/{chapter}/roster.
// Reads are open to any signed-in user; mutations are adviser/officer only,
// and seeding is adviser only.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Get("/", h.HandleList)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole("adviser", "officer"))
		r.Post("/", h.HandleCreate)
		r.Put("/{id}", h.HandleUpdate)
		r.Delete("/{id}", h.HandleRemove)
	})

	r.With(auth.RequireRole("adviser")).Post("/seed", h.HandleSeed)
	return r
}
