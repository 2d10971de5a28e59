// internal/app/features/announcements/routes.go
package announcements

import (
	"github.com/chapterhub/chapterhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the news-feed endpoints. Reading is open; posting and
// deleting are adviser/officer actions.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole("adviser", "officer"))
		r.Post("/", h.HandleCreate)
		r.Delete("/{id}", h.HandleDelete)
	})
	return r
}
