// internal/app/features/progression/routes.go
package progression

import (
	"github.com/chapterhub/chapterhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the progression endpoints. The admin overwrite is restricted
// to advisers; everything else resolves against the caller's own identity.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleGetProfile)
	r.Post("/xp", h.HandleAddXP)
	r.Post("/badges", h.HandleAwardBadge)
	r.With(auth.RequireRole("adviser")).Put("/", h.HandleUpdateProfile)
	return r
}
