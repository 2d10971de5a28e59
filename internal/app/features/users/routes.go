// internal/app/features/users/routes.go
package users

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the user-directory endpoints.
//
// POST / is deliberately open: onboarding may happen before sign-in, bound to
// the session's minted anonymous identity. PATCH /me resolves the same way
// but 404s when the identity has no user yet; GET /me answers for everyone
// (null user when unknown).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleStoreUser)
	r.Get("/me", h.HandleCurrentUser)
	r.Patch("/me", h.HandleUpdateUser)
	return r
}
