package user

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/api"
	"storefront/internal/authz"
)

type Store interface {
	List(ctx context.Context) ([]User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, name, email string) (*User, error)
	GrantAdmin(ctx context.Context, email string) (*UpdateResult, error)
}

type Handlers struct {
	Store Store
	Authz authz.Authorizer
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.List(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, users)
}

// IsAdmin reports whether the email belongs to an admin. Unknown emails are
// simply not admins; this route never 404s.
func (h Handlers) IsAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	u, err := h.Store.FindByEmail(r.Context(), email)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]bool{
		"admin": u != nil && u.Role == authz.RoleAdmin,
	})
}

type CreateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Create registers a user on first sign-in. Registering an email that already
// exists is answered with 409 and performs no write.
func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	existing, err := h.Store.FindByEmail(r.Context(), req.Email)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if existing != nil {
		api.WriteError(w, http.StatusConflict, "USER_EXISTS", "user already exists")
		return
	}

	u, err := h.Store.Insert(r.Context(), req.Name, req.Email)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, u)
}

type GrantAdminRequest struct {
	Email string `json:"email"`
}

// GrantAdmin promotes the target email to admin. Only an admin caller may do
// this; the target user is upserted if missing.
func (h Handlers) GrantAdmin(w http.ResponseWriter, r *http.Request) {
	caller := api.CallerFromContext(r.Context())
	if err := h.Authz.RequireAdmin(r.Context(), caller); err != nil {
		authz.WriteDenied(w, err)
		return
	}

	var req GrantAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	res, err := h.Store.GrantAdmin(r.Context(), req.Email)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}
