package order

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/api"
	"storefront/internal/authz"
)

type Store interface {
	List(ctx context.Context) ([]Order, error)
	Insert(ctx context.Context, o Order) (*Order, error)
	DeleteByID(ctx context.Context, id string) (*DeleteResult, error)
	SetCompleted(ctx context.Context, id string, completed bool) (*UpdateResult, error)
}

type Handlers struct {
	Store Store
	Authz authz.Authorizer
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Store.List(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, orders)
}

// Create places an order for the caller. Any authenticated user may order;
// the order email is the verified caller, not whatever the body claims.
func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	caller := api.CallerFromContext(r.Context())
	if caller == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "you are not logged in")
		return
	}

	var o Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	o.ID = primitive.NilObjectID
	o.Email = caller.Email
	o.Completed = false

	created, err := h.Store.Insert(r.Context(), o)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, created)
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	caller := api.CallerFromContext(r.Context())
	if err := h.Authz.RequireAdmin(r.Context(), caller); err != nil {
		authz.WriteDenied(w, err)
		return
	}

	res, err := h.Store.DeleteByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}

type CompleteRequest struct {
	Completed bool `json:"completed"`
}

// Complete sets the completion flag on an order. Admin only.
func (h Handlers) Complete(w http.ResponseWriter, r *http.Request) {
	caller := api.CallerFromContext(r.Context())
	if err := h.Authz.RequireAdmin(r.Context(), caller); err != nil {
		authz.WriteDenied(w, err)
		return
	}

	var req CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	res, err := h.Store.SetCompleted(r.Context(), chi.URLParam(r, "id"), req.Completed)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}
