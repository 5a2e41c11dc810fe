package product

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
	List(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id string) (*Product, error)
	Insert(ctx context.Context, p Product) (*Product, error)
	DeleteByID(ctx context.Context, id string) (*DeleteResult, error)
}

type Handlers struct {
	Store Store
	Authz authz.Authorizer
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.List(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, products)
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Store.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if p == nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "product not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, p)
}

func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	caller := api.CallerFromContext(r.Context())
	if err := h.Authz.RequireAdmin(r.Context(), caller); err != nil {
		authz.WriteDenied(w, err)
		return
	}

	var p Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	// Ids are assigned by the store.
	p.ID = primitive.NilObjectID

	created, err := h.Store.Insert(r.Context(), p)
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
