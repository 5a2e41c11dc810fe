package review

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/api"
)

type Store interface {
	List(ctx context.Context) ([]Review, error)
	ListByEmail(ctx context.Context, email string) ([]Review, error)
	FindByEmail(ctx context.Context, email string) (*Review, error)
	Insert(ctx context.Context, rv Review) (*Review, error)
}

type Handlers struct {
	Store Store
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Store.List(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, reviews)
}

// Mine lists the caller's own reviews.
func (h Handlers) Mine(w http.ResponseWriter, r *http.Request) {
	caller := api.CallerFromContext(r.Context())
	if caller == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "you are not logged in")
		return
	}

	reviews, err := h.Store.ListByEmail(r.Context(), caller.Email)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, reviews)
}

// Create inserts a review and answers with the stored document, re-read by
// the reviewer's email.
func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var rv Review
	if err := json.NewDecoder(r.Body).Decode(&rv); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	rv.ID = primitive.NilObjectID

	if _, err := h.Store.Insert(r.Context(), rv); err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	stored, err := h.Store.FindByEmail(r.Context(), rv.Email)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, stored)
}
