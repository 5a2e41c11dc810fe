package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/api"
	"storefront/internal/authz"
)

type fakeRoles map[string]string

func (f fakeRoles) RoleByEmail(ctx context.Context, email string) (string, error) {
	return f[email], nil
}

type fakeStore struct {
	orders  map[string]*Order
	inserts int
	updates int
	deletes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{orders: map[string]*Order{}}
}

func (f *fakeStore) List(ctx context.Context) ([]Order, error) {
	out := []Order{}
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeStore) Insert(ctx context.Context, o Order) (*Order, error) {
	f.inserts++
	o.ID = primitive.NewObjectID()
	f.orders[o.ID.Hex()] = &o
	return &o, nil
}

func (f *fakeStore) DeleteByID(ctx context.Context, id string) (*DeleteResult, error) {
	f.deletes++
	if _, ok := f.orders[id]; ok {
		delete(f.orders, id)
		return &DeleteResult{Deleted: 1}, nil
	}
	return &DeleteResult{}, nil
}

func (f *fakeStore) SetCompleted(ctx context.Context, id string, completed bool) (*UpdateResult, error) {
	f.updates++
	if o, ok := f.orders[id]; ok {
		modified := int64(0)
		if o.Completed != completed {
			o.Completed = completed
			modified = 1
		}
		return &UpdateResult{Matched: 1, Modified: modified}, nil
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	f.orders[id] = &Order{ID: oid, Completed: completed}
	return &UpdateResult{Upserted: 1}, nil
}

func newHandlers(store *fakeStore, roles fakeRoles) Handlers {
	return Handlers{Store: store, Authz: authz.Authorizer{Roles: roles}}
}

func asCaller(r *http.Request, email string) *http.Request {
	return r.WithContext(api.WithCaller(r.Context(), &api.Caller{Email: email}))
}

func TestCreate_AnonymousRejected(t *testing.T) {
	store := newFakeStore()
	h := newHandlers(store, fakeRoles{})

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"address":"1 Main St","totalItems":2,"total":"20.00"}`)))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if store.inserts != 0 {
		t.Fatal("insert must not run anonymously")
	}
}

func TestCreate_StampsCallerEmail(t *testing.T) {
	store := newFakeStore()
	h := newHandlers(store, fakeRoles{})

	body := `{"address":"1 Main St","totalItems":2,"total":"20.00","email":"spoofed@x.com"}`
	req := asCaller(httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)), "buyer@x.com")

	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var got Order
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Email != "buyer@x.com" {
		t.Fatalf("email = %q, want verified caller", got.Email)
	}
	if got.Completed {
		t.Fatal("new order must not be completed")
	}
}

func TestDelete_NonAdminRejected(t *testing.T) {
	store := newFakeStore()
	o, _ := store.Insert(context.Background(), Order{Address: "1 Main St"})
	store.deletes = 0
	h := newHandlers(store, fakeRoles{"buyer@x.com": ""})

	r := chi.NewRouter()
	r.Delete("/orders/{id}", h.Delete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, asCaller(httptest.NewRequest(http.MethodDelete, "/orders/"+o.ID.Hex(), nil), "buyer@x.com"))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if store.deletes != 0 || len(store.orders) != 1 {
		t.Fatal("denied delete must not touch the store")
	}
}

func TestComplete_NonAdminRejected(t *testing.T) {
	store := newFakeStore()
	o, _ := store.Insert(context.Background(), Order{Address: "1 Main St"})
	h := newHandlers(store, fakeRoles{"buyer@x.com": ""})

	r := chi.NewRouter()
	r.Put("/orders/{id}", h.Complete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, asCaller(httptest.NewRequest(http.MethodPut, "/orders/"+o.ID.Hex(), strings.NewReader(`{"completed":true}`)), "buyer@x.com"))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if store.updates != 0 || store.orders[o.ID.Hex()].Completed {
		t.Fatal("denied completion must not touch the store")
	}
}

func TestComplete_AdminIsIdempotent(t *testing.T) {
	store := newFakeStore()
	o, _ := store.Insert(context.Background(), Order{Address: "1 Main St"})
	h := newHandlers(store, fakeRoles{"root@x.com": authz.RoleAdmin})

	r := chi.NewRouter()
	r.Put("/orders/{id}", h.Complete)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, asCaller(httptest.NewRequest(http.MethodPut, "/orders/"+o.ID.Hex(), strings.NewReader(`{"completed":true}`)), "root@x.com"))
		if rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: status = %d, want 200", i+1, rec.Code)
		}
	}

	if !store.orders[o.ID.Hex()].Completed {
		t.Fatal("order must be completed")
	}
	if len(store.orders) != 1 {
		t.Fatal("replay must not create a second order")
	}
}

func TestDelete_Admin(t *testing.T) {
	store := newFakeStore()
	o, _ := store.Insert(context.Background(), Order{Address: "1 Main St"})
	h := newHandlers(store, fakeRoles{"root@x.com": authz.RoleAdmin})

	r := chi.NewRouter()
	r.Delete("/orders/{id}", h.Delete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, asCaller(httptest.NewRequest(http.MethodDelete, "/orders/"+o.ID.Hex(), nil), "root@x.com"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(store.orders) != 0 {
		t.Fatal("order must be deleted")
	}
}
