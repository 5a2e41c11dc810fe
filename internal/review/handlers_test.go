package review

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/api"
)

type fakeStore struct {
	reviews []Review
}

func (f *fakeStore) List(ctx context.Context) ([]Review, error) {
	return f.reviews, nil
}

func (f *fakeStore) ListByEmail(ctx context.Context, email string) ([]Review, error) {
	out := []Review{}
	for _, rv := range f.reviews {
		if rv.Email == email {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (f *fakeStore) FindByEmail(ctx context.Context, email string) (*Review, error) {
	for _, rv := range f.reviews {
		if rv.Email == email {
			return &rv, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Insert(ctx context.Context, rv Review) (*Review, error) {
	f.reviews = append(f.reviews, rv)
	return &rv, nil
}

func TestMine_AnonymousRejected(t *testing.T) {
	h := Handlers{Store: &fakeStore{}}

	rec := httptest.NewRecorder()
	h.Mine(rec, httptest.NewRequest(http.MethodGet, "/review", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestMine_FiltersToCaller(t *testing.T) {
	h := Handlers{Store: &fakeStore{reviews: []Review{
		{Email: "a@x.com", Text: "great"},
		{Email: "b@x.com", Text: "meh"},
		{Email: "a@x.com", Text: "still great"},
	}}}

	req := httptest.NewRequest(http.MethodGet, "/review", nil)
	req = req.WithContext(api.WithCaller(req.Context(), &api.Caller{Email: "a@x.com"}))

	rec := httptest.NewRecorder()
	h.Mine(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []Review
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d reviews, want 2", len(got))
	}
	for _, rv := range got {
		if rv.Email != "a@x.com" {
			t.Fatalf("leaked review for %q", rv.Email)
		}
	}
}

func TestCreate_InsertsAndEchoesStored(t *testing.T) {
	f := &fakeStore{}
	h := Handlers{Store: f}

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(`{"name":"A","email":"a@x.com","text":"great","star":5}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(f.reviews) != 1 {
		t.Fatalf("inserted %d, want 1", len(f.reviews))
	}
	var got Review
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Star != 5 || got.Email != "a@x.com" {
		t.Fatalf("stored review mismatch: %+v", got)
	}
}
