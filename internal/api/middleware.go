package api

import (
	"context"
	"net/http"
	"strings"

	"storefront/pkg/idtoken"
)

// TokenVerifier is the identity provider seen from this backend: it turns an
// opaque bearer token into a verified identity or fails.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, token string) (*idtoken.Identity, error)
}

// BearerAuth authenticates the Authorization header on every request.
//
// Contract:
// - No header, or a header that isn't `Bearer <token>`: the request proceeds
//   anonymous. Public routes stay public.
// - `Bearer <token>` present: the token is verified. A token that fails
//   verification is rejected with 401 outright; it does not degrade to an
//   anonymous request.
func BearerAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := strings.TrimSpace(r.Header.Get("Authorization"))
			if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimSpace(authz[7:])
			id, err := verifier.VerifyIDToken(r.Context(), token)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid id token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), &Caller{Email: id.Email})))
		})
	}
}
