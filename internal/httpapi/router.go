package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/api"
	"storefront/internal/authz"
	"storefront/internal/order"
	"storefront/internal/product"
	"storefront/internal/review"
	"storefront/internal/user"
	"storefront/pkg/config"
	"storefront/pkg/idtoken"
)

type Dependencies struct {
	Cfg config.Config
	DB  *mongo.Database
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(api.CORSMiddleware(api.CORSOptions{
		AllowedOrigins: deps.Cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAgeSeconds:  600,
	}))
	r.Use(api.BearerAuth(idtoken.Verifier{
		Audience: deps.Cfg.Auth.Audience,
		Secret:   deps.Cfg.Auth.Secret,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	usersRepo := user.NewRepository(deps.DB)
	az := authz.Authorizer{Roles: usersRepo}

	userHandlers := user.Handlers{Store: usersRepo, Authz: az}
	productHandlers := product.Handlers{Store: product.NewRepository(deps.DB), Authz: az}
	reviewHandlers := review.Handlers{Store: review.NewRepository(deps.DB)}
	orderHandlers := order.Handlers{Store: order.NewRepository(deps.DB), Authz: az}

	r.Get("/products", productHandlers.List)
	r.Get("/products/{id}", productHandlers.Get)
	r.Post("/products", productHandlers.Create)
	r.Delete("/products/{id}", productHandlers.Delete)

	r.Get("/users", userHandlers.List)
	r.Get("/users/{email}", userHandlers.IsAdmin)
	r.Post("/users", userHandlers.Create)
	r.Put("/user/admin", userHandlers.GrantAdmin)

	r.Get("/reviews", reviewHandlers.List)
	r.Get("/review", reviewHandlers.Mine)
	r.Post("/reviews", reviewHandlers.Create)

	r.Get("/orders", orderHandlers.List)
	r.Post("/orders", orderHandlers.Create)
	r.Delete("/orders/{id}", orderHandlers.Delete)
	r.Put("/orders/{id}", orderHandlers.Complete)

	return r
}
