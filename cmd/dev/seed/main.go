// Seeds a local database with an admin user and a small sample catalog.
// Safe to re-run: existing users are promoted rather than duplicated, and
// sample products are only inserted into an empty catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"storefront/internal/product"
	"storefront/internal/user"
	"storefront/pkg/config"
	"storefront/pkg/db"
)

func main() {
	var (
		email    = flag.String("email", "", "admin email to create/promote")
		name     = flag.String("name", "Admin", "admin display name")
		products = flag.Bool("products", true, "insert sample products into an empty catalog")
	)
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "missing -email")
		os.Exit(2)
	}

	cfg := config.Load()
	ctx := context.Background()

	client, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	database := client.Database(cfg.Mongo.Database)
	users := user.NewRepository(database)

	existing, err := users.FindByEmail(ctx, *email)
	if err != nil {
		log.Fatalf("find user: %v", err)
	}
	if existing == nil {
		if _, err := users.Insert(ctx, *name, *email); err != nil {
			log.Fatalf("insert user: %v", err)
		}
		log.Printf("created user %s", *email)
	}
	if _, err := users.GrantAdmin(ctx, *email); err != nil {
		log.Fatalf("grant admin: %v", err)
	}
	log.Printf("%s is admin", *email)

	if *products {
		catalog := product.NewRepository(database)
		seedCatalog(ctx, catalog)
	}
}

func seedCatalog(ctx context.Context, catalog *product.Repository) {
	existing, err := catalog.List(ctx)
	if err != nil {
		log.Fatalf("list products: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("catalog already has %d products, skipping samples", len(existing))
		return
	}

	samples := []product.Product{
		{Title: "Ceramic Mug", Price: decimal.RequireFromString("12.50"), Description: "Hand-glazed 350ml mug", Image: "/img/mug.jpg"},
		{Title: "Linen Tote", Price: decimal.RequireFromString("24.00"), Description: "Natural linen tote bag", Image: "/img/tote.jpg"},
		{Title: "Walnut Tray", Price: decimal.RequireFromString("39.90"), Description: "Solid walnut serving tray", Image: "/img/tray.jpg"},
	}
	for _, p := range samples {
		if _, err := catalog.Insert(ctx, p); err != nil {
			log.Fatalf("insert product %q: %v", p.Title, err)
		}
	}
	log.Printf("inserted %d sample products", len(samples))
}
