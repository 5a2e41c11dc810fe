package main

import (
	"context"
	"fmt"
	"os"

	"storefront/pkg/config"
	"storefront/pkg/db"
)

func main() {
	cfg := config.Load()
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "file://migrations"
	}

	if err := db.MigrateConfig(cfg.MigrationsPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "migrate failed: %v\n", err)
		os.Exit(1)
	}

	// Sanity check: ensure the runtime connection can open. We don't print
	// URIs here to avoid leaking credentials into logs.
	client, err := db.Open(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "runtime db open failed: %v\n", err)
		os.Exit(1)
	}
	_ = client.Disconnect(context.Background())

	fmt.Println("migrations applied")
}
