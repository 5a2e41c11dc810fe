package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MigrationsPath string

	Mongo MongoConfig

	Auth AuthConfig

	// CORSAllowedOrigins is a comma-separated allowlist of origins allowed to
	// call the API from a browser. Example:
	//   https://shop.example.com,http://localhost:3000
	CORSAllowedOrigins []string
}

type MongoConfig struct {
	// URI is the runtime connection string.
	URI string

	// MigrateURI is used by the migration runner. The migrate mongodb driver
	// reads the database name from the URI path, so this one must carry it.
	// Falls back to URI when unset.
	MigrateURI string

	Database string
}

type AuthConfig struct {
	// Audience is the expected `aud` claim of incoming id tokens, i.e. this
	// backend's client id at the identity provider.
	Audience string

	// Secret is the shared HS256 signing secret for id tokens.
	Secret string
}

func Load() Config {
	// Convenience for local dev: load variables from .env if present.
	// In production, rely on real environment variables.
	_ = godotenv.Load()

	// Hosted runtimes set PORT. Prefer it when HTTP_ADDR isn't explicitly set.
	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			httpAddr = ":" + port
		} else {
			httpAddr = ":5000"
		}
	}

	return Config{
		AppEnv:         env("APP_ENV", "dev"),
		HTTPAddr:       httpAddr,
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		Mongo: MongoConfig{
			URI:        env("MONGO_URI", "mongodb://localhost:27017"),
			MigrateURI: os.Getenv("MONGO_MIGRATE_URI"),
			Database:   env("MONGO_DB", "storefront"),
		},
		Auth: AuthConfig{
			Audience: os.Getenv("AUTH_AUDIENCE"),
			Secret:   os.Getenv("AUTH_SECRET"),
		},
		CORSAllowedOrigins: envList("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
	}
}

func env(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func envList(key, fallbackCSV string) []string {
	v := os.Getenv(key)
	if v == "" {
		v = fallbackCSV
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
