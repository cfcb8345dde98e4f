// README: Config loader with env defaults for HTTP, upstream AI models, and the optional usage ledger.
package config

import "os"

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	AI struct {
		GeminiKey  string
		BaseURL    string
		TextModel  string
		ImageModel string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("VOYAGO_HTTP_ADDR", ":8080")

	// The usage ledger is optional; empty values disable it.
	cfg.DB.DSN = os.Getenv("VOYAGO_DB_DSN")
	cfg.Redis.Addr = os.Getenv("VOYAGO_REDIS_ADDR")

	// A missing key must not fail startup: the assistant endpoint reports it
	// per request with a proper JSON error body.
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.BaseURL = envOrDefault("VOYAGO_UPSTREAM_BASE", "https://generativelanguage.googleapis.com/v1beta")
	cfg.AI.TextModel = envOrDefault("VOYAGO_TEXT_MODEL", "gemini-2.0-flash")
	cfg.AI.ImageModel = envOrDefault("VOYAGO_IMAGE_MODEL", "imagen-3.0-generate-002")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
