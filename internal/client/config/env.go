package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// loading a .env file first when one exists. A missing .env is not an
// error.
//
// Recognized variables:
//
//	CATALOGO_API_BASE       full API endpoint URL
//	CATALOGO_ASSET_BASE     origin of the static core assets
//	CATALOGO_CACHE_VERSION  offline cache version token
//	CATALOGO_CACHE_DB       offline cache sqlite file
//	CATALOGO_SESSION_FILE   credential slot file
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	overlay := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	overlay(&cfg.APIBaseURL, "CATALOGO_API_BASE")
	overlay(&cfg.AssetBaseURL, "CATALOGO_ASSET_BASE")
	overlay(&cfg.CacheVersion, "CATALOGO_CACHE_VERSION")
	overlay(&cfg.CacheDBFile, "CATALOGO_CACHE_DB")
	overlay(&cfg.SessionFile, "CATALOGO_SESSION_FILE")
}
