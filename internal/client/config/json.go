package config

import (
	"encoding/json"
	"os"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After
// parsing, non-empty values are copied into the runtime Config.
type JsonConfig struct {
	APIBaseURL   string   `json:"api_base_url"`
	AssetBaseURL string   `json:"asset_base_url"`
	CoreAssets   []string `json:"core_assets"`
	CacheVersion string   `json:"cache_version"`
	CacheDBFile  string   `json:"cache_db_file"`
	SessionFile  string   `json:"session_file"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. No flag, no JSON: the function returns without
// effect. Read or unmarshal errors panic; the config layers run before any
// user interaction and a broken explicit config should stop the program.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	overlay(&cfg.APIBaseURL, jc.APIBaseURL)
	overlay(&cfg.AssetBaseURL, jc.AssetBaseURL)
	overlay(&cfg.CacheVersion, jc.CacheVersion)
	overlay(&cfg.CacheDBFile, jc.CacheDBFile)
	overlay(&cfg.SessionFile, jc.SessionFile)
	if len(jc.CoreAssets) > 0 {
		cfg.CoreAssets = jc.CoreAssets
	}
}
