// Package config assembles the runtime settings of the catalog CLI from
// layered sources: defaults, then environment (.env and process env), then
// a JSON file, then command-line flags. Later sources take precedence.
package config

// Config holds runtime settings for the catalog CLI.
//
// Fields:
//   - APIBaseURL: full URL of the action-dispatch endpoint.
//   - AssetBaseURL: origin serving the static core assets.
//   - CoreAssets: paths (relative to AssetBaseURL) primed for offline use.
//   - CacheVersion: version token naming the offline cache generation;
//     bumping it is the only way to invalidate primed assets.
//   - CacheDBFile: sqlite file backing the offline cache.
//   - SessionFile: file slot persisting the auth credential.
type Config struct {
	APIBaseURL   string
	AssetBaseURL string
	CoreAssets   []string
	CacheVersion string
	CacheDBFile  string
	SessionFile  string
}

// LoadDefaults populates c with the production endpoints and the core
// asset manifest.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://script.google.com/macros/s/AKfycbzffRS84vdwbMvl-rlimoWYzL9ACJnuV-bE4uG6KKkoI12DqaOZxIFLwgtw7saRi8hi/exec"
	c.AssetBaseURL = "https://juniorprueva.github.io/pwa-catalogo-fulltech"
	c.CoreAssets = []string{"/", "/index.html", "/styles.css", "/app.js", "/manifest.webmanifest"}
	c.CacheVersion = "v1"
	c.CacheDBFile = "offline-cache.db"
	c.SessionFile = "catalogo_token_v1.json"
}

// AssetURLs returns the absolute URLs of the core asset manifest.
func (c *Config) AssetURLs() []string {
	urls := make([]string, 0, len(c.CoreAssets))
	for _, path := range c.CoreAssets {
		urls = append(urls, c.AssetBaseURL+path)
	}
	return urls
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
