package config

import (
	"flag"
	"os"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   API endpoint URL (default from Config)
//	-b string   static asset origin (default from Config)
//	-v string   offline cache version token (default from Config)
//	-d string   offline cache sqlite file (default from Config)
//	-s string   credential slot file (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-v", "-d", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API endpoint URL")
	fs.StringVar(&cfg.AssetBaseURL, "b", cfg.AssetBaseURL, "static asset origin")
	fs.StringVar(&cfg.CacheVersion, "v", cfg.CacheVersion, "offline cache version token")
	fs.StringVar(&cfg.CacheDBFile, "d", cfg.CacheDBFile, "offline cache sqlite file")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "credential slot file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
