package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/catalog"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/client"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/config"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/models"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/offline"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/router"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/services"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/session"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the offline worker, the API client, the catalog store and the
// services behind the interactive storefront CLI.
type App struct {
	config          *config.Config
	log             logging.Logger
	authService     services.AuthService
	catalogService  services.CatalogService
	settingsService services.SettingsService
	resolver        *router.Resolver
	reader          *bufio.Reader

	route    router.Route
	term     string
	category string
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := offline.InitDatabase(ctx, c.CacheDBFile)
	if err != nil {
		return nil, fmt.Errorf("initializing offline cache: %w", err)
	}

	apiURL, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}

	worker := offline.NewWorker(c.CacheVersion, c.AssetURLs(), apiURL.Host, offline.NewSQLiteRepository(db), nil, logger)
	if err := worker.Install(ctx); err != nil {
		// A failed install leaves the worker inactive: every request
		// passes straight through, no partial offline capability.
		logger.Warn(ctx, "offline cache priming failed", "err", err)
	} else if err := worker.Activate(ctx); err != nil {
		logger.Warn(ctx, "offline worker activation failed", "err", err)
	}

	apiClient := client.NewHTTPClient(c.APIBaseURL, &http.Client{Transport: worker})

	store := catalog.NewStore()
	sess := session.NewStore(c.SessionFile)

	as := services.NewAuthService(apiClient, sess)
	cs := services.NewCatalogService(apiClient, store, as)
	ss := services.NewSettingsService(apiClient, as)

	resolver := router.NewResolver(store, func(ctx context.Context) ([]models.Product, error) {
		return apiClient.ListProducts(ctx, as.Current())
	})

	return &App{
		config:          c,
		log:             logger,
		authService:     as,
		catalogService:  cs,
		settingsService: ss,
		resolver:        resolver,
		reader:          bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isAdmin() bool {
	return a.authService.IsAdmin()
}

func (a *App) getStatus() string {
	s := "guest"
	if cred := a.authService.Current(); cred != nil {
		s = cred.User.Name
		if s == "" {
			s = "user"
		}
		if cred.IsAdmin() {
			s += " admin"
		}
	}
	return fmt.Sprintf("(%s)", s)
}

// Run loads the catalog and the site settings, then hands control to the
// REPL. A failed initial load is reported and the loop starts anyway; the
// user can retry with the list command.
func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)

	if _, err := a.catalogService.Load(ctx); err != nil {
		a.log.Error(ctx, "initial product load failed", "err", err)
	}
	if _, err := a.settingsService.Load(ctx); err != nil {
		a.log.Warn(ctx, "site settings unavailable, using defaults", "err", err)
	}

	a.route = router.Parse("")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
