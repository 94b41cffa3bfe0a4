package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/catalog"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/client"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/models"
)

// Upload is one pending file attached to a product save. Field names the
// product attribute the uploaded URL lands in: imagen, imagen2, imagen3 or
// video.
type Upload struct {
	Field    string
	FileName string
	MimeType string
	Data     []byte
}

// CatalogService bridges the remote client and the catalog store.
//
// Save and Delete return (Outcome, error): a non-nil error means the
// mutation was refused before anything was applied (missing credential,
// failed upload); Outcome.Err means it was applied optimistically and then
// rolled back when the server rejected it.
type CatalogService interface {
	Load(ctx context.Context) ([]models.Product, error)
	Visible(term, category string) []models.Product
	Save(ctx context.Context, p models.Product, uploads []Upload) (catalog.Outcome, error)
	Delete(ctx context.Context, id string) (catalog.Outcome, error)
}

type catalogService struct {
	client client.Client
	store  *catalog.Store
	auth   AuthService
}

func NewCatalogService(c client.Client, store *catalog.Store, auth AuthService) CatalogService {
	return &catalogService{client: c, store: store, auth: auth}
}

// Load fetches a fresh full list (cache-busted upstream) and overwrites
// the store.
func (s *catalogService) Load(ctx context.Context) ([]models.Product, error) {
	items, err := s.client.ListProducts(ctx, s.auth.Current())
	if err != nil {
		return nil, fmt.Errorf("loading products: %w", err)
	}
	s.store.ReplaceAll(items)
	return items, nil
}

// Visible filters the cached sequence for presentation.
func (s *catalogService) Visible(term, category string) []models.Product {
	return catalog.Filter(s.store.Snapshot(), term, category, s.auth.IsAdmin())
}

// Save uploads the attached files concurrently, then runs the optimistic
// upsert. Uploads complete before the record mutation is issued; the first
// upload failure aborts the whole save and sibling results are discarded.
func (s *catalogService) Save(ctx context.Context, p models.Product, uploads []Upload) (catalog.Outcome, error) {
	cred := s.auth.Current()
	if !cred.IsAdmin() {
		return catalog.Outcome{}, client.ErrUnauthorized
	}

	if len(uploads) > 0 {
		urls := make([]string, len(uploads))

		g, gctx := errgroup.WithContext(ctx)
		for i, up := range uploads {
			i, up := i, up
			g.Go(func() error {
				url, err := s.client.UploadFile(gctx, up.FileName, up.MimeType, up.Data, cred)
				if err != nil {
					return fmt.Errorf("uploading %s: %w", up.FileName, err)
				}
				urls[i] = url
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return catalog.Outcome{}, err
		}

		for i, up := range uploads {
			var err error
			p, err = withUploadURL(p, up.Field, urls[i])
			if err != nil {
				return catalog.Outcome{}, err
			}
		}
	}

	outcome := s.store.OptimisticUpsert(ctx, p, func(ctx context.Context, payload models.Product) (*models.Product, error) {
		return s.client.UpsertProduct(ctx, payload, cred)
	})
	return outcome, nil
}

// Delete runs the optimistic remove.
func (s *catalogService) Delete(ctx context.Context, id string) (catalog.Outcome, error) {
	cred := s.auth.Current()
	if !cred.IsAdmin() {
		return catalog.Outcome{}, client.ErrUnauthorized
	}

	outcome := s.store.OptimisticRemove(ctx, id, func(ctx context.Context, id string) error {
		return s.client.DeleteProduct(ctx, id, cred)
	})
	return outcome, nil
}

func withUploadURL(p models.Product, field, url string) (models.Product, error) {
	switch field {
	case "imagen":
		p.Imagen = url
	case "imagen2":
		p.Imagen2 = url
	case "imagen3":
		p.Imagen3 = url
	case "video":
		p.Video = url
	default:
		return p, fmt.Errorf("unknown upload field %q", field)
	}
	return p, nil
}
