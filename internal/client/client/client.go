package client

import (
	"context"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/models"
)

// Client is the transport-agnostic contract against the catalog backend.
// Mutating operations require a credential and are short-circuited locally
// with ErrUnauthorized when it is absent.
type Client interface {
	Close() error
	Login(ctx context.Context, username, password string) (*models.Credential, error)
	ListProducts(ctx context.Context, cred *models.Credential) ([]models.Product, error)
	UpsertProduct(ctx context.Context, p models.Product, cred *models.Credential) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string, cred *models.Credential) error
	UploadFile(ctx context.Context, fileName, mimeType string, data []byte, cred *models.Credential) (string, error)
	GetSiteSettings(ctx context.Context) (models.SiteSettings, error)
	UpdateSiteSettings(ctx context.Context, s models.SiteSettings, cred *models.Credential) (models.SiteSettings, error)
}
