package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/client"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/models"
)

// fakeClient implements client.Client with programmable responses so the
// services can be exercised without a server.
type fakeClient struct {
	mu sync.Mutex

	loginCred *models.Credential
	loginErr  error

	products []models.Product
	listErr  error

	upsertErr   error
	upserted    []models.Product
	nextID      int
	deleteErr   error
	deleted     []string
	uploadErr   error
	uploadCalls []string

	settings       models.SiteSettings
	getSettingsErr error
	updateErr      error
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.Credential, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginCred, nil
}

func (f *fakeClient) ListProducts(ctx context.Context, cred *models.Credential) ([]models.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeClient) UpsertProduct(ctx context.Context, p models.Product, cred *models.Credential) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	if p.ID == "" {
		f.nextID++
		p.ID = fmt.Sprintf("srv-%d", f.nextID)
	}
	f.upserted = append(f.upserted, p)
	return &p, nil
}

func (f *fakeClient) DeleteProduct(ctx context.Context, id string, cred *models.Credential) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeClient) UploadFile(ctx context.Context, fileName, mimeType string, data []byte, cred *models.Credential) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploadCalls = append(f.uploadCalls, fileName)
	return "https://cdn.example/" + fileName, nil
}

func (f *fakeClient) GetSiteSettings(ctx context.Context) (models.SiteSettings, error) {
	if f.getSettingsErr != nil {
		return models.SiteSettings{}, f.getSettingsErr
	}
	return f.settings, nil
}

func (f *fakeClient) UpdateSiteSettings(ctx context.Context, s models.SiteSettings, cred *models.Credential) (models.SiteSettings, error) {
	if f.updateErr != nil {
		return models.SiteSettings{}, f.updateErr
	}
	f.settings = s
	return s, nil
}
