package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/models"
)

// HTTPClient is the concrete Client for the single-endpoint action-dispatch
// API. Every call targets the same base URL with an "action" query
// parameter; the Authorization value travels as a URL-encoded query
// parameter valued "Bearer <token>", an accommodation kept from the
// original transport. List fetches carry a "nocache" cache-buster so
// product availability and pricing are never served stale.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	now     func() time.Time
}

// NewHTTPClient binds the client to the API base URL. A nil hc falls back
// to a default http.Client; pass a client whose transport is the offline
// worker to route requests through the interception layer.
func NewHTTPClient(baseURL string, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = &http.Client{}
	}
	return &HTTPClient{baseURL: baseURL, http: hc, now: time.Now}
}

// envelope is the uniform response shape: {ok:true, data} or
// {ok:false, error}. Anything else is a transport-level failure.
type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func (c *HTTPClient) actionURL(action string, cred *models.Credential, cacheBust bool) string {
	v := url.Values{}
	v.Set("action", action)
	if cred != nil && cred.Token != "" {
		v.Set("Authorization", "Bearer "+cred.Token)
	}
	if cacheBust {
		v.Set("nocache", strconv.FormatInt(c.now().UnixMilli(), 10))
	}
	return c.baseURL + "?" + v.Encode()
}

// do issues the request, validates the transport status, and unwraps the
// response envelope into out (when non-nil).
func (c *HTTPClient) do(ctx context.Context, method, u string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}
	if !env.OK {
		return &RemoteError{Message: env.Error}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: malformed payload: %v", ErrUnavailable, err)
		}
	}
	return nil
}

// requireCredential gates mutating calls client-side so an unauthenticated
// attempt never reaches the network.
func requireCredential(cred *models.Credential) error {
	if cred == nil || cred.Token == "" {
		return ErrUnauthorized
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.Credential, error) {
	body := map[string]string{"username": username, "password": password}

	var cred models.Credential
	if err := c.do(ctx, http.MethodPost, c.actionURL("login", nil, false), body, &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

func (c *HTTPClient) ListProducts(ctx context.Context, cred *models.Credential) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, c.actionURL("products", cred, true), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) UpsertProduct(ctx context.Context, p models.Product, cred *models.Credential) (*models.Product, error) {
	if err := requireCredential(cred); err != nil {
		return nil, err
	}

	var saved models.Product
	if err := c.do(ctx, http.MethodPost, c.actionURL("upsertproduct", cred, false), p, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id string, cred *models.Credential) error {
	if err := requireCredential(cred); err != nil {
		return err
	}

	body := map[string]string{"id": id}
	return c.do(ctx, http.MethodPost, c.actionURL("deleteproduct", cred, false), body, nil)
}

func (c *HTTPClient) UploadFile(ctx context.Context, fileName, mimeType string, data []byte, cred *models.Credential) (string, error) {
	if err := requireCredential(cred); err != nil {
		return "", err
	}

	body := map[string]string{
		"fileName": fileName,
		"mimeType": mimeType,
		"data":     base64.StdEncoding.EncodeToString(data),
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, c.actionURL("uploadfile", cred, false), body, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (c *HTTPClient) GetSiteSettings(ctx context.Context) (models.SiteSettings, error) {
	var settings models.SiteSettings
	if err := c.do(ctx, http.MethodGet, c.actionURL("getsitesettings", nil, false), nil, &settings); err != nil {
		return models.SiteSettings{}, err
	}
	return settings, nil
}

func (c *HTTPClient) UpdateSiteSettings(ctx context.Context, s models.SiteSettings, cred *models.Credential) (models.SiteSettings, error) {
	if err := requireCredential(cred); err != nil {
		return models.SiteSettings{}, err
	}

	var saved models.SiteSettings
	if err := c.do(ctx, http.MethodPost, c.actionURL("updatesitesettings", cred, false), s, &saved); err != nil {
		return models.SiteSettings{}, err
	}
	return saved, nil
}

// Close releases transport resources held by the underlying http.Client.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
