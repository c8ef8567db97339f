// Package client is a thin HTTP client for the catalog API. It keeps the
// bearer token in an explicit Session, attaches it to every request, and
// intercepts authentication failures: on any 401 the session is cleared and
// the OnUnauthorized hook fires so the caller can route back to login. All
// other errors surface unmodified as *APIError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"catalog/internal/models"
)

// Session holds the bearer token for one client instance. It is safe for
// concurrent use and replaces ambient global token storage.
type Session struct {
	mu    sync.RWMutex
	token string
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// Token returns the stored token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken stores a token.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear drops the stored token.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// APIError is a non-2xx response from the API. Errors holds per-field
// validation messages when the server sent them.
type APIError struct {
	StatusCode int
	Message    string
	Errors     map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// IsValidation reports whether the error carries field-level messages.
func (e *APIError) IsValidation() bool {
	return e.StatusCode == http.StatusUnprocessableEntity
}

// IsNotFound reports whether the referenced record does not exist.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client calls the catalog API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session

	// OnUnauthorized is invoked after the session has been cleared when any
	// request is rejected with 401. Optional.
	OnUnauthorized func()
}

// New creates a client for the API at baseURL (e.g. "http://localhost:8080/api").
func New(baseURL string, session *Session) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		session:    session,
	}
}

// Session returns the client's session.
func (c *Client) Session() *Session {
	return c.session
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ProductInput carries the fields for creating a product.
type ProductInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	CategoryID    uint    `json:"category_id"`
	Status        string  `json:"status"`
}

// ProductUpdate carries a partial update; nil fields are omitted from the
// request body entirely.
type ProductUpdate struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	StockQuantity *int     `json:"stock_quantity,omitempty"`
	CategoryID    *uint    `json:"category_id,omitempty"`
	Status        *string  `json:"status,omitempty"`
}

// Login authenticates and stores the issued token in the session.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", body, &resp); err != nil {
		return nil, err
	}
	c.session.SetToken(resp.AccessToken)
	return &resp, nil
}

// Logout revokes the current token server-side. The session is cleared even
// when the call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/logout", nil, nil)
	c.session.Clear()
	return err
}

// Me returns the authenticated principal.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Products lists products. A categoryID of 0 returns all products.
func (c *Client) Products(ctx context.Context, categoryID uint) ([]models.Product, error) {
	path := "/products"
	if categoryID != 0 {
		path += "?category_id=" + strconv.FormatUint(uint64(categoryID), 10)
	}
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches one product with its category attached.
func (c *Client) Product(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, productPath(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a product.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodPost, "/products", input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct applies a partial update.
func (c *Client) UpdateProduct(ctx context.Context, id uint, update ProductUpdate) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodPut, productPath(id), update, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, productPath(id), nil, nil)
}

// Categories lists all categories.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, name, description string) (*models.Category, error) {
	body := map[string]string{"name": name, "description": description}
	var category models.Category
	if err := c.do(ctx, http.MethodPost, "/categories", body, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func productPath(id uint) string {
	return "/products/" + strconv.FormatUint(uint64(id), 10)
}

// do issues one request. Request bodies are JSON; responses are decoded into
// out when it is non-nil and the server sent content.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.session.Clear()
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return decodeAPIError(resp)
	}
	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var body struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
		apiErr.Errors = body.Errors
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
