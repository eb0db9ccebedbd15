package showroom

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/royalbikes/showroom-backend/internal/domain/models"
)

// Client is a typed HTTP client for the showroom backend, intended for
// scripts and integration tests that drive the API.
type Client struct {
	httpClient *resty.Client
}

// NewClient builds a client against the given base URL.
func NewClient(baseURL string) *Client {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &Client{httpClient: restyClient}
}

// apiError is the backend's uniform error payload.
type apiError struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (e *apiError) message() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Error)
	}
	return e.Error
}

// Login authenticates and stores the issued token on the client; subsequent
// calls carry it as a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	result := new(models.LoginResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Email: email, Password: password}).
		SetResult(result).
		SetError(apiErr).
		Post("/login")
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("login failed: status=%d, message=%s", resp.StatusCode(), apiErr.message())
	}

	c.httpClient.SetAuthToken(result.Token)
	return result, nil
}

// Vehicles returns the vehicle catalog.
func (c *Client) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	result := new(struct {
		Vehicles []models.Vehicle `json:"vehicles"`
	})
	if err := c.get(ctx, "/api/vehicles", result); err != nil {
		return nil, err
	}
	return result.Vehicles, nil
}

// AddVehicle adds a catalog entry.
func (c *Client) AddVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error) {
	result := new(models.Vehicle)
	if err := c.post(ctx, "/api/vehicles", vehicle, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Quotations returns stored quotations, optionally filtered by a search term.
func (c *Client) Quotations(ctx context.Context, search string) ([]models.Quotation, error) {
	result := new(struct {
		Bills []models.Quotation `json:"bills"`
	})
	path := "/api/billing"
	if search != "" {
		path = fmt.Sprintf("%s?search=%s", path, search)
	}
	if err := c.get(ctx, path, result); err != nil {
		return nil, err
	}
	return result.Bills, nil
}

// CreateQuotation submits a quotation; the backend prices it and assigns
// the bill number.
func (c *Client) CreateQuotation(ctx context.Context, req models.QuotationRequest) (*models.Quotation, error) {
	result := new(models.Quotation)
	if err := c.post(ctx, "/api/billing", req, result); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateQuotation replaces a quotation wholesale.
func (c *Client) UpdateQuotation(ctx context.Context, id string, req models.QuotationRequest) (*models.Quotation, error) {
	result := new(models.Quotation)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(result).
		SetError(apiErr).
		Put("/api/billing/" + id)
	if err != nil {
		return nil, fmt.Errorf("update quotation: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("update quotation failed: status=%d, message=%s", resp.StatusCode(), apiErr.message())
	}
	return result, nil
}

// DeleteQuotation removes a quotation.
func (c *Client) DeleteQuotation(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/billing/"+id)
}

// BookQuotation promotes a quotation into a booked vehicle record.
func (c *Client) BookQuotation(ctx context.Context, id string) (*models.BookedVehicle, error) {
	result := new(models.BookedVehicle)
	if err := c.post(ctx, "/api/billing/"+id+"/book", nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

// BookedVehicles returns booked records, optionally filtered by a search term.
func (c *Client) BookedVehicles(ctx context.Context, search string) ([]models.BookedVehicle, error) {
	result := new(struct {
		BookedVehicles []models.BookedVehicle `json:"bookedVehicles"`
	})
	path := "/api/booked-vehicles"
	if search != "" {
		path = fmt.Sprintf("%s?search=%s", path, search)
	}
	if err := c.get(ctx, path, result); err != nil {
		return nil, err
	}
	return result.BookedVehicles, nil
}

// DeleteBookedVehicle removes a booked vehicle record.
func (c *Client) DeleteBookedVehicle(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/booked-vehicles/"+id)
}

// Dashboard returns the live quotation and booking counts.
func (c *Client) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	result := new(models.DashboardStats)
	if err := c.get(ctx, "/dashboard", result); err != nil {
		return nil, err
	}
	return result, nil
}

// Permissions returns the module permission matrix.
func (c *Client) Permissions(ctx context.Context) ([]models.Permission, error) {
	result := []models.Permission{}
	if err := c.get(ctx, "/api/permissions", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	apiErr := new(apiError)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("get %s failed: status=%d, message=%s", path, resp.StatusCode(), apiErr.message())
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, result interface{}) error {
	apiErr := new(apiError)
	req := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("post %s failed: status=%d, message=%s", path, resp.StatusCode(), apiErr.message())
	}
	return nil
}

func (c *Client) delete(ctx context.Context, path string) error {
	apiErr := new(apiError)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetError(apiErr).
		Delete(path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("delete %s failed: status=%d, message=%s", path, resp.StatusCode(), apiErr.message())
	}
	return nil
}
