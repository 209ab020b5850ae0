// Package client provides a typed HTTP client for the quoting API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fabforge/fabquote/internal/api/v1/handlers"
	routes "github.com/fabforge/fabquote/internal/api/v1/routes"
	"github.com/fabforge/fabquote/internal/api/v1/services"
	"github.com/fabforge/fabquote/internal/db/models"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Client defines the interface for interacting with the quoting API
type Client interface {
	// Session pipeline methods
	StartSession(ctx context.Context, req handlers.StartSessionRequest) (*services.StartSessionResult, error)
	GetSession(ctx context.Context, sessionID string) (*services.StatusResult, error)
	SubmitAnswers(ctx context.Context, sessionID string, answers map[string]string) (*services.AnswerResult, error)
	RetractAnswer(ctx context.Context, sessionID, field string) (*services.AnswerResult, error)
	AttachPhoto(ctx context.Context, sessionID string, req handlers.AttachPhotoRequest) (*services.PhotoResult, error)
	Calculate(ctx context.Context, sessionID string) (*services.CalculateResult, error)
	Estimate(ctx context.Context, sessionID string) (*services.EstimateResult, error)
	Price(ctx context.Context, sessionID string, markupPct int) (*services.PriceResult, error)

	// Quote methods
	GetQuote(ctx context.Context, quoteID uint) (*services.QuoteResult, error)
	ListQuotes(ctx context.Context, opts *models.ListOptions) ([]services.QuoteResult, error)
	RecalculateMarkup(ctx context.Context, quoteID uint, markupPct int) (*services.QuoteResult, error)
	UpdateQuoteStatus(ctx context.Context, quoteID uint, status string) error
	QuotePDF(ctx context.Context, quoteID uint) ([]byte, error)
	RecordActuals(ctx context.Context, quoteID uint, req handlers.ActualsRequest) (*models.HistoricalActual, error)

	// Health check
	HealthCheck(ctx context.Context) (map[string]string, error)
}

// ClientOptions contains configuration options for the API client
type ClientOptions struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration
}

// DefaultOptions returns the default client options
func DefaultOptions() *ClientOptions {
	return &ClientOptions{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a new API client with the given options
func NewClient(opts *ClientOptions) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	// Validate the base URL
	_, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return &APIClient{
		baseURL: opts.BaseURL,
		timeout: opts.Timeout,
	}, nil
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodDelete:
		agent = fiber.Delete(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	agent.Set("Content-Type", "application/json")
	agent.Set("Accept", "application/json")

	if body != nil {
		agent.JSON(body)
	}

	return agent, nil
}

// executeRequest creates an agent, sends the request, and decodes the
// response envelope into v.
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, body, v interface{}) error {
	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	statusCode, raw, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending request: %w", errs[0])
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}

	if statusCode < 200 || statusCode >= 300 {
		msg := env.Error
		if msg == "" {
			msg = "unknown error"
		}
		return &fiber.Error{
			Code:    statusCode,
			Message: msg,
		}
	}

	if v != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, v); err != nil {
			return fmt.Errorf("error decoding response data: %w", err)
		}
	}
	return nil
}

// rawRequest fetches a non-enveloped binary response, such as a PDF.
func (c *APIClient) rawRequest(ctx context.Context, endpoint string) ([]byte, error) {
	agent, err := c.createAgent(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	statusCode, raw, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("error sending request: %w", errs[0])
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, &fiber.Error{
			Code:    statusCode,
			Message: string(raw),
		}
	}
	return raw, nil
}

// Session pipeline methods implementation

// StartSession creates a new quote session
func (c *APIClient) StartSession(ctx context.Context, req handlers.StartSessionRequest) (*services.StartSessionResult, error) {
	var result services.StartSessionResult
	if err := c.executeRequest(ctx, http.MethodPost, routes.CreateSessionURL(), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetSession retrieves the current state of a session
func (c *APIClient) GetSession(ctx context.Context, sessionID string) (*services.StatusResult, error) {
	var result services.StatusResult
	if err := c.executeRequest(ctx, http.MethodGet, routes.GetSessionURL(sessionID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SubmitAnswers merges answers into a session
func (c *APIClient) SubmitAnswers(ctx context.Context, sessionID string, answers map[string]string) (*services.AnswerResult, error) {
	var result services.AnswerResult
	req := handlers.SubmitAnswersRequest{Answers: answers}
	if err := c.executeRequest(ctx, http.MethodPost, routes.SubmitAnswersURL(sessionID), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RetractAnswer removes one answered field from a session
func (c *APIClient) RetractAnswer(ctx context.Context, sessionID, field string) (*services.AnswerResult, error) {
	var result services.AnswerResult
	if err := c.executeRequest(ctx, http.MethodDelete, routes.RetractAnswerURL(sessionID, field), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AttachPhoto runs vision extraction on a job photo
func (c *APIClient) AttachPhoto(ctx context.Context, sessionID string, req handlers.AttachPhotoRequest) (*services.PhotoResult, error) {
	var result services.PhotoResult
	if err := c.executeRequest(ctx, http.MethodPost, routes.AttachPhotoURL(sessionID), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Calculate runs the calculate stage on a session
func (c *APIClient) Calculate(ctx context.Context, sessionID string) (*services.CalculateResult, error) {
	var result services.CalculateResult
	if err := c.executeRequest(ctx, http.MethodPost, routes.CalculateURL(sessionID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Estimate runs the estimate stage on a session
func (c *APIClient) Estimate(ctx context.Context, sessionID string) (*services.EstimateResult, error) {
	var result services.EstimateResult
	if err := c.executeRequest(ctx, http.MethodPost, routes.EstimateURL(sessionID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Price runs the price stage on a session
func (c *APIClient) Price(ctx context.Context, sessionID string, markupPct int) (*services.PriceResult, error) {
	var result services.PriceResult
	req := handlers.PriceRequest{MarkupPct: markupPct}
	if err := c.executeRequest(ctx, http.MethodPost, routes.PriceURL(sessionID), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Quote methods implementation

// GetQuote retrieves a quote by ID
func (c *APIClient) GetQuote(ctx context.Context, quoteID uint) (*services.QuoteResult, error) {
	var result services.QuoteResult
	if err := c.executeRequest(ctx, http.MethodGet, routes.GetQuoteURL(quoteID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListQuotes lists stored quotes
func (c *APIClient) ListQuotes(ctx context.Context, opts *models.ListOptions) ([]services.QuoteResult, error) {
	endpoint := routes.ListQuotesURL()
	if opts != nil {
		endpoint += fmt.Sprintf("?limit=%d&offset=%d", opts.Limit, opts.Offset)
	}

	var results []services.QuoteResult
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// RecalculateMarkup changes the selected markup on a quote
func (c *APIClient) RecalculateMarkup(ctx context.Context, quoteID uint, markupPct int) (*services.QuoteResult, error) {
	var result services.QuoteResult
	req := handlers.MarkupRequest{MarkupPct: markupPct}
	if err := c.executeRequest(ctx, http.MethodPost, routes.QuoteMarkupURL(quoteID), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateQuoteStatus moves a quote through its lifecycle
func (c *APIClient) UpdateQuoteStatus(ctx context.Context, quoteID uint, status string) error {
	req := handlers.StatusRequest{Status: status}
	return c.executeRequest(ctx, http.MethodPost, routes.QuoteStatusURL(quoteID), req, nil)
}

// QuotePDF fetches the rendered quote document
func (c *APIClient) QuotePDF(ctx context.Context, quoteID uint) ([]byte, error) {
	return c.rawRequest(ctx, routes.QuotePDFURL(quoteID))
}

// RecordActuals stores the real hours a completed job took
func (c *APIClient) RecordActuals(ctx context.Context, quoteID uint, req handlers.ActualsRequest) (*models.HistoricalActual, error) {
	var record models.HistoricalActual
	if err := c.executeRequest(ctx, http.MethodPost, routes.QuoteActualsURL(quoteID), req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Health check implementation

// HealthCheck checks the health of the API
func (c *APIClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	agent, err := c.createAgent(ctx, http.MethodGet, routes.HealthCheckURL(), nil)
	if err != nil {
		return nil, err
	}

	statusCode, raw, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("error sending request: %w", errs[0])
	}
	if statusCode != http.StatusOK {
		return nil, &fiber.Error{Code: statusCode, Message: "health check failed"}
	}

	var response map[string]string
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return response, nil
}
