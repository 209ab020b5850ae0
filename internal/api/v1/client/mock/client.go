// Package mock provides a scriptable API client for command tests.
package mock

import (
	"context"
	"fmt"

	"github.com/fabforge/fabquote/internal/api/v1/handlers"
	"github.com/fabforge/fabquote/internal/api/v1/services"
	"github.com/fabforge/fabquote/internal/db/models"
)

// MockClient implements client.Client with scriptable behavior. Each call is
// recorded; unset functions return an error so tests fail loudly.
type MockClient struct {
	StartSessionFn    func(ctx context.Context, req handlers.StartSessionRequest) (*services.StartSessionResult, error)
	StartSessionCalls []handlers.StartSessionRequest

	GetSessionFn    func(ctx context.Context, sessionID string) (*services.StatusResult, error)
	GetSessionCalls []string

	SubmitAnswersFn    func(ctx context.Context, sessionID string, answers map[string]string) (*services.AnswerResult, error)
	SubmitAnswersCalls []string

	RetractAnswerFn    func(ctx context.Context, sessionID, field string) (*services.AnswerResult, error)
	RetractAnswerCalls []string

	AttachPhotoFn    func(ctx context.Context, sessionID string, req handlers.AttachPhotoRequest) (*services.PhotoResult, error)
	AttachPhotoCalls []string

	CalculateFn    func(ctx context.Context, sessionID string) (*services.CalculateResult, error)
	CalculateCalls []string

	EstimateFn    func(ctx context.Context, sessionID string) (*services.EstimateResult, error)
	EstimateCalls []string

	PriceFn    func(ctx context.Context, sessionID string, markupPct int) (*services.PriceResult, error)
	PriceCalls []string

	GetQuoteFn    func(ctx context.Context, quoteID uint) (*services.QuoteResult, error)
	GetQuoteCalls []uint

	ListQuotesFn    func(ctx context.Context, opts *models.ListOptions) ([]services.QuoteResult, error)
	ListQuotesCalls []*models.ListOptions

	RecalculateMarkupFn    func(ctx context.Context, quoteID uint, markupPct int) (*services.QuoteResult, error)
	RecalculateMarkupCalls []uint

	UpdateQuoteStatusFn    func(ctx context.Context, quoteID uint, status string) error
	UpdateQuoteStatusCalls []uint

	QuotePDFFn    func(ctx context.Context, quoteID uint) ([]byte, error)
	QuotePDFCalls []uint

	RecordActualsFn    func(ctx context.Context, quoteID uint, req handlers.ActualsRequest) (*models.HistoricalActual, error)
	RecordActualsCalls []uint

	HealthCheckFn    func(ctx context.Context) (map[string]string, error)
	HealthCheckCalls int
}

func notScripted(method string) error {
	return fmt.Errorf("mock: %s not scripted", method)
}

// StartSession calls StartSessionFn
func (m *MockClient) StartSession(ctx context.Context, req handlers.StartSessionRequest) (*services.StartSessionResult, error) {
	m.StartSessionCalls = append(m.StartSessionCalls, req)
	if m.StartSessionFn == nil {
		return nil, notScripted("StartSession")
	}
	return m.StartSessionFn(ctx, req)
}

// GetSession calls GetSessionFn
func (m *MockClient) GetSession(ctx context.Context, sessionID string) (*services.StatusResult, error) {
	m.GetSessionCalls = append(m.GetSessionCalls, sessionID)
	if m.GetSessionFn == nil {
		return nil, notScripted("GetSession")
	}
	return m.GetSessionFn(ctx, sessionID)
}

// SubmitAnswers calls SubmitAnswersFn
func (m *MockClient) SubmitAnswers(ctx context.Context, sessionID string, answers map[string]string) (*services.AnswerResult, error) {
	m.SubmitAnswersCalls = append(m.SubmitAnswersCalls, sessionID)
	if m.SubmitAnswersFn == nil {
		return nil, notScripted("SubmitAnswers")
	}
	return m.SubmitAnswersFn(ctx, sessionID, answers)
}

// RetractAnswer calls RetractAnswerFn
func (m *MockClient) RetractAnswer(ctx context.Context, sessionID, field string) (*services.AnswerResult, error) {
	m.RetractAnswerCalls = append(m.RetractAnswerCalls, sessionID)
	if m.RetractAnswerFn == nil {
		return nil, notScripted("RetractAnswer")
	}
	return m.RetractAnswerFn(ctx, sessionID, field)
}

// AttachPhoto calls AttachPhotoFn
func (m *MockClient) AttachPhoto(ctx context.Context, sessionID string, req handlers.AttachPhotoRequest) (*services.PhotoResult, error) {
	m.AttachPhotoCalls = append(m.AttachPhotoCalls, sessionID)
	if m.AttachPhotoFn == nil {
		return nil, notScripted("AttachPhoto")
	}
	return m.AttachPhotoFn(ctx, sessionID, req)
}

// Calculate calls CalculateFn
func (m *MockClient) Calculate(ctx context.Context, sessionID string) (*services.CalculateResult, error) {
	m.CalculateCalls = append(m.CalculateCalls, sessionID)
	if m.CalculateFn == nil {
		return nil, notScripted("Calculate")
	}
	return m.CalculateFn(ctx, sessionID)
}

// Estimate calls EstimateFn
func (m *MockClient) Estimate(ctx context.Context, sessionID string) (*services.EstimateResult, error) {
	m.EstimateCalls = append(m.EstimateCalls, sessionID)
	if m.EstimateFn == nil {
		return nil, notScripted("Estimate")
	}
	return m.EstimateFn(ctx, sessionID)
}

// Price calls PriceFn
func (m *MockClient) Price(ctx context.Context, sessionID string, markupPct int) (*services.PriceResult, error) {
	m.PriceCalls = append(m.PriceCalls, sessionID)
	if m.PriceFn == nil {
		return nil, notScripted("Price")
	}
	return m.PriceFn(ctx, sessionID, markupPct)
}

// GetQuote calls GetQuoteFn
func (m *MockClient) GetQuote(ctx context.Context, quoteID uint) (*services.QuoteResult, error) {
	m.GetQuoteCalls = append(m.GetQuoteCalls, quoteID)
	if m.GetQuoteFn == nil {
		return nil, notScripted("GetQuote")
	}
	return m.GetQuoteFn(ctx, quoteID)
}

// ListQuotes calls ListQuotesFn
func (m *MockClient) ListQuotes(ctx context.Context, opts *models.ListOptions) ([]services.QuoteResult, error) {
	m.ListQuotesCalls = append(m.ListQuotesCalls, opts)
	if m.ListQuotesFn == nil {
		return nil, notScripted("ListQuotes")
	}
	return m.ListQuotesFn(ctx, opts)
}

// RecalculateMarkup calls RecalculateMarkupFn
func (m *MockClient) RecalculateMarkup(ctx context.Context, quoteID uint, markupPct int) (*services.QuoteResult, error) {
	m.RecalculateMarkupCalls = append(m.RecalculateMarkupCalls, quoteID)
	if m.RecalculateMarkupFn == nil {
		return nil, notScripted("RecalculateMarkup")
	}
	return m.RecalculateMarkupFn(ctx, quoteID, markupPct)
}

// UpdateQuoteStatus calls UpdateQuoteStatusFn
func (m *MockClient) UpdateQuoteStatus(ctx context.Context, quoteID uint, status string) error {
	m.UpdateQuoteStatusCalls = append(m.UpdateQuoteStatusCalls, quoteID)
	if m.UpdateQuoteStatusFn == nil {
		return notScripted("UpdateQuoteStatus")
	}
	return m.UpdateQuoteStatusFn(ctx, quoteID, status)
}

// QuotePDF calls QuotePDFFn
func (m *MockClient) QuotePDF(ctx context.Context, quoteID uint) ([]byte, error) {
	m.QuotePDFCalls = append(m.QuotePDFCalls, quoteID)
	if m.QuotePDFFn == nil {
		return nil, notScripted("QuotePDF")
	}
	return m.QuotePDFFn(ctx, quoteID)
}

// RecordActuals calls RecordActualsFn
func (m *MockClient) RecordActuals(ctx context.Context, quoteID uint, req handlers.ActualsRequest) (*models.HistoricalActual, error) {
	m.RecordActualsCalls = append(m.RecordActualsCalls, quoteID)
	if m.RecordActualsFn == nil {
		return nil, notScripted("RecordActuals")
	}
	return m.RecordActualsFn(ctx, quoteID, req)
}

// HealthCheck calls HealthCheckFn
func (m *MockClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	m.HealthCheckCalls++
	if m.HealthCheckFn == nil {
		return nil, notScripted("HealthCheck")
	}
	return m.HealthCheckFn(ctx)
}
