package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fabforge/fabquote/internal/db/models"
	"github.com/fabforge/fabquote/internal/db/repos"
	"github.com/fabforge/fabquote/internal/logger"
	"github.com/fabforge/fabquote/internal/pdf"
	"github.com/fabforge/fabquote/internal/pricing"
	"github.com/fabforge/fabquote/internal/types"
)

// QuoteService provides business logic for frozen-quote operations
type QuoteService struct {
	quotes   *repos.QuoteRepository
	actuals  *repos.HistoricalActualRepository
	renderer *pdf.Renderer
}

// NewQuoteService creates a new quote service instance
func NewQuoteService(quotes *repos.QuoteRepository, actuals *repos.HistoricalActualRepository, renderer *pdf.Renderer) *QuoteService {
	return &QuoteService{quotes: quotes, actuals: actuals, renderer: renderer}
}

// QuoteResult is the response payload for quote lookups
type QuoteResult struct {
	QuoteID     uint              `json:"quote_id"`
	QuoteNumber string            `json:"quote_number"`
	SessionID   string            `json:"session_id"`
	Status      string            `json:"status"`
	Quote       types.PricedQuote `json:"priced_quote"`
}

// Get returns a quote by database ID.
func (s *QuoteService) Get(ctx context.Context, id uint) (*QuoteResult, error) {
	quote, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return quoteResult(quote)
}

// GetByNumber returns a quote by its customer-facing quote number.
func (s *QuoteService) GetByNumber(ctx context.Context, number string) (*QuoteResult, error) {
	quote, err := s.quotes.GetByQuoteNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return quoteResult(quote)
}

// List returns stored quotes, newest first.
func (s *QuoteService) List(ctx context.Context, opts *models.ListOptions) ([]QuoteResult, error) {
	quotes, err := s.quotes.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	results := make([]QuoteResult, 0, len(quotes))
	for i := range quotes {
		r, err := quoteResult(&quotes[i])
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, nil
}

// RecalculateMarkup re-selects the markup on a frozen quote. Only the
// selected markup and grand total change; every subtotal stays frozen.
func (s *QuoteService) RecalculateMarkup(ctx context.Context, id uint, markupPct int) (*QuoteResult, error) {
	quote, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var priced types.PricedQuote
	if err := json.Unmarshal(quote.Priced, &priced); err != nil {
		return nil, fmt.Errorf("quote has no usable pricing payload: %w", err)
	}
	if err := pricing.RecalculateMarkup(&priced, markupPct); err != nil {
		return nil, err
	}

	pricedJSON, err := json.Marshal(priced)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal priced quote: %w", err)
	}
	if err := s.quotes.UpdateMarkup(ctx, id, markupPct, priced.GrandTotal, pricedJSON); err != nil {
		return nil, err
	}

	logger.Infof("Quote %s markup changed to %d%% ($%.2f)", quote.QuoteNumber, markupPct, priced.GrandTotal)
	return &QuoteResult{
		QuoteID:     quote.ID,
		QuoteNumber: quote.QuoteNumber,
		SessionID:   quote.SessionID,
		Status:      quote.Status.String(),
		Quote:       priced,
	}, nil
}

// UpdateStatus moves a quote through its lifecycle (draft, sent, accepted,
// declined).
func (s *QuoteService) UpdateStatus(ctx context.Context, id uint, status models.QuoteStatus) error {
	return s.quotes.UpdateStatus(ctx, id, status)
}

// RenderPDF produces the customer-facing PDF for a quote.
func (s *QuoteService) RenderPDF(ctx context.Context, id uint) ([]byte, string, error) {
	quote, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	var priced types.PricedQuote
	if err := json.Unmarshal(quote.Priced, &priced); err != nil {
		return nil, "", fmt.Errorf("quote has no usable pricing payload: %w", err)
	}

	out, err := s.renderer.Render(pdf.Document{
		QuoteNumber:        quote.QuoteNumber,
		CreatedAt:          quote.CreatedAt,
		ProjectDescription: quote.ProjectDescription,
		Priced:             priced,
	})
	if err != nil {
		return nil, "", err
	}
	return out, fmt.Sprintf("quote_%s.pdf", quote.QuoteNumber), nil
}

// RecordActual stores the real hours a completed job took, for future
// estimate validation. The estimated hours come from the quote itself.
func (s *QuoteService) RecordActual(ctx context.Context, quoteID uint, actualHours float64, processHours map[string]float64, notes string) (*models.HistoricalActual, error) {
	quote, err := s.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	var priced types.PricedQuote
	if err := json.Unmarshal(quote.Priced, &priced); err != nil {
		return nil, fmt.Errorf("quote has no usable pricing payload: %w", err)
	}

	record := &models.HistoricalActual{
		JobType:        quote.JobType,
		QuoteID:        quote.ID,
		EstimatedHours: priced.Labor.TotalHours,
		ActualHours:    actualHours,
		Notes:          notes,
	}
	if len(processHours) > 0 {
		if record.ProcessHours, err = json.Marshal(processHours); err != nil {
			return nil, fmt.Errorf("failed to marshal process hours: %w", err)
		}
	}
	if err := s.actuals.Create(ctx, record); err != nil {
		return nil, err
	}

	logger.Infof("Recorded actuals for quote %s: %.1f hrs vs %.1f estimated (variance %+.0f%%)",
		quote.QuoteNumber, record.ActualHours, record.EstimatedHours, record.VariancePct*100)
	return record, nil
}

func quoteResult(quote *models.Quote) (*QuoteResult, error) {
	var priced types.PricedQuote
	if len(quote.Priced) > 0 {
		if err := json.Unmarshal(quote.Priced, &priced); err != nil {
			return nil, fmt.Errorf("quote has no usable pricing payload: %w", err)
		}
	}
	return &QuoteResult{
		QuoteID:     quote.ID,
		QuoteNumber: quote.QuoteNumber,
		SessionID:   quote.SessionID,
		Status:      quote.Status.String(),
		Quote:       priced,
	}, nil
}
