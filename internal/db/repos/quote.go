package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fabforge/fabquote/internal/db/models"
)

// QuoteRepository provides access to quote-related database operations
type QuoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a new quote repository instance
func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// Create creates a new quote in the database. A missing quote number is
// generated from the running count for the current year.
func (r *QuoteRepository) Create(ctx context.Context, quote *models.Quote) error {
	if quote.QuoteNumber == "" {
		number, err := r.NextQuoteNumber(ctx)
		if err != nil {
			return fmt.Errorf("failed to generate quote number: %w", err)
		}
		quote.QuoteNumber = number
	}
	return r.db.WithContext(ctx).Create(quote).Error
}

// NextQuoteNumber generates the next sequential quote number, e.g. FQ-2026-0042
func (r *QuoteRepository) NextQuoteNumber(ctx context.Context) (string, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Quote{}).Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("FQ-%d-%04d", time.Now().UTC().Year(), count+1), nil
}

// GetByID retrieves a quote by its ID
func (r *QuoteRepository) GetByID(ctx context.Context, id uint) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.WithContext(ctx).
		Where(&models.Quote{Model: gorm.Model{ID: id}}).
		First(&quote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("quote not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return &quote, nil
}

// GetByQuoteNumber retrieves a quote by its public quote number
func (r *QuoteRepository) GetByQuoteNumber(ctx context.Context, number string) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.WithContext(ctx).
		Where(&models.Quote{QuoteNumber: number}).
		First(&quote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("quote not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return &quote, nil
}

// UpdateMarkup persists a markup reselection on a frozen quote. Only the
// markup, the grand total and the priced snapshot change.
func (r *QuoteRepository) UpdateMarkup(ctx context.Context, id uint, markupPct int, grandTotal float64, priced json.RawMessage) error {
	return r.db.WithContext(ctx).Model(&models.Quote{}).
		Where(&models.Quote{Model: gorm.Model{ID: id}}).
		Updates(map[string]interface{}{
			"selected_markup": markupPct,
			"grand_total":     grandTotal,
			"priced":          priced,
		}).Error
}

// UpdateStatus updates the delivery status of a quote
func (r *QuoteRepository) UpdateStatus(ctx context.Context, id uint, status models.QuoteStatus) error {
	return r.db.WithContext(ctx).Model(&models.Quote{}).
		Where(&models.Quote{Model: gorm.Model{ID: id}}).
		Update("status", status).Error
}

// List returns quotes ordered newest first
func (r *QuoteRepository) List(ctx context.Context, opts *models.ListOptions) ([]models.Quote, error) {
	var quotes []models.Quote
	db := r.db.WithContext(ctx)
	if !opts.IncludeDeleted {
		db = db.Unscoped().Where("deleted_at IS NULL")
	}
	err := db.Model(&models.Quote{}).
		Limit(opts.Limit).Offset(opts.Offset).
		Order("created_at DESC").
		Find(&quotes).Error
	return quotes, err
}
