package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/fabforge/fabquote/internal/db/models"
	"github.com/fabforge/fabquote/internal/types"
)

// HistoricalActualRepository provides access to recorded actual job hours.
// It satisfies the labor estimator's ActualsSource interface.
type HistoricalActualRepository struct {
	db *gorm.DB
}

// NewHistoricalActualRepository creates a new historical-actual repository instance
func NewHistoricalActualRepository(db *gorm.DB) *HistoricalActualRepository {
	return &HistoricalActualRepository{db: db}
}

// Create records the actual hours for a completed job, computing the
// variance against the estimate
func (r *HistoricalActualRepository) Create(ctx context.Context, actual *models.HistoricalActual) error {
	if actual.ActualHours <= 0 {
		return fmt.Errorf("actual_hours must be positive")
	}
	actual.ComputeVariance()
	return r.db.WithContext(ctx).Create(actual).Error
}

// ActualTotalHours returns the recorded total hours for every completed job
// of the given type, newest first
func (r *HistoricalActualRepository) ActualTotalHours(ctx context.Context, jobType types.JobType) ([]float64, error) {
	var hours []float64
	err := r.db.WithContext(ctx).Model(&models.HistoricalActual{}).
		Where(&models.HistoricalActual{JobType: string(jobType)}).
		Order("created_at DESC").
		Pluck("actual_hours", &hours).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load actual hours: %w", err)
	}
	return hours, nil
}

// ListByJobType returns the full actual records for one job type
func (r *HistoricalActualRepository) ListByJobType(ctx context.Context, jobType types.JobType, opts *models.ListOptions) ([]models.HistoricalActual, error) {
	var actuals []models.HistoricalActual
	err := r.db.WithContext(ctx).Model(&models.HistoricalActual{}).
		Where(&models.HistoricalActual{JobType: string(jobType)}).
		Limit(opts.Limit).Offset(opts.Offset).
		Order("created_at DESC").
		Find(&actuals).Error
	return actuals, err
}
