package labor

import (
	"context"
	"fmt"
	"math"

	"github.com/fabforge/fabquote/internal/logger"
	"github.com/fabforge/fabquote/internal/types"
)

// VarianceThreshold is the fraction by which an estimate may differ from the
// historical average before it gets flagged for review.
const VarianceThreshold = 0.25

// ActualsSource supplies recorded actual hours for completed jobs of a type.
type ActualsSource interface {
	ActualTotalHours(ctx context.Context, jobType types.JobType) ([]float64, error)
}

// HistoricalValidator compares an estimate against recorded actuals and flags
// outliers. It only ever annotates the estimate; validation failures never
// block the pipeline.
type HistoricalValidator struct {
	source ActualsSource
}

// NewHistoricalValidator creates a validator. A nil source disables
// validation; every estimate then passes unflagged.
func NewHistoricalValidator(source ActualsSource) *HistoricalValidator {
	return &HistoricalValidator{source: source}
}

// Validate sets Flagged and FlagReason on the estimate when its total hours
// sit more than VarianceThreshold away from the historical average for the
// job type. Missing data or a source error leaves the estimate unflagged.
func (v *HistoricalValidator) Validate(ctx context.Context, est *types.LaborEstimate, jobType types.JobType) {
	est.Flagged = false
	est.FlagReason = ""

	if v == nil || v.source == nil {
		return
	}

	actuals, err := v.source.ActualTotalHours(ctx, jobType)
	if err != nil {
		logger.Warnf("Historical validation skipped for %s: %v", jobType, err)
		return
	}
	if len(actuals) == 0 {
		return
	}

	var sum float64
	for _, h := range actuals {
		sum += h
	}
	avg := sum / float64(len(actuals))
	if avg <= 0 {
		return
	}

	variance := (est.TotalHours - avg) / avg
	if math.Abs(variance) <= VarianceThreshold {
		return
	}

	direction := "higher"
	if variance < 0 {
		direction = "lower"
	}
	est.Flagged = true
	est.FlagReason = fmt.Sprintf(
		"Estimate is %.0f%% %s than historical average (%.1f hrs vs. %.1f hrs avg from %d past jobs)",
		math.Abs(variance)*100, direction, est.TotalHours, avg, len(actuals),
	)
}
