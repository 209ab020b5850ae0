package labor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fabforge/fabquote/internal/types"
)

type fakeActuals struct {
	hours []float64
	err   error
}

func (f *fakeActuals) ActualTotalHours(_ context.Context, _ types.JobType) ([]float64, error) {
	return f.hours, f.err
}

func TestValidateFlagsHighEstimate(t *testing.T) {
	v := NewHistoricalValidator(&fakeActuals{hours: []float64{10, 12, 14}})
	est := types.LaborEstimate{TotalHours: 16}

	v.Validate(context.Background(), &est, types.JobTypeCantileverGate)

	assert.True(t, est.Flagged)
	assert.Equal(t,
		"Estimate is 33% higher than historical average (16.0 hrs vs. 12.0 hrs avg from 3 past jobs)",
		est.FlagReason)
}

func TestValidateFlagsLowEstimate(t *testing.T) {
	v := NewHistoricalValidator(&fakeActuals{hours: []float64{10, 12, 14}})
	est := types.LaborEstimate{TotalHours: 8}

	v.Validate(context.Background(), &est, types.JobTypeCantileverGate)

	assert.True(t, est.Flagged)
	assert.Contains(t, est.FlagReason, "33% lower")
	assert.Contains(t, est.FlagReason, "8.0 hrs vs. 12.0 hrs avg")
}

func TestValidateWithinThresholdUnflagged(t *testing.T) {
	v := NewHistoricalValidator(&fakeActuals{hours: []float64{10, 12, 14}})
	est := types.LaborEstimate{TotalHours: 14}

	v.Validate(context.Background(), &est, types.JobTypeStraightRailing)

	assert.False(t, est.Flagged)
	assert.Empty(t, est.FlagReason)
}

func TestValidateSourceErrorNeverBlocks(t *testing.T) {
	v := NewHistoricalValidator(&fakeActuals{err: errors.New("connection refused")})
	est := types.LaborEstimate{TotalHours: 50}

	v.Validate(context.Background(), &est, types.JobTypeCompleteStair)

	assert.False(t, est.Flagged)
}

func TestValidateNoHistoryUnflagged(t *testing.T) {
	v := NewHistoricalValidator(&fakeActuals{})
	est := types.LaborEstimate{TotalHours: 50}

	v.Validate(context.Background(), &est, types.JobTypeSpiralStair)

	assert.False(t, est.Flagged)
}

func TestValidateNilSourceUnflagged(t *testing.T) {
	v := NewHistoricalValidator(nil)
	est := types.LaborEstimate{TotalHours: 50}

	v.Validate(context.Background(), &est, types.JobTypeCustomFab)

	assert.False(t, est.Flagged)
}

func TestValidateClearsStaleFlag(t *testing.T) {
	v := NewHistoricalValidator(&fakeActuals{hours: []float64{12}})
	est := types.LaborEstimate{TotalHours: 12, Flagged: true, FlagReason: "stale"}

	v.Validate(context.Background(), &est, types.JobTypeOrnamentalFence)

	assert.False(t, est.Flagged)
	assert.Empty(t, est.FlagReason)
}
