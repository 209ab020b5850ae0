package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// HistoricalActual records the real hours a completed job took. Rows feed
// the variance check that flags new estimates drifting from shop reality.
type HistoricalActual struct {
	gorm.Model
	JobType        string          `json:"job_type" gorm:"not null;index"`
	QuoteID        uint            `json:"quote_id,omitempty" gorm:"index"`
	EstimatedHours float64         `json:"estimated_hours"`
	ActualHours    float64         `json:"actual_hours" gorm:"not null"`
	VariancePct    float64         `json:"variance_pct"`
	ProcessHours   json.RawMessage `json:"process_hours,omitempty" gorm:"type:jsonb"`
	Notes          string          `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt      time.Time       `json:"created_at" gorm:"index"`
}

// ComputeVariance fills VariancePct from the estimated and actual hours.
// Zero estimates leave the variance at zero.
func (h *HistoricalActual) ComputeVariance() {
	if h.EstimatedHours <= 0 {
		h.VariancePct = 0
		return
	}
	h.VariancePct = (h.ActualHours - h.EstimatedHours) / h.EstimatedHours
}
