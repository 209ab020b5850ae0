package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// QuoteStatus represents the lifecycle state of a delivered quote
type QuoteStatus int

// Quote status constants
const (
	// QuoteStatusUnknown represents an unknown or invalid quote status
	QuoteStatusUnknown QuoteStatus = iota
	// QuoteStatusDraft indicates the quote has not been sent to the customer
	QuoteStatusDraft
	// QuoteStatusSent indicates the quote was delivered and awaits a decision
	QuoteStatusSent
	// QuoteStatusAccepted indicates the customer accepted the quote
	QuoteStatusAccepted
	// QuoteStatusDeclined indicates the customer declined the quote
	QuoteStatusDeclined
)

var quoteStatusNames = []string{
	"unknown",
	"draft",
	"sent",
	"accepted",
	"declined",
}

// ParseQuoteStatus converts a string representation of a quote status to QuoteStatus
func ParseQuoteStatus(str string) (QuoteStatus, error) {
	for i, name := range quoteStatusNames {
		if name == str {
			return QuoteStatus(i), nil
		}
	}
	return QuoteStatusUnknown, fmt.Errorf("invalid quote status: %s", str)
}

func (s QuoteStatus) String() string {
	if int(s) < 0 || int(s) >= len(quoteStatusNames) {
		return quoteStatusNames[QuoteStatusUnknown]
	}
	return quoteStatusNames[s]
}

// MarshalJSON implements the json.Marshaler interface for QuoteStatus
func (s QuoteStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for QuoteStatus
func (s *QuoteStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	status, err := ParseQuoteStatus(str)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// Quote is the frozen output of a priced session. Priced holds the full
// PricedQuote snapshot; markup recalculation is the only permitted mutation
// after creation.
type Quote struct {
	gorm.Model
	QuoteNumber        string          `json:"quote_number" gorm:"uniqueIndex;not null"`
	SessionID          string          `json:"session_id" gorm:"index;not null"`
	JobType            string          `json:"job_type" gorm:"index;not null"`
	Status             QuoteStatus     `json:"status" gorm:"index"`
	ProjectDescription string          `json:"project_description,omitempty" gorm:"type:text"`
	SelectedMarkup     int             `json:"selected_markup"`
	Subtotal           float64         `json:"subtotal"`
	GrandTotal         float64         `json:"grand_total"`
	Priced             json.RawMessage `json:"priced" gorm:"type:jsonb"`
	CreatedAt          time.Time       `json:"created_at" gorm:"index"`
}
