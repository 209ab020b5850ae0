package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SessionCreatedAtField is the database field name for the session creation timestamp
const SessionCreatedAtField = "created_at"

// SessionStage represents the next pipeline stage a session is ready for
type SessionStage int

// Session stage constants, in pipeline order
const (
	// SessionStageUnknown represents an unknown or invalid stage
	SessionStageUnknown SessionStage = iota
	// SessionStageIntake indicates the session has no usable question tree yet
	SessionStageIntake
	// SessionStageClarify indicates the session is collecting answers
	SessionStageClarify
	// SessionStageCalculate indicates all required answers are in and the calculator can run
	SessionStageCalculate
	// SessionStageEstimate indicates the bill of materials exists and labor can be estimated
	SessionStageEstimate
	// SessionStagePrice indicates labor and finishing exist and pricing can run
	SessionStagePrice
	// SessionStageOutput indicates the session produced a quote and is frozen
	SessionStageOutput
)

var sessionStageNames = []string{
	"unknown",
	"intake",
	"clarify",
	"calculate",
	"estimate",
	"price",
	"output",
}

// ParseSessionStage converts a string representation of a stage to SessionStage
func ParseSessionStage(str string) (SessionStage, error) {
	for i, name := range sessionStageNames {
		if name == str {
			return SessionStage(i), nil
		}
	}
	return SessionStageUnknown, fmt.Errorf("invalid session stage: %s", str)
}

func (s SessionStage) String() string {
	if int(s) < 0 || int(s) >= len(sessionStageNames) {
		return sessionStageNames[SessionStageUnknown]
	}
	return sessionStageNames[s]
}

// MarshalJSON implements the json.Marshaler interface for SessionStage
func (s SessionStage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for SessionStage
func (s *SessionStage) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	stage, err := ParseSessionStage(str)
	if err != nil {
		return err
	}
	*s = stage
	return nil
}

// SessionStatus represents whether a session can still be worked on
type SessionStatus int

// Session status constants
const (
	// SessionStatusUnknown represents an unknown or invalid status
	SessionStatusUnknown SessionStatus = iota
	// SessionStatusActive indicates the session accepts answers and stage transitions
	SessionStatusActive
	// SessionStatusComplete indicates the session produced a quote
	SessionStatusComplete
	// SessionStatusAbandoned indicates the session was dropped by the user
	SessionStatusAbandoned
)

var sessionStatusNames = []string{
	"unknown",
	"active",
	"complete",
	"abandoned",
}

// ParseSessionStatus converts a string representation of a status to SessionStatus
func ParseSessionStatus(str string) (SessionStatus, error) {
	for i, name := range sessionStatusNames {
		if name == str {
			return SessionStatus(i), nil
		}
	}
	return SessionStatusUnknown, fmt.Errorf("invalid session status: %s", str)
}

func (s SessionStatus) String() string {
	if int(s) < 0 || int(s) >= len(sessionStatusNames) {
		return sessionStatusNames[SessionStatusUnknown]
	}
	return sessionStatusNames[s]
}

// MarshalJSON implements the json.Marshaler interface for SessionStatus
func (s SessionStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for SessionStatus
func (s *SessionStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	status, err := ParseSessionStatus(str)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// QuoteSession is one quoting conversation moving through the pipeline.
// Stage outputs are stored as opaque JSON payloads; the services layer owns
// their schemas.
type QuoteSession struct {
	gorm.Model
	SessionID           string          `json:"session_id" gorm:"uniqueIndex;not null"`
	JobType             string          `json:"job_type" gorm:"not null;index"`
	Stage               SessionStage    `json:"stage" gorm:"index"`
	Status              SessionStatus   `json:"status" gorm:"index"`
	Description         string          `json:"description" gorm:"type:text"`
	Notes               string          `json:"notes,omitempty" gorm:"type:text"`
	DetectionConfidence float64         `json:"detection_confidence"`
	Ambiguous           bool            `json:"ambiguous"`
	Answers             json.RawMessage `json:"answers,omitempty" gorm:"type:jsonb"`
	PhotoObservations   StringList      `json:"photo_observations,omitempty" gorm:"type:jsonb"`
	BOM                 json.RawMessage `json:"bom,omitempty" gorm:"type:jsonb"`
	BuildSteps          json.RawMessage `json:"build_steps,omitempty" gorm:"type:jsonb"`
	Labor               json.RawMessage `json:"labor,omitempty" gorm:"type:jsonb"`
	Finishing           json.RawMessage `json:"finishing,omitempty" gorm:"type:jsonb"`
	CreatedAt           time.Time       `json:"created_at" gorm:"index"`
}
