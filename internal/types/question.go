package types

// QuestionType identifies how a question is answered.
type QuestionType string

// Supported question types.
const (
	QuestionMeasurement QuestionType = "measurement"
	QuestionChoice      QuestionType = "choice"
	QuestionMultiChoice QuestionType = "multi_choice"
	QuestionText        QuestionType = "text"
	QuestionNumber      QuestionType = "number"
	QuestionBoolean     QuestionType = "boolean"
	QuestionPhoto       QuestionType = "photo"
)

// ValidQuestionTypes lists every supported question type.
var ValidQuestionTypes = []QuestionType{
	QuestionMeasurement,
	QuestionChoice,
	QuestionMultiChoice,
	QuestionText,
	QuestionNumber,
	QuestionBoolean,
	QuestionPhoto,
}

// Question is a single data-collection prompt inside a question tree.
//
// DependsOn gates visibility on another question being answered. Branches
// maps an answer value on this question to child question ids that become
// reachable only when that value is given.
type Question struct {
	ID        string              `json:"id"`
	Text      string              `json:"text"`
	Type      QuestionType        `json:"type"`
	Options   []string            `json:"options,omitempty"`
	Unit      string              `json:"unit,omitempty"`
	Hint      string              `json:"hint,omitempty"`
	Required  bool                `json:"required"`
	DependsOn string              `json:"depends_on,omitempty"`
	Branches  map[string][]string `json:"branches,omitempty"`
}

// QuestionTree is the full branching questionnaire for one job type.
type QuestionTree struct {
	JobType        JobType    `json:"job_type"`
	Version        int        `json:"version"`
	DisplayName    string     `json:"display_name"`
	RequiredFields []string   `json:"required_fields"`
	Questions      []Question `json:"questions"`
}

// AnsweredFields maps question ids to the user's answers.
type AnsweredFields map[string]string

// CompletionStatus is derived from a tree plus the answered fields. It is
// never stored; callers recompute it on demand.
type CompletionStatus struct {
	IsComplete       bool     `json:"is_complete"`
	RequiredTotal    int      `json:"required_total"`
	RequiredAnswered int      `json:"required_answered"`
	RequiredMissing  []string `json:"required_missing"`
	TotalAnswered    int      `json:"total_answered"`
	CompletionPct    float64  `json:"completion_pct"`
}

// IntakeResult is the outcome of job-type detection on a free-text
// description. Confidence 0 with Ambiguous set means the caller should ask
// the user directly.
type IntakeResult struct {
	JobType    JobType `json:"job_type"`
	Confidence float64 `json:"confidence"`
	Ambiguous  bool    `json:"ambiguous"`
}

// PhotoExtraction is the structured result of vision analysis on a job
// photo. Fields are merged into the session non-authoritatively: answers
// already derived from text win on conflict.
type PhotoExtraction struct {
	Fields       AnsweredFields `json:"fields"`
	Observations []string       `json:"observations"`
	Material     string         `json:"material,omitempty"`
	DamageNotes  []string       `json:"damage_notes,omitempty"`
}

// QuoteParams is the structured input handed from the clarify stage to the
// calculation engine.
type QuoteParams struct {
	JobType           JobType        `json:"job_type"`
	Fields            AnsweredFields `json:"fields"`
	Description       string         `json:"description,omitempty"`
	Notes             string         `json:"notes,omitempty"`
	PhotoObservations []string       `json:"photo_observations,omitempty"`
}
