package types

// BuildStep is one step of an AI-generated fabrication sequence. Build
// instructions are advisory output attached to a calculation result; a quote
// is complete without them.
type BuildStep struct {
	Step            int      `json:"step"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Tools           []string `json:"tools"`
	DurationMinutes int      `json:"duration_minutes"`
	WeldProcess     string   `json:"weld_process,omitempty"`
	SafetyNotes     string   `json:"safety_notes,omitempty"`
}
