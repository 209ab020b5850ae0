package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fabforge/fabquote/internal/ai"
	"github.com/fabforge/fabquote/internal/logger"
	"github.com/fabforge/fabquote/internal/types"
)

// ExtractFromText parses a free-text description and extracts fields the
// customer has clearly stated. The extractor is instructed to never infer a
// measurement that was not explicitly given. Returns an empty map on any
// failure; extraction is best-effort and never required for correctness.
func (e *Engine) ExtractFromText(ctx context.Context, jobType types.JobType, description string) types.AnsweredFields {
	tree, err := e.registry.Tree(jobType)
	if err != nil {
		return types.AnsweredFields{}
	}

	prompt := buildExtractionPrompt(tree, description)

	response, err := e.provider.Complete(ctx, prompt)
	if err != nil {
		if err != ai.ErrUnavailable {
			logger.Warnf("Field extraction failed for %s: %v", jobType, err)
		}
		return types.AnsweredFields{}
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(ai.ExtractJSONObject(response)), &raw); err != nil {
		logger.Warnf("Unparseable extraction response for %s: %v", jobType, err)
		return types.AnsweredFields{}
	}

	// Keep only fields that exist in the tree; stringify values.
	extracted := types.AnsweredFields{}
	for id, value := range raw {
		if findQuestion(tree, id) == nil {
			continue
		}
		extracted[id] = stringify(value)
	}
	return extracted
}

func buildExtractionPrompt(tree *types.QuestionTree, description string) string {
	return fmt.Sprintf(`You are a metal fabrication quoting assistant. A customer is requesting a quote for a %s (%s).

The customer provided this description:
"""%s"""

Below are the fields we need for this job type. Extract any values that the customer has CLEARLY stated in their description.

RULES:
- Only extract values you are >90%% confident about
- For measurement fields, only extract if the customer gave a specific number (e.g., "10 feet" -> 10). Do NOT guess from vague descriptions like "big" or "standard"
- For choice fields, map the customer's words to the closest option
- If a field is not mentioned or unclear, do NOT include it
- Return ONLY a JSON object with field_id: value pairs
- If nothing can be extracted, return an empty object {}

FIELDS:
%s

Return ONLY valid JSON, no explanation:`,
		tree.DisplayName, tree.JobType, description, fieldDescriptions(tree))
}

// fieldDescriptions renders the field catalog handed to the extractor and
// the vision prompt.
func fieldDescriptions(tree *types.QuestionTree) string {
	var b strings.Builder
	for _, q := range tree.Questions {
		fmt.Fprintf(&b, "- %s: %s", q.ID, q.Text)
		switch {
		case q.Type == types.QuestionChoice && len(q.Options) > 0:
			fmt.Fprintf(&b, " Options: %s", strings.Join(q.Options, ", "))
		case q.Type == types.QuestionMeasurement:
			unit := q.Unit
			if unit == "" {
				unit = "units"
			}
			fmt.Fprintf(&b, " (numeric value in %s)", unit)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		data, _ := json.Marshal(v)
		return string(data)
	}
}
