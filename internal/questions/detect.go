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

// Detection keywords per job type. Multi-word phrases are more specific and
// score higher than single words.
var detectionKeywords = map[types.JobType][]string{
	types.JobTypeCantileverGate:      {"cantilever", "sliding gate", "slide gate", "roller gate"},
	types.JobTypeSwingGate:           {"swing gate", "hinged gate", "driveway gate"},
	types.JobTypeStraightRailing:     {"railing", "handrail", "guardrail", "guard rail"},
	types.JobTypeStairRailing:        {"stair railing", "staircase railing", "stair handrail"},
	types.JobTypeRepairDecorative:    {"repair", "fix", "restore", "broken", "rusted", "ornamental repair"},
	types.JobTypeOrnamentalFence:     {"fence", "fencing", "iron fence", "picket fence"},
	types.JobTypeCompleteStair:       {"stairs", "staircase", "stringer", "steel stairs", "metal stairs"},
	types.JobTypeSpiralStair:         {"spiral stair", "spiral staircase", "helical stair"},
	types.JobTypeWindowSecurityGrate: {"window guard", "security bar", "window grate", "burglar bar", "security grate"},
	types.JobTypeBalconyRailing:      {"balcony", "juliet balcony", "balcony rail"},
	types.JobTypeFurnitureTable:      {"table base", "table frame", "steel table", "metal table", "desk frame", "table leg"},
	types.JobTypeUtilityEnclosure:    {"enclosure", "electrical box", "nema", "equipment enclosure", "utility box"},
	types.JobTypeBollard:             {"bollard", "parking post", "vehicle barrier"},
	types.JobTypeRepairStructural:    {"structural repair", "trailer repair", "chassis repair", "beam repair", "weld repair"},
	types.JobTypeCustomFab:           {"custom", "fabricat", "one-off", "prototype"},
	types.JobTypeOffroadBumper:       {"bumper", "front bumper", "rear bumper", "off-road bumper", "offroad bumper", "truck bumper", "jeep bumper"},
	types.JobTypeRockSlider:          {"rock slider", "rocker panel", "rock rail", "slider", "rocker guard"},
	types.JobTypeRollCage:            {"roll cage", "roll bar", "cage", "race cage", "utv cage"},
	types.JobTypeExhaustCustom:       {"exhaust", "header", "downpipe", "exhaust pipe", "exhaust system", "turbo exhaust"},
	types.JobTypeTrailerFab:          {"trailer", "flatbed trailer", "utility trailer", "trailer frame", "car hauler"},
	types.JobTypeStructuralFrame:     {"structural", "beam", "column", "mezzanine", "canopy frame", "steel frame", "i-beam", "h-beam"},
	types.JobTypeFurnitureOther:      {"shelf", "shelving", "bracket", "mount", "rack", "stand", "console", "bench frame"},
	types.JobTypeSignFrame:           {"sign frame", "sign bracket", "sign post", "monument sign", "sign mount"},
	types.JobTypeLEDSignCustom:       {"led sign", "channel letter", "neon sign", "illuminated sign", "backlit sign", "light box"},
	types.JobTypeProductFiretable:    {"fire table", "firetable", "fire pit", "fire bowl", "firepit"},
}

// DetectJobType determines the job type from a natural language
// description.
//
// Keyword matching runs first: a multi-word phrase match is high confidence
// and returned immediately; a single-word match is moderate confidence and
// held while the AI classifier gets a chance to confirm. When neither the
// keywords nor the classifier produce anything, the result is custom_fab at
// confidence 0 so the caller asks the user directly. Never fails on
// unrecognized text.
func (e *Engine) DetectJobType(ctx context.Context, description string) types.IntakeResult {
	keyword := detectByKeywords(description)
	if keyword != nil && keyword.Confidence >= 0.9 {
		return *keyword
	}

	if result, err := e.classifyWithAI(ctx, description); err == nil {
		return result
	} else if err != ai.ErrUnavailable {
		logger.Warnf("AI job type classification failed: %v", err)
	}

	if keyword != nil {
		return *keyword
	}
	return types.IntakeResult{JobType: types.JobTypeCustomFab, Confidence: 0, Ambiguous: true}
}

// detectByKeywords scores each job type by keyword matches. Multi-word
// matches score their word count; ties break toward the longer phrase.
func detectByKeywords(description string) *types.IntakeResult {
	desc := strings.ToLower(description)

	var bestType types.JobType
	bestScore := 0
	bestKeywordLen := 0

	for jobType, keywords := range detectionKeywords {
		for _, kw := range keywords {
			if !strings.Contains(desc, kw) {
				continue
			}
			score := len(strings.Fields(kw))
			if score > bestScore || (score == bestScore && len(kw) > bestKeywordLen) {
				bestType = jobType
				bestScore = score
				bestKeywordLen = len(kw)
			}
		}
	}

	switch {
	case bestScore >= 2:
		return &types.IntakeResult{JobType: bestType, Confidence: 0.9, Ambiguous: false}
	case bestScore == 1:
		return &types.IntakeResult{JobType: bestType, Confidence: 0.6, Ambiguous: true}
	}
	return nil
}

func (e *Engine) classifyWithAI(ctx context.Context, description string) (types.IntakeResult, error) {
	names := make([]string, len(types.AllJobTypes))
	for i, jt := range types.AllJobTypes {
		names[i] = jt.String()
	}

	prompt := fmt.Sprintf(`You are a metal fabrication quoting assistant. A customer has described a job. Determine which job type best matches their description.

Available job types: %s

Customer description:
"""%s"""

RULES:
- Choose the single best matching job type from the list above
- If the description could match multiple types, set ambiguous=true and pick the most likely
- confidence: 0.0-1.0 where 1.0 means you're certain
- If nothing matches well, use "custom_fab"

Return ONLY valid JSON:
{"job_type": "one_of_the_types", "confidence": 0.85, "ambiguous": false}`,
		strings.Join(names, ", "), description)

	response, err := e.provider.Complete(ctx, prompt)
	if err != nil {
		return types.IntakeResult{}, err
	}

	var parsed struct {
		JobType    string  `json:"job_type"`
		Confidence float64 `json:"confidence"`
		Ambiguous  bool    `json:"ambiguous"`
	}
	if err := json.Unmarshal([]byte(ai.ExtractJSONObject(response)), &parsed); err != nil {
		return types.IntakeResult{}, fmt.Errorf("unparseable classifier response: %w", err)
	}

	jobType, err := types.ParseJobType(parsed.JobType)
	if err != nil {
		// Classifier invented a type; fall back with halved confidence.
		jobType = types.JobTypeCustomFab
		parsed.Confidence = parsed.Confidence * 0.5
		if parsed.Confidence < 0.1 {
			parsed.Confidence = 0.1
		}
	}

	return types.IntakeResult{
		JobType:    jobType,
		Confidence: parsed.Confidence,
		Ambiguous:  parsed.Ambiguous,
	}, nil
}
