package questions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fabforge/fabquote/internal/ai"
	"github.com/fabforge/fabquote/internal/logger"
	"github.com/fabforge/fabquote/internal/types"
)

// ExtractFromPhoto runs vision analysis on a job photo and extracts any
// fields, observations and damage notes it can. The result is never
// authoritative over text-derived answers; on conflict the caller keeps the
// text value. Any failure yields an empty extraction with a stock
// observation, never an error.
func (e *Engine) ExtractFromPhoto(ctx context.Context, jobType types.JobType, image []byte, mimeType, context_ string) types.PhotoExtraction {
	tree, err := e.registry.Tree(jobType)
	if err != nil {
		return emptyPhotoExtraction()
	}

	prompt := buildVisionPrompt(tree, context_)

	response, err := e.provider.CompleteVision(ctx, prompt, image, mimeType)
	if err != nil {
		if err != ai.ErrUnavailable {
			logger.Warnf("Photo extraction failed for %s: %v", jobType, err)
		}
		return emptyPhotoExtraction()
	}

	var parsed struct {
		ExtractedFields   map[string]any `json:"extracted_fields"`
		PhotoObservations string         `json:"photo_observations"`
		MaterialDetected  string         `json:"material_detected"`
		DamageAssessment  string         `json:"damage_assessment"`
	}
	if err := json.Unmarshal([]byte(ai.ExtractJSONObject(response)), &parsed); err != nil {
		logger.Warnf("Unparseable vision response for %s: %v", jobType, err)
		return emptyPhotoExtraction()
	}

	fields := types.AnsweredFields{}
	for id, value := range parsed.ExtractedFields {
		if findQuestion(tree, id) == nil {
			continue
		}
		fields[id] = stringify(value)
	}

	extraction := types.PhotoExtraction{
		Fields:   fields,
		Material: parsed.MaterialDetected,
	}
	if parsed.PhotoObservations != "" {
		extraction.Observations = []string{parsed.PhotoObservations}
	}
	if parsed.DamageAssessment != "" && parsed.DamageAssessment != "N/A" {
		extraction.DamageNotes = []string{parsed.DamageAssessment}
	}
	return extraction
}

func emptyPhotoExtraction() types.PhotoExtraction {
	return types.PhotoExtraction{
		Fields:       types.AnsweredFields{},
		Observations: []string{"Photo received - vision processing unavailable. Photo stored for reference."},
		Material:     "unknown",
	}
}

func buildVisionPrompt(tree *types.QuestionTree, context string) string {
	return fmt.Sprintf(`You are analyzing a photo for a metal fabrication quoting system.
Job type: %s
Additional context from user: %s

Look for and extract the following information from this photo:

1. MEASUREMENTS: Look for tape measures, rulers, measuring tools visible in the photo.
   Read any measurements you can see and report them with units.

2. MATERIAL TYPE: What metal is this?
   - Orange/red rust = mild steel or wrought iron
   - No rust, shiny silver = stainless steel or aluminum
   - Dull grey with no rust = galvanized
   - Uniform color coating = painted or powder coated
   - Brown/orange patina (intentional) = corten/weathering steel

3. DIMENSIONS: Even without a tape measure, estimate dimensions from context:
   - Door frames are typically 36" wide x 80" tall
   - Standard truck beds are 5-8 feet long
   - Standard ceiling height is 8-9 feet
   - A person's hand span is approximately 8 inches

4. CONDITION/DAMAGE (for repair jobs):
   - Cracks, breaks, or weld failures
   - Rust-through vs surface rust
   - Deformation, bending, impact damage
   - Missing pieces or sections

5. EXISTING HARDWARE: Identify any visible:
   - Hinges (type, condition)
   - Latches, locks
   - Gate operators/motors (brand if visible)
   - Mounting brackets, flanges

6. DESIGN ELEMENTS:
   - Picket style, spacing
   - Infill pattern
   - Decorative elements (scrollwork, spears, rings)
   - Frame profile (square tube, round tube, flat bar)

These are the specific fields I need for this job type:
%s

Return ONLY a JSON object with:
{
    "extracted_fields": {"field_id": "value", ...},
    "photo_observations": "plain language description of everything you see",
    "material_detected": "mild_steel" or "stainless" or "aluminum" or "galvanized" or "unknown",
    "damage_assessment": "description of any damage or N/A",
    "confidence": 0.0 to 1.0
}

Only include fields you are confident about (>80%% confidence).
Do NOT guess measurements - only report what you can clearly see or reasonably estimate.`,
		tree.JobType, context, fieldDescriptions(tree))
}
