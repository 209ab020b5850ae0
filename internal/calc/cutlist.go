package calc

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/fabforge/fabquote/internal/ai"
	"github.com/fabforge/fabquote/internal/catalog"
	"github.com/fabforge/fabquote/internal/logger"
	"github.com/fabforge/fabquote/internal/types"
)

// CutItem is one sanitized piece of an AI-generated cut list.
type CutItem struct {
	Description  string
	PieceName    string
	Group        string
	MaterialType string
	Profile      string
	LengthInches float64
	Quantity     int
	CutType      types.CutType
	CutAngle     float64
	WeldProcess  types.WeldProcess
	WeldType     types.WeldType
	Notes        string
}

// CutListGenerator turns a free-text project description into a detailed cut
// list via the AI provider. Every calculator shares one instance; any failure
// sends the caller back to its template geometry.
type CutListGenerator struct {
	provider ai.Provider
	prices   *catalog.PriceBook
}

// NewCutListGenerator creates a cut list generator.
func NewCutListGenerator(provider ai.Provider, prices *catalog.PriceBook) *CutListGenerator {
	return &CutListGenerator{provider: provider, prices: prices}
}

// Generate produces a sanitized cut list for the job. The second return
// value carries assumptions recorded during sanitizing, such as dropped
// unknown-profile pieces. An unparseable response abandons the path with an
// error; a parseable response is clamped and normalized item by item.
func (g *CutListGenerator) Generate(ctx context.Context, params types.QuoteParams) ([]CutItem, []string, error) {
	response, err := g.provider.Complete(ctx, g.buildPrompt(params))
	if err != nil {
		return nil, nil, err
	}

	var raw []rawCut
	if err := json.Unmarshal([]byte(ai.ExtractJSONArray(response)), &raw); err != nil {
		return nil, nil, fmt.Errorf("unparseable cut list response: %w", err)
	}

	var cuts []CutItem
	var assumptions []string
	for _, rc := range raw {
		cut, ok := g.sanitize(rc, &assumptions)
		if ok {
			cuts = append(cuts, cut)
		}
	}
	if len(cuts) == 0 {
		return nil, nil, fmt.Errorf("cut list response contained no usable pieces")
	}
	return cuts, assumptions, nil
}

// BuildInstructions generates an advisory fabrication sequence from the
// finished cut list. Returns nil without error when the response is unusable;
// instructions are never required.
func (g *CutListGenerator) BuildInstructions(ctx context.Context, params types.QuoteParams, items []types.MaterialItem) ([]types.BuildStep, error) {
	response, err := g.provider.Complete(ctx, g.buildInstructionsPrompt(params, items))
	if err != nil {
		return nil, err
	}

	var raw []struct {
		Step            int      `json:"step"`
		Title           string   `json:"title"`
		Description     string   `json:"description"`
		Tools           []string `json:"tools"`
		DurationMinutes int      `json:"duration_minutes"`
		WeldProcess     string   `json:"weld_process"`
		SafetyNotes     string   `json:"safety_notes"`
	}
	if err := json.Unmarshal([]byte(ai.ExtractJSONArray(response)), &raw); err != nil {
		logger.Warnf("Unparseable build instructions response: %v", err)
		return nil, nil
	}

	steps := make([]types.BuildStep, 0, len(raw))
	for i, r := range raw {
		step := types.BuildStep{
			Step:            r.Step,
			Title:           r.Title,
			Description:     r.Description,
			Tools:           r.Tools,
			DurationMinutes: r.DurationMinutes,
			WeldProcess:     r.WeldProcess,
			SafetyNotes:     r.SafetyNotes,
		}
		if step.Step == 0 {
			step.Step = i + 1
		}
		if step.Title == "" {
			step.Title = fmt.Sprintf("Step %d", step.Step)
		}
		if step.DurationMinutes <= 0 {
			step.DurationMinutes = 15
		}
		steps = append(steps, step)
	}
	if len(steps) == 0 {
		return nil, nil
	}
	return steps, nil
}

type rawCut struct {
	Description  string  `json:"description"`
	PieceName    string  `json:"piece_name"`
	Group        string  `json:"group"`
	MaterialType string  `json:"material_type"`
	Profile      string  `json:"profile"`
	LengthInches float64 `json:"length_inches"`
	Quantity     float64 `json:"quantity"`
	CutType      string  `json:"cut_type"`
	CutAngle     float64 `json:"cut_angle"`
	WeldProcess  string  `json:"weld_process"`
	WeldType     string  `json:"weld_type"`
	Notes        string  `json:"notes"`
}

// sanitize clamps and normalizes one raw piece. Unknown profiles are dropped
// with a recorded assumption rather than priced blind, and every other
// substitution is recorded too so the correction is visible on the quote.
// Missing fields are filled with defaults silently; only values the model
// actually produced get an assumption.
func (g *CutListGenerator) sanitize(rc rawCut, assumptions *[]string) (CutItem, bool) {
	cut := CutItem{
		Description:  rc.Description,
		PieceName:    rc.PieceName,
		Group:        rc.Group,
		MaterialType: rc.MaterialType,
		Profile:      rc.Profile,
		LengthInches: rc.LengthInches,
		Quantity:     int(rc.Quantity),
		CutAngle:     rc.CutAngle,
		Notes:        rc.Notes,
	}

	if cut.Description == "" {
		cut.Description = "Cut piece"
	}
	if cut.Group == "" {
		cut.Group = "general"
	}
	if cut.MaterialType == "" {
		cut.MaterialType = "mild_steel"
	}
	if cut.Profile == "" {
		cut.Profile = "sq_tube_1.5x1.5_11ga"
	}
	if !g.prices.KnownProfile(cut.Profile) {
		*assumptions = append(*assumptions, fmt.Sprintf("Dropped AI cut %q: unknown profile %q.", cut.Description, cut.Profile))
		return CutItem{}, false
	}

	var known bool
	if cut.CutType, known = normalizeCutType(rc.CutType); !known && rc.CutType != "" {
		*assumptions = append(*assumptions, fmt.Sprintf("AI cut %q: unrecognized cut type %q replaced with %q.", cut.Description, rc.CutType, cut.CutType))
	}
	if cut.WeldProcess, known = normalizeWeldProcess(rc.WeldProcess); !known && rc.WeldProcess != "" {
		*assumptions = append(*assumptions, fmt.Sprintf("AI cut %q: unrecognized weld process %q replaced with %q.", cut.Description, rc.WeldProcess, cut.WeldProcess))
	}
	if cut.WeldType, known = normalizeWeldType(rc.WeldType); !known && rc.WeldType != "" {
		*assumptions = append(*assumptions, fmt.Sprintf("AI cut %q: unrecognized weld type %q replaced with %q.", cut.Description, rc.WeldType, cut.WeldType))
	}

	if cut.LengthInches <= 0 {
		cut.LengthInches = 12.0
		*assumptions = append(*assumptions, fmt.Sprintf("AI cut %q: length %.1f out of range, replaced with %.1f inches.", cut.Description, rc.LengthInches, cut.LengthInches))
	}
	if cut.Quantity <= 0 {
		cut.Quantity = 1
		*assumptions = append(*assumptions, fmt.Sprintf("AI cut %q: quantity %d out of range, replaced with %d.", cut.Description, int(rc.Quantity), cut.Quantity))
	}
	if cut.CutAngle <= 0 || cut.CutAngle > 90 {
		if cut.CutType == types.CutSquare {
			cut.CutAngle = 90.0
		} else {
			cut.CutAngle = 45.0
		}
		if rc.CutAngle != 0 {
			*assumptions = append(*assumptions, fmt.Sprintf("AI cut %q: cut angle %.1f out of range, replaced with %.1f degrees.", cut.Description, rc.CutAngle, cut.CutAngle))
		}
	}
	return cut, true
}

// normalizeCutType maps model output onto the fixed cut type vocabulary,
// tolerating common variants like "45 degree miter". The second return
// reports whether the input was recognized; false means the caller got the
// square fallback for an unintelligible label.
func normalizeCutType(s string) (types.CutType, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, ct := range types.ValidCutTypes {
		if v == string(ct) {
			return ct, true
		}
	}
	switch {
	case strings.Contains(v, "miter") && strings.Contains(v, "22"):
		return types.CutMiter225, true
	case strings.Contains(v, "miter"), strings.Contains(v, "45"):
		return types.CutMiter45, true
	case strings.Contains(v, "cope"):
		return types.CutCope, true
	case strings.Contains(v, "notch"):
		return types.CutNotch, true
	default:
		return types.CutSquare, false
	}
}

func normalizeWeldProcess(s string) (types.WeldProcess, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, wp := range types.ValidWeldProcesses {
		if v == string(wp) {
			return wp, true
		}
	}
	return types.WeldMIG, false
}

func normalizeWeldType(s string) (types.WeldType, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, wt := range types.ValidWeldTypes {
		if v == string(wt) {
			return wt, true
		}
	}
	return types.WeldFillet, false
}

func (g *CutListGenerator) buildPrompt(params types.QuoteParams) string {
	fieldsText := renderFields(params)
	allText := strings.ToLower(fieldsText + " " + params.Description + " " + params.Notes)

	tigIndicators := []string{
		"ground smooth", "blended", "furniture finish", "show quality",
		"visible welds", "tig", "glass top", "grind flush", "grind smooth",
		"seamless", "showroom", "polished", "mirror finish",
		"stainless", "aluminum", "chrome", "brushed finish",
	}
	needsTIG := false
	for _, ind := range tigIndicators {
		if strings.Contains(allText, ind) {
			needsTIG = true
			break
		}
	}
	isStainless := strings.Contains(allText, "stainless") || strings.Contains(allText, "304") || strings.Contains(allText, "316")
	isAluminum := strings.Contains(allText, "aluminum") || strings.Contains(allText, "6061")

	return fmt.Sprintf(`You are an expert metal fabricator with 25+ years of shop experience.
You are generating a DETAILED cut list for a fabrication project.

IMPORTANT: Think through this design BEFORE listing pieces.

JOB TYPE: %s

USER-PROVIDED INFORMATION:
%s

=== STEP 1: DESIGN ANALYSIS ===
Before listing any pieces, think through:
- What is the overall structure? (frame, enclosure, decorative, structural)
- What are the critical dimensions and how do pieces connect?
- Are there any repeating patterns? (pickets, panels, cross-members)
- What joints are visible vs hidden? (visible = better cuts, TIG welds)
- What is the load path? (structural members need to be sized appropriately)

=== STEP 2: PATTERN GEOMETRY ===
If there are repeating elements (pickets, slats, bars, cross-members):
- Calculate: count = (available_space / spacing) + 1
- Each repeating piece gets its OWN line item with correct quantity
- Do NOT lump different pieces into one line

=== STEP 3: WELD PROCESS DETERMINATION ===
For each joint, determine the weld process:
%s

=== STEP 4: GENERATE CUT LIST ===

AVAILABLE PROFILES (use ONLY these):
%s

MATERIAL TYPES: square_tubing, round_tubing, flat_bar, angle_iron, channel, pipe, plate, mild_steel, stainless_304, aluminum_6061

CUT TYPES: square, miter_45, miter_22.5, cope, notch, compound

RULES:
1. Every piece must have a SPECIFIC length in inches. No "TBD" or "varies".
2. Group related pieces (e.g., all frame members in "frame" group, all pickets in "infill" group).
3. List each UNIQUE piece separately with its quantity. Don't combine different pieces.
4. For tables/furniture: 4 legs (not 5), list each rail separately (2 long + 2 short).
5. Include connection plates, gussets, and brackets. These are real pieces that get cut.
6. Use miter_45 for visible frame corners. Use cope for tube-to-tube T-joints.
7. Be practical. Use sizes a real fab shop would stock and cut.
8. Include piece_name for what the part IS (e.g., "leg", "top_rail", "picket").

Return ONLY valid JSON, an array of objects:
[
    {
        "description": "Table leg - 2x2 sq tube",
        "piece_name": "leg",
        "group": "frame",
        "material_type": "square_tubing",
        "profile": "sq_tube_2x2_11ga",
        "length_inches": 30.0,
        "quantity": 4,
        "cut_type": "miter_45",
        "cut_angle": 45.0,
        "weld_process": "tig",
        "weld_type": "fillet",
        "notes": "4 legs at 30 inches for 30-inch table height. Miter bottom for leveling feet."
    }
]`, params.JobType, fieldsText, weldGuidance(needsTIG, isStainless, isAluminum), availableProfiles())
}

func (g *CutListGenerator) buildInstructionsPrompt(params types.QuoteParams, items []types.MaterialItem) string {
	var cutLines []string
	for i, it := range items {
		if i >= 25 {
			break
		}
		cutLines = append(cutLines, fmt.Sprintf("  - %s (qty %d, %.0f\", cut: %s)", it.Description, it.Quantity, it.LengthInches, it.CutType))
	}
	cutsText := "  (no items)"
	if len(cutLines) > 0 {
		cutsText = strings.Join(cutLines, "\n")
	}

	weldNote := ""
	if strings.Contains(strings.ToLower(params.Description+" "+params.Notes), "stainless") {
		weldNote = "\nNOTE: This project includes TIG welding. Steps involving TIG should specify appropriate gas (argon), filler rod, and amperage range."
	}

	return fmt.Sprintf(`You are an expert metal fabricator creating step-by-step build instructions.
A journeyman fabricator should be able to follow these instructions and build this project.

JOB TYPE: %s

PROJECT DETAILS:
%s

CUT LIST:
%s
%s
TASK: Generate a practical fabrication sequence, the exact steps a fabricator follows
to build this project from raw material to finished product.

RULES:
1. Steps in logical build order: layout/mark, cut, deburr, fit/tack, weld, grind, finish.
2. Each step must be SPECIFIC and ACTIONABLE, not generic. Reference actual pieces from the cut list.
3. Include the correct tools for each step (chop saw, band saw, TIG welder, MIG welder, angle grinder, etc.).
4. Specify weld process (MIG vs TIG) for each welding step.
5. Estimate realistic duration in minutes for each step.
6. Include safety notes where relevant (PPE, ventilation for galvanized, etc.).
7. 8-15 steps is typical. Group related operations but don't skip important steps.
8. Include quality checks: square check after tacking, level check, fit check before welding.

Return ONLY valid JSON, an array of step objects:
[
    {
        "step": 1,
        "title": "Layout & Mark All Pieces",
        "description": "Transfer cut list dimensions to raw stock using tape measure and soapstone. Mark miter angles on frame pieces using speed square. Number each piece for assembly reference.",
        "tools": ["tape measure", "soapstone", "speed square", "sharpie"],
        "duration_minutes": 25,
        "weld_process": null,
        "safety_notes": "Wear gloves when handling raw steel. Sharp edges and mill scale."
    }
]`, params.JobType, renderFields(params), cutsText, weldNote)
}

func weldGuidance(needsTIG, isStainless, isAluminum bool) string {
	var lines []string
	if needsTIG || isStainless || isAluminum {
		lines = append(lines, "THIS PROJECT REQUIRES TIG WELDING. Reasons:")
		if isStainless {
			lines = append(lines, "  - Stainless steel material: TIG required for corrosion resistance")
		}
		if isAluminum {
			lines = append(lines, "  - Aluminum material: TIG (or specialized MIG) required")
		}
		if needsTIG && !isStainless && !isAluminum {
			lines = append(lines, "  - Finish quality requires ground/blended welds: TIG produces cleaner joints")
		}
		lines = append(lines, "",
			`Use weld_process: "tig" for ALL visible joints.`,
			`Use weld_process: "mig" for hidden structural joints only.`)
	} else {
		lines = append(lines,
			"Standard mild steel project. Default to MIG welding.",
			`Use weld_process: "mig" for most joints.`,
			`Use weld_process: "tig" only if a specific joint needs show-quality finish.`)
	}
	lines = append(lines, "",
		"Weld types to use:",
		`  - "fillet": most common, T-joints and lap joints`,
		`  - "butt": end-to-end joints (frame corners with miters)`,
		`  - "full_penetration": structural connections requiring full strength`,
		`  - "tack_only": temporary or removable connections`,
		`  - "plug": sheet to tube/frame connections`)
	return strings.Join(lines, "\n")
}

// availableProfiles renders every priced profile so the model can only pick
// pieces the price book can cost.
func availableProfiles() string {
	keys := catalog.PricedProfiles()
	sort.Strings(keys)
	return "  " + strings.Join(keys, ", ")
}

// renderFields summarizes the answered fields plus free text for the prompt
func renderFields(params types.QuoteParams) string {
	keys := make([]string, 0, len(params.Fields))
	for k := range params.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var lines []string
	for _, k := range keys {
		if v := strings.TrimSpace(params.Fields[k]); v != "" {
			lines = append(lines, fmt.Sprintf("  - %s: %s", k, v))
		}
	}
	if params.Description != "" {
		lines = append(lines, fmt.Sprintf("  - description: %s", params.Description))
	}
	if params.Notes != "" {
		lines = append(lines, fmt.Sprintf("  - notes: %s", params.Notes))
	}
	for _, obs := range params.PhotoObservations {
		lines = append(lines, fmt.Sprintf("  - photo observation: %s", obs))
	}
	if len(lines) == 0 {
		return "  (no fields provided)"
	}
	return strings.Join(lines, "\n")
}
