package calc

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabforge/fabquote/internal/ai"
	"github.com/fabforge/fabquote/internal/catalog"
	"github.com/fabforge/fabquote/internal/types"
)

func newTestGenerator(stub *ai.Stub) *CutListGenerator {
	return NewCutListGenerator(stub, catalog.NewPriceBook())
}

func TestGenerateSanitizesCuts(t *testing.T) {
	stub := &ai.Stub{Responses: []string{`[
		{"description": "Frame leg", "profile": "sq_tube_2x2_11ga", "material_type": "square_tubing",
		 "length_inches": -5, "quantity": 0, "cut_type": "45 degree miter", "cut_angle": 120,
		 "weld_process": "laser", "weld_type": "magic"},
		{"description": "", "profile": "", "length_inches": 24, "quantity": 2.7}
	]`}}
	g := newTestGenerator(stub)

	cuts, assumptions, err := g.Generate(context.Background(), types.QuoteParams{JobType: types.JobTypeCustomFab})
	require.NoError(t, err)
	require.Len(t, cuts, 2)

	// Every substitution on the first piece is recorded; the second piece only
	// had missing fields filled with defaults, which stays silent.
	require.Len(t, assumptions, 5)
	recorded := strings.Join(assumptions, "\n")
	assert.Contains(t, recorded, `length -5.0 out of range`)
	assert.Contains(t, recorded, `quantity 0 out of range`)
	assert.Contains(t, recorded, `cut angle 120.0 out of range`)
	assert.Contains(t, recorded, `unrecognized weld process "laser"`)
	assert.Contains(t, recorded, `unrecognized weld type "magic"`)
	// "45 degree miter" is a tolerated variant, not a substitution.
	assert.NotContains(t, recorded, "unrecognized cut type")

	leg := cuts[0]
	assert.Equal(t, 12.0, leg.LengthInches) // Non-positive length clamped
	assert.Equal(t, 1, leg.Quantity)
	assert.Equal(t, types.CutMiter45, leg.CutType)
	assert.Equal(t, 45.0, leg.CutAngle) // Out-of-range angle reset per cut type
	assert.Equal(t, types.WeldMIG, leg.WeldProcess)
	assert.Equal(t, types.WeldFillet, leg.WeldType)

	blank := cuts[1]
	assert.Equal(t, "Cut piece", blank.Description)
	assert.Equal(t, "general", blank.Group)
	assert.Equal(t, "mild_steel", blank.MaterialType)
	assert.Equal(t, "sq_tube_1.5x1.5_11ga", blank.Profile)
	assert.Equal(t, 2, blank.Quantity) // Fractional quantity truncated
	assert.Equal(t, types.CutSquare, blank.CutType)
	assert.Equal(t, 90.0, blank.CutAngle)
}

func TestGenerateDropsUnknownProfiles(t *testing.T) {
	stub := &ai.Stub{Responses: []string{`[
		{"description": "Good piece", "profile": "flat_bar_1x0.25", "length_inches": 36, "quantity": 1},
		{"description": "Bad piece", "profile": "vibranium_bar", "length_inches": 36, "quantity": 1}
	]`}}
	g := newTestGenerator(stub)

	cuts, assumptions, err := g.Generate(context.Background(), types.QuoteParams{JobType: types.JobTypeCustomFab})
	require.NoError(t, err)
	require.Len(t, cuts, 1)
	assert.Equal(t, "Good piece", cuts[0].Description)
	require.Len(t, assumptions, 1)
	assert.Contains(t, assumptions[0], `unknown profile "vibranium_bar"`)
}

func TestGenerateAllPiecesDroppedIsError(t *testing.T) {
	stub := &ai.Stub{Responses: []string{`[
		{"description": "Bad piece", "profile": "vibranium_bar", "length_inches": 36, "quantity": 1}
	]`}}
	g := newTestGenerator(stub)

	_, _, err := g.Generate(context.Background(), types.QuoteParams{JobType: types.JobTypeCustomFab})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable pieces")
}

func TestGenerateUnparseableResponse(t *testing.T) {
	stub := &ai.Stub{Responses: []string{"I cannot generate a cut list for this request."}}
	g := newTestGenerator(stub)

	_, _, err := g.Generate(context.Background(), types.QuoteParams{JobType: types.JobTypeCustomFab})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unparseable")
}

func TestGenerateProviderErrorPropagates(t *testing.T) {
	stub := &ai.Stub{}
	g := newTestGenerator(stub)

	_, _, err := g.Generate(context.Background(), types.QuoteParams{JobType: types.JobTypeCustomFab})
	require.ErrorIs(t, err, ai.ErrUnavailable)
}

func TestGeneratePromptContents(t *testing.T) {
	stub := &ai.Stub{Responses: []string{`[{"description": "x", "profile": "sq_tube_2x2_11ga", "length_inches": 12, "quantity": 1}]`}}
	g := newTestGenerator(stub)

	_, _, err := g.Generate(context.Background(), types.QuoteParams{
		JobType:     types.JobTypeFurnitureTable,
		Description: "Stainless steel console table with visible welds ground smooth",
		Fields:      types.AnsweredFields{"length": "60"},
	})
	require.NoError(t, err)
	require.Len(t, stub.Prompts, 1)

	prompt := stub.Prompts[0]
	assert.Contains(t, prompt, "furniture_table")
	assert.Contains(t, prompt, "length: 60")
	assert.Contains(t, prompt, "TIG WELDING")
	assert.Contains(t, prompt, "Stainless steel material")
	// The profile list comes from the price book, so the model can only name
	// profiles we can cost.
	assert.Contains(t, prompt, "sq_tube_2x2_11ga")
	assert.Contains(t, prompt, "sheet_11ga")
}

func TestGenerateMildSteelPromptDefaultsToMIG(t *testing.T) {
	stub := &ai.Stub{Responses: []string{`[{"description": "x", "profile": "sq_tube_2x2_11ga", "length_inches": 12, "quantity": 1}]`}}
	g := newTestGenerator(stub)

	_, _, err := g.Generate(context.Background(), types.QuoteParams{
		JobType:     types.JobTypeOrnamentalFence,
		Description: "Plain mild steel picket fence for a front yard",
	})
	require.NoError(t, err)
	assert.Contains(t, stub.Prompts[0], "Default to MIG")
}

func TestBuildInstructions(t *testing.T) {
	stub := &ai.Stub{Responses: []string{`[
		{"step": 1, "title": "Cut all stock", "description": "Cut frame rails to length on the chop saw.",
		 "tools": ["chop saw"], "duration_minutes": 30},
		{"title": "", "description": "Tack the frame square.", "duration_minutes": 0}
	]`}}
	g := newTestGenerator(stub)

	steps, err := g.BuildInstructions(context.Background(), types.QuoteParams{JobType: types.JobTypeFurnitureTable}, []types.MaterialItem{
		{Description: "Frame rail", Quantity: 4, LengthInches: 60, CutType: types.CutMiter45},
	})
	require.NoError(t, err)
	require.Len(t, steps, 2)

	assert.Equal(t, 1, steps[0].Step)
	assert.Equal(t, "Cut all stock", steps[0].Title)
	assert.Equal(t, []string{"chop saw"}, steps[0].Tools)

	// Missing step numbers, titles and durations get sensible defaults.
	assert.Equal(t, 2, steps[1].Step)
	assert.Equal(t, "Step 2", steps[1].Title)
	assert.Equal(t, 15, steps[1].DurationMinutes)

	assert.Contains(t, stub.Prompts[0], "Frame rail")
}

func TestBuildInstructionsUnparseableReturnsNil(t *testing.T) {
	stub := &ai.Stub{Responses: []string{"no json"}}
	g := newTestGenerator(stub)

	steps, err := g.BuildInstructions(context.Background(), types.QuoteParams{JobType: types.JobTypeCustomFab}, nil)
	require.NoError(t, err)
	assert.Nil(t, steps)
}

func TestNormalizeCutType(t *testing.T) {
	tests := []struct {
		in    string
		want  types.CutType
		known bool
	}{
		{"miter_45", types.CutMiter45, true},
		{"22.5 degree miter", types.CutMiter225, true},
		{"coped joint", types.CutCope, true},
		{"notched", types.CutNotch, true},
		{"", types.CutSquare, false},
		{"plasma", types.CutSquare, false},
	}
	for _, tc := range tests {
		got, known := normalizeCutType(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.known, known, tc.in)
	}
}
