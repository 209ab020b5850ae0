package calc

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabforge/fabquote/internal/ai"
	"github.com/fabforge/fabquote/internal/catalog"
	"github.com/fabforge/fabquote/internal/types"
)

// newTestRegistry builds a registry over the default catalogs. A nil provider
// disables the AI cut list path entirely.
func newTestRegistry(provider ai.Provider) *Registry {
	prices := catalog.NewPriceBook()
	var cuts *CutListGenerator
	if provider != nil {
		cuts = NewCutListGenerator(provider, prices)
	}
	return NewRegistry(prices, catalog.NewHardwareSourcer(), cuts)
}

func findItem(t *testing.T, bom types.BillOfMaterials, substr string) types.MaterialItem {
	t.Helper()
	for _, it := range bom.Items {
		if strings.Contains(it.Description, substr) {
			return it
		}
	}
	t.Fatalf("no material item matching %q in %d items", substr, len(bom.Items))
	return types.MaterialItem{}
}

func hasAssumption(bom types.BillOfMaterials, substr string) bool {
	for _, a := range bom.Assumptions {
		if strings.Contains(a, substr) {
			return true
		}
	}
	return false
}

func TestStraightRailingBalusterCount(t *testing.T) {
	r := newTestRegistry(nil)

	// 40 ft at 4" on center: 480/4 + 1 = 121 balusters, 128 after waste.
	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType: types.JobTypeStraightRailing,
		Fields: types.AnsweredFields{
			"linear_feet":    "40",
			"height":         "36",
			"infill_type":    "Vertical pickets",
			"picket_spacing": "4",
			"top_rail_style": "Square tube",
			"material":       "Mild steel",
		},
	})
	require.NoError(t, err)

	balusters := findItem(t, bom, "Balusters")
	assert.Contains(t, balusters.Description, "x 121")
	assert.Equal(t, 128, balusters.Quantity)
	assert.Equal(t, 32.0, balusters.LengthInches)

	posts := findItem(t, bom, "Posts")
	assert.Contains(t, posts.Description, "x 7") // floor(40/6)+1

	assert.Equal(t, types.WeldMIG, bom.WeldProcess)
	assert.InDelta(t, 120.0, bom.TotalSqFt, 0.1) // 40 ft x 3 ft
	assert.Positive(t, bom.TotalWeightLbs)
}

func TestStraightRailingADAForcesRoundRail(t *testing.T) {
	r := newTestRegistry(nil)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType: types.JobTypeStraightRailing,
		Fields: types.AnsweredFields{
			"linear_feet":    "20",
			"top_rail_style": "Flat bar cap",
			"ada_required":   "true",
		},
	})
	require.NoError(t, err)

	top := findItem(t, bom, "Top rail")
	assert.Equal(t, "round_tube_1.5_14ga", top.Profile)
	assert.True(t, hasAssumption(bom, "ADA"))
}

func TestCableRailingHardware(t *testing.T) {
	r := newTestRegistry(nil)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType: types.JobTypeStraightRailing,
		Fields: types.AnsweredFields{
			"linear_feet": "24",
			"height":      "42",
			"infill_type": "Horizontal cable",
		},
	})
	require.NoError(t, err)

	// (42-4)/3 rounded up plus one = 14 cables.
	assert.True(t, hasAssumption(bom, "14 cables"))

	var tensioners, endFittings bool
	for _, h := range bom.Hardware {
		if strings.Contains(h.Description, "tensioner") {
			tensioners = true
			assert.NotEmpty(t, h.Options)
		}
		if strings.Contains(h.Description, "end fitting") {
			endFittings = true
		}
	}
	assert.True(t, tensioners)
	assert.True(t, endFittings)
}

func TestCantileverGateTailGeometry(t *testing.T) {
	r := newTestRegistry(nil)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType: types.JobTypeCantileverGate,
		Fields: types.AnsweredFields{
			"clear_width":   "20",
			"height":        "6",
			"frame_profile": "2x2 square tube",
			"infill_style":  "Solid sheet",
			"mounting":      "New posts in concrete",
			"has_motor":     "Yes - automatic operation",
			"motor_brand":   "LiftMaster LA412",
		},
	})
	require.NoError(t, err)

	// Tail is 55% of the 20 ft opening.
	assert.True(t, hasAssumption(bom, "Counterbalance tail: 11.0 ft"))
	assert.True(t, hasAssumption(bom, "Gate total length: 31.0 ft"))

	// 20 ft opening with solid infill drives heavy carriages.
	var heavyCarriage, operator bool
	for _, h := range bom.Hardware {
		if strings.Contains(h.Description, "heavy duty") {
			heavyCarriage = true
		}
		if strings.Contains(h.Description, "Gate operator") {
			operator = true
		}
	}
	assert.True(t, heavyCarriage)
	assert.True(t, operator)

	// New posts mean concrete footings.
	findItem(t, bom, "Post concrete")
}

func TestSwingGateDoubleLeaf(t *testing.T) {
	r := newTestRegistry(nil)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType: types.JobTypeSwingGate,
		Fields: types.AnsweredFields{
			"clear_width":  "12",
			"height":       "5",
			"panel_config": "Double (two leaves)",
			"center_stop":  "Cane bolt into concrete",
		},
	})
	require.NoError(t, err)

	var hingePairs, centerStop int
	for _, h := range bom.Hardware {
		if strings.Contains(h.Description, "Hinges") {
			hingePairs = h.Quantity
		}
		if strings.Contains(h.Description, "Center hardware") {
			centerStop = h.Quantity
		}
	}
	assert.Equal(t, 2, hingePairs)
	assert.Equal(t, 1, centerStop)
}

func TestCompleteStairRiserMath(t *testing.T) {
	r := newTestRegistry(nil)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType: types.JobTypeCompleteStair,
		Fields: types.AnsweredFields{
			"total_rise": "112",
			"width":      "36",
		},
	})
	require.NoError(t, err)

	// ceil(112/7.5) = 15 risers at just under 7.5" each.
	assert.True(t, hasAssumption(bom, "15 risers"))
	treads := findItem(t, bom, "Treads")
	assert.Contains(t, treads.Description, "x 15")

	stringers := findItem(t, bom, "Stringers")
	assert.Contains(t, stringers.Description, "x 2")
}

func TestCompleteStairWideAddsCenterStringer(t *testing.T) {
	r := newTestRegistry(nil)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType: types.JobTypeCompleteStair,
		Fields: types.AnsweredFields{
			"total_rise": "96",
			"width":      "60",
		},
	})
	require.NoError(t, err)

	stringers := findItem(t, bom, "Stringers")
	assert.Contains(t, stringers.Description, "x 3")
	assert.True(t, hasAssumption(bom, "center stringer"))
}

func TestBollardSurfaceMount(t *testing.T) {
	r := newTestRegistry(nil)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType: types.JobTypeBollard,
		Fields: types.AnsweredFields{
			"quantity":           "6",
			"pipe_size":          "6\" schedule 40",
			"height_above_grade": "42",
			"mounting":           "Surface mount baseplate",
			"cap_style":          "Dome cap",
		},
	})
	require.NoError(t, err)

	bollards := findItem(t, bom, "Bollards")
	assert.Equal(t, "pipe_6_sch40", bollards.Profile)
	assert.Equal(t, 42.0, bollards.LengthInches) // No embed on surface mount

	findItem(t, bom, "Baseplates")

	var anchors int
	for _, h := range bom.Hardware {
		if strings.Contains(h.Description, "Wedge anchors") {
			anchors = h.Quantity
		}
	}
	assert.Equal(t, 24, anchors)
}

func TestBollardEmbeddedGetsFootings(t *testing.T) {
	r := newTestRegistry(nil)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType: types.JobTypeBollard,
		Fields: types.AnsweredFields{
			"quantity":           "4",
			"pipe_size":          "4\" schedule 40",
			"height_above_grade": "36",
			"mounting":           "Embedded in new concrete",
			"concrete_fill":      "true",
		},
	})
	require.NoError(t, err)

	bollards := findItem(t, bom, "Bollards")
	assert.Equal(t, 60.0, bollards.LengthInches) // 36 above + 24 embed
	findItem(t, bom, "Footing concrete")
	findItem(t, bom, "Fill concrete")
}

func TestRegistryFallsBackToCustomFab(t *testing.T) {
	r := newTestRegistry(nil)

	// Roll cages have no dedicated calculator; the fallback still quotes.
	assert.False(t, r.HasDedicated(types.JobTypeRollCage))
	assert.True(t, r.HasDedicated(types.JobTypeCantileverGate))

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType: types.JobTypeRollCage,
		Fields:  types.AnsweredFields{},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, bom.Items)
	assert.True(t, hasAssumption(bom, "envelope"))
}

func TestCustomFabNeverFails(t *testing.T) {
	// Even with a dead AI provider and a three-word description, custom fab
	// must produce a usable estimate.
	r := newTestRegistry(&ai.Stub{Err: errors.New("provider down")})

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType:     types.JobTypeCustomFab,
		Description: "fix this gate",
		Fields:      types.AnsweredFields{},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, bom.Items)
	assert.True(t, hasAssumption(bom, "framed structure"))
	assert.Positive(t, bom.MaterialSubtotal())
}

func TestCustomFabTriesAIBelowWordFloor(t *testing.T) {
	// Custom fabrication has no template worth protecting, so the AI path
	// runs on any free text at all.
	stub := &ai.Stub{Responses: []string{`[
		{"description": "Gate patch plate", "profile": "sheet_11ga", "material_type": "plate",
		 "length_inches": 24, "quantity": 2, "cut_type": "square", "weld_process": "mig"}
	]`}}
	r := newTestRegistry(stub)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType:     types.JobTypeCustomFab,
		Description: "fix this gate",
		Fields:      types.AnsweredFields{},
	})
	require.NoError(t, err)
	require.Len(t, stub.Prompts, 1)

	findItem(t, bom, "Gate patch plate")
	assert.True(t, hasAssumption(bom, "Cut list generated by AI"))
}

func TestDedicatedCalculatorRespectsWordFloor(t *testing.T) {
	// A short description must not trigger the AI path when a template
	// calculator exists.
	stub := &ai.Stub{Responses: []string{`[{"description": "should not be used", "profile": "sq_tube_2x2_11ga", "length_inches": 12, "quantity": 1}]`}}
	r := newTestRegistry(stub)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType:     types.JobTypeStraightRailing,
		Description: "simple railing",
		Fields: types.AnsweredFields{
			"linear_feet": "10",
			"infill_type": "Vertical pickets",
		},
	})
	require.NoError(t, err)
	assert.Empty(t, stub.Prompts)
	findItem(t, bom, "Posts")
}

func TestAICutListPathOnRichDescription(t *testing.T) {
	stub := &ai.Stub{Responses: []string{`Here is the cut list:
` + "```json" + `
[
	{"description": "Frame rail", "piece_name": "rail", "group": "frame",
	 "profile": "sq_tube_2x2_11ga", "material_type": "square_tubing",
	 "length_inches": 72, "quantity": 4, "cut_type": "miter_45", "weld_process": "tig"},
	{"description": "Mystery bar", "profile": "unobtanium_rod",
	 "length_inches": 12, "quantity": 2}
]
` + "```"}}
	r := newTestRegistry(stub)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType: types.JobTypeStraightRailing,
		Description: "Modern stainless railing with blended show quality welds for an interior " +
			"staircase, forty feet total with custom panel layout per the architect drawings",
		Fields: types.AnsweredFields{"linear_feet": "40"},
	})
	require.NoError(t, err)
	require.Len(t, stub.Prompts, 1)

	// The unknown profile is dropped with an assumption, not priced blind.
	require.Len(t, bom.Items, 1)
	rail := findItem(t, bom, "Frame rail")
	assert.Equal(t, 5, rail.Quantity) // applyWaste(4, 0.05)
	assert.True(t, hasAssumption(bom, `unknown profile "unobtanium_rod"`))
	assert.True(t, hasAssumption(bom, "Cut list generated by AI"))
	assert.Equal(t, types.WeldTIG, bom.WeldProcess)
}

func TestAICutListWastePerMaterialClass(t *testing.T) {
	stub := &ai.Stub{Responses: []string{`[
		{"description": "Frame rail", "profile": "sq_tube_2x2_11ga", "material_type": "square_tubing",
		 "length_inches": 72, "quantity": 4},
		{"description": "Gusset plate", "profile": "sheet_11ga", "material_type": "plate",
		 "length_inches": 6, "quantity": 8},
		{"description": "Trim strap", "profile": "flat_bar_1x0.25", "material_type": "flat_bar",
		 "length_inches": 24, "quantity": 10}
	]`}}
	r := newTestRegistry(stub)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType:     types.JobTypeCustomFab,
		Description: "Custom welded steel equipment stand with gusseted corners and trim straps",
	})
	require.NoError(t, err)
	require.Len(t, bom.Items, 3)

	assert.Equal(t, wasteTube, findItem(t, bom, "Frame rail").WasteFactor)
	plate := findItem(t, bom, "Gusset plate")
	assert.Equal(t, wasteSheet, plate.WasteFactor)
	assert.Equal(t, 10, plate.Quantity) // applyWaste(8, 0.15)
	assert.Equal(t, wasteFlat, findItem(t, bom, "Trim strap").WasteFactor)
}

func TestRepairStructuralCrackLength(t *testing.T) {
	r := newTestRegistry(nil)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType: types.JobTypeRepairStructural,
		Fields: types.AnsweredFields{
			"damage_description": "cracked weld",
			"crack_length":       "18",
			"load_bearing":       "Yes",
			"repair_location":    "Repair on site",
		},
	})
	require.NoError(t, err)

	patch := findItem(t, bom, "fishplate")
	assert.GreaterOrEqual(t, patch.LengthInches, 36.0) // Fishplates run past the crack
	assert.True(t, hasAssumption(bom, "Repair on site"))
	assert.True(t, hasAssumption(bom, "AWS D1.1"))
}

func TestRepairDecorativeRustAndMissingPieces(t *testing.T) {
	r := newTestRegistry(nil)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType: types.JobTypeRepairDecorative,
		Fields: types.AnsweredFields{
			"damage_description": "rusted railing",
			"rust_severity":      "Rusted through in spots",
			"missing_pieces":     "true",
			"sections_affected":  "3",
		},
	})
	require.NoError(t, err)

	findItem(t, bom, "Replacement sections")
	findItem(t, bom, "missing pieces")
	assert.True(t, hasAssumption(bom, "cut out and replaced"))
}

func TestFurnitureTableTIGWelds(t *testing.T) {
	r := newTestRegistry(nil)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType: types.JobTypeFurnitureTable,
		Fields: types.AnsweredFields{
			"length":        "72",
			"width":         "36",
			"height":        "29",
			"style":         "Four legs",
			"top_material":  "Wood (by others)",
			"leveling_feet": "true",
		},
	})
	require.NoError(t, err)

	legs := findItem(t, bom, "Legs")
	assert.Equal(t, 5, legs.Quantity) // applyWaste(4, 0.05)
	assert.Equal(t, types.WeldTIG, bom.WeldProcess)

	var feet int
	for _, h := range bom.Hardware {
		if strings.Contains(h.Description, "leveling feet") {
			feet = h.Quantity
		}
	}
	assert.Equal(t, 4, feet)
}

func TestOrnamentalFenceGatesAddHardware(t *testing.T) {
	r := newTestRegistry(nil)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType: types.JobTypeOrnamentalFence,
		Fields: types.AnsweredFields{
			"linear_feet":  "80",
			"height":       "5",
			"picket_style": "Spear top",
			"gates_needed": "Walk gate and drive gate",
		},
	})
	require.NoError(t, err)

	assert.True(t, hasAssumption(bom, "Spear top"))
	var hingeLines int
	for _, h := range bom.Hardware {
		if strings.Contains(h.Description, "hinges") {
			hingeLines++
		}
	}
	assert.Equal(t, 2, hingeLines) // Walk + drive gate
}

func TestWindowGrateEgressHardware(t *testing.T) {
	r := newTestRegistry(nil)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType: types.JobTypeWindowSecurityGrate,
		Fields: types.AnsweredFields{
			"width":    "36",
			"height":   "48",
			"quantity": "3",
			"bar_style": "Vertical bars",
			"egress":   "Yes - hinged with quick release",
		},
	})
	require.NoError(t, err)

	var quickRelease bool
	for _, h := range bom.Hardware {
		if strings.Contains(h.Description, "quick-release") {
			quickRelease = true
			assert.Equal(t, 3, h.Quantity)
		}
	}
	assert.True(t, quickRelease)
	assert.True(t, hasAssumption(bom, "egress"))
}

func TestSpiralStairGeometry(t *testing.T) {
	r := newTestRegistry(nil)

	bom, err := r.Calculate(context.Background(), types.QuoteParams{
		JobType: types.JobTypeSpiralStair,
		Fields: types.AnsweredFields{
			"total_rise": "108",
			"diameter":   "60",
		},
	})
	require.NoError(t, err)

	// ceil(108/7.5) = 15 treads, 450 degrees of rotation.
	assert.True(t, hasAssumption(bom, "15 treads"))
	assert.True(t, hasAssumption(bom, "450 degrees"))

	column := findItem(t, bom, "Center column")
	assert.Equal(t, 144.0, column.LengthInches) // rise + 36

	findItem(t, bom, "Helical handrail")
	assert.True(t, hasAssumption(bom, "roll bending"))
}

func TestParseNumberVariants(t *testing.T) {
	assert.Equal(t, 10.5, parseNumber("10.5 ft", 0))
	assert.Equal(t, 42.0, parseNumber(`42"`, 0))
	assert.Equal(t, 20.0, parseNumber("about 20 feet", 0))
	assert.Equal(t, 7.0, parseNumber("", 7))
	assert.Equal(t, 7.0, parseNumber("no numbers here", 7))
}

func TestWasteFor(t *testing.T) {
	assert.Equal(t, wasteTube, wasteFor("square_tubing"))
	assert.Equal(t, wasteTube, wasteFor("pipe"))
	assert.Equal(t, wasteTube, wasteFor("mild_steel"))
	assert.Equal(t, wasteFlat, wasteFor("flat_bar"))
	assert.Equal(t, wasteFlat, wasteFor("angle_iron"))
	assert.Equal(t, wasteFlat, wasteFor("channel"))
	assert.Equal(t, wasteSheet, wasteFor("plate"))
}

func TestApplyWaste(t *testing.T) {
	assert.Equal(t, 128, applyWaste(121, wasteTube))
	assert.Equal(t, 22, applyWaste(20, wasteFlat))
	assert.Equal(t, 2, applyWaste(1, wasteSheet))
	assert.Equal(t, 1, applyWaste(0, wasteTube))
}

func TestBoolAnswer(t *testing.T) {
	assert.True(t, boolAnswer("true"))
	assert.True(t, boolAnswer("Yes"))
	assert.True(t, boolAnswer("Yes - hinged with quick release"))
	assert.False(t, boolAnswer("No"))
	assert.False(t, boolAnswer(""))
}

func TestWeldProcessFor(t *testing.T) {
	assert.Equal(t, types.WeldTIG, weldProcessFor("Stainless steel"))
	assert.Equal(t, types.WeldTIG, weldProcessFor("aluminum 6061"))
	assert.Equal(t, types.WeldMIG, weldProcessFor("Mild steel"))
	assert.Equal(t, types.WeldMIG, weldProcessFor(""))
}

func TestFinalizeDefaults(t *testing.T) {
	bom := finalize(types.BillOfMaterials{TotalWeightLbs: 10.567})
	assert.Equal(t, 10.6, bom.TotalWeightLbs)
	assert.Equal(t, types.WeldMIG, bom.WeldProcess)
	assert.NotNil(t, bom.Items)
	assert.NotNil(t, bom.Hardware)
	assert.NotNil(t, bom.Assumptions)
}
