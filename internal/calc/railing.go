package calc

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/fabforge/fabquote/internal/types"
)

// Top rail profile by style answer.
var topRailProfiles = map[string]struct {
	profile, materialType string
}{
	"Round pipe":        {"round_tube_1.5_14ga", "round_tubing"},
	"Square tube":       {"sq_tube_1.5x1.5_14ga", "square_tubing"},
	"Flat bar cap":      {"flat_bar_1.5x0.25", "flat_bar"},
	"Wood cap by others": {"flat_bar_1.5x0.25", "flat_bar"},
}

const (
	railingPostProfile    = "sq_tube_1.5x1.5_11ga"
	railingPicketProfile  = "sq_bar_0.75"
	cableSpacingIn        = 3.0 // Code: 3" max clear for cable infill
	defaultPicketSpacing  = 4.0
	defaultPostSpacingFt  = 6.0
	transitionMiterExtraIn = 6.0 // Extra rail length per corner for miter waste
)

// railingInputs is the normalized geometry shared by the railing calculators.
type railingInputs struct {
	linearFt     float64
	heightIn     float64
	postSpacing  float64
	transitions  int
	infill       string
	spacingIn    float64
	topRailStyle string
	material     string
	mounting     string
	ada          bool
}

type straightRailingCalculator struct {
	deps
}

func (c *straightRailingCalculator) Calculate(ctx context.Context, params types.QuoteParams) (types.BillOfMaterials, error) {
	assumptions := []string{marketPriceAssumption}
	if bom, ok := c.tryCutList(ctx, params, assumptions, nil); ok {
		return bom, nil
	}

	in := railingInputsFrom(params)
	bom := c.railingBOM(params.JobType, in, assumptions)
	return finalize(bom), nil
}

func railingInputsFrom(params types.QuoteParams) railingInputs {
	f := params.Fields
	return railingInputs{
		linearFt:     parseFeet(f["linear_feet"], 20.0),
		heightIn:     parseInches(f["height"], 42.0),
		postSpacing:  parseFeet(f["post_spacing"], defaultPostSpacingFt),
		transitions:  parseInt(f["transitions"], 0),
		infill:       f["infill_type"],
		spacingIn:    parseInches(f["picket_spacing"], defaultPicketSpacing),
		topRailStyle: f["top_rail_style"],
		material:     f["material"],
		mounting:     f["mounting_surface"],
		ada:          boolAnswer(f["ada_required"]),
	}
}

// railingBOM is the core post/rail/infill arithmetic shared by the straight,
// stair and balcony calculators.
func (d deps) railingBOM(jobType types.JobType, in railingInputs, assumptions []string) types.BillOfMaterials {
	var items []types.MaterialItem
	var hardware []types.HardwareItem
	var totalWeight, totalWeldIn float64

	linearIn := feetToInches(in.linearFt)

	// Posts. Core-drilled masonry posts carry a 5" embed; everything else
	// lands on a welded base flange.
	postCount := int(math.Floor(in.linearFt/in.postSpacing)) + 1 + in.transitions
	postLengthIn := in.heightIn
	needsFlanges := true
	if strings.Contains(strings.ToLower(in.mounting), "masonry") {
		postLengthIn += 5
		needsFlanges = false
	}
	postPriceFt, _ := d.pricePerFoot(railingPostProfile)
	postTotalFt := inchesToFeet(postLengthIn) * float64(postCount)

	items = append(items, d.item(
		fmt.Sprintf("Posts, 1-1/2\" sq tube 11ga x %d (%.1f ft each)", postCount, inchesToFeet(postLengthIn)),
		"square_tubing", railingPostProfile, postLengthIn,
		applyWaste(postCount, wasteTube),
		inchesToFeet(postLengthIn)*postPriceFt,
		types.CutSquare, wasteTube,
	))
	totalWeight += weightLbs(railingPostProfile, postTotalFt)
	totalWeldIn += weldInches(postCount*2, 3.0)

	if needsFlanges {
		hardware = append(hardware, d.hardwareItem(
			fmt.Sprintf("Post base flange, %s", in.mounting), "surface_mount_flange", postCount))
	}

	// Top and bottom rails. ADA jobs get a graspable round rail regardless
	// of the styled answer.
	railStyle := in.topRailStyle
	if in.ada {
		railStyle = "Round pipe"
		assumptions = append(assumptions, "ADA graspable handrail required: 1-1/2\" round top rail used.")
	}
	rail, ok := topRailProfiles[railStyle]
	if !ok {
		rail = topRailProfiles["Square tube"]
	}
	railPriceFt, _ := d.pricePerFoot(rail.profile)
	railTotalIn := linearIn + float64(in.transitions)*transitionMiterExtraIn
	railTotalFt := inchesToFeet(railTotalIn)
	railCut := types.CutSquare
	if in.transitions > 0 {
		railCut = types.CutMiter45
	}

	for _, name := range []string{"Top rail", "Bottom rail"} {
		pieces := stockPieces(railTotalFt)
		items = append(items, d.item(
			fmt.Sprintf("%s (%.1f ft)", name, railTotalFt),
			rail.materialType, rail.profile, railTotalIn,
			pieces,
			railTotalFt*railPriceFt/float64(pieces),
			railCut, wasteTube,
		))
		totalWeight += weightLbs(rail.profile, railTotalFt)
	}

	// Infill.
	switch {
	case strings.Contains(in.infill, "cable"), strings.Contains(in.infill, "Cable"):
		cableCount := int(math.Ceil((in.heightIn-4)/cableSpacingIn)) + 1
		sections := postCount - 1
		if sections < 1 {
			sections = 1
		}
		totalCableFt := float64(cableCount) * in.linearFt
		assumptions = append(assumptions, fmt.Sprintf(
			"Cable infill: %d cables at 3\" spacing, %.0f total linear feet.", cableCount, totalCableFt))

		tensioners := cableCount * sections
		hardware = append(hardware,
			d.hardwareItem(fmt.Sprintf("Cable tensioner, %d total (%d cables x %d sections)", tensioners, cableCount, sections),
				"cable_tensioner", tensioners),
			d.hardwareItem(fmt.Sprintf("Cable end fitting x %d", cableCount*2),
				"cable_end_fitting", cableCount*2),
		)

	case strings.Contains(in.infill, "Glass"):
		sections := postCount - 1
		if sections < 1 {
			sections = 1
		}
		panelW := linearIn/float64(sections) - 2
		assumptions = append(assumptions, fmt.Sprintf(
			"Glass panels: %d panels approx. %.0f\" x %.0f\". Glass sourced separately, not included in this quote.",
			sections, panelW, in.heightIn-6))

	case strings.Contains(in.infill, "picket"), strings.Contains(in.infill, "Picket"):
		picketCount := int(math.Ceil(linearIn/in.spacingIn)) + 1
		picketLenIn := in.heightIn - 4
		picketTotalFt := inchesToFeet(picketLenIn) * float64(picketCount)
		picketPriceFt, _ := d.pricePerFoot(railingPicketProfile)

		items = append(items, d.item(
			fmt.Sprintf("Balusters at %.0f\" OC x %d", in.spacingIn, picketCount),
			"square_tubing", railingPicketProfile, picketLenIn,
			applyWaste(picketCount, wasteTube),
			inchesToFeet(picketLenIn)*picketPriceFt,
			types.CutSquare, wasteTube,
		))
		totalWeight += weightLbs(railingPicketProfile, picketTotalFt)
		totalWeldIn += weldInches(picketCount*2, 1.5)

	case strings.Contains(in.infill, "scroll"), strings.Contains(in.infill, "Scroll"):
		// Decorative scrollwork is quoted as flat bar stock; shaping shows
		// up in labor, not material.
		scrollFt := in.linearFt * 3
		scrollPriceFt, _ := d.pricePerFoot("flat_bar_1x0.25")
		items = append(items, d.item(
			fmt.Sprintf("Scrollwork flat bar stock (%.0f ft)", scrollFt),
			"flat_bar", "flat_bar_1x0.25", feetToInches(scrollFt),
			applyWaste(stockPieces(scrollFt), wasteFlat),
			stockLengthFt*scrollPriceFt,
			types.CutSquare, wasteFlat,
		))
		totalWeight += weightLbs("flat_bar_1x0.25", scrollFt)
		totalWeldIn += weldInches(int(in.linearFt)*2, 1.5)
		assumptions = append(assumptions, "Decorative scrollwork estimated at 3 ft of bar per railing foot; forming time carried in labor.")
	}

	if in.transitions > 0 {
		assumptions = append(assumptions, fmt.Sprintf("%d transitions/corners: miter joints add waste and labor.", in.transitions))
	}

	return types.BillOfMaterials{
		JobType:          jobType,
		Items:            items,
		Hardware:         hardware,
		TotalWeightLbs:   totalWeight,
		TotalSqFt:        in.linearFt * inchesToFeet(in.heightIn),
		WeldLinearInches: totalWeldIn,
		WeldProcess:      weldProcessFor(in.material),
		Assumptions:      assumptions,
	}
}

type stairRailingCalculator struct {
	deps
}

func (c *stairRailingCalculator) Calculate(ctx context.Context, params types.QuoteParams) (types.BillOfMaterials, error) {
	assumptions := []string{marketPriceAssumption}
	if bom, ok := c.tryCutList(ctx, params, assumptions, nil); ok {
		return bom, nil
	}

	f := params.Fields
	rise := parseInches(f["stair_rise"], 0)
	run := parseInches(f["stair_run"], 0)

	var angleDeg float64
	switch {
	case rise > 0 && run > 0:
		angleDeg = math.Atan(rise/run) * 180 / math.Pi
		assumptions = append(assumptions, fmt.Sprintf(
			"Stair angle calculated from rise/run: %.0f\" / %.0f\" = %.1f degrees.", rise, run, angleDeg))
	case f["stair_angle"] != "":
		angleDeg = parseNumber(f["stair_angle"], 36.0)
	default:
		angleDeg = 36.0
		assumptions = append(assumptions, "Stair angle defaulted to 36 degrees; rise/run not provided.")
	}

	railFt := parseFeet(f["linear_feet"], 12.0)
	if f["landing"] == "Yes" {
		railFt += parseFeet(f["landing_length"], 1.0)
	}

	sides := 1
	if strings.Contains(f["side"], "Both") {
		sides = 2
		assumptions = append(assumptions, "Railing on both sides: all quantities doubled.")
	}

	in := railingInputs{
		linearFt:     railFt * float64(sides),
		heightIn:     parseInches(f["height"], 36.0),
		postSpacing:  4.0, // Tighter than flat railing: posts ride the rake
		transitions:  0,
		infill:       f["infill_type"],
		spacingIn:    parseInches(f["picket_spacing"], defaultPicketSpacing),
		topRailStyle: "Round pipe",
		material:     f["material"],
		mounting:     f["mounting_surface"],
		ada:          boolAnswer(f["ada_required"]),
	}

	assumptions = append(assumptions,
		"Stair rake angle adds fabrication complexity vs. flat railing: all rail and baluster cuts are angled.")
	if boolAnswer(f["wall_returns"]) {
		assumptions = append(assumptions, "Handrail ends return to the wall per code.")
	}

	bom := c.railingBOM(params.JobType, in, assumptions)

	if boolAnswer(f["continuous_handrail"]) {
		bracketCount := int(math.Ceil(in.linearFt/4.0)) + 1
		bom.Hardware = append(bom.Hardware, c.hardwareItem(
			fmt.Sprintf("Wall handrail bracket x %d", bracketCount), "wall_rail_bracket", bracketCount))
	}

	return finalize(bom), nil
}

type balconyRailingCalculator struct {
	deps
}

func (c *balconyRailingCalculator) Calculate(ctx context.Context, params types.QuoteParams) (types.BillOfMaterials, error) {
	assumptions := []string{marketPriceAssumption}
	if bom, ok := c.tryCutList(ctx, params, assumptions, nil); ok {
		return bom, nil
	}

	f := params.Fields
	in := railingInputs{
		linearFt:     parseFeet(f["linear_feet"], 10.0),
		postSpacing:  4.0,
		heightIn:     parseInches(f["height"], 42.0),
		infill:       f["infill_type"],
		spacingIn:    parseInches(f["picket_spacing"], defaultPicketSpacing),
		topRailStyle: "Square tube",
		material:     f["material"],
		mounting:     f["mounting"],
	}

	if strings.Contains(f["mounting"], "Fascia") {
		assumptions = append(assumptions, "Fascia mount: posts side-mounted with bracket plates into the slab edge.")
	}
	if boolAnswer(f["juliet"]) {
		assumptions = append(assumptions, "Juliet balcony: single panel across the door opening, no deck loading.")
	}
	if floor := parseInt(f["floor_level"], 1); floor > 1 {
		assumptions = append(assumptions, fmt.Sprintf("Install on floor %d: lift or scaffold access carried in labor.", floor))
	}

	bom := c.railingBOM(params.JobType, in, assumptions)
	return finalize(bom), nil
}
