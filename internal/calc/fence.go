package calc

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/fabforge/fabquote/internal/catalog"
	"github.com/fabforge/fabquote/internal/types"
)

const (
	fencePostProfile  = "sq_tube_2x2_11ga"
	fenceRailProfile  = "sq_tube_1.5x1.5_14ga"
	fencePostEmbedIn  = 36.0
	defaultPanelFt    = 7.0
	grateFrameProfile = "flat_bar_1.5x0.25"
	grateBarProfile   = "sq_bar_0.5"
)

type ornamentalFenceCalculator struct {
	deps
}

func (c *ornamentalFenceCalculator) Calculate(ctx context.Context, params types.QuoteParams) (types.BillOfMaterials, error) {
	assumptions := []string{marketPriceAssumption}
	if bom, ok := c.tryCutList(ctx, params, assumptions, nil); ok {
		return bom, nil
	}

	f := params.Fields
	var items []types.MaterialItem
	var hardware []types.HardwareItem
	var totalWeight, totalWeldIn float64

	linearFt := parseFeet(f["linear_feet"], 50.0)
	heightFt := parseFeet(f["height"], 5.0)
	heightIn := feetToInches(heightFt)
	linearIn := feetToInches(linearFt)
	panelFt := parseFeet(f["panel_length"], defaultPanelFt)
	spacingIn := parseInches(f["picket_spacing"], defaultPicketSpacing)

	// Posts on panel spacing, embedded below frost.
	postCount := int(math.Floor(linearFt/panelFt)) + 1
	postLenIn := heightIn + fencePostEmbedIn
	postPriceFt, _ := c.pricePerFoot(fencePostProfile)

	items = append(items, c.item(
		fmt.Sprintf("Posts, 2\" sq tube x %d (%.1f ft each, %.0f\" embed)", postCount, inchesToFeet(postLenIn), fencePostEmbedIn),
		"square_tubing", fencePostProfile, postLenIn,
		applyWaste(postCount, wasteTube),
		inchesToFeet(postLenIn)*postPriceFt,
		types.CutSquare, wasteTube,
	))
	totalWeight += weightLbs(fencePostProfile, inchesToFeet(postLenIn)*float64(postCount))
	totalWeldIn += weldInches(postCount*2, 3.0)
	items = append(items, c.postConcrete(postCount, fencePostEmbedIn, &assumptions))

	// Top and bottom rails run the full length.
	railPriceFt, _ := c.pricePerFoot(fenceRailProfile)
	for _, name := range []string{"Top rail", "Bottom rail"} {
		pieces := stockPieces(linearFt)
		items = append(items, c.item(
			fmt.Sprintf("%s (%.0f ft)", name, linearFt),
			"square_tubing", fenceRailProfile, linearIn,
			pieces,
			linearFt*railPriceFt/float64(pieces),
			types.CutSquare, wasteTube,
		))
		totalWeight += weightLbs(fenceRailProfile, linearFt)
	}

	// Pickets. Spear tops get 3" of extra length above the top rail.
	picketLenIn := heightIn - 2
	if strings.Contains(f["picket_style"], "Spear") {
		picketLenIn = heightIn + 3
		assumptions = append(assumptions, "Spear top pickets extend 3\" above the top rail.")
	}
	picketCount := int(math.Ceil(linearIn/spacingIn)) + 1
	picketPriceFt, _ := c.pricePerFoot(picketProfile)

	items = append(items, c.item(
		fmt.Sprintf("Pickets at %.0f\" OC x %d", spacingIn, picketCount),
		"square_tubing", picketProfile, picketLenIn,
		applyWaste(picketCount, wasteTube),
		inchesToFeet(picketLenIn)*picketPriceFt,
		types.CutSquare, wasteTube,
	))
	totalWeight += weightLbs(picketProfile, inchesToFeet(picketLenIn)*float64(picketCount))
	totalWeldIn += weldInches(picketCount*2, 1.5)

	if strings.Contains(f["picket_style"], "rings") || strings.Contains(f["picket_style"], "decorative") {
		assumptions = append(assumptions, "Decorative picket elements quoted as stock castings; forming carried in labor.")
	}

	// Walk/drive gates in the run are separate weldments.
	switch {
	case strings.Contains(f["gates_needed"], "drive gate"):
		hardware = append(hardware,
			c.hardwareItem("Walk gate hinges", "standard_weld_hinge_pair", 1),
			c.hardwareItem("Walk gate latch", "gravity_latch", 1),
			c.hardwareItem("Drive gate hinges", "heavy_duty_weld_hinge_pair", 1),
			c.hardwareItem("Drive gate latch", "gravity_latch", 1))
		assumptions = append(assumptions, "Walk and drive gate frames estimated within the fence footage; gate hardware itemized separately.")
	case strings.Contains(f["gates_needed"], "walk gate"):
		hardware = append(hardware,
			c.hardwareItem("Walk gate hinges", "standard_weld_hinge_pair", 1),
			c.hardwareItem("Walk gate latch", "gravity_latch", 1))
	}

	if strings.Contains(f["terrain"], "slope") {
		assumptions = append(assumptions, "Sloped grade: panels raked or stepped to follow terrain, extra fit-up carried in labor.")
	}

	return finalize(types.BillOfMaterials{
		JobType:          params.JobType,
		Items:            items,
		Hardware:         hardware,
		TotalWeightLbs:   totalWeight,
		TotalSqFt:        linearFt * heightFt,
		WeldLinearInches: totalWeldIn,
		WeldProcess:      weldProcessFor(f["material"]),
		Assumptions:      assumptions,
	}), nil
}

type windowGrateCalculator struct {
	deps
}

func (c *windowGrateCalculator) Calculate(ctx context.Context, params types.QuoteParams) (types.BillOfMaterials, error) {
	assumptions := []string{marketPriceAssumption}
	if bom, ok := c.tryCutList(ctx, params, assumptions, nil); ok {
		return bom, nil
	}

	f := params.Fields
	var items []types.MaterialItem
	var hardware []types.HardwareItem
	var totalWeight, totalWeldIn float64

	widthIn := parseInches(f["width"], 36.0)
	heightIn := parseInches(f["height"], 48.0)
	quantity := parseInt(f["quantity"], 1)
	if quantity < 1 {
		quantity = 1
	}

	// Frame: flat bar perimeter per window.
	framePerimIn := perimeterInches(widthIn, heightIn)
	framePriceFt, _ := c.pricePerFoot(grateFrameProfile)

	items = append(items, c.item(
		fmt.Sprintf("Grate frames, 1-1/2\"x1/4\" flat bar x %d (%.0f\" x %.0f\")", quantity, widthIn, heightIn),
		"flat_bar", grateFrameProfile, framePerimIn,
		applyWaste(quantity, wasteFlat),
		inchesToFeet(framePerimIn)*framePriceFt,
		types.CutMiter45, wasteFlat,
	))
	totalWeight += weightLbs(grateFrameProfile, inchesToFeet(framePerimIn)*float64(quantity))
	totalWeldIn += weldInches(quantity*4, 1.5)

	if strings.Contains(f["bar_style"], "Expanded") {
		sqft := catalog.SqFtFromDimensions(widthIn, heightIn) * float64(quantity)
		sheets := applyWaste(int(math.Ceil(sqft/sheetSqFt)), wasteSheet)
		items = append(items, c.item(
			"Expanded metal mesh infill, 13ga",
			"plate", "expanded_metal_13ga", widthIn,
			sheets,
			sheetSqFt*c.prices.PricePerSquareFoot("expanded_metal_13ga"),
			types.CutSquare, wasteSheet,
		))
		totalWeight += catalog.WeightFromDimensions(widthIn, heightIn, 0.075, "mild_steel") * float64(quantity)
		totalWeldIn += perimeterInches(widthIn, heightIn) * 0.4 * float64(quantity)
	} else {
		// Vertical bars at 4" OC, security maximum.
		barCount := (int(math.Ceil(widthIn/4.0)) + 1) * quantity
		barPriceFt, _ := c.pricePerFoot(grateBarProfile)
		items = append(items, c.item(
			fmt.Sprintf("Vertical bars at 4\" OC x %d", barCount),
			"square_tubing", grateBarProfile, heightIn-2,
			applyWaste(barCount, wasteTube),
			inchesToFeet(heightIn-2)*barPriceFt,
			types.CutSquare, wasteTube,
		))
		totalWeight += weightLbs(grateBarProfile, inchesToFeet(heightIn-2)*float64(barCount))
		totalWeldIn += weldInches(barCount*2, 1.0)

		if strings.Contains(f["bar_style"], "horizontal") {
			bandCount := 2 * quantity
			bandPriceFt, _ := c.pricePerFoot("flat_bar_1x0.25")
			items = append(items, c.item(
				fmt.Sprintf("Horizontal bands x %d", bandCount),
				"flat_bar", "flat_bar_1x0.25", widthIn,
				applyWaste(bandCount, wasteFlat),
				inchesToFeet(widthIn)*bandPriceFt,
				types.CutSquare, wasteFlat,
			))
			totalWeight += weightLbs("flat_bar_1x0.25", inchesToFeet(widthIn)*float64(bandCount))
		}
		if strings.Contains(f["bar_style"], "scroll") {
			assumptions = append(assumptions, "Decorative scroll pattern: forming time carried in labor.")
		}
	}

	// Egress grates hinge open with an interior quick release.
	if strings.Contains(f["egress"], "Yes") {
		hardware = append(hardware,
			c.hardwareItem("Egress hinges (pair per grate)", "standard_weld_hinge_pair", quantity),
			c.hardwareItem("Interior quick-release latch", "egress_quick_release", quantity))
		assumptions = append(assumptions, "Fire egress: hinged grates with interior quick release, no key or tool required per code.")
	}

	// Mounting anchors: 6 per grate.
	hardware = append(hardware, c.hardwareItem(
		fmt.Sprintf("Mounting anchors, %s", orDefault(f["mounting"], "Into brick/masonry")),
		"masonry_anchor_bolt", quantity*6))

	assumptions = append(assumptions, fmt.Sprintf("%d grates at %.0f\" x %.0f\".", quantity, widthIn, heightIn))

	return finalize(types.BillOfMaterials{
		JobType:          params.JobType,
		Items:            items,
		Hardware:         hardware,
		TotalWeightLbs:   totalWeight,
		TotalSqFt:        catalog.SqFtFromDimensions(widthIn, heightIn) * float64(quantity),
		WeldLinearInches: totalWeldIn,
		WeldProcess:      types.WeldMIG,
		Assumptions:      assumptions,
	}), nil
}
