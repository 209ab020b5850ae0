package calc

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/fabforge/fabquote/internal/catalog"
	"github.com/fabforge/fabquote/internal/types"
)

// Frame profile by tube size answer.
var gateFrameProfiles = map[string]string{
	"1.5x1.5 square tube":   "sq_tube_1.5x1.5_11ga",
	"2x2 square tube":       "sq_tube_2x2_11ga",
	"2.5x2.5 square tube":   "sq_tube_2.5x2.5_11ga",
	"3x3 square tube":       "sq_tube_3x3_11ga",
}

const (
	gatePostProfile   = "sq_tube_4x4_11ga"
	gateGuideProfile  = "angle_2x2x0.25"
	picketProfile     = "sq_bar_0.75"
	postEmbedIn       = 42.0 // Frost-line embed depth
	postHoleDiameterIn = 12.0

	// Counterbalance tail, 55% of the clear width (middle of the 50-60%
	// rule). Underquoting the tail is the classic cantilever gate mistake.
	tailRatio = 0.55
)

type cantileverGateCalculator struct {
	deps
}

func (c *cantileverGateCalculator) Calculate(ctx context.Context, params types.QuoteParams) (types.BillOfMaterials, error) {
	assumptions := []string{marketPriceAssumption}
	if bom, ok := c.tryCutList(ctx, params, assumptions, nil); ok {
		return bom, nil
	}

	f := params.Fields
	var items []types.MaterialItem
	var hardware []types.HardwareItem
	var totalWeight, totalWeldIn float64

	clearWidthFt := parseFeet(f["clear_width"], 10.0)
	heightFt := parseFeet(f["height"], 6.0)
	clearWidthIn := feetToInches(clearWidthFt)
	heightIn := feetToInches(heightFt)

	frameProfile := gateFrameProfile(f["frame_profile"])
	framePriceFt, _ := c.pricePerFoot(frameProfile)

	tailIn := clearWidthIn * tailRatio
	totalGateIn := clearWidthIn + tailIn

	// Gate frame: face plus tail as one continuous perimeter, with a
	// divider vertical where the face meets the tail.
	frameTotalIn := 2*totalGateIn + 3*heightIn
	frameTotalFt := inchesToFeet(frameTotalIn)
	framePieces := applyWaste(stockPieces(frameTotalFt), wasteTube)

	items = append(items, c.item(
		fmt.Sprintf("Gate frame, %s (face + counterbalance tail)", f["frame_profile"]),
		"square_tubing", frameProfile, frameTotalIn,
		framePieces,
		frameTotalFt*framePriceFt/float64(framePieces),
		types.CutMiter45, wasteTube,
	))
	totalWeight += weightLbs(frameProfile, frameTotalFt)
	totalWeldIn += 6 * heightIn * 0.25 // Both sides of each frame vertical

	// Mid-rail stiffeners.
	midRails := 1
	if heightIn > 72 {
		midRails = 2
	}
	midRailIn := totalGateIn * float64(midRails)
	midRailFt := inchesToFeet(midRailIn)
	items = append(items, c.item(
		fmt.Sprintf("Mid-rail stiffeners x %d", midRails),
		"square_tubing", frameProfile, midRailIn,
		stockPieces(midRailFt),
		midRailFt*framePriceFt/float64(stockPieces(midRailFt)),
		types.CutSquare, wasteTube,
	))
	totalWeight += weightLbs(frameProfile, midRailFt)
	totalWeldIn += weldInches(midRails*4, 3.0)

	// Infill covers the face only, never the tail.
	w, weld := c.gateInfill(&items, f, clearWidthIn, heightIn)
	totalWeight += w
	totalWeldIn += weld

	// Posts: 3 posts standard for a cantilever (2 carriage posts + 1 catch).
	postCount := 3
	embedIn := 0.0
	if strings.Contains(f["mounting"], "New posts") {
		embedIn = postEmbedIn
	}
	postLengthIn := heightIn + 2 + embedIn
	postPriceFt, _ := c.pricePerFoot(gatePostProfile)
	postTotalFt := inchesToFeet(postLengthIn) * float64(postCount)

	items = append(items, c.item(
		fmt.Sprintf("Posts, 4\" sq tube x %d (%.1f ft each)", postCount, inchesToFeet(postLengthIn)),
		"square_tubing", gatePostProfile, postLengthIn,
		postCount,
		inchesToFeet(postLengthIn)*postPriceFt,
		types.CutSquare, 0,
	))
	totalWeight += weightLbs(gatePostProfile, postTotalFt)
	totalWeldIn += weldInches(postCount*2, 4.0)

	if embedIn > 0 {
		items = append(items, c.postConcrete(postCount, embedIn, &assumptions))
	}

	// Bottom guide rail runs the gate length plus approach.
	guideIn := totalGateIn + 24
	guideFt := inchesToFeet(guideIn)
	guidePriceFt, _ := c.pricePerFoot(gateGuideProfile)
	items = append(items, c.item(
		fmt.Sprintf("Bottom guide rail, 2\"x2\"x1/4\" angle (%.1f ft)", guideFt),
		"angle_iron", gateGuideProfile, guideIn,
		stockPieces(guideFt),
		guideFt*guidePriceFt,
		types.CutSquare, wasteTube,
	))
	totalWeight += weightLbs(gateGuideProfile, guideFt)

	// Roller carriages on the two rear posts.
	carriageKey := "roller_carriage_standard"
	carriageLabel := "standard"
	if clearWidthFt >= 16 || strings.Contains(f["infill_style"], "Solid") {
		carriageKey = "roller_carriage_heavy"
		carriageLabel = "heavy duty"
		assumptions = append(assumptions, "Heavy duty roller carriages: wide opening or solid infill drives gate weight up.")
	}
	hardware = append(hardware,
		c.hardwareItem(fmt.Sprintf("Roller carriage, %s", carriageLabel), carriageKey, 2),
		c.hardwareItem("Gate stop/bumper", "gate_stop", 2),
	)

	if strings.HasPrefix(f["has_motor"], "Yes") {
		hardware = append(hardware, c.hardwareItem(
			fmt.Sprintf("Gate operator, %s", orDefault(f["motor_brand"], "LiftMaster LA412")),
			motorKey(f["motor_brand"]), 1))
		if boolAnswer(f["safety_loops"]) {
			assumptions = append(assumptions, "Vehicle detection loops: saw-cut loop install carried in site labor, loop wire by operator vendor.")
		}
	} else {
		assumptions = append(assumptions, "No gate operator included; manual operation.")
	}

	if key := latchKey(f["latch_type"]); key != "" {
		hardware = append(hardware, c.hardwareItem(
			fmt.Sprintf("Gate latch, %s", f["latch_type"]), key, 1))
	}

	assumptions = append(assumptions,
		fmt.Sprintf("Counterbalance tail: %.1f ft (%.0f%% of %.0f ft opening).", inchesToFeet(tailIn), tailRatio*100, clearWidthFt),
		fmt.Sprintf("Gate total length: %.1f ft (face + tail).", inchesToFeet(totalGateIn)))

	// Both sides of face and tail count toward finishing area.
	sqft := catalog.SqFtFromDimensions(clearWidthIn, heightIn)*2 + catalog.SqFtFromDimensions(tailIn, heightIn)*2

	return finalize(types.BillOfMaterials{
		JobType:          params.JobType,
		Items:            items,
		Hardware:         hardware,
		TotalWeightLbs:   totalWeight,
		TotalSqFt:        sqft,
		WeldLinearInches: totalWeldIn,
		WeldProcess:      weldProcessFor(f["frame_material"]),
		Assumptions:      assumptions,
	}), nil
}

type swingGateCalculator struct {
	deps
}

func (c *swingGateCalculator) Calculate(ctx context.Context, params types.QuoteParams) (types.BillOfMaterials, error) {
	assumptions := []string{marketPriceAssumption}
	if bom, ok := c.tryCutList(ctx, params, assumptions, nil); ok {
		return bom, nil
	}

	f := params.Fields
	var items []types.MaterialItem
	var hardware []types.HardwareItem
	var totalWeight, totalWeldIn float64

	clearWidthFt := parseFeet(f["clear_width"], 12.0)
	heightFt := parseFeet(f["height"], 6.0)
	heightIn := feetToInches(heightFt)

	leaves := 1
	if strings.Contains(f["panel_config"], "Double") {
		leaves = 2
	}
	leafWidthIn := feetToInches(clearWidthFt) / float64(leaves)

	frameProfile := gateFrameProfile(f["frame_profile"])
	framePriceFt, _ := c.pricePerFoot(frameProfile)

	// Per-leaf frame: perimeter plus one mid rail.
	frameInPerLeaf := perimeterInches(leafWidthIn, heightIn) + leafWidthIn
	frameTotalIn := frameInPerLeaf * float64(leaves)
	frameTotalFt := inchesToFeet(frameTotalIn)
	framePieces := applyWaste(stockPieces(frameTotalFt), wasteTube)

	items = append(items, c.item(
		fmt.Sprintf("Gate frame, %s x %d leaf", orDefault(f["frame_profile"], "2x2 square tube"), leaves),
		"square_tubing", frameProfile, frameTotalIn,
		framePieces,
		frameTotalFt*framePriceFt/float64(framePieces),
		types.CutMiter45, wasteTube,
	))
	totalWeight += weightLbs(frameProfile, frameTotalFt)
	totalWeldIn += float64(leaves) * (4*heightIn*0.25 + weldInches(4, 3.0))

	for leaf := 0; leaf < leaves; leaf++ {
		w, weld := c.gateInfill(&items, f, leafWidthIn, heightIn)
		totalWeight += w
		totalWeldIn += weld
	}

	// Posts: one hinge post per leaf plus a latch post for singles.
	postCount := leaves + 1
	if leaves == 2 {
		postCount = 2 // Double gates latch leaf-to-leaf at the center
	}
	embedIn := 0.0
	if strings.Contains(f["mounting"], "New posts") {
		embedIn = postEmbedIn
	}
	postLengthIn := heightIn + 2 + embedIn
	postPriceFt, _ := c.pricePerFoot(gatePostProfile)

	items = append(items, c.item(
		fmt.Sprintf("Posts, 4\" sq tube x %d (%.1f ft each)", postCount, inchesToFeet(postLengthIn)),
		"square_tubing", gatePostProfile, postLengthIn,
		postCount,
		inchesToFeet(postLengthIn)*postPriceFt,
		types.CutSquare, 0,
	))
	totalWeight += weightLbs(gatePostProfile, inchesToFeet(postLengthIn)*float64(postCount))
	totalWeldIn += weldInches(postCount*2, 4.0)

	if embedIn > 0 {
		items = append(items, c.postConcrete(postCount, embedIn, &assumptions))
	}

	// Hinges: one pair per leaf, upgraded for wide or heavy leaves.
	hingeKey := hingeKeyFor(f["hinge_type"])
	if inchesToFeet(leafWidthIn) > 6 && hingeKey == "standard_weld_hinge_pair" {
		hingeKey = "heavy_duty_weld_hinge_pair"
		assumptions = append(assumptions, "Leaf width over 6 ft: heavy duty hinges substituted.")
	}
	hardware = append(hardware, c.hardwareItem(
		fmt.Sprintf("Hinges, %s (pair per leaf)", orDefault(f["hinge_type"], "Heavy duty weld-on")),
		hingeKey, leaves))

	if key := latchKey(f["latch_type"]); key != "" {
		hardware = append(hardware, c.hardwareItem(
			fmt.Sprintf("Gate latch, %s", f["latch_type"]), key, 1))
	}

	if leaves == 2 {
		if key := centerStopKey(f["center_stop"]); key != "" {
			hardware = append(hardware, c.hardwareItem(
				fmt.Sprintf("Center hardware, %s", f["center_stop"]), key, 1))
		}
	}

	if boolAnswer(f["self_closing"]) {
		hardware = append(hardware, c.hardwareItem("Hydraulic gate closer", "hydraulic_closer", leaves))
		assumptions = append(assumptions, "Self-closing required: hydraulic closer per leaf, verify pool code swing direction on site.")
	}

	if strings.HasPrefix(f["has_motor"], "Yes") {
		hardware = append(hardware, c.hardwareItem(
			fmt.Sprintf("Gate operator, %s", orDefault(f["motor_brand"], "LiftMaster LA412")),
			motorKey(f["motor_brand"]), leaves))
	}

	assumptions = append(assumptions, fmt.Sprintf("%d leaf swing gate, %.1f ft per leaf.", leaves, inchesToFeet(leafWidthIn)))

	sqft := catalog.SqFtFromDimensions(leafWidthIn, heightIn) * 2 * float64(leaves)

	return finalize(types.BillOfMaterials{
		JobType:          params.JobType,
		Items:            items,
		Hardware:         hardware,
		TotalWeightLbs:   totalWeight,
		TotalSqFt:        sqft,
		WeldLinearInches: totalWeldIn,
		WeldProcess:      weldProcessFor(f["frame_material"]),
		Assumptions:      assumptions,
	}), nil
}

// gateInfill appends the infill line for one gate face and returns the added
// weight and weld inches.
func (d deps) gateInfill(items *[]types.MaterialItem, f types.AnsweredFields, faceWidthIn, faceHeightIn float64) (float64, float64) {
	style := f["infill_style"]
	spacingIn := parseInches(f["picket_spacing"], defaultPicketSpacing)

	switch {
	case strings.Contains(style, "Expanded"):
		sqft := catalog.SqFtFromDimensions(faceWidthIn, faceHeightIn)
		sheets := applyWaste(int(math.Ceil(sqft/sheetSqFt)), wasteSheet)
		*items = append(*items, d.item(
			"Expanded metal infill, 13ga",
			"plate", "expanded_metal_13ga", faceWidthIn,
			sheets,
			sheetSqFt*d.prices.PricePerSquareFoot("expanded_metal_13ga"),
			types.CutSquare, wasteSheet,
		))
		return catalog.WeightFromDimensions(faceWidthIn, faceHeightIn, 0.075, "mild_steel"),
			perimeterInches(faceWidthIn, faceHeightIn) * 0.5

	case strings.Contains(style, "Solid"):
		sqft := catalog.SqFtFromDimensions(faceWidthIn, faceHeightIn)
		sheets := applyWaste(int(math.Ceil(sqft/sheetSqFt)), wasteSheet)
		*items = append(*items, d.item(
			"Solid sheet panel infill, 14ga",
			"plate", "sheet_14ga", faceWidthIn,
			sheets,
			sheetSqFt*d.prices.PricePerSquareFoot("sheet_14ga"),
			types.CutSquare, wasteSheet,
		))
		return catalog.WeightFromDimensions(faceWidthIn, faceHeightIn, 0.075, "mild_steel"),
			perimeterInches(faceWidthIn, faceHeightIn) * 0.5

	case strings.Contains(style, "Horizontal"):
		barCount := int(math.Ceil(faceHeightIn/spacingIn)) + 1
		barPriceFt, _ := d.pricePerFoot(picketProfile)
		*items = append(*items, d.item(
			fmt.Sprintf("Horizontal slat infill at %.0f\" OC x %d", spacingIn, barCount),
			"square_tubing", picketProfile, faceWidthIn,
			applyWaste(barCount, wasteTube),
			inchesToFeet(faceWidthIn)*barPriceFt,
			types.CutSquare, wasteTube,
		))
		return weightLbs(picketProfile, inchesToFeet(faceWidthIn)*float64(barCount)),
			weldInches(barCount*2, 2.0)

	case strings.Contains(style, "picket"), strings.Contains(style, "Picket"), strings.Contains(style, "Vertical"):
		picketCount := int(math.Ceil(faceWidthIn/spacingIn)) + 1
		picketLenIn := faceHeightIn - 2
		picketPriceFt, _ := d.pricePerFoot(picketProfile)
		*items = append(*items, d.item(
			fmt.Sprintf("Picket infill at %.0f\" OC x %d", spacingIn, picketCount),
			"square_tubing", picketProfile, picketLenIn,
			applyWaste(picketCount, wasteTube),
			inchesToFeet(picketLenIn)*picketPriceFt,
			types.CutSquare, wasteTube,
		))
		return weightLbs(picketProfile, inchesToFeet(picketLenIn)*float64(picketCount)),
			weldInches(picketCount*2, 1.5)
	}
	return 0, 0
}

// postConcrete builds the concrete line for embedded posts
func (d deps) postConcrete(postCount int, embedIn float64, assumptions *[]string) types.MaterialItem {
	holeCuIn := math.Pi * math.Pow(postHoleDiameterIn/2, 2) * embedIn
	totalCuYd := holeCuIn * float64(postCount) / 46656.0
	concretePrice := d.prices.UnitPrice("concrete_per_cuyd")

	*assumptions = append(*assumptions, fmt.Sprintf(
		"Post concrete: %.2f cu yd based on %d holes x 12\" diameter x %.0f\" deep.",
		totalCuYd, postCount, embedIn))

	return d.item(
		fmt.Sprintf("Post concrete, %d holes x 12\" dia x %.0f\" deep (%.2f cu yd)", postCount, embedIn, totalCuYd),
		"concrete", "concrete_footing", embedIn,
		postCount,
		totalCuYd*concretePrice/float64(postCount),
		types.CutSquare, 0,
	)
}

func gateFrameProfile(answer string) string {
	if p, ok := gateFrameProfiles[answer]; ok {
		return p
	}
	return "sq_tube_2x2_11ga"
}

func motorKey(brand string) string {
	b := strings.ToLower(brand)
	switch {
	case strings.Contains(b, "csw24u"):
		return "liftmaster_csw24u"
	case strings.Contains(b, "rsw12u"):
		return "liftmaster_rsw12u"
	case strings.Contains(b, "patriot"), strings.Contains(b, "us automatic"):
		return "us_automatic_patriot"
	default:
		return "liftmaster_la412"
	}
}

func latchKey(latch string) string {
	l := strings.ToLower(latch)
	switch {
	case l == "", strings.Contains(l, "none"), strings.Contains(l, "operator holds"):
		return ""
	case strings.Contains(l, "magnetic"):
		return "magnetic_latch"
	case strings.Contains(l, "deadbolt"), strings.Contains(l, "keyed"):
		return "keyed_deadbolt"
	case strings.Contains(l, "electric"):
		return "electric_strike"
	case strings.Contains(l, "pool"):
		return "pool_code_latch"
	default:
		return "gravity_latch"
	}
}

func hingeKeyFor(hinge string) string {
	h := strings.ToLower(hinge)
	switch {
	case strings.Contains(h, "heavy"):
		return "heavy_duty_weld_hinge_pair"
	case strings.Contains(h, "ball bearing"):
		return "ball_bearing_hinge_pair"
	case strings.Contains(h, "spring"), strings.Contains(h, "self-closing"):
		return "spring_hinge_pair"
	default:
		return "standard_weld_hinge_pair"
	}
}

func centerStopKey(stop string) string {
	s := strings.ToLower(stop)
	switch {
	case strings.Contains(s, "cane"):
		return "cane_bolt"
	case strings.Contains(s, "drop rod"):
		return "surface_drop_rod"
	case strings.Contains(s, "flush"):
		return "flush_bolt"
	default:
		return ""
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
