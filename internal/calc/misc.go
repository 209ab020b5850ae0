package calc

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/fabforge/fabquote/internal/catalog"
	"github.com/fabforge/fabquote/internal/types"
)

const bollardEmbedIn = 24.0

type bollardCalculator struct {
	deps
}

func (c *bollardCalculator) Calculate(ctx context.Context, params types.QuoteParams) (types.BillOfMaterials, error) {
	assumptions := []string{marketPriceAssumption}
	if bom, ok := c.tryCutList(ctx, params, assumptions, nil); ok {
		return bom, nil
	}

	f := params.Fields
	var items []types.MaterialItem
	var hardware []types.HardwareItem
	var totalWeight, totalWeldIn float64

	quantity := parseInt(f["quantity"], 4)
	if quantity < 1 {
		quantity = 1
	}
	aboveGradeIn := parseInches(f["height_above_grade"], 42.0)
	profile := bollardPipeProfile(f["pipe_size"])
	mounting := f["mounting"]
	surfaceMount := strings.Contains(mounting, "Surface mount")

	// Embedded bollards get 24" below grade; surface mounts stop at the
	// baseplate.
	lengthIn := aboveGradeIn
	if !surfaceMount {
		lengthIn += bollardEmbedIn
	}
	lengthFt := inchesToFeet(lengthIn)
	pipePriceFt, _ := c.pricePerFoot(profile)

	items = append(items, c.item(
		fmt.Sprintf("Bollards, %s x %d (%.1f ft each)", orDefault(f["pipe_size"], "6\" schedule 40"), quantity, lengthFt),
		"pipe", profile, lengthIn,
		applyWaste(quantity, wasteTube),
		lengthFt*pipePriceFt,
		types.CutSquare, wasteTube,
	))
	totalWeight += weightLbs(profile, lengthFt*float64(quantity))

	if surfaceMount {
		// Baseplate per bollard, 4 anchors each.
		plateSqFt := catalog.SqFtFromDimensions(10, 10) * float64(quantity)
		items = append(items, c.item(
			fmt.Sprintf("Baseplates, 10\"x10\" x %d", quantity),
			"plate", "sheet_11ga", 10,
			applyWaste(quantity, wasteSheet),
			catalog.SqFtFromDimensions(10, 10)*c.prices.PricePerSquareFoot("sheet_11ga"),
			types.CutSquare, wasteSheet,
		))
		totalWeight += catalog.WeightFromDimensions(10, 10, catalog.GaugeToThickness("11ga"), "mild_steel") * float64(quantity)
		totalWeldIn += weldInches(quantity, math.Pi*pipeDiameterIn(profile))
		hardware = append(hardware, c.hardwareItem("Wedge anchors, 4 per baseplate", "wedge_anchor_bolt", quantity*4))
		assumptions = append(assumptions, fmt.Sprintf("Surface mount: %.1f sq ft of baseplate, anchors into existing concrete.", plateSqFt))
	} else {
		// Concrete fills the hole around the embedded pipe.
		holeCuIn := math.Pi * math.Pow(6, 2) * bollardEmbedIn
		totalCuYd := holeCuIn * float64(quantity) / 46656.0
		items = append(items, c.item(
			fmt.Sprintf("Footing concrete, %d holes x 12\" dia x %.0f\" deep (%.2f cu yd)", quantity, bollardEmbedIn, totalCuYd),
			"concrete", "concrete_footing", bollardEmbedIn,
			quantity,
			totalCuYd*c.prices.UnitPrice("concrete_per_cuyd")/float64(quantity),
			types.CutSquare, 0,
		))
		if strings.Contains(mounting, "Core drilled") {
			assumptions = append(assumptions, "Core drilling into existing concrete carried in site labor.")
		}
		if strings.Contains(mounting, "Removable") {
			assumptions = append(assumptions, "Removable sleeves: embedded receiver pipe one size up, padlock tab on each bollard.")
		}
	}

	if boolAnswer(f["concrete_fill"]) {
		fillCuIn := math.Pi * math.Pow(pipeDiameterIn(profile)/2-0.3, 2) * aboveGradeIn
		fillCuYd := fillCuIn * float64(quantity) / 46656.0
		items = append(items, c.item(
			fmt.Sprintf("Fill concrete (%.2f cu yd)", fillCuYd),
			"concrete", "concrete_fill", aboveGradeIn,
			1,
			fillCuYd*c.prices.UnitPrice("concrete_per_cuyd"),
			types.CutSquare, 0,
		))
	}

	if !strings.Contains(f["cap_style"], "Open") {
		hardware = append(hardware, c.hardwareItem(
			fmt.Sprintf("Caps, %s x %d", orDefault(f["cap_style"], "Dome cap"), quantity),
			"bollard_cap", quantity))
		totalWeldIn += weldInches(quantity, math.Pi*pipeDiameterIn(profile))
	}

	// Paint area: cylinder surface above grade.
	sqft := math.Pi * pipeDiameterIn(profile) * aboveGradeIn / 144.0 * float64(quantity)

	return finalize(types.BillOfMaterials{
		JobType:          params.JobType,
		Items:            items,
		Hardware:         hardware,
		TotalWeightLbs:   totalWeight,
		TotalSqFt:        sqft,
		WeldLinearInches: totalWeldIn,
		WeldProcess:      types.WeldMIG,
		Assumptions:      assumptions,
	}), nil
}

func bollardPipeProfile(answer string) string {
	switch {
	case strings.Contains(answer, "4\""):
		return "pipe_4_sch40"
	case strings.Contains(answer, "8\""):
		return "pipe_8_sch40"
	default:
		return "pipe_6_sch40"
	}
}

func pipeDiameterIn(profile string) float64 {
	switch profile {
	case "pipe_3_sch40":
		return 3.5
	case "pipe_3.5_sch40":
		return 4.0
	case "pipe_4_sch40":
		return 4.5
	case "pipe_8_sch40":
		return 8.625
	default:
		return 6.625
	}
}

type structuralFrameCalculator struct {
	deps
}

func (c *structuralFrameCalculator) Calculate(ctx context.Context, params types.QuoteParams) (types.BillOfMaterials, error) {
	assumptions := []string{marketPriceAssumption}
	if bom, ok := c.tryCutList(ctx, params, assumptions, nil); ok {
		return bom, nil
	}

	f := params.Fields
	var items []types.MaterialItem
	var hardware []types.HardwareItem
	var totalWeight, totalWeldIn float64

	spanFt := parseFeet(f["span"], 12.0)
	heightFt := parseFeet(f["height"], 10.0)

	beamProfile, beamLabel := frameMemberProfile(f["member_pref"], spanFt)
	columnProfile := "sq_tube_4x4_11ga"

	// Rough bay: two beams across the span, a column at each corner.
	// Real member sizing comes from the engineer; this prices the bay.
	beamCount := 2
	beamPriceFt, _ := c.pricePerFoot(beamProfile)
	items = append(items, c.item(
		fmt.Sprintf("Beams, %s x %d (%.0f ft span)", beamLabel, beamCount, spanFt),
		"structural", beamProfile, feetToInches(spanFt),
		applyWaste(beamCount, wasteTube),
		spanFt*beamPriceFt,
		types.CutSquare, wasteTube,
	))
	totalWeight += weightLbs(beamProfile, spanFt*float64(beamCount))

	columnCount := 4
	columnPriceFt, _ := c.pricePerFoot(columnProfile)
	items = append(items, c.item(
		fmt.Sprintf("Columns, 4\" sq tube x %d (%.0f ft)", columnCount, heightFt),
		"square_tubing", columnProfile, feetToInches(heightFt),
		applyWaste(columnCount, wasteTube),
		heightFt*columnPriceFt,
		types.CutSquare, wasteTube,
	))
	totalWeight += weightLbs(columnProfile, heightFt*float64(columnCount))

	// Base and cap plates at every column.
	plateCount := columnCount * 2
	items = append(items, c.item(
		fmt.Sprintf("Base/cap plates, 8\"x8\" x %d", plateCount),
		"plate", "sheet_11ga", 8,
		applyWaste(plateCount, wasteSheet),
		catalog.SqFtFromDimensions(8, 8)*c.prices.PricePerSquareFoot("sheet_11ga"),
		types.CutSquare, wasteSheet,
	))
	totalWeight += catalog.WeightFromDimensions(8, 8, catalog.GaugeToThickness("11ga"), "mild_steel") * float64(plateCount)

	if strings.Contains(f["connection"], "Bolted") {
		hardware = append(hardware, c.hardwareItem("Anchor bolts, 4 per base", "wedge_anchor_bolt", columnCount*4))
		assumptions = append(assumptions, "Bolted field connections: clip angles and bolt holes shop-fabricated.")
		totalWeldIn += weldInches(columnCount*2, 16.0)
	} else {
		totalWeldIn += weldInches(beamCount*2+columnCount*2, 20.0)
	}

	switch {
	case strings.Contains(f["engineering"], "need design-build"):
		assumptions = append(assumptions, "Design-build: structural engineering by our PE added as a line item; member sizes will change with the stamped design.")
	case strings.Contains(f["engineering"], "will provide"):
		assumptions = append(assumptions, "Estimate assumes typical member sizes; final takeoff from the stamped drawings governs.")
	}
	if f["load"] != "" {
		assumptions = append(assumptions, fmt.Sprintf("Stated load: %s. Verify against engineering.", f["load"]))
	}
	if strings.Contains(f["install"], "Fabricate only") {
		assumptions = append(assumptions, "Fabricate only: no field installation priced.")
	}

	assumptions = append(assumptions, fmt.Sprintf(
		"Single bay estimated: %.0f ft span x %.0f ft height, %d columns. Multi-bay frames scale per bay.",
		spanFt, heightFt, columnCount))

	return finalize(types.BillOfMaterials{
		JobType:          params.JobType,
		Items:            items,
		Hardware:         hardware,
		TotalWeightLbs:   totalWeight,
		TotalSqFt:        (spanFt*float64(beamCount) + heightFt*float64(columnCount)) * 1.5,
		WeldLinearInches: totalWeldIn,
		WeldProcess:      types.WeldMIG,
		Assumptions:      assumptions,
	}), nil
}

func frameMemberProfile(pref string, spanFt float64) (string, string) {
	switch {
	case strings.Contains(pref, "I-beam"), strings.Contains(pref, "wide flange"):
		if spanFt > 16 {
			return "beam_w10x12", "W10x12 wide flange"
		}
		return "beam_w8x10", "W8x10 wide flange"
	case strings.Contains(pref, "C-channel"):
		return "channel_6x8.2", "C6x8.2 channel"
	case strings.Contains(pref, "Square tube"):
		return "sq_tube_4x4_11ga", "4\" square tube"
	default:
		if spanFt > 16 {
			return "beam_w10x12", "W10x12 wide flange"
		}
		return "beam_w8x10", "W8x10 wide flange"
	}
}

type furnitureTableCalculator struct {
	deps
}

func (c *furnitureTableCalculator) Calculate(ctx context.Context, params types.QuoteParams) (types.BillOfMaterials, error) {
	assumptions := []string{marketPriceAssumption}
	if bom, ok := c.tryCutList(ctx, params, assumptions, nil); ok {
		return bom, nil
	}

	f := params.Fields
	var items []types.MaterialItem
	var hardware []types.HardwareItem
	var totalWeight, totalWeldIn float64

	lengthIn := parseInches(f["length"], 72.0)
	widthIn := parseInches(f["width"], 36.0)
	heightIn := parseInches(f["height"], 29.0)

	legProfile, legLabel := tableLegProfile(f["profile"])
	legPriceFt, _ := c.pricePerFoot(legProfile)
	style := orDefault(f["style"], "Four legs")

	switch {
	case strings.Contains(style, "Trestle"), strings.Contains(style, "A-frame"):
		// Two end assemblies plus a stretcher between them.
		endLenIn := 2*heightIn + widthIn*0.8
		items = append(items, c.item(
			fmt.Sprintf("Trestle ends, %s x 2", legLabel),
			"square_tubing", legProfile, endLenIn,
			applyWaste(2, wasteTube),
			inchesToFeet(endLenIn)*legPriceFt,
			types.CutMiter45, wasteTube,
		))
		totalWeight += weightLbs(legProfile, inchesToFeet(endLenIn)*2)
		items = append(items, c.item(
			"Stretcher",
			"square_tubing", legProfile, lengthIn-12,
			applyWaste(1, wasteTube),
			inchesToFeet(lengthIn-12)*legPriceFt,
			types.CutSquare, wasteTube,
		))
		totalWeight += weightLbs(legProfile, inchesToFeet(lengthIn-12))
		totalWeldIn += weldInches(10, 3.0)
	case strings.Contains(style, "Pedestal"):
		items = append(items, c.item(
			"Pedestal column, 4\" sq tube",
			"square_tubing", "sq_tube_4x4_11ga", heightIn,
			applyWaste(1, wasteTube),
			inchesToFeet(heightIn)*mustPrice(c.deps, "sq_tube_4x4_11ga"),
			types.CutSquare, wasteTube,
		))
		totalWeight += weightLbs("sq_tube_4x4_11ga", inchesToFeet(heightIn))
		// Foot and top spider plates.
		for _, plate := range []struct {
			name string
			side float64
		}{{"Base plate", 20}, {"Top plate", 16}} {
			items = append(items, c.item(
				plate.name,
				"plate", "sheet_11ga", plate.side,
				1,
				catalog.SqFtFromDimensions(plate.side, plate.side)*c.prices.PricePerSquareFoot("sheet_11ga"),
				types.CutSquare, wasteSheet,
			))
			totalWeight += catalog.WeightFromDimensions(plate.side, plate.side, catalog.GaugeToThickness("11ga"), "mild_steel")
		}
		totalWeldIn += weldInches(2, 16.0)
	case strings.Contains(style, "X-frame"):
		diagIn := math.Sqrt(heightIn*heightIn + widthIn*widthIn)
		items = append(items, c.item(
			fmt.Sprintf("X-frame legs, %s x 4", legLabel),
			"square_tubing", legProfile, diagIn,
			applyWaste(4, wasteTube),
			inchesToFeet(diagIn)*legPriceFt,
			types.CutMiter45, wasteTube,
		))
		totalWeight += weightLbs(legProfile, inchesToFeet(diagIn)*4)
		totalWeldIn += weldInches(8, 3.0)
	default:
		// Four legs plus aprons tying them together.
		items = append(items, c.item(
			fmt.Sprintf("Legs, %s x 4", legLabel),
			"square_tubing", legProfile, heightIn,
			applyWaste(4, wasteTube),
			inchesToFeet(heightIn)*legPriceFt,
			types.CutSquare, wasteTube,
		))
		totalWeight += weightLbs(legProfile, inchesToFeet(heightIn)*4)

		apronLenIn := 2*(lengthIn-8) + 2*(widthIn-8)
		items = append(items, c.item(
			"Aprons (long and short pairs)",
			"square_tubing", "rect_tube_2x1_11ga", apronLenIn,
			applyWaste(1, wasteTube),
			inchesToFeet(apronLenIn)*mustPrice(c.deps, "rect_tube_2x1_11ga"),
			types.CutMiter45, wasteTube,
		))
		totalWeight += weightLbs("rect_tube_2x1_11ga", inchesToFeet(apronLenIn))
		totalWeldIn += weldInches(16, 2.0)
	}

	if strings.Contains(f["top_material"], "Steel plate") {
		topSqFt := catalog.SqFtFromDimensions(lengthIn, widthIn)
		items = append(items, c.item(
			fmt.Sprintf("Top, 11ga plate (%.0f\" x %.0f\")", lengthIn, widthIn),
			"plate", treadSheetProfile, lengthIn,
			applyWaste(1, wasteSheet),
			topSqFt*c.prices.PricePerSquareFoot(treadSheetProfile),
			types.CutSquare, wasteSheet,
		))
		totalWeight += catalog.WeightFromDimensions(lengthIn, widthIn, catalog.GaugeToThickness("11ga"), "mild_steel")
		totalWeldIn += perimeterInches(lengthIn, widthIn) * 0.2
	} else {
		assumptions = append(assumptions, fmt.Sprintf("Top is %s; base includes mounting tabs with slotted holes for seasonal movement.", orDefault(f["top_material"], "by others")))
	}

	if topWeight := parseNumber(f["top_weight"], 0); topWeight > 150 {
		assumptions = append(assumptions, fmt.Sprintf("Heavy top (%.0f lb): base members upsized and cross-braced.", topWeight))
	}

	if boolAnswer(f["leveling_feet"]) {
		feet := 4
		if strings.Contains(style, "Pedestal") {
			feet = 1
		}
		hardware = append(hardware, c.hardwareItem("Adjustable leveling feet", "leveling_foot", feet))
	}

	// Furniture welds show; TIG for clean beads regardless of material.
	process := types.WeldTIG
	assumptions = append(assumptions, "Exposed furniture welds TIG welded and blended.")

	return finalize(types.BillOfMaterials{
		JobType:          params.JobType,
		Items:            items,
		Hardware:         hardware,
		TotalWeightLbs:   totalWeight,
		TotalSqFt:        math.Max(catalog.SqFtFromDimensions(lengthIn, widthIn)*1.5, 1),
		WeldLinearInches: totalWeldIn,
		WeldProcess:      process,
		Assumptions:      assumptions,
	}), nil
}

func tableLegProfile(pref string) (string, string) {
	switch {
	case strings.Contains(pref, "3x3"):
		return "sq_tube_3x3_11ga", "3\" square tube"
	case strings.Contains(pref, "2x1"):
		return "rect_tube_2x1_11ga", "2\"x1\" rectangular tube"
	case strings.Contains(pref, "Solid bar"):
		return "sq_bar_1.0", "1\" solid square bar"
	default:
		return "sq_tube_2x2_11ga", "2\" square tube"
	}
}

// mustPrice is pricePerFoot without the fallback flag, for profiles known to
// be in the table.
func mustPrice(d deps, profile string) float64 {
	p, _ := d.pricePerFoot(profile)
	return p
}
