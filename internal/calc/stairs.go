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
	stringerProfile    = "channel_6x8.2"
	treadAngleProfile  = "angle_2x2x0.1875"
	treadSheetProfile  = "sheet_11ga"
	defaultRisePerStep = 7.5
	defaultRunPerStep  = 10.0
)

type completeStairCalculator struct {
	deps
}

func (c *completeStairCalculator) Calculate(ctx context.Context, params types.QuoteParams) (types.BillOfMaterials, error) {
	assumptions := []string{marketPriceAssumption}
	if bom, ok := c.tryCutList(ctx, params, assumptions, nil); ok {
		return bom, nil
	}

	f := params.Fields
	var items []types.MaterialItem
	var totalWeight, totalSqFt, totalWeldIn float64

	totalRiseIn := parseInches(f["total_rise"], 120.0)
	totalRunIn := parseInches(f["total_run"], 0)
	widthIn := parseInches(f["width"], 36.0)

	numRisers := int(math.Ceil(totalRiseIn / defaultRisePerStep))
	if numRisers < 1 {
		numRisers = 1
	}
	runPerStep := defaultRunPerStep
	if totalRunIn > 0 {
		runPerStep = totalRunIn / float64(numRisers)
	} else {
		totalRunIn = float64(numRisers) * runPerStep
	}
	numTreads := numRisers // Top tread is the landing

	stringerLenIn := math.Sqrt(totalRiseIn*totalRiseIn + totalRunIn*totalRunIn)
	stringerLenFt := inchesToFeet(stringerLenIn)

	// Stringers: C-channel pair, center stringer added for wide stairs.
	stringerCount := 2
	if widthIn > 48 {
		stringerCount = 3
		assumptions = append(assumptions, "Stair width over 48\": center stringer added.")
	}
	stringerPriceFt, _ := c.pricePerFoot(stringerProfile)
	items = append(items, c.item(
		fmt.Sprintf("Stringers, C6x8.2 channel x %d (%.1f ft each)", stringerCount, stringerLenFt),
		"channel", stringerProfile, stringerLenIn,
		applyWaste(stringerCount, wasteTube),
		stringerLenFt*stringerPriceFt,
		types.CutMiter45, wasteTube,
	))
	totalWeight += weightLbs(stringerProfile, stringerLenFt*float64(stringerCount))

	// Treads: checker plate cut per step.
	treadSqFt := catalog.SqFtFromDimensions(widthIn, runPerStep)
	totalTreadSqFt := treadSqFt * float64(numTreads)
	treadSheets := applyWaste(int(math.Ceil(totalTreadSqFt/sheetSqFt)), wasteSheet)
	treadPriceSqFt := c.prices.PricePerSquareFoot(treadSheetProfile)

	items = append(items, c.item(
		fmt.Sprintf("Treads, 11ga checker plate x %d (%.0f\" x %.0f\" each)", numTreads, widthIn, runPerStep),
		"plate", treadSheetProfile, widthIn,
		treadSheets,
		totalTreadSqFt*treadPriceSqFt/float64(treadSheets),
		types.CutSquare, wasteSheet,
	))
	totalWeight += catalog.WeightFromDimensions(widthIn, runPerStep, catalog.GaugeToThickness("11ga"), "mild_steel") * float64(numTreads)

	// Closed risers get their own plate.
	if strings.Contains(f["riser_style"], "Closed") {
		riserSqFt := catalog.SqFtFromDimensions(widthIn, defaultRisePerStep) * float64(numRisers)
		riserSheets := applyWaste(int(math.Ceil(riserSqFt/sheetSqFt)), wasteSheet)
		items = append(items, c.item(
			fmt.Sprintf("Riser plates, 14ga x %d", numRisers),
			"plate", "sheet_14ga", widthIn,
			riserSheets,
			riserSqFt*c.prices.PricePerSquareFoot("sheet_14ga")/float64(riserSheets),
			types.CutSquare, wasteSheet,
		))
		totalWeight += catalog.WeightFromDimensions(widthIn, defaultRisePerStep, catalog.GaugeToThickness("14ga"), "mild_steel") * float64(numRisers)
	}

	// Tread support angles, one pair per tread.
	anglePriceFt, _ := c.pricePerFoot(treadAngleProfile)
	items = append(items, c.item(
		fmt.Sprintf("Tread support angles, 2\"x2\"x3/16\" x %d pairs", numTreads),
		"angle_iron", treadAngleProfile, widthIn,
		applyWaste(numTreads*2, wasteTube),
		inchesToFeet(widthIn)*anglePriceFt,
		types.CutSquare, wasteTube,
	))
	totalWeight += weightLbs(treadAngleProfile, inchesToFeet(widthIn)*float64(numTreads)*2)

	// Landing platform.
	if strings.Contains(f["landing"], "landing") {
		landingDepthIn := math.Max(widthIn, 36.0)
		framePerimIn := perimeterInches(widthIn, landingDepthIn)
		framePerimFt := inchesToFeet(framePerimIn)
		framePriceFt, _ := c.pricePerFoot("sq_tube_2x2_11ga")

		items = append(items, c.item(
			fmt.Sprintf("Landing frame, 2\" sq tube 11ga (%.0f\" x %.0f\")", widthIn, landingDepthIn),
			"square_tubing", "sq_tube_2x2_11ga", framePerimIn,
			stockPieces(framePerimFt),
			framePerimFt*framePriceFt,
			types.CutMiter45, wasteTube,
		))
		totalWeight += weightLbs("sq_tube_2x2_11ga", framePerimFt)
		totalSqFt += catalog.SqFtFromDimensions(widthIn, landingDepthIn)
	}

	totalWeldIn = weldInches(numTreads*stringerCount*2, 3.0) + weldInches(numTreads*2, widthIn*0.2)
	totalSqFt += totalTreadSqFt + stringerLenFt*2*float64(stringerCount)

	assumptions = append(assumptions,
		fmt.Sprintf("%d risers at %.1f\" rise x %.1f\" run. Stringer length: %.1f ft.",
			numRisers, totalRiseIn/float64(numRisers), runPerStep, stringerLenFt),
		fmt.Sprintf("Stair width: %.0f\".", widthIn))

	return finalize(types.BillOfMaterials{
		JobType:          params.JobType,
		Items:            items,
		TotalWeightLbs:   totalWeight,
		TotalSqFt:        totalSqFt,
		WeldLinearInches: totalWeldIn,
		WeldProcess:      weldProcessFor(f["material"]),
		Assumptions:      assumptions,
	}), nil
}

type spiralStairCalculator struct {
	deps
}

func (c *spiralStairCalculator) Calculate(ctx context.Context, params types.QuoteParams) (types.BillOfMaterials, error) {
	assumptions := []string{marketPriceAssumption}
	if bom, ok := c.tryCutList(ctx, params, assumptions, nil); ok {
		return bom, nil
	}

	f := params.Fields
	var items []types.MaterialItem
	var totalWeight, totalWeldIn float64

	totalRiseIn := parseInches(f["total_rise"], 108.0)
	diameterIn := parseInches(f["diameter"], 60.0)

	numTreads := int(math.Ceil(totalRiseIn / defaultRisePerStep))
	if numTreads < 1 {
		numTreads = 1
	}

	// Center column carries everything; 36" extension above the top landing
	// for the guard rail.
	columnProfile := spiralColumnProfile(f["center_column"])
	columnLenIn := totalRiseIn + 36
	columnLenFt := inchesToFeet(columnLenIn)
	columnPriceFt, _ := c.pricePerFoot(columnProfile)

	items = append(items, c.item(
		fmt.Sprintf("Center column, %s (%.1f ft)", orDefault(f["center_column"], "4\" pipe"), columnLenFt),
		"pipe", columnProfile, columnLenIn,
		stockPieces(columnLenFt),
		columnLenFt*columnPriceFt,
		types.CutSquare, wasteTube,
	))
	totalWeight += weightLbs(columnProfile, columnLenFt)

	// Treads: pie wedges, roughly a 30 degree sector of the diameter.
	wedgeSqFt := math.Pi * math.Pow(diameterIn/2, 2) / 144.0 / 12.0
	totalTreadSqFt := wedgeSqFt * float64(numTreads)
	treadSheets := applyWaste(int(math.Ceil(totalTreadSqFt/sheetSqFt)), wasteSheet)

	items = append(items, c.item(
		fmt.Sprintf("Treads, 11ga plate wedges x %d", numTreads),
		"plate", treadSheetProfile, diameterIn/2,
		treadSheets,
		totalTreadSqFt*c.prices.PricePerSquareFoot(treadSheetProfile)/float64(treadSheets),
		types.CutNotch, wasteSheet,
	))
	totalWeight += totalTreadSqFt * 5.0 // 11ga plate runs ~5 lb/sqft

	// Helical handrail: arc length of the rotation plus the climb.
	rotationDeg := float64(numTreads) * 30.0
	arcIn := math.Pi * diameterIn * rotationDeg / 360.0
	railLenIn := math.Sqrt(arcIn*arcIn + totalRiseIn*totalRiseIn)
	railLenFt := inchesToFeet(railLenIn)
	railPriceFt, _ := c.pricePerFoot("round_tube_1.5_14ga")

	items = append(items, c.item(
		fmt.Sprintf("Helical handrail, 1-1/2\" round tube (%.1f ft, rolled)", railLenFt),
		"round_tubing", "round_tube_1.5_14ga", railLenIn,
		applyWaste(stockPieces(railLenFt), wasteTube),
		stockLengthFt*railPriceFt,
		types.CutSquare, wasteTube,
	))
	totalWeight += weightLbs("round_tube_1.5_14ga", railLenFt)
	assumptions = append(assumptions, "Helical handrail requires roll bending; forming time carried in labor.")

	// Balusters between treads.
	balustersPerTread := 1
	if strings.Contains(f["balusters"], "Two") {
		balustersPerTread = 2
	}
	balusterCount := numTreads * balustersPerTread
	balusterLenIn := 36.0
	balusterPriceFt, _ := c.pricePerFoot(railingPicketProfile)

	items = append(items, c.item(
		fmt.Sprintf("Balusters x %d", balusterCount),
		"square_tubing", railingPicketProfile, balusterLenIn,
		applyWaste(balusterCount, wasteTube),
		inchesToFeet(balusterLenIn)*balusterPriceFt,
		types.CutSquare, wasteTube,
	))
	totalWeight += weightLbs(railingPicketProfile, inchesToFeet(balusterLenIn)*float64(balusterCount))

	totalWeldIn = weldInches(numTreads*2, 6.0) + weldInches(balusterCount*2, 1.5)

	assumptions = append(assumptions, fmt.Sprintf(
		"%d treads at %.1f\" rise, %.0f\" outside diameter, %.0f degrees total rotation.",
		numTreads, totalRiseIn/float64(numTreads), diameterIn, rotationDeg))

	return finalize(types.BillOfMaterials{
		JobType:          params.JobType,
		Items:            items,
		TotalWeightLbs:   totalWeight,
		TotalSqFt:        totalTreadSqFt + columnLenFt*1.2,
		WeldLinearInches: totalWeldIn,
		WeldProcess:      weldProcessFor(f["material"]),
		Assumptions:      assumptions,
	}), nil
}

func spiralColumnProfile(answer string) string {
	switch {
	case strings.Contains(answer, "3.5"):
		return "pipe_3.5_sch40"
	case strings.Contains(answer, "6"):
		return "pipe_6_sch40"
	default:
		return "pipe_4_sch40"
	}
}
