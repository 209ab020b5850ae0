package calc

import (
	"context"
	"fmt"
	"strings"

	"github.com/fabforge/fabquote/internal/types"
)

// Default envelope when the customer gives no dimensions at all.
const (
	customDefaultLengthIn = 24.0
	customDefaultWidthIn  = 12.0
	customDefaultHeightIn = 12.0
)

// customFabCalculator is the universal fallback. It handles the custom
// fabrication job type and every job type without a dedicated calculator,
// and it never returns an error; the worst case is a rough framed-box
// estimate flagged with assumptions.
type customFabCalculator struct {
	deps
}

func (c *customFabCalculator) Calculate(ctx context.Context, params types.QuoteParams) (types.BillOfMaterials, error) {
	assumptions := []string{marketPriceAssumption}
	f := params.Fields

	// Custom work lives or dies on the description, so the AI path runs on
	// any free text at all, no word floor.
	aiParams := params
	if desc := f["description"]; desc != "" && !strings.Contains(params.Description, desc) {
		aiParams.Description = strings.TrimSpace(params.Description + " " + desc)
	}
	hasText := aiParams.Description != "" || aiParams.Notes != "" || len(aiParams.PhotoObservations) > 0
	if hasText {
		if bom, ok := c.cutListBOM(ctx, aiParams, assumptions, nil); ok {
			return bom, nil
		}
	}

	var items []types.MaterialItem
	var totalWeight, totalWeldIn float64

	lengthIn := parseInches(f["length"], customDefaultLengthIn)
	widthIn := parseInches(f["width"], customDefaultWidthIn)
	heightIn := parseInches(f["height"], customDefaultHeightIn)
	quantity := parseInt(f["quantity"], 1)
	if quantity < 1 {
		quantity = 1
	}
	if f["length"] == "" && f["width"] == "" && f["height"] == "" {
		assumptions = append(assumptions, fmt.Sprintf(
			"No dimensions provided; estimated as a %.0f\" x %.0f\" x %.0f\" envelope.",
			customDefaultLengthIn, customDefaultWidthIn, customDefaultHeightIn))
	}

	material := f["material"]
	profile := customFabProfile(material)

	// Rough framed box: perimeter of the footprint plus four verticals,
	// with light internal bracing.
	frameLenIn := 2*(lengthIn+widthIn) + 4*heightIn
	braceLenIn := (lengthIn + widthIn) * 0.5
	totalStockIn := (frameLenIn + braceLenIn) * float64(quantity)
	totalStockFt := inchesToFeet(totalStockIn)

	priceFt, usedFallback := c.pricePerFoot(profile)
	if usedFallback {
		assumptions = append(assumptions, fmt.Sprintf(
			"No price on file for %s; estimated at $%.2f/ft.", profile, fallbackPricePerFoot))
	}

	items = append(items, c.item(
		fmt.Sprintf("Frame stock, %s (%.1f ft total)", profile, totalStockFt),
		materialTypeFor(material), profile, frameLenIn,
		applyWaste(quantity, wasteTube),
		totalStockFt*priceFt/float64(quantity),
		types.CutSquare, wasteTube,
	))
	totalWeight += weightLbs(profile, totalStockFt)
	totalWeldIn = frameLenIn * 0.3 * float64(quantity)

	assumptions = append(assumptions,
		"Custom fabrication estimated as a framed structure from the given envelope; refine with drawings or a detailed description.")
	if quantity > 1 {
		assumptions = append(assumptions, fmt.Sprintf("%d identical pieces.", quantity))
	}

	return finalize(types.BillOfMaterials{
		JobType:          params.JobType,
		Items:            items,
		TotalWeightLbs:   totalWeight,
		TotalSqFt:        lengthIn * widthIn * 2 / 144.0 * float64(quantity),
		WeldLinearInches: totalWeldIn,
		WeldProcess:      weldProcessFor(material),
		Assumptions:      assumptions,
	}), nil
}

func customFabProfile(material string) string {
	switch materialTypeFor(material) {
	case "stainless_304":
		return "sq_tube_1.5x1.5_16ga"
	case "aluminum_6061":
		return "sq_tube_1.5x1.5_14ga"
	default:
		return "sq_tube_1.5x1.5_11ga"
	}
}
