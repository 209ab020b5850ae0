package calc

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/fabforge/fabquote/internal/catalog"
	"github.com/fabforge/fabquote/internal/types"
)

// repairCalculator covers both decorative and structural repair. Repairs are
// quoted primarily from the damage description and photos; the deterministic
// template is a small patch-stock allowance, never a full build.
type repairCalculator struct {
	deps
	structural bool
}

func (c *repairCalculator) Calculate(ctx context.Context, params types.QuoteParams) (types.BillOfMaterials, error) {
	assumptions := []string{marketPriceAssumption}
	f := params.Fields

	// The damage description is the real input here. Fold it into the free
	// text so the cut list model sees it.
	aiParams := params
	if dd := f["damage_description"]; dd != "" {
		aiParams.Description = strings.TrimSpace(params.Description + " Damage: " + dd)
	}
	if bom, ok := c.tryCutList(ctx, aiParams, assumptions, nil); ok {
		return bom, nil
	}

	var items []types.MaterialItem
	var totalWeight, totalWeldIn float64

	sections := parseInt(f["sections_affected"], 1)
	if sections < 1 {
		sections = 1
	}

	patchProfile := "flat_bar_1.5x0.25"
	patchLabel := "1-1/2\"x1/4\" flat bar"
	if c.structural {
		patchProfile = "sheet_11ga"
		patchLabel = "11ga plate"
	}

	// Patch stock: 24" of stock per damaged section as a starting allowance.
	patchLenIn := 24.0 * float64(sections)
	if crackIn := parseInches(f["crack_length"], 0); crackIn > 0 {
		// Fishplates run past the crack on both ends.
		patchLenIn = math.Max(patchLenIn, crackIn*2)
		totalWeldIn += crackIn * 2 // Vee out and weld both sides
		assumptions = append(assumptions, fmt.Sprintf("%.0f\" of cracking: gouged out and welded both sides, fishplated.", crackIn))
	}

	if c.structural {
		sqft := catalog.SqFtFromDimensions(patchLenIn, 6)
		items = append(items, c.item(
			fmt.Sprintf("Patch/fishplate stock, %s (%.0f\" total)", patchLabel, patchLenIn),
			"plate", patchProfile, patchLenIn,
			applyWaste(1, wasteSheet),
			sqft*c.prices.PricePerSquareFoot(patchProfile),
			types.CutSquare, wasteSheet,
		))
		totalWeight += catalog.WeightFromDimensions(patchLenIn, 6, catalog.GaugeToThickness("11ga"), "mild_steel")
	} else {
		priceFt, _ := c.pricePerFoot(patchProfile)
		items = append(items, c.item(
			fmt.Sprintf("Repair stock, %s (%.0f\" total)", patchLabel, patchLenIn),
			"flat_bar", patchProfile, patchLenIn,
			applyWaste(1, wasteFlat),
			inchesToFeet(patchLenIn)*priceFt,
			types.CutSquare, wasteFlat,
		))
		totalWeight += weightLbs(patchProfile, inchesToFeet(patchLenIn))
	}
	totalWeldIn += weldInches(sections*2, 4.0)

	// Rusted-through sections need replacement stock, not just patches.
	if strings.Contains(f["rust_severity"], "Rusted through") || strings.Contains(f["rust_severity"], "Heavy scale") {
		priceFt, _ := c.pricePerFoot("sq_tube_1.5x1.5_11ga")
		items = append(items, c.item(
			"Replacement sections, 1-1/2\" sq tube (rust cut-out)",
			"square_tubing", "sq_tube_1.5x1.5_11ga", 48,
			applyWaste(sections, wasteTube),
			inchesToFeet(48)*priceFt,
			types.CutSquare, wasteTube,
		))
		totalWeight += weightLbs("sq_tube_1.5x1.5_11ga", inchesToFeet(48)*float64(sections))
		totalWeldIn += weldInches(sections*2, 4.0)
		assumptions = append(assumptions, "Rust damage: affected sections cut out and replaced, extent confirmed after blasting.")
	}

	if boolAnswer(f["missing_pieces"]) {
		priceFt, _ := c.pricePerFoot("sq_bar_0.75")
		items = append(items, c.item(
			"Re-make stock for missing pieces (allowance)",
			"square_tubing", "sq_bar_0.75", 60,
			applyWaste(1, wasteTube),
			inchesToFeet(60)*priceFt,
			types.CutSquare, wasteTube,
		))
		totalWeight += weightLbs("sq_bar_0.75", inchesToFeet(60))
		assumptions = append(assumptions, "Missing pieces re-made to match existing; allowance until patterns are confirmed.")
	}

	if strings.Contains(f["repair_location"], "on site") || strings.Contains(f["repair_location"], "Repair on site") {
		assumptions = append(assumptions, "Repair on site.")
		if strings.Contains(f["access"], "Tight") || strings.Contains(f["access"], "Ladder") {
			assumptions = append(assumptions, fmt.Sprintf("Site access: %s.", f["access"]))
		}
	}

	if c.structural {
		if strings.Contains(f["load_bearing"], "Yes") || strings.Contains(f["load_bearing"], "Not sure") {
			assumptions = append(assumptions, "Load bearing member: repair per AWS D1.1, temporary shoring if required.")
		}
		if boolAnswer(f["prior_repairs"]) {
			assumptions = append(assumptions, "Prior repairs present: old weld metal removed before re-welding.")
		}
	} else if strings.Contains(f["finish_match"], "match existing") {
		assumptions = append(assumptions, "Finish blended to match existing; exact color match not guaranteed on aged coatings.")
	}

	assumptions = append(assumptions, "Repair scope estimated from description; final scope confirmed on inspection.")

	material := f["material"]
	if c.structural {
		material = "" // Structural repairs are almost always mild steel
	}

	return finalize(types.BillOfMaterials{
		JobType:          params.JobType,
		Items:            items,
		TotalWeightLbs:   totalWeight,
		TotalSqFt:        math.Max(inchesToFeet(patchLenIn)*0.5, 1),
		WeldLinearInches: totalWeldIn,
		WeldProcess:      weldProcessFor(material),
		Assumptions:      assumptions,
	}), nil
}
