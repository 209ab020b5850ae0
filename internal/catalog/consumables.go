package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/fabforge/fabquote/internal/types"
)

// Consumable rates. Usage is estimated per job from weld length and surface
// area; every count is ceiling-rounded to whole purchasable units.
const (
	wirePricePerLb        = 3.50
	wireLbsPer100WeldIn   = 0.5
	grindingDiscPrice     = 4.50
	grindingDiscsPer100In = 1.0
	flapDiscPrice         = 6.50
	flapDiscsPer100In     = 0.5
	gasPricePerCuFt       = 0.08
	gasCuFtPerWeldHour    = 25.0
	weldInchesPerHour     = 10.0
	clearcoatCanPrice     = 12.50
	clearcoatCoverageSqFt = 25.0
	primerCanPrice        = 8.50
	primerCoverageSqFt    = 20.0
)

// EstimateConsumables estimates shop-consumable line items from weld length,
// surface area and the finish answer.
func (s *HardwareSourcer) EstimateConsumables(weldLinearInches, totalSqFt float64, finish string) []types.ConsumableItem {
	var items []types.ConsumableItem
	weldHundreds := weldLinearInches / 100.0

	if lbs := int(math.Ceil(weldHundreds * wireLbsPer100WeldIn)); lbs > 0 {
		items = append(items, consumable(
			fmt.Sprintf("ER70S-6 welding wire (%d lbs)", lbs), lbs, "lb", wirePricePerLb))
	}

	if discs := int(math.Ceil(weldHundreds * grindingDiscsPer100In)); discs > 0 {
		items = append(items, consumable(
			fmt.Sprintf("4.5\" grinding disc x%d", discs), discs, "each", grindingDiscPrice))
	}

	if discs := int(math.Ceil(weldHundreds * flapDiscsPer100In)); discs > 0 {
		items = append(items, consumable(
			fmt.Sprintf("4.5\" flap disc x%d", discs), discs, "each", flapDiscPrice))
	}

	weldHours := weldLinearInches / weldInchesPerHour
	if cuft := int(math.Ceil(weldHours * gasCuFtPerWeldHour)); cuft > 0 {
		items = append(items, consumable(
			fmt.Sprintf("75/25 Ar/CO2 shielding gas (%d cu ft)", cuft), cuft, "cu_ft", gasPricePerCuFt))
	}

	switch f := strings.ToLower(finish); {
	case strings.Contains(f, "clear"):
		if cans := int(math.Ceil(totalSqFt / clearcoatCoverageSqFt)); cans > 0 {
			items = append(items, consumable(
				fmt.Sprintf("Clear coat spray x%d", cans), cans, "can", clearcoatCanPrice))
		}
	case strings.Contains(f, "paint") && !strings.Contains(f, "powder"):
		if cans := int(math.Ceil(totalSqFt / primerCoverageSqFt)); cans > 0 {
			items = append(items, consumable(
				fmt.Sprintf("Primer spray x%d", cans), cans, "can", primerCanPrice))
		}
	}

	return items
}

func consumable(desc string, qty int, unit string, unitPrice float64) types.ConsumableItem {
	return types.ConsumableItem{
		Description: desc,
		Quantity:    qty,
		Unit:        unit,
		UnitPrice:   unitPrice,
		LineTotal:   types.Round2(float64(qty) * unitPrice),
	}
}
