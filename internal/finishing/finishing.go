// Package finishing builds the finishing section of a quote. The section is
// always present, even for raw steel, because finishing is the most commonly
// underquoted line item in fabrication work.
package finishing

import (
	"math"
	"strings"

	"github.com/fabforge/fabquote/internal/types"
)

// Outsourced finishing rates in dollars per square foot.
const (
	PowderCoatPerSqFt = 3.50 // Mid-range, varies $2.50-5.00 regionally
	GalvanizePerSqFt  = 2.00 // Hot-dip
)

// In-house finishing material rates in dollars per square foot.
const (
	ClearcoatMaterialPerSqFt = 0.35
	PaintMaterialPerSqFt     = 0.50 // Primer plus topcoat
)

// Build assembles the finishing section from the answered finish type, the
// surface area off the bill of materials, and the labor estimate. The labor
// estimate supplies the in-house hours for finish-related buckets; the hours
// are informational here and are billed under labor, not finishing.
func Build(finishType string, totalSqFt float64, labor types.LaborEstimate) types.FinishingSection {
	method := NormalizeMethod(finishType)

	// Even raw steel has a surface.
	area := totalSqFt
	if area < 1.0 {
		area = 1.0
	}
	area = round1(area)

	section := types.FinishingSection{Method: method, AreaSqFt: area}

	switch method {
	case types.FinishRaw:
		section.Note = "No finish requested. Raw steel will surface-rust without protection."
	case types.FinishClearcoat:
		section.InHouseHours = types.Round2(labor.HoursFor(types.ProcFinishPrep) + labor.HoursFor(types.ProcClearcoat))
		section.InHouseMaterial = types.Round2(area * ClearcoatMaterialPerSqFt)
		section.Total = section.InHouseMaterial
	case types.FinishPaint:
		section.InHouseHours = types.Round2(labor.HoursFor(types.ProcFinishPrep) + labor.HoursFor(types.ProcPaint))
		section.InHouseMaterial = types.Round2(area * PaintMaterialPerSqFt)
		section.Total = section.InHouseMaterial
	case types.FinishPowderCoat:
		section.InHouseHours = types.Round2(labor.HoursFor(types.ProcFinishPrep))
		section.OutsourcedCost = types.Round2(area * PowderCoatPerSqFt)
		section.Outsourced = true
		section.Total = section.OutsourcedCost
		section.Note = "Powder coating outsourced. Rate varies by coater and color."
	case types.FinishGalvanized:
		section.OutsourcedCost = types.Round2(area * GalvanizePerSqFt)
		section.Outsourced = true
		section.Total = section.OutsourcedCost
		section.Note = "Hot-dip galvanizing outsourced. Lead time typically 1-2 weeks."
	}
	return section
}

// NormalizeMethod maps a free-text finish answer onto one of the fixed
// methods. Unrecognized non-empty text reads as paint, the safest default
// for an exterior steel job.
func NormalizeMethod(finishType string) types.FinishMethod {
	f := strings.ToLower(strings.TrimSpace(finishType))
	switch {
	case f == "" || strings.Contains(f, "raw") || strings.Contains(f, "none") || strings.Contains(f, "no finish"):
		return types.FinishRaw
	case strings.Contains(f, "clear"):
		return types.FinishClearcoat
	case strings.Contains(f, "powder"):
		return types.FinishPowderCoat
	case strings.Contains(f, "galv") || strings.Contains(f, "hot dip") || strings.Contains(f, "hot-dip"):
		return types.FinishGalvanized
	default:
		return types.FinishPaint
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
