// Package calc implements the calculation engine: per-job-type geometry
// calculators that turn answered fields into a bill of materials, plus an
// AI-assisted cut list path for jobs described in free text.
package calc

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/fabforge/fabquote/internal/catalog"
	"github.com/fabforge/fabquote/config"
	"github.com/fabforge/fabquote/internal/logger"
	"github.com/fabforge/fabquote/internal/types"
)

// Waste factors by material class. Quantities are always rounded up after
// applying waste; you can't buy half a stick.
const (
	wasteTube  = 0.05
	wasteFlat  = 0.10
	wasteSheet = 0.15

	stockLengthFt = 20.0
	sheetSqFt     = 32.0 // 4x8 sheet

	// Last-resort pricing when a profile is missing from every table.
	fallbackPricePerFoot  = 3.50
	fallbackWeightPerFoot = 2.0
)

const marketPriceAssumption = "Material prices based on market averages; update with supplier quotes for accuracy."

// Calculator produces a bill of materials from answered fields.
type Calculator interface {
	Calculate(ctx context.Context, params types.QuoteParams) (types.BillOfMaterials, error)
}

// deps is the shared lookup surface handed to every calculator.
type deps struct {
	prices    *catalog.PriceBook
	hardware  *catalog.HardwareSourcer
	cuts      *CutListGenerator
	wordFloor int
}

// Registry routes job types to their dedicated calculator. Job types without
// one fall through to the custom fabrication calculator, which never fails.
type Registry struct {
	calculators map[types.JobType]Calculator
	fallback    Calculator
}

// NewRegistry builds the calculator registry over the given lookups.
func NewRegistry(prices *catalog.PriceBook, hardware *catalog.HardwareSourcer, cuts *CutListGenerator) *Registry {
	d := deps{
		prices:    prices,
		hardware:  hardware,
		cuts:      cuts,
		wordFloor: config.AIWordFloor(),
	}

	r := &Registry{
		calculators: map[types.JobType]Calculator{
			types.JobTypeCantileverGate:      &cantileverGateCalculator{d},
			types.JobTypeSwingGate:           &swingGateCalculator{d},
			types.JobTypeStraightRailing:     &straightRailingCalculator{d},
			types.JobTypeStairRailing:        &stairRailingCalculator{d},
			types.JobTypeBalconyRailing:      &balconyRailingCalculator{d},
			types.JobTypeCompleteStair:       &completeStairCalculator{d},
			types.JobTypeSpiralStair:         &spiralStairCalculator{d},
			types.JobTypeOrnamentalFence:     &ornamentalFenceCalculator{d},
			types.JobTypeWindowSecurityGrate: &windowGrateCalculator{d},
			types.JobTypeBollard:             &bollardCalculator{d},
			types.JobTypeStructuralFrame:     &structuralFrameCalculator{d},
			types.JobTypeFurnitureTable:      &furnitureTableCalculator{d},
			types.JobTypeRepairDecorative:    &repairCalculator{deps: d, structural: false},
			types.JobTypeRepairStructural:    &repairCalculator{deps: d, structural: true},
		},
		fallback: &customFabCalculator{d},
	}
	logger.Infof("Registered %d dedicated calculators (custom fabrication fallback for the rest)", len(r.calculators))
	return r
}

// Calculator returns the calculator for a job type, or the universal
// fallback when none is registered.
func (r *Registry) Calculator(jobType types.JobType) Calculator {
	if c, ok := r.calculators[jobType]; ok {
		return c
	}
	return r.fallback
}

// HasDedicated reports whether a job type has its own calculator
func (r *Registry) HasDedicated(jobType types.JobType) bool {
	_, ok := r.calculators[jobType]
	return ok
}

// Calculate runs the calculator for params.JobType.
func (r *Registry) Calculate(ctx context.Context, params types.QuoteParams) (types.BillOfMaterials, error) {
	return r.Calculator(params.JobType).Calculate(ctx, params)
}

// --- shared arithmetic helpers ---

// applyWaste rounds a quantity up after applying a waste factor
func applyWaste(quantity int, waste float64) int {
	return int(math.Ceil(float64(quantity) * (1 + waste)))
}

// wasteFor picks the waste factor for a material class. Sheet goods waste
// the most, bar stock less, tube and pipe the least.
func wasteFor(materialType string) float64 {
	m := strings.ToLower(materialType)
	switch {
	case strings.Contains(m, "plate"), strings.Contains(m, "sheet"):
		return wasteSheet
	case strings.Contains(m, "flat"), strings.Contains(m, "angle"), strings.Contains(m, "channel"), strings.Contains(m, "bar"):
		return wasteFlat
	default:
		return wasteTube
	}
}

// stockPieces returns how many stock lengths cover a total footage
func stockPieces(totalFt float64) int {
	n := int(math.Ceil(totalFt / stockLengthFt))
	if n < 1 {
		n = 1
	}
	return n
}

func perimeterInches(widthIn, heightIn float64) float64 {
	return 2 * (widthIn + heightIn)
}

// weldInches estimates total weld length from a joint count
func weldInches(joints int, avgWeldIn float64) float64 {
	return float64(joints) * avgWeldIn
}

func feetToInches(ft float64) float64 { return ft * 12 }
func inchesToFeet(in float64) float64 { return in / 12 }

var numberRe = regexp.MustCompile(`\d+\.?\d*`)

// parseNumber extracts the first numeric value from free-form answer text.
// Answers arrive as strings like `10`, `10.5 ft`, or `42"`.
func parseNumber(s string, def float64) float64 {
	m := numberRe.FindString(s)
	if m == "" {
		return def
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return def
	}
	return v
}

func parseInt(s string, def int) int {
	m := numberRe.FindString(s)
	if m == "" {
		return def
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return def
	}
	return int(v)
}

// parseFeet parses a length answered in feet
func parseFeet(s string, def float64) float64 { return parseNumber(s, def) }

// parseInches parses a length answered in inches
func parseInches(s string, def float64) float64 { return parseNumber(s, def) }

// boolAnswer interprets a boolean question answer. Clients send "true" or
// "Yes" depending on surface; both count.
func boolAnswer(s string) bool {
	v := strings.ToLower(strings.TrimSpace(s))
	return v == "true" || v == "yes" || strings.HasPrefix(v, "yes")
}

// materialTypeFor normalizes a material answer to a weight-density key
func materialTypeFor(material string) string {
	m := strings.ToLower(material)
	switch {
	case strings.Contains(m, "stainless"), strings.Contains(m, "304"), strings.Contains(m, "316"):
		return "stainless_304"
	case strings.Contains(m, "aluminum"), strings.Contains(m, "6061"):
		return "aluminum_6061"
	default:
		return "mild_steel"
	}
}

// weldProcessFor picks the default weld process for a material. Stainless
// and aluminum force TIG; everything else defaults to MIG.
func weldProcessFor(material string) types.WeldProcess {
	switch materialTypeFor(material) {
	case "stainless_304", "aluminum_6061":
		return types.WeldTIG
	default:
		return types.WeldMIG
	}
}

// item builds one material line. unitPrice falls back to a constant per-foot
// rate when the profile has no price anywhere; callers record an assumption
// when that happens.
func (d deps) item(description, materialType, profile string, lengthIn float64, quantity int, unitPrice float64, cutType types.CutType, waste float64) types.MaterialItem {
	unitPrice = types.Round2(unitPrice)
	return types.MaterialItem{
		Description:  description,
		MaterialType: materialType,
		Profile:      profile,
		LengthInches: types.Round2(lengthIn),
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		LineTotal:    types.Round2(unitPrice * float64(quantity)),
		CutType:      cutType,
		WasteFactor:  waste,
	}
}

// hardwareItem builds one hardware line with its catalog sourcing options
func (d deps) hardwareItem(description, catalogKey string, quantity int) types.HardwareItem {
	return types.HardwareItem{
		Description: description,
		Quantity:    quantity,
		Options:     d.hardware.Options(catalogKey),
	}
}

// pricePerFoot looks up a per-foot price with the last-resort fallback.
// Returns the price and whether the fallback was used.
func (d deps) pricePerFoot(profile string) (float64, bool) {
	p := d.prices.PricePerFoot(profile)
	if p == 0 {
		return fallbackPricePerFoot, true
	}
	return p, false
}

// weightLbs computes stock weight with the last-resort per-foot fallback
func weightLbs(stockKey string, lengthFt float64) float64 {
	w := catalog.WeightFromStock(stockKey, lengthFt)
	if w == 0 {
		return lengthFt * fallbackWeightPerFoot
	}
	return w
}

// finalize normalizes a bill of materials before it leaves the engine
func finalize(bom types.BillOfMaterials) types.BillOfMaterials {
	bom.TotalWeightLbs = math.Round(bom.TotalWeightLbs*10) / 10
	bom.TotalSqFt = math.Round(bom.TotalSqFt*10) / 10
	bom.WeldLinearInches = math.Round(bom.WeldLinearInches*10) / 10
	if bom.WeldProcess == "" {
		bom.WeldProcess = types.WeldMIG
	}
	if bom.Items == nil {
		bom.Items = []types.MaterialItem{}
	}
	if bom.Hardware == nil {
		bom.Hardware = []types.HardwareItem{}
	}
	if bom.Assumptions == nil {
		bom.Assumptions = []string{}
	}
	return bom
}

// hasDescription reports whether the combined free text is rich enough to
// feed the AI cut list path.
func (d deps) hasDescription(params types.QuoteParams) bool {
	combined := params.Description + " " + params.Notes + " " + strings.Join(params.PhotoObservations, " ")
	return len(strings.Fields(combined)) > d.wordFloor
}

// tryCutList runs the AI cut list path when the description clears the word
// floor. Returns the bill of materials and true on success; any failure means
// the caller takes its deterministic path.
func (d deps) tryCutList(ctx context.Context, params types.QuoteParams, assumptions []string, hardware []types.HardwareItem) (types.BillOfMaterials, bool) {
	if !d.hasDescription(params) {
		return types.BillOfMaterials{}, false
	}
	return d.cutListBOM(ctx, params, assumptions, hardware)
}

// cutListBOM generates the AI cut list and converts it to a bill of
// materials, no word-floor gate.
func (d deps) cutListBOM(ctx context.Context, params types.QuoteParams, assumptions []string, hardware []types.HardwareItem) (types.BillOfMaterials, bool) {
	if d.cuts == nil {
		return types.BillOfMaterials{}, false
	}

	cuts, cutAssumptions, err := d.cuts.Generate(ctx, params)
	if err != nil {
		logger.Warnf("AI cut list failed for %s, using template: %v", params.JobType, err)
		return types.BillOfMaterials{}, false
	}

	items := make([]types.MaterialItem, 0, len(cuts))
	var totalWeight, totalWeldIn, totalLengthFt float64
	process := types.WeldMIG

	for _, cut := range cuts {
		priceFt, usedFallback := d.pricePerFoot(cut.Profile)
		lengthFt := inchesToFeet(cut.LengthInches)
		if usedFallback {
			// Sheet goods are priced per square foot, not per linear foot.
			if sqftPrice := d.prices.PricePerSquareFoot(cut.Profile); sqftPrice > 0 {
				priceFt = sqftPrice * 0.5 // Rough: 6" average width
			}
		}

		waste := wasteFor(cut.MaterialType)
		items = append(items, d.item(
			cut.Description,
			cut.MaterialType,
			cut.Profile,
			cut.LengthInches,
			applyWaste(cut.Quantity, waste),
			lengthFt*priceFt,
			cut.CutType,
			waste,
		))
		totalWeight += weightLbs(cut.Profile, lengthFt*float64(cut.Quantity))
		totalWeldIn += float64(cut.Quantity) * 6 // Estimate 6" weld per piece
		totalLengthFt += lengthFt * float64(cut.Quantity)
		if cut.WeldProcess == types.WeldTIG {
			process = types.WeldTIG
		}
	}

	assumptions = append(assumptions, cutAssumptions...)
	assumptions = append(assumptions, "Cut list generated by AI from project description.")

	return finalize(types.BillOfMaterials{
		JobType:          params.JobType,
		Items:            items,
		Hardware:         hardware,
		TotalWeightLbs:   totalWeight,
		TotalSqFt:        totalLengthFt * 0.5, // Rough: 6" average width
		WeldLinearInches: totalWeldIn,
		WeldProcess:      process,
		Assumptions:      assumptions,
	}), true
}
