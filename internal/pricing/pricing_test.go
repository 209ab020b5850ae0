package pricing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabforge/fabquote/internal/catalog"
	"github.com/fabforge/fabquote/internal/labor"
	"github.com/fabforge/fabquote/internal/types"
)

func newTestEngine() *Engine {
	return NewEngine(catalog.NewHardwareSourcer())
}

func simpleLabor(hours, rate float64) types.LaborEstimate {
	est := types.LaborEstimate{
		Method: labor.MethodAI,
		Lines:  []types.LaborLine{{Process: types.ProcFullWeld, Hours: hours, Rate: rate}},
	}
	est.TotalHours = est.SumHours()
	return est
}

func TestPriceExactSubtotals(t *testing.T) {
	e := newTestEngine()
	bom := types.BillOfMaterials{
		JobType: types.JobTypeStraightRailing,
		Items:   []types.MaterialItem{{Description: "Rail stock", LineTotal: 1000}},
	}
	finish := types.FinishingSection{Method: types.FinishClearcoat, Total: 50}

	q := e.Price(bom, simpleLabor(10, 100), finish, types.QuoteParams{JobType: bom.JobType}, 15)

	assert.Equal(t, 1000.0, q.MaterialSubtotal)
	assert.Equal(t, 0.0, q.HardwareSubtotal)
	assert.Equal(t, 0.0, q.ConsumableSubtotal)
	assert.Equal(t, 1000.0, q.LaborSubtotal)
	assert.Equal(t, 50.0, q.FinishingSubtotal)
	assert.Equal(t, 2050.0, q.Subtotal)
	assert.Equal(t, 15, q.SelectedMarkup)
	assert.Equal(t, 2357.5, q.GrandTotal)
}

func TestPriceMarkupTable(t *testing.T) {
	e := newTestEngine()
	bom := types.BillOfMaterials{Items: []types.MaterialItem{{LineTotal: 100}}}

	q := e.Price(bom, types.LaborEstimate{}, types.FinishingSection{}, types.QuoteParams{}, 0)

	require.Len(t, q.MarkupTotals, len(types.MarkupOptions))
	assert.Equal(t, 100.0, q.MarkupTotals[0])
	assert.Equal(t, 105.0, q.MarkupTotals[5])
	assert.Equal(t, 130.0, q.MarkupTotals[30])
	assert.Equal(t, 0, q.SelectedMarkup)
	assert.Equal(t, 100.0, q.GrandTotal)
}

func TestPriceInvalidMarkupFallsBackToDefault(t *testing.T) {
	e := newTestEngine()
	q := e.Price(types.BillOfMaterials{}, types.LaborEstimate{}, types.FinishingSection{}, types.QuoteParams{}, 12)
	assert.Equal(t, DefaultMarkup, q.SelectedMarkup)
}

func TestPriceHardwareUsesCheapestOption(t *testing.T) {
	e := newTestEngine()
	bom := types.BillOfMaterials{
		Hardware: []types.HardwareItem{{
			Description: "Decorative steel finial",
			Quantity:    4,
			Options: []types.HardwareOption{
				{Supplier: "Supplier A", Price: 10.00},
				{Supplier: "Supplier B", Price: 7.00},
			},
		}},
	}

	q := e.Price(bom, types.LaborEstimate{}, types.FinishingSection{}, types.QuoteParams{}, 0)
	assert.Equal(t, 28.0, q.HardwareSubtotal)
}

func TestPriceConsumablesFromWeldVolume(t *testing.T) {
	e := newTestEngine()
	bom := types.BillOfMaterials{WeldLinearInches: 200, TotalSqFt: 50}
	params := types.QuoteParams{Fields: types.AnsweredFields{"finish": "Clear coat"}}

	q := e.Price(bom, types.LaborEstimate{}, types.FinishingSection{}, params, 0)

	assert.NotEmpty(t, q.Consumables)
	assert.Positive(t, q.ConsumableSubtotal)
	assert.True(t, hasAssumptionContaining(q.Assumptions, "Consumables estimated at"))
}

func TestPriceLaborMethodAssumptions(t *testing.T) {
	e := newTestEngine()

	ai := e.Price(types.BillOfMaterials{}, types.LaborEstimate{Method: labor.MethodAI}, types.FinishingSection{}, types.QuoteParams{}, 0)
	assert.True(t, hasAssumptionContaining(ai.Assumptions, "estimated by AI"))

	rules := e.Price(types.BillOfMaterials{}, types.LaborEstimate{Method: labor.MethodRuleBased}, types.FinishingSection{}, types.QuoteParams{}, 0)
	assert.True(t, hasAssumptionContaining(rules.Assumptions, "rule-based fallback"))
}

func TestPriceFlaggedEstimateSurfaces(t *testing.T) {
	e := newTestEngine()
	est := types.LaborEstimate{
		Method:     labor.MethodAI,
		Flagged:    true,
		FlagReason: "Estimate is 40% higher than historical average (14.0 hrs vs. 10.0 hrs avg from 5 past jobs)",
	}

	q := e.Price(types.BillOfMaterials{}, est, types.FinishingSection{}, types.QuoteParams{}, 0)
	assert.True(t, hasAssumptionContaining(q.Assumptions, "FLAGGED: Estimate is 40% higher"))
}

func TestPriceMaterialBulkAdvisory(t *testing.T) {
	e := newTestEngine()
	bom := types.BillOfMaterials{Items: []types.MaterialItem{{LineTotal: 6000}}}

	q := e.Price(bom, types.LaborEstimate{}, types.FinishingSection{}, types.QuoteParams{}, 0)
	assert.True(t, hasAssumptionContaining(q.Assumptions, "bulk rate"))
}

func TestPriceCarriesAndDeduplicatesUpstreamAssumptions(t *testing.T) {
	e := newTestEngine()
	bom := types.BillOfMaterials{Assumptions: []string{
		"Material prices based on market averages; update with supplier quotes for accuracy.",
		"Posts set in concrete, 10 ft on center.",
	}}

	q := e.Price(bom, types.LaborEstimate{}, types.FinishingSection{}, types.QuoteParams{}, 0)

	assert.Contains(t, q.Assumptions, "Posts set in concrete, 10 ft on center.")
	count := 0
	for _, a := range q.Assumptions {
		if a == "Material prices based on market averages; update with supplier quotes for accuracy." {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExclusionsBaseline(t *testing.T) {
	got := buildExclusions(types.JobTypeCustomFab, types.AnsweredFields{})
	assert.Equal(t, []string{
		"Permit fees and engineering review",
		"Demolition or removal of existing work (unless explicitly included)",
	}, got)
}

func TestExclusionsGateWithMotor(t *testing.T) {
	got := buildExclusions(types.JobTypeCantileverGate, types.AnsweredFields{
		"has_motor":    "Yes, automatic operator",
		"installation": "Yes, install included",
	})
	assert.Contains(t, got, "Concrete work beyond post holes")
	assert.Contains(t, got, "Electrical wiring for gate operator (we mount the operator; electrician handles wiring)")
	assert.Contains(t, got, "Touch-up after other trades complete their work")
}

func TestExclusionsRailingAndRepair(t *testing.T) {
	railing := buildExclusions(types.JobTypeStairRailing, types.AnsweredFields{})
	assert.Contains(t, railing, "Concrete or structural modifications to mount surfaces")

	repair := buildExclusions(types.JobTypeRepairStructural, types.AnsweredFields{})
	assert.Contains(t, repair, "Additional damage discovered during disassembly")
	assert.Contains(t, repair, "Matching existing finish; exact color match not guaranteed")
}

func TestRecalculateMarkup(t *testing.T) {
	e := newTestEngine()
	bom := types.BillOfMaterials{Items: []types.MaterialItem{{LineTotal: 1000}}}
	q := e.Price(bom, types.LaborEstimate{}, types.FinishingSection{}, types.QuoteParams{}, 15)
	require.Equal(t, 1150.0, q.GrandTotal)

	require.NoError(t, RecalculateMarkup(&q, 30))
	assert.Equal(t, 30, q.SelectedMarkup)
	assert.Equal(t, 1300.0, q.GrandTotal)
	assert.Equal(t, 1000.0, q.Subtotal) // Untouched

	// Applying the same markup twice is a no-op.
	require.NoError(t, RecalculateMarkup(&q, 30))
	assert.Equal(t, 1300.0, q.GrandTotal)
}

func TestRecalculateMarkupRejectsInvalidOption(t *testing.T) {
	q := types.PricedQuote{Subtotal: 1000, SelectedMarkup: 15, GrandTotal: 1150}

	err := RecalculateMarkup(&q, 17)
	require.Error(t, err)
	assert.Equal(t, 15, q.SelectedMarkup)
	assert.Equal(t, 1150.0, q.GrandTotal)
}

func hasAssumptionContaining(assumptions []string, substr string) bool {
	for _, a := range assumptions {
		if strings.Contains(a, substr) {
			return true
		}
	}
	return false
}
