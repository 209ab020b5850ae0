package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabforge/fabquote/internal/types"
)

func testDocument() Document {
	return Document{
		QuoteNumber:        "FQ-2026-0042",
		CreatedAt:          time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC),
		ProjectDescription: "20ft cantilever gate, powder coated black",
		Priced: types.PricedQuote{
			JobType: types.JobTypeCantileverGate,
			Materials: []types.MaterialItem{
				{Description: "2x2x1/4 square tube, A500", Quantity: 6, LengthInches: 240, UnitPrice: 98.40, LineTotal: 590.40},
			},
			Hardware: []types.HardwareItem{
				{Description: "Cantilever roller assembly", Quantity: 2, Options: []types.HardwareOption{
					{Supplier: "McMaster-Carr", Price: 212.00},
				}},
			},
			Consumables: []types.ConsumableItem{
				{Description: "MIG wire, ER70S-6", Quantity: 1, Unit: "spool", UnitPrice: 42.00, LineTotal: 42.00},
			},
			Labor: types.LaborEstimate{
				Lines: []types.LaborLine{
					{Process: types.ProcLayoutSetup, Hours: 1.5, Rate: 125},
					{Process: types.ProcFullWeld, Hours: 6.0, Rate: 125},
					{Process: types.ProcPaint, Hours: 0, Rate: 125},
				},
				TotalHours: 7.5,
				Method:     "rule_based",
			},
			Finishing: types.FinishingSection{
				Method:     types.FinishPowderCoat,
				AreaSqFt:   120,
				Outsourced: true,
				Total:      420.00,
				Note:       "Outsourced powder coating, 5-7 business day turnaround.",
			},
			MaterialSubtotal:   590.40,
			HardwareSubtotal:   424.00,
			ConsumableSubtotal: 42.00,
			LaborSubtotal:      937.50,
			FinishingSubtotal:  420.00,
			Subtotal:           2413.90,
			SelectedMarkup:     15,
			MarkupTotals:       map[int]float64{0: 2413.90, 5: 2534.60, 10: 2655.29, 15: 2775.99, 20: 2896.68, 25: 3017.38, 30: 3138.07},
			GrandTotal:         2775.99,
			Assumptions:        []string{"Material prices are market averages and may vary by supplier."},
			Exclusions:         []string{"Permits and engineering stamps are not included."},
		},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	out, err := NewRenderer("FabForge Metalworks").Render(testDocument())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderHandlesSparseQuote(t *testing.T) {
	doc := Document{
		QuoteNumber: "FQ-2026-0001",
		CreatedAt:   time.Now(),
		Priced: types.PricedQuote{
			JobType:        types.JobTypeCustomFab,
			Labor:          types.LaborEstimate{TotalHours: 0},
			Finishing:      types.FinishingSection{Method: types.FinishRaw, AreaSqFt: 1},
			SelectedMarkup: 15,
			MarkupTotals:   map[int]float64{15: 0},
		},
	}
	out, err := NewRenderer("").Render(doc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestJobTypeTitle(t *testing.T) {
	assert.Equal(t, "Cantilever Gate", jobTypeTitle("cantilever_gate"))
	assert.Equal(t, "Powder Coat", jobTypeTitle("powder_coat"))
	assert.Equal(t, "Bollard", jobTypeTitle("bollard"))
}
