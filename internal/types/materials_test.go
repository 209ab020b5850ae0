package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillOfMaterialsSubtotals(t *testing.T) {
	bom := BillOfMaterials{
		JobType: JobTypeStraightRailing,
		Items: []MaterialItem{
			{Description: "post", Quantity: 5, UnitPrice: 10.50, LineTotal: 52.50},
			{Description: "rail", Quantity: 2, UnitPrice: 31.25, LineTotal: 62.50},
		},
	}

	assert.Equal(t, 115.0, bom.MaterialSubtotal())
	assert.Equal(t, 7, bom.PieceCount())
}

func TestHardwareItemCheapestOption(t *testing.T) {
	item := HardwareItem{
		Description: "heavy duty hinge",
		Quantity:    2,
		Options: []HardwareOption{
			{Supplier: "McMaster-Carr", Price: 24.99},
			{Supplier: "Amazon", Price: 18.50},
			{Supplier: "Grainger", Price: 27.10},
		},
	}

	best := item.CheapestOption()
	require.NotNil(t, best)
	assert.Equal(t, "Amazon", best.Supplier)
	assert.Equal(t, 18.50, best.Price)

	empty := HardwareItem{Description: "misc"}
	assert.Nil(t, empty.CheapestOption())
}

func TestLaborEstimateSums(t *testing.T) {
	est := LaborEstimate{
		Lines: []LaborLine{
			{Process: ProcLayoutSetup, Hours: 1.0, Rate: 125},
			{Process: ProcFullWeld, Hours: 3.5, Rate: 125},
			{Process: ProcSiteInstall, Hours: 5.0, Rate: 145},
		},
	}

	assert.Equal(t, 9.5, est.SumHours())
	assert.Equal(t, 1287.5, est.Cost())
	assert.Equal(t, 3.5, est.HoursFor(ProcFullWeld))
	assert.Equal(t, 0.0, est.HoursFor(ProcPaint))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.2345))
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, 0.0, Round2(0))
}
