package finishing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fabforge/fabquote/internal/types"
)

func laborWith(prep, clearcoat, paint float64) types.LaborEstimate {
	return types.LaborEstimate{Lines: []types.LaborLine{
		{Process: types.ProcFinishPrep, Hours: prep},
		{Process: types.ProcClearcoat, Hours: clearcoat},
		{Process: types.ProcPaint, Hours: paint},
		{Process: types.ProcFullWeld, Hours: 8},
	}}
}

func TestBuildRawIsAlwaysPresentAndFree(t *testing.T) {
	s := Build("Raw steel, no finish", 80, laborWith(0, 0, 0))

	assert.Equal(t, types.FinishRaw, s.Method)
	assert.Equal(t, 80.0, s.AreaSqFt)
	assert.Zero(t, s.InHouseHours)
	assert.Zero(t, s.InHouseMaterial)
	assert.Zero(t, s.OutsourcedCost)
	assert.Zero(t, s.Total)
	assert.Contains(t, s.Note, "surface-rust")
}

func TestBuildClearcoat(t *testing.T) {
	s := Build("Clear coat (natural steel look)", 100, laborWith(1.0, 1.0, 0))

	assert.Equal(t, types.FinishClearcoat, s.Method)
	assert.Equal(t, 2.0, s.InHouseHours)
	assert.Equal(t, 35.0, s.InHouseMaterial)
	assert.False(t, s.Outsourced)
	assert.Equal(t, 35.0, s.Total)
}

func TestBuildPaint(t *testing.T) {
	s := Build("Painted (primer + topcoat)", 100, laborWith(1.25, 0, 1.5))

	assert.Equal(t, types.FinishPaint, s.Method)
	assert.Equal(t, 2.75, s.InHouseHours)
	assert.Equal(t, 50.0, s.InHouseMaterial)
	assert.Equal(t, 50.0, s.Total)
}

func TestBuildPowderCoatIsOutsourced(t *testing.T) {
	s := Build("Powder coat", 100, laborWith(1.0, 0, 0))

	assert.Equal(t, types.FinishPowderCoat, s.Method)
	assert.True(t, s.Outsourced)
	assert.Equal(t, 350.0, s.OutsourcedCost)
	assert.Zero(t, s.InHouseMaterial)
	assert.Equal(t, 1.0, s.InHouseHours) // Prep only, coating is outsourced
	assert.Equal(t, 350.0, s.Total)
}

func TestBuildGalvanizedIsOutsourcedNoHours(t *testing.T) {
	s := Build("Hot-dip galvanized", 50, laborWith(1.0, 0, 0))

	assert.Equal(t, types.FinishGalvanized, s.Method)
	assert.True(t, s.Outsourced)
	assert.Equal(t, 100.0, s.OutsourcedCost)
	assert.Zero(t, s.InHouseHours)
	assert.Equal(t, 100.0, s.Total)
}

func TestBuildClampsAreaToOneSquareFoot(t *testing.T) {
	s := Build("paint", 0, types.LaborEstimate{})
	assert.Equal(t, 1.0, s.AreaSqFt)
	assert.Equal(t, 0.5, s.InHouseMaterial)
}

func TestNormalizeMethod(t *testing.T) {
	cases := []struct {
		in   string
		want types.FinishMethod
	}{
		{"", types.FinishRaw},
		{"Raw steel", types.FinishRaw},
		{"None needed", types.FinishRaw},
		{"no finish", types.FinishRaw},
		{"Clear coat", types.FinishClearcoat},
		{"clearcoat", types.FinishClearcoat},
		{"Powder coat (black)", types.FinishPowderCoat},
		{"Hot dip galvanize", types.FinishGalvanized},
		{"galvanized", types.FinishGalvanized},
		{"Painted", types.FinishPaint},
		{"primer and topcoat", types.FinishPaint},
		{"patina with wax", types.FinishPaint}, // Unknown reads as paint
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeMethod(tc.in), tc.in)
	}
}
