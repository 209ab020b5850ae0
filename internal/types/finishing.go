package types

// FinishMethod is one of the fixed surface-finish methods.
type FinishMethod string

// Supported finish methods. Raw means no finish; the section is still
// always present with zero costs.
const (
	FinishRaw        FinishMethod = "raw"
	FinishClearcoat  FinishMethod = "clearcoat"
	FinishPaint      FinishMethod = "paint"
	FinishPowderCoat FinishMethod = "powder_coat"
	FinishGalvanized FinishMethod = "galvanized"
)

// ValidFinishMethods lists every supported finish method.
var ValidFinishMethods = []FinishMethod{
	FinishRaw, FinishClearcoat, FinishPaint, FinishPowderCoat, FinishGalvanized,
}

// FinishingSection is the always-present finishing line of a quote.
type FinishingSection struct {
	Method            FinishMethod `json:"method"`
	AreaSqFt          float64      `json:"area_sq_ft"`
	InHouseHours      float64      `json:"in_house_hours"`
	InHouseMaterial   float64      `json:"in_house_material"`
	OutsourcedCost    float64      `json:"outsourced_cost"`
	Outsourced        bool         `json:"outsourced"`
	Total             float64      `json:"total"`
	Note              string       `json:"note,omitempty"`
}
