package types

import "math"

// CutType identifies how a piece is cut.
type CutType string

// Supported cut types.
const (
	CutSquare    CutType = "square"
	CutMiter45   CutType = "miter_45"
	CutMiter225  CutType = "miter_22.5"
	CutCope      CutType = "cope"
	CutNotch     CutType = "notch"
	CutCompound  CutType = "compound"
)

// ValidCutTypes lists every supported cut type.
var ValidCutTypes = []CutType{CutSquare, CutMiter45, CutMiter225, CutCope, CutNotch, CutCompound}

// WeldProcess identifies the welding process assumed for a job.
type WeldProcess string

// Supported weld processes.
const (
	WeldMIG   WeldProcess = "mig"
	WeldTIG   WeldProcess = "tig"
	WeldStick WeldProcess = "stick"
	WeldNone  WeldProcess = "none"
)

// ValidWeldProcesses lists every supported weld process.
var ValidWeldProcesses = []WeldProcess{WeldMIG, WeldTIG, WeldStick, WeldNone}

// WeldType identifies the joint type of a weld.
type WeldType string

// Supported weld joint types.
const (
	WeldButt            WeldType = "butt"
	WeldFillet          WeldType = "fillet"
	WeldLap             WeldType = "lap"
	WeldPlug            WeldType = "plug"
	WeldTackOnly        WeldType = "tack_only"
	WeldFullPenetration WeldType = "full_penetration"
	WeldSkip            WeldType = "skip"
	WeldTypeNone        WeldType = "none"
)

// ValidWeldTypes lists every supported weld joint type.
var ValidWeldTypes = []WeldType{
	WeldButt, WeldFillet, WeldLap, WeldPlug, WeldTackOnly, WeldFullPenetration, WeldSkip, WeldTypeNone,
}

// MaterialItem is one purchasable line of stock on a bill of materials.
type MaterialItem struct {
	Description  string  `json:"description"`
	MaterialType string  `json:"material_type"`
	Profile      string  `json:"profile"`
	LengthInches float64 `json:"length_inches"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	LineTotal    float64 `json:"line_total"`
	CutType      CutType `json:"cut_type"`
	WasteFactor  float64 `json:"waste_factor"`
}

// HardwareOption is one priced sourcing choice for a hardware item.
type HardwareOption struct {
	Supplier   string  `json:"supplier"`
	Price      float64 `json:"price"`
	PartNumber string  `json:"part_number,omitempty"`
	URL        string  `json:"url,omitempty"`
	LeadDays   int     `json:"lead_days"`
	Estimated  bool    `json:"estimated,omitempty"`
}

// HardwareItem is one hardware line with its sourcing options.
type HardwareItem struct {
	Description string           `json:"description"`
	Quantity    int              `json:"quantity"`
	Options     []HardwareOption `json:"options"`
}

// CheapestOption returns the lowest-priced sourcing option, or nil when the
// item carries none.
func (h HardwareItem) CheapestOption() *HardwareOption {
	var best *HardwareOption
	for i := range h.Options {
		if best == nil || h.Options[i].Price < best.Price {
			best = &h.Options[i]
		}
	}
	return best
}

// ConsumableItem is one estimated shop-consumable line.
type ConsumableItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// BillOfMaterials is the validated output of the calculation engine. The
// schema is identical for the AI cut-list path and the deterministic path;
// only the assumptions reveal which produced it.
type BillOfMaterials struct {
	JobType          JobType        `json:"job_type"`
	Items            []MaterialItem `json:"items"`
	Hardware         []HardwareItem `json:"hardware"`
	TotalWeightLbs   float64        `json:"total_weight_lbs"`
	TotalSqFt        float64        `json:"total_sq_ft"`
	WeldLinearInches float64        `json:"weld_linear_inches"`
	WeldProcess      WeldProcess    `json:"weld_process"`
	Assumptions      []string       `json:"assumptions"`
}

// MaterialSubtotal sums the line totals of all material items.
func (b BillOfMaterials) MaterialSubtotal() float64 {
	var total float64
	for _, it := range b.Items {
		total += it.LineTotal
	}
	return Round2(total)
}

// PieceCount sums the quantities of all material items.
func (b BillOfMaterials) PieceCount() int {
	var n int
	for _, it := range b.Items {
		n += it.Quantity
	}
	return n
}

// Round2 rounds to two decimal places, the precision used for money.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
