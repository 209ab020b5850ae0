package types

// MarkupOptions is the fixed markup table offered on every quote, in
// percentage points.
var MarkupOptions = []int{0, 5, 10, 15, 20, 25, 30}

// PricedQuote is the frozen output of the pricing stage.
//
// Subtotal is always the exact sum of the five category subtotals, and
// GrandTotal is Subtotal scaled by the selected markup. MarkupTotals holds
// the grand total at every markup option for display.
type PricedQuote struct {
	JobType           JobType          `json:"job_type"`
	Materials         []MaterialItem   `json:"materials"`
	Hardware          []HardwareItem   `json:"hardware"`
	Consumables       []ConsumableItem `json:"consumables"`
	Labor             LaborEstimate    `json:"labor"`
	Finishing         FinishingSection `json:"finishing"`
	MaterialSubtotal  float64          `json:"material_subtotal"`
	HardwareSubtotal  float64          `json:"hardware_subtotal"`
	ConsumableSubtotal float64         `json:"consumable_subtotal"`
	LaborSubtotal     float64          `json:"labor_subtotal"`
	FinishingSubtotal float64          `json:"finishing_subtotal"`
	Subtotal          float64          `json:"subtotal"`
	SelectedMarkup    int              `json:"selected_markup"`
	MarkupTotals      map[int]float64  `json:"markup_totals"`
	GrandTotal        float64          `json:"grand_total"`
	Assumptions       []string         `json:"assumptions"`
	Exclusions        []string         `json:"exclusions"`
}
