package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fabforge/fabquote/internal/types"
)

type hardwareEntry struct {
	category string
	options  []types.HardwareOption
}

// Hardware sourcing catalog. Each key carries 2-3 priced options so the
// quote can show alternatives while pricing against the cheapest.
var hardwareCatalog = map[string]hardwareEntry{
	// Gate hinges
	"heavy_duty_weld_hinge_pair": {category: "hinge", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 145.00, PartNumber: "1573A63", URL: "https://www.mcmaster.com/1573A63", LeadDays: 3},
		{Supplier: "Amazon", Price: 89.99, LeadDays: 5},
		{Supplier: "Grainger", Price: 125.00, PartNumber: "5RRN2", LeadDays: 2},
	}},
	"standard_weld_hinge_pair": {category: "hinge", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 72.00, PartNumber: "1573A52", URL: "https://www.mcmaster.com/1573A52", LeadDays: 3},
		{Supplier: "Amazon", Price: 45.99, LeadDays: 5},
		{Supplier: "Grainger", Price: 62.00, LeadDays: 2},
	}},
	"ball_bearing_hinge_pair": {category: "hinge", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 165.00, LeadDays: 3},
		{Supplier: "Amazon", Price: 120.00, LeadDays: 5},
		{Supplier: "Grainger", Price: 155.00, LeadDays: 2},
	}},
	"spring_hinge_pair": {category: "hinge", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 78.00, LeadDays: 3},
		{Supplier: "Amazon", Price: 55.00, LeadDays: 5},
		{Supplier: "Grainger", Price: 72.00, LeadDays: 2},
	}},
	// Latches
	"gravity_latch": {category: "latch", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 48.00, LeadDays: 3},
		{Supplier: "Amazon", Price: 28.99, LeadDays: 5},
		{Supplier: "Grainger", Price: 38.50, LeadDays: 2},
	}},
	"magnetic_latch": {category: "latch", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 65.00, LeadDays: 3},
		{Supplier: "Amazon", Price: 42.99, LeadDays: 5},
		{Supplier: "Grainger", Price: 55.00, LeadDays: 2},
	}},
	"keyed_deadbolt": {category: "latch", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 89.00, LeadDays: 3},
		{Supplier: "Amazon", Price: 55.99, LeadDays: 5},
		{Supplier: "Grainger", Price: 72.00, LeadDays: 2},
	}},
	"pool_code_latch": {category: "latch", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 95.00, LeadDays: 3},
		{Supplier: "Amazon", Price: 72.00, LeadDays: 5},
		{Supplier: "Grainger", Price: 88.00, LeadDays: 2},
	}},
	"electric_strike": {category: "latch", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 135.00, LeadDays: 3},
		{Supplier: "Amazon", Price: 95.00, LeadDays: 5},
		{Supplier: "Grainger", Price: 125.00, LeadDays: 2},
	}},
	// Gate operators. McMaster doesn't sell these.
	"liftmaster_la412": {category: "operator", options: []types.HardwareOption{
		{Supplier: "LiftMaster Dealer", Price: 1350.00, PartNumber: "LA412", LeadDays: 5},
		{Supplier: "Amazon", Price: 1450.00, PartNumber: "LA412", LeadDays: 7},
		{Supplier: "Gate Depot", Price: 1249.00, PartNumber: "LA412", LeadDays: 4},
	}},
	"us_automatic_patriot": {category: "operator", options: []types.HardwareOption{
		{Supplier: "US Automatic Dealer", Price: 950.00, PartNumber: "Patriot", LeadDays: 5},
		{Supplier: "Amazon", Price: 975.00, LeadDays: 7},
		{Supplier: "Gate Depot", Price: 899.00, LeadDays: 4},
	}},
	"liftmaster_rsw12u": {category: "operator", options: []types.HardwareOption{
		{Supplier: "LiftMaster Dealer", Price: 1100.00, PartNumber: "RSW12U", LeadDays: 5},
		{Supplier: "Amazon", Price: 1200.00, LeadDays: 7},
		{Supplier: "Gate Depot", Price: 1050.00, PartNumber: "RSW12U", LeadDays: 4},
	}},
	"liftmaster_csw24u": {category: "operator", options: []types.HardwareOption{
		{Supplier: "LiftMaster Dealer", Price: 1800.00, PartNumber: "CSW24U", LeadDays: 5},
		{Supplier: "Amazon", Price: 1950.00, LeadDays: 7},
		{Supplier: "Gate Depot", Price: 1750.00, PartNumber: "CSW24U", LeadDays: 4},
	}},
	// Roller carriages (cantilever)
	"roller_carriage_standard": {category: "roller_carriage", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 225.00, LeadDays: 3},
		{Supplier: "Amazon", Price: 165.00, LeadDays: 5},
		{Supplier: "Grainger", Price: 195.00, LeadDays: 2},
	}},
	"roller_carriage_heavy": {category: "roller_carriage", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 385.00, LeadDays: 3},
		{Supplier: "Amazon", Price: 275.00, LeadDays: 5},
		{Supplier: "Grainger", Price: 340.00, LeadDays: 2},
	}},
	// Gate stops
	"gate_stop": {category: "hardware", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 18.00, LeadDays: 3},
		{Supplier: "Amazon", Price: 12.00, LeadDays: 5},
		{Supplier: "Grainger", Price: 16.00, LeadDays: 2},
	}},
	// Railing hardware
	"surface_mount_flange": {category: "railing_mount", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 22.50, LeadDays: 3},
		{Supplier: "Amazon", Price: 14.99, LeadDays: 5},
		{Supplier: "Grainger", Price: 18.75, LeadDays: 2},
	}},
	"cable_tensioner": {category: "railing_hardware", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 28.00, LeadDays: 3},
		{Supplier: "Amazon", Price: 18.99, LeadDays: 5},
		{Supplier: "CableRail", Price: 24.00, LeadDays: 7},
	}},
	"cable_end_fitting": {category: "railing_hardware", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 12.50, LeadDays: 3},
		{Supplier: "Amazon", Price: 8.99, LeadDays: 5},
		{Supplier: "CableRail", Price: 10.50, LeadDays: 7},
	}},
	// Auto-close / center stop
	"hydraulic_closer": {category: "hardware", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 195.00, LeadDays: 3},
		{Supplier: "Amazon", Price: 150.00, LeadDays: 5},
		{Supplier: "Grainger", Price: 185.00, LeadDays: 2},
	}},
	"cane_bolt": {category: "hardware", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 38.00, LeadDays: 3},
		{Supplier: "Amazon", Price: 25.00, LeadDays: 5},
		{Supplier: "Grainger", Price: 35.00, LeadDays: 2},
	}},
	"surface_drop_rod": {category: "hardware", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 48.00, LeadDays: 3},
		{Supplier: "Amazon", Price: 35.00, LeadDays: 5},
		{Supplier: "Grainger", Price: 45.00, LeadDays: 2},
	}},
	"flush_bolt": {category: "hardware", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 58.00, LeadDays: 3},
		{Supplier: "Amazon", Price: 42.00, LeadDays: 5},
		{Supplier: "Grainger", Price: 55.00, LeadDays: 2},
	}},
	// Mounting and misc
	"masonry_anchor_bolt": {category: "anchor", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 4.50, PartNumber: "97022A250", LeadDays: 3},
		{Supplier: "Amazon", Price: 2.99, LeadDays: 5},
		{Supplier: "Fastenal", Price: 3.75, LeadDays: 1},
	}},
	"wedge_anchor_bolt": {category: "anchor", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 3.80, LeadDays: 3},
		{Supplier: "Amazon", Price: 2.25, LeadDays: 5},
		{Supplier: "Fastenal", Price: 3.10, LeadDays: 1},
	}},
	"egress_quick_release": {category: "latch", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 68.00, LeadDays: 3},
		{Supplier: "Amazon", Price: 45.00, LeadDays: 5},
		{Supplier: "Grainger", Price: 62.00, LeadDays: 2},
	}},
	"leveling_foot": {category: "hardware", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 8.50, PartNumber: "6111K41", LeadDays: 3},
		{Supplier: "Amazon", Price: 4.99, LeadDays: 5},
		{Supplier: "Grainger", Price: 7.25, LeadDays: 2},
	}},
	"bollard_cap": {category: "hardware", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 24.00, LeadDays: 3},
		{Supplier: "Amazon", Price: 15.99, LeadDays: 5},
		{Supplier: "Grainger", Price: 21.00, LeadDays: 2},
	}},
	"wall_rail_bracket": {category: "railing_mount", options: []types.HardwareOption{
		{Supplier: "McMaster-Carr", Price: 16.50, LeadDays: 3},
		{Supplier: "Amazon", Price: 9.99, LeadDays: 5},
		{Supplier: "Grainger", Price: 14.00, LeadDays: 2},
	}},
}

// HardwareSourcer prices hardware items against the catalog and fills in
// sourcing metadata. Stateless; safe for concurrent use.
type HardwareSourcer struct{}

// NewHardwareSourcer creates a hardware sourcer.
func NewHardwareSourcer() *HardwareSourcer {
	return &HardwareSourcer{}
}

// Options returns the pricing options for a catalog key. Unknown keys get a
// single generic estimated option so a quote is never blocked on sourcing.
func (s *HardwareSourcer) Options(key string) []types.HardwareOption {
	desc := strings.ReplaceAll(key, "_", " ")

	var options []types.HardwareOption
	if entry, ok := hardwareCatalog[key]; ok {
		options = append(options, entry.options...)
	} else {
		options = []types.HardwareOption{{
			Supplier:  "McMaster-Carr",
			Price:     50.00,
			LeadDays:  3,
			Estimated: true,
		}}
	}

	fillMissingURLs(desc, options)
	return options
}

// Category returns the catalog category for a key, "hardware" when unknown.
func (s *HardwareSourcer) Category(key string) string {
	if entry, ok := hardwareCatalog[key]; ok {
		return entry.category
	}
	return "hardware"
}

// PriceHardware re-prices hardware items from the bill of materials against
// the catalog, matching by description. quantityMultiplier scales counts for
// batch jobs.
func (s *HardwareSourcer) PriceHardware(items []types.HardwareItem, quantityMultiplier int) []types.HardwareItem {
	priced := make([]types.HardwareItem, 0, len(items))
	for _, item := range items {
		upgraded := item
		if key := matchCatalogKey(item.Description); key != "" {
			if entry, ok := hardwareCatalog[key]; ok {
				upgraded.Options = append([]types.HardwareOption(nil), entry.options...)
			}
		} else {
			upgraded.Options = append([]types.HardwareOption(nil), item.Options...)
		}

		fillMissingURLs(item.Description, upgraded.Options)

		if quantityMultiplier > 1 {
			upgraded.Quantity = item.Quantity * quantityMultiplier
		}
		priced = append(priced, upgraded)
	}
	return priced
}

// SelectCheapest returns the lowest price and its supplier for an item.
// Items with no options at all price at zero with a warning label.
func (s *HardwareSourcer) SelectCheapest(item types.HardwareItem) (float64, string) {
	best := item.CheapestOption()
	if best == nil {
		return 0, "NO PRICE FOUND"
	}
	return best.Price, best.Supplier
}

// SuggestBulkDiscount returns an advisory note when the hardware total
// crosses the volume-pricing thresholds, empty otherwise.
func (s *HardwareSourcer) SuggestBulkDiscount(totalHardwareCost float64) string {
	if totalHardwareCost > 2000 {
		return fmt.Sprintf(
			"Hardware total is $%.2f - contact suppliers directly for bulk pricing. Potential savings: 10-20%%.",
			totalHardwareCost)
	}
	if totalHardwareCost > 500 {
		return fmt.Sprintf(
			"Hardware total is $%.2f - consider consolidating orders for volume discounts. Potential savings: 5-10%%.",
			totalHardwareCost)
	}
	return ""
}

// FlagMcMasterOnly returns descriptions of items whose only priced source
// is McMaster-Carr, candidates for manual re-sourcing.
func (s *HardwareSourcer) FlagMcMasterOnly(items []types.HardwareItem) []string {
	var flagged []string
	for _, item := range items {
		if len(item.Options) == 1 && item.Options[0].Supplier == "McMaster-Carr" {
			flagged = append(flagged, item.Description)
		}
	}
	return flagged
}

func fillMissingURLs(desc string, options []types.HardwareOption) {
	search := url.QueryEscape(desc)
	for i := range options {
		if options[i].URL != "" {
			continue
		}
		switch supplier := strings.ToLower(options[i].Supplier); {
		case strings.Contains(supplier, "mcmaster"):
			options[i].URL = "https://www.mcmaster.com/" + search
		case strings.Contains(supplier, "amazon"):
			options[i].URL = "https://www.amazon.com/s?k=" + search
		case strings.Contains(supplier, "grainger"):
			options[i].URL = "https://www.grainger.com/search?searchQuery=" + search
		case strings.Contains(supplier, "gate depot"):
			options[i].URL = "https://www.gatedepot.com/search?q=" + search
		}
	}
}

// matchCatalogKey maps a free-text hardware description to a catalog key,
// empty when nothing matches.
func matchCatalogKey(description string) string {
	desc := strings.ToLower(description)

	switch {
	// Gate operators
	case strings.Contains(desc, "la412"),
		strings.Contains(desc, "liftmaster") && strings.Contains(desc, "operator"):
		return "liftmaster_la412"
	case strings.Contains(desc, "patriot"), strings.Contains(desc, "us automatic"):
		return "us_automatic_patriot"
	case strings.Contains(desc, "rsw12u"):
		return "liftmaster_rsw12u"
	case strings.Contains(desc, "csw24u"):
		return "liftmaster_csw24u"
	// Roller carriages
	case strings.Contains(desc, "roller") && strings.Contains(desc, "carriage"):
		if strings.Contains(desc, "heavy") {
			return "roller_carriage_heavy"
		}
		return "roller_carriage_standard"
	// Hinges
	case strings.Contains(desc, "hinge"):
		switch {
		case strings.Contains(desc, "spring"):
			return "spring_hinge_pair"
		case strings.Contains(desc, "ball bearing"):
			return "ball_bearing_hinge_pair"
		case strings.Contains(desc, "heavy"):
			return "heavy_duty_weld_hinge_pair"
		}
		return "standard_weld_hinge_pair"
	// Latches
	case strings.Contains(desc, "gravity") && strings.Contains(desc, "latch"):
		return "gravity_latch"
	case strings.Contains(desc, "magnetic") && strings.Contains(desc, "latch"):
		return "magnetic_latch"
	case strings.Contains(desc, "deadbolt"), strings.Contains(desc, "keyed"):
		return "keyed_deadbolt"
	case strings.Contains(desc, "pool") && strings.Contains(desc, "latch"):
		return "pool_code_latch"
	case strings.Contains(desc, "electric") && strings.Contains(desc, "strike"):
		return "electric_strike"
	// Auto-close
	case strings.Contains(desc, "hydraulic") && strings.Contains(desc, "closer"):
		return "hydraulic_closer"
	// Center stop hardware
	case strings.Contains(desc, "cane bolt"):
		return "cane_bolt"
	case strings.Contains(desc, "drop rod"):
		return "surface_drop_rod"
	case strings.Contains(desc, "flush bolt"):
		return "flush_bolt"
	// Gate stops
	case strings.Contains(desc, "stop"), strings.Contains(desc, "bumper"):
		return "gate_stop"
	// Railing
	case strings.Contains(desc, "flange"), strings.Contains(desc, "surface mount"):
		return "surface_mount_flange"
	case strings.Contains(desc, "tensioner"):
		return "cable_tensioner"
	case strings.Contains(desc, "end fitting"):
		return "cable_end_fitting"
	}
	return ""
}
