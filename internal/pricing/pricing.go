// Package pricing assembles the final priced quote. Pure arithmetic over the
// upstream stage outputs: quantity times price, hours times rate, subtotal
// times markup. No AI calls happen here.
package pricing

import (
	"fmt"
	"strings"

	"github.com/fabforge/fabquote/internal/catalog"
	"github.com/fabforge/fabquote/internal/labor"
	"github.com/fabforge/fabquote/internal/types"
)

// DefaultMarkup is applied when the caller does not select a valid option.
const DefaultMarkup = 15

// BulkMaterialThreshold is the material subtotal above which a supplier
// bulk-rate advisory is added.
const BulkMaterialThreshold = 5000.00

// Engine builds priced quotes from upstream stage outputs.
type Engine struct {
	hardware *catalog.HardwareSourcer
}

// NewEngine creates a pricing engine backed by the hardware catalog.
func NewEngine(hardware *catalog.HardwareSourcer) *Engine {
	return &Engine{hardware: hardware}
}

// Price assembles the priced quote. The five category subtotals are computed
// here; the grand total is the subtotal scaled by the selected markup.
func (e *Engine) Price(bom types.BillOfMaterials, laborEst types.LaborEstimate, finish types.FinishingSection, params types.QuoteParams, markupPct int) types.PricedQuote {
	pricedHardware := e.hardware.PriceHardware(bom.Hardware, 1)
	consumables := e.hardware.EstimateConsumables(bom.WeldLinearInches, bom.TotalSqFt, params.Fields["finish"])

	materialSubtotal := bom.MaterialSubtotal()
	hardwareSubtotal := e.hardwareSubtotal(pricedHardware)
	consumableSubtotal := consumableSubtotal(consumables)
	laborSubtotal := laborEst.Cost()
	finishingSubtotal := types.Round2(finish.Total)

	subtotal := types.Round2(materialSubtotal + hardwareSubtotal + consumableSubtotal + laborSubtotal + finishingSubtotal)

	markupTotals := make(map[int]float64, len(types.MarkupOptions))
	for _, pct := range types.MarkupOptions {
		markupTotals[pct] = totalAtMarkup(subtotal, pct)
	}
	if !validMarkup(markupPct) {
		markupPct = DefaultMarkup
	}

	quote := types.PricedQuote{
		JobType:            bom.JobType,
		Materials:          bom.Items,
		Hardware:           pricedHardware,
		Consumables:        consumables,
		Labor:              laborEst,
		Finishing:          finish,
		MaterialSubtotal:   materialSubtotal,
		HardwareSubtotal:   hardwareSubtotal,
		ConsumableSubtotal: consumableSubtotal,
		LaborSubtotal:      laborSubtotal,
		FinishingSubtotal:  finishingSubtotal,
		Subtotal:           subtotal,
		SelectedMarkup:     markupPct,
		MarkupTotals:       markupTotals,
		GrandTotal:         markupTotals[markupPct],
		Assumptions:        e.buildAssumptions(bom, laborEst, pricedHardware, consumables, materialSubtotal, hardwareSubtotal, consumableSubtotal),
		Exclusions:         buildExclusions(bom.JobType, params.Fields),
	}
	return quote
}

// RecalculateMarkup re-derives the grand total for a new markup selection.
// It touches only the selection and the grand total, so it is safe to apply
// repeatedly to a frozen quote.
func RecalculateMarkup(quote *types.PricedQuote, markupPct int) error {
	if !validMarkup(markupPct) {
		return fmt.Errorf("invalid markup %d%%: must be one of %v", markupPct, types.MarkupOptions)
	}
	quote.SelectedMarkup = markupPct
	if total, ok := quote.MarkupTotals[markupPct]; ok {
		quote.GrandTotal = total
		return nil
	}
	quote.GrandTotal = totalAtMarkup(quote.Subtotal, markupPct)
	return nil
}

func (e *Engine) hardwareSubtotal(items []types.HardwareItem) float64 {
	var total float64
	for _, item := range items {
		price, _ := e.hardware.SelectCheapest(item)
		total += price * float64(item.Quantity)
	}
	return types.Round2(total)
}

func consumableSubtotal(items []types.ConsumableItem) float64 {
	var total float64
	for _, c := range items {
		total += c.LineTotal
	}
	return types.Round2(total)
}

func totalAtMarkup(subtotal float64, pct int) float64 {
	return types.Round2(subtotal * (1 + float64(pct)/100.0))
}

func validMarkup(pct int) bool {
	for _, opt := range types.MarkupOptions {
		if pct == opt {
			return true
		}
	}
	return false
}

// buildAssumptions collects the pricing-stage advisories plus everything the
// calculation stage recorded, deduplicated.
func (e *Engine) buildAssumptions(bom types.BillOfMaterials, laborEst types.LaborEstimate, hardware []types.HardwareItem, consumables []types.ConsumableItem, materialSubtotal, hardwareSubtotal, consumableSubtotal float64) []string {
	assumptions := []string{
		"Material prices based on market averages; update with supplier quotes for accuracy.",
	}

	if laborEst.Method == labor.MethodRuleBased {
		assumptions = append(assumptions,
			"Labor hours estimated by rule-based fallback; the AI estimator was unavailable. Consider re-running when available.")
	} else {
		assumptions = append(assumptions,
			"Labor hours estimated by AI with fabrication-domain guidance.")
	}

	assumptions = append(assumptions,
		"Hardware prices from catalog data; verify availability and current pricing before ordering.")

	if len(consumables) > 0 {
		assumptions = append(assumptions,
			fmt.Sprintf("Consumables estimated at $%.2f based on weld volume and finish area.", consumableSubtotal))
	}

	for _, a := range bom.Assumptions {
		if !containsString(assumptions, a) {
			assumptions = append(assumptions, a)
		}
	}

	if laborEst.Flagged {
		reason := laborEst.FlagReason
		if reason == "" {
			reason = "Variance detected"
		}
		assumptions = append(assumptions, "FLAGGED: "+reason)
	}

	if materialSubtotal > BulkMaterialThreshold {
		assumptions = append(assumptions, fmt.Sprintf(
			"Material cost exceeds $%.0f ($%.2f); recommend negotiating a bulk rate with the supplier for potential 5-15%% savings.",
			BulkMaterialThreshold, materialSubtotal))
	}

	if note := e.hardware.SuggestBulkDiscount(hardwareSubtotal); note != "" {
		assumptions = append(assumptions, note)
	}

	if only := e.hardware.FlagMcMasterOnly(hardware); len(only) > 0 {
		assumptions = append(assumptions, fmt.Sprintf(
			"McMaster-Carr only source for: %s. Consider sourcing alternatives for cost savings.",
			strings.Join(only, ", ")))
	}

	return assumptions
}

// buildExclusions returns the baseline exclusions plus job-type conditionals.
func buildExclusions(jobType types.JobType, fields types.AnsweredFields) []string {
	exclusions := []string{
		"Permit fees and engineering review",
		"Demolition or removal of existing work (unless explicitly included)",
	}

	jt := string(jobType)

	if strings.Contains(jt, "gate") {
		exclusions = append(exclusions, "Concrete work beyond post holes")
		if strings.Contains(strings.ToLower(fields["has_motor"]), "yes") {
			exclusions = append(exclusions,
				"Electrical wiring for gate operator (we mount the operator; electrician handles wiring)")
		}
	}

	install := strings.ToLower(firstNonEmpty(fields["installation"], fields["install_included"]))
	if strings.Contains(install, "install") {
		exclusions = append(exclusions, "Touch-up after other trades complete their work")
	}

	if strings.Contains(jt, "railing") || strings.Contains(jt, "stair") {
		exclusions = append(exclusions, "Concrete or structural modifications to mount surfaces")
	}

	if strings.Contains(jt, "repair") {
		exclusions = append(exclusions,
			"Additional damage discovered during disassembly",
			"Matching existing finish; exact color match not guaranteed")
	}

	return exclusions
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
