// Package labor estimates fabrication labor hours per process bucket. The
// primary path asks the AI provider for a per-process breakdown; a rule-based
// fallback keeps the pipeline working when the provider is down. Totals are
// always computed by summing the buckets, never taken from a response.
package labor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fabforge/fabquote/config"
	"github.com/fabforge/fabquote/internal/ai"
	"github.com/fabforge/fabquote/internal/logger"
	"github.com/fabforge/fabquote/internal/types"
)

// Estimation methods recorded on the estimate.
const (
	MethodAI        = "ai"
	MethodRuleBased = "rule_based"
)

// Rates carries the billable labor rates in dollars per hour.
type Rates struct {
	Shop float64
	Site float64
}

// DefaultRates loads the shop and site rates from configuration.
func DefaultRates() Rates {
	return Rates{Shop: config.ShopRate(), Site: config.SiteRate()}
}

// Estimator produces labor estimates from a bill of materials and the
// answered quote fields.
type Estimator struct {
	provider ai.Provider
	rates    Rates
}

// NewEstimator creates a labor estimator. A nil provider disables the AI
// path; every estimate then uses the rule-based calculation.
func NewEstimator(provider ai.Provider, rates Rates) *Estimator {
	return &Estimator{provider: provider, rates: rates}
}

// Estimate returns the labor estimate for a job. It never fails: any AI
// error falls back to the rule-based calculation.
func (e *Estimator) Estimate(ctx context.Context, bom types.BillOfMaterials, params types.QuoteParams) types.LaborEstimate {
	onsite := isOnsiteJob(params)

	if e.provider != nil {
		est, err := e.aiEstimate(ctx, bom, params, onsite)
		if err == nil {
			return est
		}
		logger.Warnf("AI labor estimate failed for %s, using rules: %v", params.JobType, err)
	}
	return e.ruleEstimate(bom, params, onsite)
}

// aiEstimate runs the AI path: structured prompt in, per-process JSON out.
func (e *Estimator) aiEstimate(ctx context.Context, bom types.BillOfMaterials, params types.QuoteParams, onsite bool) (types.LaborEstimate, error) {
	response, err := e.provider.Complete(ctx, e.buildPrompt(bom, params, onsite))
	if err != nil {
		return types.LaborEstimate{}, err
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(ai.ExtractJSONObject(response)), &parsed); err != nil {
		return types.LaborEstimate{}, fmt.Errorf("unparseable labor response: %w", err)
	}

	// Some responses arrive wrapped in a single outer key.
	if len(parsed) == 1 {
		for _, raw := range parsed {
			var inner map[string]json.RawMessage
			if err := json.Unmarshal(raw, &inner); err == nil {
				if _, ok := inner[string(types.ProcLayoutSetup)]; ok {
					parsed = inner
				}
			}
		}
	}

	lines := make([]types.LaborLine, 0, len(types.LaborProcesses))
	for _, proc := range types.LaborProcesses {
		hours, note := parseProcessEntry(parsed[string(proc)])
		if hours < 0 {
			hours = 0
		}
		lines = append(lines, types.LaborLine{
			Process: proc,
			Hours:   types.Round2(hours),
			Rate:    e.rateFor(proc, onsite),
			Note:    note,
		})
	}

	est := types.LaborEstimate{Lines: lines, Method: MethodAI}
	est.TotalHours = est.SumHours()
	return est, nil
}

// parseProcessEntry accepts either {"hours": 1.5, "notes": "..."} or a bare
// number for one process bucket.
func parseProcessEntry(raw json.RawMessage) (float64, string) {
	if len(raw) == 0 {
		return 0, ""
	}
	var entry struct {
		Hours float64 `json:"hours"`
		Notes string  `json:"notes"`
	}
	if err := json.Unmarshal(raw, &entry); err == nil {
		return entry.Hours, entry.Notes
	}
	var hours float64
	if err := json.Unmarshal(raw, &hours); err == nil {
		return hours, ""
	}
	return 0, ""
}

// ruleEstimate is the deterministic fallback, conservative by design.
func (e *Estimator) ruleEstimate(bom types.BillOfMaterials, params types.QuoteParams, onsite bool) types.LaborEstimate {
	f := params.Fields
	pieces := bom.PieceCount()
	weldIn := bom.WeldLinearInches
	sqft := bom.TotalSqFt
	finish := strings.ToLower(firstNonEmpty(f["finish"], f["finish_type"], "raw"))
	install := installIncluded(f)

	hardwareCount := 0
	motorInstall := 0.0
	for _, h := range bom.Hardware {
		hardwareCount += h.Quantity
		desc := strings.ToLower(h.Description)
		if strings.Contains(desc, "operator") || strings.Contains(desc, "motor") {
			motorInstall += 1.5
		}
	}

	layout := clamp(float64(pieces)*0.05+0.5, 0.5, 2.0)
	cutPrep := maxf(0.25, float64(pieces)*0.08)
	fitTack := maxf(0.5, float64(pieces)*0.12)

	// TIG runs less than half MIG speed.
	weldSpeed := 10.0
	if bom.WeldProcess == types.WeldTIG {
		weldSpeed = 4.0
	}
	fullWeld := maxf(0.25, weldIn/weldSpeed)
	grindClean := maxf(0.25, fullWeld*0.4)

	var finishPrep, clearcoat, paint float64
	switch {
	case strings.Contains(finish, "clear"):
		finishPrep = maxf(0.5, sqft/100.0)
		clearcoat = maxf(0.25, sqft/50.0*0.5)
	case strings.Contains(finish, "paint") && !strings.Contains(finish, "powder"):
		finishPrep = maxf(0.5, sqft/80.0)
		paint = maxf(0.25, sqft/50.0*0.75)
	case strings.Contains(finish, "powder"):
		finishPrep = maxf(0.25, sqft/100.0) // Coating itself is outsourced
	case strings.Contains(finish, "galv"):
		// Outsourced end to end
	case strings.Contains(finish, "raw"):
		// No finish work
	default:
		// Unknown finish reads as paint
		finishPrep = maxf(0.5, sqft/80.0)
		paint = maxf(0.25, sqft/50.0*0.75)
	}

	hardwareInstall := float64(hardwareCount)*0.4 + motorInstall

	siteInstall := 0.0
	if install {
		switch weight := bom.TotalWeightLbs; {
		case weight < 200:
			siteInstall = 3.0
		case weight < 500:
			siteInstall = 5.0
		case weight < 1000:
			siteInstall = 7.0
		default:
			siteInstall = 10.0
		}
		if strings.Contains(strings.ToLower(f["mounting"]+" "+f["post_concrete"]), "concrete") {
			siteInstall += 2.0
		}
	}

	note := "Rule-based estimate"
	hours := map[types.LaborProcess]struct {
		h    float64
		note string
	}{
		types.ProcLayoutSetup:     {layout, fmt.Sprintf("%s. %d pieces, complexity-scaled.", note, pieces)},
		types.ProcCutPrep:         {cutPrep, fmt.Sprintf("%s. %d pieces at ~5 min each.", note, pieces)},
		types.ProcFitTack:         {fitTack, fmt.Sprintf("%s. %d pieces at ~7 min each.", note, pieces)},
		types.ProcFullWeld:        {fullWeld, fmt.Sprintf("%s. %.0f linear inches at %.0f in/hr.", note, weldIn, weldSpeed)},
		types.ProcGrindClean:      {grindClean, note + ". 40% of weld time."},
		types.ProcFinishPrep:      {finishPrep, fmt.Sprintf("%s. Finish: %s.", note, finish)},
		types.ProcClearcoat:       {clearcoat, fmt.Sprintf("%s. %.0f sq ft.", note, sqft)},
		types.ProcPaint:           {paint, fmt.Sprintf("%s. %.0f sq ft.", note, sqft)},
		types.ProcHardwareInstall: {hardwareInstall, fmt.Sprintf("%s. %d hardware items.", note, hardwareCount)},
		types.ProcSiteInstall:     {siteInstall, siteInstallNote(note, install)},
		types.ProcFinalInspection: {0.5, note + ". Standard walkthrough and touch-up."},
	}

	lines := make([]types.LaborLine, 0, len(types.LaborProcesses))
	for _, proc := range types.LaborProcesses {
		entry := hours[proc]
		lines = append(lines, types.LaborLine{
			Process: proc,
			Hours:   types.Round2(maxf(entry.h, 0)),
			Rate:    e.rateFor(proc, onsite),
			Note:    entry.note,
		})
	}

	est := types.LaborEstimate{Lines: lines, Method: MethodRuleBased}
	est.TotalHours = est.SumHours()
	return est
}

// rateFor applies the shop rate to in-shop work and the site rate to site
// installation. A fully on-site job bills every process at the site rate.
func (e *Estimator) rateFor(proc types.LaborProcess, onsite bool) float64 {
	if onsite || proc == types.ProcSiteInstall {
		return e.rates.Site
	}
	return e.rates.Shop
}

// isOnsiteJob reports whether the whole job happens in the field, which is
// true for repairs that cannot come to the shop.
func isOnsiteJob(params types.QuoteParams) bool {
	loc := strings.ToLower(params.Fields["repair_location"])
	if strings.Contains(loc, "on site") || strings.Contains(loc, "on-site") || strings.Contains(loc, "in place") {
		return true
	}
	return false
}

// installIncluded reads the various install answers used across the trees.
func installIncluded(f types.AnsweredFields) bool {
	v := strings.ToLower(firstNonEmpty(f["installation"], f["install"], f["install_included"]))
	return strings.Contains(v, "install") || strings.Contains(v, "yes")
}

func siteInstallNote(note string, install bool) string {
	if install {
		return note + ". Installation included."
	}
	return note + ". Installation not included."
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
