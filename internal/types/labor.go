package types

// LaborProcess is one of the canonical work-process buckets. Every labor
// estimate covers this fixed enumeration; hours may be zero but the bucket
// ordering is stable.
type LaborProcess string

// Canonical process buckets, in pipeline order.
const (
	ProcLayoutSetup     LaborProcess = "layout_setup"
	ProcCutPrep         LaborProcess = "cut_prep"
	ProcFitTack         LaborProcess = "fit_tack"
	ProcFullWeld        LaborProcess = "full_weld"
	ProcGrindClean      LaborProcess = "grind_clean"
	ProcFinishPrep      LaborProcess = "finish_prep"
	ProcClearcoat       LaborProcess = "clearcoat"
	ProcPaint           LaborProcess = "paint"
	ProcHardwareInstall LaborProcess = "hardware_install"
	ProcSiteInstall     LaborProcess = "site_install"
	ProcFinalInspection LaborProcess = "final_inspection"
)

// LaborProcesses lists the canonical buckets in their stable order.
var LaborProcesses = []LaborProcess{
	ProcLayoutSetup,
	ProcCutPrep,
	ProcFitTack,
	ProcFullWeld,
	ProcGrindClean,
	ProcFinishPrep,
	ProcClearcoat,
	ProcPaint,
	ProcHardwareInstall,
	ProcSiteInstall,
	ProcFinalInspection,
}

// LaborLine is the hour estimate for one process bucket.
type LaborLine struct {
	Process LaborProcess `json:"process"`
	Hours   float64      `json:"hours"`
	Rate    float64      `json:"rate"`
	Note    string       `json:"note,omitempty"`
}

// LaborEstimate covers the full bucket enumeration for one job. TotalHours
// is always the arithmetic sum of the lines; it is never taken from an
// external response.
type LaborEstimate struct {
	Lines      []LaborLine `json:"lines"`
	TotalHours float64     `json:"total_hours"`
	Method     string      `json:"method"`
	Flagged    bool        `json:"flagged"`
	FlagReason string      `json:"flag_reason,omitempty"`
}

// SumHours recomputes the total from the per-bucket lines.
func (e LaborEstimate) SumHours() float64 {
	var total float64
	for _, l := range e.Lines {
		total += l.Hours
	}
	return Round2(total)
}

// Cost returns the labor subtotal in dollars (hours times rate per line).
func (e LaborEstimate) Cost() float64 {
	var total float64
	for _, l := range e.Lines {
		total += l.Hours * l.Rate
	}
	return Round2(total)
}

// HoursFor returns the hours booked against one bucket, zero if absent.
func (e LaborEstimate) HoursFor(p LaborProcess) float64 {
	for _, l := range e.Lines {
		if l.Process == p {
			return l.Hours
		}
	}
	return 0
}
