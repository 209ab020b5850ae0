package labor

import (
	"fmt"
	"strings"

	"github.com/fabforge/fabquote/internal/types"
)

// Field keys summarized in the prompt when present.
var promptDimensionKeys = []string{
	"clear_width", "height", "linear_feet", "panel_config",
	"total_rise", "total_run", "stair_angle", "description",
}

var tigIndicators = []string{
	"ground smooth", "blended", "furniture finish", "show quality",
	"visible welds", "tig", "glass top", "grind flush", "grind smooth",
	"seamless", "showroom", "polished", "mirror finish",
	"stainless", "aluminum", "chrome", "brushed finish",
}

// buildPrompt renders the structured labor-estimation prompt. The response
// contract is per-process hours; the model is explicitly told never to
// return a total.
func (e *Estimator) buildPrompt(bom types.BillOfMaterials, params types.QuoteParams, onsite bool) string {
	f := params.Fields

	pieceCount := bom.PieceCount()
	hardwareCount := 0
	var hardwareLines []string
	for _, h := range bom.Hardware {
		hardwareCount += h.Quantity
		hardwareLines = append(hardwareLines, fmt.Sprintf("  - %s (qty: %d)", h.Description, h.Quantity))
	}

	var dimensionLines []string
	for _, key := range promptDimensionKeys {
		if v := f[key]; v != "" {
			if len(v) > 200 {
				v = v[:200] + "..."
			}
			dimensionLines = append(dimensionLines, fmt.Sprintf("  - %s: %s", key, v))
		}
	}

	var materialLines []string
	for i, it := range bom.Items {
		if i >= 20 {
			break
		}
		materialLines = append(materialLines, fmt.Sprintf("  - %s (qty: %d, cut: %s)", it.Description, it.Quantity, it.CutType))
	}

	finish := orText(f["finish"], "raw")
	install := installIncluded(f)

	allText := strings.ToLower(strings.Join(fieldValues(f), " ") + " " + params.Description + " " + params.Notes)
	needsTIG := bom.WeldProcess == types.WeldTIG
	for _, ind := range tigIndicators {
		if strings.Contains(allText, ind) {
			needsTIG = true
			break
		}
	}
	isStainless := strings.Contains(allText, "stainless") || strings.Contains(allText, "304") || strings.Contains(allText, "316")
	isAluminum := strings.Contains(allText, "aluminum") || strings.Contains(allText, "6061")

	return fmt.Sprintf(`You are an expert metal fabrication labor estimator with 20+ years of shop experience.

TASK: Estimate labor hours per process for a %s fabrication job.

JOB SUMMARY:
  Job type: %s
  Total material pieces: %d
  Total weight: %.1f lbs
  Total weld linear inches: %.1f
  Total surface area (for finishing): %.1f sq ft
  Hardware items to install: %d
  Finish type: %s
  Installation included: %s
  On-site work (entire job): %s

KEY DIMENSIONS AND DESCRIPTION:
%s

MATERIAL LIST:
%s

HARDWARE:
%s

=== WELD PROCESS DETERMINATION ===
%s

=== LABOR ESTIMATION GUIDANCE ===

PROCESS-BY-PROCESS RULES OF THUMB:

1. layout_setup (0.5-2.0 hrs):
   - Simple railing/fence = 0.5 hr
   - Complex gate/stair = 1.0-1.5 hrs
   - Custom furniture with patterns = 1.5-2.0 hrs
   - Includes: reading drawings, measuring, marking, squaring table

2. cut_prep:
   - Square cuts: ~3 min per cut (chop saw)
   - Miter cuts: ~5 min per cut (requires angle setup)
   - Cope cuts: ~8-10 min per cut (requires notcher or hand work)
   - Scale with piece count: %d pieces total

3. fit_tack (MOST VARIABLE, think carefully):
   - Simple rectangular frame = 1-2 hrs
   - Complex assembly (gate with infill) = 3-5 hrs
   - Pattern work (repeating pickets/slats) = add 2-3 min per piece
   - Furniture with precision fits = 4-8 hrs
   - Stair with multiple treads = 4-8 hrs

4. full_weld:
   - MIG on mild steel: 8-15 linear inches per hour
   - TIG on mild steel: 4-8 linear inches per hour (2-3x slower)
   - TIG on stainless: 3-6 linear inches per hour (add back-purge time)
   - Total weld inches for this job: %.1f

5. grind_clean:
   - Standard (MIG, painted finish): 30-40%% of weld time
   - Ground smooth (TIG visible): 75-100%% of weld time
   - Blended/seamless joints: 100-150%% of weld time

6. finish_prep: 0.5-1.0 hr for paint prep. 0 for raw. 0.25 for powder coat prep (outsourced).
7. clearcoat: ~0.5 hr per 50 sq ft. 0 if not clearcoat.
8. paint: ~0.75 hr per 50 sq ft (primer + topcoat). 0 if not paint.
9. hardware_install: ~15-30 min per simple item. 1-2 hrs for motor/operator.
10. site_install: 2-4 hrs railing, 4-8 hrs gate w/ concrete, 6-12 hrs stairs. 0 if no install.
11. final_inspection: 0.25-0.5 hrs always.

REASONABLENESS CHECK:
  - Cantilever gate with motor + install: 16-28 total hours
  - 40 LF railing with install: 12-20 total hours
  - Stair railing 12 ft with install: 10-16 total hours
  - Custom table (TIG, ground smooth): 12-20 total hours
  - Decorative repair: 2-6 total hours
  If your estimate is significantly outside these ranges, explain why.

CRITICAL RULES:
  1. Return hours for ALL 11 processes. Use 0.0 if not applicable.
  2. Do NOT return a total. The system computes the total.
  3. Include a brief "notes" for each process explaining your reasoning.
  4. If finish is "raw": clearcoat=0, paint=0, finish_prep=0.
  5. If finish is "powder_coat" or "galvanized": clearcoat=0, paint=0 (outsourced).
  6. If no installation: site_install=0.

Return ONLY valid JSON:
{
    "layout_setup": {"hours": 1.5, "notes": "reason"},
    "cut_prep": {"hours": 2.0, "notes": "reason"},
    "fit_tack": {"hours": 3.0, "notes": "reason"},
    "full_weld": {"hours": 4.0, "notes": "reason"},
    "grind_clean": {"hours": 1.5, "notes": "reason"},
    "finish_prep": {"hours": 1.0, "notes": "reason"},
    "clearcoat": {"hours": 0.0, "notes": "reason"},
    "paint": {"hours": 0.0, "notes": "reason"},
    "hardware_install": {"hours": 2.0, "notes": "reason"},
    "site_install": {"hours": 6.0, "notes": "reason"},
    "final_inspection": {"hours": 0.5, "notes": "reason"}
}`,
		params.JobType, params.JobType,
		pieceCount, bom.TotalWeightLbs, bom.WeldLinearInches, bom.TotalSqFt,
		hardwareCount, finish,
		yesNo(install), yesNo(onsite),
		orText(strings.Join(dimensionLines, "\n"), "  (none specified)"),
		orText(strings.Join(materialLines, "\n"), "  (no materials)"),
		orText(strings.Join(hardwareLines, "\n"), "  (no hardware)"),
		weldProcessSection(needsTIG, isStainless, isAluminum, bom.WeldLinearInches),
		pieceCount, bom.WeldLinearInches,
	)
}

// weldProcessSection explains the TIG/MIG determination, the single biggest
// labor driver.
func weldProcessSection(needsTIG, isStainless, isAluminum bool, weldInches float64) string {
	var lines []string
	if needsTIG {
		lines = append(lines, "** THIS JOB REQUIRES TIG WELDING **", "")
		switch {
		case isStainless:
			lines = append(lines,
				"Material: STAINLESS STEEL",
				"  - TIG required. MIG on stainless produces poor corrosion resistance",
				"  - Back-purge required on closed joints (adds 20-30% to weld time)",
				"  - Stainless labor multiplier: 1.3x on ALL processes (harder to work with)",
				"  - Post-weld passivation needed (add to finish_prep)")
		case isAluminum:
			lines = append(lines,
				"Material: ALUMINUM",
				"  - TIG or pulse-MIG required. Standard MIG won't work",
				"  - Aluminum labor multiplier: 1.2x (different technique, more setup)",
				"  - Requires AC TIG with argon gas, 4043 or 5356 filler")
		default:
			lines = append(lines,
				"Material: MILD STEEL with TIG finish requirements",
				"  - Visible joints need TIG for clean appearance",
				"  - Hidden structural joints can use MIG (faster)",
				"  - Ground/blended welds add significant grind_clean time")
		}
		lines = append(lines, "",
			"TIG WELDING RATE: 4-8 linear inches per hour (vs 8-15 for MIG)",
			"GRIND TIME: 75-100% of weld time for ground smooth finish",
			fmt.Sprintf("Estimated weld inches: %.0f. At TIG rate: %.1f-%.1f welding hours",
				weldInches, weldInches/8.0, weldInches/4.0))
	} else {
		lines = append(lines,
			"Standard mild steel. MIG welding (default)",
			"MIG WELDING RATE: 8-15 linear inches per hour",
			fmt.Sprintf("Estimated weld inches: %.0f. At MIG rate: %.1f-%.1f welding hours",
				weldInches, weldInches/15.0, weldInches/8.0))
	}
	return strings.Join(lines, "\n")
}

func fieldValues(f types.AnsweredFields) []string {
	values := make([]string, 0, len(f))
	for _, v := range f {
		values = append(values, v)
	}
	return values
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orText(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
