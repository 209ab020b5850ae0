// Package pdf renders a priced quote into a customer-facing PDF document.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/fabforge/fabquote/internal/types"
)

// Document is everything the renderer needs to produce one quote PDF.
type Document struct {
	QuoteNumber        string
	CreatedAt          time.Time
	ProjectDescription string
	Priced             types.PricedQuote
}

// Renderer produces quote PDFs. The zero value is not usable; call
// NewRenderer.
type Renderer struct {
	shopName string
}

// NewRenderer creates a renderer. shopName appears in the document header;
// empty falls back to a generic title.
func NewRenderer(shopName string) *Renderer {
	if shopName == "" {
		shopName = "Fabrication Quote"
	}
	return &Renderer{shopName: shopName}
}

// Render produces the PDF bytes for one quote.
func (r *Renderer) Render(doc Document) ([]byte, error) {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetMargins(10, 10, 10)
	p.AddPage()

	r.header(p, doc)
	r.materials(p, doc.Priced)
	r.hardware(p, doc.Priced)
	r.consumables(p, doc.Priced)
	r.labor(p, doc.Priced)
	r.finishing(p, doc.Priced)
	r.totals(p, doc.Priced)
	r.notes(p, doc.Priced)
	r.footer(p)

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render quote PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) header(p *gofpdf.Fpdf, doc Document) {
	p.SetFont("Arial", "B", 18)
	p.Cell(190, 10, r.shopName)
	p.Ln(12)

	p.SetFont("Arial", "B", 11)
	p.Cell(95, 6, fmt.Sprintf("Quote No: %s", doc.QuoteNumber))
	p.Cell(95, 6, fmt.Sprintf("Date: %s", doc.CreatedAt.Format("02-Jan-2006")))
	p.Ln(6)
	p.SetFont("Arial", "", 10)
	p.Cell(95, 6, fmt.Sprintf("Job Type: %s", jobTypeTitle(string(doc.Priced.JobType))))
	p.Ln(8)

	if doc.ProjectDescription != "" {
		p.SetFont("Arial", "B", 11)
		p.Cell(190, 6, "Project")
		p.Ln(6)
		p.SetFont("Arial", "", 10)
		p.MultiCell(190, 5, doc.ProjectDescription, "", "L", false)
		p.Ln(3)
	}
}

func (r *Renderer) materials(p *gofpdf.Fpdf, q types.PricedQuote) {
	if len(q.Materials) == 0 {
		return
	}
	r.sectionTitle(p, "Materials")
	r.tableHeader(p, []col{{95, "Item", "L"}, {20, "Qty", "C"}, {25, "Length", "C"}, {25, "Unit", "R"}, {25, "Total", "R"}})

	p.SetFont("Arial", "", 9)
	for _, m := range q.Materials {
		p.CellFormat(95, 7, trim(m.Description, 58), "1", 0, "L", false, 0, "")
		p.CellFormat(20, 7, fmt.Sprintf("%d", m.Quantity), "1", 0, "C", false, 0, "")
		p.CellFormat(25, 7, fmt.Sprintf("%.1f in", m.LengthInches), "1", 0, "C", false, 0, "")
		p.CellFormat(25, 7, fmt.Sprintf("$%.2f", m.UnitPrice), "1", 0, "R", false, 0, "")
		p.CellFormat(25, 7, fmt.Sprintf("$%.2f", m.LineTotal), "1", 1, "R", false, 0, "")
	}
	r.subtotalRow(p, "Material Subtotal", q.MaterialSubtotal)
}

func (r *Renderer) hardware(p *gofpdf.Fpdf, q types.PricedQuote) {
	if len(q.Hardware) == 0 {
		return
	}
	r.sectionTitle(p, "Hardware")
	r.tableHeader(p, []col{{95, "Item", "L"}, {20, "Qty", "C"}, {50, "Supplier", "L"}, {25, "Total", "R"}})

	p.SetFont("Arial", "", 9)
	for _, h := range q.Hardware {
		supplier := ""
		lineTotal := 0.0
		if best := h.CheapestOption(); best != nil {
			supplier = best.Supplier
			lineTotal = best.Price * float64(h.Quantity)
		}
		p.CellFormat(95, 7, trim(h.Description, 58), "1", 0, "L", false, 0, "")
		p.CellFormat(20, 7, fmt.Sprintf("%d", h.Quantity), "1", 0, "C", false, 0, "")
		p.CellFormat(50, 7, trim(supplier, 30), "1", 0, "L", false, 0, "")
		p.CellFormat(25, 7, fmt.Sprintf("$%.2f", lineTotal), "1", 1, "R", false, 0, "")
	}
	r.subtotalRow(p, "Hardware Subtotal", q.HardwareSubtotal)
}

func (r *Renderer) consumables(p *gofpdf.Fpdf, q types.PricedQuote) {
	if len(q.Consumables) == 0 {
		return
	}
	r.sectionTitle(p, "Consumables")
	r.tableHeader(p, []col{{115, "Item", "L"}, {25, "Qty", "C"}, {25, "Unit", "R"}, {25, "Total", "R"}})

	p.SetFont("Arial", "", 9)
	for _, c := range q.Consumables {
		p.CellFormat(115, 7, trim(c.Description, 70), "1", 0, "L", false, 0, "")
		p.CellFormat(25, 7, fmt.Sprintf("%d %s", c.Quantity, c.Unit), "1", 0, "C", false, 0, "")
		p.CellFormat(25, 7, fmt.Sprintf("$%.2f", c.UnitPrice), "1", 0, "R", false, 0, "")
		p.CellFormat(25, 7, fmt.Sprintf("$%.2f", c.LineTotal), "1", 1, "R", false, 0, "")
	}
	r.subtotalRow(p, "Consumable Subtotal", q.ConsumableSubtotal)
}

func (r *Renderer) labor(p *gofpdf.Fpdf, q types.PricedQuote) {
	r.sectionTitle(p, "Labor")
	r.tableHeader(p, []col{{95, "Process", "L"}, {30, "Hours", "C"}, {30, "Rate", "R"}, {35, "Total", "R"}})

	p.SetFont("Arial", "", 9)
	for _, l := range q.Labor.Lines {
		if l.Hours == 0 {
			continue
		}
		p.CellFormat(95, 7, processTitle(l.Process), "1", 0, "L", false, 0, "")
		p.CellFormat(30, 7, fmt.Sprintf("%.1f", l.Hours), "1", 0, "C", false, 0, "")
		p.CellFormat(30, 7, fmt.Sprintf("$%.0f/hr", l.Rate), "1", 0, "R", false, 0, "")
		p.CellFormat(35, 7, fmt.Sprintf("$%.2f", l.Hours*l.Rate), "1", 1, "R", false, 0, "")
	}
	r.subtotalRow(p, fmt.Sprintf("Labor Subtotal (%.1f hrs)", q.Labor.TotalHours), q.LaborSubtotal)
}

func (r *Renderer) finishing(p *gofpdf.Fpdf, q types.PricedQuote) {
	r.sectionTitle(p, "Finishing")
	p.SetFont("Arial", "", 9)
	line := fmt.Sprintf("%s, %.1f sq ft", jobTypeTitle(string(q.Finishing.Method)), q.Finishing.AreaSqFt)
	if q.Finishing.Outsourced {
		line += " (outsourced)"
	}
	p.CellFormat(155, 7, line, "1", 0, "L", false, 0, "")
	p.CellFormat(35, 7, fmt.Sprintf("$%.2f", q.FinishingSubtotal), "1", 1, "R", false, 0, "")
	if q.Finishing.Note != "" {
		p.SetFont("Arial", "I", 8)
		p.MultiCell(190, 4, q.Finishing.Note, "", "L", false)
	}
	p.Ln(3)
}

func (r *Renderer) totals(p *gofpdf.Fpdf, q types.PricedQuote) {
	r.sectionTitle(p, "Totals")

	p.SetFont("Arial", "B", 10)
	p.Cell(155, 7, "Subtotal")
	p.CellFormat(35, 7, fmt.Sprintf("$%.2f", q.Subtotal), "1", 1, "R", false, 0, "")
	p.Ln(2)

	p.SetFont("Arial", "", 9)
	for _, pct := range types.MarkupOptions {
		total, ok := q.MarkupTotals[pct]
		if !ok {
			continue
		}
		selected := pct == q.SelectedMarkup
		label := fmt.Sprintf("Total at %d%% markup", pct)
		if selected {
			p.SetFont("Arial", "B", 9)
			label += "  (selected)"
		}
		p.Cell(155, 6, label)
		p.CellFormat(35, 6, fmt.Sprintf("$%.2f", total), "1", 1, "R", selected, 0, "")
		if selected {
			p.SetFont("Arial", "", 9)
		}
	}
	p.Ln(2)

	p.SetFont("Arial", "B", 12)
	p.SetFillColor(230, 230, 230)
	p.CellFormat(155, 9, "GRAND TOTAL", "1", 0, "L", true, 0, "")
	p.CellFormat(35, 9, fmt.Sprintf("$%.2f", q.GrandTotal), "1", 1, "R", true, 0, "")
	p.Ln(4)
}

func (r *Renderer) notes(p *gofpdf.Fpdf, q types.PricedQuote) {
	if len(q.Assumptions) > 0 {
		r.sectionTitle(p, "Assumptions")
		p.SetFont("Arial", "", 8)
		for _, a := range q.Assumptions {
			p.MultiCell(190, 4, "- "+a, "", "L", false)
		}
		p.Ln(3)
	}
	if len(q.Exclusions) > 0 {
		r.sectionTitle(p, "Exclusions")
		p.SetFont("Arial", "", 8)
		for _, e := range q.Exclusions {
			p.MultiCell(190, 4, "- "+e, "", "L", false)
		}
		p.Ln(3)
	}
}

func (r *Renderer) footer(p *gofpdf.Fpdf) {
	p.SetY(-20)
	p.SetFont("Arial", "I", 8)
	p.Cell(190, 5, "Quote valid for 30 days from date of issue. Prices subject to material cost changes.")
	p.Ln(4)
	p.Cell(190, 5, "Generated on: "+time.Now().Format("2006-01-02 15:04:05"))
}

type col struct {
	width float64
	title string
	align string
}

func (r *Renderer) sectionTitle(p *gofpdf.Fpdf, title string) {
	p.SetFont("Arial", "B", 12)
	p.Cell(190, 8, title)
	p.Ln(9)
}

func (r *Renderer) tableHeader(p *gofpdf.Fpdf, cols []col) {
	p.SetFont("Arial", "B", 9)
	p.SetFillColor(240, 240, 240)
	for i, c := range cols {
		ln := 0
		if i == len(cols)-1 {
			ln = 1
		}
		p.CellFormat(c.width, 7, c.title, "1", ln, c.align, true, 0, "")
	}
}

func (r *Renderer) subtotalRow(p *gofpdf.Fpdf, label string, amount float64) {
	p.SetFont("Arial", "B", 9)
	p.Cell(155, 7, label)
	p.CellFormat(35, 7, fmt.Sprintf("$%.2f", amount), "1", 1, "R", false, 0, "")
	p.Ln(3)
}

// jobTypeTitle turns a snake_case identifier into a display title.
func jobTypeTitle(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func processTitle(p types.LaborProcess) string {
	return jobTypeTitle(string(p))
}

func trim(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
