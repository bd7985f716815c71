package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/greenloop/reports-service/internal/model"
	"github.com/greenloop/reports-service/internal/report"
)

// PDFFormatter renders the styled, paginated document export: header, KPI
// block, one table per grouping, a chart placeholder section and a footer.
// Self-contained, core fonts only.
type PDFFormatter struct {
	fontName string
}

func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{fontName: "Helvetica"}
}

func (f *PDFFormatter) ContentType() string { return "application/pdf" }
func (f *PDFFormatter) FileExt() string     { return "pdf" }

func (f *PDFFormatter) Render(r *model.Report, filter model.Filter, title string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(f.fontName, "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("GreenLoop Waste Collection — page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(f.fontName, "B", 16)
	pdf.CellFormat(0, 10, reportTitle(r, title), "", 1, "C", false, 0, "")

	pdf.SetFont(f.fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s", periodLabel(filter)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	f.writeKPIBlock(pdf, r)

	if len(r.ByArea) > 0 {
		f.writeStatTable(pdf, "Collections by Area", r.ByArea)
	}
	if len(r.ByWasteType) > 0 {
		f.writeStatTable(pdf, "Collections by Waste Type", r.ByWasteType)
	}
	if len(r.StatusBreakdown) > 0 {
		f.writeCountTable(pdf, "Schedule Status Breakdown", r.StatusBreakdown, report.StatusBreakdownKeys)
	}
	if len(r.PaymentStatus) > 0 {
		f.writeCountTable(pdf, "Payment Status", r.PaymentStatus, report.PaymentStatusKeys)
	}

	f.writeChartPlaceholder(pdf, r)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (f *PDFFormatter) writeKPIBlock(pdf *gofpdf.Fpdf, r *model.Report) {
	pdf.SetFont(f.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Key Figures", "", 1, "L", false, 0, "")

	pdf.SetFont(f.fontName, "", 10)
	for _, kpi := range report.DeriveKPIs(r) {
		pdf.CellFormat(90, 7, kpi.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 7, kpi.Value, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func (f *PDFFormatter) writeStatTable(pdf *gofpdf.Fpdf, heading string, groups map[string]model.GroupStat) {
	pdf.SetFont(f.fontName, "B", 12)
	pdf.CellFormat(0, 8, heading, "", 1, "L", false, 0, "")

	f.tableRow(pdf, []string{"Group", "Collections", "Weight (kg)"}, true)
	for _, key := range sortedGroupKeys(groups) {
		stat := groups[key]
		f.tableRow(pdf, []string{key, report.FormatCount(stat.Count), report.FormatWeight(stat.Weight)}, false)
	}
	pdf.Ln(4)
}

func (f *PDFFormatter) writeCountTable(pdf *gofpdf.Fpdf, heading string, counts map[string]int, order []string) {
	pdf.SetFont(f.fontName, "B", 12)
	pdf.CellFormat(0, 8, heading, "", 1, "L", false, 0, "")

	f.tableRow(pdf, []string{"Group", "Count"}, true)
	for _, key := range order {
		f.tableRow(pdf, []string{key, report.FormatCount(counts[key])}, false)
	}
	pdf.Ln(4)
}

func (f *PDFFormatter) tableRow(pdf *gofpdf.Fpdf, cols []string, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(f.fontName, style, 10)
	width := 180.0 / float64(len(cols))
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(width, 7, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func (f *PDFFormatter) writeChartPlaceholder(pdf *gofpdf.Fpdf, r *model.Report) {
	charts := report.DeriveChartSeries(r)
	if len(charts.Pie) == 0 && len(charts.Bar) == 0 {
		return
	}

	pdf.SetFont(f.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Charts", "", 1, "L", false, 0, "")
	pdf.SetFont(f.fontName, "I", 9)
	pdf.MultiCell(0, 5, "Chart series are available in the app; this document lists the underlying values.", "", "L", false)

	pdf.SetFont(f.fontName, "", 10)
	for _, point := range append(charts.Pie, charts.Bar...) {
		pdf.CellFormat(0, 6, fmt.Sprintf("%s: %.1f", point.Name, point.Value), "", 1, "L", false, 0, "")
	}
}
