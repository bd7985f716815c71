package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/greenloop/reports-service/internal/model"
	"github.com/greenloop/reports-service/internal/report"
)

// XLSXFormatter renders the spreadsheet export: a summary sheet with the key
// figures and one sheet per grouping table.
type XLSXFormatter struct{}

func NewXLSXFormatter() *XLSXFormatter {
	return &XLSXFormatter{}
}

func (f *XLSXFormatter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (f *XLSXFormatter) FileExt() string { return "xlsx" }

func (f *XLSXFormatter) Render(r *model.Report, filter model.Filter, title string) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	f.writeSummary(file, summarySheet, r, filter, title)

	if len(r.ByArea) > 0 {
		f.writeStatSheet(file, "By Area", "Area", r.ByArea)
	}
	if len(r.ByWasteType) > 0 {
		f.writeStatSheet(file, "By Waste Type", "Waste Type", r.ByWasteType)
	}
	if len(r.StatusBreakdown) > 0 {
		f.writeCountSheet(file, "Status Breakdown", "Status", r.StatusBreakdown, report.StatusBreakdownKeys)
	}
	if len(r.PaymentStatus) > 0 {
		f.writeCountSheet(file, "Payment Status", "Payment Status", r.PaymentStatus, report.PaymentStatusKeys)
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func (f *XLSXFormatter) writeSummary(file *excelize.File, sheet string, r *model.Report, filter model.Filter, title string) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Report")
	set("B1", reportTitle(r, title))
	set("A2", "Generated")
	set("B2", time.Now().Format("2006-01-02 15:04"))
	set("A3", "Period")
	set("B3", periodLabel(filter))

	row := 5
	for _, kpi := range report.DeriveKPIs(r) {
		set(fmt.Sprintf("A%d", row), kpi.Label)
		set(fmt.Sprintf("B%d", row), kpi.Value)
		row++
	}

	_ = file.SetColWidth(sheet, "A", "A", 28)
	_ = file.SetColWidth(sheet, "B", "B", 32)
}

func (f *XLSXFormatter) writeStatSheet(file *excelize.File, name, keyHeader string, groups map[string]model.GroupStat) {
	sheet := sanitizeSheetName(name)
	_, _ = file.NewSheet(sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", keyHeader)
	set("B1", "Collections")
	set("C1", "Total Weight (kg)")
	set("D1", "Average Weight (kg)")

	for i, key := range sortedGroupKeys(groups) {
		stat := groups[key]
		average := 0.0
		if stat.Count > 0 {
			average = stat.Weight / float64(stat.Count)
		}
		row := i + 2
		set(fmt.Sprintf("A%d", row), key)
		set(fmt.Sprintf("B%d", row), stat.Count)
		set(fmt.Sprintf("C%d", row), report.FormatWeight(stat.Weight))
		set(fmt.Sprintf("D%d", row), report.FormatWeight(average))
	}

	_ = file.SetColWidth(sheet, "A", "A", 28)
	_ = file.SetColWidth(sheet, "B", "D", 18)
}

func (f *XLSXFormatter) writeCountSheet(file *excelize.File, name, keyHeader string, counts map[string]int, order []string) {
	sheet := sanitizeSheetName(name)
	_, _ = file.NewSheet(sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", keyHeader)
	set("B1", "Count")

	for i, key := range order {
		row := i + 2
		set(fmt.Sprintf("A%d", row), key)
		set(fmt.Sprintf("B%d", row), counts[key])
	}

	_ = file.SetColWidth(sheet, "A", "A", 28)
	_ = file.SetColWidth(sheet, "B", "B", 14)
}

func sanitizeSheetName(value string) string {
	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	value = strings.TrimSpace(replacer.Replace(value))
	if value == "" {
		return "Sheet"
	}
	if len(value) > 31 {
		value = value[:31]
	}
	return value
}
