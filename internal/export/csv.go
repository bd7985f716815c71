package export

import (
	"fmt"
	"strings"

	"github.com/greenloop/reports-service/internal/model"
	"github.com/greenloop/reports-service/internal/report"
)

// CSVFormatter renders the tabular export: one header row plus one row per
// aggregation group, comma-joined with no quoting. The column set is fixed
// per report type and consumed by downstream spreadsheets as-is, so the
// exact join bytes are part of the contract (encoding/csv would add quoting
// and CRLF).
type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) ContentType() string { return "text/csv" }
func (f *CSVFormatter) FileExt() string     { return "csv" }

func (f *CSVFormatter) Render(r *model.Report, filter model.Filter, title string) ([]byte, error) {
	var lines []string
	switch r.Type {
	case model.ReportWasteGeneration:
		lines = wasteGenerationRows(r)
	case model.ReportCollectionEfficiency:
		lines = efficiencyRows(r)
	case model.ReportCostAnalysis:
		lines = costRows(r)
	default:
		return nil, fmt.Errorf("no tabular layout for report type %q", string(r.Type))
	}
	return []byte(strings.Join(lines, "\n")), nil
}

func wasteGenerationRows(r *model.Report) []string {
	lines := []string{"Area,Waste Type,Collections,Total Weight (kg),Average Weight (kg)"}
	keys := sortedGroupKeys(r.ByArea)
	if len(keys) == 0 {
		return append(lines, "")
	}
	for _, area := range keys {
		stat := r.ByArea[area]
		average := 0.0
		if stat.Count > 0 {
			average = stat.Weight / float64(stat.Count)
		}
		// Areas and waste types are not cross-tabulated here; the waste-type
		// column stays the literal All.
		lines = append(lines, fmt.Sprintf("%s,All,%d,%s,%s",
			area, stat.Count, report.FormatWeight(stat.Weight), report.FormatWeight(average)))
	}
	return lines
}

func efficiencyRows(r *model.Report) []string {
	lines := []string{"Status,Count,Percentage"}
	if len(r.StatusBreakdown) == 0 {
		return append(lines, "")
	}
	for _, status := range report.StatusBreakdownKeys {
		count := r.StatusBreakdown[status]
		percentage := 0.0
		if r.Totals.ScheduledPickups > 0 {
			percentage = float64(count) / float64(r.Totals.ScheduledPickups) * 100
		}
		lines = append(lines, fmt.Sprintf("%s,%d,%.1f", status, count, percentage))
	}
	return lines
}

func costRows(r *model.Report) []string {
	lines := []string{"Payment Status,Count,Revenue ($)"}
	if len(r.PaymentStatus) == 0 {
		return append(lines, "")
	}
	for _, status := range report.PaymentStatusKeys {
		count := r.PaymentStatus[status]
		// Revenue per status is a proportional estimate, share-of-count times
		// total revenue. It diverges from the true per-status sum whenever
		// costs are not uniform across records; kept for parity with the
		// historical exports.
		revenue := 0.0
		if r.Totals.TotalCollections > 0 {
			revenue = float64(count) / float64(r.Totals.TotalCollections) * r.Totals.TotalRevenue
		}
		lines = append(lines, fmt.Sprintf("%s,%d,%.2f", status, count, revenue))
	}
	return lines
}
