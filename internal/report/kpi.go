package report

import (
	"fmt"

	"github.com/greenloop/reports-service/internal/model"
)

// Headline metric formatting, shared by the KPI deriver and the export
// formatters so the on-screen numbers and the exported ones never drift:
// weights get one decimal with no suffix (the caller appends units),
// percentages one decimal plus %, currency two decimals behind $, counts stay
// raw integers. Zero inputs format as 0.0 / 0.0% / $0.00 / 0.

func FormatWeight(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func FormatCurrency(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func FormatCount(v int) string {
	return fmt.Sprintf("%d", v)
}

// DeriveKPIs maps a report onto its three fixed headline metrics, in display
// order.
func DeriveKPIs(r *model.Report) []model.KPI {
	switch r.Type {
	case model.ReportWasteGeneration:
		return []model.KPI{
			{Label: "Total Weight", Value: FormatWeight(r.Totals.TotalWeight), Icon: "scale", Color: "#4CAF50", Trend: "up"},
			{Label: "Total Collections", Value: FormatCount(r.Totals.TotalCollections), Icon: "truck", Color: "#2196F3", Trend: "up"},
			{Label: "Average Weight", Value: FormatWeight(r.Totals.AverageWeight), Icon: "chart-bar", Color: "#FF9800", Trend: "flat"},
		}
	case model.ReportCollectionEfficiency:
		return []model.KPI{
			{Label: "Efficiency Rate", Value: FormatPercent(r.Totals.EfficiencyRate), Icon: "gauge", Color: "#4CAF50", Trend: "up"},
			{Label: "Scheduled Pickups", Value: FormatCount(r.Totals.ScheduledPickups), Icon: "calendar", Color: "#2196F3", Trend: "flat"},
			{Label: "Completed Pickups", Value: FormatCount(r.Totals.CompletedPickups), Icon: "check-circle", Color: "#8BC34A", Trend: "up"},
		}
	case model.ReportCostAnalysis:
		return []model.KPI{
			{Label: "Total Revenue", Value: FormatCurrency(r.Totals.TotalRevenue), Icon: "cash", Color: "#4CAF50", Trend: "up"},
			{Label: "Average Cost", Value: FormatCurrency(r.Totals.AverageCost), Icon: "calculator", Color: "#FF9800", Trend: "flat"},
			{Label: "Paid Revenue", Value: FormatCurrency(r.Totals.PaidRevenue), Icon: "credit-card", Color: "#2196F3", Trend: "up"},
		}
	}
	return nil
}
