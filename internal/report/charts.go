package report

import (
	"sort"

	"github.com/greenloop/reports-service/internal/model"
)

// FallbackColor is used for any grouping key outside the fixed palettes.
const FallbackColor = "#9E9E9E"

var wasteTypeColors = map[string]string{
	"Organic":    "#8BC34A",
	"Plastic":    "#03A9F4",
	"Paper":      "#FFC107",
	"Glass":      "#00BCD4",
	"Metal":      "#607D8B",
	"E-Waste":    "#9C27B0",
	"Hazardous":  "#F44336",
	"Mixed":      "#795548",
	"Recyclable": "#4CAF50",
}

var scheduleStatusColors = map[string]string{
	"Completed":   "#4CAF50",
	"Scheduled":   "#2196F3",
	"Cancelled":   "#F44336",
	"In Progress": "#FF9800",
}

var paymentStatusColors = map[string]string{
	"Paid":                 "#4CAF50",
	"Unpaid":               "#F44336",
	"Pending Verification": "#FF9800",
}

func colorFor(table map[string]string, key string) string {
	if c, ok := table[key]; ok {
		return c
	}
	return FallbackColor
}

// DeriveChartSeries maps a report's groupings onto chart-ready series.
// Unknown keys draw the fallback color; the deriver never fails.
func DeriveChartSeries(r *model.Report) model.ChartData {
	switch r.Type {
	case model.ReportWasteGeneration:
		return model.ChartData{
			Pie: statPoints(r.ByWasteType, wasteTypeColors),
			Bar: statPoints(r.ByArea, nil),
		}
	case model.ReportCollectionEfficiency:
		return model.ChartData{
			Pie: countPoints(r.StatusBreakdown, StatusBreakdownKeys, scheduleStatusColors),
		}
	case model.ReportCostAnalysis:
		return model.ChartData{
			Pie: countPoints(r.PaymentStatus, PaymentStatusKeys, paymentStatusColors),
		}
	}
	return model.ChartData{}
}

func statPoints(groups map[string]model.GroupStat, colors map[string]string) []model.ChartPoint {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	points := make([]model.ChartPoint, 0, len(keys))
	for _, key := range keys {
		points = append(points, model.ChartPoint{
			Name:  key,
			Value: groups[key].Weight,
			Color: colorFor(colors, key),
		})
	}
	return points
}

func countPoints(counts map[string]int, order []string, colors map[string]string) []model.ChartPoint {
	points := make([]model.ChartPoint, 0, len(order))
	for _, key := range order {
		points = append(points, model.ChartPoint{
			Name:  key,
			Value: float64(counts[key]),
			Color: colorFor(colors, key),
		})
	}
	return points
}
