package model

import (
	"strings"
	"time"
)

type ReportType string

const (
	ReportWasteGeneration      ReportType = "waste-generation"
	ReportCollectionEfficiency ReportType = "collection-efficiency"
	ReportCostAnalysis         ReportType = "cost-analysis"
)

// ParseReportType maps a request string onto the closed report taxonomy.
func ParseReportType(raw string) (ReportType, bool) {
	switch ReportType(strings.TrimSpace(raw)) {
	case ReportWasteGeneration:
		return ReportWasteGeneration, true
	case ReportCollectionEfficiency:
		return ReportCollectionEfficiency, true
	case ReportCostAnalysis:
		return ReportCostAnalysis, true
	default:
		return "", false
	}
}

func (t ReportType) Title() string {
	switch t {
	case ReportWasteGeneration:
		return "Waste Generation Report"
	case ReportCollectionEfficiency:
		return "Collection Efficiency Report"
	case ReportCostAnalysis:
		return "Cost Analysis Report"
	}
	return "Report"
}

type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatPDF  ExportFormat = "pdf"
	FormatXLSX ExportFormat = "xlsx"
	FormatText ExportFormat = "text"
)

func ParseExportFormat(raw string) (ExportFormat, bool) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatCSV:
		return FormatCSV, true
	case FormatPDF:
		return FormatPDF, true
	case FormatXLSX:
		return FormatXLSX, true
	case FormatText:
		return FormatText, true
	default:
		return "", false
	}
}

// DateRange is an inclusive calendar window.
type DateRange struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
}

// Filter narrows the record sets a report is built from. A nil DateRange
// means all time; empty Area/WasteType mean no narrowing on that axis.
type Filter struct {
	DateRange *DateRange `json:"dateRange,omitempty"`
	Area      string     `json:"area,omitempty"`
	WasteType string     `json:"wasteType,omitempty"`
}

// GroupStat is one bucket of a grouping.
type GroupStat struct {
	Count  int     `json:"count"`
	Weight float64 `json:"weight"`
}

// Totals carries the headline numbers of a report. Only the fields relevant
// to the report's type are populated.
type Totals struct {
	TotalWeight      float64 `json:"totalWeight,omitempty"`
	TotalCollections int     `json:"totalCollections,omitempty"`
	AverageWeight    float64 `json:"averageWeight,omitempty"`

	ScheduledPickups int     `json:"scheduledPickups,omitempty"`
	CompletedPickups int     `json:"completedPickups,omitempty"`
	EfficiencyRate   float64 `json:"efficiencyRate,omitempty"`

	TotalRevenue float64 `json:"totalRevenue,omitempty"`
	AverageCost  float64 `json:"averageCost,omitempty"`
	PaidRevenue  float64 `json:"paidRevenue,omitempty"`
}

// Report is the pipeline's normalized aggregate output for one (type, filter)
// pair. It is a pure function of the store contents and the filter, built
// fresh per request and never persisted. Raw records are retained so export
// formatters can derive per-row detail without re-querying the store.
type Report struct {
	Type ReportType `json:"reportType"`

	Totals Totals `json:"totals"`

	ByArea          map[string]GroupStat `json:"byArea,omitempty"`
	ByWasteType     map[string]GroupStat `json:"byWasteType,omitempty"`
	StatusBreakdown map[string]int       `json:"statusBreakdown,omitempty"`
	PaymentStatus   map[string]int       `json:"paymentStatus,omitempty"`

	RawCollections []CollectionRecord `json:"rawRecords,omitempty"`
	RawSchedules   []ScheduleRecord   `json:"rawSchedules,omitempty"`
}

// KPI is one labeled, formatted headline metric for on-screen display.
type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Trend string `json:"trend"`
}

// ChartPoint is one categorical chart entry.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// ChartData holds the chart-ready series derived from a report. Series are
// data-only; rendering is the client's concern.
type ChartData struct {
	Pie []ChartPoint `json:"pieChart,omitempty"`
	Bar []ChartPoint `json:"barChart,omitempty"`
}

// UnknownArea buckets collections whose address has no area token.
const UnknownArea = "Unknown"

func areaOf(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) < 2 {
		return UnknownArea
	}
	area := strings.TrimSpace(parts[1])
	if area == "" {
		return UnknownArea
	}
	return area
}
