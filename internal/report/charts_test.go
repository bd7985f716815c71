package report

import (
	"testing"

	"github.com/greenloop/reports-service/internal/model"
)

func TestDeriveChartSeries_WasteGeneration(t *testing.T) {
	r := &model.Report{
		Type: model.ReportWasteGeneration,
		ByWasteType: map[string]model.GroupStat{
			"Organic":    {Count: 2, Weight: 30},
			"Unheard-Of": {Count: 1, Weight: 5},
		},
		ByArea: map[string]model.GroupStat{
			"North": {Count: 3, Weight: 35},
		},
	}

	charts := DeriveChartSeries(r)

	if len(charts.Pie) != 2 {
		t.Fatalf("pie has %d points, want 2", len(charts.Pie))
	}
	for _, point := range charts.Pie {
		switch point.Name {
		case "Organic":
			if point.Color == FallbackColor {
				t.Fatal("Organic should use its palette color")
			}
		case "Unheard-Of":
			if point.Color != FallbackColor {
				t.Fatalf("unknown key color = %q, want fallback", point.Color)
			}
		default:
			t.Fatalf("unexpected point %q", point.Name)
		}
	}

	if len(charts.Bar) != 1 || charts.Bar[0].Value != 35 {
		t.Fatalf("bar = %v", charts.Bar)
	}
}

func TestDeriveChartSeries_FixedOrderForCountSeries(t *testing.T) {
	r := AggregateCollectionEfficiency(
		[]model.CollectionRecord{{}},
		[]model.ScheduleRecord{{Status: model.ScheduleScheduled}, {Status: model.ScheduleCancelled}},
	)

	charts := DeriveChartSeries(r)
	if len(charts.Pie) != 4 {
		t.Fatalf("pie has %d points, want 4", len(charts.Pie))
	}
	want := []string{"Completed", "Scheduled", "Cancelled", "In Progress"}
	for i, name := range want {
		if charts.Pie[i].Name != name {
			t.Fatalf("point %d = %q, want %q", i, charts.Pie[i].Name, name)
		}
	}
}

func TestDeriveChartSeries_NeverNilForKnownTypes(t *testing.T) {
	r := AggregateCostAnalysis(nil)
	charts := DeriveChartSeries(r)
	if len(charts.Pie) != 3 {
		t.Fatalf("pie has %d points, want the 3 payment keys", len(charts.Pie))
	}
}
