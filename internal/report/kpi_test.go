package report

import (
	"strings"
	"testing"

	"github.com/greenloop/reports-service/internal/model"
)

func TestDeriveKPIs_Formatting(t *testing.T) {
	waste := &model.Report{Type: model.ReportWasteGeneration}
	waste.Totals.TotalWeight = 123.456789
	if got := DeriveKPIs(waste)[0].Value; got != "123.5" {
		t.Fatalf("weight KPI = %q, want 123.5", got)
	}

	cost := &model.Report{Type: model.ReportCostAnalysis}
	cost.Totals.TotalRevenue = 1234.567
	if got := DeriveKPIs(cost)[0].Value; got != "$1234.57" {
		t.Fatalf("revenue KPI = %q, want $1234.57", got)
	}

	efficiency := &model.Report{Type: model.ReportCollectionEfficiency}
	efficiency.Totals.EfficiencyRate = 85.6789
	if got := DeriveKPIs(efficiency)[0].Value; got != "85.7%" {
		t.Fatalf("efficiency KPI = %q, want 85.7%%", got)
	}
}

func TestDeriveKPIs_ExactlyThreePerType(t *testing.T) {
	for _, reportType := range []model.ReportType{
		model.ReportWasteGeneration,
		model.ReportCollectionEfficiency,
		model.ReportCostAnalysis,
	} {
		kpis := DeriveKPIs(&model.Report{Type: reportType})
		if len(kpis) != 3 {
			t.Fatalf("%s: got %d KPIs, want 3", reportType, len(kpis))
		}
	}
}

func TestDeriveKPIs_EmptyInputDefaults(t *testing.T) {
	wantZero := map[model.ReportType][]string{
		model.ReportWasteGeneration:      {"0.0", "0", "0.0"},
		model.ReportCollectionEfficiency: {"0.0%", "0", "0"},
		model.ReportCostAnalysis:         {"$0.00", "$0.00", "$0.00"},
	}

	for reportType, want := range wantZero {
		kpis := DeriveKPIs(&model.Report{Type: reportType})
		for i, kpi := range kpis {
			if kpi.Value != want[i] {
				t.Fatalf("%s KPI %d = %q, want %q", reportType, i, kpi.Value, want[i])
			}
			for _, bad := range []string{"NaN", "Inf", "undefined"} {
				if strings.Contains(kpi.Value, bad) {
					t.Fatalf("%s KPI %d contains %s", reportType, i, bad)
				}
			}
		}
	}
}
