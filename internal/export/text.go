package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/greenloop/reports-service/internal/model"
	"github.com/greenloop/reports-service/internal/report"
)

// TextFormatter renders the terse line-oriented summary used by lightweight
// sharing channels and by the export fallback chain.
type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

func (f *TextFormatter) ContentType() string { return "text/plain" }
func (f *TextFormatter) FileExt() string     { return "txt" }

func (f *TextFormatter) Render(r *model.Report, filter model.Filter, title string) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintln(&b, reportTitle(r, title))
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Period: %s\n", periodLabel(filter))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Key figures:")
	for _, kpi := range report.DeriveKPIs(r) {
		fmt.Fprintf(&b, "- %s: %s\n", kpi.Label, kpi.Value)
	}

	writeStatGroup(&b, "By area", r.ByArea)
	writeStatGroup(&b, "By waste type", r.ByWasteType)
	writeCountGroup(&b, "Status breakdown", r.StatusBreakdown, report.StatusBreakdownKeys)
	writeCountGroup(&b, "Payment status", r.PaymentStatus, report.PaymentStatusKeys)

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Shared from GreenLoop Waste Collection")

	return []byte(b.String()), nil
}

func writeStatGroup(b *strings.Builder, heading string, groups map[string]model.GroupStat) {
	if len(groups) == 0 {
		return
	}
	fmt.Fprintln(b)
	fmt.Fprintf(b, "%s:\n", heading)
	for _, key := range sortedGroupKeys(groups) {
		stat := groups[key]
		fmt.Fprintf(b, "- %s: %d collections, %s kg\n", key, stat.Count, report.FormatWeight(stat.Weight))
	}
}

func writeCountGroup(b *strings.Builder, heading string, counts map[string]int, order []string) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintln(b)
	fmt.Fprintf(b, "%s:\n", heading)
	for _, key := range order {
		fmt.Fprintf(b, "- %s: %d\n", key, counts[key])
	}
}
