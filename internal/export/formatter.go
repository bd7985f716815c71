package export

import (
	"sort"

	"github.com/greenloop/reports-service/internal/model"
)

// Formatter renders one export format. Every formatter derives its output
// purely from the report and the filter; none fetches data.
type Formatter interface {
	Render(r *model.Report, filter model.Filter, title string) ([]byte, error)
	ContentType() string
	FileExt() string
}

func periodLabel(filter model.Filter) string {
	if filter.DateRange == nil {
		return "All time"
	}
	return filter.DateRange.Start.Format("2006-01-02") + " to " + filter.DateRange.End.Format("2006-01-02")
}

func sortedGroupKeys(groups map[string]model.GroupStat) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func reportTitle(r *model.Report, title string) string {
	if title != "" {
		return title
	}
	return r.Type.Title()
}
