package report

import (
	"strconv"
	"strings"

	"github.com/greenloop/reports-service/internal/model"
)

// The three aggregations below are pure and total: malformed numeric fields
// coerce to 0 and never abort a report. Grouping keys are case-sensitive and
// untrimmed except for the area token, which the address convention trims.

// AggregateWasteGeneration builds a waste-generation report from filtered
// records.
func AggregateWasteGeneration(collections []model.CollectionRecord, schedules []model.ScheduleRecord) *model.Report {
	r := &model.Report{
		Type:           model.ReportWasteGeneration,
		ByArea:         map[string]model.GroupStat{},
		ByWasteType:    map[string]model.GroupStat{},
		RawCollections: collections,
		RawSchedules:   schedules,
	}

	totalWeight := 0.0
	for _, c := range collections {
		weight := parseDecimal(c.TotalWeight)
		totalWeight += weight

		area := c.Area()
		stat := r.ByArea[area]
		stat.Count++
		stat.Weight += weight
		r.ByArea[area] = stat

		wt := c.WasteType
		if wt == "" {
			wt = model.DefaultWasteType
		}
		stat = r.ByWasteType[wt]
		stat.Count++
		stat.Weight += weight
		r.ByWasteType[wt] = stat
	}

	r.Totals.TotalWeight = totalWeight
	r.Totals.TotalCollections = len(collections)
	if len(collections) > 0 {
		r.Totals.AverageWeight = totalWeight / float64(len(collections))
	}
	return r
}

// Schedule statuses always appear in the breakdown, count zero included, in
// this order. Completed is the number of collection records rather than a
// schedule status count: a schedule has no Completed state of its own, it is
// complete once a matching collection exists.
var StatusBreakdownKeys = []string{
	"Completed",
	string(model.ScheduleScheduled),
	string(model.ScheduleCancelled),
	string(model.ScheduleInProgress),
}

// AggregateCollectionEfficiency builds a collection-efficiency report from
// filtered records.
func AggregateCollectionEfficiency(collections []model.CollectionRecord, schedules []model.ScheduleRecord) *model.Report {
	r := &model.Report{
		Type:            model.ReportCollectionEfficiency,
		StatusBreakdown: map[string]int{},
		RawCollections:  collections,
		RawSchedules:    schedules,
	}

	for _, key := range StatusBreakdownKeys {
		r.StatusBreakdown[key] = 0
	}
	for _, s := range schedules {
		if _, fixed := r.StatusBreakdown[string(s.Status)]; fixed {
			r.StatusBreakdown[string(s.Status)]++
		}
	}
	r.StatusBreakdown["Completed"] = len(collections)

	r.Totals.ScheduledPickups = len(schedules)
	r.Totals.CompletedPickups = len(collections)
	if len(schedules) > 0 {
		r.Totals.EfficiencyRate = float64(len(collections)) / float64(len(schedules)) * 100
	}
	return r
}

// Payment statuses always appear in the payment grouping, in this order.
var PaymentStatusKeys = []string{
	string(model.PaymentPaid),
	string(model.PaymentUnpaid),
	string(model.PaymentPending),
}

// AggregateCostAnalysis builds a cost-analysis report from filtered records.
func AggregateCostAnalysis(collections []model.CollectionRecord) *model.Report {
	r := &model.Report{
		Type:           model.ReportCostAnalysis,
		PaymentStatus:  map[string]int{},
		RawCollections: collections,
	}

	for _, key := range PaymentStatusKeys {
		r.PaymentStatus[key] = 0
	}

	totalRevenue := 0.0
	paidRevenue := 0.0
	for _, c := range collections {
		cost := parseDecimal(c.TotalCost)
		totalRevenue += cost
		if c.Status == model.PaymentPaid {
			paidRevenue += cost
		}
		if _, fixed := r.PaymentStatus[string(c.Status)]; fixed {
			r.PaymentStatus[string(c.Status)]++
		}
	}

	r.Totals.TotalRevenue = totalRevenue
	r.Totals.PaidRevenue = paidRevenue
	if len(collections) > 0 {
		r.Totals.AverageCost = totalRevenue / float64(len(collections))
	}
	r.Totals.TotalCollections = len(collections)
	return r
}

func parseDecimal(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}
