package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/greenloop/reports-service/internal/model"
	"github.com/greenloop/reports-service/internal/report"
)

// RecordSource is the slice of the store gateway the factory needs.
type RecordSource interface {
	FetchCollections(ctx context.Context) ([]model.CollectionRecord, error)
	FetchSchedules(ctx context.Context) ([]model.ScheduleRecord, error)
}

// ReportService is the report factory: it fetches exactly the record sets a
// report type needs, filters them, and hands them to the aggregator. Store
// failures degrade to empty sets with a warning; the returned report is
// well-formed either way.
type ReportService struct {
	store RecordSource
	log   zerolog.Logger
}

func NewReportService(store RecordSource, log zerolog.Logger) *ReportService {
	return &ReportService{store: store, log: log}
}

// Create builds one report for a (type, filter) pair. The result is a pure
// function of the store contents and the filter.
func (s *ReportService) Create(ctx context.Context, reportType model.ReportType, filter model.Filter) (*model.Report, error) {
	switch reportType {
	case model.ReportWasteGeneration:
		collections, schedules := s.fetchBoth(ctx)
		collections, schedules = applyFilter(collections, schedules, filter)
		return report.AggregateWasteGeneration(collections, schedules), nil

	case model.ReportCollectionEfficiency:
		collections, schedules := s.fetchBoth(ctx)
		collections, schedules = applyFilter(collections, schedules, filter)
		return report.AggregateCollectionEfficiency(collections, schedules), nil

	case model.ReportCostAnalysis:
		// Cost analysis reads collections only; schedules stay untouched.
		collections := s.fetchCollections(ctx)
		collections, _ = applyFilter(collections, nil, filter)
		return report.AggregateCostAnalysis(collections), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedReportType, string(reportType))
	}
}

// fetchBoth issues both reads concurrently and joins before aggregation.
// Each leg degrades to an empty set on store failure.
func (s *ReportService) fetchBoth(ctx context.Context) ([]model.CollectionRecord, []model.ScheduleRecord) {
	var (
		collections []model.CollectionRecord
		schedules   []model.ScheduleRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := s.store.FetchCollections(gctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("collections fetch failed, report degrades to empty set")
			return nil
		}
		collections = records
		return nil
	})
	g.Go(func() error {
		records, err := s.store.FetchSchedules(gctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("schedules fetch failed, report degrades to empty set")
			return nil
		}
		schedules = records
		return nil
	})
	_ = g.Wait()

	return collections, schedules
}

func (s *ReportService) fetchCollections(ctx context.Context) []model.CollectionRecord {
	records, err := s.store.FetchCollections(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("collections fetch failed, report degrades to empty set")
		return nil
	}
	return records
}

func applyFilter(collections []model.CollectionRecord, schedules []model.ScheduleRecord, f model.Filter) ([]model.CollectionRecord, []model.ScheduleRecord) {
	collections = report.FilterCollectionsByDateRange(collections, f.DateRange)
	collections = report.NarrowCollections(collections, f)
	if schedules != nil {
		schedules = report.FilterSchedulesByDateRange(schedules, f.DateRange)
		schedules = report.NarrowSchedules(schedules, f)
	}
	return collections, schedules
}
