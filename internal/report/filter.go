package report

import (
	"github.com/greenloop/reports-service/internal/model"
)

// FilterCollectionsByDateRange keeps the records whose creation instant falls
// inside the window, inclusive on both ends. A nil range is the identity.
// Records whose timestamp cannot be normalized are excluded, never a panic.
func FilterCollectionsByDateRange(records []model.CollectionRecord, dr *model.DateRange) []model.CollectionRecord {
	if dr == nil {
		return records
	}
	kept := make([]model.CollectionRecord, 0, len(records))
	for _, r := range records {
		if inRange(r.CreatedAt, dr) {
			kept = append(kept, r)
		}
	}
	return kept
}

// FilterSchedulesByDateRange mirrors FilterCollectionsByDateRange for
// schedule records.
func FilterSchedulesByDateRange(records []model.ScheduleRecord, dr *model.DateRange) []model.ScheduleRecord {
	if dr == nil {
		return records
	}
	kept := make([]model.ScheduleRecord, 0, len(records))
	for _, r := range records {
		if inRange(r.CreatedAt, dr) {
			kept = append(kept, r)
		}
	}
	return kept
}

func inRange(ts model.Timestamp, dr *model.DateRange) bool {
	instant, ok := ts.Time()
	if !ok {
		return false
	}
	return !instant.Before(dr.Start) && !instant.After(dr.End)
}

// NarrowCollections applies the non-date axes of a filter: exact area token
// and exact waste type. Empty filter fields keep everything.
func NarrowCollections(records []model.CollectionRecord, f model.Filter) []model.CollectionRecord {
	if f.Area == "" && f.WasteType == "" {
		return records
	}
	kept := make([]model.CollectionRecord, 0, len(records))
	for _, r := range records {
		if f.Area != "" && r.Area() != f.Area {
			continue
		}
		if f.WasteType != "" && wasteTypeOf(r.WasteType) != f.WasteType {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// NarrowSchedules applies the waste-type axis; schedules carry no address.
func NarrowSchedules(records []model.ScheduleRecord, f model.Filter) []model.ScheduleRecord {
	if f.WasteType == "" {
		return records
	}
	kept := make([]model.ScheduleRecord, 0, len(records))
	for _, r := range records {
		if wasteTypeOf(r.WasteType) == f.WasteType {
			kept = append(kept, r)
		}
	}
	return kept
}

func wasteTypeOf(raw string) string {
	if raw == "" {
		return model.DefaultWasteType
	}
	return raw
}
