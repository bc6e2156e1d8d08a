package repository

import (
	"context"

	"github.com/stemsi/skills-assessment/internal/model"
)

// DashboardRepository serves the seeded manager dashboard records. Read-only.
type DashboardRepository struct {
	records []model.DashboardRecord
}

func NewDashboardRepository(records []model.DashboardRecord) *DashboardRepository {
	return &DashboardRepository{records: records}
}

// List returns a copy of every record.
func (r *DashboardRepository) List(_ context.Context) []model.DashboardRecord {
	out := make([]model.DashboardRecord, len(r.records))
	for i, rec := range r.records {
		rec.ExamHistory = append([]model.ExamHistoryEntry(nil), rec.ExamHistory...)
		out[i] = rec
	}
	return out
}
