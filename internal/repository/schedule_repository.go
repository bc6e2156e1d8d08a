package repository

import (
	"context"
	"sync"

	"github.com/stemsi/skills-assessment/internal/model"
)

// ScheduleRepository is an append-only log of scheduled assessments.
type ScheduleRepository struct {
	mu        sync.RWMutex
	schedules []model.ScheduledAssessment
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

func (r *ScheduleRepository) Create(_ context.Context, s *model.ScheduledAssessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules = append(r.schedules, cloneSchedule(*s))
	return nil
}

// List returns schedules in creation order.
func (r *ScheduleRepository) List(_ context.Context) []model.ScheduledAssessment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.ScheduledAssessment, len(r.schedules))
	for i, s := range r.schedules {
		out[i] = cloneSchedule(s)
	}
	return out
}

func cloneSchedule(s model.ScheduledAssessment) model.ScheduledAssessment {
	s.CandidateIDs = append([]string(nil), s.CandidateIDs...)
	s.QuestionIDs = append([]string(nil), s.QuestionIDs...)
	return s
}
