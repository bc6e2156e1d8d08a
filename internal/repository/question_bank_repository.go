package repository

import (
	"context"

	"github.com/stemsi/skills-assessment/internal/model"
)

// QuestionBankRepository is the read-only exam catalog.
// Exams are immutable after construction, so no locking is needed.
type QuestionBankRepository struct {
	exams []model.Exam
	index map[string]int
}

// NewQuestionBankRepository creates a QuestionBankRepository over exams, preserving their order.
func NewQuestionBankRepository(exams []model.Exam) *QuestionBankRepository {
	r := &QuestionBankRepository{
		exams: make([]model.Exam, len(exams)),
		index: make(map[string]int, len(exams)),
	}
	copy(r.exams, exams)
	for i, e := range r.exams {
		r.index[e.ID] = i
	}
	return r
}

// GetExam returns the exam with the given id. Callers must treat it as read-only.
func (r *QuestionBankRepository) GetExam(_ context.Context, id string) (*model.Exam, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r.exams[i], nil
}

// ListExams returns a copy of every exam in catalog order.
func (r *QuestionBankRepository) ListExams(_ context.Context) []model.Exam {
	out := make([]model.Exam, len(r.exams))
	for i, e := range r.exams {
		out[i] = e.Clone()
	}
	return out
}
