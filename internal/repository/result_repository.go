package repository

import (
	"context"
	"sync"

	"github.com/stemsi/skills-assessment/internal/model"
)

// ResultRepository keeps the most recent scored Result per (candidate, exam).
// Put always overwrites; no history is retained.
type ResultRepository interface {
	Put(ctx context.Context, candidateID, examID string, result *model.Result) error
	Get(ctx context.Context, candidateID, examID string) (*model.Result, error)
	ListByCandidate(ctx context.Context, candidateID string) (map[string]*model.Result, error)
}

// MemoryResultRepository is the process-memory ResultRepository.
// Results are copied on the way in and out, so a stored value is only ever
// replaced whole and never observed half-written.
type MemoryResultRepository struct {
	mu      sync.RWMutex
	results map[string]map[string]*model.Result
}

// NewMemoryResultRepository creates an empty MemoryResultRepository.
func NewMemoryResultRepository() *MemoryResultRepository {
	return &MemoryResultRepository{
		results: make(map[string]map[string]*model.Result),
	}
}

// Put stores result under (candidateID, examID), replacing any previous entry.
func (r *MemoryResultRepository) Put(_ context.Context, candidateID, examID string, result *model.Result) error {
	stored := result.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	byExam, ok := r.results[candidateID]
	if !ok {
		byExam = make(map[string]*model.Result)
		r.results[candidateID] = byExam
	}
	byExam[examID] = stored
	return nil
}

// Get returns the stored result or ErrNotFound.
func (r *MemoryResultRepository) Get(_ context.Context, candidateID, examID string) (*model.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.results[candidateID][examID]
	if !ok {
		return nil, ErrNotFound
	}
	return res.Clone(), nil
}

// ListByCandidate returns every stored result for candidateID keyed by exam id.
// A candidate with no submissions yields an empty map.
func (r *MemoryResultRepository) ListByCandidate(_ context.Context, candidateID string) (map[string]*model.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byExam := r.results[candidateID]
	out := make(map[string]*model.Result, len(byExam))
	for examID, res := range byExam {
		out[examID] = res.Clone()
	}
	return out, nil
}
