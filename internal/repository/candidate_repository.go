package repository

import (
	"context"
	"sort"

	"github.com/stemsi/skills-assessment/internal/model"
)

// CandidateRepository is the registry of exam-taking identities.
type CandidateRepository struct {
	candidates map[string]model.Candidate
}

// NewCandidateRepository creates a CandidateRepository from the seed list.
func NewCandidateRepository(candidates []model.Candidate) *CandidateRepository {
	m := make(map[string]model.Candidate, len(candidates))
	for _, c := range candidates {
		m[c.ID] = c
	}
	return &CandidateRepository{candidates: m}
}

// GetByID retrieves a candidate by id.
func (r *CandidateRepository) GetByID(_ context.Context, id string) (*model.Candidate, error) {
	c, ok := r.candidates[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

// List returns every candidate ordered by id.
func (r *CandidateRepository) List(_ context.Context) []model.Candidate {
	out := make([]model.Candidate, 0, len(r.candidates))
	for _, c := range r.candidates {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
