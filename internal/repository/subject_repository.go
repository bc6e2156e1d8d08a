package repository

import (
	"context"
	"strings"
	"sync"
)

// SubjectRepository holds the subject names offered when building templates.
type SubjectRepository struct {
	mu       sync.RWMutex
	subjects []string
}

func NewSubjectRepository(subjects []string) *SubjectRepository {
	return &SubjectRepository{subjects: append([]string(nil), subjects...)}
}

func (r *SubjectRepository) GetAll(_ context.Context) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.subjects...)
}

// Create appends name unless a subject with the same name (ignoring case) exists.
func (r *SubjectRepository) Create(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.subjects {
		if strings.EqualFold(s, name) {
			return ErrDuplicate
		}
	}
	r.subjects = append(r.subjects, name)
	return nil
}
