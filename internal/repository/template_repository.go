package repository

import (
	"context"
	"sync"

	"github.com/stemsi/skills-assessment/internal/model"
)

// TemplateRepository is the in-memory assessment template store.
type TemplateRepository struct {
	mu        sync.RWMutex
	templates []model.Template
	nextID    int
}

// NewTemplateRepository creates a TemplateRepository seeded with templates.
func NewTemplateRepository(templates []model.Template) *TemplateRepository {
	r := &TemplateRepository{nextID: 1}
	for _, t := range templates {
		r.templates = append(r.templates, cloneTemplate(t))
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
	return r
}

func (r *TemplateRepository) List(_ context.Context) []model.Template {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Template, len(r.templates))
	for i, t := range r.templates {
		out[i] = cloneTemplate(t)
	}
	return out
}

func (r *TemplateRepository) GetByID(_ context.Context, id int) (*model.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	t := cloneTemplate(r.templates[i])
	return &t, nil
}

// Create assigns the next id to t and stores it.
func (r *TemplateRepository) Create(_ context.Context, t *model.Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextID
	r.nextID++
	r.templates = append(r.templates, cloneTemplate(*t))
	return nil
}

func (r *TemplateRepository) Update(_ context.Context, t *model.Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(t.ID)
	if i < 0 {
		return ErrNotFound
	}
	r.templates[i] = cloneTemplate(*t)
	return nil
}

func (r *TemplateRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.templates = append(r.templates[:i], r.templates[i+1:]...)
	return nil
}

func (r *TemplateRepository) indexOf(id int) int {
	for i, t := range r.templates {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneTemplate(t model.Template) model.Template {
	t.Subjects = append([]model.TemplateSubject(nil), t.Subjects...)
	return t
}
