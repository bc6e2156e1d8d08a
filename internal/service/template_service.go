package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/skills-assessment/internal/model"
	"github.com/stemsi/skills-assessment/internal/repository"
)

// TemplateService manages assessment templates.
type TemplateService struct {
	templateRepo *repository.TemplateRepository
	log          zerolog.Logger
}

func NewTemplateService(templateRepo *repository.TemplateRepository, log zerolog.Logger) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
		log:          log.With().Str("component", "template_service").Logger(),
	}
}

func (s *TemplateService) List(ctx context.Context) []model.Template {
	return s.templateRepo.List(ctx)
}

func (s *TemplateService) Get(ctx context.Context, id int) (*model.Template, error) {
	t, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TemplateService) Create(ctx context.Context, req *model.CreateTemplateRequest) (*model.Template, error) {
	if err := validateTemplateSubjects(req.Subjects); err != nil {
		return nil, err
	}

	t := &model.Template{
		Name:     strings.TrimSpace(req.Name),
		Subjects: req.Subjects,
	}
	if t.Subjects == nil {
		t.Subjects = []model.TemplateSubject{}
	}
	if err := s.templateRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.log.Info().Int("template_id", t.ID).Msg("Template created")
	return t, nil
}

// Update applies a partial update. A non-nil Subjects replaces the whole list.
func (s *TemplateService) Update(ctx context.Context, id int, req *model.UpdateTemplateRequest) (*model.Template, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		t.Name = strings.TrimSpace(*req.Name)
	}
	if req.Subjects != nil {
		if err := validateTemplateSubjects(req.Subjects); err != nil {
			return nil, err
		}
		t.Subjects = req.Subjects
	}

	if err := s.templateRepo.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TemplateService) Delete(ctx context.Context, id int) error {
	if err := s.templateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return err
	}
	s.log.Info().Int("template_id", id).Msg("Template deleted")
	return nil
}

// validateTemplateSubjects rejects blank subjects, weights outside 0..100
// and a combined weight above 100.
func validateTemplateSubjects(subjects []model.TemplateSubject) error {
	total := 0
	for _, ts := range subjects {
		if strings.TrimSpace(ts.Subject) == "" || ts.Weight < 0 || ts.Weight > 100 {
			return ErrInvalidTemplate
		}
		total += ts.Weight
	}
	if total > 100 {
		return ErrInvalidTemplate
	}
	return nil
}
