package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/skills-assessment/internal/repository"
)

type SubjectService struct {
	subjectRepo *repository.SubjectRepository
	log         zerolog.Logger
}

func NewSubjectService(subjectRepo *repository.SubjectRepository, log zerolog.Logger) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
		log:         log.With().Str("component", "subject_service").Logger(),
	}
}

func (s *SubjectService) GetAll(ctx context.Context) []string {
	return s.subjectRepo.GetAll(ctx)
}

func (s *SubjectService) Create(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := s.subjectRepo.Create(ctx, name); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", ErrSubjectExists
		}
		return "", err
	}
	return name, nil
}
