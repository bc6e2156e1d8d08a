package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/stemsi/skills-assessment/internal/model"
	"github.com/stemsi/skills-assessment/internal/repository"
)

// CandidateExamService serves the exam catalog and exam papers to candidates.
// Nothing it returns carries an answer key.
type CandidateExamService struct {
	candidateRepo *repository.CandidateRepository
	bankRepo      *repository.QuestionBankRepository
	log           zerolog.Logger
}

func NewCandidateExamService(
	candidateRepo *repository.CandidateRepository,
	bankRepo *repository.QuestionBankRepository,
	log zerolog.Logger,
) *CandidateExamService {
	return &CandidateExamService{
		candidateRepo: candidateRepo,
		bankRepo:      bankRepo,
		log:           log.With().Str("component", "candidate_exam_service").Logger(),
	}
}

// ListCatalog returns a summary of every exam in catalog order.
func (s *CandidateExamService) ListCatalog(ctx context.Context, candidateID string) ([]model.ExamSummary, error) {
	if err := s.requireCandidate(ctx, candidateID); err != nil {
		return nil, err
	}

	exams := s.bankRepo.ListExams(ctx)
	out := make([]model.ExamSummary, len(exams))
	for i := range exams {
		out[i] = exams[i].Summary()
	}
	return out, nil
}

// GetExamForCandidate returns the exam paper without correct answers.
func (s *CandidateExamService) GetExamForCandidate(ctx context.Context, candidateID, examID string) (*model.PublicExam, error) {
	if err := s.requireCandidate(ctx, candidateID); err != nil {
		return nil, err
	}

	exam, err := s.bankRepo.GetExam(ctx, examID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}
	paper := exam.Public()
	return &paper, nil
}

func (s *CandidateExamService) requireCandidate(ctx context.Context, candidateID string) error {
	if _, err := s.candidateRepo.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCandidateNotFound
		}
		return err
	}
	return nil
}
