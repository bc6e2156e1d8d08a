package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/skills-assessment/internal/model"
	"github.com/stemsi/skills-assessment/internal/repository"
	"github.com/stemsi/skills-assessment/internal/scoring"
)

// ScoringService grades exam submissions and owns the Result Store.
type ScoringService struct {
	candidateRepo *repository.CandidateRepository
	bankRepo      *repository.QuestionBankRepository
	resultRepo    repository.ResultRepository
	now           func() time.Time
	log           zerolog.Logger
}

// NewScoringService creates a new ScoringService.
func NewScoringService(
	candidateRepo *repository.CandidateRepository,
	bankRepo *repository.QuestionBankRepository,
	resultRepo repository.ResultRepository,
	log zerolog.Logger,
) *ScoringService {
	return &ScoringService{
		candidateRepo: candidateRepo,
		bankRepo:      bankRepo,
		resultRepo:    resultRepo,
		now:           time.Now,
		log:           log.With().Str("component", "scoring_service").Logger(),
	}
}

// Submit scores answers for (candidateID, examID) and stores the result,
// replacing any earlier submission for the same pair.
func (s *ScoringService) Submit(ctx context.Context, candidateID, examID string, answers model.AnswerMap) (*model.Result, error) {
	if _, err := s.candidateRepo.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}

	exam, err := s.bankRepo.GetExam(ctx, examID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}

	result, err := scoring.Score(exam, answers, s.now())
	if err != nil {
		if errors.Is(err, scoring.ErrAnswersRequired) {
			return nil, ErrAnswersRequired
		}
		return nil, fmt.Errorf("score submission: %w", err)
	}

	if err := s.resultRepo.Put(ctx, candidateID, examID, result); err != nil {
		s.log.Error().Err(err).
			Str("candidate_id", candidateID).
			Str("exam_id", examID).
			Msg("Failed to store result")
		return nil, fmt.Errorf("store result: %w", err)
	}

	s.log.Info().
		Str("candidate_id", candidateID).
		Str("exam_id", examID).
		Int("correct", result.CorrectCount).
		Int("incorrect", result.IncorrectCount).
		Int("unanswered", result.UnansweredCount).
		Float64("total_score", result.TotalScorePercent).
		Msg("Submission scored")

	return result, nil
}

// GetResult returns the stored result of candidateID for examID.
func (s *ScoringService) GetResult(ctx context.Context, candidateID, examID string) (*model.ExamResult, error) {
	if _, err := s.candidateRepo.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}
	if _, err := s.bankRepo.GetExam(ctx, examID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}

	res, err := s.resultRepo.Get(ctx, candidateID, examID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("get result: %w", err)
	}
	return &model.ExamResult{ExamID: examID, Result: res}, nil
}

// ListResults returns every stored result for candidateID, ordered by exam id.
func (s *ScoringService) ListResults(ctx context.Context, candidateID string) ([]model.ExamResult, error) {
	if _, err := s.candidateRepo.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}

	byExam, err := s.resultRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	out := make([]model.ExamResult, 0, len(byExam))
	for examID, res := range byExam {
		out = append(out, model.ExamResult{ExamID: examID, Result: res})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExamID < out[j].ExamID })
	return out, nil
}
