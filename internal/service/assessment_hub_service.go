package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stemsi/skills-assessment/internal/model"
	"github.com/stemsi/skills-assessment/internal/repository"
)

// candidateIDPrefix is prepended to user ids when candidates are listed in the hub.
const candidateIDPrefix = "cand_"

// AssessmentHubService backs the manager's scheduling workflow.
type AssessmentHubService struct {
	templateRepo *repository.TemplateRepository
	userRepo     *repository.UserRepository
	scheduleRepo *repository.ScheduleRepository
	generated    []model.GeneratedQuestion
	now          func() time.Time
	log          zerolog.Logger
}

func NewAssessmentHubService(
	templateRepo *repository.TemplateRepository,
	userRepo *repository.UserRepository,
	scheduleRepo *repository.ScheduleRepository,
	generated []model.GeneratedQuestion,
	log zerolog.Logger,
) *AssessmentHubService {
	return &AssessmentHubService{
		templateRepo: templateRepo,
		userRepo:     userRepo,
		scheduleRepo: scheduleRepo,
		generated:    generated,
		now:          time.Now,
		log:          log.With().Str("component", "assessment_hub_service").Logger(),
	}
}

func (s *AssessmentHubService) ListTemplates(ctx context.Context) []model.Template {
	return s.templateRepo.List(ctx)
}

// ListCandidates returns every Candidate-role user in the hub projection.
func (s *AssessmentHubService) ListCandidates(ctx context.Context) []model.HubCandidate {
	users := s.userRepo.ListByRole(ctx, model.RoleCandidate)
	out := make([]model.HubCandidate, len(users))
	for i, u := range users {
		out[i] = model.HubCandidate{
			ID:       candidateIDPrefix + strconv.Itoa(u.ID),
			FullName: u.FullName(),
			Mobile:   u.MobileNo,
			Email:    u.Email,
		}
	}
	return out
}

// GenerateQuestions returns a draft question set for the template.
// Drafts come from the seed catalog; the skill level only labels the request.
func (s *AssessmentHubService) GenerateQuestions(ctx context.Context, req *model.GenerateQuestionsRequest) ([]model.GeneratedQuestion, error) {
	if _, err := s.templateRepo.GetByID(ctx, req.TemplateID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	out := make([]model.GeneratedQuestion, len(s.generated))
	for i, q := range s.generated {
		opts := make(map[string]string, len(q.Options))
		for k, v := range q.Options {
			opts[k] = v
		}
		q.Options = opts
		out[i] = q
	}

	s.log.Info().
		Int("template_id", req.TemplateID).
		Str("skill_level", req.SkillLevel).
		Int("count", len(out)).
		Msg("Questions generated")
	return out, nil
}

// ScheduleExam records a scheduled assessment for the template and candidates.
func (s *AssessmentHubService) ScheduleExam(ctx context.Context, req *model.ScheduleExamRequest) (*model.ScheduledAssessment, error) {
	if len(req.CandidateIDs) == 0 {
		return nil, ErrNoCandidates
	}
	if _, err := s.templateRepo.GetByID(ctx, req.TemplateID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	sched := &model.ScheduledAssessment{
		ScheduleID:    newScheduleID(),
		CreatedAt:     s.now().UTC(),
		TemplateID:    req.TemplateID,
		SkillLevel:    req.SkillLevel,
		CandidateIDs:  req.CandidateIDs,
		ScheduledDate: req.ScheduledDate,
		TimeLimit:     req.TimeLimit,
		QuestionIDs:   req.QuestionIDs,
	}
	if err := s.scheduleRepo.Create(ctx, sched); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("schedule_id", sched.ScheduleID).
		Int("template_id", sched.TemplateID).
		Int("candidates", len(sched.CandidateIDs)).
		Msg("Exam scheduled")
	return sched, nil
}

func (s *AssessmentHubService) ListSchedules(ctx context.Context) []model.ScheduledAssessment {
	return s.scheduleRepo.List(ctx)
}

// newScheduleID returns "sch_" followed by 8 hex characters.
func newScheduleID() string {
	return "sch_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
