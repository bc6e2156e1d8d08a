package service

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/skills-assessment/internal/repository"
	"github.com/stemsi/skills-assessment/internal/seed"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC)

type fixture struct {
	results   repository.ResultRepository
	users     *repository.UserRepository
	templates *repository.TemplateRepository

	scoring   *ScoringService
	exams     *CandidateExamService
	auth      *AuthService
	userSvc   *UserService
	templSvc  *TemplateService
	subjects  *SubjectService
	hub       *AssessmentHubService
	dashboard *DashboardService
}

// newFixture wires every service over the embedded seed catalog.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	catalog, err := seed.Load("")
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	users, err := HashPasswords(catalog.Users, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash passwords: %v", err)
	}

	log := zerolog.Nop()
	f := &fixture{
		results:   repository.NewMemoryResultRepository(),
		users:     repository.NewUserRepository(users),
		templates: repository.NewTemplateRepository(catalog.Templates),
	}
	candidates := repository.NewCandidateRepository(catalog.Candidates)
	bank := repository.NewQuestionBankRepository(catalog.Exams)

	f.scoring = NewScoringService(candidates, bank, f.results, log)
	f.scoring.now = func() time.Time { return fixedNow }
	f.exams = NewCandidateExamService(candidates, bank, log)
	f.auth = NewAuthService(f.users, bcrypt.MinCost, log)
	f.userSvc = NewUserService(f.users, f.auth, log)
	f.templSvc = NewTemplateService(f.templates, log)
	f.subjects = NewSubjectService(repository.NewSubjectRepository(catalog.Subjects), log)
	f.hub = NewAssessmentHubService(f.templates, f.users, repository.NewScheduleRepository(), catalog.GeneratedQuestions, log)
	f.hub.now = func() time.Time { return fixedNow }
	f.dashboard = NewDashboardService(repository.NewDashboardRepository(catalog.Dashboard), f.users, log)
	return f
}
