package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/stemsi/skills-assessment/internal/model"
	"github.com/stemsi/skills-assessment/internal/repository"
)

// DashboardService builds the manager assessment dashboard.
type DashboardService struct {
	dashboardRepo *repository.DashboardRepository
	userRepo      *repository.UserRepository
	log           zerolog.Logger
}

func NewDashboardService(dashboardRepo *repository.DashboardRepository, userRepo *repository.UserRepository, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		userRepo:      userRepo,
		log:           log.With().Str("component", "dashboard_service").Logger(),
	}
}

// ForManager returns the records of the manager's direct candidate reports,
// matched by full name. An email that is not a manager's gets every record.
func (s *DashboardService) ForManager(ctx context.Context, email string) ([]model.DashboardRecord, error) {
	records := s.dashboardRepo.List(ctx)

	manager, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if manager == nil || manager.Role != model.RoleManager {
		s.log.Debug().Str("email", email).Msg("Unknown manager, returning all records")
		return records, nil
	}

	reports := make(map[string]struct{})
	for _, u := range s.userRepo.ListByRole(ctx, model.RoleCandidate) {
		if u.ManagerID != nil && *u.ManagerID == manager.ID {
			reports[u.FullName()] = struct{}{}
		}
	}

	out := make([]model.DashboardRecord, 0, len(reports))
	for _, rec := range records {
		if _, ok := reports[rec.Name]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}
