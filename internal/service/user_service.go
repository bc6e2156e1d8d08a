package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/skills-assessment/internal/model"
	"github.com/stemsi/skills-assessment/internal/repository"
)

// UserService manages platform accounts.
type UserService struct {
	userRepo    *repository.UserRepository
	authService *AuthService
	log         zerolog.Logger
}

func NewUserService(userRepo *repository.UserRepository, authService *AuthService, log zerolog.Logger) *UserService {
	return &UserService{
		userRepo:    userRepo,
		authService: authService,
		log:         log.With().Str("component", "user_service").Logger(),
	}
}

func (s *UserService) List(ctx context.Context) []model.User {
	return s.userRepo.List(ctx)
}

// ListManagers returns every user with the Manager role.
func (s *UserService) ListManagers(ctx context.Context) []model.User {
	return s.userRepo.ListByRole(ctx, model.RoleManager)
}

// Create registers a new active user.
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	hash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     strings.TrimSpace(req.Email),
		Password:  hash,
		Role:      req.Role,
		Status:    model.UserStatusActive,
		ManagerID: req.ManagerID,
		MobileNo:  req.MobileNo,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.log.Info().Int("user_id", user.ID).Str("role", string(user.Role)).Msg("User created")
	return user, nil
}

// Update applies the non-nil fields of req to the user with id.
func (s *UserService) Update(ctx context.Context, id int, req *model.UpdateUserRequest) (*model.User, error) {
	user, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.ManagerID != nil {
		user.ManagerID = req.ManagerID
	}
	if req.MobileNo != nil {
		user.MobileNo = *req.MobileNo
	}
	if req.Password != nil {
		hash, err := s.authService.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	s.log.Info().Int("user_id", id).Msg("User deleted")
	return nil
}

// ToggleStatus flips the user between active and inactive.
func (s *UserService) ToggleStatus(ctx context.Context, id int) (*model.User, error) {
	user, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Status == model.UserStatusActive {
		user.Status = model.UserStatusInactive
	} else {
		user.Status = model.UserStatusActive
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) get(ctx context.Context, id int) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
