package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/skills-assessment/internal/model"
	"github.com/stemsi/skills-assessment/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles sign-in against the user registry and password hashing.
type AuthService struct {
	userRepo   *repository.UserRepository
	bcryptCost int
	log        zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo *repository.UserRepository, bcryptCost int, log zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
		log:        log.With().Str("component", "auth_service").Logger(),
	}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	return HashPassword(password, s.bcryptCost)
}

// HashPassword hashes password at cost. Costs below bcrypt.MinCost are raised to it.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Login resolves the user by email (case-insensitive) and verifies the password.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.CheckPassword(user.Password, password); err != nil {
		s.log.Warn().Int("user_id", user.ID).Msg("Login rejected: wrong password")
		return nil, err
	}
	if user.Status == model.UserStatusInactive {
		return nil, ErrUserInactive
	}

	s.log.Info().Int("user_id", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return &model.LoginResponse{
		Username: user.Email,
		Role:     user.Role.Lower(),
		UserID:   user.ID,
	}, nil
}

// HashPasswords returns a copy of users with every plain password replaced by its bcrypt hash.
func HashPasswords(users []model.User, cost int) ([]model.User, error) {
	out := make([]model.User, len(users))
	for i, u := range users {
		hash, err := HashPassword(u.Password, cost)
		if err != nil {
			return nil, fmt.Errorf("user %d: %w", u.ID, err)
		}
		u.Password = hash
		out[i] = u
	}
	return out, nil
}
