package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskdeck/todo-system/internal/api/metrics"
	"github.com/taskdeck/todo-system/internal/core/domain"
	"github.com/taskdeck/todo-system/internal/core/ports"
)

// AuthService implements registration and login on top of the account
// repository, the password hasher, and the token service.
type AuthService struct {
	repo   ports.AuthRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, hasher ports.PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, string, error) {
	// Uniqueness is pre-checked rather than inferred from a storage error,
	// so the conflict outcome is deterministic.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", fmt.Errorf("register: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("register: %w", err)
	}

	token, err := s.tokens.Issue(created.ID.String(), created.Email)
	if err != nil {
		return nil, "", fmt.Errorf("register: %w", err)
	}

	metrics.UsersRegisteredTotal.Inc()
	s.logger.Info().Str("user_id", created.ID.String()).Msg("user registered")

	return created, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same outcome as a wrong password: never reveal which.
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.String(), user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID.String()).Msg("user logged in")

	return user, token, nil
}
