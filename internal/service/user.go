// Package service contains the business logic layer of the application.
//
// Handlers parse HTTP and write responses; services validate input, enforce
// the domain rules, and talk to the repositories; repositories own the SQL.
// Services take repository interfaces (not concrete sqlite types), so tests
// swap in-memory fakes without touching a database.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/andresmz/exercise-tracker/internal/apperror"
	"github.com/andresmz/exercise-tracker/internal/model"
	"github.com/andresmz/exercise-tracker/internal/repository"
)

// UserService handles registration and lookup of users.
type UserService struct {
	repo   repository.UserRepository
	logger *slog.Logger
}

func NewUserService(repo repository.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// Create registers a new user. The only rule is that username must be
// present — no uniqueness check, no length limit, no character policy.
// The validation message is surfaced verbatim in the 400 body.
func (s *UserService) Create(ctx context.Context, username string) (*model.User, error) {
	if username == "" {
		return nil, apperror.ValidationFailed("username", "Username is required")
	}

	user := &model.User{Username: username}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user created",
		slog.String("id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// List returns all registered users, unfiltered, in storage order.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// GetByID resolves a user by ID.
// Returns apperror.ErrNotFound when no such user exists.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err // already a proper apperror (or a wrapped db failure)
	}
	return user, nil
}
