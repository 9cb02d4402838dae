package users

import (
	"context"
	"fmt"

	"github.com/mcdev12/userform/go/internal/models"
	"github.com/rs/zerolog/log"
)

const requiredFieldsMessage = "username, email and contact are required"

// UsersRepository defines what the app layer needs from the repository
type UsersRepository interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// App handles users business logic
type App struct {
	repo UsersRepository
}

// NewApp creates a new users App
func NewApp(repo UsersRepository) *App {
	return &App{
		repo: repo,
	}
}

// CreateUser validates the request and stores a new user
func (a *App) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if err := a.validateCreateUserRequest(req); err != nil {
		return nil, err
	}

	user, err := a.repo.CreateUser(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("created user")
	return user, nil
}

// ListUsers returns all users ordered newest first
func (a *App) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := a.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

// validateCreateUserRequest only checks presence; formats are not enforced
func (a *App) validateCreateUserRequest(req CreateUserRequest) error {
	if req.Username == "" || req.Email == "" || req.Contact == "" {
		return &ValidationError{Message: requiredFieldsMessage}
	}
	return nil
}
