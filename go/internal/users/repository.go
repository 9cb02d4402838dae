package users

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mcdev12/userform/go/internal/models"
	"github.com/mcdev12/userform/go/internal/sqlutil"
	"github.com/mcdev12/userform/go/internal/users/db"
)

// Repository implements user data access operations
type Repository struct {
	db      *sql.DB
	queries *db.Queries
}

// NewRepository creates a new users repository
func NewRepository(queries *db.Queries, database *sql.DB) *Repository {
	return &Repository{
		queries: queries,
		db:      database,
	}
}

// CreateUser inserts a user and re-reads it by the assigned id.
// Both statements share a transaction so a failed re-read leaves no row behind.
func (r *Repository) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	var created db.User
	err := sqlutil.Run(ctx, r.db, r.queries.WithTx, func(q *db.Queries) error {
		id, err := q.CreateUser(ctx, db.CreateUserParams{
			Username: req.Username,
			Info:     req.Info,
			Email:    req.Email,
			Contact:  req.Contact,
		})
		if err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}

		created, err = q.GetUser(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to read back user %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return r.dbUserToModel(created), nil
}

// ListUsers returns every user, newest first
func (r *Repository) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := r.queries.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, r.dbUserToModel(row))
	}
	return users, nil
}

// Ping runs a trivial query to check the store is reachable
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.queries.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// dbUserToModel converts a database user to domain model
func (r *Repository) dbUserToModel(dbUser db.User) *models.User {
	return &models.User{
		ID:       dbUser.ID,
		Username: dbUser.Username,
		Info:     sqlutil.FromSqlString(dbUser.Info, ""),
		Email:    dbUser.Email,
		Contact:  dbUser.Contact,
	}
}
