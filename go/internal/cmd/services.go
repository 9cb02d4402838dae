package main

import (
	"database/sql"

	"github.com/mcdev12/userform/go/internal/health"
	"github.com/mcdev12/userform/go/internal/sqlutil"
	"github.com/mcdev12/userform/go/internal/users"
	usersdb "github.com/mcdev12/userform/go/internal/users/db"
)

type Services struct {
	Users  *users.Service
	Health *health.Checker
}

func setupServices(database *sql.DB, dialect sqlutil.Dialect) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer

	userQueries := usersdb.New(database, dialect)
	userRepo := users.NewRepository(userQueries, database)
	userApp := users.NewApp(userRepo)
	userService := users.NewService(userApp)

	return &Services{
		Users:  userService,
		Health: health.NewChecker(userRepo),
	}
}
