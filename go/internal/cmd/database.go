package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/mcdev12/userform/go/internal/dbconfig"
	"github.com/rs/zerolog/log"
)

// setupDatabase opens the connection pool. An unreachable store is logged
// but not fatal; /health reports it and requests fail until it returns.
func setupDatabase(ctx context.Context, dbConfig dbconfig.Config) (*sql.DB, error) {
	database, err := sql.Open(dbConfig.DriverName(), dbConfig.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	database.SetMaxOpenConns(dbConfig.ConnectionLimit)
	database.SetMaxIdleConns(dbConfig.ConnectionLimit)
	database.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := database.PingContext(pingCtx); err != nil {
		log.Warn().Err(err).
			Str("driver", dbConfig.Driver).
			Str("host", dbConfig.Host).
			Int("port", dbConfig.Port).
			Msg("database not reachable at startup")
		return database, nil
	}

	log.Info().
		Str("driver", dbConfig.Driver).
		Str("user", dbConfig.User).
		Str("host", dbConfig.Host).
		Int("port", dbConfig.Port).
		Str("database", dbConfig.Database).
		Int("pool_size", dbConfig.ConnectionLimit).
		Msg("connected to database")
	return database, nil
}
