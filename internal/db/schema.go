package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// every statement is idempotent, so running this on each boot is safe
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL,
		name          TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_uniq ON users(email)`,
	`CREATE TABLE IF NOT EXISTS rockets (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		type           TEXT NOT NULL,
		specifications JSONB NOT NULL DEFAULT '{}',
		status         TEXT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS missions (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL,
		launch_date TIMESTAMPTZ NOT NULL,
		payload     TEXT NOT NULL DEFAULT '',
		orbit       TEXT NOT NULL DEFAULT '',
		customer    TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS team_members (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		position   TEXT NOT NULL,
		department TEXT NOT NULL DEFAULT '',
		bio        TEXT NOT NULL DEFAULT '',
		experience TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS schedules (
		id           TEXT PRIMARY KEY,
		mission_name TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		launch_date  TIMESTAMPTZ NOT NULL,
		launch_time  TEXT NOT NULL DEFAULT '',
		rocket       TEXT NOT NULL DEFAULT '',
		launch_site  TEXT NOT NULL DEFAULT '',
		customer     TEXT NOT NULL DEFAULT '',
		payload      TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS schedules_launch_date_idx ON schedules(launch_date)`,
}

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}
