package postgres

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is applied in order inside one transaction. Every statement is
// idempotent so Migrate can run on every start.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS institutions (
		id            BIGSERIAL PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		description   VARCHAR(255),
		address       VARCHAR(255),
		creation_date DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id         BIGSERIAL PRIMARY KEY,
		name       VARCHAR(255) NOT NULL,
		last_name  VARCHAR(255) NOT NULL,
		rut        VARCHAR(12) NOT NULL,
		birth_date DATE NOT NULL,
		position   VARCHAR(255),
		age        INTEGER CHECK (age >= 0),
		CONSTRAINT users_rut_key UNIQUE (rut)
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id             BIGSERIAL PRIMARY KEY,
		name           VARCHAR(255) NOT NULL,
		description    VARCHAR(255),
		start_date     DATE NOT NULL,
		end_date       DATE NOT NULL,
		institution_id BIGINT NOT NULL,
		user_id        BIGINT NOT NULL,
		CONSTRAINT projects_institution_id_fkey FOREIGN KEY (institution_id)
			REFERENCES institutions (id) ON DELETE RESTRICT,
		CONSTRAINT projects_user_id_fkey FOREIGN KEY (user_id)
			REFERENCES users (id) ON DELETE RESTRICT
	)`,
	`CREATE INDEX IF NOT EXISTS projects_institution_id_idx ON projects (institution_id)`,
	`CREATE INDEX IF NOT EXISTS projects_user_id_idx ON projects (user_id)`,
	`CREATE INDEX IF NOT EXISTS projects_end_date_idx ON projects (end_date)`,
}

// Migrate creates the registry tables when missing.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for i, stmt := range Schema {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("statement %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Printf("[info] migrate applied %d statements", len(Schema))
	return nil
}
