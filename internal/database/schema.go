package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the club tables. Statements are idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS specializations (
	id   SERIAL PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS coaches (
	id                SERIAL PRIMARY KEY,
	full_name         TEXT NOT NULL,
	specialization_id INTEGER REFERENCES specializations(id) ON DELETE SET NULL,
	phone             TEXT NOT NULL DEFAULT '',
	email             TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS clients (
	id         SERIAL PRIMARY KEY,
	full_name  TEXT NOT NULL DEFAULT '',
	birth_date DATE,
	phone      TEXT NOT NULL DEFAULT '',
	email      TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS season_tickets (
	id                SERIAL PRIMARY KEY,
	specialization_id INTEGER NOT NULL REFERENCES specializations(id) ON DELETE RESTRICT,
	sessions_count    INTEGER NOT NULL CHECK (sessions_count > 0),
	price             NUMERIC(10, 2) NOT NULL
);

CREATE TABLE IF NOT EXISTS ticket_purchases (
	id               SERIAL PRIMARY KEY,
	client_id        INTEGER NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
	season_ticket_id INTEGER NOT NULL REFERENCES season_tickets(id) ON DELETE CASCADE,
	purchase_date    DATE NOT NULL DEFAULT CURRENT_DATE
);

CREATE INDEX IF NOT EXISTS idx_ticket_purchases_client ON ticket_purchases (client_id, id);

CREATE TABLE IF NOT EXISTS visits (
	id         SERIAL PRIMARY KEY,
	client_id  INTEGER NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
	coach_id   INTEGER NOT NULL REFERENCES coaches(id) ON DELETE CASCADE,
	visit_date TIMESTAMP,
	attended   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS activity_log (
	id          SERIAL PRIMARY KEY,
	event_id    UUID NOT NULL UNIQUE,
	entity      TEXT NOT NULL,
	entity_id   INTEGER NOT NULL,
	action      TEXT NOT NULL,
	occurred_at TIMESTAMPTZ NOT NULL
);
`

// Tables lists the schema tables in dependency order, leaves last.
var Tables = []string{"activity_log", "visits", "ticket_purchases", "season_tickets", "clients", "coaches", "specializations"}

// Migrate bootstraps the schema on an empty or existing database.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
