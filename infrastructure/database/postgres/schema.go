package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Tabelas mantidas por este serviço
var schema = []string{
	`CREATE TABLE IF NOT EXISTS report_snapshots (
		id            BIGSERIAL PRIMARY KEY,
		snapshot_date DATE NOT NULL UNIQUE,
		granularity   TEXT NOT NULL,
		grand_total   NUMERIC(14, 2) NOT NULL DEFAULT 0,
		buckets       JSONB NOT NULL DEFAULT '[]',
		top_customers JSONB NOT NULL DEFAULT '[]',
		top_products  JSONB NOT NULL DEFAULT '[]',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_report_snapshots_updated_at ON report_snapshots (updated_at DESC)`,
}

// EnsureSchema cria as tabelas do serviço quando ainda não existem
func (c *Connection) EnsureSchema(ctx context.Context) error {
	return c.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao criar schema: %w", err)
			}
		}
		return nil
	})
}
