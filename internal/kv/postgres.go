package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"perf-analytics/internal/database"
)

// PostgresKV 以單一 kv 資料表實作 KV，schema 由 database.RunMigrations 建立。
type PostgresKV struct {
	db database.DB
}

func NewPostgresKV(db database.DB) *PostgresKV {
	return &PostgresKV{db: db}
}

func (p *PostgresKV) Get(ctx context.Context, key string) (string, error) {
	row := p.db.QueryRow(ctx,
		`SELECT value FROM kv WHERE key = $1`,
		key,
	)
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("Get %s: %w", key, err)
	}
	return value, nil
}

func (p *PostgresKV) Set(ctx context.Context, key string, value string) error {
	_, err := p.db.Exec(ctx,
		`INSERT INTO kv (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key,
		value,
	)
	if err != nil {
		return fmt.Errorf("Set %s: %w", key, err)
	}
	return nil
}

func (p *PostgresKV) Delete(ctx context.Context, key string) error {
	tag, err := p.db.Exec(ctx,
		`DELETE FROM kv WHERE key = $1`,
		key,
	)
	if err != nil {
		return fmt.Errorf("Delete %s: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrKeyNotFound
	}
	return nil
}

func (p *PostgresKV) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

func (p *PostgresKV) Close() error {
	p.db.Close()
	return nil
}
