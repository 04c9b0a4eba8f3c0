package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// KV is the flat string key/value store the state is persisted through.
// Absent keys are reported via the ok return, not as errors.
type KV struct {
	db *sql.DB
}

func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

func (kv *KV) Get(ctx context.Context, key string) (string, bool, error) {
	row := kv.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv get %q: %w", key, err)
	}
	return value, true, nil
}

func (kv *KV) Set(ctx context.Context, key string, value string) error {
	return kv.setOn(ctx, kv.db, key, value)
}

// SetAll writes every pair inside a single transaction.
func (kv *KV) SetAll(ctx context.Context, pairs map[string]string) error {
	return WithTx(ctx, kv.db, func(tx *sql.Tx) error {
		for key, value := range pairs {
			if err := kv.setOn(ctx, tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (kv *KV) setOn(ctx context.Context, ex execer, key string, value string) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}
