package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// The session is single-user and single-profile: every collection holds
// one record under this fixed key.
const SessionKey = "current"

// Collection names for the two independently-addressable records.
const (
	CollectionCards = "cards"
	CollectionStats = "stats"
)

// DocumentRepo is a durable key→record store. Save overwrites the prior
// record for (collection, key); Load reports a missing record through
// its boolean rather than an error.
type DocumentRepo interface {
	Save(ctx context.Context, collection, key string, record any) error
	Load(ctx context.Context, collection, key string, out any) (bool, error)
	Delete(ctx context.Context, collection, key string) error
}

type documentRepo struct {
	db *sql.DB
}

func (r *documentRepo) Save(ctx context.Context, collection, key string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal %s record: %w", collection, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO documents (collection, key, data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (collection, key) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		collection, key, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save %s record: %w", collection, err)
	}
	return nil
}

func (r *documentRepo) Load(ctx context.Context, collection, key string, out any) (bool, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = ? AND key = ?`,
		collection, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s record: %w", collection, err)
	}

	if err := json.Unmarshal([]byte(data), out); err != nil {
		return false, fmt.Errorf("unmarshal %s record: %w", collection, err)
	}
	return true, nil
}

func (r *documentRepo) Delete(ctx context.Context, collection, key string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND key = ?`,
		collection, key)
	if err != nil {
		return fmt.Errorf("delete %s record: %w", collection, err)
	}
	return nil
}
