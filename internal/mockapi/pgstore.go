package mockapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const pgSchema = `
CREATE TABLE IF NOT EXISTS records (
    collection TEXT        NOT NULL,
    id         TEXT        NOT NULL,
    doc        JSONB       NOT NULL,
    position   BIGSERIAL,
    PRIMARY KEY (collection, id)
)`

// PGStore persists collections in a single jsonb table, so the mock API can
// keep its data across restarts when a DATABASE_URL is configured. Query
// evaluation still happens in the handler layer; the table is storage only.
type PGStore struct {
	db *sqlx.DB
}

func NewPGStore(dsn string) (*PGStore, error) {
	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("mockapi: connect: %w", err)
	}
	if _, err := db.Exec(pgSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("mockapi: migrate: %w", err)
	}
	return &PGStore{db: db}, nil
}

func (s *PGStore) Close() error {
	return s.db.Close()
}

func (s *PGStore) List(ctx context.Context, collection string) ([]Record, error) {
	const query = `SELECT doc FROM records WHERE collection = $1 ORDER BY position`
	var raw [][]byte
	if err := s.db.SelectContext(ctx, &raw, query, collection); err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(raw))
	for _, buf := range raw {
		var doc Record
		if err := json.Unmarshal(buf, &doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (s *PGStore) Get(ctx context.Context, collection, id string) (Record, bool, error) {
	const query = `SELECT doc FROM records WHERE collection = $1 AND id = $2`
	var buf []byte
	if err := s.db.GetContext(ctx, &buf, query, collection, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var doc Record
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

func (s *PGStore) Insert(ctx context.Context, collection, id string, doc Record) (Record, error) {
	stored := cloneRecord(doc)
	stored["id"] = id
	buf, err := json.Marshal(stored)
	if err != nil {
		return nil, err
	}
	const query = `
        INSERT INTO records (collection, id, doc)
        VALUES ($1, $2, $3)
        ON CONFLICT (collection, id) DO UPDATE SET doc = EXCLUDED.doc
        RETURNING doc`
	var out []byte
	if err := s.db.GetContext(ctx, &out, query, collection, id, buf); err != nil {
		return nil, err
	}
	var result Record
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *PGStore) Patch(ctx context.Context, collection, id string, partial Record) (Record, bool, error) {
	merged := cloneRecord(partial)
	delete(merged, "id")
	buf, err := json.Marshal(merged)
	if err != nil {
		return nil, false, err
	}
	// jsonb concatenation is exactly the shallow-merge PATCH semantics.
	const query = `
        UPDATE records
        SET doc = doc || $3
        WHERE collection = $1 AND id = $2
        RETURNING doc`
	var out []byte
	if err := s.db.GetContext(ctx, &out, query, collection, id, buf); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var result Record
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, false, err
	}
	return result, true, nil
}
