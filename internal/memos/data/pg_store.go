package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the SQLSTATE for a primary key conflict.
const pgUniqueViolation = "23505"

const pgSchema = `
CREATE TABLE IF NOT EXISTS memo (
	id        TEXT PRIMARY KEY,
	content   TEXT NOT NULL,
	date      TIMESTAMPTZ NOT NULL,
	color_hex TEXT NOT NULL,
	seq       BIGSERIAL
)`

// PGStore keeps memos in a PostgreSQL table.
type PGStore struct {
	Pool *pgxpool.Pool
}

// NewPGStore connects to databaseURI and creates the memo table if needed.
func NewPGStore(ctx context.Context, databaseURI string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, pgSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to create memo table: %w", err)
	}
	return &PGStore{Pool: pool}, nil
}

func (s *PGStore) Insert(ctx context.Context, memo Memo) (string, error) {
	if memo.ID == "" {
		memo.ID = uuid.NewString()
	}
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO memo (id, content, date, color_hex) VALUES ($1, $2, $3, $4)`,
		memo.ID, memo.Content, memo.Date, memo.ColorHex,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return "", fmt.Errorf("%w: %s", ErrDuplicateID, memo.ID)
		}
		return "", err
	}
	return memo.ID, nil
}

func (s *PGStore) List(ctx context.Context) ([]Memo, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT id, content, date, color_hex FROM memo ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memos []Memo
	for rows.Next() {
		var m Memo
		if err := rows.Scan(&m.ID, &m.Content, &m.Date, &m.ColorHex); err != nil {
			return nil, err
		}
		memos = append(memos, m)
	}
	return memos, rows.Err()
}

func (s *PGStore) Delete(ctx context.Context, id string) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM memo WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMemoNotFound
	}
	return nil
}

func (s *PGStore) Close() error {
	s.Pool.Close()
	return nil
}
