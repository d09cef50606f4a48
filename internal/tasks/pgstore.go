package tasks

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var _ Store = (*PgStore)(nil)

// PgStore is a PostgreSQL-backed task store.
type PgStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to dsn, pings, and ensures the tasks table exists.
func OpenPostgres(ctx context.Context, dsn string) (*PgStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	s := NewPgStore(pool)
	if err := s.EnsureTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// NewPgStore creates a PgStore over an existing pool.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

// EnsureTable creates the tasks table if it doesn't exist.
func (s *PgStore) EnsureTable(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id   BIGSERIAL PRIMARY KEY,
			task TEXT NOT NULL,
			time TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}

func (s *PgStore) Add(ctx context.Context, text, time string) (Task, error) {
	t := Task{Text: text, Time: time}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO tasks (task, time) VALUES ($1, $2) RETURNING id`, text, time,
	).Scan(&t.ID)
	if err != nil {
		return Task{}, fmt.Errorf("add task: %w", err)
	}
	return t, nil
}

func (s *PgStore) Delete(ctx context.Context, text string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM tasks WHERE task = $1`, text)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PgStore) List(ctx context.Context) ([]Task, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, task, time FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Text, &t.Time); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return out, nil
}

func (s *PgStore) Close() error {
	s.pool.Close()
	return nil
}
