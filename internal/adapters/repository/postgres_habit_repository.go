package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

var (
	_ domain.HabitRepository    = (*PostgresHabitRepository)(nil)
	_ domain.HabitLogRepository = (*PostgresHabitLogRepository)(nil)
)

type PostgresHabitRepository struct {
	db *sqlx.DB
}

func NewPostgresHabitRepository(db *sqlx.DB) *PostgresHabitRepository {
	return &PostgresHabitRepository{db: db}
}

func (r *PostgresHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	habits := []*domain.Habit{}

	query := `SELECT id, name, created_at FROM custom_tasks ORDER BY created_at ASC, name ASC`

	if err := r.db.SelectContext(ctx, &habits, query); err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return habits, nil
}

func (r *PostgresHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	var h domain.Habit

	query := `SELECT id, name, created_at FROM custom_tasks WHERE id = $1`

	if err := r.db.GetContext(ctx, &h, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, fmt.Errorf("get habit: %w", err)
	}
	return &h, nil
}

func (r *PostgresHabitRepository) Create(ctx context.Context, h *domain.Habit) error {
	query := `INSERT INTO custom_tasks (id, name, created_at) VALUES (:id, :name, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, h); err != nil {
		return fmt.Errorf("insert habit: %w", err)
	}
	return nil
}

func (r *PostgresHabitRepository) Update(ctx context.Context, h *domain.Habit) error {
	res, err := r.db.ExecContext(ctx, `UPDATE custom_tasks SET name = $1 WHERE id = $2`, h.Name, h.ID)
	if err != nil {
		return fmt.Errorf("update habit: %w", err)
	}
	return expectAffected(res, domain.ErrHabitNotFound)
}

// Delete removes the habit. daily_task_logs has no foreign key, so past
// completions survive.
func (r *PostgresHabitRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM custom_tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete habit: %w", err)
	}
	return expectAffected(res, domain.ErrHabitNotFound)
}

type PostgresHabitLogRepository struct {
	db *sqlx.DB
}

func NewPostgresHabitLogRepository(db *sqlx.DB) *PostgresHabitLogRepository {
	return &PostgresHabitLogRepository{db: db}
}

// Upsert writes the log only while the habit exists.
func (r *PostgresHabitLogRepository) Upsert(ctx context.Context, l *domain.HabitLog) error {
	query := `
		INSERT INTO daily_task_logs (task_id, date, completed)
		SELECT $1::uuid, $2::date, $3::boolean
		WHERE EXISTS (SELECT 1 FROM custom_tasks WHERE id = $1::uuid)
		ON CONFLICT (date, task_id) DO UPDATE SET completed = EXCLUDED.completed`

	res, err := r.db.ExecContext(ctx, query, l.HabitID, l.Date, l.Completed)
	if err != nil {
		return fmt.Errorf("upsert habit log: %w", err)
	}
	return expectAffected(res, domain.ErrHabitNotFound)
}

func (r *PostgresHabitLogRepository) ListBetween(ctx context.Context, from, to calendar.Date) ([]*domain.HabitLog, error) {
	logs := []*domain.HabitLog{}

	query := `
		SELECT task_id, date, completed
		FROM daily_task_logs
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC`

	if err := r.db.SelectContext(ctx, &logs, query, from, to); err != nil {
		return nil, fmt.Errorf("list habit logs: %w", err)
	}
	return logs, nil
}

func (r *PostgresHabitLogRepository) CountCompletedBetween(ctx context.Context, from, to calendar.Date) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM daily_task_logs WHERE completed AND date >= $1 AND date <= $2`

	if err := r.db.GetContext(ctx, &count, query, from, to); err != nil {
		return 0, fmt.Errorf("count habit logs: %w", err)
	}
	return count, nil
}
