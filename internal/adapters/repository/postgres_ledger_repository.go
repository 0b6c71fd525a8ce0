package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

var (
	_ domain.TransactionRepository = (*PostgresTransactionRepository)(nil)
	_ domain.TaskRepository        = (*PostgresTaskRepository)(nil)
	_ domain.QuickLogRepository    = (*PostgresQuickLogRepository)(nil)
)

type PostgresTransactionRepository struct {
	db *sqlx.DB
}

func NewPostgresTransactionRepository(db *sqlx.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

func (r *PostgresTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `
		INSERT INTO finances (id, transaction_type, amount, category, description, date, created_at)
		VALUES (:id, :transaction_type, :amount, :category, :description, :date, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, tx); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *PostgresTransactionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM finances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return expectAffected(res, domain.ErrTransactionNotFound)
}

func (r *PostgresTransactionRepository) ListSince(ctx context.Context, from calendar.Date) ([]*domain.Transaction, error) {
	txs := []*domain.Transaction{}

	query := `
		SELECT id, transaction_type, amount, category, description, date, created_at
		FROM finances
		WHERE date >= $1
		ORDER BY date DESC, created_at DESC`

	if err := r.db.SelectContext(ctx, &txs, query, from); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

type PostgresTaskRepository struct {
	db *sqlx.DB
}

func NewPostgresTaskRepository(db *sqlx.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

func (r *PostgresTaskRepository) Create(ctx context.Context, t *domain.Task) error {
	query := `
		INSERT INTO tasks (id, title, completed, due_date, created_at)
		VALUES (:id, :title, :completed, :due_date, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, t); err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *PostgresTaskRepository) Complete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("complete task: %w", err)
	}
	return expectAffected(res, domain.ErrTaskNotFound)
}

func (r *PostgresTaskRepository) ListOpen(ctx context.Context) ([]*domain.Task, error) {
	tasks := []*domain.Task{}

	query := `
		SELECT id, title, completed, due_date, created_at
		FROM tasks
		WHERE NOT completed
		ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &tasks, query); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *PostgresTaskRepository) Counts(ctx context.Context) (domain.TaskCounts, error) {
	var counts domain.TaskCounts

	query := `
		SELECT
			COUNT(*) FILTER (WHERE NOT completed) AS pending,
			COUNT(*) FILTER (WHERE completed) AS completed
		FROM tasks`

	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return domain.TaskCounts{}, fmt.Errorf("count tasks: %w", err)
	}
	return counts, nil
}

type PostgresQuickLogRepository struct {
	db *sqlx.DB
}

func NewPostgresQuickLogRepository(db *sqlx.DB) *PostgresQuickLogRepository {
	return &PostgresQuickLogRepository{db: db}
}

func (r *PostgresQuickLogRepository) AddCigarette(ctx context.Context) (*domain.CigaretteLog, error) {
	c := &domain.CigaretteLog{ID: uuid.NewString(), CreatedAt: time.Now().UTC()}

	if _, err := r.db.NamedExecContext(ctx, `INSERT INTO cigarettes_log (id, created_at) VALUES (:id, :created_at)`, c); err != nil {
		return nil, fmt.Errorf("insert cigarette log: %w", err)
	}
	return c, nil
}

func (r *PostgresQuickLogRepository) DeleteCigarette(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cigarettes_log WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cigarette log: %w", err)
	}
	return expectAffected(res, domain.ErrCigaretteNotFound)
}

func (r *PostgresQuickLogRepository) ListCigarettesSince(ctx context.Context, since time.Time) ([]*domain.CigaretteLog, error) {
	logs := []*domain.CigaretteLog{}

	query := `SELECT id, created_at FROM cigarettes_log WHERE created_at >= $1 ORDER BY created_at ASC`

	if err := r.db.SelectContext(ctx, &logs, query, since); err != nil {
		return nil, fmt.Errorf("list cigarette logs: %w", err)
	}
	return logs, nil
}

func (r *PostgresQuickLogRepository) GetParking(ctx context.Context) (*domain.Parking, error) {
	var p domain.Parking

	if err := r.db.GetContext(ctx, &p, `SELECT location, updated_at FROM parking WHERE id = 1`); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parking: %w", err)
	}
	return &p, nil
}

func (r *PostgresQuickLogRepository) SaveParking(ctx context.Context, p *domain.Parking) error {
	query := `
		INSERT INTO parking (id, location, updated_at)
		VALUES (1, :location, :updated_at)
		ON CONFLICT (id) DO UPDATE SET location = EXCLUDED.location, updated_at = EXCLUDED.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("save parking: %w", err)
	}
	return nil
}
