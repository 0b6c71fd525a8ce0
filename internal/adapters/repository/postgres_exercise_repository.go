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
	_ domain.ExerciseRepository   = (*PostgresExerciseRepository)(nil)
	_ domain.WorkoutLogRepository = (*PostgresWorkoutLogRepository)(nil)
)

type PostgresExerciseRepository struct {
	db *sqlx.DB
}

func NewPostgresExerciseRepository(db *sqlx.DB) *PostgresExerciseRepository {
	return &PostgresExerciseRepository{db: db}
}

func (r *PostgresExerciseRepository) List(ctx context.Context) ([]*domain.Exercise, error) {
	exercises := []*domain.Exercise{}

	query := `SELECT id, name, goal_amount, goal_period FROM workout_types ORDER BY name ASC`

	if err := r.db.SelectContext(ctx, &exercises, query); err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

func (r *PostgresExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	var e domain.Exercise

	query := `SELECT id, name, goal_amount, goal_period FROM workout_types WHERE id = $1`

	if err := r.db.GetContext(ctx, &e, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return &e, nil
}

func (r *PostgresExerciseRepository) Create(ctx context.Context, e *domain.Exercise) error {
	query := `
		INSERT INTO workout_types (id, name, goal_amount, goal_period)
		VALUES (:id, :name, :goal_amount, :goal_period)`

	if _, err := r.db.NamedExecContext(ctx, query, e); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrExerciseExists
		}
		return fmt.Errorf("insert exercise: %w", err)
	}
	return nil
}

// Update rewrites the definition and, on rename, moves the exercise's
// logs to the new name in the same transaction.
func (r *PostgresExerciseRepository) Update(ctx context.Context, e *domain.Exercise, previousName string) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			UPDATE workout_types
			SET name = :name, goal_amount = :goal_amount, goal_period = :goal_period
			WHERE id = :id`

		res, err := tx.NamedExecContext(ctx, query, e)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrExerciseExists
			}
			return fmt.Errorf("update exercise: %w", err)
		}
		if err := expectAffected(res, domain.ErrExerciseNotFound); err != nil {
			return err
		}

		if previousName == "" || previousName == e.Name {
			return nil
		}

		if _, err := tx.ExecContext(ctx, `UPDATE workout_logs SET exercise = $1 WHERE exercise = $2`, e.Name, previousName); err != nil {
			return fmt.Errorf("migrate workout logs: %w", err)
		}
		return nil
	})
}

func (r *PostgresExerciseRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workout_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return expectAffected(res, domain.ErrExerciseNotFound)
}

type PostgresWorkoutLogRepository struct {
	db *sqlx.DB
}

func NewPostgresWorkoutLogRepository(db *sqlx.DB) *PostgresWorkoutLogRepository {
	return &PostgresWorkoutLogRepository{db: db}
}

func (r *PostgresWorkoutLogRepository) CreateBatch(ctx context.Context, logs []*domain.WorkoutLog) error {
	if len(logs) == 0 {
		return nil
	}

	query := `
		INSERT INTO workout_logs (id, exercise, amount, date, created_at)
		VALUES (:id, :exercise, :amount, :date, :created_at)`

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for _, l := range logs {
			if _, err := tx.NamedExecContext(ctx, query, l); err != nil {
				return fmt.Errorf("insert workout log: %w", err)
			}
		}
		return nil
	})
}

func (r *PostgresWorkoutLogRepository) ListBetween(ctx context.Context, from, to calendar.Date) ([]*domain.WorkoutLog, error) {
	logs := []*domain.WorkoutLog{}

	query := `
		SELECT id, exercise, amount, date, created_at
		FROM workout_logs
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC, created_at ASC`

	if err := r.db.SelectContext(ctx, &logs, query, from, to); err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}
	return logs, nil
}

func (r *PostgresWorkoutLogRepository) CountOn(ctx context.Context, day calendar.Date) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM workout_logs WHERE date = $1`, day); err != nil {
		return 0, fmt.Errorf("count workout logs: %w", err)
	}
	return count, nil
}
