package services_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

// 2024-06-12 15:00 in Buenos Aires (UTC-3), a Wednesday.
var testNow = time.Date(2024, 6, 12, 18, 0, 0, 0, time.UTC)

func testResolver() *calendar.Resolver {
	loc := time.FixedZone("ART", -3*60*60)
	return calendar.NewResolver(loc, calendar.FixedClock(testNow))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var today = calendar.MustParseDate("2024-06-12")

type MockExerciseRepo struct {
	mock.Mock
}

func (m *MockExerciseRepo) List(ctx context.Context) ([]*domain.Exercise, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Exercise), args.Error(1)
}

func (m *MockExerciseRepo) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exercise), args.Error(1)
}

func (m *MockExerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) error {
	return m.Called(ctx, exercise).Error(0)
}

func (m *MockExerciseRepo) Update(ctx context.Context, exercise *domain.Exercise, previousName string) error {
	return m.Called(ctx, exercise, previousName).Error(0)
}

func (m *MockExerciseRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockWorkoutLogRepo struct {
	mock.Mock
}

func (m *MockWorkoutLogRepo) CreateBatch(ctx context.Context, logs []*domain.WorkoutLog) error {
	return m.Called(ctx, logs).Error(0)
}

func (m *MockWorkoutLogRepo) ListBetween(ctx context.Context, from, to calendar.Date) ([]*domain.WorkoutLog, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WorkoutLog), args.Error(1)
}

func (m *MockWorkoutLogRepo) CountOn(ctx context.Context, day calendar.Date) (int, error) {
	args := m.Called(ctx, day)
	return args.Int(0), args.Error(1)
}

type MockHabitRepo struct {
	mock.Mock
}

func (m *MockHabitRepo) List(ctx context.Context) ([]*domain.Habit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Habit), args.Error(1)
}

func (m *MockHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Habit), args.Error(1)
}

func (m *MockHabitRepo) Create(ctx context.Context, habit *domain.Habit) error {
	return m.Called(ctx, habit).Error(0)
}

func (m *MockHabitRepo) Update(ctx context.Context, habit *domain.Habit) error {
	return m.Called(ctx, habit).Error(0)
}

func (m *MockHabitRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockHabitLogRepo struct {
	mock.Mock
}

func (m *MockHabitLogRepo) Upsert(ctx context.Context, log *domain.HabitLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *MockHabitLogRepo) ListBetween(ctx context.Context, from, to calendar.Date) ([]*domain.HabitLog, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HabitLog), args.Error(1)
}

func (m *MockHabitLogRepo) CountCompletedBetween(ctx context.Context, from, to calendar.Date) (int, error) {
	args := m.Called(ctx, from, to)
	return args.Int(0), args.Error(1)
}

type MockMealLogRepo struct {
	mock.Mock
}

func (m *MockMealLogRepo) Upsert(ctx context.Context, log *domain.MealLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *MockMealLogRepo) ListOn(ctx context.Context, day calendar.Date) ([]*domain.MealLog, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MealLog), args.Error(1)
}

func (m *MockMealLogRepo) CountCompletedBetween(ctx context.Context, from, to calendar.Date) (int, error) {
	args := m.Called(ctx, from, to)
	return args.Int(0), args.Error(1)
}

type MockRecipeRepo struct {
	mock.Mock
}

func (m *MockRecipeRepo) List(ctx context.Context) ([]*domain.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Recipe), args.Error(1)
}

func (m *MockRecipeRepo) Save(ctx context.Context, recipe *domain.Recipe) error {
	return m.Called(ctx, recipe).Error(0)
}

func (m *MockRecipeRepo) DeleteSlot(ctx context.Context, day int, mealType string) error {
	return m.Called(ctx, day, mealType).Error(0)
}

type MockPantryRepo struct {
	mock.Mock
}

func (m *MockPantryRepo) List(ctx context.Context) ([]*domain.PantryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PantryItem), args.Error(1)
}

func (m *MockPantryRepo) Create(ctx context.Context, item *domain.PantryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockPantryRepo) SetInStock(ctx context.Context, id string, inStock bool) error {
	return m.Called(ctx, id, inStock).Error(0)
}

type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTransactionRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTransactionRepo) ListSince(ctx context.Context, from calendar.Date) ([]*domain.Transaction, error) {
	args := m.Called(ctx, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockTaskRepo) Complete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaskRepo) ListOpen(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *MockTaskRepo) Counts(ctx context.Context) (domain.TaskCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.TaskCounts), args.Error(1)
}

type MockQuickLogRepo struct {
	mock.Mock
}

func (m *MockQuickLogRepo) AddCigarette(ctx context.Context) (*domain.CigaretteLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CigaretteLog), args.Error(1)
}

func (m *MockQuickLogRepo) DeleteCigarette(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockQuickLogRepo) ListCigarettesSince(ctx context.Context, since time.Time) ([]*domain.CigaretteLog, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CigaretteLog), args.Error(1)
}

func (m *MockQuickLogRepo) GetParking(ctx context.Context) (*domain.Parking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Parking), args.Error(1)
}

func (m *MockQuickLogRepo) SaveParking(ctx context.Context, parking *domain.Parking) error {
	return m.Called(ctx, parking).Error(0)
}
