package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

// memoryDB is the shared state behind every in-memory repository. One
// mutex guards all tables so multi-table writes stay atomic.
type memoryDB struct {
	mu sync.RWMutex

	exercises    map[string]*domain.Exercise
	workoutLogs  []*domain.WorkoutLog
	habits       map[string]*domain.Habit
	habitLogs    map[habitLogKey]*domain.HabitLog
	mealLogs     map[mealLogKey]*domain.MealLog
	recipes      map[recipeSlot]*domain.Recipe
	pantry       map[string]*domain.PantryItem
	transactions map[string]*domain.Transaction
	tasks        map[string]*domain.Task
	cigarettes   map[string]*domain.CigaretteLog
	parking      *domain.Parking
}

type habitLogKey struct {
	date    calendar.Date
	habitID string
}

type mealLogKey struct {
	date     calendar.Date
	mealType string
}

type recipeSlot struct {
	day      int
	mealType string
}

// MemoryStore bundles in-memory implementations of every repository port.
type MemoryStore struct {
	Exercises    *InMemoryExerciseRepository
	WorkoutLogs  *InMemoryWorkoutLogRepository
	Habits       *InMemoryHabitRepository
	HabitLogs    *InMemoryHabitLogRepository
	MealLogs     *InMemoryMealLogRepository
	Recipes      *InMemoryRecipeRepository
	Pantry       *InMemoryPantryRepository
	Transactions *InMemoryTransactionRepository
	Tasks        *InMemoryTaskRepository
	QuickLogs    *InMemoryQuickLogRepository
}

func NewMemoryStore() *MemoryStore {
	db := &memoryDB{
		exercises:    make(map[string]*domain.Exercise),
		habits:       make(map[string]*domain.Habit),
		habitLogs:    make(map[habitLogKey]*domain.HabitLog),
		mealLogs:     make(map[mealLogKey]*domain.MealLog),
		recipes:      make(map[recipeSlot]*domain.Recipe),
		pantry:       make(map[string]*domain.PantryItem),
		transactions: make(map[string]*domain.Transaction),
		tasks:        make(map[string]*domain.Task),
		cigarettes:   make(map[string]*domain.CigaretteLog),
	}

	return &MemoryStore{
		Exercises:    &InMemoryExerciseRepository{db: db},
		WorkoutLogs:  &InMemoryWorkoutLogRepository{db: db},
		Habits:       &InMemoryHabitRepository{db: db},
		HabitLogs:    &InMemoryHabitLogRepository{db: db},
		MealLogs:     &InMemoryMealLogRepository{db: db},
		Recipes:      &InMemoryRecipeRepository{db: db},
		Pantry:       &InMemoryPantryRepository{db: db},
		Transactions: &InMemoryTransactionRepository{db: db},
		Tasks:        &InMemoryTaskRepository{db: db},
		QuickLogs:    &InMemoryQuickLogRepository{db: db},
	}
}

type InMemoryExerciseRepository struct{ db *memoryDB }

func (r *InMemoryExerciseRepository) List(ctx context.Context) ([]*domain.Exercise, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]*domain.Exercise, 0, len(r.db.exercises))
	for _, e := range r.db.exercises {
		clone := *e
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	e, ok := r.db.exercises[id]
	if !ok {
		return nil, domain.ErrExerciseNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *InMemoryExerciseRepository) nameTaken(name, exceptID string) bool {
	for id, e := range r.db.exercises {
		if id != exceptID && e.Name == name {
			return true
		}
	}
	return false
}

func (r *InMemoryExerciseRepository) Create(ctx context.Context, e *domain.Exercise) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.nameTaken(e.Name, "") {
		return domain.ErrExerciseExists
	}
	clone := *e
	r.db.exercises[e.ID] = &clone
	return nil
}

func (r *InMemoryExerciseRepository) Update(ctx context.Context, e *domain.Exercise, previousName string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.exercises[e.ID]; !ok {
		return domain.ErrExerciseNotFound
	}
	if r.nameTaken(e.Name, e.ID) {
		return domain.ErrExerciseExists
	}

	clone := *e
	r.db.exercises[e.ID] = &clone

	if previousName != "" && previousName != e.Name {
		for _, l := range r.db.workoutLogs {
			if l.Exercise == previousName {
				l.Exercise = e.Name
			}
		}
	}
	return nil
}

func (r *InMemoryExerciseRepository) Delete(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.exercises[id]; !ok {
		return domain.ErrExerciseNotFound
	}
	delete(r.db.exercises, id)
	return nil
}

type InMemoryWorkoutLogRepository struct{ db *memoryDB }

func (r *InMemoryWorkoutLogRepository) CreateBatch(ctx context.Context, logs []*domain.WorkoutLog) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, l := range logs {
		clone := *l
		r.db.workoutLogs = append(r.db.workoutLogs, &clone)
	}
	return nil
}

func (r *InMemoryWorkoutLogRepository) ListBetween(ctx context.Context, from, to calendar.Date) ([]*domain.WorkoutLog, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	window := calendar.Window{From: from, To: to}
	out := []*domain.WorkoutLog{}
	for _, l := range r.db.workoutLogs {
		if window.Contains(l.Date) {
			clone := *l
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *InMemoryWorkoutLogRepository) CountOn(ctx context.Context, day calendar.Date) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	n := 0
	for _, l := range r.db.workoutLogs {
		if l.Date == day {
			n++
		}
	}
	return n, nil
}

type InMemoryHabitRepository struct{ db *memoryDB }

func (r *InMemoryHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]*domain.Habit, 0, len(r.db.habits))
	for _, h := range r.db.habits {
		clone := *h
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *InMemoryHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	h, ok := r.db.habits[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	clone := *h
	return &clone, nil
}

func (r *InMemoryHabitRepository) Create(ctx context.Context, h *domain.Habit) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	clone := *h
	r.db.habits[h.ID] = &clone
	return nil
}

func (r *InMemoryHabitRepository) Update(ctx context.Context, h *domain.Habit) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.habits[h.ID]
	if !ok {
		return domain.ErrHabitNotFound
	}
	existing.Name = h.Name
	return nil
}

// Delete removes the definition only. Its logs stay and keep counting
// toward completion windows.
func (r *InMemoryHabitRepository) Delete(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.habits[id]; !ok {
		return domain.ErrHabitNotFound
	}
	delete(r.db.habits, id)
	return nil
}

type InMemoryHabitLogRepository struct{ db *memoryDB }

func (r *InMemoryHabitLogRepository) Upsert(ctx context.Context, l *domain.HabitLog) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.habits[l.HabitID]; !ok {
		return domain.ErrHabitNotFound
	}
	clone := *l
	r.db.habitLogs[habitLogKey{date: l.Date, habitID: l.HabitID}] = &clone
	return nil
}

func (r *InMemoryHabitLogRepository) ListBetween(ctx context.Context, from, to calendar.Date) ([]*domain.HabitLog, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	window := calendar.Window{From: from, To: to}
	out := []*domain.HabitLog{}
	for _, l := range r.db.habitLogs {
		if window.Contains(l.Date) {
			clone := *l
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *InMemoryHabitLogRepository) CountCompletedBetween(ctx context.Context, from, to calendar.Date) (int, error) {
	logs, err := r.ListBetween(ctx, from, to)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, l := range logs {
		if l.Completed {
			n++
		}
	}
	return n, nil
}

type InMemoryMealLogRepository struct{ db *memoryDB }

func (r *InMemoryMealLogRepository) Upsert(ctx context.Context, m *domain.MealLog) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	clone := *m
	r.db.mealLogs[mealLogKey{date: m.Date, mealType: m.MealType}] = &clone
	return nil
}

func (r *InMemoryMealLogRepository) ListOn(ctx context.Context, day calendar.Date) ([]*domain.MealLog, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := []*domain.MealLog{}
	for _, mt := range domain.MealTypes {
		if m, ok := r.db.mealLogs[mealLogKey{date: day, mealType: mt}]; ok {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *InMemoryMealLogRepository) CountCompletedBetween(ctx context.Context, from, to calendar.Date) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	window := calendar.Window{From: from, To: to}
	n := 0
	for _, m := range r.db.mealLogs {
		if m.Completed && window.Contains(m.Date) {
			n++
		}
	}
	return n, nil
}

type InMemoryRecipeRepository struct{ db *memoryDB }

func (r *InMemoryRecipeRepository) List(ctx context.Context) ([]*domain.Recipe, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]*domain.Recipe, 0, len(r.db.recipes))
	for _, rec := range r.db.recipes {
		clone := *rec
		clone.Ingredients = append([]string{}, rec.Ingredients...)
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayOfWeek != out[j].DayOfWeek {
			return out[i].DayOfWeek < out[j].DayOfWeek
		}
		return out[i].MealType < out[j].MealType
	})
	return out, nil
}

func (r *InMemoryRecipeRepository) Save(ctx context.Context, recipe *domain.Recipe) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	slot := recipeSlot{day: recipe.DayOfWeek, mealType: recipe.MealType}
	if existing, ok := r.db.recipes[slot]; ok {
		recipe.ID = existing.ID
	}
	clone := *recipe
	clone.Ingredients = append([]string{}, recipe.Ingredients...)
	r.db.recipes[slot] = &clone
	return nil
}

func (r *InMemoryRecipeRepository) DeleteSlot(ctx context.Context, day int, mealType string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.recipes, recipeSlot{day: day, mealType: mealType})
	return nil
}

type InMemoryPantryRepository struct{ db *memoryDB }

func (r *InMemoryPantryRepository) List(ctx context.Context) ([]*domain.PantryItem, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]*domain.PantryItem, 0, len(r.db.pantry))
	for _, item := range r.db.pantry {
		clone := *item
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Ingredient) < strings.ToLower(out[j].Ingredient)
	})
	return out, nil
}

func (r *InMemoryPantryRepository) Create(ctx context.Context, item *domain.PantryItem) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.pantry {
		if strings.EqualFold(existing.Ingredient, item.Ingredient) {
			return domain.ErrPantryItemExists
		}
	}
	clone := *item
	r.db.pantry[item.ID] = &clone
	return nil
}

func (r *InMemoryPantryRepository) SetInStock(ctx context.Context, id string, inStock bool) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item, ok := r.db.pantry[id]
	if !ok {
		return domain.ErrPantryItemNotFound
	}
	item.InStock = inStock
	return nil
}

type InMemoryTransactionRepository struct{ db *memoryDB }

func (r *InMemoryTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	clone := *tx
	r.db.transactions[tx.ID] = &clone
	return nil
}

func (r *InMemoryTransactionRepository) Delete(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.transactions[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(r.db.transactions, id)
	return nil
}

func (r *InMemoryTransactionRepository) ListSince(ctx context.Context, from calendar.Date) ([]*domain.Transaction, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := []*domain.Transaction{}
	for _, tx := range r.db.transactions {
		if !tx.Date.Before(from) {
			clone := *tx
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type InMemoryTaskRepository struct{ db *memoryDB }

func (r *InMemoryTaskRepository) Create(ctx context.Context, t *domain.Task) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	clone := *t
	r.db.tasks[t.ID] = &clone
	return nil
}

func (r *InMemoryTaskRepository) Complete(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	t, ok := r.db.tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	t.Completed = true
	return nil
}

func (r *InMemoryTaskRepository) ListOpen(ctx context.Context) ([]*domain.Task, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := []*domain.Task{}
	for _, t := range r.db.tasks {
		if !t.Completed {
			clone := *t
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryTaskRepository) Counts(ctx context.Context) (domain.TaskCounts, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var counts domain.TaskCounts
	for _, t := range r.db.tasks {
		if t.Completed {
			counts.Completed++
		} else {
			counts.Pending++
		}
	}
	return counts, nil
}

type InMemoryQuickLogRepository struct{ db *memoryDB }

func (r *InMemoryQuickLogRepository) AddCigarette(ctx context.Context) (*domain.CigaretteLog, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c := &domain.CigaretteLog{ID: uuid.NewString(), CreatedAt: time.Now().UTC()}
	clone := *c
	r.db.cigarettes[c.ID] = &clone
	return c, nil
}

func (r *InMemoryQuickLogRepository) DeleteCigarette(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.cigarettes[id]; !ok {
		return domain.ErrCigaretteNotFound
	}
	delete(r.db.cigarettes, id)
	return nil
}

func (r *InMemoryQuickLogRepository) ListCigarettesSince(ctx context.Context, since time.Time) ([]*domain.CigaretteLog, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := []*domain.CigaretteLog{}
	for _, c := range r.db.cigarettes {
		if !c.CreatedAt.Before(since) {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryQuickLogRepository) GetParking(ctx context.Context) (*domain.Parking, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if r.db.parking == nil {
		return nil, nil
	}
	clone := *r.db.parking
	return &clone, nil
}

func (r *InMemoryQuickLogRepository) SaveParking(ctx context.Context, p *domain.Parking) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	clone := *p
	r.db.parking = &clone
	return nil
}
