package http_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/santisala23-sys/exito/internal/adapters/handler/http"
	"github.com/santisala23-sys/exito/internal/adapters/repository"
	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/services"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(ctx context.Context) error { return p.err }

func setupRouter(t *testing.T, db adapterHTTP.Pinger) (*gin.Engine, *services.TokenService) {
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := calendar.NewResolver(time.UTC, nil)
	store := repository.NewMemoryStore()

	tokens := services.NewTokenService("router-test-secret", "exito", time.Hour)
	auth, err := services.NewAuthService("1357", tokens)
	require.NoError(t, err)

	finances := services.NewFinanceService(store.Transactions, resolver, logger)

	deps := adapterHTTP.RouterDependencies{
		AuthHandler: adapterHTTP.NewAuthHandler(auth, tokens, false),
		DashboardHandler: adapterHTTP.NewDashboardHandler(
			services.NewDashboardService(services.DashboardRepos{
				Tasks:     store.Tasks,
				Habits:    store.Habits,
				HabitLogs: store.HabitLogs,
				Workouts:  store.WorkoutLogs,
				Meals:     store.MealLogs,
				Quick:     store.QuickLogs,
			}, finances, resolver, logger),
			services.NewAnalyticsService(services.AnalyticsRepos{
				Exercises: store.Exercises,
				Workouts:  store.WorkoutLogs,
				Habits:    store.Habits,
				HabitLogs: store.HabitLogs,
				Meals:     store.MealLogs,
				Tasks:     store.Tasks,
			}, resolver, logger),
		),
		WorkoutHandler:   adapterHTTP.NewWorkoutHandler(services.NewWorkoutService(store.Exercises, store.WorkoutLogs, resolver, logger)),
		HabitHandler:     adapterHTTP.NewHabitHandler(services.NewHabitService(store.Habits, store.HabitLogs, resolver, logger)),
		NutritionHandler: adapterHTTP.NewNutritionHandler(services.NewNutritionService(store.MealLogs, store.Recipes, store.Pantry, resolver, logger)),
		FinanceHandler:   adapterHTTP.NewFinanceHandler(finances),
		TaskHandler:      adapterHTTP.NewTaskHandler(services.NewTaskService(store.Tasks)),
		TokenService:     tokens,
		DB:               db,
		StartTime:        time.Now(),
		Logger:           logger,
	}

	return adapterHTTP.NewRouter(deps), tokens
}

func TestHealth(t *testing.T) {
	t.Run("Database Up", func(t *testing.T) {
		router, _ := setupRouter(t, stubPinger{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"connected"`)
		assert.Contains(t, w.Body.String(), `"redis":"disabled"`)
	})

	t.Run("Database Down", func(t *testing.T) {
		router, _ := setupRouter(t, stubPinger{err: errors.New("refused")})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"unreachable"`)
	})
}

func TestSwaggerIsPublic(t *testing.T) {
	router, _ := setupRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/workouts/logs")
}

func TestProtectedRoutes(t *testing.T) {
	router, tokens := setupRouter(t, nil)
	token, err := tokens.GenerateToken(services.OwnerSubject)
	require.NoError(t, err)

	paths := []string{
		"/api/v1/dashboard",
		"/api/v1/analytics",
		"/api/v1/workouts",
		"/api/v1/habits/today",
		"/api/v1/nutrition/today",
		"/api/v1/finances",
		"/api/v1/tasks",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w = httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestLoginValidation(t *testing.T) {
	router, _ := setupRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
