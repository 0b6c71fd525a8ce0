package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/santisala23-sys/exito/internal/adapters/cache"
	adapterHTTP "github.com/santisala23-sys/exito/internal/adapters/handler/http"
	"github.com/santisala23-sys/exito/internal/adapters/repository"
	"github.com/santisala23-sys/exito/internal/config"
	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
	"github.com/santisala23-sys/exito/internal/core/services"
)

// stores is the set of repository ports the services are built from.
type stores struct {
	exercises    domain.ExerciseRepository
	workoutLogs  domain.WorkoutLogRepository
	habits       domain.HabitRepository
	habitLogs    domain.HabitLogRepository
	meals        domain.MealLogRepository
	recipes      domain.RecipeRepository
	pantry       domain.PantryRepository
	transactions domain.TransactionRepository
	tasks        domain.TaskRepository
	quick        domain.QuickLogRepository
}

func memoryStores() stores {
	m := repository.NewMemoryStore()
	return stores{
		exercises:    m.Exercises,
		workoutLogs:  m.WorkoutLogs,
		habits:       m.Habits,
		habitLogs:    m.HabitLogs,
		meals:        m.MealLogs,
		recipes:      m.Recipes,
		pantry:       m.Pantry,
		transactions: m.Transactions,
		tasks:        m.Tasks,
		quick:        m.QuickLogs,
	}
}

func postgresStores(db *sqlx.DB) stores {
	return stores{
		exercises:    repository.NewPostgresExerciseRepository(db),
		workoutLogs:  repository.NewPostgresWorkoutLogRepository(db),
		habits:       repository.NewPostgresHabitRepository(db),
		habitLogs:    repository.NewPostgresHabitLogRepository(db),
		meals:        repository.NewPostgresMealLogRepository(db),
		recipes:      repository.NewPostgresRecipeRepository(db),
		pantry:       repository.NewPostgresPantryRepository(db),
		transactions: repository.NewPostgresTransactionRepository(db),
		tasks:        repository.NewPostgresTaskRepository(db),
		quick:        repository.NewPostgresQuickLogRepository(db),
	}
}

type app struct {
	router *gin.Engine
	db     *sqlx.DB
	redis  *redis.Client
}

func (a *app) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	return errors.Join(errs...)
}

// newApp connects the configured backends and assembles the router.
func newApp(ctx context.Context, cfg *config.Config, clock calendar.Clock, logger *slog.Logger) (*app, error) {
	resolver, err := calendar.NewResolverForZone(cfg.TimeZone, clock)
	if err != nil {
		return nil, err
	}

	a := &app{}

	var st stores
	switch cfg.Backend {
	case config.BackendMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		st = memoryStores()
	default:
		logger.Info("connecting to database", slog.String("driver", cfg.DB.Driver), slog.String("host", cfg.DB.Host))

		db, err := repository.Connect(ctx, cfg.DB.Driver, cfg.DB.DSN())
		if err != nil {
			return nil, err
		}
		a.db = db

		if err := repository.RunMigrations(db.DB); err != nil {
			a.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		logger.Info("database ready")
		st = postgresStores(db)
	}

	if cfg.Redis.Enabled {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, running without cache and rate limiting", slog.Any("error", err))
		} else {
			a.redis = rdb
			st.habits = repository.NewCachedHabitRepository(st.habits, rdb, logger)
		}
	}

	tokenService := services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenDuration)
	authService, err := services.NewAuthService(cfg.Auth.PIN, tokenService)
	if err != nil {
		a.Close()
		return nil, err
	}

	workoutService := services.NewWorkoutService(st.exercises, st.workoutLogs, resolver, logger)
	habitService := services.NewHabitService(st.habits, st.habitLogs, resolver, logger)
	nutritionService := services.NewNutritionService(st.meals, st.recipes, st.pantry, resolver, logger)
	financeService := services.NewFinanceService(st.transactions, resolver, logger)
	taskService := services.NewTaskService(st.tasks)

	dashboardService := services.NewDashboardService(services.DashboardRepos{
		Tasks:     st.tasks,
		Habits:    st.habits,
		HabitLogs: st.habitLogs,
		Workouts:  st.workoutLogs,
		Meals:     st.meals,
		Quick:     st.quick,
	}, financeService, resolver, logger)

	analyticsService := services.NewAnalyticsService(services.AnalyticsRepos{
		Exercises: st.exercises,
		Workouts:  st.workoutLogs,
		Habits:    st.habits,
		HabitLogs: st.habitLogs,
		Meals:     st.meals,
		Tasks:     st.tasks,
	}, resolver, logger)

	deps := adapterHTTP.RouterDependencies{
		AuthHandler:      adapterHTTP.NewAuthHandler(authService, tokenService, cfg.Auth.SecureCookie),
		DashboardHandler: adapterHTTP.NewDashboardHandler(dashboardService, analyticsService),
		WorkoutHandler:   adapterHTTP.NewWorkoutHandler(workoutService),
		HabitHandler:     adapterHTTP.NewHabitHandler(habitService),
		NutritionHandler: adapterHTTP.NewNutritionHandler(nutritionService),
		FinanceHandler:   adapterHTTP.NewFinanceHandler(financeService),
		TaskHandler:      adapterHTTP.NewTaskHandler(taskService),
		TokenService:     tokenService,
		Redis:            a.redis,
		AllowedOrigins:   cfg.CORSOrigins,
		RateLimit:        cfg.RateLimit,
		RateLimitWindow:  cfg.RateLimitWindow,
		StartTime:        time.Now(),
		Logger:           logger,
	}
	if a.db != nil {
		deps.DB = a.db
	}

	a.router = adapterHTTP.NewRouter(deps)
	return a, nil
}
