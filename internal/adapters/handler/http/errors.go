package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
	"github.com/santisala23-sys/exito/internal/core/services"
)

var badRequestErrors = []error{
	calendar.ErrInvalidDate,
	domain.ErrExerciseNameEmpty,
	domain.ErrExerciseNameTooLong,
	domain.ErrInvalidPeriod,
	domain.ErrInvalidTarget,
	domain.ErrInvalidAmount,
	domain.ErrWorkoutLogIncomplete,
	domain.ErrHabitNameEmpty,
	domain.ErrHabitNameTooLong,
	domain.ErrHabitLogDateEmpty,
	domain.ErrInvalidMealType,
	domain.ErrInvalidDayOfWeek,
	domain.ErrIngredientEmpty,
	domain.ErrIngredientTooLong,
	domain.ErrMealLogDateEmpty,
	domain.ErrRecipeNameEmpty,
	domain.ErrRecipeNameTooLong,
	domain.ErrInvalidTransactionType,
	domain.ErrTransactionAmount,
	domain.ErrTransactionAmountFormat,
	domain.ErrTransactionCategory,
	domain.ErrTransactionDateEmpty,
	domain.ErrTransactionDescTooLong,
	domain.ErrTaskTitleEmpty,
	domain.ErrTaskTitleTooLong,
	domain.ErrParkingTooLong,
	services.ErrPINEmpty,
}

var notFoundErrors = []error{
	domain.ErrExerciseNotFound,
	domain.ErrHabitNotFound,
	domain.ErrRecipeNotFound,
	domain.ErrPantryItemNotFound,
	domain.ErrTransactionNotFound,
	domain.ErrTaskNotFound,
	domain.ErrCigaretteNotFound,
	domain.ErrNothingToUndo,
}

var conflictErrors = []error{
	domain.ErrExerciseExists,
	domain.ErrPantryItemExists,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoAmounts):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInvalidPIN):
		return http.StatusUnauthorized
	case isAny(err, badRequestErrors):
		return http.StatusBadRequest
	case isAny(err, notFoundErrors):
		return http.StatusNotFound
	case isAny(err, conflictErrors):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes the JSON error for err. Unexpected errors are
// attached to the context for the error logger and hidden from clients.
func handleError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// ErrorLogger logs the errors handlers attached to the request.
func ErrorLogger(logger *slog.Logger) gin.HandlerFunc {
	logger = logger.With(slog.String("component", "http"))

	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			logger.Error("request failed",
				slog.String("method", c.Request.Method),
				slog.String("path", c.FullPath()),
				slog.Int("status", c.Writer.Status()),
				slog.Any("error", e.Err),
			)
		}
	}
}
