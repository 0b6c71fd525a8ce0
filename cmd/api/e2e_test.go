package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santisala23-sys/exito/internal/adapters/handler/http/middleware"
	"github.com/santisala23-sys/exito/internal/config"
	"github.com/santisala23-sys/exito/internal/core/calendar"
)

const testPIN = "2468"

func newTestApp(t *testing.T) *app {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Backend:  config.BackendMemory,
		TimeZone: "UTC",
		Auth: config.AuthConfig{
			PIN:           testPIN,
			JWTSecret:     "e2e-secret-e2e-secret-e2e-secret",
			Issuer:        "exito",
			TokenDuration: time.Hour,
		},
	}
	require.NoError(t, cfg.Validate())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := newApp(context.Background(), cfg, calendar.SystemClock{}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

type client struct {
	t      *testing.T
	router http.Handler
	token  string
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestEndToEnd_Auth(t *testing.T) {
	a := newTestApp(t)
	c := &client{t: t, router: a.router}

	t.Run("Health Is Public", func(t *testing.T) {
		w := c.do(http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]string](t, w)
		assert.Equal(t, "disabled", body["database"])
	})

	t.Run("Views Need A Session", func(t *testing.T) {
		w := c.do(http.MethodGet, "/api/v1/dashboard", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Wrong PIN", func(t *testing.T) {
		w := c.do(http.MethodPost, "/api/v1/auth/login", `{"pin":"0000"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Cookie Session", func(t *testing.T) {
		w := c.do(http.MethodPost, "/api/v1/auth/login", `{"pin":"`+testPIN+`"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var session *http.Cookie
		for _, ck := range w.Result().Cookies() {
			if ck.Name == middleware.AuthCookieName {
				session = ck
			}
		}
		require.NotNil(t, session)
		assert.True(t, session.HttpOnly)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics", nil)
		req.AddCookie(session)
		rec := httptest.NewRecorder()
		a.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Logout Expires Cookie", func(t *testing.T) {
		w := c.do(http.MethodPost, "/api/v1/auth/logout", "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, middleware.AuthCookieName, cookies[0].Name)
		assert.Less(t, cookies[0].MaxAge, 0)
	})
}

func TestEndToEnd_DailyFlow(t *testing.T) {
	a := newTestApp(t)
	c := &client{t: t, router: a.router}

	w := c.do(http.MethodPost, "/api/v1/auth/login", `{"pin":"`+testPIN+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	c.token = decode[map[string]any](t, w)["token"].(string)

	t.Run("Workout Goal", func(t *testing.T) {
		w := c.do(http.MethodPost, "/api/v1/workouts/exercises", `{"name":"Pushups","target_amount":50,"period":"weekly"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = c.do(http.MethodPost, "/api/v1/workouts/exercises", `{"name":"Pushups","target_amount":10,"period":"daily"}`)
		assert.Equal(t, http.StatusConflict, w.Code)

		w = c.do(http.MethodPost, "/api/v1/workouts/logs", `{"amounts":{"Pushups":0}}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		w = c.do(http.MethodPost, "/api/v1/workouts/logs", `{"amounts":{"Pushups":10,"Burpees":5}}`)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = c.do(http.MethodPost, "/api/v1/workouts/logs", `{"amounts":{"Pushups":30}}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = c.do(http.MethodGet, "/api/v1/workouts/progress", "")
		require.Equal(t, http.StatusOK, w.Code)
		progress := decode[[]map[string]any](t, w)
		require.Len(t, progress, 1)
		assert.Equal(t, 30.0, progress[0]["progress"])
		assert.Equal(t, 60.0, progress[0]["percent"])
	})

	t.Run("Habit Checklist", func(t *testing.T) {
		w := c.do(http.MethodPost, "/api/v1/habits", `{"name":"Meditate"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		id := decode[map[string]any](t, w)["id"].(string)

		w = c.do(http.MethodPut, "/api/v1/habits/"+id, `{"name":"   "}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = c.do(http.MethodPut, "/api/v1/habits/"+id+"/today", `{"done":true}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = c.do(http.MethodGet, "/api/v1/habits/today", "")
		require.Equal(t, http.StatusOK, w.Code)
		day := decode[map[string][]map[string]any](t, w)
		assert.Len(t, day["completed"], 1)
		assert.Empty(t, day["pending"])

		w = c.do(http.MethodPut, "/api/v1/habits/missing/today", `{"done":true}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Finances Keep Exact Amounts", func(t *testing.T) {
		w := c.do(http.MethodPost, "/api/v1/finances", `{"transaction_type":"expense","amount":"12,50","category":"Food"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		tx := decode[map[string]any](t, w)
		assert.Equal(t, "Sin detalle", tx["description"])

		w = c.do(http.MethodPost, "/api/v1/dashboard/finances", `{"transaction_type":"income","amount":"100","category":"Gift"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = c.do(http.MethodPost, "/api/v1/finances", `{"transaction_type":"expense","amount":"-3","category":"Food"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = c.do(http.MethodGet, "/api/v1/finances", "")
		require.Equal(t, http.StatusOK, w.Code)
		month := decode[map[string]any](t, w)
		summary := month["summary"].(map[string]any)
		assert.Equal(t, "12.5", summary["expense"])
		assert.Equal(t, "87.5", summary["balance"])
	})

	t.Run("Cigarette Undo", func(t *testing.T) {
		w := c.do(http.MethodPost, "/api/v1/dashboard/cigarettes", "")
		require.Equal(t, http.StatusCreated, w.Code)

		w = c.do(http.MethodGet, "/api/v1/dashboard", "")
		require.Equal(t, http.StatusOK, w.Code)
		dash := decode[map[string]any](t, w)
		assert.Len(t, dash["cigarettes_today"], 1)
		assert.Equal(t, "No registrado", dash["parking"])

		assert.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, "/api/v1/dashboard/cigarettes/last", "").Code)
		assert.Equal(t, http.StatusNotFound, c.do(http.MethodDelete, "/api/v1/dashboard/cigarettes/last", "").Code)
	})

	t.Run("Tasks", func(t *testing.T) {
		w := c.do(http.MethodPost, "/api/v1/tasks", `{"title":"Pay rent","due_date":"not-a-date"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = c.do(http.MethodPost, "/api/v1/tasks", `{"title":"Pay rent"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		id := decode[map[string]any](t, w)["id"].(string)

		assert.Equal(t, http.StatusNoContent, c.do(http.MethodPost, "/api/v1/tasks/"+id+"/complete", "").Code)

		w = c.do(http.MethodGet, "/api/v1/analytics", "")
		require.Equal(t, http.StatusOK, w.Code)
		tasks := decode[map[string]any](t, w)["tasks"].(map[string]any)
		assert.Equal(t, 1.0, tasks["completed"])
		assert.Equal(t, 0.0, tasks["pending"])
	})

	t.Run("Nutrition", func(t *testing.T) {
		w := c.do(http.MethodPost, "/api/v1/nutrition/pantry", `{"ingredient":"Rice"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = c.do(http.MethodPost, "/api/v1/nutrition/pantry", `{"ingredient":"rice"}`)
		assert.Equal(t, http.StatusConflict, w.Code)

		w = c.do(http.MethodPut, "/api/v1/nutrition/recipes", `{"day_of_week":0,"meal_type":"lunch","recipe_name":"Risotto","ingredients_text":"rice, "}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = c.do(http.MethodPut, "/api/v1/nutrition/recipes", `{"day_of_week":0,"meal_type":"lunch","recipe_name":""}`)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = c.do(http.MethodPut, "/api/v1/nutrition/today/brunch", `{"completed":true}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = c.do(http.MethodPut, "/api/v1/nutrition/today/dinner", `{"completed":true}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = c.do(http.MethodGet, "/api/v1/nutrition/today", "")
		require.Equal(t, http.StatusOK, w.Code)
		day := decode[map[string]any](t, w)
		assert.Len(t, day["slots"], 4)
	})
}
