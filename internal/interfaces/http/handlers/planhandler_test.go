package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plandto "luma/internal/application/plan/dto"
	"luma/internal/application/plan/usecases"
	"luma/internal/shared/errors"
	"luma/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopLogger struct{}

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type mockCreatePlanUC struct {
	fn func(ctx context.Context, cmd usecases.CreatePlanCommand) (*plandto.PlanDTO, error)
}

func (m *mockCreatePlanUC) Execute(ctx context.Context, cmd usecases.CreatePlanCommand) (*plandto.PlanDTO, error) {
	return m.fn(ctx, cmd)
}

type mockTogglePlanStatusUC struct {
	fn func(ctx context.Context, cmd usecases.TogglePlanStatusCommand) (*plandto.PlanDTO, error)
}

func (m *mockTogglePlanStatusUC) Execute(ctx context.Context, cmd usecases.TogglePlanStatusCommand) (*plandto.PlanDTO, error) {
	return m.fn(ctx, cmd)
}

type mockGetPlanUC struct {
	fn func(ctx context.Context, planID string) (*plandto.PlanDTO, error)
}

func (m *mockGetPlanUC) Execute(ctx context.Context, planID string) (*plandto.PlanDTO, error) {
	return m.fn(ctx, planID)
}

type mockWatcher struct{}

func (m *mockWatcher) Subscribe(fn func()) func() {
	go fn()
	return func() {}
}

func newPlanHandler(createUC createPlanUseCase, toggleUC togglePlanStatusUseCase, getUC getPlanUseCase) *PlanHandler {
	return NewPlanHandler(createUC, nil, toggleUC, nil, getUC, nil, nil, &mockWatcher{}, &nopLogger{})
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPlanHandler_CreatePlan(t *testing.T) {
	createUC := &mockCreatePlanUC{
		fn: func(ctx context.Context, cmd usecases.CreatePlanCommand) (*plandto.PlanDTO, error) {
			assert.Equal(t, "Standard", cmd.Name)
			return &plandto.PlanDTO{ID: "plan_abc123", Name: cmd.Name}, nil
		},
	}
	handler := newPlanHandler(createUC, nil, nil)

	router := gin.New()
	router.POST("/plans", handler.CreatePlan)

	w := performRequest(router, http.MethodPost, "/plans", gin.H{
		"name":                 "Standard",
		"max_quality":          "FHD",
		"simultaneous_screens": 2,
		"download_limit":       30,
		"profile_limit":        3,
		"billing_cycle":        "monthly",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "plan_abc123")
}

func TestPlanHandler_CreatePlanRejectsBadBody(t *testing.T) {
	handler := newPlanHandler(&mockCreatePlanUC{}, nil, nil)

	router := gin.New()
	router.POST("/plans", handler.CreatePlan)

	w := performRequest(router, http.MethodPost, "/plans", gin.H{"name": "Missing everything"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanHandler_UpdatePlanStatus(t *testing.T) {
	toggleUC := &mockTogglePlanStatusUC{
		fn: func(ctx context.Context, cmd usecases.TogglePlanStatusCommand) (*plandto.PlanDTO, error) {
			assert.Equal(t, "standard", cmd.ID)
			assert.False(t, cmd.Active)
			return &plandto.PlanDTO{ID: cmd.ID, IsActive: cmd.Active}, nil
		},
	}
	handler := newPlanHandler(nil, toggleUC, nil)

	router := gin.New()
	router.PATCH("/plans/:id/status", handler.UpdatePlanStatus)

	w := performRequest(router, http.MethodPatch, "/plans/standard/status", gin.H{"active": false})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlanHandler_UpdatePlanStatusRequiresActiveField(t *testing.T) {
	handler := newPlanHandler(nil, &mockTogglePlanStatusUC{}, nil)

	router := gin.New()
	router.PATCH("/plans/:id/status", handler.UpdatePlanStatus)

	w := performRequest(router, http.MethodPatch, "/plans/standard/status", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanHandler_GetPlanNotFound(t *testing.T) {
	getUC := &mockGetPlanUC{
		fn: func(ctx context.Context, planID string) (*plandto.PlanDTO, error) {
			return nil, errors.NewNotFoundError("plan not found", planID)
		},
	}
	handler := newPlanHandler(nil, nil, getUC)

	router := gin.New()
	router.GET("/plans/:id", handler.GetPlan)

	w := performRequest(router, http.MethodGet, "/plans/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
}
