package usecases

import (
	"context"

	"luma/internal/domain/plan"
	"luma/internal/shared/logger"
)

type mockPlanRepo struct {
	ListFunc         func(ctx context.Context) ([]*plan.Plan, error)
	ListActiveFunc   func(ctx context.Context) ([]*plan.Plan, error)
	GetByIDFunc      func(ctx context.Context, id string) (*plan.Plan, error)
	CreateFunc       func(ctx context.Context, p *plan.Plan) error
	UpdateFunc       func(ctx context.Context, p *plan.Plan) error
	ToggleStatusFunc func(ctx context.Context, id string, active bool) (*plan.Plan, error)
	DeleteFunc       func(ctx context.Context, id string) error
}

func (m *mockPlanRepo) List(ctx context.Context) ([]*plan.Plan, error) {
	return m.ListFunc(ctx)
}

func (m *mockPlanRepo) ListActive(ctx context.Context) ([]*plan.Plan, error) {
	return m.ListActiveFunc(ctx)
}

func (m *mockPlanRepo) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockPlanRepo) Create(ctx context.Context, p *plan.Plan) error {
	return m.CreateFunc(ctx, p)
}

func (m *mockPlanRepo) Update(ctx context.Context, p *plan.Plan) error {
	return m.UpdateFunc(ctx, p)
}

func (m *mockPlanRepo) ToggleStatus(ctx context.Context, id string, active bool) (*plan.Plan, error) {
	return m.ToggleStatusFunc(ctx, id, active)
}

func (m *mockPlanRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
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
