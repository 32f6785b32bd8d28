package usecase_test

import (
	"context"
	"errors"

	"insighthub/internal/catalog/repository"
	"insighthub/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	stored  model.Catalog
	has     bool
	getErr  error
	saveErr error
	saves   int
}

func (r *memRepo) GetCatalog(ctx context.Context) (model.Catalog, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if !r.has {
		return nil, repository.ErrNotFound
	}
	return r.stored.Clone(), nil
}

func (r *memRepo) SaveCatalog(ctx context.Context, c model.Catalog) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.stored = c.Clone()
	r.has = true
	return nil
}

var errDisk = errors.New("disk full")
