package routes_test

import (
	"context"

	"github.com/yigit/ucsbapi/internal/app/repositories"
)

// mockStore records every call and delegates to the optional func fields
type mockStore[T any, K comparable] struct {
	findByIDFn func(ctx context.Context, id K) (*T, error)
	findAllFn  func(ctx context.Context) ([]T, error)
	insertFn   func(ctx context.Context, entity *T) (*T, error)
	saveFn     func(ctx context.Context, entity *T) (*T, error)
	deleteFn   func(ctx context.Context, entity *T) error

	calls    int
	lookups  []K
	inserted []T
	saved    []T
	deleted  []T
}

func (m *mockStore[T, K]) FindByID(ctx context.Context, id K) (*T, error) {
	m.calls++
	m.lookups = append(m.lookups, id)
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

func (m *mockStore[T, K]) FindAll(ctx context.Context) ([]T, error) {
	m.calls++
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockStore[T, K]) Insert(ctx context.Context, entity *T) (*T, error) {
	m.calls++
	m.inserted = append(m.inserted, *entity)
	if m.insertFn != nil {
		return m.insertFn(ctx, entity)
	}
	saved := *entity
	return &saved, nil
}

func (m *mockStore[T, K]) Save(ctx context.Context, entity *T) (*T, error) {
	m.calls++
	m.saved = append(m.saved, *entity)
	if m.saveFn != nil {
		return m.saveFn(ctx, entity)
	}
	saved := *entity
	return &saved, nil
}

func (m *mockStore[T, K]) Delete(ctx context.Context, entity *T) error {
	m.calls++
	m.deleted = append(m.deleted, *entity)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, entity)
	}
	return nil
}

// mutations counts the calls that could change stored state
func (m *mockStore[T, K]) mutations() int {
	return len(m.inserted) + len(m.saved) + len(m.deleted)
}
