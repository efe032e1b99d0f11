package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/ucsbapi/internal/app/repositories"
	"github.com/yigit/ucsbapi/internal/pkg/apperrors"
)

// Resource describes an entity type to ResourceService
type Resource[T any, K comparable] struct {
	// Name is used in not-found and deleted messages
	Name  string
	KeyOf func(*T) K
	// Merge copies the mutable fields of src onto dst. Nil means the entity
	// cannot be updated.
	Merge func(dst, src *T)
}

// ResourceService implements list/get/create/update/delete for one entity type
type ResourceService[T any, K comparable] struct {
	resource Resource[T, K]
	store    repositories.Store[T, K]
}

// NewResourceService creates a service for resource backed by store
func NewResourceService[T any, K comparable](resource Resource[T, K], store repositories.Store[T, K]) *ResourceService[T, K] {
	return &ResourceService[T, K]{
		resource: resource,
		store:    store,
	}
}

// Name returns the entity name
func (s *ResourceService[T, K]) Name() string {
	return s.resource.Name
}

// List returns every record in store order, never nil
func (s *ResourceService[T, K]) List(ctx context.Context) ([]T, error) {
	all, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing %s: %w", s.resource.Name, err)
	}
	if all == nil {
		all = []T{}
	}
	return all, nil
}

// Get returns the record stored under id or an *apperrors.EntityNotFoundError
func (s *ResourceService[T, K]) Get(ctx context.Context, id K) (*T, error) {
	entity, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(id, err)
	}
	return entity, nil
}

// Create persists a new record and returns it as stored
func (s *ResourceService[T, K]) Create(ctx context.Context, entity *T) (*T, error) {
	saved, err := s.store.Insert(ctx, entity)
	if err != nil {
		return nil, s.translate(s.resource.KeyOf(entity), err)
	}
	return saved, nil
}

// Update copies the mutable fields of incoming onto the record stored under id.
// The key of the stored record is never changed.
func (s *ResourceService[T, K]) Update(ctx context.Context, id K, incoming *T) (*T, error) {
	if s.resource.Merge == nil {
		return nil, fmt.Errorf("%s does not support updates", s.resource.Name)
	}

	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(id, err)
	}

	s.resource.Merge(existing, incoming)

	saved, err := s.store.Save(ctx, existing)
	if err != nil {
		return nil, s.translate(id, err)
	}
	return saved, nil
}

// Delete removes the record stored under id
func (s *ResourceService[T, K]) Delete(ctx context.Context, id K) error {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return s.translate(id, err)
	}

	if err := s.store.Delete(ctx, existing); err != nil {
		return s.translate(id, err)
	}
	return nil
}

// DeletedMessage is the confirmation returned after a successful Delete
func (s *ResourceService[T, K]) DeletedMessage(id K) string {
	return fmt.Sprintf("%s with id %v deleted", s.resource.Name, id)
}

func (s *ResourceService[T, K]) translate(id K, err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return apperrors.NewEntityNotFoundError(s.resource.Name, id)
	case errors.Is(err, repositories.ErrDuplicateKey):
		return apperrors.NewConflictError(fmt.Sprintf("%s with id %v already exists", s.resource.Name, id))
	default:
		return fmt.Errorf("%s store failure: %w", s.resource.Name, err)
	}
}
