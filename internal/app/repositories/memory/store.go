// Package memory keeps entity tables in an in-process go-memdb database. It backs
// the "memory" database driver used for local development and demos.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/hashicorp/go-memdb"
	"github.com/yigit/ucsbapi/internal/app/repositories"
)

// Store is a go-memdb table holding values of T keyed by K through the "id" index.
// Records are copied in and out so callers never share memory with the database.
type Store[T any, K comparable] struct {
	db    *memdb.MemDB
	table string
	keyOf func(*T) K

	// assignKey is set for surrogate keys and receives the next sequence value
	assignKey func(*T, int64)

	// less orders FindAll results when index order differs from key order
	less func(a, b *T) bool

	seq atomic.Int64
}

// FindByID returns repositories.ErrNotFound when id is absent
func (s *Store[T, K]) FindByID(_ context.Context, id K) (*T, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(s.table, "id", id)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", s.table, err)
	}
	if raw == nil {
		return nil, repositories.ErrNotFound
	}
	found := *raw.(*T)
	return &found, nil
}

// FindAll returns every record in key order
func (s *Store[T, K]) FindAll(_ context.Context) ([]T, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(s.table, "id")
	if err != nil {
		return nil, fmt.Errorf("error listing %s: %w", s.table, err)
	}

	all := []T{}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		all = append(all, *raw.(*T))
	}

	if s.less != nil {
		sort.Slice(all, func(i, j int) bool { return s.less(&all[i], &all[j]) })
	}
	return all, nil
}

// Insert stores a new record, assigning a surrogate key when the table uses one
func (s *Store[T, K]) Insert(_ context.Context, entity *T) (*T, error) {
	record := *entity

	txn := s.db.Txn(true)
	defer txn.Abort()

	if s.assignKey != nil {
		s.assignKey(&record, s.seq.Add(1))
	} else {
		existing, err := txn.First(s.table, "id", s.keyOf(&record))
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", s.table, err)
		}
		if existing != nil {
			return nil, repositories.ErrDuplicateKey
		}
	}

	if err := txn.Insert(s.table, &record); err != nil {
		return nil, fmt.Errorf("error inserting into %s: %w", s.table, err)
	}
	txn.Commit()

	saved := record
	return &saved, nil
}

// Save creates or replaces the record stored under the entity's key
func (s *Store[T, K]) Save(ctx context.Context, entity *T) (*T, error) {
	var zero K
	if s.assignKey != nil && s.keyOf(entity) == zero {
		return s.Insert(ctx, entity)
	}

	record := *entity

	txn := s.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(s.table, &record); err != nil {
		return nil, fmt.Errorf("error saving into %s: %w", s.table, err)
	}
	txn.Commit()

	saved := record
	return &saved, nil
}

// Delete removes the record stored under the entity's key
func (s *Store[T, K]) Delete(_ context.Context, entity *T) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(s.table, "id", s.keyOf(entity))
	if err != nil {
		return fmt.Errorf("error reading %s: %w", s.table, err)
	}
	if existing == nil {
		return repositories.ErrNotFound
	}

	if err := txn.Delete(s.table, existing); err != nil {
		return fmt.Errorf("error deleting from %s: %w", s.table, err)
	}
	txn.Commit()
	return nil
}
