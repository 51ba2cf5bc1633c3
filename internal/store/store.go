// Package store provides the identifier-keyed in-memory collections backing
// the tracker. One store is instantiated per entity type; all cross-entity
// rules live one layer up, in the tracker package.
package store

import (
	"errors"
	"fmt"
)

// ErrValidation is returned for malformed caller input, such as an empty
// identifier. It is never retried and never indicates a system fault.
var ErrValidation = errors.New("validation failed")

// Entity is anything a store can hold. Clone must return a copy that shares
// no mutable state with the receiver, so stores can hand out values without
// exposing their internals.
type Entity[T any] interface {
	EntityID() string
	Clone() T
}

// Store is an in-memory collection keyed by entity identifier. It performs
// no validation beyond "identifier non-empty" and holds no locks: the
// tracker is a single-actor data layer.
type Store[T Entity[T]] struct {
	items map[string]T
}

// New returns an empty store.
func New[T Entity[T]]() *Store[T] {
	return &Store[T]{items: make(map[string]T)}
}

// Save inserts the entity, overwriting any existing entity with the same
// identifier, and returns it unchanged.
func (s *Store[T]) Save(entity T) (T, error) {
	var zero T
	id := entity.EntityID()
	if id == "" {
		return zero, fmt.Errorf("%w: entity identifier cannot be empty", ErrValidation)
	}
	s.items[id] = entity.Clone()
	return entity, nil
}

// FindByID returns the entity with the given identifier. Absence is not an
// error; the second result reports whether the entity was found.
func (s *Store[T]) FindByID(id string) (T, bool, error) {
	var zero T
	if id == "" {
		return zero, false, fmt.Errorf("%w: identifier cannot be empty", ErrValidation)
	}
	item, ok := s.items[id]
	if !ok {
		return zero, false, nil
	}
	return item.Clone(), true, nil
}

// FindAll returns every stored entity as independent copies, in no
// particular order.
func (s *Store[T]) FindAll() []T {
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item.Clone())
	}
	return out
}

// DeleteByID removes the entity with the given identifier and reports
// whether anything was actually removed.
func (s *Store[T]) DeleteByID(id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("%w: identifier cannot be empty", ErrValidation)
	}
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

// Len returns the number of stored entities.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// ReplaceAll discards the store's contents and installs the given set.
// Used by snapshot persistence at load time.
func (s *Store[T]) ReplaceAll(items map[string]T) {
	next := make(map[string]T, len(items))
	for id, item := range items {
		next[id] = item.Clone()
	}
	s.items = next
}

// ExportAll returns an owned copy of the store's contents keyed by
// identifier. Mutating the result never affects store state. Used by
// snapshot persistence at save time.
func (s *Store[T]) ExportAll() map[string]T {
	out := make(map[string]T, len(s.items))
	for id, item := range s.items {
		out[id] = item.Clone()
	}
	return out
}
