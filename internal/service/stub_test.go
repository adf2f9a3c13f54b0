package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight-service/internal/model"
	"freight-service/internal/repository"
)

// memStore is an in-memory store[T]. column reads a column value from a row
// so uniqueness checks behave like the SQL ones.
type memStore[T any] struct {
	rows       map[uuid.UUID]T
	id         func(*T) uuid.UUID
	column     func(*T, string) string
	dependents map[uuid.UUID]bool
	failWith   error
}

func newMemStore[T any](id func(*T) uuid.UUID, column func(*T, string) string) *memStore[T] {
	return &memStore[T]{
		rows:       map[uuid.UUID]T{},
		id:         id,
		column:     column,
		dependents: map[uuid.UUID]bool{},
	}
}

func (m *memStore[T]) Create(_ context.Context, v *T) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.rows[m.id(v)] = *v
	return nil
}

func (m *memStore[T]) GetByID(_ context.Context, id uuid.UUID) (*T, error) {
	v, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &v, nil
}

func (m *memStore[T]) List(context.Context) ([]T, error) {
	out := make([]T, 0, len(m.rows))
	for _, v := range m.rows {
		out = append(out, v)
	}
	return out, nil
}

func (m *memStore[T]) Update(_ context.Context, v *T) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.rows[m.id(v)]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.rows[m.id(v)] = *v
	return nil
}

func (m *memStore[T]) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memStore[T]) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.rows[id]
	return ok, nil
}

func (m *memStore[T]) HasDependents(_ context.Context, id uuid.UUID) (bool, error) {
	return m.dependents[id], nil
}

func (m *memStore[T]) Taken(_ context.Context, except uuid.UUID, keys ...repository.Key) (bool, error) {
	for id, row := range m.rows {
		if id == except {
			continue
		}
		match := true
		for _, k := range keys {
			if !strings.EqualFold(m.column(&row, k.Column), k.Value) {
				match = false
				break
			}
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

// countingDropdowns is a cache that remembers per key and counts loads.
type countingDropdowns struct {
	mu          sync.Mutex
	entries     map[string][]model.DropDownRow
	loads       int
	invalidated []string
}

func newCountingDropdowns() *countingDropdowns {
	return &countingDropdowns{entries: map[string][]model.DropDownRow{}}
}

func (c *countingDropdowns) Remember(_ context.Context, key string, load func() ([]model.DropDownRow, error)) ([]model.DropDownRow, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rows, ok := c.entries[key]; ok {
		return rows, nil
	}
	rows, err := load()
	if err != nil {
		return nil, err
	}
	c.loads++
	c.entries[key] = rows
	return rows, nil
}

func (c *countingDropdowns) Invalidate(_ context.Context, entity string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, entity)
	for key := range c.entries {
		if key == entity || strings.HasPrefix(key, entity+":") {
			delete(c.entries, key)
		}
	}
}

// fakeImages is a storage.Store keeping URLs in memory.
type fakeImages struct {
	mu      sync.Mutex
	stored  map[string]bool
	deleted []string
	failPut error
}

func newFakeImages() *fakeImages {
	return &fakeImages{stored: map[string]bool{}}
}

func (f *fakeImages) Put(_ context.Context, localPath string) (string, error) {
	if f.failPut != nil {
		return "", f.failPut
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	url := fmt.Sprintf("https://cdn.test/images/%s", localPath)
	f.stored[url] = true
	return url, nil
}

func (f *fakeImages) Delete(_ context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.stored, url)
	f.deleted = append(f.deleted, url)
	return nil
}

var errBoom = errors.New("boom")
