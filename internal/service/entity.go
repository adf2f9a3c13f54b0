package service

import (
	"context"

	"github.com/google/uuid"

	"freight-service/internal/cache"
	"freight-service/internal/model"
	"freight-service/internal/repository"
)

// store is what every entity repository offers through its embedded crud.
type store[T any] interface {
	Create(ctx context.Context, v *T) error
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, v *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	HasDependents(ctx context.Context, id uuid.UUID) (bool, error)
	Taken(ctx context.Context, except uuid.UUID, keys ...repository.Key) (bool, error)
}

// uniqueCheck rejects a write when another row already holds all keys.
type uniqueCheck struct {
	keys    []repository.Key
	message string
}

func unique(message string, keys ...repository.Key) uniqueCheck {
	return uniqueCheck{keys: keys, message: message}
}

// entity runs the lifecycle shared by every resource: id and uniqueness
// checks before writes, the dependents guard before deletes and dropdown
// invalidation after any change.
type entity[T any] struct {
	store store[T]
	name  string
	cache cache.Dropdowns
	// list key in the dropdown cache; empty when the entity has no dropdown
	dropdownKey string
}

func newEntity[T any](s store[T], name string, dropdowns cache.Dropdowns, dropdownKey string) entity[T] {
	if dropdowns == nil {
		dropdowns = cache.Noop{}
	}
	return entity[T]{store: s, name: name, cache: dropdowns, dropdownKey: dropdownKey}
}

func (e entity[T]) get(ctx context.Context, id uuid.UUID) (*T, error) {
	v, err := e.store.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, e.name, "get "+e.name, id)
	}
	return v, nil
}

func (e entity[T]) list(ctx context.Context) ([]T, error) {
	rows, err := e.store.List(ctx)
	if err != nil {
		return nil, failure("list "+e.name, nil, err)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

func (e entity[T]) create(ctx context.Context, id uuid.UUID, v *T, checks ...uniqueCheck) error {
	return e.insert(ctx, id, v, e.store.Create, checks...)
}

// insert is create with a custom write, used by entities that draw a
// formatted id or upload documents as part of the insert.
func (e entity[T]) insert(ctx context.Context, id uuid.UUID, v *T, write func(context.Context, *T) error, checks ...uniqueCheck) error {
	exists, err := e.store.ExistsByID(ctx, id)
	if err != nil {
		return failure("create "+e.name, v, err)
	}
	if exists {
		return conflict(e.name + " id already exists")
	}
	if err := e.unique(ctx, uuid.Nil, v, checks); err != nil {
		return err
	}
	if err := write(ctx, v); err != nil {
		return storeErr(err, e.name, "create "+e.name, v)
	}
	e.changed(ctx)
	return nil
}

func (e entity[T]) update(ctx context.Context, id uuid.UUID, v *T, checks ...uniqueCheck) error {
	return e.modify(ctx, id, v, e.store.Update, checks...)
}

// modify is update with a custom write, used when documents are uploaded
// alongside the row.
func (e entity[T]) modify(ctx context.Context, id uuid.UUID, v *T, write func(context.Context, *T) error, checks ...uniqueCheck) error {
	exists, err := e.store.ExistsByID(ctx, id)
	if err != nil {
		return failure("update "+e.name, v, err)
	}
	if !exists {
		return notFound(e.name)
	}
	if err := e.unique(ctx, id, v, checks); err != nil {
		return err
	}
	if err := write(ctx, v); err != nil {
		return storeErr(err, e.name, "update "+e.name, v)
	}
	e.changed(ctx)
	return nil
}

func (e entity[T]) delete(ctx context.Context, id uuid.UUID) error {
	used, err := e.store.HasDependents(ctx, id)
	if err != nil {
		return failure("delete "+e.name, id, err)
	}
	if used {
		return conflict(e.name + " is referenced by other records")
	}
	if err := e.store.Delete(ctx, id); err != nil {
		return storeErr(err, e.name, "delete "+e.name, id)
	}
	e.changed(ctx)
	return nil
}

func (e entity[T]) unique(ctx context.Context, except uuid.UUID, payload *T, checks []uniqueCheck) error {
	for _, check := range checks {
		taken, err := e.store.Taken(ctx, except, check.keys...)
		if err != nil {
			return failure("check "+e.name+" uniqueness", payload, err)
		}
		if taken {
			return conflict(check.message)
		}
	}
	return nil
}

// dropdown serves the {id, value} list through the cache. scope narrows the
// list, e.g. the drivers of one transport.
func (e entity[T]) dropdown(ctx context.Context, scope string, load func() ([]model.DropDownRow, error)) ([]model.DropDownRow, error) {
	rows, err := e.cache.Remember(ctx, cache.Key(e.dropdownKey, scope), load)
	if err != nil {
		return nil, failure("list "+e.name+" dropdown", scope, err)
	}
	return rows, nil
}

func (e entity[T]) changed(ctx context.Context) {
	if e.dropdownKey != "" {
		e.cache.Invalidate(ctx, e.dropdownKey)
	}
}

// validated runs the request rules and maps their error.
func validated(req interface{ Validate() error }) error {
	return invalid(req.Validate())
}
