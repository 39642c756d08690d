package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrAlreadyExists     = errors.New("record already exists")
	ErrRemoteUnavailable = errors.New("remote backend not configured")
)

// Query describes a list request once for both data paths: Filters and
// OrderBy go to the remote backend, Match and Less are their in-memory
// equivalents for the mock mirror.
type Query[T any] struct {
	Filters    map[string]interface{}
	OrderBy    string
	Descending bool
	Match      func(T) bool
	Less       func(a, b T) bool
}

// Repository is the CRUD contract every entity exposes.
type Repository[T any] interface {
	List(ctx context.Context, q Query[T]) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id string, mutate func(*T) error) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Accessor exposes the identity and creation time fields of T.
type Accessor[T any] struct {
	ID        func(*T) *string
	CreatedAt func(*T) *time.Time
}

// Resource implements Repository by trying the remote store first and
// falling back to the process-local mock mirror.
type Resource[T any] struct {
	name   string
	remote *RemoteStore[T]
	mock   *MemoryStore[T]
	access Accessor[T]
	now    func() time.Time
}

// NewResource builds a resource. A nil db means mock-only operation.
func NewResource[T any](name string, db *gorm.DB, access Accessor[T], seed []T) *Resource[T] {
	r := &Resource[T]{
		name:   name,
		mock:   NewMemoryStore(access.ID, seed),
		access: access,
		now:    time.Now,
	}
	if db != nil {
		r.remote = NewRemoteStore[T](db)
	}
	return r
}

func (r *Resource[T]) Name() string {
	return r.name
}

func (r *Resource[T]) List(ctx context.Context, q Query[T]) ([]T, error) {
	return withFallback(ctx, r, "list",
		func(ctx context.Context, remote *RemoteStore[T]) ([]T, error) {
			return remote.List(ctx, q)
		},
		func() ([]T, error) {
			return r.mock.List(q), nil
		})
}

func (r *Resource[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return withFallback(ctx, r, "get",
		func(ctx context.Context, remote *RemoteStore[T]) (*T, error) {
			return remote.Get(ctx, id)
		},
		func() (*T, error) {
			row, ok := r.mock.Get(id)
			if !ok {
				return nil, fmt.Errorf("%s %q: %w", r.name, id, ErrNotFound)
			}
			return &row, nil
		})
}

// Create assigns an id and creation time when the caller left them empty.
func (r *Resource[T]) Create(ctx context.Context, entity *T) error {
	if id := r.access.ID(entity); *id == "" {
		*id = uuid.NewString()
	}
	if r.access.CreatedAt != nil {
		if at := r.access.CreatedAt(entity); at.IsZero() {
			*at = r.now()
		}
	}

	created, err := withFallback(ctx, r, "create",
		func(ctx context.Context, remote *RemoteStore[T]) (T, error) {
			row := *entity
			if err := remote.Insert(ctx, &row); err != nil {
				return row, err
			}
			return row, nil
		},
		func() (T, error) {
			if err := r.mock.Insert(*entity); err != nil {
				return *entity, fmt.Errorf("%s %q: %w", r.name, *r.access.ID(entity), err)
			}
			return *entity, nil
		})
	if err != nil {
		return err
	}
	*entity = created
	return nil
}

// Update loads the current row, applies mutate and stores the result.
// Errors returned by mutate abort the update on either path without
// triggering a fallback.
func (r *Resource[T]) Update(ctx context.Context, id string, mutate func(*T) error) (*T, error) {
	guarded := func(row *T) error {
		if err := mutate(row); err != nil {
			return &mutateError{err: err}
		}
		return nil
	}
	return withFallback(ctx, r, "update",
		func(ctx context.Context, remote *RemoteStore[T]) (*T, error) {
			return remote.Update(ctx, id, guarded)
		},
		func() (*T, error) {
			row, err := r.mock.Update(id, guarded)
			if err != nil {
				return nil, fmt.Errorf("%s %q: %w", r.name, id, err)
			}
			return &row, nil
		})
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	_, err := withFallback(ctx, r, "delete",
		func(ctx context.Context, remote *RemoteStore[T]) (struct{}, error) {
			return struct{}{}, remote.Delete(ctx, id)
		},
		func() (struct{}, error) {
			if !r.mock.Delete(id) {
				return struct{}{}, fmt.Errorf("%s %q: %w", r.name, id, ErrNotFound)
			}
			return struct{}{}, nil
		})
	return err
}

type mutateError struct {
	err error
}

func (e *mutateError) Error() string { return e.err.Error() }
func (e *mutateError) Unwrap() error { return e.err }

// withFallback is the single remote-or-mock switch shared by every entity.
func withFallback[T, R any](
	ctx context.Context,
	r *Resource[T],
	op string,
	remote func(context.Context, *RemoteStore[T]) (R, error),
	mock func() (R, error),
) (R, error) {
	if r.remote != nil {
		result, err := remote(ctx, r.remote)
		if err == nil {
			return result, nil
		}
		var me *mutateError
		if errors.As(err, &me) {
			var zero R
			return zero, me.err
		}
		log.Printf("Warning: remote %s %s failed, using mock data: %v", op, r.name, err)
	}

	result, err := mock()
	if err != nil {
		var me *mutateError
		if errors.As(err, &me) {
			var zero R
			return zero, me.err
		}
	}
	return result, err
}
