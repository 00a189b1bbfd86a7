package category

import (
	"context"
	"time"
)

// Category represents a category record.
type Category struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	Name     string
	IsActive bool
}

// ICategoryTable defines the interface for category storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ICategoryTable interface {
	List(ctx context.Context) ([]*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (int64, error)
}
