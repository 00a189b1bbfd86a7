package service

import (
	"time"
)

// Category represents a category in the service layer.
type Category struct {
	ID        int64
	Name      string
	IsActive  bool
	CreatedAt time.Time
}
