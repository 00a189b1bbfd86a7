package category

// Category is the API response model for a category.
type Category struct {
	ID        int64  `json:"id" doc:"Category id"`
	Name      string `json:"name" doc:"Unique category name"`
	IsActive  bool   `json:"is_active" doc:"Whether the category accepts new expenses"`
	CreatedAt string `json:"created_at" doc:"RFC3339 creation time"`
}
