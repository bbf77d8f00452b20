package repository

import (
	"context"

	"blogapi/internal/model"
)

// PostRepository defines data access for posts using SQL queries only.
// No business logic here, strictly persistence operations.
type PostRepository interface {
	// Create inserts a new post row.
	// The caller provides ID and both timestamps; the row is returned as stored.
	Create(ctx context.Context, post *model.Post) (*model.Post, error)

	// FindByID returns a post by its ID, or sql.ErrNoRows if absent.
	FindByID(ctx context.Context, id string) (*model.Post, error)

	// FindAll returns every post ordered by created_at descending
	// (id descending breaks ties). An empty slice means no rows exist.
	FindAll(ctx context.Context) ([]model.Post, error)

	// Update overwrites name, description, image, and updated_at for the
	// row identified by post.ID, leaving created_at untouched. It returns
	// the stored row, or sql.ErrNoRows if no row with that ID exists.
	Update(ctx context.Context, post *model.Post) (*model.Post, error)

	// Delete removes a post by ID and reports whether a row was removed.
	// A missing row is not an error.
	Delete(ctx context.Context, id string) (bool, error)
}
