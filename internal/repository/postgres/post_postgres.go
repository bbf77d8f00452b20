package postgres

import (
	"context"
	"database/sql"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// PostPostgres is a PostgreSQL implementation of repository.PostRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type PostPostgres struct {
	db *sql.DB
}

// NewPostPostgres creates a new PostPostgres repository.
func NewPostPostgres(db *sql.DB) *PostPostgres {
	return &PostPostgres{db: db}
}

var _ repository.PostRepository = (*PostPostgres)(nil)

const postColumns = "id, name, description, image, created_at, updated_at"

func scanPost(row interface{ Scan(...any) error }, p *model.Post) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Image,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

// Create inserts a new post row and returns the stored record.
func (r *PostPostgres) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	const q = `
		INSERT INTO posts (id, name, description, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + postColumns
	row := r.db.QueryRowContext(ctx, q,
		post.ID,
		post.Name,
		post.Description,
		post.Image,
		post.CreatedAt,
		post.UpdatedAt,
	)
	var out model.Post
	if err := scanPost(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single post by its ID.
func (r *PostPostgres) FindByID(ctx context.Context, id string) (*model.Post, error) {
	const q = `
		SELECT ` + postColumns + `
		FROM posts
		WHERE id = $1
	`
	var p model.Post
	if err := scanPost(r.db.QueryRowContext(ctx, q, id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindAll returns the full collection, newest created_at first.
func (r *PostPostgres) FindAll(ctx context.Context) ([]model.Post, error) {
	const q = `
		SELECT ` + postColumns + `
		FROM posts
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Post, 0)
	for rows.Next() {
		var p model.Post
		if err := scanPost(rows, &p); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update overwrites the mutable columns of a post in a single statement,
// preserving created_at. sql.ErrNoRows signals a missing row.
func (r *PostPostgres) Update(ctx context.Context, post *model.Post) (*model.Post, error) {
	const q = `
		UPDATE posts
		SET name = $2, description = $3, image = $4, updated_at = $5
		WHERE id = $1
		RETURNING ` + postColumns
	row := r.db.QueryRowContext(ctx, q,
		post.ID,
		post.Name,
		post.Description,
		post.Image,
		post.UpdatedAt,
	)
	var out model.Post
	if err := scanPost(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a post by ID and reports whether a row was actually removed.
func (r *PostPostgres) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM posts WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
