package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("post not found")
)

// PostService defines the use cases for managing posts.
type PostService interface {
	// List returns all posts, newest createdAt first.
	List(ctx context.Context) ([]model.Post, error)

	// Get returns a single post by its ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*model.Post, error)

	// Create validates the input and persists a new post with a fresh ID
	// and both timestamps set to now.
	Create(ctx context.Context, in model.PostInput) (*model.Post, error)

	// Update validates the input and fully replaces name, description,
	// and image of an existing post, refreshing updatedAt and preserving
	// createdAt. Returns ErrNotFound if no post with that ID exists; a
	// missing ID never creates a row.
	Update(ctx context.Context, id string, in model.PostInput) (*model.Post, error)

	// Delete removes a post by ID and reports whether a post was removed.
	// An absent ID yields (false, nil), not an error.
	Delete(ctx context.Context, id string) (bool, error)
}

// postService is a concrete implementation of PostService.
// It holds no per-post state across calls; every operation goes straight
// to the repository.
type postService struct {
	repo repository.PostRepository
	now  func() time.Time
}

// NewPostService constructs a new PostService.
func NewPostService(repo repository.PostRepository) PostService {
	return &postService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *postService) List(ctx context.Context) ([]model.Post, error) {
	return s.repo.FindAll(ctx)
}

func (s *postService) Get(ctx context.Context, id string) (*model.Post, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) Create(ctx context.Context, in model.PostInput) (*model.Post, error) {
	if ve := validateInput(in); ve != nil {
		return nil, ve
	}

	now := s.now()
	post := &model.Post{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repo.Create(ctx, post)
}

func (s *postService) Update(ctx context.Context, id string, in model.PostInput) (*model.Post, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if ve := validateInput(in); ve != nil {
		return nil, ve
	}

	post := &model.Post{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		UpdatedAt:   s.now(),
	}
	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *postService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
