package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"blogapi/internal/model"
	repoMocks "blogapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         model.PostInput
		setupMocks func(mRepo *repoMocks.MockPostRepository)
		wantFields []string
		wantErr    bool
	}{
		{
			name: "happy path",
			in:   model.PostInput{Name: "Hello", Description: "World"},
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Post) bool {
					return p.ID != "" &&
						p.Name == "Hello" &&
						p.Description == "World" &&
						p.Image == nil &&
						p.CreatedAt.Equal(p.UpdatedAt) &&
						!p.CreatedAt.IsZero()
				})).Return(func(ctx context.Context, p *model.Post) *model.Post {
					out := *p
					return &out
				}, nil)
			},
		},
		{
			name: "happy path with image",
			in:   model.PostInput{Name: "Hello", Description: "World", Image: strPtr("https://example.com/a.png")},
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Post) bool {
					return p.Image != nil && *p.Image == "https://example.com/a.png"
				})).Return(func(ctx context.Context, p *model.Post) *model.Post {
					out := *p
					return &out
				}, nil)
			},
		},
		{
			name:       "empty name",
			in:         model.PostInput{Name: "   ", Description: "World"},
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {},
			wantFields: []string{"name"},
		},
		{
			name:       "name too long",
			in:         model.PostInput{Name: strings.Repeat("a", MaxNameLen+1), Description: "World"},
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {},
			wantFields: []string{"name"},
		},
		{
			// 200 two-byte runes are 400 bytes but still within the cap.
			name: "multibyte name at the cap",
			in:   model.PostInput{Name: strings.Repeat("é", MaxNameLen), Description: strings.Repeat("ü", MaxDescriptionLen)},
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {
				mRepo.On("Create", ctx, mock.Anything).Return(func(ctx context.Context, p *model.Post) *model.Post {
					out := *p
					return &out
				}, nil)
			},
		},
		{
			name:       "multibyte name over the cap",
			in:         model.PostInput{Name: strings.Repeat("é", MaxNameLen+1), Description: "World"},
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {},
			wantFields: []string{"name"},
		},
		{
			name:       "empty description",
			in:         model.PostInput{Name: "Hello", Description: ""},
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {},
			wantFields: []string{"description"},
		},
		{
			name:       "description too long",
			in:         model.PostInput{Name: "Hello", Description: strings.Repeat("b", MaxDescriptionLen+1)},
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {},
			wantFields: []string{"description"},
		},
		{
			name:       "image too large",
			in:         model.PostInput{Name: "Hello", Description: "World", Image: strPtr(strings.Repeat("x", MaxImageLen+1))},
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {},
			wantFields: []string{"image"},
		},
		{
			name:       "every field violated at once",
			in:         model.PostInput{Name: "", Description: ""},
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {},
			wantFields: []string{"name", "description"},
		},
		{
			name: "repository error",
			in:   model.PostInput{Name: "Hello", Description: "World"},
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockPostRepository)
			svc := NewPostService(mRepo)

			tt.setupMocks(mRepo)

			post, err := svc.Create(ctx, tt.in)

			switch {
			case len(tt.wantFields) > 0:
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				for _, f := range tt.wantFields {
					assert.Contains(t, ve.Fields, f)
				}
				assert.Len(t, ve.Fields, len(tt.wantFields))
				assert.Nil(t, post)
				// No partial write: repository must never be reached.
				mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			case tt.wantErr:
				assert.Error(t, err)
				assert.Nil(t, post)
			default:
				assert.NoError(t, err)
				require.NotNil(t, post)
				assert.Equal(t, tt.in.Name, post.Name)
				assert.True(t, post.CreatedAt.Equal(post.UpdatedAt))
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mRepo *repoMocks.MockPostRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   "valid-id",
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {
				mRepo.On("FindByID", ctx, "valid-id").Return(&model.Post{ID: "valid-id", Name: "Hello"}, nil)
			},
		},
		{
			name:       "validation - empty id",
			id:         "",
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found",
			id:   "missing-id",
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {
				mRepo.On("FindByID", ctx, "missing-id").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "repository error",
			id:   "broken-id",
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {
				mRepo.On("FindByID", ctx, "broken-id").Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockPostRepository)
			svc := NewPostService(mRepo)

			tt.setupMocks(mRepo)

			post, err := svc.Get(ctx, tt.id)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrIDRequired) || errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Error(t, err)
				}
				assert.Nil(t, post)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, post)
				assert.Equal(t, tt.id, post.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path preserves createdAt and advances updatedAt", func(t *testing.T) {
		mRepo := new(repoMocks.MockPostRepository)
		svc := NewPostService(mRepo).(*postService)

		created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		updated := created.Add(time.Hour)
		svc.now = func() time.Time { return updated }

		mRepo.On("Update", ctx, mock.MatchedBy(func(p *model.Post) bool {
			return p.ID == "valid-id" && p.Name == "Hello2" && p.UpdatedAt.Equal(updated)
		})).Return(&model.Post{
			ID:          "valid-id",
			Name:        "Hello2",
			Description: "World",
			CreatedAt:   created,
			UpdatedAt:   updated,
		}, nil)

		post, err := svc.Update(ctx, "valid-id", model.PostInput{Name: "Hello2", Description: "World"})

		assert.NoError(t, err)
		require.NotNil(t, post)
		assert.Equal(t, created, post.CreatedAt)
		assert.True(t, post.UpdatedAt.After(post.CreatedAt))
		mRepo.AssertExpectations(t)
	})

	t.Run("not found creates nothing", func(t *testing.T) {
		mRepo := new(repoMocks.MockPostRepository)
		svc := NewPostService(mRepo)

		mRepo.On("Update", ctx, mock.Anything).Return(nil, sql.ErrNoRows)

		post, err := svc.Update(ctx, "missing-id", model.PostInput{Name: "Hello", Description: "World"})

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, post)
		mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("validation failure never reaches repository", func(t *testing.T) {
		mRepo := new(repoMocks.MockPostRepository)
		svc := NewPostService(mRepo)

		post, err := svc.Update(ctx, "valid-id", model.PostInput{Name: "", Description: "World"})

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "name")
		assert.Nil(t, post)
		mRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("empty id", func(t *testing.T) {
		mRepo := new(repoMocks.MockPostRepository)
		svc := NewPostService(mRepo)

		post, err := svc.Update(ctx, "", model.PostInput{Name: "Hello", Description: "World"})

		assert.ErrorIs(t, err, ErrIDRequired)
		assert.Nil(t, post)
	})
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		id          string
		setupMocks  func(mRepo *repoMocks.MockPostRepository)
		wantRemoved bool
		wantErr     error
	}{
		{
			name: "happy path",
			id:   "valid-id",
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {
				mRepo.On("Delete", ctx, "valid-id").Return(true, nil)
			},
			wantRemoved: true,
		},
		{
			name: "absent id removes nothing without error",
			id:   "missing-id",
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {
				mRepo.On("Delete", ctx, "missing-id").Return(false, nil)
			},
			wantRemoved: false,
		},
		{
			name:       "validation - empty id",
			id:         "",
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "repository error",
			id:   "broken-id",
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {
				mRepo.On("Delete", ctx, "broken-id").Return(false, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockPostRepository)
			svc := NewPostService(mRepo)

			tt.setupMocks(mRepo)

			removed, err := svc.Delete(ctx, tt.id)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrIDRequired) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Error(t, err)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantRemoved, removed)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("passes through ordered collection", func(t *testing.T) {
		mRepo := new(repoMocks.MockPostRepository)
		svc := NewPostService(mRepo)

		newer := time.Now().UTC()
		older := newer.Add(-time.Hour)
		mRepo.On("FindAll", ctx).Return([]model.Post{
			{ID: "b", Name: "Newer", CreatedAt: newer},
			{ID: "a", Name: "Older", CreatedAt: older},
		}, nil)

		posts, err := svc.List(ctx)

		assert.NoError(t, err)
		require.Len(t, posts, 2)
		assert.True(t, posts[0].CreatedAt.After(posts[1].CreatedAt))
	})

	t.Run("empty collection", func(t *testing.T) {
		mRepo := new(repoMocks.MockPostRepository)
		svc := NewPostService(mRepo)

		mRepo.On("FindAll", ctx).Return([]model.Post{}, nil)

		posts, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.Empty(t, posts)
	})
}
