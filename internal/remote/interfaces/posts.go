package interfaces

import (
	"context"

	"timeline-frontend/internal/model"
)

// PostsAPI 定义帖子资源的远程操作契约
type PostsAPI interface {
	ListByStream(ctx context.Context, streamID string) ([]model.Post, error)
	Get(ctx context.Context, id string) (*model.Post, error)
	Create(ctx context.Context, input model.NewPostInput) (*model.Post, error)
	CreateAsUser(ctx context.Context, input model.NewPostInput) (*model.Post, error)
	Update(ctx context.Context, id string, input model.UpdatePostInput) (*model.Post, error)
	Delete(ctx context.Context, id string) error
	DeleteAsUser(ctx context.Context, id string) error
	IncrementLikes(ctx context.Context, id string) error
	IncrementRetweets(ctx context.Context, id string) error
}
