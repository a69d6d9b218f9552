package interfaces

import (
	"context"

	"timeline-frontend/internal/model"
)

// StreamsAPI 定义 Stream 资源的远程操作契约
type StreamsAPI interface {
	GetByName(ctx context.Context, name string) (*model.Stream, error)
	Create(ctx context.Context, input model.NewStreamInput) (*model.Stream, error)
	FindOrCreate(ctx context.Context, name string, input model.NewStreamInput) (string, error)
}
