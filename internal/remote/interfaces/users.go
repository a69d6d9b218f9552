package interfaces

import (
	"context"

	"timeline-frontend/internal/model"
)

// UsersAPI 定义用户资源的远程操作契约
type UsersAPI interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Me(ctx context.Context) (*model.User, error)
	Create(ctx context.Context, input model.NewUserInput) (*model.User, error)
	CreateProfile(ctx context.Context, input model.ProfileInput) (*model.User, error)
	Update(ctx context.Context, id string, input model.ProfileInput) (*model.User, error)
	FindOrCreate(ctx context.Context, email string, input model.NewUserInput) (string, error)
}
