package remote

import (
	"context"
	"net/http"
	"net/url"

	"timeline-frontend/internal/model"
)

// UserClient 封装用户资源的远程操作
type UserClient struct {
	client *Client
}

func NewUserClient(client *Client) *UserClient {
	return &UserClient{client: client}
}

// GetByEmail 按邮箱查找用户（自然键查找，匿名）
func (uc *UserClient) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := uc.client.do(ctx, http.MethodGet, "/users/email/"+url.PathEscape(email), false, nil, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Me 通过令牌获取当前认证用户
func (uc *UserClient) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	err := uc.client.do(ctx, http.MethodGet, "/users/me", true, nil, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create 创建用户（匿名演示流程）
func (uc *UserClient) Create(ctx context.Context, input model.NewUserInput) (*model.User, error) {
	var user model.User
	err := uc.client.do(ctx, http.MethodPost, "/users", false, input, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateProfile 以认证身份创建个人资料（OAuth 完成流程）
func (uc *UserClient) CreateProfile(ctx context.Context, input model.ProfileInput) (*model.User, error) {
	var user model.User
	err := uc.client.do(ctx, http.MethodPost, "/users", true, input, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update 更新用户资料
func (uc *UserClient) Update(ctx context.Context, id string, input model.ProfileInput) (*model.User, error) {
	var user model.User
	err := uc.client.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id), true, input, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindOrCreate 按邮箱查找用户，不存在则创建，返回用户标识
func (uc *UserClient) FindOrCreate(ctx context.Context, email string, input model.NewUserInput) (string, error) {
	return uc.client.findOrCreate("user", email,
		func() (string, error) {
			user, err := uc.GetByEmail(ctx, email)
			if err != nil {
				return "", err
			}
			return user.ID, nil
		},
		func() (string, error) {
			user, err := uc.Create(ctx, input)
			if err != nil {
				return "", err
			}
			return user.ID, nil
		},
	)
}
