package remote

import (
	"context"
	"net/http"
	"net/url"

	"timeline-frontend/internal/model"
)

// PostClient 封装帖子资源的远程操作。
// 时间线演示流程为匿名调用，个人资料页的写操作附加 Bearer 头
type PostClient struct {
	client *Client
}

func NewPostClient(client *Client) *PostClient {
	return &PostClient{client: client}
}

// ListByStream 获取指定 Stream 下的全部帖子
func (pc *PostClient) ListByStream(ctx context.Context, streamID string) ([]model.Post, error) {
	var posts []model.Post
	err := pc.client.do(ctx, http.MethodGet, "/posts/stream/"+url.PathEscape(streamID), false, nil, &posts)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Get 按标识获取帖子
func (pc *PostClient) Get(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := pc.client.do(ctx, http.MethodGet, "/posts/"+url.PathEscape(id), false, nil, &post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create 创建帖子（匿名时间线流程）
func (pc *PostClient) Create(ctx context.Context, input model.NewPostInput) (*model.Post, error) {
	var post model.Post
	err := pc.client.do(ctx, http.MethodPost, "/posts", false, input, &post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// CreateAsUser 以认证身份创建帖子（个人资料页流程）
func (pc *PostClient) CreateAsUser(ctx context.Context, input model.NewPostInput) (*model.Post, error) {
	var post model.Post
	err := pc.client.do(ctx, http.MethodPost, "/posts", true, input, &post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update 更新帖子内容
func (pc *PostClient) Update(ctx context.Context, id string, input model.UpdatePostInput) (*model.Post, error) {
	var post model.Post
	err := pc.client.do(ctx, http.MethodPut, "/posts/"+url.PathEscape(id), false, input, &post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete 删除帖子（匿名时间线流程）
func (pc *PostClient) Delete(ctx context.Context, id string) error {
	return pc.client.do(ctx, http.MethodDelete, "/posts/"+url.PathEscape(id), false, nil, nil)
}

// DeleteAsUser 以认证身份删除帖子（个人资料页流程）
func (pc *PostClient) DeleteAsUser(ctx context.Context, id string) error {
	return pc.client.do(ctx, http.MethodDelete, "/posts/"+url.PathEscape(id), true, nil, nil)
}

// IncrementLikes 点赞计数加一
func (pc *PostClient) IncrementLikes(ctx context.Context, id string) error {
	return pc.client.do(ctx, http.MethodPost, "/posts/"+url.PathEscape(id)+"/likes/increment", false, nil, nil)
}

// IncrementRetweets 转发计数加一
func (pc *PostClient) IncrementRetweets(ctx context.Context, id string) error {
	return pc.client.do(ctx, http.MethodPost, "/posts/"+url.PathEscape(id)+"/retweets/increment", false, nil, nil)
}
