package remote

import (
	"context"
	"net/http"
	"net/url"

	"timeline-frontend/internal/model"
)

// StreamClient 封装 Stream 资源的远程操作
type StreamClient struct {
	client *Client
}

func NewStreamClient(client *Client) *StreamClient {
	return &StreamClient{client: client}
}

// GetByName 按名称查找 Stream（自然键查找）
func (sc *StreamClient) GetByName(ctx context.Context, name string) (*model.Stream, error) {
	var stream model.Stream
	err := sc.client.do(ctx, http.MethodGet, "/streams/name/"+url.PathEscape(name), false, nil, &stream)
	if err != nil {
		return nil, err
	}
	return &stream, nil
}

// Create 创建 Stream
func (sc *StreamClient) Create(ctx context.Context, input model.NewStreamInput) (*model.Stream, error) {
	var stream model.Stream
	err := sc.client.do(ctx, http.MethodPost, "/streams", false, input, &stream)
	if err != nil {
		return nil, err
	}
	return &stream, nil
}

// FindOrCreate 按名称查找 Stream，不存在则创建，返回 Stream 标识
func (sc *StreamClient) FindOrCreate(ctx context.Context, name string, input model.NewStreamInput) (string, error) {
	return sc.client.findOrCreate("stream", name,
		func() (string, error) {
			stream, err := sc.GetByName(ctx, name)
			if err != nil {
				return "", err
			}
			return stream.ID, nil
		},
		func() (string, error) {
			stream, err := sc.Create(ctx, input)
			if err != nil {
				return "", err
			}
			return stream.ID, nil
		},
	)
}
