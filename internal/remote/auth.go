package remote

import (
	"context"
	"net/http"
	"net/url"

	"timeline-frontend/internal/errors"
	"timeline-frontend/internal/model"
)

// AuthClient 封装 OAuth 回调的令牌交换
type AuthClient struct {
	client *Client
}

func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

// ExchangeCode 用授权码向后端换取令牌对
func (ac *AuthClient) ExchangeCode(ctx context.Context, code, state string) (*model.TokenPair, error) {
	query := url.Values{}
	query.Set("code", code)
	if state != "" {
		query.Set("state", state)
	}

	var pair model.TokenPair
	err := ac.client.do(ctx, http.MethodGet, "/auth/callback?"+query.Encode(), false, nil, &pair)
	if err != nil {
		return nil, errors.Wrap(errors.ErrTokenExchange, "换取令牌失败", err)
	}
	if pair.AccessToken == "" || pair.IDToken == "" {
		return nil, errors.New(errors.ErrTokenExchange, "令牌交换响应不完整")
	}
	return &pair, nil
}
