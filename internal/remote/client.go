package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"timeline-frontend/internal/errors"
	"timeline-frontend/internal/token"

	"golang.org/x/sync/singleflight"
)

// Client 是远程社交 API 的基础 HTTP 客户端。
// 每次调用都是单次往返：不重试、不设置客户端超时（沿用原设计的已记录缺口，
// 调用方传入的 context 仍可取消请求）
type Client struct {
	baseURL string
	http    *http.Client
	tokens  token.Store
	flights singleflight.Group
}

func NewClient(baseURL string, tokens token.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
	}
}

// do 执行一次 HTTP 往返并把响应 JSON 解码到 out（out 为 nil 时丢弃响应体）。
// authed 为 true 时从令牌存储读取 id_token 并附加 Bearer 头；
// 令牌缺失视为未认证，直接失败，不发起网络请求
func (c *Client) do(ctx context.Context, method, path string, authed bool, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(errors.ErrInternal, "序列化请求体失败", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(errors.ErrInternal, "构造请求失败", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		idToken, err := c.tokens.Get(token.KeyIDToken)
		if err != nil {
			return errors.Wrap(errors.ErrUnauthorized, "缺少认证令牌", err)
		}
		req.Header.Set("Authorization", "Bearer "+idToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(errors.ErrTransport, "请求远程 API 失败", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(errors.ErrRemote, "解析响应体失败", err)
		}
	}
	return nil
}

// statusError 将非 2xx 状态码映射为统一的错误码
func statusError(status int) *errors.AppError {
	switch status {
	case http.StatusNotFound:
		return errors.New(errors.ErrResourceNotFound, "资源不存在")
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.New(errors.ErrUnauthorized, "远程 API 拒绝认证")
	default:
		return errors.New(errors.ErrRemote, fmt.Sprintf("远程 API 返回状态 %d", status))
	}
}

// findOrCreate 按自然键查找，未命中则回退为创建，返回实体标识。
// 同一键的并发调用通过 singleflight 合并为一次飞行，
// 避免两个调用方同时未命中后各自创建出重复实体
func (c *Client) findOrCreate(kind, key string, lookup, create func() (string, error)) (string, error) {
	id, err, _ := c.flights.Do(kind+":"+key, func() (interface{}, error) {
		id, err := lookup()
		if err == nil {
			return id, nil
		}
		// 查找收到的任何非 2xx 响应都按未命中处理；
		// 传输层失败没有服务端结论，原样返回不回退创建
		if errors.IsCode(err, errors.ErrTransport) {
			return "", err
		}
		return create()
	})
	if err != nil {
		return "", err
	}
	return id.(string), nil
}
