package token

import "errors"

// 固定键名，对应浏览器端 localStorage 的平面键
const (
	KeyAccessToken = "access_token"
	KeyIDToken     = "id_token"
	KeyUser        = "user"
)

// ErrKeyNotFound 键不存在；调用方应将其视为"未认证"
var ErrKeyNotFound = errors.New("token store: key not found")

// Store 定义令牌存储的契约：同源持久化的平面键值对，无加密、无过期
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
