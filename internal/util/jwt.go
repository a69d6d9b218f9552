package util

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// 客户端不持有签名密钥，令牌只做未验证解析以读取过期时间；
// 签名校验由远程 API 负责

// TokenExpiry 解析令牌中的 exp 声明
func TokenExpiry(tokenString string) (time.Time, error) {
	if tokenString == "" {
		return time.Time{}, errors.New("令牌为空")
	}

	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("令牌缺少过期时间")
	}
	return exp.Time, nil
}

// IsTokenExpired 判断令牌是否已过期；无法解析的令牌视为已过期
func IsTokenExpired(tokenString string, now time.Time) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return true
	}
	return !exp.After(now)
}
