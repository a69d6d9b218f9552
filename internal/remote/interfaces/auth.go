package interfaces

import (
	"context"

	"timeline-frontend/internal/model"
)

// AuthAPI 定义 OAuth 令牌交换的契约
type AuthAPI interface {
	ExchangeCode(ctx context.Context, code, state string) (*model.TokenPair, error)
}
