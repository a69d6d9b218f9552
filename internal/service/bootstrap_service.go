package service

import (
	"context"
	"time"

	"timeline-frontend/internal/errors"
	"timeline-frontend/internal/model"
	"timeline-frontend/internal/remote/interfaces"
	"timeline-frontend/internal/token"
	"timeline-frontend/internal/util"

	"go.uber.org/zap"
)

// AnonymousIdentity 匿名演示流程的固定身份配置
type AnonymousIdentity struct {
	Email             string
	Username          string
	DisplayName       string
	Bio               string
	StreamName        string
	StreamDescription string
}

// BootstrapService 在页面加载时解析身份：
// 匿名策略通过 find-or-create 解析测试用户与默认 Stream；
// 认证策略从令牌存储读取令牌并获取当前用户；
// OAuth 完成策略用授权码换取令牌对并持久化
type BootstrapService struct {
	users     interfaces.UsersAPI
	streams   interfaces.StreamsAPI
	auth      interfaces.AuthAPI
	tokens    token.Store
	anonymous AnonymousIdentity
	now       func() time.Time
}

func NewBootstrapService(
	users interfaces.UsersAPI,
	streams interfaces.StreamsAPI,
	auth interfaces.AuthAPI,
	tokens token.Store,
	anonymous AnonymousIdentity,
) *BootstrapService {
	return &BootstrapService{
		users:     users,
		streams:   streams,
		auth:      auth,
		tokens:    tokens,
		anonymous: anonymous,
		now:       time.Now,
	}
}

// ResolveAnonymous 解析匿名演示身份：确保测试用户与默认 Stream 在
// 服务端存在（不存在则创建），返回两者的标识
func (s *BootstrapService) ResolveAnonymous(ctx context.Context) (string, string, error) {
	userID, err := s.users.FindOrCreate(ctx, s.anonymous.Email, model.NewUserInput{
		Username:    s.anonymous.Username,
		Email:       s.anonymous.Email,
		Password:    "password123",
		DisplayName: s.anonymous.DisplayName,
		Bio:         s.anonymous.Bio,
	})
	if err != nil {
		util.Logger.Error("解析测试用户失败", zap.Error(err))
		return "", "", errors.Wrap(errors.ErrBootstrap, "No se pudo crear el usuario", err)
	}

	streamID, err := s.streams.FindOrCreate(ctx, s.anonymous.StreamName, model.NewStreamInput{
		Name:        s.anonymous.StreamName,
		Description: s.anonymous.StreamDescription,
		IsPublic:    true,
	})
	if err != nil {
		util.Logger.Error("解析默认 Stream 失败", zap.Error(err))
		return "", "", errors.Wrap(errors.ErrBootstrap, "No se pudo crear el stream", err)
	}

	util.Logger.Info("匿名身份解析完成",
		zap.String("user_id", userID),
		zap.String("stream_id", streamID))
	return userID, streamID, nil
}

// ResolveAuthenticated 从令牌存储解析认证身份。令牌缺失对认证流程是
// 致命的：直接失败，依赖它的渲染全部中止。令牌过期则清除令牌并返回
// ErrTokenExpired，作为既定的重新认证触发点
func (s *BootstrapService) ResolveAuthenticated(ctx context.Context) (*model.User, error) {
	idToken, err := s.tokens.Get(token.KeyIDToken)
	if err != nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "Faltan tokens de autenticación", err)
	}

	if util.IsTokenExpired(idToken, s.now()) {
		s.tokens.Delete(token.KeyIDToken)
		s.tokens.Delete(token.KeyAccessToken)
		util.Logger.Warn("认证令牌已过期，已清除")
		return nil, errors.New(errors.ErrTokenExpired, "La sesión ha expirado")
	}

	user, err := s.users.Me(ctx)
	if err != nil {
		util.Logger.Error("获取当前用户失败", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// CompleteOAuth 用授权码换取令牌对并持久化；
// 成功后页面加载继续走资料预填逻辑
func (s *BootstrapService) CompleteOAuth(ctx context.Context, code, state string) error {
	pair, err := s.auth.ExchangeCode(ctx, code, state)
	if err != nil {
		util.Logger.Error("换取令牌失败", zap.Error(err))
		return err
	}

	if err := s.tokens.Set(token.KeyAccessToken, pair.AccessToken); err != nil {
		return errors.Wrap(errors.ErrInternal, "持久化访问令牌失败", err)
	}
	if err := s.tokens.Set(token.KeyIDToken, pair.IDToken); err != nil {
		return errors.Wrap(errors.ErrInternal, "持久化身份令牌失败", err)
	}

	util.Logger.Info("令牌已持久化")
	return nil
}
