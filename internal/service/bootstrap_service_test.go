package service

import (
	"context"
	"testing"
	"time"

	"timeline-frontend/internal/errors"
	"timeline-frontend/internal/model"
	"timeline-frontend/internal/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testAnonymous = AnonymousIdentity{
	Email:             "test@example.com",
	Username:          "testuser",
	DisplayName:       "Usuario de Prueba",
	Bio:               "Este es un usuario de prueba",
	StreamName:        "Timeline Principal",
	StreamDescription: "Stream principal del timeline",
}

func signedTokenWithExp(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "u1", "exp": exp.Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return signed
}

// TestResolveAnonymous 测试匿名身份解析：用户与 Stream 各解析一次
func TestResolveAnonymous(t *testing.T) {
	mockUsers := new(MockUsersAPI)
	mockStreams := new(MockStreamsAPI)

	mockUsers.On("FindOrCreate", mock.Anything, "test@example.com", mock.Anything).
		Return("u1", nil)
	mockStreams.On("FindOrCreate", mock.Anything, "Timeline Principal", mock.Anything).
		Return("s1", nil)

	svc := NewBootstrapService(mockUsers, mockStreams, new(MockAuthAPI), token.NewMemoryStore(), testAnonymous)

	userID, streamID, err := svc.ResolveAnonymous(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "s1", streamID)
	mockUsers.AssertExpectations(t)
	mockStreams.AssertExpectations(t)
}

// TestResolveAnonymousUserFailure 测试用户解析失败时不再解析 Stream
func TestResolveAnonymousUserFailure(t *testing.T) {
	mockUsers := new(MockUsersAPI)
	mockStreams := new(MockStreamsAPI)

	mockUsers.On("FindOrCreate", mock.Anything, "test@example.com", mock.Anything).
		Return("", errors.New(errors.ErrTransport, "sin conexión"))

	svc := NewBootstrapService(mockUsers, mockStreams, new(MockAuthAPI), token.NewMemoryStore(), testAnonymous)

	_, _, err := svc.ResolveAnonymous(context.Background())
	assert.True(t, errors.IsCode(err, errors.ErrBootstrap))
	mockStreams.AssertNotCalled(t, "FindOrCreate", mock.Anything, mock.Anything, mock.Anything)
}

// TestResolveAuthenticatedMissingToken 测试令牌缺失对认证流程是致命的
func TestResolveAuthenticatedMissingToken(t *testing.T) {
	mockUsers := new(MockUsersAPI)
	svc := NewBootstrapService(mockUsers, new(MockStreamsAPI), new(MockAuthAPI), token.NewMemoryStore(), testAnonymous)

	_, err := svc.ResolveAuthenticated(context.Background())
	assert.True(t, errors.IsCode(err, errors.ErrUnauthorized))
	mockUsers.AssertNotCalled(t, "Me", mock.Anything)
}

// TestResolveAuthenticatedExpiredToken 测试过期令牌被清除并触发重新认证
func TestResolveAuthenticatedExpiredToken(t *testing.T) {
	tokens := token.NewMemoryStore()
	tokens.Set(token.KeyIDToken, signedTokenWithExp(t, time.Now().Add(-time.Hour)))
	tokens.Set(token.KeyAccessToken, "access-token")

	mockUsers := new(MockUsersAPI)
	svc := NewBootstrapService(mockUsers, new(MockStreamsAPI), new(MockAuthAPI), tokens, testAnonymous)

	_, err := svc.ResolveAuthenticated(context.Background())
	assert.True(t, errors.IsCode(err, errors.ErrTokenExpired))

	_, err = tokens.Get(token.KeyIDToken)
	assert.ErrorIs(t, err, token.ErrKeyNotFound)
	_, err = tokens.Get(token.KeyAccessToken)
	assert.ErrorIs(t, err, token.ErrKeyNotFound)
	mockUsers.AssertNotCalled(t, "Me", mock.Anything)
}

// TestResolveAuthenticated 测试有效令牌下解析当前用户
func TestResolveAuthenticated(t *testing.T) {
	tokens := token.NewMemoryStore()
	tokens.Set(token.KeyIDToken, signedTokenWithExp(t, time.Now().Add(time.Hour)))

	mockUsers := new(MockUsersAPI)
	mockUsers.On("Me", mock.Anything).Return(&model.User{ID: "u1", Username: "ana"}, nil)

	svc := NewBootstrapService(mockUsers, new(MockStreamsAPI), new(MockAuthAPI), tokens, testAnonymous)

	user, err := svc.ResolveAuthenticated(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	mockUsers.AssertExpectations(t)
}

// TestCompleteOAuth 测试授权码换取令牌对并持久化
func TestCompleteOAuth(t *testing.T) {
	tokens := token.NewMemoryStore()

	mockAuth := new(MockAuthAPI)
	mockAuth.On("ExchangeCode", mock.Anything, "xyz", "st").
		Return(&model.TokenPair{AccessToken: "a1", IDToken: "i1"}, nil)

	svc := NewBootstrapService(new(MockUsersAPI), new(MockStreamsAPI), mockAuth, tokens, testAnonymous)

	assert.NoError(t, svc.CompleteOAuth(context.Background(), "xyz", "st"))

	access, err := tokens.Get(token.KeyAccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "a1", access)
	id, err := tokens.Get(token.KeyIDToken)
	assert.NoError(t, err)
	assert.Equal(t, "i1", id)
}

// TestCompleteOAuthExchangeFailure 测试换取失败时不写入任何令牌
func TestCompleteOAuthExchangeFailure(t *testing.T) {
	tokens := token.NewMemoryStore()

	mockAuth := new(MockAuthAPI)
	mockAuth.On("ExchangeCode", mock.Anything, "xyz", "st").
		Return(nil, errors.New(errors.ErrTokenExchange, "intercambio fallido"))

	svc := NewBootstrapService(new(MockUsersAPI), new(MockStreamsAPI), mockAuth, tokens, testAnonymous)

	err := svc.CompleteOAuth(context.Background(), "xyz", "st")
	assert.True(t, errors.IsCode(err, errors.ErrTokenExchange))

	_, err = tokens.Get(token.KeyAccessToken)
	assert.ErrorIs(t, err, token.ErrKeyNotFound)
}
