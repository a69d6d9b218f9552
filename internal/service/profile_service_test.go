package service

import (
	"context"
	"strings"
	"testing"

	"timeline-frontend/internal/errors"
	"timeline-frontend/internal/model"
	"timeline-frontend/internal/notify"
	"timeline-frontend/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProfileFixture(users *MockUsersAPI, posts *MockPostsAPI) (*ProfileService, *notify.Queue, token.Store) {
	queue := notify.NewQueue()
	tokens := token.NewMemoryStore()
	return NewProfileService(users, posts, tokens, fixedRenderer(), queue), queue, tokens
}

// TestRefreshProfile 测试资料页渲染与用户缓存
func TestRefreshProfile(t *testing.T) {
	svc, _, tokens := newProfileFixture(new(MockUsersAPI), new(MockPostsAPI))

	user := &model.User{
		ID:          "u1",
		Username:    "ana",
		DisplayName: "Ana García",
		Bio:         "Hola, soy Ana",
		Posts:       []model.Post{{ID: "p1", Content: "mi primer post"}},
	}
	assert.NoError(t, svc.RefreshProfile(context.Background(), user))

	header, postList := svc.Snapshots()
	assert.Contains(t, string(header), "Ana García")
	assert.Contains(t, string(postList), "mi primer post")
	assert.Equal(t, "u1", svc.CurrentUser().ID)

	// 刷新同时写入缓存，供表单预填回读
	cached, err := tokens.Get(token.KeyUser)
	assert.NoError(t, err)
	assert.Contains(t, cached, `"id":"u1"`)
}

// TestProfileCreatePostValidation 测试空内容在任何远程调用之前被拦截
func TestProfileCreatePostValidation(t *testing.T) {
	mockPosts := new(MockPostsAPI)
	svc, _, _ := newProfileFixture(new(MockUsersAPI), mockPosts)

	assert.NoError(t, svc.RefreshProfile(context.Background(), &model.User{ID: "u1"}))

	err := svc.CreatePost(context.Background(), "   ")
	assert.True(t, errors.IsCode(err, errors.ErrValidation))

	err = svc.CreatePost(context.Background(), strings.Repeat("a", model.MaxPostLength+1))
	assert.True(t, errors.IsCode(err, errors.ErrValidation))

	mockPosts.AssertNotCalled(t, "CreateAsUser", mock.Anything, mock.Anything)
}

// TestProfileCreatePostWithoutUser 测试用户未加载时发帖失败
func TestProfileCreatePostWithoutUser(t *testing.T) {
	mockPosts := new(MockPostsAPI)
	svc, _, _ := newProfileFixture(new(MockUsersAPI), mockPosts)

	err := svc.CreatePost(context.Background(), "hola")
	assert.True(t, errors.IsCode(err, errors.ErrBootstrap))
	mockPosts.AssertNotCalled(t, "CreateAsUser", mock.Anything, mock.Anything)
}

// TestProfileCreatePost 测试发帖成功后用最新用户数据刷新资料页
func TestProfileCreatePost(t *testing.T) {
	mockUsers := new(MockUsersAPI)
	mockPosts := new(MockPostsAPI)
	svc, _, _ := newProfileFixture(mockUsers, mockPosts)

	assert.NoError(t, svc.RefreshProfile(context.Background(), &model.User{ID: "u1"}))

	mockPosts.On("CreateAsUser", mock.Anything, model.NewPostInput{UserID: "u1", Content: "nuevo post"}).
		Return(&model.Post{ID: "p2", Content: "nuevo post"}, nil)
	mockUsers.On("Me", mock.Anything).Return(&model.User{
		ID:    "u1",
		Posts: []model.Post{{ID: "p2", Content: "nuevo post"}},
	}, nil)

	assert.NoError(t, svc.CreatePost(context.Background(), "nuevo post"))

	_, postList := svc.Snapshots()
	assert.Contains(t, string(postList), "nuevo post")
	mockPosts.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

// TestProfileCreatePostTrimsContent 测试提交前去除首尾空白
func TestProfileCreatePostTrimsContent(t *testing.T) {
	mockUsers := new(MockUsersAPI)
	mockPosts := new(MockPostsAPI)
	svc, _, _ := newProfileFixture(mockUsers, mockPosts)

	assert.NoError(t, svc.RefreshProfile(context.Background(), &model.User{ID: "u1"}))

	mockPosts.On("CreateAsUser", mock.Anything, model.NewPostInput{UserID: "u1", Content: "hola"}).
		Return(&model.Post{ID: "p2", Content: "hola"}, nil)
	mockUsers.On("Me", mock.Anything).Return(&model.User{ID: "u1"}, nil)

	assert.NoError(t, svc.CreatePost(context.Background(), "  hola  "))
	mockPosts.AssertExpectations(t)
}

// TestProfileDeletePostFailure 测试远程删除失败时资料页保持不变
func TestProfileDeletePostFailure(t *testing.T) {
	mockUsers := new(MockUsersAPI)
	mockPosts := new(MockPostsAPI)
	svc, queue, _ := newProfileFixture(mockUsers, mockPosts)

	assert.NoError(t, svc.RefreshProfile(context.Background(), &model.User{
		ID:    "u1",
		Posts: []model.Post{{ID: "p1", Content: "sigo aquí"}},
	}))
	_, before := svc.Snapshots()

	mockPosts.On("DeleteAsUser", mock.Anything, "p1").
		Return(errors.New(errors.ErrRemote, "fallo remoto"))

	err := svc.DeletePost(context.Background(), "p1")
	assert.Error(t, err)

	_, after := svc.Snapshots()
	assert.Equal(t, before, after)

	notices := queue.Drain()
	assert.Len(t, notices, 1)
	assert.Equal(t, notify.KindError, notices[0].Kind)
	mockUsers.AssertNotCalled(t, "Me", mock.Anything)
}

// TestCreateProfileValidation 测试不完整的表单被拦截
func TestCreateProfileValidation(t *testing.T) {
	mockUsers := new(MockUsersAPI)
	svc, _, _ := newProfileFixture(mockUsers, new(MockPostsAPI))

	err := svc.CreateProfile(context.Background(), model.ProfileInput{DisplayName: "Ana"})
	assert.True(t, errors.IsCode(err, errors.ErrValidation))
	mockUsers.AssertNotCalled(t, "CreateProfile", mock.Anything, mock.Anything)
}

// TestPrefillFallsBackToCache 测试拉取失败时回退到缓存的用户副本
func TestPrefillFallsBackToCache(t *testing.T) {
	mockUsers := new(MockUsersAPI)
	svc, _, _ := newProfileFixture(mockUsers, new(MockPostsAPI))

	cached := &model.User{ID: "u1", Username: "ana", Email: "ana@example.com"}
	assert.NoError(t, svc.SaveCachedUser(cached))

	mockUsers.On("Me", mock.Anything).Return(nil, errors.New(errors.ErrTransport, "sin conexión"))

	user, err := svc.Prefill(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
}

// TestPrefillWithoutCache 测试拉取失败且无缓存时预填失败
func TestPrefillWithoutCache(t *testing.T) {
	mockUsers := new(MockUsersAPI)
	svc, _, _ := newProfileFixture(mockUsers, new(MockPostsAPI))

	mockUsers.On("Me", mock.Anything).Return(nil, errors.New(errors.ErrTransport, "sin conexión"))

	_, err := svc.Prefill(context.Background())
	assert.True(t, errors.IsCode(err, errors.ErrTransport))
}
