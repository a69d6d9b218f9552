package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"timeline-frontend/internal/errors"
	"timeline-frontend/internal/model"
	"timeline-frontend/internal/notify"
	"timeline-frontend/internal/remote/interfaces"
	"timeline-frontend/internal/render"
	"timeline-frontend/internal/token"
	"timeline-frontend/internal/util"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ProfileService 负责认证用户的个人资料页：
// 加载当前用户、渲染资料头部与帖子列表、以认证身份发帖/删帖、
// 以及 OAuth 完成后的资料创建与表单预填
type ProfileService struct {
	users    interfaces.UsersAPI
	posts    interfaces.PostsAPI
	tokens   token.Store
	renderer *render.Renderer
	notifier notify.Notifier
	validate *validator.Validate

	mu           sync.RWMutex
	user         *model.User
	headerSnap   []byte
	postListSnap []byte
}

func NewProfileService(
	users interfaces.UsersAPI,
	posts interfaces.PostsAPI,
	tokens token.Store,
	renderer *render.Renderer,
	notifier notify.Notifier,
) *ProfileService {
	return &ProfileService{
		users:    users,
		posts:    posts,
		tokens:   tokens,
		renderer: renderer,
		notifier: notifier,
		validate: util.NewValidator(),
	}
}

// CurrentUser 返回最近一次加载的用户
func (s *ProfileService) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Snapshots 返回最近一次渲染的资料头部与帖子列表片段
func (s *ProfileService) Snapshots() ([]byte, []byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.headerSnap, s.postListSnap
}

// RefreshProfile 以给定用户为准重新渲染资料页（整体替换），
// 并把用户写入缓存供表单预填回读
func (s *ProfileService) RefreshProfile(ctx context.Context, user *model.User) error {
	header, err := s.renderer.ProfileHeader(user)
	if err != nil {
		return errors.Wrap(errors.ErrInternal, "渲染资料头部失败", err)
	}
	postList, err := s.renderer.ProfilePosts(user, user.Posts)
	if err != nil {
		return errors.Wrap(errors.ErrInternal, "渲染帖子列表失败", err)
	}

	if err := s.SaveCachedUser(user); err != nil {
		util.Logger.Warn("缓存用户失败", zap.Error(err))
	}

	s.mu.Lock()
	s.user = user
	s.headerSnap = header
	s.postListSnap = postList
	s.mu.Unlock()
	return nil
}

// CreatePost 以认证身份发帖，成功后用最新的用户数据刷新资料页
func (s *ProfileService) CreatePost(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)

	user := s.CurrentUser()
	if user == nil {
		return errors.New(errors.ErrBootstrap, "No se pudo identificar el usuario")
	}

	input := model.NewPostInput{
		UserID:  user.ID,
		Content: content,
	}
	if err := s.validate.Struct(input); err != nil {
		return errors.Wrap(errors.ErrValidation, "El post está vacío o es demasiado largo", err)
	}

	if _, err := s.posts.CreateAsUser(ctx, input); err != nil {
		util.Logger.Error("创建帖子失败", zap.Error(err))
		s.notifier.Error("No se pudo crear el post. Intenta de nuevo.")
		return err
	}

	refreshed, err := s.users.Me(ctx)
	if err != nil {
		return err
	}
	return s.RefreshProfile(ctx, refreshed)
}

// DeletePost 以认证身份删帖，失败时资料页保持不变
func (s *ProfileService) DeletePost(ctx context.Context, postID string) error {
	if err := s.posts.DeleteAsUser(ctx, postID); err != nil {
		util.Logger.Error("删除帖子失败", zap.Error(err), zap.String("post_id", postID))
		s.notifier.Error("No se pudo eliminar el post. Intenta de nuevo.")
		return err
	}

	refreshed, err := s.users.Me(ctx)
	if err != nil {
		return err
	}
	return s.RefreshProfile(ctx, refreshed)
}

// CreateProfile 创建个人资料（OAuth 完成流程的表单提交）
func (s *ProfileService) CreateProfile(ctx context.Context, input model.ProfileInput) error {
	if err := s.validate.Struct(input); err != nil {
		return errors.Wrap(errors.ErrValidation, "El formulario está incompleto", err)
	}

	if _, err := s.users.CreateProfile(ctx, input); err != nil {
		util.Logger.Error("创建个人资料失败", zap.Error(err))
		s.notifier.Error("No se pudo crear el perfil. Intenta de nuevo.")
		return err
	}
	return nil
}

// Prefill 为资料创建表单预填数据：优先拉取当前用户，
// 拉取失败时回退到缓存的用户副本
func (s *ProfileService) Prefill(ctx context.Context) (*model.User, error) {
	user, err := s.users.Me(ctx)
	if err == nil {
		if cacheErr := s.SaveCachedUser(user); cacheErr != nil {
			util.Logger.Warn("缓存用户失败", zap.Error(cacheErr))
		}
		return user, nil
	}

	cached, cacheErr := s.LoadCachedUser()
	if cacheErr != nil {
		return nil, err
	}
	util.Logger.Warn("拉取当前用户失败，使用缓存副本", zap.Error(err))
	return cached, nil
}

// SaveCachedUser 把用户副本写入令牌存储的 user 键
func (s *ProfileService) SaveCachedUser(user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.tokens.Set(token.KeyUser, string(data))
}

// LoadCachedUser 从令牌存储回读缓存的用户副本
func (s *ProfileService) LoadCachedUser() (*model.User, error) {
	data, err := s.tokens.Get(token.KeyUser)
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, err
	}
	return &user, nil
}
