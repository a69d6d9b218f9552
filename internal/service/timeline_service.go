package service

import (
	"context"
	"strings"
	"sync"

	"timeline-frontend/internal/errors"
	"timeline-frontend/internal/model"
	"timeline-frontend/internal/notify"
	"timeline-frontend/internal/remote/interfaces"
	"timeline-frontend/internal/render"
	"timeline-frontend/internal/util"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// TimelineService 负责本地视图状态与远程状态的同步：
// 拉取远程集合 → 渲染 → 接受用户操作 → 悲观更新 → 重新同步。
//
// 所有写操作遵循统一模式：先完成远程调用，成功后才触发一次完整的
// RefreshTimeline（整体替换，不做增量比对）。失败时视图保持不变，
// 只发出一条失败通知，无需回滚。
//
// 同一个操作内，写调用与随后的刷新严格串行；不同操作之间不做互斥，
// 两次刷新可以交错，最终视图以最后完成的刷新为准（接受的竞态）
type TimelineService struct {
	posts    interfaces.PostsAPI
	renderer *render.Renderer
	notifier notify.Notifier
	validate *validator.Validate

	// 显式应用状态，取代原实现的模块级可变全局变量
	mu       sync.RWMutex
	userID   string
	streamID string
	snapshot []byte // 最近一次渲染的时间线片段
}

func NewTimelineService(posts interfaces.PostsAPI, renderer *render.Renderer, notifier notify.Notifier) *TimelineService {
	return &TimelineService{
		posts:    posts,
		renderer: renderer,
		notifier: notifier,
		validate: util.NewValidator(),
	}
}

// SetIdentity 设置当前用户与 Stream 标识（由引导流程解析）
func (s *TimelineService) SetIdentity(userID, streamID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	s.streamID = streamID
}

// Identity 返回当前用户与 Stream 标识
func (s *TimelineService) Identity() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID, s.streamID
}

// Snapshot 返回最近一次渲染的时间线片段
func (s *TimelineService) Snapshot() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// RefreshTimeline 拉取当前 Stream 的全部帖子并整体替换渲染结果。
// 幂等：远程状态不变时两次调用产出字节一致的片段
func (s *TimelineService) RefreshTimeline(ctx context.Context) error {
	_, streamID := s.Identity()
	if streamID == "" {
		return errors.New(errors.ErrBootstrap, "Stream 未初始化")
	}

	posts, err := s.posts.ListByStream(ctx, streamID)
	if err != nil {
		util.Logger.Error("加载时间线失败", zap.Error(err))
		s.notifier.Error("Error al cargar los tweets")
		return err
	}

	fragment, err := s.renderer.Timeline(posts)
	if err != nil {
		util.Logger.Error("渲染时间线失败", zap.Error(err))
		return errors.Wrap(errors.ErrInternal, "渲染时间线失败", err)
	}

	s.mu.Lock()
	s.snapshot = fragment
	s.mu.Unlock()
	return nil
}

// CreatePost 发布一条帖子。长度越界或空白内容在任何网络调用之前被拦截
func (s *TimelineService) CreatePost(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)

	userID, streamID := s.Identity()
	if userID == "" || streamID == "" {
		return errors.New(errors.ErrBootstrap, "Usuario o Stream no inicializados")
	}

	input := model.NewPostInput{
		UserID:   userID,
		StreamID: streamID,
		Content:  content,
	}
	if err := s.validate.Struct(input); err != nil {
		return errors.Wrap(errors.ErrValidation, "El tweet debe tener entre 1 y 140 caracteres", err)
	}

	if _, err := s.posts.Create(ctx, input); err != nil {
		util.Logger.Error("创建帖子失败", zap.Error(err))
		s.notifier.Error("Error al publicar el tweet")
		return err
	}

	if err := s.RefreshTimeline(ctx); err != nil {
		return err
	}

	s.notifier.Success("Tweet publicado exitosamente")
	return nil
}

// DeletePost 删除一条帖子。远程删除失败时视图保持不变
func (s *TimelineService) DeletePost(ctx context.Context, postID string) error {
	if err := s.posts.Delete(ctx, postID); err != nil {
		util.Logger.Error("删除帖子失败", zap.Error(err), zap.String("post_id", postID))
		s.notifier.Error("Error al eliminar el tweet")
		return err
	}

	if err := s.RefreshTimeline(ctx); err != nil {
		return err
	}

	s.notifier.Success("Tweet eliminado")
	return nil
}

// LikePost 点赞计数加一后刷新
func (s *TimelineService) LikePost(ctx context.Context, postID string) error {
	if err := s.posts.IncrementLikes(ctx, postID); err != nil {
		util.Logger.Error("点赞失败", zap.Error(err), zap.String("post_id", postID))
		s.notifier.Error("Error al dar like")
		return err
	}

	if err := s.RefreshTimeline(ctx); err != nil {
		return err
	}

	s.notifier.Success("Like registrado")
	return nil
}

// RetweetPost 转发计数加一后刷新
func (s *TimelineService) RetweetPost(ctx context.Context, postID string) error {
	if err := s.posts.IncrementRetweets(ctx, postID); err != nil {
		util.Logger.Error("转发失败", zap.Error(err), zap.String("post_id", postID))
		s.notifier.Error("Error al hacer retweet")
		return err
	}

	if err := s.RefreshTimeline(ctx); err != nil {
		return err
	}

	s.notifier.Success("Retweet registrado")
	return nil
}

// EditPost 更新帖子内容后刷新
func (s *TimelineService) EditPost(ctx context.Context, postID, content string) error {
	input := model.UpdatePostInput{Content: strings.TrimSpace(content)}
	if err := s.validate.Struct(input); err != nil {
		return errors.Wrap(errors.ErrValidation, "El tweet debe tener entre 1 y 140 caracteres", err)
	}

	if _, err := s.posts.Update(ctx, postID, input); err != nil {
		util.Logger.Error("更新帖子失败", zap.Error(err), zap.String("post_id", postID))
		s.notifier.Error("Error al actualizar el tweet")
		return err
	}

	if err := s.RefreshTimeline(ctx); err != nil {
		return err
	}

	s.notifier.Success("Tweet actualizado")
	return nil
}
