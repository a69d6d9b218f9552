package timeline

import (
	stderrors "errors"
	"html/template"
	"net/http"

	"timeline-frontend/internal/errors"
	"timeline-frontend/internal/notify"
	"timeline-frontend/internal/service"
	"timeline-frontend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TimelineHandler 渲染匿名演示时间线页面并处理帖子相关操作。
// 页面加载顺序固定：解析身份 → 拉取集合 → 渲染；
// 每个操作完成远程写入后才触发刷新，最后重定向回时间线
type TimelineHandler struct {
	timeline  *service.TimelineService
	bootstrap *service.BootstrapService
	notices   *notify.Queue
}

func NewTimelineHandler(timeline *service.TimelineService, bootstrap *service.BootstrapService, notices *notify.Queue) *TimelineHandler {
	return &TimelineHandler{
		timeline:  timeline,
		bootstrap: bootstrap,
		notices:   notices,
	}
}

var timelinePage = template.Must(template.New("timeline-page").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="utf-8">
    <title>Timeline</title>
    <link rel="stylesheet" href="/static/styles.css">
</head>
<body>
<main class="timeline">
    <div class="compose-tweet">
        <form method="post" action="/posts">
            <textarea class="tweet-input" name="content" maxlength="140" placeholder="&iquest;Qu&eacute; est&aacute; pasando?"></textarea>
            <span class="char-counter">140</span>
            <button class="tweet-submit-button" type="submit">Twittear</button>
        </form>
    </div>
{{.Timeline}}</main>
{{range .Notices}}<div class="notification notification-{{.Kind}} show">{{.Message}}</div>
{{end}}</body>
</html>
`))

// ShowTimeline 处理时间线页面加载
func (h *TimelineHandler) ShowTimeline(c *gin.Context) {
	ctx := c.Request.Context()

	// 初始化匿名身份（幂等：已解析过则直接复用）
	if userID, streamID := h.timeline.Identity(); userID == "" || streamID == "" {
		userID, streamID, err := h.bootstrap.ResolveAnonymous(ctx)
		if err != nil {
			errors.HandleError(c, err)
			return
		}
		h.timeline.SetIdentity(userID, streamID)
	}

	// 刷新失败时页面仍然渲染，失败通知已入队
	if err := h.timeline.RefreshTimeline(ctx); err != nil {
		c.Error(err)
	}

	h.renderPage(c)
}

// CreatePost 处理发帖表单提交
func (h *TimelineHandler) CreatePost(c *gin.Context) {
	if err := h.timeline.CreatePost(c.Request.Context(), c.PostForm("content")); err != nil {
		h.recordActionError(c, err)
	}
	c.Redirect(http.StatusFound, "/")
}

// DeletePost 处理删帖操作
func (h *TimelineHandler) DeletePost(c *gin.Context) {
	if err := h.timeline.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		h.recordActionError(c, err)
	}
	c.Redirect(http.StatusFound, "/")
}

// LikePost 处理点赞操作
func (h *TimelineHandler) LikePost(c *gin.Context) {
	if err := h.timeline.LikePost(c.Request.Context(), c.Param("id")); err != nil {
		h.recordActionError(c, err)
	}
	c.Redirect(http.StatusFound, "/")
}

// RetweetPost 处理转发操作
func (h *TimelineHandler) RetweetPost(c *gin.Context) {
	if err := h.timeline.RetweetPost(c.Request.Context(), c.Param("id")); err != nil {
		h.recordActionError(c, err)
	}
	c.Redirect(http.StatusFound, "/")
}

// recordActionError 把操作错误计入监控；校验与引导类错误由这里入队通知
// （远程失败的通知已由服务层发出）
func (h *TimelineHandler) recordActionError(c *gin.Context, err error) {
	c.Error(err)

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		switch appErr.Code {
		case errors.ErrValidation, errors.ErrBootstrap:
			h.notices.Error(appErr.Message)
		}
	}
}

func (h *TimelineHandler) renderPage(c *gin.Context) {
	data := struct {
		Timeline template.HTML
		Notices  []notify.Notification
	}{
		Timeline: template.HTML(h.timeline.Snapshot()),
		Notices:  h.notices.Drain(),
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := timelinePage.Execute(c.Writer, data); err != nil {
		util.Logger.Error("渲染时间线页面失败", zap.Error(err))
	}
}
