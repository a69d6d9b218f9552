package profile

import (
	"html/template"
	"net/http"

	"timeline-frontend/internal/errors"
	"timeline-frontend/internal/notify"
	"timeline-frontend/internal/service"
	"timeline-frontend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler 渲染认证用户的个人资料页并处理资料页的帖子操作。
// 加载状态机：令牌解析 → 拉取当前用户 → 渲染；
// 拉取失败对本次加载是终止性的（错误横幅，不自动重试）
type ProfileHandler struct {
	profile   *service.ProfileService
	bootstrap *service.BootstrapService
	notices   *notify.Queue
}

func NewProfileHandler(profile *service.ProfileService, bootstrap *service.BootstrapService, notices *notify.Queue) *ProfileHandler {
	return &ProfileHandler{
		profile:   profile,
		bootstrap: bootstrap,
		notices:   notices,
	}
}

var profilePage = template.Must(template.New("profile-page").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="utf-8">
    <title>Perfil</title>
    <link rel="stylesheet" href="/static/styles.css">
</head>
<body>
<main class="profile">
{{.Header}}    <div class="compose-post">
        <form method="post" action="/profile/posts">
            <textarea id="post-content" name="content" placeholder="&iquest;Qu&eacute; est&aacute; pasando?"></textarea>
            <button id="post-btn" type="submit">Publicar</button>
        </form>
    </div>
    <div id="posts-container">
{{.Posts}}    </div>
</main>
{{range .Notices}}<div class="notification notification-{{.Kind}} show">{{.Message}}</div>
{{end}}</body>
</html>
`))

// ShowProfile 处理个人资料页加载
func (h *ProfileHandler) ShowProfile(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.bootstrap.ResolveAuthenticated(ctx)
	if err != nil {
		// 本次加载终止：显示错误横幅，不自动重试
		errors.HandleError(c, errors.Wrap(errors.CodeOf(err), "No se pudieron cargar tus datos.", err))
		return
	}

	if err := h.profile.RefreshProfile(ctx, user); err != nil {
		errors.HandleError(c, err)
		return
	}

	header, posts := h.profile.Snapshots()
	data := struct {
		Header  template.HTML
		Posts   template.HTML
		Notices []notify.Notification
	}{
		Header:  template.HTML(header),
		Posts:   template.HTML(posts),
		Notices: h.notices.Drain(),
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := profilePage.Execute(c.Writer, data); err != nil {
		util.Logger.Error("渲染个人资料页失败", zap.Error(err))
	}
}

// CreatePost 处理资料页发帖
func (h *ProfileHandler) CreatePost(c *gin.Context) {
	if err := h.profile.CreatePost(c.Request.Context(), c.PostForm("content")); err != nil {
		c.Error(err)
		if errors.IsCode(err, errors.ErrValidation) || errors.IsCode(err, errors.ErrBootstrap) {
			h.notices.Error("El post está vacío.")
		}
	}
	c.Redirect(http.StatusFound, "/profile")
}

// DeletePost 处理资料页删帖
func (h *ProfileHandler) DeletePost(c *gin.Context) {
	if err := h.profile.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
	}
	c.Redirect(http.StatusFound, "/profile")
}
