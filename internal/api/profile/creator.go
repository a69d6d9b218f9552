package profile

import (
	"html/template"
	"net/http"

	"timeline-frontend/internal/model"
	"timeline-frontend/internal/notify"
	"timeline-frontend/internal/service"
	"timeline-frontend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreatorHandler 处理资料创建页：页面加载时如带有 code 查询参数，
// 先完成 OAuth 令牌交换并持久化令牌，再走表单预填逻辑
type CreatorHandler struct {
	profile   *service.ProfileService
	bootstrap *service.BootstrapService
	notices   *notify.Queue
}

func NewCreatorHandler(profile *service.ProfileService, bootstrap *service.BootstrapService, notices *notify.Queue) *CreatorHandler {
	return &CreatorHandler{
		profile:   profile,
		bootstrap: bootstrap,
		notices:   notices,
	}
}

var creatorPage = template.Must(template.New("creator-page").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="utf-8">
    <title>Crear perfil</title>
    <link rel="stylesheet" href="/static/styles.css">
</head>
<body>
<main class="profile-creator">
    {{if .ErrorMessage}}<div id="errorMessage" class="error-banner"><span>{{.ErrorMessage}}</span></div>
    {{end}}<form id="profileCreatorForm" method="post" action="/profile/new">
        <input id="displayName" name="displayName" value="{{.DisplayName}}" placeholder="Nombre" required>
        <input id="email" name="email" type="email" value="{{.Email}}" placeholder="Correo" required>
        <input id="username" name="username" value="{{.Username}}" placeholder="Usuario" required>
        <textarea id="bio" name="bio" placeholder="Biograf&iacute;a"></textarea>
        <input id="location" name="location" placeholder="Ubicaci&oacute;n">
        <input id="website" name="website" placeholder="Sitio web">
        <button id="submitButton" type="submit">Crear perfil</button>
    </form>
</main>
{{range .Notices}}<div class="notification notification-{{.Kind}} show">{{.Message}}</div>
{{end}}</body>
</html>
`))

// ShowCreator 处理资料创建页加载
func (h *CreatorHandler) ShowCreator(c *gin.Context) {
	ctx := c.Request.Context()

	// OAuth 回调：先用授权码换取令牌对并持久化，再继续预填
	if code := c.Query("code"); code != "" {
		util.Logger.Info("收到 OAuth 授权码")
		if err := h.bootstrap.CompleteOAuth(ctx, code, c.Query("state")); err != nil {
			c.Error(err)
		}
	}

	data := struct {
		DisplayName  string
		Email        string
		Username     string
		ErrorMessage string
		Notices      []notify.Notification
	}{}

	user, err := h.profile.Prefill(ctx)
	if err != nil {
		c.Error(err)
		data.ErrorMessage = "No se pudieron cargar tus datos."
	} else {
		data.DisplayName = user.DisplayName
		data.Email = user.Email
		data.Username = user.Username
	}
	data.Notices = h.notices.Drain()

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := creatorPage.Execute(c.Writer, data); err != nil {
		util.Logger.Error("渲染资料创建页失败", zap.Error(err))
	}
}

// CreateProfile 处理资料创建表单提交，成功后跳转到个人资料页
func (h *CreatorHandler) CreateProfile(c *gin.Context) {
	input := model.ProfileInput{
		DisplayName: c.PostForm("displayName"),
		Email:       c.PostForm("email"),
		Username:    c.PostForm("username"),
		Bio:         c.PostForm("bio"),
		Location:    c.PostForm("location"),
		WebSite:     c.PostForm("website"),
	}

	if err := h.profile.CreateProfile(c.Request.Context(), input); err != nil {
		c.Error(err)
		c.Redirect(http.StatusFound, "/profile/new")
		return
	}

	c.Redirect(http.StatusFound, "/profile")
}
