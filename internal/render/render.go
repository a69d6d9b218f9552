package render

import (
	"bytes"
	"html/template"
	"time"

	"timeline-frontend/internal/model"
)

// Renderer 是实体数据到 HTML 片段的纯映射。
// 所有用户提供的内容都经由 html/template 的上下文转义插入，
// 两条渲染路径（时间线与个人资料页）统一转义
type Renderer struct {
	now      func() time.Time
	timeline *template.Template
	header   *template.Template
	posts    *template.Template
}

func New() *Renderer {
	return NewWithClock(time.Now)
}

// NewWithClock 注入时钟以便确定性渲染
func NewWithClock(now func() time.Time) *Renderer {
	r := &Renderer{now: now}

	funcs := template.FuncMap{
		"timeago": func(ts time.Time) string {
			return TimeAgo(ts, r.now())
		},
		"authorName": func(user model.User) string {
			if user.DisplayName != "" {
				return user.DisplayName
			}
			return user.Username
		},
	}

	r.timeline = template.Must(template.New("timeline").Funcs(funcs).Parse(timelineTemplate))
	r.header = template.Must(template.New("profile-header").Funcs(funcs).Parse(profileHeaderTemplate))
	r.posts = template.Must(template.New("profile-posts").Funcs(funcs).Parse(profilePostsTemplate))
	return r
}

// Timeline 渲染时间线片段；posts 为空时渲染显式的空状态
func (r *Renderer) Timeline(posts []model.Post) ([]byte, error) {
	var buf bytes.Buffer
	err := r.timeline.Execute(&buf, struct{ Posts []model.Post }{posts})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ProfileHeader 渲染个人资料头部片段
func (r *Renderer) ProfileHeader(user *model.User) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.header.Execute(&buf, user); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ProfilePosts 渲染个人资料页的帖子列表片段
func (r *Renderer) ProfilePosts(user *model.User, posts []model.Post) ([]byte, error) {
	var buf bytes.Buffer
	err := r.posts.Execute(&buf, struct {
		User  *model.User
		Posts []model.Post
	}{user, posts})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
