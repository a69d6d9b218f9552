package model

import "time"

// MaxPostLength 时间线帖子的最大长度，提交前在客户端校验；服务端才是权威来源
const MaxPostLength = 140

// Post 结构体表示时间线中的一条帖子
type Post struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	StreamID      string    `json:"streamId"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
	IsEdited      bool      `json:"isEdited"`
	LikesCount    int       `json:"likesCount"`
	RetweetsCount int       `json:"retweetsCount"`
	RepliesCount  int       `json:"repliesCount"`
	User          User      `json:"user"` // 作者信息由服务端反规范化内嵌
}

// NewPostInput 创建帖子的请求载荷
type NewPostInput struct {
	UserID   string `json:"userId" validate:"required"`
	StreamID string `json:"streamId,omitempty"`
	Content  string `json:"content" validate:"required,notblank,max=140"`
}

// UpdatePostInput 更新帖子的请求载荷
type UpdatePostInput struct {
	Content string `json:"content" validate:"required,notblank,max=140"`
}
