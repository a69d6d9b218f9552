package model

import "time"

// User 结构体表示远程 API 中的用户资源，客户端只持有非权威的临时副本
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"displayName"`
	Bio            string    `json:"bio"`
	Location       string    `json:"location,omitempty"`
	WebSite        string    `json:"webSite,omitempty"`
	PostsCount     int       `json:"postsCount"`
	FollowingCount int       `json:"followingCount"`
	FollowersCount int       `json:"followersCount"`
	CreatedAt      time.Time `json:"createdAt"`
	Posts          []Post    `json:"posts,omitempty"`
}

// NewUserInput 创建用户的请求载荷（匿名演示流程）
type NewUserInput struct {
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password,omitempty"`
	DisplayName string `json:"displayName" validate:"required"`
	Bio         string `json:"bio,omitempty"`
}

// ProfileInput 个人资料创建表单的载荷（OAuth 完成流程）
type ProfileInput struct {
	DisplayName string `json:"displayName" form:"displayName" validate:"required"`
	Email       string `json:"email" form:"email" validate:"required,email"`
	Username    string `json:"username" form:"username" validate:"required"`
	Bio         string `json:"bio" form:"bio"`
	Location    string `json:"location" form:"location"`
	WebSite     string `json:"webSite" form:"website"`
}
