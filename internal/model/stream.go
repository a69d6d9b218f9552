package model

// Stream 结构体表示帖子所属的命名集合，名称作为自然键用于查找
type Stream struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}

// NewStreamInput 创建 Stream 的请求载荷
type NewStreamInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	IsPublic    bool   `json:"isPublic"`
}
