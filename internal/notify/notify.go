package notify

import "sync"

// Kind 通知类型
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification 一条瞬态通知
type Notification struct {
	Kind    Kind
	Message string
}

// Notifier 定义瞬态通知的契约，操作结果通过它反馈给用户
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Queue 是 Notifier 的队列实现：操作入队，页面渲染时取走。
// 同时用作测试中的通知记录器
type Queue struct {
	mu      sync.Mutex
	pending []Notification
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Success(message string) {
	q.push(Notification{Kind: KindSuccess, Message: message})
}

func (q *Queue) Error(message string) {
	q.push(Notification{Kind: KindError, Message: message})
}

func (q *Queue) push(n Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, n)
}

// Drain 取走并清空全部待展示的通知
func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	drained := q.pending
	q.pending = nil
	return drained
}
