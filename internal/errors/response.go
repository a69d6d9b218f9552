package errors

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

// 错误码与HTTP状态码映射
var errorStatusMap = map[ErrorCode]int{
	// 系统错误 (1000-1999)
	ErrInternal:  http.StatusInternalServerError,
	ErrTransport: http.StatusBadGateway,

	// 认证错误 (2000-2999)
	ErrUnauthorized: http.StatusUnauthorized,
	ErrInvalidToken: http.StatusUnauthorized,
	ErrTokenExpired: http.StatusUnauthorized,

	// 请求错误 (3000-3999)
	ErrValidation:       http.StatusBadRequest,
	ErrResourceNotFound: http.StatusNotFound,
	ErrRemote:           http.StatusBadGateway,

	// 引导错误 (4000-4999)
	ErrBootstrap:     http.StatusServiceUnavailable,
	ErrTokenExchange: http.StatusBadGateway,
}

// StatusFor 返回错误码对应的HTTP状态码
func StatusFor(code ErrorCode) int {
	if status, ok := errorStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// HandleError 统一处理页面加载的终止性错误，渲染错误横幅页面
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if ae, ok := err.(*AppError); ok {
		appErr = ae
	} else {
		appErr = Wrap(ErrInternal, "系统内部错误", err)
	}

	c.Error(appErr)

	status := StatusFor(appErr.Code)
	banner := `<!DOCTYPE html><html><body><div class="error-banner"><span>` +
		template.HTMLEscapeString(appErr.Message) +
		`</span></div></body></html>`
	c.Data(status, "text/html; charset=utf-8", []byte(banner))
}
