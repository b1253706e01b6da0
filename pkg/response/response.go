package response

import (
	"net/http"

	"signalrelay/internal/consts"
	"signalrelay/pkg/errors"
	"signalrelay/pkg/errors/ecode"

	"github.com/gin-gonic/gin"
)

// 代表响应给客户端的的一个消息结构，包括错误码，错误信息，响应数据
type ApiResponse struct {
	RequestId string      `json:"request_id"` // 请求的唯一ID
	Code      int         `json:"code"`       // 错误码 0表示无错误
	Message   string      `json:"message"`    // 提示信息
	Data      interface{} `json:"data"`       // 响应数据
}

// 发送json格式数据，失败时按错误码选择http状态码
func JSON(c *gin.Context, err error, data interface{}) {
	code, message := errors.DecodeErr(err)
	c.JSON(httpStatus(code), ApiResponse{
		RequestId: c.GetString(consts.RequestId),
		Code:      code,
		Message:   message,
		Data:      data,
	})
}

// 鉴权失败，返回403且不带body，不向调用方透露原因
func Forbidden(c *gin.Context) {
	c.AbortWithStatus(http.StatusForbidden)
}

// 请求频繁，返回429
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ApiResponse{
		RequestId: c.GetString(consts.RequestId),
		Code:      ecode.TooManyReqErr,
		Message:   "The request is too frequent. Please try again later.",
	})
}

func httpStatus(code int) int {
	switch code {
	case ecode.Success:
		return http.StatusOK
	case ecode.RequireAuthErr:
		return http.StatusUnauthorized
	case ecode.ForbiddenErr:
		return http.StatusForbidden
	case ecode.NotFoundErr:
		return http.StatusNotFound
	case ecode.TooManyReqErr:
		return http.StatusTooManyRequests
	default:
		// 其余失败统一400
		return http.StatusBadRequest
	}
}
