package ping

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// Ping 健康检查，启动时也用它确认服务已在线
func Ping() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"uptime": time.Since(startedAt).Truncate(time.Second).String(),
		})
	}
}
