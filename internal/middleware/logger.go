package middleware

import (
	"time"

	"signalrelay/internal/consts"
	"signalrelay/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Logger 记录请求开始与结束。请求体可能包含密钥（/setsecret），只记录长度
func Logger(c *gin.Context) {
	// 请求前
	t := time.Now()
	reqPath := c.Request.URL.Path
	reqId := c.GetString(consts.RequestId)
	ip := c.ClientIP()

	logger.Info("[Request Start]",
		logger.Pair(consts.RequestId, reqId),
		logger.Pair("host", ip),
		logger.Pair("path", reqPath),
		logger.Pair("method", c.Request.Method),
		logger.Pair("length", c.Request.ContentLength))

	c.Next()
	// 请求后
	logger.Info("[Request End]",
		logger.Pair(consts.RequestId, reqId),
		logger.Pair("path", reqPath),
		logger.Pair("status", c.Writer.Status()),
		logger.Pair("cost", time.Since(t)))
}
