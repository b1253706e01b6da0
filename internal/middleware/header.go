package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"signalrelay/internal/consts"
	"signalrelay/utils/uuid"

	"github.com/gin-gonic/gin"
)

// NoCache 控制客户端不要使用缓存
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, max-age=0, must-revalidate")
		c.Header("Expires", "Thu, 01 Jan 1970 00:00:00 GMT")
		c.Header("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
		c.Next()
	}
}

// Options 预检请求直接返回
func Options() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.ToUpper(c.Request.Method) != http.MethodOptions {
			c.Next()
			return
		}
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "origin, content-type, accept, "+consts.DefaultSignatureHeader)
		c.Header("Allow", "HEAD,GET,POST,OPTIONS")
		c.AbortWithStatus(http.StatusOK)
	}
}

// Secure 添加安全控制
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-XSS-Protection", "1; mode=block")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000")
		}
		c.Next()
	}
}

type requestIdKey struct{}

// RequestId 用来设置和透传requestId
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader("X-Request-Id")
		if requestId == "" {
			requestId = uuid.GenUUID16()
		}
		c.Header("X-Request-Id", requestId)

		// 设置requestId到context中，便于后面调用链的透传
		c.Set(consts.RequestId, requestId)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIdKey{}, requestId))
		c.Next()
	}
}

// RequestIdFrom 从请求的context中取出requestId
func RequestIdFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey{}).(string)
	return id
}
