package middleware

import (
	"signalrelay/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Middleware 全局中间件，作为第一个Router加载
type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

func (m *Middleware) Load(g *gin.Engine) {
	g.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.Error("[Panic]", logger.Pair("path", c.Request.URL.Path), logger.Pair("err", err))
		c.AbortWithStatus(500)
	}))
	g.Use(RequestId(), Logger, NoCache(), Options(), Secure())
}
