package router

import (
	"signalrelay/internal/handler/ping"
	"signalrelay/internal/handler/telegram"
	"signalrelay/internal/handler/webhook"

	"github.com/gin-gonic/gin"
)

type ApiRouter struct {
	wh *webhook.Handler
	tg *telegram.Handler
}

func NewApiRouter(wh *webhook.Handler, tg *telegram.Handler) *ApiRouter {
	return &ApiRouter{wh: wh, tg: tg}
}

func (api *ApiRouter) Load(g *gin.Engine) {
	g.GET("/ping", ping.Ping())

	// 告警服务推送的交易信号，使用HMAC签名鉴权
	g.POST("/webhook", api.wh.HandlerWebhook())

	// Telegram Bot 推送的操作员消息
	g.POST("/telegram", api.tg.HandlerUpdate())
}
