package telegram

import (
	"context"
	"io"
	"time"

	"signalrelay/internal/command"
	"signalrelay/internal/model"
	"signalrelay/internal/notify"
	"signalrelay/pkg/errors"
	"signalrelay/pkg/errors/ecode"
	"signalrelay/pkg/logger"
	"signalrelay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const (
	maxBodyBytes  = 64 << 10
	notifyTimeout = 10 * time.Second
)

// Handler 接收Telegram Bot的webhook更新，只响应操作员
type Handler struct {
	operatorID int64
	router     *command.Router
	notifier   notify.Channel
}

func NewHandler(operatorID int64, router *command.Router, notifier notify.Channel) *Handler {
	return &Handler{operatorID: operatorID, router: router, notifier: notifier}
}

func (h *Handler) HandlerUpdate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		body, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxBodyBytes))
		if err != nil {
			response.JSON(ctx, errors.Wrap(err, ecode.ValidateErr, "read body failed"), nil)
			return
		}
		var update model.TelegramUpdate
		if err := json.Unmarshal(body, &update); err != nil {
			response.JSON(ctx, errors.Wrap(err, ecode.ValidateErr, "invalid JSON"), nil)
			return
		}
		// 编辑消息、回调等没有message的更新直接忽略
		if update.Message == nil {
			response.JSON(ctx, nil, nil)
			return
		}
		chatID := update.Message.Chat.ID
		if chatID != h.operatorID {
			logger.Warn("[Telegram] message from unknown chat", logger.Pair("chat_id", chatID))
			response.Forbidden(ctx)
			return
		}

		reply := h.router.Route(chatID, update.Message.Text)

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx.Request.Context()), notifyTimeout)
		defer cancel()
		if err := h.notifier.Send(sendCtx, chatID, reply); err != nil {
			logger.Warn("[Telegram] reply failed", logger.Err(err))
		}
		response.JSON(ctx, nil, nil)
	}
}
