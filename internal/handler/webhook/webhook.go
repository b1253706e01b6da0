package webhook

import (
	"net/http"

	"signalrelay/internal/webhook"
	"signalrelay/pkg/errors"
	"signalrelay/pkg/errors/ecode"
	"signalrelay/pkg/logger"
	"signalrelay/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	whHandler *webhook.WebhookHandler
}

func NewHandler(wh *webhook.WebhookHandler) *Handler {
	return &Handler{whHandler: wh}
}

func (h *Handler) HandlerWebhook() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		h.whHandler.Handle(ctx.Request, func(err error, statusCode int) {
			switch {
			case statusCode == http.StatusForbidden:
				response.Forbidden(ctx)
			case err != nil:
				response.JSON(ctx, errors.Wrap(err, ecode.ValidateErr, err.Error()), nil)
			default:
				response.JSON(ctx, nil, nil)
				logger.Debug("Signal received")
			}
		})
	}
}
