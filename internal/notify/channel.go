package notify

import (
	"context"
	"fmt"

	"signalrelay/internal/model"
	"signalrelay/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// Channel 给操作员发送文本消息
type Channel interface {
	Send(ctx context.Context, operatorID int64, text string) error
}

// TelegramChannel 通过Telegram Bot发送，按配置限速
type TelegramChannel struct {
	bot     *tgbotapi.BotAPI
	limiter *rate.Limiter
}

// NewTelegramChannel 创建时会调用一次 getMe 校验token
func NewTelegramChannel(token string, perSecond float64) (*TelegramChannel, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return newTelegramChannel(bot, perSecond), nil
}

func newTelegramChannel(bot *tgbotapi.BotAPI, perSecond float64) *TelegramChannel {
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return &TelegramChannel{
		bot:     bot,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

func (c *TelegramChannel) Send(ctx context.Context, operatorID int64, text string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: telegram rate limit: %w", model.ErrDownstream, err)
	}
	if _, err := c.bot.Send(tgbotapi.NewMessage(operatorID, text)); err != nil {
		return fmt.Errorf("%w: telegram send: %w", model.ErrDownstream, err)
	}
	return nil
}

// LogChannel 未配置Telegram token时使用，只写日志
type LogChannel struct{}

func (LogChannel) Send(_ context.Context, operatorID int64, text string) error {
	logger.Info("[Notify]", logger.Pair("operator", operatorID), logger.Pair("text", text))
	return nil
}
