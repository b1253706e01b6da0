package command

import (
	"fmt"
	"strings"

	"signalrelay/internal/model"
	"signalrelay/internal/preset"
	"signalrelay/internal/secret"
	"signalrelay/internal/session"
	"signalrelay/pkg/logger"
)

const (
	HelpText      = "/set TICKER SIZE PROFIT\n/set → interactive\n/show\n/setsecret SECRET\n/getsecret"
	UsageSet      = "Usage: /set TICKER SIZE PROFIT"
	NoPresets     = "No presets."
	SecretUpdated = "✅ Webhook secret updated."
)

// Router 处理操作员的Telegram消息，每条消息恰好产生一条回复
type Router struct {
	vault    *secret.Vault
	registry *preset.Registry
	sessions *session.Manager
}

func NewRouter(vault *secret.Vault, registry *preset.Registry, sessions *session.Manager) *Router {
	return &Router{vault: vault, registry: registry, sessions: sessions}
}

// Route 输入错误只体现在回复里，从不返回错误
func (r *Router) Route(operatorID int64, text string) string {
	cmd := Parse(text)

	if cmd.Direct() {
		return r.direct(operatorID, cmd)
	}

	// 会话进行中时，其余任何文本都属于会话
	if reply, ok := r.sessions.Advance(operatorID, cmd.Text); ok {
		return reply
	}

	switch cmd.Kind {
	case KindSetInteractive:
		return r.sessions.Open(operatorID)
	case KindShow:
		return r.show()
	case KindText:
		return HelpText
	case KindSetSecret, KindGetSecret, KindSetPreset, KindSetBadUsage:
		return r.direct(operatorID, cmd)
	}
	return HelpText
}

func (r *Router) direct(operatorID int64, cmd Command) string {
	switch cmd.Kind {
	case KindSetSecret:
		r.vault.Rotate(cmd.Secret)
		logger.Info("webhook secret rotated", logger.Pair("operator", operatorID))
		return SecretUpdated
	case KindGetSecret:
		return "Current webhook secret: " + r.vault.Read()
	case KindSetPreset:
		saved, err := r.registry.Upsert(cmd.Ticker, model.TradePreset{
			OrderSizeCash: cmd.Size,
			MinProfitPct:  cmd.Profit.Shift(-2),
		})
		if err != nil {
			logger.Warn("preset rejected", logger.Pair("ticker", cmd.Ticker), logger.Err(err))
			return UsageSet
		}
		return fmt.Sprintf("✅ Preset saved: %s @ %s$ @%s%%", saved.Ticker, saved.OrderSizeCash, cmd.Profit)
	case KindSetBadUsage:
		return UsageSet
	default:
		return HelpText
	}
}

func (r *Router) show() string {
	items := r.registry.List()
	if len(items) == 0 {
		return NoPresets
	}
	lines := make([]string, 0, len(items))
	for _, p := range items {
		lines = append(lines, p.String())
	}
	return strings.Join(lines, "\n")
}
