package notify

import (
	"errors"
	"fmt"

	"signalrelay/internal/decision"
	"signalrelay/internal/executor"
	"signalrelay/internal/model"

	"github.com/shopspring/decimal"
)

// FormatOutcome 把一次信号处理结果转为给操作员的消息
func FormatOutcome(out executor.Outcome) string {
	ticker := out.Signal.Ticker
	if out.Err != nil {
		switch {
		case errors.Is(out.Err, model.ErrValidation):
			return fmt.Sprintf("⚠️ %s %s rejected: %v", out.Signal.Action, ticker, out.Err)
		default:
			return fmt.Sprintf("⚠️ %s %s failed: %v", out.Signal.Action, ticker, out.Err)
		}
	}

	d := out.Decision
	pnl := out.Snapshot.UnrealizedPnL.StringFixed(2)
	switch d.Kind {
	case model.DecisionSkipNoPreset:
		return fmt.Sprintf("No preset for %s.", ticker)
	case model.DecisionPlaceBuy:
		return fmt.Sprintf("BUY %s:%s@%s", ticker, d.Quantity, d.Price)
	case model.DecisionSkipInsufficientFunds:
		return "Insufficient funds."
	case model.DecisionPlaceSell:
		return fmt.Sprintf("SELL %s:P/L%s%s", ticker, pnl, ratioSuffix(out.Snapshot.UnrealizedPnL, out.Snapshot.Position))
	case model.DecisionSkipProfitThresholdNotMet:
		return fmt.Sprintf("Skip SELL %s. P/L%s%s", ticker, d.PnL.StringFixed(2), ratioSuffix(d.PnL, out.Snapshot.Position))
	case model.DecisionSkipNoPosition:
		return fmt.Sprintf("Skip SELL %s: no position.", ticker)
	}
	return fmt.Sprintf("%s %s: %s", out.Signal.Action, ticker, d.Kind)
}

// FormatDuplicate 去重窗口内重复投递的信号
func FormatDuplicate(sig model.Signal) string {
	return fmt.Sprintf("Duplicate %s %s ignored.", sig.Action, sig.Ticker)
}

func ratioSuffix(pnl decimal.Decimal, pos *model.Position) string {
	ratio, ok := decision.ProfitRatio(pnl, pos)
	if !ok {
		return ""
	}
	return fmt.Sprintf(" (%s%%)", ratio.Shift(2).StringFixed(2))
}
