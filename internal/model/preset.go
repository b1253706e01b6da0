package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TradePreset 操作员为单个ticker配置的下单参数
type TradePreset struct {
	Ticker        string
	OrderSizeCash decimal.Decimal // 每次买入花费的现金
	MinProfitPct  decimal.Decimal // 卖出要求的最低收益率，0.05 表示 5%
}

func (p TradePreset) Validate() error {
	if !p.OrderSizeCash.IsPositive() {
		return fmt.Errorf("%w: order size must be positive, got %s", ErrValidation, p.OrderSizeCash)
	}
	if p.MinProfitPct.IsNegative() {
		return fmt.Errorf("%w: min profit must not be negative, got %s", ErrValidation, p.MinProfitPct)
	}
	return nil
}

// String 与 /show 的展示一致：AAPL: $100 @5%
func (p TradePreset) String() string {
	return fmt.Sprintf("%s: $%s @%s%%", p.Ticker, p.OrderSizeCash.String(), p.MinProfitPct.Shift(2).String())
}
