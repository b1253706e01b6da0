package decision

import (
	"fmt"

	"signalrelay/internal/model"

	"github.com/shopspring/decimal"
)

// 买入数量保留的小数位，多余部分截断，保证花费不超过预设金额
const quantityPlaces = 8

// 决策的输入
type Context struct {
	Signal   model.Signal
	Preset   *model.TradePreset // 没有预设时为nil
	Snapshot model.AccountSnapshot
}

// 决策，纯函数：不持有状态，不做任何IO
type DecisionEngine struct {
	Ctx Context
}

func NewDecisionEngine(ctx Context) *DecisionEngine {
	return &DecisionEngine{Ctx: ctx}
}

// Decide 便捷入口
func Decide(sig model.Signal, preset *model.TradePreset, snapshot model.AccountSnapshot) (model.DecisionResult, error) {
	return NewDecisionEngine(Context{Signal: sig, Preset: preset, Snapshot: snapshot}).Run()
}

func (de *DecisionEngine) Run() (model.DecisionResult, error) {
	if de.Ctx.Preset == nil {
		return model.Skip(model.DecisionSkipNoPreset), nil
	}

	switch de.Ctx.Signal.Action {
	case model.ActionBuy:
		return de.handleBuy()
	case model.ActionSell:
		return de.handleSell()
	default:
		return model.DecisionResult{}, fmt.Errorf("%w: unknown action %q", model.ErrValidation, de.Ctx.Signal.Action)
	}
}

func (de *DecisionEngine) handleBuy() (model.DecisionResult, error) {
	preset := de.Ctx.Preset
	snap := de.Ctx.Snapshot

	if !snap.LastPrice.IsPositive() {
		return model.DecisionResult{}, fmt.Errorf("%w: last price must be positive, got %s", model.ErrValidation, snap.LastPrice)
	}
	quantity := preset.OrderSizeCash.DivRound(snap.LastPrice, quantityPlaces+2).Truncate(quantityPlaces)
	if !quantity.IsPositive() {
		return model.DecisionResult{}, fmt.Errorf("%w: order size %s too small at price %s", model.ErrValidation, preset.OrderSizeCash, snap.LastPrice)
	}

	if snap.AvailableFundsCash.GreaterThanOrEqual(preset.OrderSizeCash) {
		return model.PlaceBuy(quantity, snap.LastPrice), nil
	}
	return model.Skip(model.DecisionSkipInsufficientFunds), nil
}

func (de *DecisionEngine) handleSell() (model.DecisionResult, error) {
	preset := de.Ctx.Preset
	snap := de.Ctx.Snapshot
	pos := snap.Position

	if pos == nil || !pos.Quantity.IsPositive() {
		return model.Skip(model.DecisionSkipNoPosition), nil
	}

	// 成本为0时收益率无意义，按无持仓处理
	costBasis := pos.AvgCost.Mul(pos.Quantity)
	if !costBasis.IsPositive() {
		return model.Skip(model.DecisionSkipNoPosition), nil
	}

	// pnl / costBasis >= minProfitPct，costBasis>0 时等价于下式，避免除法误差
	threshold := preset.MinProfitPct.Mul(costBasis)
	if snap.UnrealizedPnL.GreaterThanOrEqual(threshold) {
		return model.PlaceSell(pos.Quantity, snap.LastPrice), nil
	}
	return model.SkipProfitThresholdNotMet(snap.UnrealizedPnL), nil
}

// ProfitRatio 浮动盈亏占成本的比例，没有成本时返回false
func ProfitRatio(pnl decimal.Decimal, pos *model.Position) (decimal.Decimal, bool) {
	if pos == nil {
		return decimal.Zero, false
	}
	costBasis := pos.AvgCost.Mul(pos.Quantity)
	if !costBasis.IsPositive() {
		return decimal.Zero, false
	}
	return pnl.DivRound(costBasis, 6), true
}
