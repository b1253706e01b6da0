package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type DecisionKind int

const (
	DecisionPlaceBuy DecisionKind = iota + 1
	DecisionPlaceSell
	DecisionSkipNoPreset
	DecisionSkipInsufficientFunds
	DecisionSkipProfitThresholdNotMet
	DecisionSkipNoPosition
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionPlaceBuy:
		return "PlaceBuy"
	case DecisionPlaceSell:
		return "PlaceSell"
	case DecisionSkipNoPreset:
		return "SkipNoPreset"
	case DecisionSkipInsufficientFunds:
		return "SkipInsufficientFunds"
	case DecisionSkipProfitThresholdNotMet:
		return "SkipProfitThresholdNotMet"
	case DecisionSkipNoPosition:
		return "SkipNoPosition"
	default:
		return fmt.Sprintf("DecisionKind(%d)", int(k))
	}
}

// DecisionResult 决策结果。Quantity/Price 只对下单有效，PnL 只对 SkipProfitThresholdNotMet 有效
type DecisionResult struct {
	Kind     DecisionKind
	Quantity decimal.Decimal
	Price    decimal.Decimal
	PnL      decimal.Decimal
}

func PlaceBuy(quantity, price decimal.Decimal) DecisionResult {
	return DecisionResult{Kind: DecisionPlaceBuy, Quantity: quantity, Price: price}
}

func PlaceSell(quantity, price decimal.Decimal) DecisionResult {
	return DecisionResult{Kind: DecisionPlaceSell, Quantity: quantity, Price: price}
}

func SkipProfitThresholdNotMet(pnl decimal.Decimal) DecisionResult {
	return DecisionResult{Kind: DecisionSkipProfitThresholdNotMet, PnL: pnl}
}

func Skip(kind DecisionKind) DecisionResult {
	return DecisionResult{Kind: kind}
}

// PlacesOrder 是否需要向券商下单
func (d DecisionResult) PlacesOrder() bool {
	return d.Kind == DecisionPlaceBuy || d.Kind == DecisionPlaceSell
}

// Side 下单方向，仅在 PlacesOrder 为true时有意义
func (d DecisionResult) Side() OrderSide {
	if d.Kind == DecisionPlaceSell {
		return Sell
	}
	return Buy
}
