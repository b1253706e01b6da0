package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type SessionStep int

const (
	StepAwaitingTicker SessionStep = iota + 1
	StepAwaitingSize
	StepAwaitingProfit
)

func (s SessionStep) String() string {
	switch s {
	case StepAwaitingTicker:
		return "AwaitingTicker"
	case StepAwaitingSize:
		return "AwaitingSize"
	case StepAwaitingProfit:
		return "AwaitingProfit"
	default:
		return "Idle"
	}
}

// ConfigSession 操作员交互式配置预设的对话状态
type ConfigSession struct {
	OperatorID    int64
	Step          SessionStep
	Ticker        string
	OrderSizeCash decimal.Decimal
	UpdatedAt     time.Time
}
