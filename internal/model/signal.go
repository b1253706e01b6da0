package model

import (
	"fmt"
	"strings"
)

// Action 信号动作
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToUpper(strings.TrimSpace(s))); a {
	case ActionBuy, ActionSell:
		return a, nil
	default:
		return "", fmt.Errorf("%w: unknown action %q", ErrValidation, s)
	}
}

// Signal 系统内部使用的信号，由webhook请求解析而来
type Signal struct {
	Ticker     string
	Action     Action
	RawPayload []byte
	Signature  string
}
