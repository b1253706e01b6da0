package model

import "strings"

/*
来源于外部告警服务

	{
	  "ticker": "AAPL",
	  "signal": "BUY"
	}
*/
type SignalRequest struct {
	Ticker string `json:"ticker" binding:"required,max=32"`
	Signal string `json:"signal" binding:"required,oneof=BUY SELL"`
}

// Normalize 去空格并转大写，校验前调用
func (r *SignalRequest) Normalize() {
	r.Ticker = strings.ToUpper(strings.TrimSpace(r.Ticker))
	r.Signal = strings.ToUpper(strings.TrimSpace(r.Signal))
}

func (r SignalRequest) ToSignal(raw []byte, signature string) (Signal, error) {
	action, err := ParseAction(r.Signal)
	if err != nil {
		return Signal{}, err
	}
	return Signal{
		Ticker:     r.Ticker,
		Action:     action,
		RawPayload: raw,
		Signature:  signature,
	}, nil
}
