package recorder

import (
	"context"
	"time"

	"go.uber.org/multierr"
)

// Event 一次信号处理的决策记录
type Event struct {
	ID        string    `json:"id"`
	Time      time.Time `json:"time"`
	RequestId string    `json:"request_id,omitempty"`
	Ticker    string    `json:"ticker"`
	Action    string    `json:"action"`
	Decision  string    `json:"decision,omitempty"`
	Quantity  string    `json:"quantity,omitempty"`
	Price     string    `json:"price,omitempty"`
	PnL       string    `json:"pnl,omitempty"`
	OrderId   string    `json:"order_id,omitempty"`
	Error     string    `json:"error,omitempty"`
	ElapsedMs int64     `json:"elapsed_ms"`
}

type Recorder interface {
	Record(ctx context.Context, e Event) error
	Close() error
}

type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Event) error { return nil }
func (NopRecorder) Close() error                        { return nil }

// Multi 依次写入全部recorder，错误合并返回
type Multi []Recorder

func (m Multi) Record(ctx context.Context, e Event) error {
	var errs error
	for _, r := range m {
		errs = multierr.Append(errs, r.Record(ctx, e))
	}
	return errs
}

func (m Multi) Close() error {
	var errs error
	for _, r := range m {
		errs = multierr.Append(errs, r.Close())
	}
	return errs
}
