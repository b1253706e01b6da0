package executor

import (
	"context"
	"fmt"
	"time"

	"signalrelay/internal/decision"
	"signalrelay/internal/exchange"
	"signalrelay/internal/model"
	"signalrelay/internal/preset"
	"signalrelay/pkg/logger"
)

// Outcome 一次信号处理的完整结果
type Outcome struct {
	Signal   model.Signal
	Preset   *model.TradePreset
	Snapshot model.AccountSnapshot
	Decision model.DecisionResult
	Order    *model.OrderResponse
	Err      error
	Elapsed  time.Duration
}

// Executor 信号 -> 快照 -> 决策 -> 下单。同一ticker串行，避免两次买入都看到同一份余额
type Executor struct {
	registry *preset.Registry
	gateway  exchange.Gateway
	locks    *KeyedMutex
}

func NewExecutor(registry *preset.Registry, gateway exchange.Gateway) *Executor {
	return &Executor{
		registry: registry,
		gateway:  gateway,
		locks:    NewKeyedMutex(),
	}
}

// Execute 调用方请求断开不会中断正在进行的下单流程
func (e *Executor) Execute(ctx context.Context, sig model.Signal) (out Outcome) {
	ctx = context.WithoutCancel(ctx)
	start := time.Now()
	out.Signal = sig
	defer func() { out.Elapsed = time.Since(start) }()

	p, ok := e.registry.Lookup(sig.Ticker)
	if !ok {
		out.Decision = model.Skip(model.DecisionSkipNoPreset)
		return out
	}
	out.Preset = &p

	unlock := e.locks.Lock(preset.Normalize(sig.Ticker))
	defer unlock()

	if err := e.gateway.ResolveSymbol(ctx, sig.Ticker); err != nil {
		out.Err = fmt.Errorf("%w: resolve %s: %w", model.ErrDownstream, sig.Ticker, err)
		return out
	}
	snap, err := e.gateway.LatestSnapshot(ctx, sig.Ticker)
	if err != nil {
		out.Err = fmt.Errorf("%w: snapshot %s: %w", model.ErrDownstream, sig.Ticker, err)
		return out
	}
	out.Snapshot = snap

	res, err := decision.Decide(sig, out.Preset, snap)
	if err != nil {
		out.Err = err
		return out
	}
	out.Decision = res
	if !res.PlacesOrder() {
		logger.Info("signal skipped",
			logger.Pair("ticker", sig.Ticker),
			logger.Pair("action", string(sig.Action)),
			logger.Pair("decision", res.Kind.String()))
		return out
	}

	req := model.OrderRequest{
		Ticker:   p.Ticker,
		Side:     res.Side(),
		Quantity: res.Quantity,
		Price:    res.Price,
	}
	order, err := e.gateway.PlaceOrder(ctx, req)
	if err != nil {
		out.Err = fmt.Errorf("%w: place %s %s: %w", model.ErrDownstream, req.Side, req.Ticker, err)
		return out
	}
	out.Order = order
	logger.Info("order placed",
		logger.Pair("ticker", req.Ticker),
		logger.Pair("side", string(req.Side)),
		logger.Pair("quantity", req.Quantity.String()),
		logger.Pair("price", req.Price.String()),
		logger.Pair("order_id", order.OrderId))
	return out
}
