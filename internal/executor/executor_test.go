package executor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"signalrelay/internal/exchange"
	"signalrelay/internal/model"
	"signalrelay/internal/preset"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func setup(t *testing.T, cash string) (*Executor, *exchange.SimulatedGateway, *preset.Registry) {
	t.Helper()
	reg := preset.NewRegistry()
	gw := exchange.NewSimulatedGateway(dec(cash), map[string]decimal.Decimal{"AAPL": dec("100"), "MSFT": dec("50")})
	return NewExecutor(reg, gw), gw, reg
}

func buy(ticker string) model.Signal {
	return model.Signal{Ticker: ticker, Action: model.ActionBuy}
}

func TestExecuteNoPreset(t *testing.T) {
	ex, gw, _ := setup(t, "1000")
	out := ex.Execute(context.Background(), buy("AAPL"))
	require.NoError(t, out.Err)
	assert.Equal(t, model.DecisionSkipNoPreset, out.Decision.Kind)
	assert.Nil(t, out.Preset)
	assert.Equal(t, 0, gw.OrderCount())
}

func TestExecuteBuyThenSell(t *testing.T) {
	ex, gw, reg := setup(t, "1000")
	_, err := reg.Upsert("aapl", model.TradePreset{OrderSizeCash: dec("500"), MinProfitPct: dec("0.1")})
	require.NoError(t, err)

	out := ex.Execute(context.Background(), buy("AAPL"))
	require.NoError(t, out.Err)
	assert.Equal(t, model.DecisionPlaceBuy, out.Decision.Kind)
	require.NotNil(t, out.Order)
	assert.True(t, gw.Cash().Equal(dec("500")))

	// 收益不足
	gw.SetPrice("AAPL", dec("105"))
	out = ex.Execute(context.Background(), model.Signal{Ticker: "AAPL", Action: model.ActionSell})
	require.NoError(t, out.Err)
	assert.Equal(t, model.DecisionSkipProfitThresholdNotMet, out.Decision.Kind)
	assert.True(t, out.Decision.PnL.Equal(dec("25")))

	gw.SetPrice("AAPL", dec("120"))
	out = ex.Execute(context.Background(), model.Signal{Ticker: "AAPL", Action: model.ActionSell})
	require.NoError(t, out.Err)
	assert.Equal(t, model.DecisionPlaceSell, out.Decision.Kind)
	assert.True(t, out.Decision.Quantity.Equal(dec("5")))
	assert.True(t, gw.Cash().Equal(dec("1100")))
}

func TestExecuteSellWithoutPosition(t *testing.T) {
	ex, gw, reg := setup(t, "1000")
	_, _ = reg.Upsert("AAPL", model.TradePreset{OrderSizeCash: dec("500"), MinProfitPct: dec("0")})

	out := ex.Execute(context.Background(), model.Signal{Ticker: "AAPL", Action: model.ActionSell})
	require.NoError(t, out.Err)
	assert.Equal(t, model.DecisionSkipNoPosition, out.Decision.Kind)
	assert.Equal(t, 0, gw.OrderCount())
}

func TestExecuteUnknownSymbolIsDownstream(t *testing.T) {
	ex, _, reg := setup(t, "1000")
	_, _ = reg.Upsert("TSLA", model.TradePreset{OrderSizeCash: dec("500"), MinProfitPct: dec("0")})

	out := ex.Execute(context.Background(), buy("TSLA"))
	assert.ErrorIs(t, out.Err, model.ErrDownstream)
	assert.ErrorIs(t, out.Err, exchange.ErrUnknownSymbol)
}

func TestExecuteIgnoresCallerCancellation(t *testing.T) {
	ex, gw, reg := setup(t, "1000")
	_, _ = reg.Upsert("AAPL", model.TradePreset{OrderSizeCash: dec("500"), MinProfitPct: dec("0")})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := ex.Execute(ctx, buy("AAPL"))
	require.NoError(t, out.Err)
	assert.Equal(t, 1, gw.OrderCount())
}

// 两个并发BUY，现金只够一次：只能成交一单
func TestConcurrentBuysDoNotDoubleSpend(t *testing.T) {
	ex, gw, reg := setup(t, "800")
	_, _ = reg.Upsert("AAPL", model.TradePreset{OrderSizeCash: dec("500"), MinProfitPct: dec("0")})

	const n = 8
	outs := make([]Outcome, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outs[i] = ex.Execute(context.Background(), buy("AAPL"))
		}(i)
	}
	wg.Wait()

	placed, skipped := 0, 0
	for _, out := range outs {
		require.NoError(t, out.Err)
		switch out.Decision.Kind {
		case model.DecisionPlaceBuy:
			placed++
		case model.DecisionSkipInsufficientFunds:
			skipped++
		}
	}
	assert.Equal(t, 1, placed)
	assert.Equal(t, n-1, skipped)
	assert.Equal(t, 1, gw.OrderCount())
	assert.True(t, gw.Cash().Equal(dec("300")))
}

type slowGateway struct {
	exchange.Gateway
	mu       sync.Mutex
	inflight map[string]int
	maxSeen  map[string]int
}

func (g *slowGateway) LatestSnapshot(ctx context.Context, ticker string) (model.AccountSnapshot, error) {
	g.mu.Lock()
	g.inflight[ticker]++
	if g.inflight[ticker] > g.maxSeen[ticker] {
		g.maxSeen[ticker] = g.inflight[ticker]
	}
	g.mu.Unlock()

	time.Sleep(5 * time.Millisecond)
	snap, err := g.Gateway.LatestSnapshot(ctx, ticker)

	g.mu.Lock()
	g.inflight[ticker]--
	g.mu.Unlock()
	return snap, err
}

func TestSameTickerSerialized(t *testing.T) {
	reg := preset.NewRegistry()
	_, _ = reg.Upsert("AAPL", model.TradePreset{OrderSizeCash: dec("1"), MinProfitPct: dec("0")})
	_, _ = reg.Upsert("MSFT", model.TradePreset{OrderSizeCash: dec("1"), MinProfitPct: dec("0")})
	sim := exchange.NewSimulatedGateway(dec("1000"), map[string]decimal.Decimal{"AAPL": dec("100"), "MSFT": dec("50")})
	gw := &slowGateway{Gateway: sim, inflight: map[string]int{}, maxSeen: map[string]int{}}
	ex := NewExecutor(reg, gw)

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		for _, ticker := range []string{"AAPL", "MSFT"} {
			wg.Add(1)
			go func(ticker string) {
				defer wg.Done()
				out := ex.Execute(context.Background(), buy(ticker))
				assert.NoError(t, out.Err)
			}(ticker)
		}
	}
	wg.Wait()

	assert.Equal(t, 1, gw.maxSeen["AAPL"])
	assert.Equal(t, 1, gw.maxSeen["MSFT"])
	assert.Equal(t, 0, ex.locks.size())
}

type failingGateway struct {
	exchange.Gateway
}

func (failingGateway) PlaceOrder(context.Context, model.OrderRequest) (*model.OrderResponse, error) {
	return nil, errors.New("connection reset")
}

func TestPlaceOrderFailureIsDownstream(t *testing.T) {
	reg := preset.NewRegistry()
	_, _ = reg.Upsert("AAPL", model.TradePreset{OrderSizeCash: dec("100"), MinProfitPct: dec("0")})
	sim := exchange.NewSimulatedGateway(dec("1000"), map[string]decimal.Decimal{"AAPL": dec("100")})
	ex := NewExecutor(reg, failingGateway{Gateway: sim})

	out := ex.Execute(context.Background(), buy("AAPL"))
	assert.ErrorIs(t, out.Err, model.ErrDownstream)
	assert.Equal(t, model.DecisionPlaceBuy, out.Decision.Kind)
	assert.Nil(t, out.Order)
}
