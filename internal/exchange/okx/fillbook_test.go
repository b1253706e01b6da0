package okx

import (
	"context"
	"errors"
	"testing"
	"time"

	"signalrelay/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillBook(t *testing.T) {
	b := NewFillBook()
	assert.True(t, b.AvgCost("btc").IsZero())

	b.Record("btc", model.Buy, decimal.NewFromInt(1), decimal.NewFromInt(100))
	b.Record("BTC", model.Buy, decimal.NewFromInt(1), decimal.NewFromInt(200))
	assert.True(t, b.AvgCost("BTC").Equal(decimal.NewFromInt(150)))

	b.Record("BTC", model.Sell, decimal.NewFromInt(1), decimal.NewFromInt(300))
	assert.True(t, b.AvgCost("BTC").Equal(decimal.NewFromInt(150)), "selling keeps the average")

	b.Record("BTC", model.Sell, decimal.NewFromInt(1), decimal.NewFromInt(300))
	assert.True(t, b.AvgCost("BTC").IsZero())
}

func TestSplitTicker(t *testing.T) {
	cases := map[string][2]string{
		"btc":      {"BTC", "USDT"},
		"ETH/USDC": {"ETH", "USDC"},
		"sol-usdt": {"SOL", "USDT"},
		"BTCUSDT":  {"BTC", "USDT"},
	}
	for in, want := range cases {
		base, quote := splitTicker(in, "usdt")
		assert.Equal(t, want[0], base, in)
		assert.Equal(t, want[1], quote, in)
	}
}

func TestCallTimeout(t *testing.T) {
	_, err := call(context.Background(), 10*time.Millisecond, func() (int, error) {
		time.Sleep(200 * time.Millisecond)
		return 1, nil
	})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	v, err := call(context.Background(), time.Second, func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}
