package decision

import (
	"testing"

	"signalrelay/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func preset(size, profit string) *model.TradePreset {
	return &model.TradePreset{Ticker: "AAPL", OrderSizeCash: d(size), MinProfitPct: d(profit)}
}

func TestDecideNoPreset(t *testing.T) {
	for _, action := range []model.Action{model.ActionBuy, model.ActionSell} {
		res, err := Decide(model.Signal{Ticker: "AAPL", Action: action}, nil, model.AccountSnapshot{})
		require.NoError(t, err)
		assert.Equal(t, model.DecisionSkipNoPreset, res.Kind)
		assert.False(t, res.PlacesOrder())
	}
}

func TestDecideBuy(t *testing.T) {
	sig := model.Signal{Ticker: "AAPL", Action: model.ActionBuy}

	t.Run("enough funds", func(t *testing.T) {
		res, err := Decide(sig, preset("500", "0.05"), model.AccountSnapshot{LastPrice: d("100"), AvailableFundsCash: d("1000")})
		require.NoError(t, err)
		assert.Equal(t, model.DecisionPlaceBuy, res.Kind)
		assert.True(t, res.Quantity.Equal(d("5")), res.Quantity.String())
		assert.True(t, res.Price.Equal(d("100")))
		assert.Equal(t, model.Buy, res.Side())
	})

	t.Run("funds exactly equal to order size", func(t *testing.T) {
		res, err := Decide(sig, preset("500", "0.05"), model.AccountSnapshot{LastPrice: d("100"), AvailableFundsCash: d("500")})
		require.NoError(t, err)
		assert.Equal(t, model.DecisionPlaceBuy, res.Kind)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		res, err := Decide(sig, preset("500", "0.05"), model.AccountSnapshot{LastPrice: d("100"), AvailableFundsCash: d("100")})
		require.NoError(t, err)
		assert.Equal(t, model.DecisionSkipInsufficientFunds, res.Kind)
	})

	t.Run("quantity truncated", func(t *testing.T) {
		res, err := Decide(sig, preset("100", "0"), model.AccountSnapshot{LastPrice: d("3"), AvailableFundsCash: d("1000")})
		require.NoError(t, err)
		assert.True(t, res.Quantity.Equal(d("33.33333333")), res.Quantity.String())
		assert.True(t, res.Quantity.Mul(res.Price).LessThanOrEqual(d("100")))
	})

	t.Run("non positive price", func(t *testing.T) {
		for _, px := range []string{"0", "-1"} {
			_, err := Decide(sig, preset("500", "0.05"), model.AccountSnapshot{LastPrice: d(px), AvailableFundsCash: d("1000")})
			assert.ErrorIs(t, err, model.ErrValidation)
		}
	})

	t.Run("order too small for price", func(t *testing.T) {
		_, err := Decide(sig, preset("0.000000001", "0"), model.AccountSnapshot{LastPrice: d("100000"), AvailableFundsCash: d("1000")})
		assert.ErrorIs(t, err, model.ErrValidation)
	})
}

func TestDecideSell(t *testing.T) {
	sig := model.Signal{Ticker: "AAPL", Action: model.ActionSell}
	pos := &model.Position{Quantity: d("10"), AvgCost: d("50")}

	t.Run("above threshold", func(t *testing.T) {
		res, err := Decide(sig, preset("500", "0.1"), model.AccountSnapshot{LastPrice: d("60"), Position: pos, UnrealizedPnL: d("100")})
		require.NoError(t, err)
		assert.Equal(t, model.DecisionPlaceSell, res.Kind)
		assert.True(t, res.Quantity.Equal(d("10")))
		assert.True(t, res.Price.Equal(d("60")))
		assert.Equal(t, model.Sell, res.Side())
	})

	t.Run("exactly at threshold", func(t *testing.T) {
		res, err := Decide(sig, preset("500", "0.1"), model.AccountSnapshot{LastPrice: d("55"), Position: pos, UnrealizedPnL: d("50")})
		require.NoError(t, err)
		assert.Equal(t, model.DecisionPlaceSell, res.Kind)
	})

	t.Run("below threshold", func(t *testing.T) {
		res, err := Decide(sig, preset("500", "0.1"), model.AccountSnapshot{LastPrice: d("51"), Position: pos, UnrealizedPnL: d("10")})
		require.NoError(t, err)
		assert.Equal(t, model.DecisionSkipProfitThresholdNotMet, res.Kind)
		assert.True(t, res.PnL.Equal(d("10")))
	})

	t.Run("no position", func(t *testing.T) {
		res, err := Decide(sig, preset("500", "0.1"), model.AccountSnapshot{LastPrice: d("51")})
		require.NoError(t, err)
		assert.Equal(t, model.DecisionSkipNoPosition, res.Kind)
	})

	t.Run("zero quantity", func(t *testing.T) {
		snap := model.AccountSnapshot{LastPrice: d("51"), Position: &model.Position{Quantity: decimal.Zero, AvgCost: d("50")}}
		res, err := Decide(sig, preset("500", "0.1"), snap)
		require.NoError(t, err)
		assert.Equal(t, model.DecisionSkipNoPosition, res.Kind)
	})

	t.Run("zero cost basis", func(t *testing.T) {
		snap := model.AccountSnapshot{LastPrice: d("51"), Position: &model.Position{Quantity: d("10"), AvgCost: decimal.Zero}, UnrealizedPnL: d("510")}
		res, err := Decide(sig, preset("500", "0.1"), snap)
		require.NoError(t, err)
		assert.Equal(t, model.DecisionSkipNoPosition, res.Kind)
	})

	t.Run("zero threshold sells on break even", func(t *testing.T) {
		res, err := Decide(sig, preset("500", "0"), model.AccountSnapshot{LastPrice: d("50"), Position: pos, UnrealizedPnL: decimal.Zero})
		require.NoError(t, err)
		assert.Equal(t, model.DecisionPlaceSell, res.Kind)
	})
}

func TestDecideUnknownAction(t *testing.T) {
	_, err := Decide(model.Signal{Ticker: "AAPL", Action: "HOLD"}, preset("500", "0.1"), model.AccountSnapshot{LastPrice: d("1")})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestDecideIsDeterministic(t *testing.T) {
	sig := model.Signal{Ticker: "AAPL", Action: model.ActionBuy}
	snap := model.AccountSnapshot{LastPrice: d("7"), AvailableFundsCash: d("1000")}
	first, err := Decide(sig, preset("100", "0"), snap)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Decide(sig, preset("100", "0"), snap)
		require.NoError(t, err)
		assert.Equal(t, first.Kind, again.Kind)
		assert.True(t, first.Quantity.Equal(again.Quantity))
	}
}

func TestProfitRatio(t *testing.T) {
	r, ok := ProfitRatio(d("100"), &model.Position{Quantity: d("10"), AvgCost: d("50")})
	require.True(t, ok)
	assert.True(t, r.Equal(d("0.2")))

	_, ok = ProfitRatio(d("100"), nil)
	assert.False(t, ok)
}
