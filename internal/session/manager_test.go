package session

import (
	"testing"
	"time"

	"signalrelay/internal/model"
	"signalrelay/internal/preset"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const operator int64 = 42

func TestInteractiveFlow(t *testing.T) {
	reg := preset.NewRegistry()
	m := NewManager(reg, 0)

	assert.False(t, m.Active(operator))
	assert.Equal(t, PromptTicker, m.Open(operator))
	assert.True(t, m.Active(operator))

	reply, ok := m.Advance(operator, "aapl")
	require.True(t, ok)
	assert.Equal(t, PromptSize, reply)

	s, ok := current(m, operator)
	require.True(t, ok)
	assert.Equal(t, model.StepAwaitingSize, s.Step)
	assert.Equal(t, "AAPL", s.Ticker)

	reply, _ = m.Advance(operator, "100")
	assert.Equal(t, PromptProfit, reply)

	reply, _ = m.Advance(operator, "5")
	assert.Equal(t, "✅ Saved AAPL @$100 @5%", reply)
	assert.False(t, m.Active(operator))

	p, ok := reg.Lookup("AAPL")
	require.True(t, ok)
	assert.True(t, p.OrderSizeCash.Equal(decimal.NewFromInt(100)))
	assert.True(t, p.MinProfitPct.Equal(decimal.RequireFromString("0.05")))
}

func TestBadInputKeepsStep(t *testing.T) {
	reg := preset.NewRegistry()
	m := NewManager(reg, 0)
	m.Open(operator)

	reply, _ := m.Advance(operator, "   ")
	assert.Equal(t, PromptTicker, reply)

	m.Advance(operator, "msft")
	for _, bad := range []string{"abc", "0", "-5", ""} {
		reply, ok := m.Advance(operator, bad)
		require.True(t, ok)
		assert.Equal(t, NumberOnly, reply, bad)
		s, _ := current(m, operator)
		assert.Equal(t, model.StepAwaitingSize, s.Step)
	}

	m.Advance(operator, "250.5")
	for _, bad := range []string{"five", "-1"} {
		reply, _ := m.Advance(operator, bad)
		assert.Equal(t, NumberOnly, reply)
		s, _ := current(m, operator)
		assert.Equal(t, model.StepAwaitingProfit, s.Step)
	}

	reply, _ = m.Advance(operator, "0")
	assert.Equal(t, "✅ Saved MSFT @$250.5 @0%", reply)
	assert.Equal(t, 1, len(reg.List()))
}

func TestAdvanceWithoutSession(t *testing.T) {
	m := NewManager(preset.NewRegistry(), 0)
	_, ok := m.Advance(operator, "AAPL")
	assert.False(t, ok)
}

func TestSessionsArePerOperator(t *testing.T) {
	m := NewManager(preset.NewRegistry(), 0)
	m.Open(1)
	m.Advance(1, "AAPL")
	assert.False(t, m.Active(2))

	s, _ := current(m, 1)
	assert.Equal(t, model.StepAwaitingSize, s.Step)
}

func TestIdleTimeout(t *testing.T) {
	m := NewManager(preset.NewRegistry(), time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	m.Open(operator)
	now = now.Add(30 * time.Second)
	reply, ok := m.Advance(operator, "AAPL")
	require.True(t, ok)
	assert.Equal(t, PromptSize, reply)

	now = now.Add(2 * time.Minute)
	assert.False(t, m.Active(operator))
	_, ok = m.Advance(operator, "100")
	assert.False(t, ok)
}

func current(m *Manager, operatorID int64) (model.ConfigSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.lookup(operatorID)
	if s == nil {
		return model.ConfigSession{}, false
	}
	return *s, true
}
