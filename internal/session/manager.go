package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"signalrelay/internal/model"
	"signalrelay/internal/preset"
	"signalrelay/pkg/logger"

	"github.com/shopspring/decimal"
)

const (
	PromptTicker = "Enter ticker:"
	PromptSize   = "Enter size:"
	PromptProfit = "Enter profit %:"
	NumberOnly   = "Number only."
)

// Manager 管理每个操作员的交互式 /set 对话
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*model.ConfigSession
	registry *preset.Registry

	// 空闲超过该时长的会话视为不存在，0表示永不过期
	idleTimeout time.Duration
	now         func() time.Time
}

func NewManager(registry *preset.Registry, idleTimeout time.Duration) *Manager {
	return &Manager{
		sessions:    make(map[int64]*model.ConfigSession),
		registry:    registry,
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Open 开启新会话，已有会话会被重置
func (m *Manager) Open(operatorID int64) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[operatorID] = &model.ConfigSession{
		OperatorID: operatorID,
		Step:       model.StepAwaitingTicker,
		UpdatedAt:  m.now(),
	}
	return PromptTicker
}

func (m *Manager) Active(operatorID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookup(operatorID) != nil
}

// Advance 用一条消息推进会话，返回需要回复给操作员的文本
func (m *Manager) Advance(operatorID int64, text string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.lookup(operatorID)
	if s == nil {
		return "", false
	}
	text = strings.TrimSpace(text)

	switch s.Step {
	case model.StepAwaitingTicker:
		ticker := preset.Normalize(text)
		if ticker == "" {
			return PromptTicker, true
		}
		s.Ticker = ticker
		s.Step = model.StepAwaitingSize
		s.UpdatedAt = m.now()
		return PromptSize, true

	case model.StepAwaitingSize:
		size, err := decimal.NewFromString(text)
		if err != nil || !size.IsPositive() {
			return NumberOnly, true
		}
		s.OrderSizeCash = size
		s.Step = model.StepAwaitingProfit
		s.UpdatedAt = m.now()
		return PromptProfit, true

	case model.StepAwaitingProfit:
		pct, err := decimal.NewFromString(text)
		if err != nil || pct.IsNegative() {
			return NumberOnly, true
		}
		saved, err := m.registry.Upsert(s.Ticker, model.TradePreset{
			OrderSizeCash: s.OrderSizeCash,
			MinProfitPct:  pct.Shift(-2),
		})
		if err != nil {
			// 前两步已校验，这里只会是意外情况；保留会话让操作员重试
			logger.Warn("session preset rejected", logger.Pair("operator", operatorID), logger.Err(err))
			return NumberOnly, true
		}
		delete(m.sessions, operatorID)
		return fmt.Sprintf("✅ Saved %s @$%s @%s%%", saved.Ticker, saved.OrderSizeCash, pct), true
	}

	// 未知状态，丢弃
	delete(m.sessions, operatorID)
	return "", false
}

// lookup 调用方需持有锁；过期会话在这里清理
func (m *Manager) lookup(operatorID int64) *model.ConfigSession {
	s, ok := m.sessions[operatorID]
	if !ok {
		return nil
	}
	if m.idleTimeout > 0 && m.now().Sub(s.UpdatedAt) > m.idleTimeout {
		delete(m.sessions, operatorID)
		return nil
	}
	return s
}
