package exchange

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"signalrelay/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownSymbol      = errors.New("unknown symbol")
	ErrInsufficientCash   = errors.New("insufficient cash")
	ErrInsufficientShares = errors.New("insufficient position")
)

// 模拟账户：内存中的现金、价格与持仓，买入立即成交并扣减现金
type SimulatedGateway struct {
	mu        sync.Mutex
	cash      decimal.Decimal
	prices    map[string]decimal.Decimal
	positions map[string]model.Position
	orders    map[string]model.OrderRequest
}

func NewSimulatedGateway(cash decimal.Decimal, prices map[string]decimal.Decimal) *SimulatedGateway {
	s := &SimulatedGateway{
		cash:      cash,
		prices:    make(map[string]decimal.Decimal, len(prices)),
		positions: make(map[string]model.Position),
		orders:    make(map[string]model.OrderRequest),
	}
	for ticker, px := range prices {
		s.prices[strings.ToUpper(ticker)] = px
	}
	return s
}

// 设置价格，未设置价格的ticker无法交易
func (s *SimulatedGateway) SetPrice(ticker string, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[strings.ToUpper(ticker)] = price
}

// 直接写入持仓，用于初始化账户
func (s *SimulatedGateway) SetPosition(ticker string, pos model.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.positions[strings.ToUpper(ticker)] = pos
}

func (s *SimulatedGateway) Cash() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cash
}

func (s *SimulatedGateway) Position(ticker string) (model.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, ok := s.positions[strings.ToUpper(ticker)]
	return pos, ok
}

// 已成交订单数
func (s *SimulatedGateway) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func (s *SimulatedGateway) ResolveSymbol(ctx context.Context, ticker string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.prices[strings.ToUpper(ticker)]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSymbol, ticker)
	}
	return nil
}

func (s *SimulatedGateway) LatestSnapshot(ctx context.Context, ticker string) (model.AccountSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return model.AccountSnapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToUpper(ticker)
	last, ok := s.prices[key]
	if !ok {
		return model.AccountSnapshot{}, fmt.Errorf("%w: %s", ErrUnknownSymbol, ticker)
	}
	snap := model.AccountSnapshot{
		LastPrice:          last,
		AvailableFundsCash: s.cash,
	}
	if pos, ok := s.positions[key]; ok && pos.Quantity.IsPositive() {
		p := pos
		snap.Position = &p
		snap.UnrealizedPnL = last.Sub(pos.AvgCost).Mul(pos.Quantity)
	}
	return snap, nil
}

// PlaceOrder 按限价立即全部成交
func (s *SimulatedGateway) PlaceOrder(ctx context.Context, req model.OrderRequest) (*model.OrderResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !req.Quantity.IsPositive() || !req.Price.IsPositive() {
		return nil, fmt.Errorf("%w: quantity and price must be positive", model.ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToUpper(req.Ticker)
	if _, ok := s.prices[key]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, req.Ticker)
	}
	notional := req.Quantity.Mul(req.Price)
	pos := s.positions[key]

	switch req.Side {
	case model.Buy:
		if notional.GreaterThan(s.cash) {
			return nil, fmt.Errorf("%w: need %s, have %s", ErrInsufficientCash, notional, s.cash)
		}
		s.cash = s.cash.Sub(notional)
		// 加权平均成本
		totalQty := pos.Quantity.Add(req.Quantity)
		pos.AvgCost = pos.AvgCost.Mul(pos.Quantity).Add(notional).Div(totalQty)
		pos.Quantity = totalQty
		s.positions[key] = pos
	case model.Sell:
		if req.Quantity.GreaterThan(pos.Quantity) {
			return nil, fmt.Errorf("%w: want %s, hold %s", ErrInsufficientShares, req.Quantity, pos.Quantity)
		}
		s.cash = s.cash.Add(notional)
		pos.Quantity = pos.Quantity.Sub(req.Quantity)
		if pos.Quantity.IsZero() {
			delete(s.positions, key)
		} else {
			s.positions[key] = pos
		}
	default:
		return nil, fmt.Errorf("%w: invalid order side %q", model.ErrValidation, req.Side)
	}

	orderID := uuid.NewString()
	s.orders[orderID] = req
	return &model.OrderResponse{
		OrderId: orderID,
		Status:  1,
		Message: "Simulated order filled",
	}, nil
}
