package okx

import (
	"strings"
	"sync"

	"signalrelay/internal/model"

	"github.com/shopspring/decimal"
)

// FillBook 本进程内的成交记录，用于计算持仓均价，重启后丢失
type FillBook struct {
	mu  sync.Mutex
	pos map[string]model.Position
}

func NewFillBook() *FillBook {
	return &FillBook{pos: make(map[string]model.Position)}
}

func (b *FillBook) Record(ticker string, side model.OrderSide, qty, price decimal.Decimal) {
	key := strings.ToUpper(ticker)
	b.mu.Lock()
	defer b.mu.Unlock()

	p := b.pos[key]
	switch side {
	case model.Buy:
		total := p.Quantity.Add(qty)
		if !total.IsPositive() {
			return
		}
		p.AvgCost = p.AvgCost.Mul(p.Quantity).Add(qty.Mul(price)).Div(total)
		p.Quantity = total
		b.pos[key] = p
	case model.Sell:
		p.Quantity = p.Quantity.Sub(qty)
		if !p.Quantity.IsPositive() {
			delete(b.pos, key)
			return
		}
		b.pos[key] = p
	}
}

// AvgCost 没有记录时返回0
func (b *FillBook) AvgCost(ticker string) decimal.Decimal {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pos[strings.ToUpper(ticker)].AvgCost
}
