package preset

import (
	"fmt"
	"strings"
	"sync"

	"signalrelay/internal/model"
)

// Registry ticker -> 预设，进程内保存，重启即丢失
type Registry struct {
	mu      sync.RWMutex
	presets map[string]model.TradePreset
	order   []string // 首次写入顺序
}

func NewRegistry() *Registry {
	return &Registry{presets: make(map[string]model.TradePreset)}
}

func Normalize(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// Upsert 覆盖写入。覆盖已存在的ticker时保留它在列表中的位置
func (r *Registry) Upsert(ticker string, p model.TradePreset) (model.TradePreset, error) {
	key := Normalize(ticker)
	if key == "" {
		return model.TradePreset{}, fmt.Errorf("%w: empty ticker", model.ErrValidation)
	}
	p.Ticker = key
	if err := p.Validate(); err != nil {
		return model.TradePreset{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.presets[key]; !ok {
		r.order = append(r.order, key)
	}
	r.presets[key] = p
	return p, nil
}

func (r *Registry) Lookup(ticker string) (model.TradePreset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.presets[Normalize(ticker)]
	return p, ok
}

// List 按插入顺序返回快照
func (r *Registry) List() []model.TradePreset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]model.TradePreset, 0, len(r.order))
	for _, key := range r.order {
		items = append(items, r.presets[key])
	}
	return items
}
