package webhook

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// 最多记住的签名数
const dedupeSize = 500

// Deduper 告警服务超时重投时，窗口内相同签名只确认不执行
type Deduper struct {
	mu     sync.Mutex
	cache  *lru.Cache
	window time.Duration
	now    func() time.Time
}

// NewDeduper window<=0 时返回nil，表示关闭
func NewDeduper(window time.Duration) *Deduper {
	if window <= 0 {
		return nil
	}
	cache, _ := lru.New(dedupeSize)
	return &Deduper{cache: cache, window: window, now: time.Now}
}

// Seen 检查并记录，nil Deduper 永远返回false
func (d *Deduper) Seen(signature string) bool {
	if d == nil || signature == "" {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if v, ok := d.cache.Get(signature); ok {
		if now.Sub(v.(time.Time)) < d.window {
			return true
		}
	}
	d.cache.Add(signature, now)
	return false
}
