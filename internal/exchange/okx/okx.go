package okx

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"signalrelay/pkg/utils"

	goexv2 "github.com/nntaoli-project/goex/v2"
	"github.com/nntaoli-project/goex/v2/model"
	"github.com/nntaoli-project/goex/v2/options"
)

// 默认的单次接口超时
const defaultTimeout = 10 * time.Second

// Credentials OKX v5 api 凭证。模拟盘需要在模拟交易下创建apikey
type Credentials struct {
	ApiKey     string
	SecretKey  string
	Passphrase string
	Simulated  bool
}

func (c Credentials) options() []options.ApiOption {
	return []options.ApiOption{
		options.WithApiKey(c.ApiKey),
		options.WithApiSecretKey(c.SecretKey),
		options.WithPassphrase(c.Passphrase),
	}
}

// OKX 公共部分：交易对缓存与带超时的调用
type Okx struct {
	prv     goexv2.IPrvRest
	pub     goexv2.IPubRest
	quote   string
	timeout time.Duration

	mu     sync.RWMutex
	exInfo map[string]model.CurrencyPair
	loaded bool
}

// goex私有方法没有context，用goroutine + select 做超时控制
func call[T any](ctx context.Context, timeout time.Duration, fn func() (T, error)) (T, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := fn()
		ch <- result{v, err}
	}()

	select {
	case <-timeoutCtx.Done():
		var zero T
		return zero, timeoutCtx.Err()
	case r := <-ch:
		return r.v, r.err
	}
}

// 创建订单前需要先调用GetExchangeInfo加载交易对，只加载一次
func (e *Okx) loadExchangeInfo(ctx context.Context) error {
	e.mu.RLock()
	loaded := e.loaded
	e.mu.RUnlock()
	if loaded {
		return nil
	}

	info, err := call(ctx, e.timeout, func() (map[string]model.CurrencyPair, error) {
		info, _, err := e.pub.GetExchangeInfo()
		return info, err
	})
	if err != nil {
		return fmt.Errorf("GetExchangeInfo: %w", err)
	}

	e.mu.Lock()
	e.exInfo = info
	e.loaded = true
	e.mu.Unlock()
	return nil
}

// ticker 格式转换: "BTC" 或 "BTC/USDT"、"BTC-USDT" -> goex 需要的 CurrencyPair
func (e *Okx) toCurrencyPair(ticker string) (model.CurrencyPair, error) {
	base, quote := splitTicker(ticker, e.quote)
	return e.pub.NewCurrencyPair(base, quote)
}

func splitTicker(ticker, defaultQuote string) (base, quote string) {
	// TradingView 的 BTCUSDT 形式
	ticker = utils.FormatSymbol(strings.ToUpper(strings.TrimSpace(ticker)))
	for _, sep := range []string{"/", "-"} {
		if parts := strings.Split(ticker, sep); len(parts) >= 2 {
			return parts[0], parts[1]
		}
	}
	return ticker, strings.ToUpper(defaultQuote)
}

// 获取最新价格
func (e *Okx) lastPrice(ctx context.Context, pair model.CurrencyPair) (float64, error) {
	return call(ctx, e.timeout, func() (float64, error) {
		ticker, _, err := e.pub.GetTicker(pair)
		if err != nil {
			return 0, err
		}
		if ticker == nil {
			return 0, fmt.Errorf("failed to get ticker %s", pair.Symbol)
		}
		return ticker.Last, nil
	})
}

// 查询币种可用余额，账户中没有该币种时返回0
func (e *Okx) available(ctx context.Context, coin string) (float64, error) {
	return call(ctx, e.timeout, func() (float64, error) {
		bal, _, err := e.prv.GetAccount(coin)
		if err != nil {
			return 0, err
		}
		acc, ok := bal[coin]
		if !ok {
			return 0, nil
		}
		return acc.AvailableBalance, nil
	})
}
