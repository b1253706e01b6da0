package utils

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Retry 尝试执行 fn，如果失败则重试，最多 retries 次
// delay 是两次重试之间的间隔，backoff=true 表示指数退避；ctx 结束时停止重试
func Retry(ctx context.Context, retries int, delay time.Duration, backoff bool, fn func() error) error {
	if retries < 1 {
		retries = 1
	}
	var err error
	for i := 0; i < retries; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		if i < retries-1 { // 最后一次就不用 sleep 了
			sleep := delay
			if backoff {
				sleep = delay * time.Duration(1<<i) // 1x,2x,4x,8x...
			}
			select {
			case <-ctx.Done():
				return fmt.Errorf("retry aborted after %d attempts: %w", i+1, err)
			case <-time.After(sleep):
			}
		}
	}
	return fmt.Errorf("after %d attempts, last error: %w", retries, err)
}

// FormatSymbol 将 TradingView ticker 转换为带分隔符的 symbol，如 BTCUSDT -> BTC/USDT
func FormatSymbol(tvSymbol string) string {
	// 后缀 quote 币种列表，较长的在前
	quotes := []string{"USDT", "USDC", "USD"}

	for _, q := range quotes {
		if strings.HasSuffix(tvSymbol, q) {
			base := strings.TrimSuffix(tvSymbol, q)
			if base == "" || strings.HasSuffix(base, "-") {
				continue
			}
			if strings.HasSuffix(base, "/") {
				return base + q
			}
			return base + "/" + q
		}
	}
	// 没匹配到就返回原始值
	return tvSymbol
}
