package exchange

import (
	"fmt"

	"signalrelay/conf"
	"signalrelay/internal/exchange/okx"
	"signalrelay/pkg/logger"

	"github.com/shopspring/decimal"
)

// NewGateway 按 broker.kind 创建券商网关
func NewGateway(cfg conf.BrokerConfig) (Gateway, error) {
	switch cfg.Kind {
	case conf.BrokerSim:
		cash, err := decimal.NewFromString(cfg.Sim.Cash)
		if err != nil {
			return nil, fmt.Errorf("broker.sim.cash: %w", err)
		}
		prices := make(map[string]decimal.Decimal, len(cfg.Sim.Prices))
		for ticker, px := range cfg.Sim.Prices {
			p, err := decimal.NewFromString(px)
			if err != nil {
				return nil, fmt.Errorf("broker.sim.prices.%s: %w", ticker, err)
			}
			prices[ticker] = p
		}
		logger.Infof("using simulated broker, cash=%s tickers=%d", cash, len(prices))
		return NewSimulatedGateway(cash, prices), nil
	case conf.BrokerOkx:
		logger.Infof("using okx spot broker, quote=%s simulated=%v", cfg.Okx.Quote, cfg.Okx.Simulated)
		return okx.NewOkxSpot(okx.Credentials{
			ApiKey:     cfg.Okx.ApiKey,
			SecretKey:  cfg.Okx.SecretKey,
			Passphrase: cfg.Okx.Password,
			Simulated:  cfg.Okx.Simulated,
		}, cfg.Okx.Quote, cfg.Timeout)
	default:
		return nil, fmt.Errorf("unsupported broker kind: %s", cfg.Kind)
	}
}
