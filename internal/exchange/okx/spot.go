package okx

import (
	"context"
	"fmt"
	"time"

	"signalrelay/internal/model"
	"signalrelay/pkg/logger"

	"github.com/bwmarrin/snowflake"
	goexv2 "github.com/nntaoli-project/goex/v2"
	goexmodel "github.com/nntaoli-project/goex/v2/model"
	"github.com/shopspring/decimal"
)

// 现货网关：ticker 视为基础币种，按计价币种（如 USDT）交易
type OkxSpot struct {
	Okx
	fills *FillBook
	ids   *snowflake.Node
}

func NewOkxSpot(cred Credentials, quote string, timeout time.Duration) (*OkxSpot, error) {
	if cred.Simulated {
		goexv2.DefaultHttpCli.SetHeaders("x-simulated-trading", "1") // 设置为模拟环境
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}
	pub := goexv2.OKx.Spot
	return &OkxSpot{
		Okx: Okx{
			prv:     pub.NewPrvApi(cred.options()...),
			pub:     pub,
			quote:   quote,
			timeout: timeout,
		},
		fills: NewFillBook(),
		ids:   node,
	}, nil
}

func (e *OkxSpot) ResolveSymbol(ctx context.Context, ticker string) error {
	if err := e.loadExchangeInfo(ctx); err != nil {
		return err
	}
	_, err := e.toCurrencyPair(ticker)
	return err
}

// LatestSnapshot 持仓数量取基础币种可用余额，成本来自本进程记录的成交
func (e *OkxSpot) LatestSnapshot(ctx context.Context, ticker string) (model.AccountSnapshot, error) {
	pair, err := e.toCurrencyPair(ticker)
	if err != nil {
		return model.AccountSnapshot{}, err
	}
	last, err := e.lastPrice(ctx, pair)
	if err != nil {
		return model.AccountSnapshot{}, fmt.Errorf("get ticker: %w", err)
	}
	cash, err := e.available(ctx, e.quoteCoin(pair))
	if err != nil {
		return model.AccountSnapshot{}, fmt.Errorf("get %s balance: %w", e.quoteCoin(pair), err)
	}
	base, err := e.available(ctx, e.baseCoin(pair, ticker))
	if err != nil {
		return model.AccountSnapshot{}, fmt.Errorf("get %s balance: %w", e.baseCoin(pair, ticker), err)
	}

	lastPrice := decimal.NewFromFloat(last)
	snap := model.AccountSnapshot{
		LastPrice:          lastPrice,
		AvailableFundsCash: decimal.NewFromFloat(cash),
	}
	qty := decimal.NewFromFloat(base)
	if qty.IsPositive() {
		avg := e.fills.AvgCost(ticker)
		snap.Position = &model.Position{Quantity: qty, AvgCost: avg}
		if avg.IsPositive() {
			snap.UnrealizedPnL = lastPrice.Sub(avg).Mul(qty)
		}
	}
	return snap, nil
}

// PlaceOrder 限价单，Quantity单位为币本身
func (e *OkxSpot) PlaceOrder(ctx context.Context, req model.OrderRequest) (*model.OrderResponse, error) {
	pair, err := e.toCurrencyPair(req.Ticker)
	if err != nil {
		return nil, err
	}
	var side goexmodel.OrderSide
	switch req.Side {
	case model.Buy:
		side = goexmodel.Spot_Buy
	case model.Sell:
		side = goexmodel.Spot_Sell
	default:
		return nil, fmt.Errorf("%w: invalid order side %q", model.ErrValidation, req.Side)
	}

	clOrdID := e.ids.Generate().String()
	opts := []goexmodel.OptionParameter{{Key: "clOrdId", Value: clOrdID}}

	order, err := call(ctx, e.timeout, func() (*goexmodel.Order, error) {
		order, body, err := e.prv.CreateOrder(pair, req.Quantity.InexactFloat64(), req.Price.InexactFloat64(), side, goexmodel.OrderType_Limit, opts...)
		if err != nil {
			logger.Warn("okx CreateOrder failed", logger.Pair("clOrdId", clOrdID), logger.Pair("body", string(body)))
		}
		return order, err
	})
	if err != nil {
		return nil, err
	}

	// 按限价全部成交记账
	e.fills.Record(req.Ticker, req.Side, req.Quantity, req.Price)

	return &model.OrderResponse{
		OrderId: order.Id,
		Status:  int(order.Status),
		Message: clOrdID,
	}, nil
}

func (e *OkxSpot) quoteCoin(pair goexmodel.CurrencyPair) string {
	if pair.QuoteSymbol != "" {
		return pair.QuoteSymbol
	}
	_, quote := splitTicker(pair.Symbol, e.quote)
	return quote
}

func (e *OkxSpot) baseCoin(pair goexmodel.CurrencyPair, ticker string) string {
	if pair.BaseSymbol != "" {
		return pair.BaseSymbol
	}
	base, _ := splitTicker(ticker, e.quote)
	return base
}
