package exchange

import (
	"context"

	"signalrelay/internal/model"
)

// Gateway 券商接口：行情、账户快照与下单
type Gateway interface {
	// 确认ticker可交易，返回错误表示券商不认识该标的
	ResolveSymbol(ctx context.Context, ticker string) error
	// 获取最新价格、可用现金与持仓
	LatestSnapshot(ctx context.Context, ticker string) (model.AccountSnapshot, error)
	// 提交限价单
	PlaceOrder(ctx context.Context, req model.OrderRequest) (*model.OrderResponse, error)
}
