package model

import "github.com/shopspring/decimal"

type Position struct {
	Quantity decimal.Decimal
	AvgCost  decimal.Decimal
}

// AccountSnapshot 某一时刻的行情与账户状态，由券商网关提供
type AccountSnapshot struct {
	LastPrice          decimal.Decimal
	AvailableFundsCash decimal.Decimal
	Position           *Position // 没有持仓时为nil
	UnrealizedPnL      decimal.Decimal
}
