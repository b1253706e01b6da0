package model

import "github.com/shopspring/decimal"

type OrderSide string

const (
	Buy  OrderSide = "buy"
	Sell OrderSide = "sell"
)

// OrderRequest 决策完成后提交给券商的限价单
type OrderRequest struct {
	Ticker   string
	Side     OrderSide
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

type OrderResponse struct {
	OrderId string
	Status  int
	Message string
}
