package model

import (
	"testing"
	"time"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/stretchr/testify/assert"
)

func TestTradeFromFutures(t *testing.T) {
	raw := &futures.AccountTrade{
		ID:              42,
		Symbol:          "BTCUSDT",
		Side:            futures.SideTypeBuy,
		Quantity:        "0.01",
		QuoteQuantity:   "650.5",
		Price:           "65050",
		Commission:      "0.26",
		CommissionAsset: "USDT",
		OrderID:         9001,
		Time:            1700000000000,
	}

	trade := TradeFromFutures(raw)
	assert.Equal(t, int64(42), trade.ID)
	assert.Equal(t, "BUY", trade.Side)
	assert.Equal(t, 0.01, trade.Quantity)
	assert.Equal(t, 650.5, trade.QuoteQuantity)
	assert.Equal(t, 0.26, trade.Commission)
	// 未追踪开平仓关系, 以负手续费近似
	assert.Equal(t, -0.26, trade.RealizedPnl)
	assert.Equal(t, time.Unix(1700000000, 0), trade.Time)
}

func TestTradeFromFuturesMalformed(t *testing.T) {
	trade := TradeFromFutures(&futures.AccountTrade{Symbol: "BTCUSDT", Quantity: "oops"})
	assert.Equal(t, 0.0, trade.Quantity)
	assert.Equal(t, 0.0, trade.RealizedPnl)

	assert.Equal(t, Trade{}, TradeFromFutures(nil))
}

func TestIncomeFromFutures(t *testing.T) {
	raw := &futures.IncomeHistory{
		Symbol:     "BTCUSDT",
		IncomeType: "FUNDING_FEE",
		Income:     "-0.125",
		Asset:      "USDT",
		TranID:     777,
		TradeID:    "12345",
		Time:       1700000000000,
	}

	income := IncomeFromFutures(raw)
	assert.Equal(t, "FUNDING_FEE", income.IncomeType)
	assert.Equal(t, -0.125, income.Income)
	assert.Equal(t, int64(777), income.TransactionID)
	assert.Equal(t, time.Unix(1700000000, 0), income.Time)

	assert.Equal(t, IncomeRecord{}, IncomeFromFutures(nil))
}
