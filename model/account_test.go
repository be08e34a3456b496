package model

import (
	"testing"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountSummaryFromFutures(t *testing.T) {
	raw := &futures.Account{
		TotalUnrealizedProfit: "25.5",
		TotalWalletBalance:    "1200",
		AvailableBalance:      "800",
		TotalMarginBalance:    "1225.5",
		Assets: []*futures.AccountAsset{
			{Asset: "USDT", WalletBalance: "1000", UnrealizedProfit: "25.5"},
			{Asset: "BNB", WalletBalance: "200"},
			{Asset: "BTC", WalletBalance: "-0.001"},
		},
		Positions: []*futures.AccountPosition{
			{Symbol: "BTCUSDT", PositionAmt: "0.5", EntryPrice: "100"},
			{Symbol: "ETHUSDT", PositionAmt: "0"},
			{Symbol: "SOLUSDT", PositionAmt: "-10", EntryPrice: "50"},
		},
	}

	summary := AccountSummaryFromFutures(raw)
	// 负余额不计入总额
	assert.Equal(t, 1200.0, summary.TotalBalance)
	assert.Equal(t, 25.5, summary.TotalUnrealizedPnl)
	assert.Equal(t, 800.0, summary.AvailableBalance)
	assert.Len(t, summary.Assets, 3)

	// 零仓位被过滤
	require.Len(t, summary.Positions, 2)
	assert.Equal(t, "BTCUSDT", summary.Positions[0].Symbol)
	assert.Equal(t, "SOLUSDT", summary.Positions[1].Symbol)
	assert.Equal(t, 2, summary.ActivePositionsCount())
}

func TestAccountSummaryFromFuturesNil(t *testing.T) {
	summary := AccountSummaryFromFutures(nil)
	assert.NotNil(t, summary.Assets)
	assert.NotNil(t, summary.Positions)
	assert.Equal(t, 0.0, summary.TotalBalance)
}

func TestTotalNotionalValue(t *testing.T) {
	summary := AccountSummary{Positions: []Position{
		{Symbol: "BTCUSDT", Notional: 500},
		{Symbol: "ETHUSDT", Notional: -120},
	}}
	assert.Equal(t, 380.0, summary.TotalNotionalValue())
}
