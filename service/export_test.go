package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terryso/binance-dashboard/model"
)

func TestPositionsCSV(t *testing.T) {
	processor := NewProcessor("USDT")
	rows := processor.ProcessPositions([]model.Position{
		{Symbol: "BTCUSDT", Size: 0.5, EntryPrice: 100, MarkPrice: 110, UnrealizedPnl: 5, Leverage: 10, Notional: 55, MarginType: "cross"},
	})

	var buf bytes.Buffer
	require.NoError(t, PositionsCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "symbol,side,size,entry_price,mark_price,unrealized_pnl,pnl_percentage,leverage,notional,margin_type", lines[0])
	assert.Equal(t, "BTCUSDT,LONG,0.5000,100.0000,110.0000,5.0000,10.0000,10,55.0000,cross", lines[1])
}

func TestTradesCSV(t *testing.T) {
	trades := []model.Trade{
		{
			Symbol:          "BTCUSDT",
			Side:            "BUY",
			Quantity:        0.01,
			Price:           65050,
			QuoteQuantity:   650.5,
			Commission:      0.26,
			CommissionAsset: "USDT",
			RealizedPnl:     -0.26,
			OrderID:         9001,
			Time:            time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, TradesCSV(&buf, trades))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2024-06-01 12:30:00,BTCUSDT,BUY,0.0100,65050.0000,650.5000,0.26,USDT,-0.26,9001", lines[1])
}

func TestIncomeCSV(t *testing.T) {
	records := []model.IncomeRecord{
		{
			Symbol:        "BTCUSDT",
			IncomeType:    "FUNDING_FEE",
			Income:        -0.125,
			Asset:         "USDT",
			TransactionID: 777,
			TradeID:       "12345",
			Time:          time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, IncomeCSV(&buf, records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2024-06-01 08:00:00,BTCUSDT,FUNDING_FEE,-0.125,USDT,777,12345", lines[1])
}

func TestTradeStatsCSVSortedSymbols(t *testing.T) {
	stats := TradeStats{BySymbol: map[string]GroupStats{
		"ETHUSDT": {TradeCount: 1, Volume: 100, Commission: 0.1},
		"BTCUSDT": {TradeCount: 2, Volume: 300, Commission: 0.3},
	}}

	var buf bytes.Buffer
	require.NoError(t, TradeStatsCSV(&buf, stats))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	// 符号按字典序导出
	assert.True(t, strings.HasPrefix(lines[1], "BTCUSDT,2,"))
	assert.True(t, strings.HasPrefix(lines[2], "ETHUSDT,1,"))
}

func TestRenderPositionsTable(t *testing.T) {
	processor := NewProcessor("USDT")
	rows := processor.ProcessPositions([]model.Position{
		{Symbol: "BTCUSDT", Size: 0.5, EntryPrice: 100, MarkPrice: 110, UnrealizedPnl: 5, Leverage: 10},
	})

	var buf bytes.Buffer
	RenderPositionsTable(&buf, rows)

	out := buf.String()
	assert.Contains(t, out, "BTC/USDT")
	assert.Contains(t, out, "LONG")
	assert.Contains(t, out, "10x")
}
