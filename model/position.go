package model

import (
	"fmt"
	"time"

	"github.com/adshao/go-binance/v2/futures"

	"github.com/terryso/binance-dashboard/utils/calc"
)

const (
	SideLong  = "LONG"
	SideShort = "SHORT"
)

// Position is a snapshot of one open futures position. Size keeps the signed
// amount reported by the exchange, the sign decides long or short.
type Position struct {
	Symbol        string    `json:"symbol"`
	PositionSide  string    `json:"position_side"`
	Size          float64   `json:"size"`
	EntryPrice    float64   `json:"entry_price"`
	MarkPrice     float64   `json:"mark_price"`
	UnrealizedPnl float64   `json:"unrealized_pnl"`
	Leverage      float64   `json:"leverage"`
	MarginType    string    `json:"margin_type"`
	Notional      float64   `json:"notional"`
	UpdateTime    time.Time `json:"update_time"`
}

// PositionFromRisk shapes one entry of the position information endpoint.
func PositionFromRisk(raw *futures.PositionRisk) Position {
	if raw == nil {
		return Position{}
	}
	return Position{
		Symbol:        raw.Symbol,
		PositionSide:  raw.PositionSide,
		Size:          calc.SafeFloat(raw.PositionAmt, 0),
		EntryPrice:    calc.SafeFloat(raw.EntryPrice, 0),
		MarkPrice:     calc.SafeFloat(raw.MarkPrice, 0),
		UnrealizedPnl: calc.SafeFloat(raw.UnRealizedProfit, 0),
		Leverage:      calc.SafeFloat(raw.Leverage, 1),
		MarginType:    raw.MarginType,
		Notional:      calc.SafeFloat(raw.Notional, 0),
		UpdateTime:    time.Now(),
	}
}

// PositionFromAccount shapes one position row of the account endpoint.
// The account endpoint carries no mark price, MarkPrice stays 0.
func PositionFromAccount(raw *futures.AccountPosition) Position {
	if raw == nil {
		return Position{}
	}
	marginType := "cross"
	if raw.Isolated {
		marginType = "isolated"
	}
	return Position{
		Symbol:        raw.Symbol,
		PositionSide:  string(raw.PositionSide),
		Size:          calc.SafeFloat(raw.PositionAmt, 0),
		EntryPrice:    calc.SafeFloat(raw.EntryPrice, 0),
		UnrealizedPnl: calc.SafeFloat(raw.UnrealizedProfit, 0),
		Leverage:      calc.SafeFloat(raw.Leverage, 1),
		MarginType:    marginType,
		Notional:      calc.SafeFloat(raw.Notional, 0),
		UpdateTime:    time.Now(),
	}
}

func (p Position) IsLong() bool {
	return p.Size > 0
}

func (p Position) IsShort() bool {
	return p.Size < 0
}

// Side 根据持仓数量符号判断方向
func (p Position) Side() string {
	if p.Size > 0 {
		return SideLong
	}
	return SideShort
}

// PnlPercentage is the mark-to-entry move in percent, sign flipped for shorts
// and defined as 0 when the entry price is 0.
func (p Position) PnlPercentage() float64 {
	return calc.PnlPercent(p.EntryPrice, p.MarkPrice, p.Size)
}

func (p Position) String() string {
	return fmt.Sprintf("Symbol: %s | Side: %s | Size: %v, Entry: %v, Mark: %v, Pnl: %v",
		p.Symbol,
		p.Side(),
		p.Size,
		p.EntryPrice,
		p.MarkPrice,
		p.UnrealizedPnl,
	)
}
