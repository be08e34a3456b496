package model

import (
	"time"

	"github.com/adshao/go-binance/v2/futures"

	"github.com/terryso/binance-dashboard/utils/calc"
)

// IncomeRecord is one income history entry (funding fee, commission,
// realized pnl, transfer and so on).
type IncomeRecord struct {
	Symbol        string    `json:"symbol"`
	IncomeType    string    `json:"income_type"`
	Income        float64   `json:"income"`
	Asset         string    `json:"asset"`
	TransactionID int64     `json:"transaction_id"`
	TradeID       string    `json:"trade_id"`
	Time          time.Time `json:"time"`
}

// IncomeFromFutures shapes one income entry, malformed numbers become 0.
func IncomeFromFutures(raw *futures.IncomeHistory) IncomeRecord {
	if raw == nil {
		return IncomeRecord{}
	}
	return IncomeRecord{
		Symbol:        raw.Symbol,
		IncomeType:    raw.IncomeType,
		Income:        calc.SafeFloat(raw.Income, 0),
		Asset:         raw.Asset,
		TransactionID: raw.TranID,
		TradeID:       raw.TradeID,
		Time:          time.Unix(0, raw.Time*int64(time.Millisecond)),
	}
}
