package model

import (
	"time"

	"github.com/adshao/go-binance/v2/futures"

	"github.com/terryso/binance-dashboard/utils/calc"
)

// Trade is one exchange-reported fill.
//
// RealizedPnl is an approximation: proper per-fill realized pnl needs the
// open/close lineage of the position across fills, which the dashboard does
// not track. Until it does, the negated commission is reported instead.
type Trade struct {
	ID              int64     `json:"id"`
	Symbol          string    `json:"symbol"`
	Side            string    `json:"side"`
	Quantity        float64   `json:"quantity"`
	QuoteQuantity   float64   `json:"quote_quantity"`
	Price           float64   `json:"price"`
	Commission      float64   `json:"commission"`
	CommissionAsset string    `json:"commission_asset"`
	OrderID         int64     `json:"order_id"`
	RealizedPnl     float64   `json:"realized_pnl"`
	Time            time.Time `json:"time"`
}

// TradeFromFutures shapes one account trade, malformed numbers become 0.
func TradeFromFutures(raw *futures.AccountTrade) Trade {
	if raw == nil {
		return Trade{}
	}
	commission := calc.SafeFloat(raw.Commission, 0)
	return Trade{
		ID:              raw.ID,
		Symbol:          raw.Symbol,
		Side:            string(raw.Side),
		Quantity:        calc.SafeFloat(raw.Quantity, 0),
		QuoteQuantity:   calc.SafeFloat(raw.QuoteQuantity, 0),
		Price:           calc.SafeFloat(raw.Price, 0),
		Commission:      commission,
		CommissionAsset: raw.CommissionAsset,
		OrderID:         raw.OrderID,
		RealizedPnl:     -commission,
		Time:            time.Unix(0, raw.Time*int64(time.Millisecond)),
	}
}
