package model

import (
	"time"

	"github.com/adshao/go-binance/v2/futures"

	"github.com/terryso/binance-dashboard/utils/calc"
)

// Asset is one wallet asset row of the futures account.
type Asset struct {
	Symbol           string    `json:"symbol"`
	WalletBalance    float64   `json:"wallet_balance"`
	UnrealizedPnl    float64   `json:"unrealized_pnl"`
	MarginBalance    float64   `json:"margin_balance"`
	MaintMargin      float64   `json:"maint_margin"`
	InitialMargin    float64   `json:"initial_margin"`
	AvailableBalance float64   `json:"available_balance"`
	MarginAvailable  bool      `json:"margin_available"`
	UpdateTime       time.Time `json:"update_time"`
}

// AssetFromFutures shapes one account asset, malformed numbers become 0.
func AssetFromFutures(raw *futures.AccountAsset) Asset {
	if raw == nil {
		return Asset{}
	}
	return Asset{
		Symbol:           raw.Asset,
		WalletBalance:    calc.SafeFloat(raw.WalletBalance, 0),
		UnrealizedPnl:    calc.SafeFloat(raw.UnrealizedProfit, 0),
		MarginBalance:    calc.SafeFloat(raw.MarginBalance, 0),
		MaintMargin:      calc.SafeFloat(raw.MaintMargin, 0),
		InitialMargin:    calc.SafeFloat(raw.InitialMargin, 0),
		AvailableBalance: calc.SafeFloat(raw.AvailableBalance, 0),
		MarginAvailable:  raw.MarginAvailable,
		UpdateTime:       time.Now(),
	}
}

// AccountSummary is a full account snapshot. It is rebuilt on every refresh
// and never mutated afterwards.
type AccountSummary struct {
	TotalBalance       float64    `json:"total_balance"`
	TotalUnrealizedPnl float64    `json:"total_unrealized_pnl"`
	TotalWalletBalance float64    `json:"total_wallet_balance"`
	AvailableBalance   float64    `json:"available_balance"`
	MarginBalance      float64    `json:"margin_balance"`
	Assets             []Asset    `json:"assets"`
	Positions          []Position `json:"positions"`
	UpdateTime         time.Time  `json:"update_time"`
}

// AccountSummaryFromFutures shapes the whole account response. Positions with
// zero size are dropped, TotalBalance sums the positive wallet balances.
func AccountSummaryFromFutures(raw *futures.Account) AccountSummary {
	if raw == nil {
		return AccountSummary{Assets: []Asset{}, Positions: []Position{}}
	}

	totalBalance := 0.0
	assets := make([]Asset, 0, len(raw.Assets))
	for _, a := range raw.Assets {
		asset := AssetFromFutures(a)
		if asset.WalletBalance > 0 {
			totalBalance += asset.WalletBalance
		}
		assets = append(assets, asset)
	}

	positions := make([]Position, 0)
	for _, p := range raw.Positions {
		if p == nil || calc.Abs(calc.SafeFloat(p.PositionAmt, 0)) == 0 {
			continue
		}
		positions = append(positions, PositionFromAccount(p))
	}

	return AccountSummary{
		TotalBalance:       totalBalance,
		TotalUnrealizedPnl: calc.SafeFloat(raw.TotalUnrealizedProfit, 0),
		TotalWalletBalance: calc.SafeFloat(raw.TotalWalletBalance, 0),
		AvailableBalance:   calc.SafeFloat(raw.AvailableBalance, 0),
		MarginBalance:      calc.SafeFloat(raw.TotalMarginBalance, 0),
		Assets:             assets,
		Positions:          positions,
		UpdateTime:         time.Now(),
	}
}

// ActivePositionsCount 当前持仓数量
func (s AccountSummary) ActivePositionsCount() int {
	return len(s.Positions)
}

// TotalNotionalValue sums the signed notional across open positions.
func (s AccountSummary) TotalNotionalValue() float64 {
	total := 0.0
	for _, p := range s.Positions {
		total += p.Notional
	}
	return total
}
