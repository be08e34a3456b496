package service

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/terryso/binance-dashboard/model"
	"github.com/terryso/binance-dashboard/utils/calc"
	"github.com/terryso/binance-dashboard/utils/format"
)

const recentIncomeLimit = 10

// annualization factor for the sharpe-like ratio over per-trade returns
var sharpeScale = math.Sqrt(365)

// Processor turns shaped records into display-ready aggregates. It is
// stateless, every method is deterministic given its input.
type Processor struct {
	Currency string
}

func NewProcessor(currency string) *Processor {
	if currency == "" {
		currency = "USDT"
	}
	return &Processor{Currency: currency}
}

type AssetRow struct {
	Symbol           string  `json:"symbol"`
	Balance          float64 `json:"balance"`
	FormattedBalance string  `json:"formatted_balance"`
	UnrealizedPnl    float64 `json:"unrealized_pnl"`
	FormattedPnl     string  `json:"formatted_pnl"`
	AvailableBalance float64 `json:"available_balance"`
	MarginBalance    float64 `json:"margin_balance"`
}

type PositionsDigest struct {
	TotalNotional      float64 `json:"total_notional"`
	TotalUnrealizedPnl float64 `json:"total_unrealized_pnl"`
	LongPositions      int     `json:"long_positions"`
	ShortPositions     int     `json:"short_positions"`
	AvgLeverage        float64 `json:"avg_leverage"`
}

type AccountOverview struct {
	TotalBalance       float64         `json:"total_balance"`
	AvailableBalance   float64         `json:"available_balance"`
	TotalPnl           float64         `json:"total_pnl"`
	PnlPercentage      float64         `json:"pnl_percentage"`
	MarginBalance      float64         `json:"margin_balance"`
	ActivePositions    int             `json:"active_positions"`
	TotalExposure      float64         `json:"total_exposure"`
	LeverageUsage      float64         `json:"leverage_usage"`
	UsdtBalance        float64         `json:"usdt_balance"`
	OtherAssetsBalance float64         `json:"other_assets_balance"`
	UpdateTime         time.Time       `json:"update_time"`
	Assets             []AssetRow      `json:"assets"`
	PositionsSummary   PositionsDigest `json:"positions_summary"`
}

// AccountOverview aggregates an account snapshot for the dashboard header.
// All degenerate divisions are defined as 0.
func (p *Processor) AccountOverview(summary model.AccountSummary) AccountOverview {
	totalExposure := lo.SumBy(summary.Positions, func(pos model.Position) float64 {
		return calc.Abs(pos.Notional)
	})

	usdtBalance := 0.0
	otherAssets := 0.0
	for _, asset := range summary.Assets {
		if asset.Symbol == "USDT" {
			usdtBalance = asset.WalletBalance
		} else {
			otherAssets += asset.WalletBalance
		}
	}

	return AccountOverview{
		TotalBalance:       summary.TotalBalance,
		AvailableBalance:   summary.AvailableBalance,
		TotalPnl:           summary.TotalUnrealizedPnl,
		PnlPercentage:      calc.BalancePnlPercent(summary.TotalUnrealizedPnl, summary.TotalBalance),
		MarginBalance:      summary.MarginBalance,
		ActivePositions:    summary.ActivePositionsCount(),
		TotalExposure:      totalExposure,
		LeverageUsage:      calc.LeverageUsage(totalExposure, summary.TotalBalance),
		UsdtBalance:        usdtBalance,
		OtherAssetsBalance: otherAssets,
		UpdateTime:         summary.UpdateTime,
		Assets:             p.processAssets(summary.Assets),
		PositionsSummary:   p.summarizePositions(summary.Positions),
	}
}

// processAssets keeps only assets with balance and attaches display strings.
func (p *Processor) processAssets(assets []model.Asset) []AssetRow {
	rows := make([]AssetRow, 0, len(assets))
	for _, asset := range assets {
		if asset.WalletBalance <= 0 {
			continue
		}
		rows = append(rows, AssetRow{
			Symbol:           asset.Symbol,
			Balance:          asset.WalletBalance,
			FormattedBalance: format.Currency(asset.WalletBalance, asset.Symbol),
			UnrealizedPnl:    asset.UnrealizedPnl,
			FormattedPnl:     format.Currency(asset.UnrealizedPnl, p.Currency),
			AvailableBalance: asset.AvailableBalance,
			MarginBalance:    asset.MarginBalance,
		})
	}
	return rows
}

func (p *Processor) summarizePositions(positions []model.Position) PositionsDigest {
	if len(positions) == 0 {
		return PositionsDigest{AvgLeverage: 1.0}
	}

	digest := PositionsDigest{}
	for _, pos := range positions {
		digest.TotalNotional += calc.Abs(pos.Notional)
		digest.TotalUnrealizedPnl += pos.UnrealizedPnl
		if pos.IsLong() {
			digest.LongPositions++
		}
		if pos.IsShort() {
			digest.ShortPositions++
		}
		digest.AvgLeverage += pos.Leverage
	}
	digest.AvgLeverage /= float64(len(positions))
	return digest
}

type ProcessedPosition struct {
	Symbol              string              `json:"symbol"`
	FormattedSymbol     string              `json:"formatted_symbol"`
	Side                string              `json:"side"`
	Size                float64             `json:"size"`
	FormattedSize       string              `json:"formatted_size"`
	EntryPrice          float64             `json:"entry_price"`
	FormattedEntryPrice string              `json:"formatted_entry_price"`
	MarkPrice           float64             `json:"mark_price"`
	FormattedMarkPrice  string              `json:"formatted_mark_price"`
	UnrealizedPnl       float64             `json:"unrealized_pnl"`
	FormattedPnl        string              `json:"formatted_pnl"`
	PnlPercentage       float64             `json:"pnl_percentage"`
	FormattedPercentage string              `json:"formatted_percentage"`
	Leverage            float64             `json:"leverage"`
	LeverageRisk        format.LeverageRisk `json:"leverage_risk"`
	Notional            float64             `json:"notional"`
	FormattedNotional   string              `json:"formatted_notional"`
	MarginType          string              `json:"margin_type"`
	PnlColor            string              `json:"pnl_color"`
}

// ProcessPositions builds the display rows, sorted descending by absolute
// unrealized pnl so the largest winners and losers surface first.
func (p *Processor) ProcessPositions(positions []model.Position) []ProcessedPosition {
	rows := lo.Map(positions, func(pos model.Position, _ int) ProcessedPosition {
		return p.processPosition(pos)
	})

	sort.SliceStable(rows, func(i, j int) bool {
		return calc.Abs(rows[i].UnrealizedPnl) > calc.Abs(rows[j].UnrealizedPnl)
	})
	return rows
}

func (p *Processor) processPosition(pos model.Position) ProcessedPosition {
	pnlPercentage := pos.PnlPercentage()
	return ProcessedPosition{
		Symbol:              pos.Symbol,
		FormattedSymbol:     format.Symbol(pos.Symbol),
		Side:                pos.Side(),
		Size:                calc.Abs(pos.Size),
		FormattedSize:       fmtFloat(calc.Abs(pos.Size)),
		EntryPrice:          pos.EntryPrice,
		FormattedEntryPrice: fmtFloat(pos.EntryPrice),
		MarkPrice:           pos.MarkPrice,
		FormattedMarkPrice:  fmtFloat(pos.MarkPrice),
		UnrealizedPnl:       pos.UnrealizedPnl,
		FormattedPnl:        format.Currency(pos.UnrealizedPnl, p.Currency),
		PnlPercentage:       pnlPercentage,
		FormattedPercentage: format.Percentage(pnlPercentage),
		Leverage:            pos.Leverage,
		LeverageRisk:        format.LeverageRiskScore(pos.Leverage),
		Notional:            calc.Abs(pos.Notional),
		FormattedNotional:   format.Currency(calc.Abs(pos.Notional), p.Currency),
		MarginType:          pos.MarginType,
		PnlColor:            format.PnlColor(pos.UnrealizedPnl),
	}
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

type GroupStats struct {
	TradeCount int     `json:"trade_count"`
	Volume     float64 `json:"volume"`
	Commission float64 `json:"commission"`
}

type TradeStats struct {
	TotalTrades     int                   `json:"total_trades"`
	TotalVolume     float64               `json:"total_volume"`
	TotalCommission float64               `json:"total_commission"`
	AvgTradeSize    float64               `json:"avg_trade_size"`
	BySymbol        map[string]GroupStats `json:"trades_by_symbol"`
	ByDay           map[string]GroupStats `json:"trades_by_day"`
}

// TradeStats rolls a trade collection up into totals plus per-symbol and
// per-day groups. Empty input yields the zero summary, never nil maps.
func (p *Processor) TradeStats(trades []model.Trade) TradeStats {
	stats := TradeStats{
		BySymbol: map[string]GroupStats{},
		ByDay:    map[string]GroupStats{},
	}
	if len(trades) == 0 {
		return stats
	}

	stats.TotalTrades = len(trades)
	stats.TotalVolume = lo.SumBy(trades, func(t model.Trade) float64 { return t.QuoteQuantity })
	stats.TotalCommission = lo.SumBy(trades, func(t model.Trade) float64 { return t.Commission })
	stats.AvgTradeSize = lo.SumBy(trades, func(t model.Trade) float64 { return t.Quantity }) / float64(len(trades))

	for symbol, group := range lo.GroupBy(trades, func(t model.Trade) string { return t.Symbol }) {
		stats.BySymbol[symbol] = groupTrades(group)
	}
	for day, group := range lo.GroupBy(trades, func(t model.Trade) string { return t.Time.UTC().Format("2006-01-02") }) {
		stats.ByDay[day] = groupTrades(group)
	}
	return stats
}

func groupTrades(trades []model.Trade) GroupStats {
	return GroupStats{
		TradeCount: len(trades),
		Volume:     lo.SumBy(trades, func(t model.Trade) float64 { return t.QuoteQuantity }),
		Commission: lo.SumBy(trades, func(t model.Trade) float64 { return t.Commission }),
	}
}

type IncomeStats struct {
	TotalIncome float64              `json:"total_income"`
	ByType      map[string]float64   `json:"income_by_type"`
	ByDay       map[string]float64   `json:"income_by_day"`
	Recent      []model.IncomeRecord `json:"recent_income"`
}

// IncomeStats sums income by type and by day and keeps the ten most recent
// records ordered newest first.
func (p *Processor) IncomeStats(records []model.IncomeRecord) IncomeStats {
	stats := IncomeStats{
		ByType: map[string]float64{},
		ByDay:  map[string]float64{},
		Recent: []model.IncomeRecord{},
	}
	if len(records) == 0 {
		return stats
	}

	for _, record := range records {
		stats.TotalIncome += record.Income
		stats.ByType[record.IncomeType] += record.Income
		stats.ByDay[record.Time.UTC().Format("2006-01-02")] += record.Income
	}

	recent := make([]model.IncomeRecord, len(records))
	copy(recent, records)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Time.After(recent[j].Time)
	})
	if len(recent) > recentIncomeLimit {
		recent = recent[:recentIncomeLimit]
	}
	stats.Recent = recent
	return stats
}

type PerformanceMetrics struct {
	SharpeRatio  float64 `json:"sharpe_ratio"`
	MaxDrawdown  float64 `json:"max_drawdown"`
	WinRate      float64 `json:"win_rate"`
	ProfitFactor float64 `json:"profit_factor"`
	AvgWin       float64 `json:"avg_win"`
	AvgLoss      float64 `json:"avg_loss"`
	LargestWin   float64 `json:"largest_win"`
	LargestLoss  float64 `json:"largest_loss"`
}

// MarshalJSON renders a non-finite profit factor as null, JSON has no Inf.
func (m PerformanceMetrics) MarshalJSON() ([]byte, error) {
	type alias PerformanceMetrics
	out := struct {
		alias
		ProfitFactor any `json:"profit_factor"`
	}{alias: alias(m), ProfitFactor: m.ProfitFactor}
	if math.IsInf(m.ProfitFactor, 0) || math.IsNaN(m.ProfitFactor) {
		out.ProfitFactor = nil
	}
	return json.Marshal(out)
}

// PerformanceMetrics computes win/loss statistics over the per-trade
// realized pnl. The realized pnl itself is the commission approximation
// carried on Trade, so these figures inherit it.
func (p *Processor) PerformanceMetrics(trades []model.Trade) PerformanceMetrics {
	metrics := PerformanceMetrics{}

	returns := lo.FilterMap(trades, func(t model.Trade, _ int) (float64, bool) {
		return t.RealizedPnl, t.RealizedPnl != 0
	})
	if len(returns) == 0 {
		return metrics
	}

	wins := lo.Filter(returns, func(r float64, _ int) bool { return r > 0 })
	losses := lo.Filter(returns, func(r float64, _ int) bool { return r < 0 })

	metrics.WinRate = float64(len(wins)) / float64(len(returns)) * 100

	if len(wins) > 0 {
		metrics.AvgWin = stat.Mean(wins, nil)
		metrics.LargestWin = lo.Max(wins)
	}
	if len(losses) > 0 {
		metrics.AvgLoss = stat.Mean(losses, nil)
		metrics.LargestLoss = lo.Min(losses)
	}

	totalWins := lo.Sum(wins)
	totalLosses := calc.Abs(lo.Sum(losses))
	if totalLosses > 0 {
		metrics.ProfitFactor = totalWins / totalLosses
	} else {
		metrics.ProfitFactor = math.Inf(1)
	}

	metrics.MaxDrawdown = maxDrawdown(returns)

	if len(returns) > 1 {
		mean := stat.Mean(returns, nil)
		stddev := stat.StdDev(returns, nil)
		if stddev > 0 {
			metrics.SharpeRatio = mean / stddev * sharpeScale
		}
	}

	return metrics
}

// maxDrawdown is the largest peak-to-trough fall of the cumulative pnl
// curve. The curve accumulates returns in fill order, so the input must
// keep the order the exchange reported.
func maxDrawdown(returns []float64) float64 {
	cumulative := 0.0
	peak := 0.0
	drawdown := 0.0
	for _, r := range returns {
		cumulative += r
		peak = calc.Max(peak, cumulative)
		drawdown = calc.Max(drawdown, peak-cumulative)
	}
	return drawdown
}
