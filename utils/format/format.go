package format

import (
	"fmt"
	"strings"
	"time"
)

// Currency renders an amount with magnitude suffixes, eg. -$1.20K USDT
func Currency(amount float64, currency string) string {
	if currency == "" {
		currency = "USDT"
	}
	if amount == 0 {
		return fmt.Sprintf("$0.00 %s", currency)
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	var formatted string
	switch {
	case amount >= 1e9:
		formatted = fmt.Sprintf("%.2fB", amount/1e9)
	case amount >= 1e6:
		formatted = fmt.Sprintf("%.2fM", amount/1e6)
	case amount >= 1e3:
		formatted = fmt.Sprintf("%.2fK", amount/1e3)
	default:
		formatted = fmt.Sprintf("%.2f", amount)
	}

	return fmt.Sprintf("%s$%s %s", sign, formatted, currency)
}

// Percentage renders a signed percentage, positive values get an explicit plus
func Percentage(value float64) string {
	if value == 0 {
		return "0.00%"
	}
	if value > 0 {
		return fmt.Sprintf("+%.2f%%", value)
	}
	return fmt.Sprintf("%.2f%%", value)
}

// PnlColor maps a pnl value to the display color tag
func PnlColor(pnl float64) string {
	switch {
	case pnl > 0:
		return "green"
	case pnl < 0:
		return "red"
	default:
		return "gray"
	}
}

// Symbol inserts a slash before the quote asset, BTCUSDT -> BTC/USDT
func Symbol(symbol string) string {
	if !strings.Contains(symbol, "/") && strings.HasSuffix(symbol, "USDT") && len(symbol) > 4 {
		return symbol[:len(symbol)-4] + "/USDT"
	}
	return symbol
}

// TimeAgo renders a rough human readable age for a timestamp
func TimeAgo(ts time.Time) string {
	diff := time.Since(ts)
	switch {
	case diff >= 24*time.Hour:
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	case diff >= time.Hour:
		hours := int(diff.Hours())
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case diff >= time.Minute:
		minutes := int(diff.Minutes())
		return fmt.Sprintf("%d minute%s ago", minutes, plural(minutes))
	default:
		return "Just now"
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

type LeverageRisk struct {
	Level    string  `json:"level"`
	Color    string  `json:"color"`
	Score    int     `json:"score"`
	Leverage float64 `json:"leverage"`
}

// LeverageRiskScore 按杠杆倍数划分风险等级
func LeverageRiskScore(leverage float64) LeverageRisk {
	risk := LeverageRisk{Leverage: leverage}
	switch {
	case leverage <= 2:
		risk.Level, risk.Color, risk.Score = "Low", "green", 1
	case leverage <= 5:
		risk.Level, risk.Color, risk.Score = "Medium", "orange", 2
	case leverage <= 10:
		risk.Level, risk.Color, risk.Score = "High", "red", 3
	default:
		risk.Level, risk.Color, risk.Score = "Very High", "darkred", 4
	}
	return risk
}
