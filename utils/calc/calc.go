package calc

import "strconv"

func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func Abs(a float64) float64 {
	if a < 0 {
		return -a
	}
	return a
}

// SafeFloat parses binance numeric strings, empty or malformed values fall back to def
func SafeFloat(value string, def float64) float64 {
	if value == "" {
		return def
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return f
}

// SafeInt parses integer strings, empty or malformed values fall back to def
func SafeInt(value string, def int64) int64 {
	if value == "" {
		return def
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return def
	}
	return i
}

// PnlPercent 计算仓位盈亏百分比, entryPrice为0时返回0
func PnlPercent(entryPrice, markPrice, size float64) float64 {
	if entryPrice == 0 {
		return 0
	}
	percent := (markPrice - entryPrice) / entryPrice * 100
	if size < 0 {
		percent = -percent
	}
	return percent
}

// LeverageUsage 计算杠杆使用率, balance为0时返回0
func LeverageUsage(totalExposure, totalBalance float64) float64 {
	if totalBalance == 0 {
		return 0
	}
	return totalExposure / totalBalance
}

// BalancePnlPercent pnl as percent of the pre-pnl balance, 0 when the
// balance or the pre-pnl balance is 0
func BalancePnlPercent(unrealizedPnl, totalBalance float64) float64 {
	base := totalBalance - unrealizedPnl
	if totalBalance == 0 || base == 0 {
		return 0
	}
	return unrealizedPnl / base * 100
}
