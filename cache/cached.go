package cache

import (
	"context"
	"time"

	"github.com/terryso/binance-dashboard/model"
)

// Fetcher is the exchange call surface the cached layer sits in front of.
type Fetcher interface {
	AccountInfo(ctx context.Context) (model.AccountSummary, error)
	Positions(ctx context.Context) ([]model.Position, error)
	Trades(ctx context.Context, symbol string, limit int) ([]model.Trade, error)
	Income(ctx context.Context, symbol string, limit int) ([]model.IncomeRecord, error)
}

// CachedAPI memoizes the fetcher calls per logical dataset. Account data is
// refreshed every 30s by default, trade history every minute and income
// history every five minutes.
type CachedAPI struct {
	cache   *Cache
	fetcher Fetcher

	AccountTTL   time.Duration
	PositionsTTL time.Duration
	TradesTTL    time.Duration
	IncomeTTL    time.Duration
}

func NewCachedAPI(c *Cache, fetcher Fetcher) *CachedAPI {
	return &CachedAPI{
		cache:        c,
		fetcher:      fetcher,
		AccountTTL:   30 * time.Second,
		PositionsTTL: 30 * time.Second,
		TradesTTL:    time.Minute,
		IncomeTTL:    5 * time.Minute,
	}
}

func (a *CachedAPI) AccountInfo(ctx context.Context) (model.AccountSummary, error) {
	return getOrCompute(a.cache, "account_info", func() (model.AccountSummary, error) {
		return a.fetcher.AccountInfo(ctx)
	}, a.AccountTTL)
}

func (a *CachedAPI) Positions(ctx context.Context) ([]model.Position, error) {
	return getOrCompute(a.cache, "positions", func() ([]model.Position, error) {
		return a.fetcher.Positions(ctx)
	}, a.PositionsTTL)
}

func (a *CachedAPI) Trades(ctx context.Context, symbol string, limit int) ([]model.Trade, error) {
	name := "transaction_history"
	if symbol != "" {
		name += "_" + symbol
	}
	return getOrCompute(a.cache, name, func() ([]model.Trade, error) {
		return a.fetcher.Trades(ctx, symbol, limit)
	}, a.TradesTTL, symbol, limit)
}

func (a *CachedAPI) Income(ctx context.Context, symbol string, limit int) ([]model.IncomeRecord, error) {
	name := "income_history"
	if symbol != "" {
		name += "_" + symbol
	}
	return getOrCompute(a.cache, name, func() ([]model.IncomeRecord, error) {
		return a.fetcher.Income(ctx, symbol, limit)
	}, a.IncomeTTL, symbol, limit)
}

// Invalidate drops cached datasets by kind: "all", "account", "history" or a
// raw dataset name.
func (a *CachedAPI) Invalidate(kind string) {
	switch kind {
	case "all", "":
		a.cache.Clear()
	case "account":
		a.cache.Clear("account_info", "positions")
	case "history":
		a.cache.Clear("transaction_history", "income_history")
	default:
		a.cache.Clear(kind)
	}
}

func (a *CachedAPI) Stats() Stats {
	return a.cache.GetStats()
}

// getOrCompute keeps the typed producers out of the any-based cache contract.
func getOrCompute[T any](c *Cache, name string, producer func() (T, error), ttl time.Duration, args ...any) (T, error) {
	value, err := c.GetOrCompute(name, func() (any, error) {
		return producer()
	}, ttl, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		// 缓存键冲突时直接重新计算
		return producer()
	}
	return typed, nil
}
