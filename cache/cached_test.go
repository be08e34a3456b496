package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/terryso/binance-dashboard/model"
)

type stubFetcher struct {
	accountCalls int
	tradeCalls   int
	incomeCalls  int
}

func (s *stubFetcher) AccountInfo(_ context.Context) (model.AccountSummary, error) {
	s.accountCalls++
	return model.AccountSummary{TotalBalance: 1000}, nil
}

func (s *stubFetcher) Positions(_ context.Context) ([]model.Position, error) {
	return []model.Position{{Symbol: "BTCUSDT", Size: 0.5}}, nil
}

func (s *stubFetcher) Trades(_ context.Context, symbol string, limit int) ([]model.Trade, error) {
	s.tradeCalls++
	return []model.Trade{{Symbol: symbol, ID: int64(limit)}}, nil
}

func (s *stubFetcher) Income(_ context.Context, symbol string, _ int) ([]model.IncomeRecord, error) {
	s.incomeCalls++
	return []model.IncomeRecord{{Symbol: symbol, IncomeType: "FUNDING_FEE"}}, nil
}

func TestCachedAPIMemoizesAccountInfo(t *testing.T) {
	fetcher := &stubFetcher{}
	api := NewCachedAPI(New(time.Minute), fetcher)

	first, err := api.AccountInfo(context.Background())
	require.NoError(t, err)
	second, err := api.AccountInfo(context.Background())
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, fetcher.accountCalls)
}

func TestCachedAPITradesKeyedBySymbolAndLimit(t *testing.T) {
	fetcher := &stubFetcher{}
	api := NewCachedAPI(New(time.Minute), fetcher)
	ctx := context.Background()

	btc, err := api.Trades(ctx, "BTCUSDT", 100)
	require.NoError(t, err)
	eth, err := api.Trades(ctx, "ETHUSDT", 100)
	require.NoError(t, err)
	require.Equal(t, 2, fetcher.tradeCalls)
	require.Equal(t, "BTCUSDT", btc[0].Symbol)
	require.Equal(t, "ETHUSDT", eth[0].Symbol)

	_, err = api.Trades(ctx, "BTCUSDT", 100)
	require.NoError(t, err)
	require.Equal(t, 2, fetcher.tradeCalls)

	// 不同limit视为不同数据集
	_, err = api.Trades(ctx, "BTCUSDT", 500)
	require.NoError(t, err)
	require.Equal(t, 3, fetcher.tradeCalls)
}

func TestCachedAPIInvalidateKinds(t *testing.T) {
	fetcher := &stubFetcher{}
	api := NewCachedAPI(New(time.Minute), fetcher)
	ctx := context.Background()

	_, err := api.AccountInfo(ctx)
	require.NoError(t, err)
	_, err = api.Trades(ctx, "BTCUSDT", 100)
	require.NoError(t, err)
	_, err = api.Income(ctx, "", 100)
	require.NoError(t, err)

	api.Invalidate("history")
	_, err = api.Trades(ctx, "BTCUSDT", 100)
	require.NoError(t, err)
	_, err = api.Income(ctx, "", 100)
	require.NoError(t, err)
	require.Equal(t, 2, fetcher.tradeCalls)
	require.Equal(t, 2, fetcher.incomeCalls)
	require.Equal(t, 1, fetcher.accountCalls)

	api.Invalidate("account")
	_, err = api.AccountInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, fetcher.accountCalls)

	api.Invalidate("all")
	require.Equal(t, 0, api.Stats().TotalEntries)
}
