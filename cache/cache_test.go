package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyDerivation(t *testing.T) {
	c := New(time.Minute)

	require.Equal(t, "binance_dashboard_account_info", c.Key("account_info"))

	withArgs := c.Key("transaction_history", "BTCUSDT", 100)
	reversed := c.Key("transaction_history", 100, "BTCUSDT")
	require.Equal(t, withArgs, reversed)
	require.NotEqual(t, c.Key("transaction_history"), withArgs)

	// 8位指纹
	require.Len(t, withArgs, len("binance_dashboard_transaction_history_")+8)

	require.NotEqual(t, c.Key("transaction_history", "BTCUSDT", 100), c.Key("transaction_history", "ETHUSDT", 100))
}

func TestGetReturnsFreshValue(t *testing.T) {
	c := New(time.Minute)
	key := c.Key("positions")

	c.Set(key, "payload", time.Minute)

	value, ok := c.Get(key)
	require.True(t, ok)
	require.Equal(t, "payload", value)
}

func TestGetEvictsExpiredEntry(t *testing.T) {
	c := New(time.Minute)
	key := c.Key("positions")

	c.Set(key, "payload", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	value, ok := c.Get(key)
	require.False(t, ok)
	require.Nil(t, value)

	// 读取后条目被删除
	require.Equal(t, 0, c.GetStats().TotalEntries)
}

func TestSetOverwritesUnconditionally(t *testing.T) {
	c := New(time.Minute)
	key := c.Key("account_info")

	c.Set(key, "old", time.Minute)
	c.Set(key, "new", time.Minute)

	value, ok := c.Get(key)
	require.True(t, ok)
	require.Equal(t, "new", value)
	require.Equal(t, 1, c.GetStats().TotalEntries)
}

func TestIsExpiredTreatsAbsenceAsExpiry(t *testing.T) {
	c := New(time.Minute)

	require.True(t, c.IsExpired(c.Key("missing")))

	c.Set(c.Key("present"), 1, time.Minute)
	require.False(t, c.IsExpired(c.Key("present")))

	c.Set(c.Key("stale"), 1, 5*time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	require.True(t, c.IsExpired(c.Key("stale")))
}

func TestGetOrComputeSkipsProducerWhenFresh(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	producer := func() (any, error) {
		calls++
		return calls, nil
	}

	first, err := c.GetOrCompute("account_info", producer, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 1, first)

	second, err := c.GetOrCompute("account_info", producer, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 1, second)
	require.Equal(t, 1, calls)
}

func TestGetOrComputeRecomputesWhenStale(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	producer := func() (any, error) {
		calls++
		return calls, nil
	}

	_, err := c.GetOrCompute("positions", producer, 10*time.Millisecond)
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)

	value, err := c.GetOrCompute("positions", producer, 10*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, 2, value)
	require.Equal(t, 2, calls)
}

func TestGetOrComputeChecksArgumentQualifiedKey(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	producer := func() (any, error) {
		calls++
		return calls, nil
	}

	// 不同参数属于不同条目, 互不影响新鲜度
	btc, err := c.GetOrCompute("transaction_history", producer, time.Minute, "BTCUSDT", 100)
	require.NoError(t, err)
	eth, err := c.GetOrCompute("transaction_history", producer, time.Minute, "ETHUSDT", 100)
	require.NoError(t, err)
	require.NotEqual(t, btc, eth)
	require.Equal(t, 2, calls)

	again, err := c.GetOrCompute("transaction_history", producer, time.Minute, 100, "BTCUSDT")
	require.NoError(t, err)
	require.Equal(t, btc, again)
	require.Equal(t, 2, calls)
}

func TestGetOrComputeErrorPropagatesAndCachesNothing(t *testing.T) {
	c := New(time.Minute)
	wantErr := errors.New("binance api error: too many requests")
	calls := 0
	producer := func() (any, error) {
		calls++
		return nil, wantErr
	}

	_, err := c.GetOrCompute("account_info", producer, time.Minute)
	require.ErrorIs(t, err, wantErr)
	require.Equal(t, 0, c.GetStats().TotalEntries)

	_, err = c.GetOrCompute("account_info", producer, time.Minute)
	require.ErrorIs(t, err, wantErr)
	require.Equal(t, 2, calls)
}

func TestClearSingleNameIncludesQualifiedVariants(t *testing.T) {
	c := New(time.Minute)

	c.Set(c.Key("transaction_history"), 1, time.Minute)
	c.Set(c.Key("transaction_history", "BTCUSDT", 100), 2, time.Minute)
	c.Set(c.Key("income_history"), 3, time.Minute)

	c.Clear("transaction_history")

	require.True(t, c.IsExpired(c.Key("transaction_history")))
	require.True(t, c.IsExpired(c.Key("transaction_history", "BTCUSDT", 100)))
	require.False(t, c.IsExpired(c.Key("income_history")))
}

func TestClearAll(t *testing.T) {
	c := New(time.Minute)

	c.Set(c.Key("a"), 1, time.Minute)
	c.Set(c.Key("b"), 2, time.Minute)

	c.Clear()
	require.Equal(t, 0, c.GetStats().TotalEntries)
}

func TestStatsCountsExpiredWithoutEvicting(t *testing.T) {
	c := New(time.Minute)

	c.Set(c.Key("fresh"), "x", time.Minute)
	c.Set(c.Key("stale"), "y", 5*time.Millisecond)
	time.Sleep(10 * time.Millisecond)

	stats := c.GetStats()
	assert.Equal(t, 2, stats.TotalEntries)
	assert.Equal(t, 1, stats.ExpiredEntries)
	assert.Equal(t, 1, stats.ValidEntries)
	assert.Greater(t, stats.SizeBytes, int64(0))

	// 统计不触发淘汰
	require.Equal(t, 2, c.GetStats().TotalEntries)
}

func TestDefaultTTLAppliedOnNonPositiveTTL(t *testing.T) {
	c := New(50 * time.Millisecond)
	key := c.Key("positions")

	c.Set(key, "payload", 0)
	_, ok := c.Get(key)
	require.True(t, ok)

	time.Sleep(60 * time.Millisecond)
	_, ok = c.Get(key)
	require.False(t, ok)
}
