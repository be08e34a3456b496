package validates

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/terryso/binance-dashboard/utils/validate"
)

func TestHistoryQueryValidation(t *testing.T) {
	assert.NoError(t, validate.New(HistoryQuery{Symbol: "BTCUSDT", Limit: 100}, historyFieldTrans()))
	assert.NoError(t, validate.New(HistoryQuery{Symbol: "", Limit: 1}, historyFieldTrans()))

	err := validate.New(HistoryQuery{Symbol: "BTC-USDT", Limit: 100}, historyFieldTrans())
	assert.EqualError(t, err, "symbol must be alphanumeric")

	err = validate.New(HistoryQuery{Symbol: "BTC", Limit: 100}, historyFieldTrans())
	assert.EqualError(t, err, "symbol too short")

	err = validate.New(HistoryQuery{Limit: 0}, historyFieldTrans())
	assert.EqualError(t, err, "limit must be at least 1")

	err = validate.New(HistoryQuery{Limit: 5000}, historyFieldTrans())
	assert.EqualError(t, err, "limit must be at most 1000")
}
