package validates

import (
	"github.com/kataras/iris/v12"

	"github.com/terryso/binance-dashboard/utils/validate"
)

type HistoryQuery struct {
	Symbol string `validate:"omitempty,alphanum,min=4,max=20"`
	Limit  int    `validate:"min=1,max=1000"`
}

// 自定义错误消息
func historyFieldTrans() map[string]string {
	return map[string]string{
		"Symbol.alphanum": "symbol must be alphanumeric",
		"Symbol.min":      "symbol too short",
		"Symbol.max":      "symbol too long",
		"Limit.min":       "limit must be at least 1",
		"Limit.max":       "limit must be at most 1000",
	}
}

// HistoryQueryValidate 解析并验证历史查询参数
func HistoryQueryValidate(ctx iris.Context) (HistoryQuery, error) {
	query := HistoryQuery{
		Symbol: ctx.URLParamTrim("symbol"),
		Limit:  ctx.URLParamIntDefault("limit", 100),
	}
	if err := validate.New(query, historyFieldTrans()); err != nil {
		return query, err
	}
	return query, nil
}
