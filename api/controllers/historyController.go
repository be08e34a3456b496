package controllers

import (
	"github.com/kataras/iris/v12"

	"github.com/terryso/binance-dashboard/api/validates"
	"github.com/terryso/binance-dashboard/service"
	"github.com/terryso/binance-dashboard/utils"
)

type HistoryController struct {
	BaseController
}

// Trades 成交历史及汇总, format=csv 时返回csv下载
func (c *HistoryController) Trades(ctx iris.Context) error {
	query, err := validates.HistoryQueryValidate(ctx)
	if err != nil {
		return c.Fail(ctx, "400", err)
	}

	trades, err := c.API.Trades(ctx.Request().Context(), query.Symbol, query.Limit)
	if err != nil {
		utils.Log.Errorf("fetch trades failed: %s", err.Error())
		return c.Fail(ctx, "100", err)
	}

	if ctx.URLParamTrim("format") == "csv" {
		ctx.Header("Content-Disposition", "attachment; filename=trades.csv")
		ctx.ContentType("text/csv")
		return service.TradesCSV(ctx.ResponseWriter(), trades)
	}

	return c.Success(ctx, map[string]interface{}{
		"trades": trades,
		"stats":  c.Processor.TradeStats(trades),
	})
}

// Income 收益历史及汇总, format=csv 时返回csv下载
func (c *HistoryController) Income(ctx iris.Context) error {
	query, err := validates.HistoryQueryValidate(ctx)
	if err != nil {
		return c.Fail(ctx, "400", err)
	}

	records, err := c.API.Income(ctx.Request().Context(), query.Symbol, query.Limit)
	if err != nil {
		utils.Log.Errorf("fetch income failed: %s", err.Error())
		return c.Fail(ctx, "100", err)
	}

	if ctx.URLParamTrim("format") == "csv" {
		ctx.Header("Content-Disposition", "attachment; filename=income.csv")
		ctx.ContentType("text/csv")
		return service.IncomeCSV(ctx.ResponseWriter(), records)
	}

	return c.Success(ctx, map[string]interface{}{
		"income": records,
		"stats":  c.Processor.IncomeStats(records),
	})
}

// Metrics 交易绩效指标
func (c *HistoryController) Metrics(ctx iris.Context) error {
	query, err := validates.HistoryQueryValidate(ctx)
	if err != nil {
		return c.Fail(ctx, "400", err)
	}

	trades, err := c.API.Trades(ctx.Request().Context(), query.Symbol, query.Limit)
	if err != nil {
		utils.Log.Errorf("fetch trades failed: %s", err.Error())
		return c.Fail(ctx, "100", err)
	}

	return c.Success(ctx, c.Processor.PerformanceMetrics(trades))
}
