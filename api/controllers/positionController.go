package controllers

import (
	"github.com/kataras/iris/v12"

	"github.com/terryso/binance-dashboard/service"
	"github.com/terryso/binance-dashboard/utils"
)

type PositionController struct {
	BaseController
}

// List 当前持仓列表, format=csv 时返回csv下载
func (c *PositionController) List(ctx iris.Context) error {
	positions, err := c.API.Positions(ctx.Request().Context())
	if err != nil {
		utils.Log.Errorf("fetch positions failed: %s", err.Error())
		return c.Fail(ctx, "100", err)
	}

	rows := c.Processor.ProcessPositions(positions)

	if ctx.URLParamTrim("format") == "csv" {
		ctx.Header("Content-Disposition", "attachment; filename=positions.csv")
		ctx.ContentType("text/csv")
		return service.PositionsCSV(ctx.ResponseWriter(), rows)
	}
	return c.Success(ctx, rows)
}
