package controllers

import (
	"github.com/kataras/iris/v12"

	"github.com/terryso/binance-dashboard/utils"
)

type AccountController struct {
	BaseController
}

// Summary 账户概览
func (c *AccountController) Summary(ctx iris.Context) error {
	summary, err := c.API.AccountInfo(ctx.Request().Context())
	if err != nil {
		utils.Log.Errorf("fetch account info failed: %s", err.Error())
		return c.Fail(ctx, "100", err)
	}
	return c.Success(ctx, c.Processor.AccountOverview(summary))
}
