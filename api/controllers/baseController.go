package controllers

import (
	"github.com/kataras/iris/v12"

	"github.com/terryso/binance-dashboard/cache"
	"github.com/terryso/binance-dashboard/service"
)

// BaseController carries the shared collaborators, handed in once at route
// registration instead of living in package globals.
type BaseController struct {
	API       *cache.CachedAPI
	Processor *service.Processor
}

// Success 返回成功响应
func (c *BaseController) Success(ctx iris.Context, data interface{}) error {
	return ctx.JSON(map[string]interface{}{
		"code":    "0",
		"message": "success",
		"data":    data,
	})
}

// Fail 返回失败响应, 上游错误信息原样透传
func (c *BaseController) Fail(ctx iris.Context, code string, err error) error {
	return ctx.JSON(map[string]interface{}{
		"code":    code,
		"message": err.Error(),
	})
}
