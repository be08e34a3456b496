package controllers

import (
	"github.com/kataras/iris/v12"
)

type CacheController struct {
	BaseController
}

// Stats 缓存状态
func (c *CacheController) Stats(ctx iris.Context) error {
	return c.Success(ctx, c.API.Stats())
}

// Invalidate 使缓存失效, type: all | account | history | 指定key
func (c *CacheController) Invalidate(ctx iris.Context) error {
	kind := ctx.URLParamTrim("type")
	c.API.Invalidate(kind)
	return c.Success(ctx, map[string]string{"invalidated": orAll(kind)})
}

func orAll(kind string) string {
	if kind == "" {
		return "all"
	}
	return kind
}
