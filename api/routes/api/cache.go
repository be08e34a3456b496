package api

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/core/router"

	"github.com/terryso/binance-dashboard/api/controllers"
)

func CacheRoutes(app router.Party, base controllers.BaseController) {
	c := controllers.CacheController{BaseController: base}

	app.Get("/stats", func(ctx iris.Context) {
		if err := c.Stats(ctx); err != nil {
			return
		}
	})
	app.Post("/invalidate", func(ctx iris.Context) {
		if err := c.Invalidate(ctx); err != nil {
			return
		}
	})
}
