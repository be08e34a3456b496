package api

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/core/router"

	"github.com/terryso/binance-dashboard/api/controllers"
)

func HistoryRoutes(app router.Party, base controllers.BaseController) {
	c := controllers.HistoryController{BaseController: base}

	app.Get("/trades", func(ctx iris.Context) {
		if err := c.Trades(ctx); err != nil {
			return
		}
	})
	app.Get("/income", func(ctx iris.Context) {
		if err := c.Income(ctx); err != nil {
			return
		}
	})
	app.Get("/metrics", func(ctx iris.Context) {
		if err := c.Metrics(ctx); err != nil {
			return
		}
	})
}
