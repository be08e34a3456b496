package api

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/core/router"

	"github.com/terryso/binance-dashboard/api/controllers"
)

func AccountRoutes(app router.Party, base controllers.BaseController) {
	c := controllers.AccountController{BaseController: base}

	app.Get("/summary", func(ctx iris.Context) {
		if err := c.Summary(ctx); err != nil {
			return
		}
	})
}
