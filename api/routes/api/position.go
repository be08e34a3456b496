package api

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/core/router"

	"github.com/terryso/binance-dashboard/api/controllers"
)

func PositionRoutes(app router.Party, base controllers.BaseController) {
	c := controllers.PositionController{BaseController: base}

	app.Get("/list", func(ctx iris.Context) {
		if err := c.List(ctx); err != nil {
			return
		}
	})
}
