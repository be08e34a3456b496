package routes

import (
	"github.com/kataras/iris/v12"

	"github.com/terryso/binance-dashboard/api/controllers"
	"github.com/terryso/binance-dashboard/api/routes/api"
)

// ApiRoutes api路由加载
func ApiRoutes(app *iris.Application, base controllers.BaseController) {
	// 默认路由
	api.BaseRoutes(app)
	// Debug路由
	api.PprofRoutes(app)
	// 存活探针
	healthRoutes := app.Party("/health")
	{
		api.HealthRoutes(healthRoutes)
	}
	accountRoutes := app.Party("/v1/account")
	{
		api.AccountRoutes(accountRoutes, base)
	}
	positionRoutes := app.Party("/v1/position")
	{
		api.PositionRoutes(positionRoutes, base)
	}
	historyRoutes := app.Party("/v1/history")
	{
		api.HistoryRoutes(historyRoutes, base)
	}
	cacheRoutes := app.Party("/v1/cache")
	{
		api.CacheRoutes(cacheRoutes, base)
	}
}
