package serv

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/recover"
	"github.com/spf13/viper"

	"github.com/terryso/binance-dashboard/api/controllers"
	"github.com/terryso/binance-dashboard/api/middlewares"
	"github.com/terryso/binance-dashboard/api/routes"
	"github.com/terryso/binance-dashboard/cache"
	"github.com/terryso/binance-dashboard/service"
	"github.com/terryso/binance-dashboard/utils"
)

// StartHttpServer serves the dashboard API. The cached api and processor are
// owned by the caller and shared across all handlers.
func StartHttpServer(cachedAPI *cache.CachedAPI, processor *service.Processor) {
	app := iris.New()
	// 追加运行日志文件
	app.Logger().SetLevel(viper.GetString("log.level"))
	// 加载跨域中间件
	app.Use(middlewares.CorsNew())
	// 加载recover
	app.Use(recover.New())
	// 加载路由
	routes.ApiRoutes(app, controllers.BaseController{
		API:       cachedAPI,
		Processor: processor,
	})
	// run iris
	err := app.Run(iris.Addr(viper.GetString("listen.http")))
	if err != nil {
		utils.Log.Errorf(err.Error())
	}
}
