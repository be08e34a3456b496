package main

import (
	"context"

	"github.com/spf13/viper"

	"github.com/terryso/binance-dashboard/cache"
	"github.com/terryso/binance-dashboard/exchange"
	"github.com/terryso/binance-dashboard/serv"
	"github.com/terryso/binance-dashboard/service"
	"github.com/terryso/binance-dashboard/tools/config"
	"github.com/terryso/binance-dashboard/utils"
)

func main() {
	// 获取基础配置
	var (
		ctx        = context.Background()
		apiKey     = viper.GetString("binance.api_key")
		secretKey  = viper.GetString("binance.secret_key")
		useTestnet = viper.GetBool("binance.use_testnet")
		proxyUrl   = viper.GetString("proxy.url")
		currency   = viper.GetString("display.default_currency")
	)

	exchangeOptions := []exchange.BinanceFutureOption{
		exchange.WithBinanceFutureCredentials(apiKey, secretKey),
		exchange.WithBinanceFutureTimeout(config.BinanceTimeout()),
	}
	if useTestnet {
		exchangeOptions = append(exchangeOptions, exchange.WithBinanceFutureTestnet())
	}
	if proxyUrl != "" {
		exchangeOptions = append(exchangeOptions, exchange.WithBinanceFutureProxy(proxyUrl))
	}

	client, err := exchange.NewBinanceFuture(ctx, exchangeOptions...)
	if err != nil {
		utils.Log.Fatalf("initialize binance client failed: %s", err.Error())
	}

	// 缓存默认过期时间取自刷新间隔
	store := cache.New(config.RefreshInterval())
	cachedAPI := cache.NewCachedAPI(store, client)
	processor := service.NewProcessor(currency)

	// 监听配置热更新
	config.WatchConf()

	serv.StartHttpServer(cachedAPI, processor)
}
