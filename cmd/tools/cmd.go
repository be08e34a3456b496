package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/terryso/binance-dashboard/cache"
	"github.com/terryso/binance-dashboard/exchange"
	"github.com/terryso/binance-dashboard/service"
	"github.com/terryso/binance-dashboard/tools/config"
	"github.com/terryso/binance-dashboard/utils"
)

func newClient(ctx context.Context) (*exchange.BinanceFuture, error) {
	exchangeOptions := []exchange.BinanceFutureOption{
		exchange.WithBinanceFutureCredentials(
			viper.GetString("binance.api_key"),
			viper.GetString("binance.secret_key"),
		),
		exchange.WithBinanceFutureTimeout(config.BinanceTimeout()),
	}
	if viper.GetBool("binance.use_testnet") {
		exchangeOptions = append(exchangeOptions, exchange.WithBinanceFutureTestnet())
	}
	if proxyUrl := viper.GetString("proxy.url"); proxyUrl != "" {
		exchangeOptions = append(exchangeOptions, exchange.WithBinanceFutureProxy(proxyUrl))
	}
	return exchange.NewBinanceFuture(ctx, exchangeOptions...)
}

func outputWriter(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func main() {
	processor := service.NewProcessor(viper.GetString("display.default_currency"))

	app := &cli.App{
		Name:     "dashboard",
		HelpName: "dashboard",
		Usage:    "Export utilities for the binance futures dashboard",
		Commands: []*cli.Command{
			{
				Name:     "positions",
				HelpName: "positions",
				Usage:    "Dump open positions as a table or csv",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "eg. positions.csv (default stdout table)",
						Required: false,
					},
				},
				Action: func(c *cli.Context) error {
					client, err := newClient(c.Context)
					if err != nil {
						return err
					}
					positions, err := client.Positions(c.Context)
					if err != nil {
						return err
					}
					rows := processor.ProcessPositions(positions)

					if output := c.String("output"); output != "" {
						w, done, err := outputWriter(output)
						if err != nil {
							return err
						}
						defer done()
						return service.PositionsCSV(w, rows)
					}
					service.RenderPositionsTable(os.Stdout, rows)
					return nil
				},
			},
			{
				Name:     "trades",
				HelpName: "trades",
				Usage:    "Dump trade history as csv, plus a per-symbol summary table",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "symbol",
						Aliases:  []string{"s"},
						Usage:    "eg. BTCUSDT",
						Required: false,
					},
					&cli.IntFlag{
						Name:     "limit",
						Aliases:  []string{"l"},
						Usage:    "eg. 500 (default 100)",
						Required: false,
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "eg. trades.csv (default stdout)",
						Required: false,
					},
				},
				Action: func(c *cli.Context) error {
					client, err := newClient(c.Context)
					if err != nil {
						return err
					}
					limit := c.Int("limit")
					if limit <= 0 {
						limit = 100
					}
					trades, err := client.Trades(c.Context, c.String("symbol"), limit)
					if err != nil {
						return err
					}

					w, done, err := outputWriter(c.String("output"))
					if err != nil {
						return err
					}
					defer done()
					if err := service.TradesCSV(w, trades); err != nil {
						return err
					}
					if c.String("output") != "" {
						service.RenderTradeStatsTable(os.Stdout, processor.TradeStats(trades))
					}
					return nil
				},
			},
			{
				Name:     "income",
				HelpName: "income",
				Usage:    "Dump income history as csv",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "symbol",
						Aliases:  []string{"s"},
						Usage:    "eg. BTCUSDT",
						Required: false,
					},
					&cli.IntFlag{
						Name:     "limit",
						Aliases:  []string{"l"},
						Usage:    "eg. 500 (default 100)",
						Required: false,
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "eg. income.csv (default stdout)",
						Required: false,
					},
				},
				Action: func(c *cli.Context) error {
					client, err := newClient(c.Context)
					if err != nil {
						return err
					}
					limit := c.Int("limit")
					if limit <= 0 {
						limit = 100
					}
					records, err := client.Income(c.Context, c.String("symbol"), limit)
					if err != nil {
						return err
					}

					w, done, err := outputWriter(c.String("output"))
					if err != nil {
						return err
					}
					defer done()
					return service.IncomeCSV(w, records)
				},
			},
			{
				Name:     "cachekey",
				HelpName: "cachekey",
				Usage:    "Print the derived cache key for a dataset name and arguments",
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return fmt.Errorf("dataset name required")
					}
					args := make([]any, 0, c.NArg()-1)
					for _, a := range c.Args().Slice()[1:] {
						args = append(args, a)
					}
					store := cache.New(config.RefreshInterval())
					fmt.Println(store.Key(c.Args().First(), args...))
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		utils.Log.Error(err)
		log.Fatal(err)
	}
}
