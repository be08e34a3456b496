package exchange

import (
	"context"
	"fmt"
	"time"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/jpillora/backoff"

	"github.com/terryso/binance-dashboard/internal/requestClient"
	"github.com/terryso/binance-dashboard/model"
	"github.com/terryso/binance-dashboard/utils"
	"github.com/terryso/binance-dashboard/utils/calc"
)

const pingAttempts = 3

type ProxyOption struct {
	Status bool
	Url    string
}

// BinanceFuture is a read-only wrapper around the binance futures REST API.
// It shapes every response into the dashboard models and surfaces API errors
// unchanged to callers.
type BinanceFuture struct {
	client    *futures.Client
	Testnet   bool
	DebugMode bool
	Timeout   time.Duration

	APIKey    string
	APISecret string

	ProxyOption ProxyOption
}

type BinanceFutureOption func(*BinanceFuture)

func WithBinanceFutureTestnet() BinanceFutureOption {
	return func(b *BinanceFuture) {
		b.Testnet = true
	}
}

func WithBinanceFutureDebugMode() BinanceFutureOption {
	return func(b *BinanceFuture) {
		b.DebugMode = true
	}
}

// WithBinanceFutureCredentials will set the credentials for Binance Futures
func WithBinanceFutureCredentials(key, secret string) BinanceFutureOption {
	return func(b *BinanceFuture) {
		b.APIKey = key
		b.APISecret = secret
	}
}

func WithBinanceFutureProxy(proxyUrl string) BinanceFutureOption {
	return func(b *BinanceFuture) {
		b.ProxyOption = ProxyOption{
			Status: true,
			Url:    proxyUrl,
		}
	}
}

// WithBinanceFutureTimeout bounds every REST call made by the wrapper.
func WithBinanceFutureTimeout(timeout time.Duration) BinanceFutureOption {
	return func(b *BinanceFuture) {
		b.Timeout = timeout
	}
}

// NewBinanceFuture will create a new BinanceFuture instance
func NewBinanceFuture(ctx context.Context, options ...BinanceFutureOption) (*BinanceFuture, error) {
	exchange := &BinanceFuture{}
	for _, option := range options {
		option(exchange)
	}

	futures.UseTestnet = exchange.Testnet

	if exchange.ProxyOption.Status {
		exchange.client = futures.NewProxiedClient(exchange.APIKey, exchange.APISecret, exchange.ProxyOption.Url)
	} else {
		exchange.client = futures.NewClient(exchange.APIKey, exchange.APISecret)
	}
	exchange.client.Debug = exchange.DebugMode
	if exchange.Timeout > 0 {
		exchange.client.HTTPClient = requestClient.New(exchange.Timeout)
	}

	ba := &backoff.Backoff{
		Min: 100 * time.Millisecond,
		Max: 2 * time.Second,
	}
	var err error
	for i := 0; i < pingAttempts; i++ {
		err = exchange.client.NewPingService().Do(ctx)
		if err == nil {
			break
		}
		time.Sleep(ba.Duration())
	}
	if err != nil {
		return nil, fmt.Errorf("binance ping fail: %w", err)
	}

	utils.Log.Info("[SETUP] Using Binance Futures exchange")

	return exchange, nil
}

// AccountInfo fetches and shapes the futures account snapshot.
func (b *BinanceFuture) AccountInfo(ctx context.Context) (model.AccountSummary, error) {
	acc, err := b.client.NewGetAccountService().Do(ctx)
	if err != nil {
		return model.AccountSummary{}, err
	}
	return model.AccountSummaryFromFutures(acc), nil
}

// Positions fetches position information and drops zero-size entries.
func (b *BinanceFuture) Positions(ctx context.Context) ([]model.Position, error) {
	risks, err := b.client.NewGetPositionRiskService().Do(ctx)
	if err != nil {
		return nil, err
	}

	positions := make([]model.Position, 0, len(risks))
	for _, risk := range risks {
		if risk == nil || calc.Abs(calc.SafeFloat(risk.PositionAmt, 0)) == 0 {
			continue
		}
		positions = append(positions, model.PositionFromRisk(risk))
	}
	return positions, nil
}

// Trades fetches the account trade list, optionally scoped to one symbol.
func (b *BinanceFuture) Trades(ctx context.Context, symbol string, limit int) ([]model.Trade, error) {
	service := b.client.NewListAccountTradeService()
	if symbol != "" {
		service = service.Symbol(symbol)
	}
	if limit > 0 {
		service = service.Limit(limit)
	}

	raws, err := service.Do(ctx)
	if err != nil {
		return nil, err
	}

	trades := make([]model.Trade, 0, len(raws))
	for _, raw := range raws {
		trades = append(trades, model.TradeFromFutures(raw))
	}
	return trades, nil
}

// Income fetches the income history, optionally scoped to one symbol.
func (b *BinanceFuture) Income(ctx context.Context, symbol string, limit int) ([]model.IncomeRecord, error) {
	service := b.client.NewGetIncomeHistoryService()
	if symbol != "" {
		service = service.Symbol(symbol)
	}
	if limit > 0 {
		service = service.Limit(int64(limit))
	}

	raws, err := service.Do(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]model.IncomeRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, model.IncomeFromFutures(raw))
	}
	return records, nil
}
