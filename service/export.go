package service

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/terryso/binance-dashboard/model"
)

// PositionsCSV writes processed position rows as CSV, one row per position
// in display order.
func PositionsCSV(w io.Writer, rows []ProcessedPosition) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"symbol", "side", "size", "entry_price", "mark_price", "unrealized_pnl", "pnl_percentage", "leverage", "notional", "margin_type"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.Symbol,
			row.Side,
			fmtFloat(row.Size),
			fmtFloat(row.EntryPrice),
			fmtFloat(row.MarkPrice),
			fmtFloat(row.UnrealizedPnl),
			fmtFloat(row.PnlPercentage),
			strconv.FormatFloat(row.Leverage, 'f', -1, 64),
			fmtFloat(row.Notional),
			row.MarginType,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// TradesCSV writes shaped trades as CSV.
func TradesCSV(w io.Writer, trades []model.Trade) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"time", "symbol", "side", "quantity", "price", "quote_quantity", "commission", "commission_asset", "realized_pnl", "order_id"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, trade := range trades {
		record := []string{
			trade.Time.UTC().Format("2006-01-02 15:04:05"),
			trade.Symbol,
			trade.Side,
			fmtFloat(trade.Quantity),
			fmtFloat(trade.Price),
			fmtFloat(trade.QuoteQuantity),
			strconv.FormatFloat(trade.Commission, 'f', -1, 64),
			trade.CommissionAsset,
			strconv.FormatFloat(trade.RealizedPnl, 'f', -1, 64),
			strconv.FormatInt(trade.OrderID, 10),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// IncomeCSV writes income records as CSV.
func IncomeCSV(w io.Writer, records []model.IncomeRecord) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"time", "symbol", "income_type", "income", "asset", "transaction_id", "trade_id"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, record := range records {
		row := []string{
			record.Time.UTC().Format("2006-01-02 15:04:05"),
			record.Symbol,
			record.IncomeType,
			strconv.FormatFloat(record.Income, 'f', -1, 64),
			record.Asset,
			strconv.FormatInt(record.TransactionID, 10),
			record.TradeID,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// TradeStatsCSV writes the per-symbol roll-up as CSV, symbols sorted for a
// deterministic download.
func TradeStatsCSV(w io.Writer, stats TradeStats) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"symbol", "trade_count", "volume", "commission"}); err != nil {
		return err
	}

	symbols := make([]string, 0, len(stats.BySymbol))
	for symbol := range stats.BySymbol {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	for _, symbol := range symbols {
		group := stats.BySymbol[symbol]
		row := []string{
			symbol,
			strconv.Itoa(group.TradeCount),
			fmtFloat(group.Volume),
			strconv.FormatFloat(group.Commission, 'f', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// RenderPositionsTable renders the processed positions as an ascii table for
// the cli tool.
func RenderPositionsTable(w io.Writer, rows []ProcessedPosition) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Symbol", "Side", "Size", "Entry", "Mark", "PnL", "PnL %", "Leverage", "Risk"})
	table.SetBorder(false)

	for _, row := range rows {
		table.Append([]string{
			row.FormattedSymbol,
			row.Side,
			row.FormattedSize,
			row.FormattedEntryPrice,
			row.FormattedMarkPrice,
			row.FormattedPnl,
			row.FormattedPercentage,
			strconv.FormatFloat(row.Leverage, 'f', -1, 64) + "x",
			row.LeverageRisk.Level,
		})
	}
	table.Render()
}

// RenderTradeStatsTable renders the per-symbol trade roll-up.
func RenderTradeStatsTable(w io.Writer, stats TradeStats) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Symbol", "Trades", "Volume", "Commission"})
	table.SetBorder(false)

	symbols := make([]string, 0, len(stats.BySymbol))
	for symbol := range stats.BySymbol {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	for _, symbol := range symbols {
		group := stats.BySymbol[symbol]
		table.Append([]string{
			symbol,
			strconv.Itoa(group.TradeCount),
			fmtFloat(group.Volume),
			strconv.FormatFloat(group.Commission, 'f', -1, 64),
		})
	}
	table.Render()
}
