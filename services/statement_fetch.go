package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"stockscreener/clients/fmp"
	"stockscreener/types"
)

const (
	fetchBatchSize  = 35
	interBatchDelay = 30 * time.Second
)

// FetchResult counts per-item outcomes of one ingestion call.
type FetchResult struct {
	SuccessCount int `json:"successCount"`
	ErrorCount   int `json:"errorCount"`
	TotalCount   int `json:"totalCount"`
}

// FetchStatementsForTickers ingests statements, profile-less price history
// included, for every given ticker. Tickers run concurrently within a
// fixed-size batch; batches run strictly in sequence with a mandatory delay
// between them, the only backpressure against the provider. One failing
// ticker never blocks the rest of its batch or later batches.
func FetchStatementsForTickers(tickers []string, period, limit string) {
	runBatches(tickers, fetchBatchSize, interBatchDelay, func(ticker string) error {
		return fetchTickerStatements(context.Background(), ticker, period, limit)
	})
}

// UpdateAllPrices refreshes the price document of every given ticker with the
// same batching discipline.
func UpdateAllPrices(tickers []string, from, to string) {
	runBatches(tickers, fetchBatchSize, interBatchDelay, func(ticker string) error {
		return UpdatePriceByTicker(context.Background(), ticker, from, to)
	})
}

// runBatches partitions tickers and drives fn per ticker, concurrently inside
// each batch. Per-ticker errors are logged and counted, never propagated.
func runBatches(tickers []string, batchSize int, delay time.Duration, fn func(ticker string) error) {
	batches := partitionTickers(tickers, batchSize)
	zap.L().Info("Batch run started",
		zap.Int("tickers", len(tickers)), zap.Int("batches", len(batches)))

	errorCount := 0
	var mu sync.Mutex

	for i, batch := range batches {
		var wg sync.WaitGroup
		for _, ticker := range batch {
			wg.Add(1)
			go func(t string) {
				defer wg.Done()
				if err := fn(t); err != nil {
					zap.L().Error("Batch item failed", zap.String("ticker", t), zap.Error(err))
					mu.Lock()
					errorCount++
					mu.Unlock()
				}
			}(ticker)
		}
		wg.Wait()

		if i < len(batches)-1 {
			time.Sleep(delay)
		}
	}

	zap.L().Info("Batch run completed",
		zap.Int("tickers", len(tickers)), zap.Int("errors", errorCount))
}

func partitionTickers(tickers []string, batchSize int) [][]string {
	var batches [][]string
	for i := 0; i < len(tickers); i += batchSize {
		end := i + batchSize
		if end > len(tickers) {
			end = len(tickers)
		}
		batches = append(batches, tickers[i:end])
	}
	return batches
}

// fetchTickerStatements runs the four provider reads for one ticker
// concurrently and persists whatever arrives.
func fetchTickerStatements(ctx context.Context, ticker, period, limit string) error {
	currentYear := time.Now().Year()
	from := fmt.Sprintf("%d-01-01", currentYear-11)
	to := fmt.Sprintf("%d-01-31", currentYear)

	var wg sync.WaitGroup
	errs := make([]error, 4)

	wg.Add(4)
	go func() {
		defer wg.Done()
		_, errs[0] = FetchBalanceSheets(ctx, ticker, period, limit)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = FetchIncomeStatements(ctx, ticker, period, limit)
	}()
	go func() {
		defer wg.Done()
		_, errs[2] = FetchCashflowStatements(ctx, ticker, period, limit)
	}()
	go func() {
		defer wg.Done()
		errs[3] = FetchPriceByTicker(ctx, ticker, from, to)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// FetchBalanceSheets pulls balance sheets from the provider and persists each
// one keyed by ticker_year; per-item failures are counted, not fatal.
func FetchBalanceSheets(ctx context.Context, ticker, period, limit string) (FetchResult, error) {
	items, err := fmp.BalanceSheets(ctx, ticker, period, limit)
	if err != nil {
		return FetchResult{}, err
	}

	result := FetchResult{TotalCount: len(items)}
	for _, item := range items {
		doc := types.BalanceSheet{
			Ticker:     strings.ToLower(item.Symbol),
			FiscalYear: item.FiscalYear,
			TickerYear: strings.ToLower(item.Symbol) + "_" + item.FiscalYear,
			Raw:        item,
		}
		if err := upsertStatement(ctx, colBalanceSheets, doc.TickerYear, doc); err != nil {
			zap.L().Error("Error saving balance sheet",
				zap.String("ticker_year", doc.TickerYear), zap.Error(err))
			result.ErrorCount++
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}

func FetchIncomeStatements(ctx context.Context, ticker, period, limit string) (FetchResult, error) {
	items, err := fmp.IncomeStatements(ctx, ticker, period, limit)
	if err != nil {
		return FetchResult{}, err
	}

	result := FetchResult{TotalCount: len(items)}
	for _, item := range items {
		doc := types.IncomeStatement{
			Ticker:     strings.ToLower(item.Symbol),
			FiscalYear: item.FiscalYear,
			TickerYear: strings.ToLower(item.Symbol) + "_" + item.FiscalYear,
			Raw:        item,
		}
		if err := upsertStatement(ctx, colIncomes, doc.TickerYear, doc); err != nil {
			zap.L().Error("Error saving income statement",
				zap.String("ticker_year", doc.TickerYear), zap.Error(err))
			result.ErrorCount++
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}

func FetchCashflowStatements(ctx context.Context, ticker, period, limit string) (FetchResult, error) {
	items, err := fmp.CashflowStatements(ctx, ticker, period, limit)
	if err != nil {
		return FetchResult{}, err
	}

	result := FetchResult{TotalCount: len(items)}
	for _, item := range items {
		doc := types.CashflowStatement{
			Ticker:     strings.ToLower(item.Symbol),
			FiscalYear: item.FiscalYear,
			TickerYear: strings.ToLower(item.Symbol) + "_" + item.FiscalYear,
			Raw:        item,
		}
		if err := upsertStatement(ctx, colCashflows, doc.TickerYear, doc); err != nil {
			zap.L().Error("Error saving cashflow statement",
				zap.String("ticker_year", doc.TickerYear), zap.Error(err))
			result.ErrorCount++
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}

// FetchProfiles ingests the provider profile for a ticker.
func FetchProfiles(ctx context.Context, ticker string) (FetchResult, error) {
	items, err := fmp.Profiles(ctx, ticker)
	if err != nil {
		return FetchResult{}, err
	}

	result := FetchResult{TotalCount: len(items)}
	for _, item := range items {
		if err := UpsertProfile(ctx, item); err != nil {
			zap.L().Error("Error saving profile", zap.String("ticker", item.Ticker), zap.Error(err))
			result.ErrorCount++
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}

func upsertStatement(ctx context.Context, col, tickerYear string, doc interface{}) error {
	_, err := collection(col).UpdateOne(ctx,
		bson.M{"ticker_year": tickerYear},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true))
	return err
}
