package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stockscreener/clients/fmp"
	"stockscreener/types"
)

// FetchPriceByTicker creates the price document for a ticker from historical
// daily closes. An existing document is left untouched; refresh goes through
// UpdatePriceByTicker.
func FetchPriceByTicker(ctx context.Context, ticker, from, to string) error {
	existing, err := PriceByTicker(ctx, ticker)
	if err != nil {
		return err
	}
	if existing != nil {
		zap.L().Info("Price data already exists", zap.String("ticker", ticker))
		return nil
	}

	data, err := fmp.HistoricalPrices(ctx, ticker, from, to)
	if err != nil {
		return err
	}

	averages, current := summarizePrices(data)
	if current == nil {
		return fmt.Errorf("no price data found for ticker %s", ticker)
	}

	return CreatePrice(ctx, types.Price{
		Ticker:        ticker,
		Price:         current.Close,
		Date:          current.Date,
		AveragePrices: averages,
	})
}

// UpdatePriceByTicker refreshes an existing price document: the latest
// price/date pair is replaced only when the new observation is chronologically
// newer, and new per-year averages are merged into the stored map, never
// replacing it wholesale.
func UpdatePriceByTicker(ctx context.Context, ticker, from, to string) error {
	existing, err := PriceByTicker(ctx, ticker)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("price data for ticker %s does not exist", ticker)
	}

	data, err := fmp.HistoricalPrices(ctx, ticker, from, to)
	if err != nil {
		return err
	}

	averages, current := summarizePrices(data)
	if current == nil {
		return fmt.Errorf("no price data found for ticker %s", ticker)
	}

	updated := mergePrice(*existing, averages, *current)
	return UpdatePrice(ctx, ticker, updated)
}

// mergePrice applies the update rules to a stored price document.
func mergePrice(existing types.Price, averages map[string]float64, current fmp.DailyClose) types.Price {
	if isNewerThan(existing.Date, current.Date) {
		existing.Price = current.Close
		existing.Date = current.Date
	}

	if existing.AveragePrices == nil {
		existing.AveragePrices = make(map[string]float64, len(averages))
	}
	for year, avg := range averages {
		existing.AveragePrices[year] = avg
	}
	return existing
}

// summarizePrices reduces daily closes to per-year average prices and the
// most recent observation. Returns a nil current when there is no data.
func summarizePrices(data []fmp.DailyClose) (map[string]float64, *fmp.DailyClose) {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var current *fmp.DailyClose

	for _, obs := range data {
		obs := obs
		if current == nil || isNewerThan(current.Date, obs.Date) {
			current = &obs
		}

		year := obs.Date
		if len(year) >= 4 {
			year = year[:4]
		}
		sums[year] += obs.Close
		counts[year]++
	}

	averages := make(map[string]float64, len(sums))
	for year, sum := range sums {
		averages[year] = sum / float64(counts[year])
	}
	return averages, current
}

// isNewerThan reports whether candidate is strictly later than current.
// ISO yyyy-mm-dd dates order lexicographically.
func isNewerThan(current, candidate string) bool {
	return current < candidate
}
