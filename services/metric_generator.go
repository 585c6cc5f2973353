package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"stockscreener/types"
	"stockscreener/utils/calc"
)

// GenerateMetrics derives ratio and DCF metrics for one ticker, or for every
// ticker when none is given, optionally scoped to a single fiscal year.
// Failures are isolated per observation: a ticker-year that cannot be
// computed is logged and skipped, never fatal to the run. Re-running upserts
// by ticker_year, so unchanged inputs yield the same document set.
func GenerateMetrics(ticker, year string) {
	ctx := context.Background()

	profiles, err := ProfilesForScope(ctx, ticker)
	if err != nil {
		zap.L().Error("Metric generation failed to load profiles", zap.Error(err))
		return
	}
	if len(profiles) == 0 {
		zap.L().Error("Metric generation aborted: no profiles found", zap.String("ticker", ticker))
		return
	}
	zap.L().Info("Metric generation started", zap.Int("profiles", len(profiles)))

	rates, err := LoadRateMap(ctx)
	if err != nil {
		zap.L().Error("Metric generation failed to load exchange rates", zap.Error(err))
		return
	}

	totalUpserted := 0
	for _, profile := range profiles {
		price, err := PriceByTicker(ctx, profile.Ticker)
		if err != nil {
			zap.L().Error("Error fetching price", zap.String("ticker", profile.Ticker), zap.Error(err))
			continue
		}
		if price == nil {
			zap.L().Warn("No price data found, skipping ticker", zap.String("ticker", profile.Ticker))
			continue
		}

		constants, err := ConstantsForYear(ctx, year)
		if err != nil {
			zap.L().Error("Error fetching calculation constants", zap.String("ticker", profile.Ticker), zap.Error(err))
			continue
		}
		if constants == nil {
			zap.L().Warn("No calculation constants found, skipping ticker",
				zap.String("ticker", profile.Ticker), zap.String("year", year))
			continue
		}

		triples, err := StatementTriplesForTicker(ctx, profile.Ticker, year, rates)
		if err != nil {
			zap.L().Error("Error joining statements", zap.String("ticker", profile.Ticker), zap.Error(err))
			continue
		}
		zap.L().Info("Processing document sets",
			zap.String("ticker", profile.Ticker), zap.Int("sets", len(triples)))

		for _, triple := range triples {
			metric, err := buildMetric(triple, profile, *price, *constants, rates)
			if err != nil {
				zap.L().Warn("Skipping metric",
					zap.String("ticker_year", triple.BalanceSheet.TickerYear), zap.Error(err))
				continue
			}

			if err := upsertMetric(ctx, metric); err != nil {
				zap.L().Error("Error saving metric",
					zap.String("ticker_year", metric.TickerYear), zap.Error(err))
				continue
			}
			if err := MarkHasMetric(ctx, metric.TickerYear); err != nil {
				zap.L().Error("Error updating ticker_year bookkeeping",
					zap.String("ticker_year", metric.TickerYear), zap.Error(err))
			}
			totalUpserted++
		}
	}

	zap.L().Info("Metric generation completed", zap.Int("upserted", totalUpserted))
}

func buildMetric(triple StatementTriple, profile types.Profile, price types.Price,
	constants types.CalculationConstants, rates RateMap) (types.Metric, error) {

	incomeRaw := triple.Income.Raw
	balanceRaw := triple.BalanceSheet.Raw
	cashflowRaw := triple.Cashflow.Raw
	year := triple.BalanceSheet.FiscalYear

	avgPrice, ok := price.AveragePrices[year]
	if !ok || avgPrice == 0 {
		return types.Metric{}, fmt.Errorf("no average price for year %s", year)
	}

	rateToUSD, ok := rates.Rate(incomeRaw.ReportedCurrency, year)
	if !ok {
		return types.Metric{}, fmt.Errorf("no exchange rate for %s_%s", incomeRaw.ReportedCurrency, year)
	}

	roe := calc.ReturnOnEquity(incomeRaw.NetIncome, balanceRaw.TotalAssets, balanceRaw.TotalLiabilities)
	ste := calc.SalesToEquity(incomeRaw.Revenue, balanceRaw.TotalAssets, balanceRaw.TotalLiabilities)
	gm := calc.GrossMargin(incomeRaw.GrossProfit, incomeRaw.Revenue)
	nm := calc.NetMargin(incomeRaw.NetIncome, incomeRaw.Revenue)
	cr := calc.CurrentRatio(balanceRaw.TotalCurrentAssets, balanceRaw.TotalCurrentLiabilities)

	dcfValue := calc.DCFValuePerShare(calc.DCFInput{
		NetIncome:                   incomeRaw.NetIncome,
		Beta:                        profile.Beta,
		CapEx:                       cashflowRaw.CapitalExpenditure,
		DepreciationAndAmortization: cashflowRaw.DepreciationAndAmortization,
		LongTermDebt:                balanceRaw.LongTermDebt,
		TotalDebt:                   balanceRaw.TotalDebt,
		AvgSharesOutstanding:        incomeRaw.WeightedAverageShsOut,
		AvgStockPrice:               avgPrice,
		RateToUSD:                   rateToUSD,
	}, constants)
	dcfToAvgPrice := dcfValue / avgPrice

	priceToEarnings := calc.PriceToEarnings(incomeRaw.NetIncome, avgPrice, incomeRaw.WeightedAverageShsOut, rateToUSD)

	return types.Metric{
		Ticker:        profile.Ticker,
		FiscalYear:    year,
		TickerYear:    triple.BalanceSheet.TickerYear,
		AvgStockPrice: avgPrice,
		Industry:      profile.Industry,
		Sector:        profile.Sector,
		PerformanceData: types.PerformanceData{
			ReturnOnEquity: &roe,
			SalesToEquity:  &ste,
		},
		ProfitabilityData: types.ProfitabilityData{
			GrossMargin: &gm,
			NetMargin:   &nm,
		},
		StabilityData: types.StabilityData{
			DebtToEquity: calc.DebtToEquity(balanceRaw.TotalAssets, balanceRaw.TotalLiabilities),
			DebtToEbitda: calc.DebtToEbitda(balanceRaw.TotalDebt, incomeRaw.EBITDA),
			CurrentRatio: &cr,
		},
		ValueData: types.ValueData{
			DCFValuePerShare: dcfValue,
			DCFToAvgPrice:    &dcfToAvgPrice,
			PriceToEarnings:  priceToEarnings,
			EarningsYield:    calc.EarningsYield(priceToEarnings),
			PriceToSales:     calc.PriceToSales(incomeRaw.Revenue, avgPrice, incomeRaw.WeightedAverageShsOut, rateToUSD),
			PriceToBook:      calc.PriceToBook(balanceRaw.TotalEquity, avgPrice, incomeRaw.WeightedAverageShsOut, rateToUSD),
		},
	}, nil
}

func upsertMetric(ctx context.Context, metric types.Metric) error {
	_, err := collection(colMetrics).UpdateOne(ctx,
		bson.M{"ticker_year": metric.TickerYear},
		bson.M{"$set": metric},
		options.Update().SetUpsert(true))
	return err
}
