package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"stockscreener/types"
)

// GenerateSummaries flattens the joined raw fundamentals into summary
// documents, one per matched ticker_year, with the same scoping and
// failure-isolation rules as metric generation.
func GenerateSummaries(ticker, year string) {
	ctx := context.Background()

	profiles, err := ProfilesForScope(ctx, ticker)
	if err != nil {
		zap.L().Error("Summary generation failed to load profiles", zap.Error(err))
		return
	}
	if len(profiles) == 0 {
		zap.L().Error("Summary generation aborted: no profiles found", zap.String("ticker", ticker))
		return
	}
	zap.L().Info("Summary generation started", zap.Int("profiles", len(profiles)))

	rates, err := LoadRateMap(ctx)
	if err != nil {
		zap.L().Error("Summary generation failed to load exchange rates", zap.Error(err))
		return
	}

	totalUpserted := 0
	for _, profile := range profiles {
		triples, err := StatementTriplesForTicker(ctx, profile.Ticker, year, rates)
		if err != nil {
			zap.L().Error("Error joining statements", zap.String("ticker", profile.Ticker), zap.Error(err))
			continue
		}
		zap.L().Info("Processing document sets",
			zap.String("ticker", profile.Ticker), zap.Int("sets", len(triples)))

		for _, triple := range triples {
			summary := buildSummary(triple, profile)

			if err := upsertSummary(ctx, summary); err != nil {
				zap.L().Error("Error saving summary",
					zap.String("ticker_year", summary.TickerYear), zap.Error(err))
				continue
			}
			if err := MarkHasSummary(ctx, summary.TickerYear); err != nil {
				zap.L().Error("Error updating ticker_year bookkeeping",
					zap.String("ticker_year", summary.TickerYear), zap.Error(err))
			}
			totalUpserted++
		}
	}

	zap.L().Info("Summary generation completed", zap.Int("upserted", totalUpserted))
}

func buildSummary(triple StatementTriple, profile types.Profile) types.Summary {
	incomeRaw := triple.Income.Raw
	balanceRaw := triple.BalanceSheet.Raw
	cashflowRaw := triple.Cashflow.Raw

	return types.Summary{
		Ticker:                      profile.Ticker,
		FiscalYear:                  triple.BalanceSheet.FiscalYear,
		TickerYear:                  triple.BalanceSheet.TickerYear,
		Beta:                        profile.Beta,
		Industry:                    profile.Industry,
		Sector:                      profile.Sector,
		Currency:                    balanceRaw.ReportedCurrency,
		Assets:                      balanceRaw.TotalAssets,
		CurrentAssets:               balanceRaw.TotalCurrentAssets,
		CurrentLiabilities:          balanceRaw.TotalCurrentLiabilities,
		Equity:                      balanceRaw.TotalEquity,
		Liabilities:                 balanceRaw.TotalLiabilities,
		LongTermDebt:                balanceRaw.LongTermDebt,
		TotalDebt:                   balanceRaw.TotalDebt,
		AvgSharesOutstanding:        incomeRaw.WeightedAverageShsOut,
		AvgSharesOutstandingDiluted: incomeRaw.WeightedAverageShsOutDil,
		CostOfRevenue:               incomeRaw.CostOfRevenue,
		DepreciationAndAmortization: incomeRaw.DepreciationAndAmortization,
		EBITDA:                      incomeRaw.EBITDA,
		EPS:                         incomeRaw.EPS,
		EPSDiluted:                  incomeRaw.EPSDiluted,
		GrossProfit:                 incomeRaw.GrossProfit,
		NetIncome:                   incomeRaw.NetIncome,
		OperatingExpenses:           incomeRaw.OperatingExpenses,
		OperatingIncome:             incomeRaw.OperatingIncome,
		Revenue:                     incomeRaw.Revenue,
		CapEx:                       cashflowRaw.CapitalExpenditure,
		CashflowFromOps:             cashflowRaw.NetCashProvidedByOperatingActivities,
	}
}

func upsertSummary(ctx context.Context, summary types.Summary) error {
	_, err := collection(colSummaries).UpdateOne(ctx,
		bson.M{"ticker_year": summary.TickerYear},
		bson.M{"$set": summary},
		options.Update().SetUpsert(true))
	return err
}
