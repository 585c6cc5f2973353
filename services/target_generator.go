package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"stockscreener/types"
)

const screeningYears = 5

// These requirements screen for "good" companies, not "good" value; value
// enters later through the multiplier.
var targetRequirements = struct {
	maxDebtToEquity    float64
	minGrossMargin     float64
	minNetMargin       float64
	minReturnOnEquity  float64
	minCurrentRatio    float64
	excludedIndustries []string
}{
	maxDebtToEquity:    2,
	minGrossMargin:     0.3,
	minNetMargin:       0.07,
	minReturnOnEquity:  0.08,
	minCurrentRatio:    1.15,
	excludedIndustries: []string{"gold", "asset management", "capital markets"},
}

// GenerateTargets rebuilds the ranked target set across all tickers. The
// previous set is deleted up front and recreated from current metrics and
// summaries; targets are a regenerable point-in-time view, so the transient
// empty window is acceptable. Each ticker is processed in isolation: one
// failure is logged and the run continues.
func GenerateTargets() {
	ctx := context.Background()

	if _, err := collection(colTargets).DeleteMany(ctx, bson.M{}); err != nil {
		zap.L().Error("Target generation failed to delete previous targets", zap.Error(err))
		return
	}

	profiles, err := ProfilesForScope(ctx, "")
	if err != nil {
		zap.L().Error("Target generation failed to load profiles", zap.Error(err))
		return
	}
	if len(profiles) == 0 {
		zap.L().Error("Target generation aborted: no profiles found")
		return
	}

	totalCreated := 0
	for _, profile := range profiles {
		created, err := generateTargetsForTicker(ctx, profile)
		if err != nil {
			zap.L().Error("Target generation failed for ticker",
				zap.String("ticker", profile.Ticker), zap.Error(err))
			continue
		}
		totalCreated += created
	}

	zap.L().Info("Target generation completed", zap.Int("created", totalCreated))
}

func generateTargetsForTicker(ctx context.Context, profile types.Profile) (int, error) {
	price, err := PriceByTicker(ctx, profile.Ticker)
	if err != nil {
		return 0, err
	}
	if price == nil {
		zap.L().Warn("No price data found, skipping ticker", zap.String("ticker", profile.Ticker))
		return 0, nil
	}

	metrics, err := recentMetrics(ctx, profile.Ticker, screeningYears)
	if err != nil {
		return 0, err
	}
	if len(metrics) == 0 || !isValidTarget(metrics) {
		return 0, nil
	}

	summaries, err := recentSummaries(ctx, profile.Ticker, screeningYears)
	if err != nil {
		return 0, err
	}
	summaryMap := make(map[string]types.Summary, len(summaries))
	for _, s := range summaries {
		summaryMap[s.TickerYear] = s
	}

	multiplier := tickerMultiplier(metrics)
	latestFiscalYear := metrics[0].FiscalYear

	created := 0
	for _, metric := range metrics {
		summary, found := summaryMap[metric.TickerYear]
		if !found {
			continue
		}
		if err := upsertTarget(ctx, metric, summary, profile, *price, multiplier, latestFiscalYear); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func upsertTarget(ctx context.Context, metric types.Metric, summary types.Summary,
	profile types.Profile, price types.Price, multiplier float64, latestFiscalYear string) error {

	dcfValuePerShare := metric.ValueData.DCFValuePerShare

	var targetPrice float64
	if multiplier > 0 && dcfValuePerShare > 0 {
		targetPrice = dcfValuePerShare / multiplier
	}

	// The latest fiscal year is priced at the current quote, older years at
	// that year's average.
	var marketPrice float64
	if metric.FiscalYear == latestFiscalYear {
		marketPrice = price.Price
	} else {
		marketPrice = price.AveragePrices[metric.FiscalYear]
	}
	if marketPrice == 0 {
		return fmt.Errorf("market price not found for %s", metric.TickerYear)
	}

	// A missing rate aborts this ticker, unlike the silent skip during
	// metric generation.
	rate, err := ExchangeRateFor(ctx, summary.Currency, metric.FiscalYear)
	if err != nil {
		return err
	}
	if rate == nil {
		return fmt.Errorf("exchange rate not found for %s_%s", summary.Currency, metric.FiscalYear)
	}

	dcfValueUSD := round2(dcfValuePerShare)
	marketPriceUSD := round2(marketPrice)
	targetPriceUSD := round2(targetPrice)

	target := types.Target{
		Ticker:           metric.Ticker,
		TickerYear:       metric.TickerYear,
		FiscalYear:       metric.FiscalYear,
		Exchange:         profile.Exchange,
		Industry:         summary.Industry,
		OriginalCurrency: summary.Currency,
		ExchangeRate:     rate.RateToUSD,
		DCFValueUSD:      dcfValueUSD,
		MarketPriceUSD:   marketPriceUSD,
		TargetPriceUSD:   targetPriceUSD,
		PotentialReturn:  round2((targetPriceUSD - marketPriceUSD) / marketPriceUSD * 100),
	}

	_, err = collection(colTargets).UpdateOne(ctx,
		bson.M{"ticker_year": target.TickerYear},
		bson.M{"$set": target},
		options.Update().SetUpsert(true))
	return err
}

// isValidTarget qualifies a ticker only when every screened year passes every
// threshold. A nil ratio fails its year; missing data disqualifies.
func isValidTarget(metrics []types.Metric) bool {
	for _, m := range metrics {
		if !meetsRequirements(m) {
			return false
		}
	}
	return true
}

func meetsRequirements(m types.Metric) bool {
	industry := strings.TrimSpace(strings.ToLower(m.Industry))
	for _, excluded := range targetRequirements.excludedIndustries {
		if industry == excluded {
			return false
		}
	}

	dte := m.StabilityData.DebtToEquity
	roe := m.PerformanceData.ReturnOnEquity
	gm := m.ProfitabilityData.GrossMargin
	nm := m.ProfitabilityData.NetMargin
	cr := m.StabilityData.CurrentRatio

	switch {
	case dte == nil || *dte > targetRequirements.maxDebtToEquity:
		return false
	case gm == nil || *gm < targetRequirements.minGrossMargin:
		return false
	case nm == nil || *nm < targetRequirements.minNetMargin:
		return false
	case roe == nil || *roe < targetRequirements.minReturnOnEquity:
		return false
	case cr == nil || *cr < targetRequirements.minCurrentRatio:
		return false
	}
	return true
}

// tickerMultiplier is the mean of the non-negative dcf-to-average-price
// ratios across the screened years; nil and negative ratios are excluded
// from both sum and count.
func tickerMultiplier(metrics []types.Metric) float64 {
	var sum float64
	var count int
	for _, m := range metrics {
		ratio := m.ValueData.DCFToAvgPrice
		if ratio == nil || *ratio < 0 {
			continue
		}
		sum += *ratio
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func recentMetrics(ctx context.Context, ticker string, limit int) ([]types.Metric, error) {
	opts := options.Find().SetSort(bson.M{"fiscalYear": -1}).SetLimit(int64(limit))
	cursor, err := collection(colMetrics).Find(ctx, bson.M{"ticker": ticker}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var metrics []types.Metric
	if err := cursor.All(ctx, &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

func recentSummaries(ctx context.Context, ticker string, limit int) ([]types.Summary, error) {
	opts := options.Find().SetSort(bson.M{"fiscalYear": -1}).SetLimit(int64(limit))
	cursor, err := collection(colSummaries).Find(ctx, bson.M{"ticker": ticker}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []types.Summary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}
