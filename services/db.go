package services

import (
	"os"

	"go.mongodb.org/mongo-driver/mongo"

	mongo_client "stockscreener/clients/mongo"
)

const (
	colIncomes              = "incomes"
	colBalanceSheets        = "balance_sheets"
	colCashflows            = "cashflows"
	colExchangeRates        = "exchange_rates"
	colPrices               = "prices"
	colProfiles             = "profiles"
	colCalculationConstants = "calculation_constants"
	colMetrics              = "metrics"
	colSummaries            = "summaries"
	colTargets              = "targets"
	colTickerYears          = "ticker_years"
)

func collection(name string) *mongo.Collection {
	return mongo_client.Client.Database(os.Getenv("DATABASE")).Collection(name)
}
