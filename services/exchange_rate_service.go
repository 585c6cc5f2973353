package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"stockscreener/types"
)

// CreateExchangeRate inserts one rate keyed by currency_year. A duplicate key
// is a conflict raised to the caller, not an upsert.
func CreateExchangeRate(ctx context.Context, rate types.ExchangeRate) error {
	rate.CurrencyYear = rate.Currency + "_" + rate.Year

	err := collection(colExchangeRates).FindOne(ctx, bson.M{"currency_year": rate.CurrencyYear}).Err()
	if err == nil {
		return fmt.Errorf("exchange rate for %s already exists", rate.CurrencyYear)
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	_, err = collection(colExchangeRates).InsertOne(ctx, rate)
	return err
}

// UpdateExchangeRate sets the rate-to-USD for an existing (currency, year).
func UpdateExchangeRate(ctx context.Context, currency, year string, rateToUSD float64) error {
	res, err := collection(colExchangeRates).UpdateOne(ctx,
		bson.M{"currency": currency, "year": year},
		bson.M{"$set": bson.M{"rateToUSD": rateToUSD}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("exchange rate for %s_%s does not exist", currency, year)
	}
	return nil
}

// ExchangeRateFor is a point read for one (currency, year); nil when absent.
func ExchangeRateFor(ctx context.Context, currency, year string) (*types.ExchangeRate, error) {
	var rate types.ExchangeRate
	err := collection(colExchangeRates).FindOne(ctx, bson.M{"currency_year": currency + "_" + year}).Decode(&rate)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}
