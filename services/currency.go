package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"stockscreener/types"
)

// RateMap is the full exchange-rate table keyed by currency_year. It is built
// once per run and read-only afterwards; calculations receive it explicitly
// instead of reaching for shared state.
type RateMap map[string]types.ExchangeRate

// LoadRateMap reads every exchange rate into memory.
func LoadRateMap(ctx context.Context) (RateMap, error) {
	cursor, err := collection(colExchangeRates).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rates []types.ExchangeRate
	if err := cursor.All(ctx, &rates); err != nil {
		return nil, err
	}

	m := make(RateMap, len(rates))
	for _, rate := range rates {
		m[rate.CurrencyYear] = rate
	}
	return m, nil
}

// Rate returns the rate-to-USD for (currency, year).
func (m RateMap) Rate(currency, year string) (float64, bool) {
	rate, ok := m[currency+"_"+year]
	if !ok {
		return 0, false
	}
	return rate.RateToUSD, true
}

// Convert turns an amount in (currency, year) into USD. A missing rate is an
// error for the observation being converted, never a reason to guess.
func (m RateMap) Convert(amount float64, currency, year string) (float64, error) {
	rate, ok := m.Rate(currency, year)
	if !ok {
		return 0, fmt.Errorf("no exchange rate for %s_%s", currency, year)
	}
	return amount * rate, nil
}
