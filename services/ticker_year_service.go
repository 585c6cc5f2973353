package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MarkHasMetric flags the ticker_year bookkeeping record after a metric write.
func MarkHasMetric(ctx context.Context, tickerYear string) error {
	return setTickerYearFlag(ctx, tickerYear, "hasMetric")
}

// MarkHasSummary flags the ticker_year bookkeeping record after a summary write.
func MarkHasSummary(ctx context.Context, tickerYear string) error {
	return setTickerYearFlag(ctx, tickerYear, "hasSummary")
}

func setTickerYearFlag(ctx context.Context, tickerYear, flag string) error {
	_, err := collection(colTickerYears).UpdateOne(ctx,
		bson.M{"ticker_year": tickerYear},
		bson.M{"$set": bson.M{"ticker_year": tickerYear, flag: true}},
		options.Update().SetUpsert(true))
	return err
}
