package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"stockscreener/types"
)

// PriceByTicker returns nil without error when no price document exists.
func PriceByTicker(ctx context.Context, ticker string) (*types.Price, error) {
	var price types.Price
	err := collection(colPrices).FindOne(ctx, bson.M{"ticker": strings.ToLower(ticker)}).Decode(&price)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &price, nil
}

// CreatePrice inserts a new price document and refuses to overwrite an
// existing one; refresh goes through UpdatePrice.
func CreatePrice(ctx context.Context, price types.Price) error {
	price.Ticker = strings.ToLower(price.Ticker)

	existing, err := PriceByTicker(ctx, price.Ticker)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("price for ticker %s already exists", price.Ticker)
	}

	_, err = collection(colPrices).InsertOne(ctx, price)
	return err
}

// UpdatePrice replaces the stored price document for a ticker.
func UpdatePrice(ctx context.Context, ticker string, price types.Price) error {
	price.Ticker = strings.ToLower(ticker)
	res, err := collection(colPrices).UpdateOne(ctx,
		bson.M{"ticker": price.Ticker},
		bson.M{"$set": price})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("price for ticker %s does not exist", price.Ticker)
	}
	return nil
}
