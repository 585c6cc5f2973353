package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stockscreener/types"
)

// ProfilesForScope returns every profile, or the single profile for a ticker
// when one is given. Generation runs abort when nothing comes back.
func ProfilesForScope(ctx context.Context, ticker string) ([]types.Profile, error) {
	filter := bson.M{}
	if ticker != "" {
		filter = bson.M{"ticker": strings.ToLower(ticker)}
	}

	cursor, err := collection(colProfiles).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []types.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// AllTickers lists every known ticker, the universe for batch operations.
func AllTickers(ctx context.Context) ([]string, error) {
	profiles, err := ProfilesForScope(ctx, "")
	if err != nil {
		return nil, err
	}

	tickers := make([]string, 0, len(profiles))
	for _, p := range profiles {
		tickers = append(tickers, p.Ticker)
	}
	return tickers, nil
}

// UpsertProfile stores a provider profile keyed by ticker.
func UpsertProfile(ctx context.Context, profile types.Profile) error {
	profile.Ticker = strings.ToLower(profile.Ticker)
	_, err := collection(colProfiles).UpdateOne(ctx,
		bson.M{"ticker": profile.Ticker},
		bson.M{"$set": profile},
		options.Update().SetUpsert(true))
	return err
}

// ProfileByTicker returns nil without error when no profile exists.
func ProfileByTicker(ctx context.Context, ticker string) (*types.Profile, error) {
	var profile types.Profile
	err := collection(colProfiles).FindOne(ctx, bson.M{"ticker": strings.ToLower(ticker)}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
