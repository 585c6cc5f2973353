package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stockscreener/types"
)

// CreateCalculationConstants inserts the macro inputs for one year; a
// duplicate year is a conflict raised to the caller.
func CreateCalculationConstants(ctx context.Context, constants types.CalculationConstants) error {
	err := collection(colCalculationConstants).FindOne(ctx, bson.M{"year": constants.Year}).Err()
	if err == nil {
		return fmt.Errorf("calculation constants for %s already exist", constants.Year)
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	_, err = collection(colCalculationConstants).InsertOne(ctx, constants)
	return err
}

// UpdateCalculationConstants sets the macro inputs for an existing year.
func UpdateCalculationConstants(ctx context.Context, constants types.CalculationConstants) error {
	res, err := collection(colCalculationConstants).UpdateOne(ctx,
		bson.M{"year": constants.Year},
		bson.M{"$set": constants})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("calculation constants for %s do not exist", constants.Year)
	}
	return nil
}

// ConstantsForYear looks up the requested year and falls back to the most
// recent year on a miss. Returns nil when the collection is empty; the caller
// decides whether that skips a ticker or aborts a run.
func ConstantsForYear(ctx context.Context, year string) (*types.CalculationConstants, error) {
	var constants types.CalculationConstants

	if year != "" {
		err := collection(colCalculationConstants).FindOne(ctx, bson.M{"year": year}).Decode(&constants)
		if err == nil {
			return &constants, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}

	opts := options.FindOne().SetSort(bson.M{"year": -1})
	err := collection(colCalculationConstants).FindOne(ctx, bson.M{}, opts).Decode(&constants)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &constants, nil
}
