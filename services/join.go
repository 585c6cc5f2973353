package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"stockscreener/types"
)

// StatementTriple is the matched income + balance sheet + cashflow set for
// one ticker_year.
type StatementTriple struct {
	Income       types.IncomeStatement
	BalanceSheet types.BalanceSheet
	Cashflow     types.CashflowStatement
}

// StatementTriplesForTicker fetches the three statement collections for a
// ticker (or a single ticker_year when year is set), issues the reads
// concurrently and inner-joins them on ticker_year. A year is only matched
// when the rate map carries an entry for its reported currency; unmatched or
// rate-less years are silently excluded, so the join is safe to re-run as new
// statements arrive.
func StatementTriplesForTicker(ctx context.Context, ticker, year string, rates RateMap) ([]StatementTriple, error) {
	filter := bson.M{"ticker": ticker}
	if year != "" {
		filter = bson.M{"ticker_year": ticker + "_" + year}
	}

	var (
		incomes   []types.IncomeStatement
		balances  []types.BalanceSheet
		cashflows []types.CashflowStatement

		incErr, balErr, cashErr error
		wg                      sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		incomes, incErr = findIncomes(ctx, filter)
	}()
	go func() {
		defer wg.Done()
		balances, balErr = findBalanceSheets(ctx, filter)
	}()
	go func() {
		defer wg.Done()
		cashflows, cashErr = findCashflows(ctx, filter)
	}()
	wg.Wait()

	for _, err := range []error{incErr, balErr, cashErr} {
		if err != nil {
			return nil, err
		}
	}

	balMap := make(map[string]types.BalanceSheet, len(balances))
	for _, b := range balances {
		balMap[b.TickerYear] = b
	}
	cashMap := make(map[string]types.CashflowStatement, len(cashflows))
	for _, c := range cashflows {
		cashMap[c.TickerYear] = c
	}

	var triples []StatementTriple
	for _, inc := range incomes {
		bal, foundBal := balMap[inc.TickerYear]
		cash, foundCash := cashMap[inc.TickerYear]
		if !foundBal || !foundCash {
			continue
		}
		if _, hasRate := rates.Rate(inc.Raw.ReportedCurrency, inc.FiscalYear); !hasRate {
			continue
		}
		triples = append(triples, StatementTriple{Income: inc, BalanceSheet: bal, Cashflow: cash})
	}
	return triples, nil
}

func findIncomes(ctx context.Context, filter bson.M) ([]types.IncomeStatement, error) {
	cursor, err := collection(colIncomes).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []types.IncomeStatement
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func findBalanceSheets(ctx context.Context, filter bson.M) ([]types.BalanceSheet, error) {
	cursor, err := collection(colBalanceSheets).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []types.BalanceSheet
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func findCashflows(ctx context.Context, filter bson.M) ([]types.CashflowStatement, error) {
	cursor, err := collection(colCashflows).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []types.CashflowStatement
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
