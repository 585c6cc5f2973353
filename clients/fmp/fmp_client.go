// Package fmp wraps the external financial-data provider's REST API. Requests
// share a token-bucket limiter so bursty batch runs stay inside the provider's
// per-minute quota; batch pacing itself lives with the callers.
package fmp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"stockscreener/types"
)

var (
	httpClient = &http.Client{Timeout: 10 * time.Second}
	limiter    = rate.NewLimiter(rate.Every(250*time.Millisecond), 5)
)

// DailyClose is one historical daily close observation.
type DailyClose struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

type historicalPriceResponse struct {
	Symbol     string       `json:"symbol"`
	Historical []DailyClose `json:"historical"`
}

func BalanceSheets(ctx context.Context, ticker, period, limit string) ([]types.BalanceSheetRaw, error) {
	var out []types.BalanceSheetRaw
	params := url.Values{}
	params.Add("period", period)
	params.Add("limit", limit)
	if err := get(ctx, "balance-sheet-statement/"+ticker, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func IncomeStatements(ctx context.Context, ticker, period, limit string) ([]types.IncomeRaw, error) {
	var out []types.IncomeRaw
	params := url.Values{}
	params.Add("period", period)
	params.Add("limit", limit)
	if err := get(ctx, "income-statement/"+ticker, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func CashflowStatements(ctx context.Context, ticker, period, limit string) ([]types.CashflowRaw, error) {
	var out []types.CashflowRaw
	params := url.Values{}
	params.Add("period", period)
	params.Add("limit", limit)
	if err := get(ctx, "cash-flow-statement/"+ticker, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func Profiles(ctx context.Context, ticker string) ([]types.Profile, error) {
	var out []types.Profile
	if err := get(ctx, "profile/"+ticker, url.Values{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// HistoricalPrices returns daily closes for (ticker, from, to), newest first
// per the provider's contract; callers must not rely on the ordering.
func HistoricalPrices(ctx context.Context, ticker, from, to string) ([]DailyClose, error) {
	params := url.Values{}
	params.Add("from", from)
	params.Add("to", to)

	var out historicalPriceResponse
	if err := get(ctx, "historical-price-full/"+ticker, params, &out); err != nil {
		return nil, err
	}
	return out.Historical, nil
}

func get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if err := limiter.Wait(ctx); err != nil {
		return err
	}

	params.Add("apikey", os.Getenv("FIN_API_KEY"))
	reqURL := os.Getenv("FIN_API_URL") + "/" + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		zap.L().Error("provider request failed", zap.String("path", path), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		zap.L().Error("failed to unmarshal provider response", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}
