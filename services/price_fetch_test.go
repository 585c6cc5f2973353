package services

import (
	"math"
	"testing"

	"stockscreener/clients/fmp"
	"stockscreener/types"
)

func TestSummarizePrices(t *testing.T) {
	data := []fmp.DailyClose{
		{Date: "2022-03-01", Close: 10},
		{Date: "2022-09-01", Close: 20},
		{Date: "2023-01-15", Close: 30},
	}

	averages, current := summarizePrices(data)
	if current == nil || current.Date != "2023-01-15" {
		t.Errorf("Expected latest observation 2023-01-15, got %v", current)
	}
	if averages["2022"] != 15 {
		t.Errorf("Expected 2022 average 15, got %v", averages["2022"])
	}
	if averages["2023"] != 30 {
		t.Errorf("Expected 2023 average 30, got %v", averages["2023"])
	}
}

func TestSummarizePrices_Empty(t *testing.T) {
	averages, current := summarizePrices(nil)
	if current != nil {
		t.Errorf("Expected nil current for empty data, got %v", current)
	}
	if len(averages) != 0 {
		t.Errorf("Expected no averages, got %v", averages)
	}
}

func TestMergePrice_NewerObservationReplacesLatest(t *testing.T) {
	existing := types.Price{
		Ticker:        "aapl",
		Price:         150,
		Date:          "2023-06-01",
		AveragePrices: map[string]float64{"2022": 140},
	}

	merged := mergePrice(existing,
		map[string]float64{"2023": 155},
		fmp.DailyClose{Date: "2023-12-01", Close: 160})

	if merged.Price != 160 || merged.Date != "2023-12-01" {
		t.Errorf("Expected latest price replaced, got %v at %v", merged.Price, merged.Date)
	}
	if merged.AveragePrices["2022"] != 140 || merged.AveragePrices["2023"] != 155 {
		t.Errorf("Expected averages merged, got %v", merged.AveragePrices)
	}
}

func TestMergePrice_OlderObservationKeepsLatest(t *testing.T) {
	existing := types.Price{
		Ticker:        "aapl",
		Price:         150,
		Date:          "2023-06-01",
		AveragePrices: map[string]float64{"2023": 149},
	}

	merged := mergePrice(existing,
		map[string]float64{"2022": 120},
		fmp.DailyClose{Date: "2023-01-01", Close: 130})

	if merged.Price != 150 || merged.Date != "2023-06-01" {
		t.Errorf("Expected latest price kept, got %v at %v", merged.Price, merged.Date)
	}
	if merged.AveragePrices["2022"] != 120 || merged.AveragePrices["2023"] != 149 {
		t.Errorf("Expected averages merged without overwrite, got %v", merged.AveragePrices)
	}
}

func TestIsNewerThan(t *testing.T) {
	if !isNewerThan("2023-01-01", "2023-01-02") {
		t.Errorf("Expected 2023-01-02 to be newer")
	}
	if isNewerThan("2023-01-02", "2023-01-02") {
		t.Errorf("Expected equal dates not to be newer")
	}
}

func TestRateMapConvert(t *testing.T) {
	rates := RateMap{
		"EUR_2023": {CurrencyYear: "EUR_2023", Currency: "EUR", Year: "2023", RateToUSD: 1.1},
	}

	usd, err := rates.Convert(100, "EUR", "2023")
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if math.Abs(usd-110) > 1e-9 {
		t.Errorf("Expected 110, got %v", usd)
	}

	if _, err := rates.Convert(100, "JPY", "2023"); err == nil {
		t.Errorf("Expected error for missing rate")
	}
}
