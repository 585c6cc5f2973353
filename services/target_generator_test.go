package services

import (
	"testing"

	"stockscreener/types"
)

func ptr(v float64) *float64 {
	return &v
}

func passingMetric(year string) types.Metric {
	return types.Metric{
		Ticker:     "aapl",
		FiscalYear: year,
		TickerYear: "aapl_" + year,
		Industry:   "Consumer Electronics",
		PerformanceData: types.PerformanceData{
			ReturnOnEquity: ptr(0.25),
			SalesToEquity:  ptr(1.4),
		},
		ProfitabilityData: types.ProfitabilityData{
			GrossMargin: ptr(0.42),
			NetMargin:   ptr(0.21),
		},
		StabilityData: types.StabilityData{
			DebtToEquity: ptr(1.2),
			CurrentRatio: ptr(1.5),
		},
		ValueData: types.ValueData{
			DCFValuePerShare: 120,
			DCFToAvgPrice:    ptr(0.9),
		},
	}
}

func fiveYears() []types.Metric {
	years := []string{"2023", "2022", "2021", "2020", "2019"}
	metrics := make([]types.Metric, 0, len(years))
	for _, y := range years {
		metrics = append(metrics, passingMetric(y))
	}
	return metrics
}

func TestIsValidTarget_AllYearsPass(t *testing.T) {
	if !isValidTarget(fiveYears()) {
		t.Errorf("Expected ticker with five passing years to qualify")
	}
}

func TestIsValidTarget_OneMissingROEFailsAll(t *testing.T) {
	metrics := fiveYears()
	metrics[3].PerformanceData.ReturnOnEquity = nil
	if isValidTarget(metrics) {
		t.Errorf("Expected missing ROE in one year to disqualify the ticker")
	}
}

func TestIsValidTarget_NilDebtToEquityFails(t *testing.T) {
	metrics := fiveYears()
	metrics[0].StabilityData.DebtToEquity = nil
	if isValidTarget(metrics) {
		t.Errorf("Expected nil debt-to-equity to disqualify")
	}
}

func TestIsValidTarget_ThresholdViolations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*types.Metric)
	}{
		{"debtToEquity above 2", func(m *types.Metric) { m.StabilityData.DebtToEquity = ptr(2.5) }},
		{"grossMargin below 0.3", func(m *types.Metric) { m.ProfitabilityData.GrossMargin = ptr(0.29) }},
		{"netMargin below 0.07", func(m *types.Metric) { m.ProfitabilityData.NetMargin = ptr(0.06) }},
		{"roe below 0.08", func(m *types.Metric) { m.PerformanceData.ReturnOnEquity = ptr(0.07) }},
		{"currentRatio below 1.15", func(m *types.Metric) { m.StabilityData.CurrentRatio = ptr(1.1) }},
		{"excluded industry", func(m *types.Metric) { m.Industry = "Asset Management" }},
	}

	for _, tc := range cases {
		metrics := fiveYears()
		tc.mutate(&metrics[2])
		if isValidTarget(metrics) {
			t.Errorf("%s: expected disqualification", tc.name)
		}
	}
}

func TestIsValidTarget_BoundaryValuesPass(t *testing.T) {
	metrics := fiveYears()
	metrics[1].StabilityData.DebtToEquity = ptr(2.0)
	metrics[1].ProfitabilityData.GrossMargin = ptr(0.3)
	metrics[1].ProfitabilityData.NetMargin = ptr(0.07)
	metrics[1].PerformanceData.ReturnOnEquity = ptr(0.08)
	metrics[1].StabilityData.CurrentRatio = ptr(1.15)
	if !isValidTarget(metrics) {
		t.Errorf("Expected boundary values to pass inclusively")
	}
}

func TestTickerMultiplier(t *testing.T) {
	metrics := []types.Metric{
		{ValueData: types.ValueData{DCFToAvgPrice: ptr(0.9)}},
		{ValueData: types.ValueData{DCFToAvgPrice: ptr(-0.2)}},
		{ValueData: types.ValueData{DCFToAvgPrice: ptr(1.1)}},
		{ValueData: types.ValueData{DCFToAvgPrice: nil}},
	}
	result := tickerMultiplier(metrics)
	if result != 1.0 {
		t.Errorf("Expected 1.0, got %v", result)
	}
}

func TestTickerMultiplier_NoneQualify(t *testing.T) {
	metrics := []types.Metric{
		{ValueData: types.ValueData{DCFToAvgPrice: ptr(-1.0)}},
		{ValueData: types.ValueData{DCFToAvgPrice: nil}},
	}
	result := tickerMultiplier(metrics)
	if result != 0 {
		t.Errorf("Expected 0, got %v", result)
	}
}

func TestRound2(t *testing.T) {
	if got := round2(12.3456); got != 12.35 {
		t.Errorf("Expected 12.35, got %v", got)
	}
	if got := round2(-0.005); got != -0.01 {
		t.Errorf("Expected -0.01, got %v", got)
	}
}
