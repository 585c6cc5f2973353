package calc

import (
	"math"
	"testing"
)

func TestCurrentRatio_NoLiabilities(t *testing.T) {
	result := CurrentRatio(1000, 0)
	if result != 1 {
		t.Errorf("Expected 1, got %v", result)
	}
}

func TestCurrentRatio(t *testing.T) {
	result := CurrentRatio(3000, 1500)
	if result != 2 {
		t.Errorf("Expected 2, got %v", result)
	}
}

func TestDebtToEquity_NoEquity(t *testing.T) {
	result := DebtToEquity(1000, 1000)
	if result != nil {
		t.Errorf("Expected nil, got %v", *result)
	}
}

func TestDebtToEquity(t *testing.T) {
	result := DebtToEquity(3000, 1000)
	if result == nil || *result != 0.5 {
		t.Errorf("Expected 0.5, got %v", result)
	}
}

func TestReturnOnEquity_NoEquity(t *testing.T) {
	result := ReturnOnEquity(1000, 1000, 1000)
	if result != 0 {
		t.Errorf("Expected 0, got %v", result)
	}
}

func TestReturnOnEquity(t *testing.T) {
	result := ReturnOnEquity(100, 3000, 2000)
	if result != 0.1 {
		t.Errorf("Expected 0.1, got %v", result)
	}
}

func TestSalesToEquity_NoEquity(t *testing.T) {
	result := SalesToEquity(5000, 800, 900)
	if result != 0 {
		t.Errorf("Expected 0, got %v", result)
	}
}

func TestGrossMargin_ZeroRevenue(t *testing.T) {
	result := GrossMargin(100, 0)
	if result != 0 {
		t.Errorf("Expected 0, got %v", result)
	}
}

func TestNetMargin(t *testing.T) {
	result := NetMargin(70, 1000)
	if math.Abs(result-0.07) > 1e-12 {
		t.Errorf("Expected 0.07, got %v", result)
	}
}

func TestDebtToEbitda_NegativeEbitda(t *testing.T) {
	result := DebtToEbitda(500, -10)
	if result != nil {
		t.Errorf("Expected nil, got %v", *result)
	}
}

func TestDebtToEbitda(t *testing.T) {
	result := DebtToEbitda(500, 250)
	if result == nil || *result != 2 {
		t.Errorf("Expected 2, got %v", result)
	}
}

func TestPriceToEarnings_NegativeIncome(t *testing.T) {
	result := PriceToEarnings(-100, 50, 1000, 1)
	if result != nil {
		t.Errorf("Expected nil, got %v", *result)
	}
}

func TestPriceToEarnings(t *testing.T) {
	// EPS = 1000000/100000 = 10 USD, price 50 -> P/E 5
	result := PriceToEarnings(1000000, 50, 100000, 1)
	if result == nil || *result != 5 {
		t.Errorf("Expected 5, got %v", result)
	}
}

func TestPriceToSales_ZeroShares(t *testing.T) {
	result := PriceToSales(1000, 50, 0, 1)
	if result != nil {
		t.Errorf("Expected nil, got %v", *result)
	}
}

func TestPriceToBook_NegativeEquity(t *testing.T) {
	result := PriceToBook(-1, 50, 1000, 1)
	if result != nil {
		t.Errorf("Expected nil, got %v", *result)
	}
}

func TestEarningsYield(t *testing.T) {
	pe := 5.0
	result := EarningsYield(&pe)
	if result == nil || *result != 0.2 {
		t.Errorf("Expected 0.2, got %v", result)
	}
	if EarningsYield(nil) != nil {
		t.Errorf("Expected nil yield for nil P/E")
	}
}
