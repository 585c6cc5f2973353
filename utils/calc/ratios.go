// Package calc holds the pure financial calculations: the ratio suite and the
// DCF valuation model. Functions never return errors; numerically invalid
// states map to a sentinel (0 or nil) instead.
package calc

// ReturnOnEquity returns netIncome over book equity, 0 when equity is not
// positive. Note the asymmetry with DebtToEquity, which returns nil in the
// same state; both match the observed production behavior.
func ReturnOnEquity(netIncome, assets, liabilities float64) float64 {
	equity := assets - liabilities
	if equity <= 0 {
		return 0
	}
	return netIncome / equity
}

// SalesToEquity returns revenue over book equity, 0 when equity is not positive.
func SalesToEquity(revenue, assets, liabilities float64) float64 {
	equity := assets - liabilities
	if equity <= 0 {
		return 0
	}
	return revenue / equity
}

func GrossMargin(grossProfit, revenue float64) float64 {
	if revenue == 0 {
		return 0
	}
	return grossProfit / revenue
}

func NetMargin(netIncome, revenue float64) float64 {
	if revenue == 0 {
		return 0
	}
	return netIncome / revenue
}

// DebtToEquity returns nil when equity is not positive.
func DebtToEquity(assets, liabilities float64) *float64 {
	equity := assets - liabilities
	if equity <= 0 {
		return nil
	}
	v := liabilities / equity
	return &v
}

// DebtToEbitda returns nil when ebitda is not positive.
func DebtToEbitda(totalDebt, ebitda float64) *float64 {
	if ebitda <= 0 {
		return nil
	}
	v := totalDebt / ebitda
	return &v
}

// CurrentRatio returns 1 when there are no current liabilities.
func CurrentRatio(currentAssets, currentLiabilities float64) float64 {
	if currentLiabilities == 0 {
		return 1
	}
	return currentAssets / currentLiabilities
}

// PriceToEarnings divides the average stock price by USD earnings per share;
// nil when net income is not positive.
func PriceToEarnings(netIncome, avgStockPrice, avgSharesOutstanding, rateToUSD float64) *float64 {
	if netIncome <= 0 {
		return nil
	}
	v := avgStockPrice / (netIncome * rateToUSD / avgSharesOutstanding)
	return &v
}

// PriceToSales is nil when revenue or shares outstanding are not positive.
func PriceToSales(revenue, avgStockPrice, avgSharesOutstanding, rateToUSD float64) *float64 {
	if revenue <= 0 || avgSharesOutstanding <= 0 {
		return nil
	}
	v := avgStockPrice / (revenue * rateToUSD / avgSharesOutstanding)
	return &v
}

// PriceToBook is nil when book equity or shares outstanding are not positive.
func PriceToBook(equity, avgStockPrice, avgSharesOutstanding, rateToUSD float64) *float64 {
	if equity <= 0 || avgSharesOutstanding <= 0 {
		return nil
	}
	v := avgStockPrice / (equity * rateToUSD / avgSharesOutstanding)
	return &v
}

// EarningsYield is the inverse of a non-nil, non-zero price-to-earnings.
func EarningsYield(priceToEarnings *float64) *float64 {
	if priceToEarnings == nil || *priceToEarnings == 0 {
		return nil
	}
	v := 1 / *priceToEarnings
	return &v
}
