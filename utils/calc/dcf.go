package calc

import (
	"math"

	"stockscreener/types"
)

const (
	// Going-concern assumptions: 2% terminal growth over a 20 year horizon.
	terminalGrowthRate = 0.02
	horizonYears       = 20
)

// DCFInput carries the fundamentals feeding the valuation. CapEx keeps the
// provider's sign convention, where an outflow is already negative.
type DCFInput struct {
	NetIncome                   float64
	Beta                        float64
	CapEx                       float64
	DepreciationAndAmortization float64
	LongTermDebt                float64
	TotalDebt                   float64
	AvgSharesOutstanding        float64
	AvgStockPrice               float64
	RateToUSD                   float64
}

// DCFValuePerShare discounts a 20-year terminal free cash flow back to a
// present USD value per share. Deterministic and total: degenerate inputs
// yield 0 rather than an error. WACC at or below the terminal growth rate is
// deliberately not clamped and can produce a negative value.
func DCFValuePerShare(in DCFInput, constants types.CalculationConstants) float64 {
	if in.NetIncome < 0 {
		return 0
	}

	operatingCashFlow := in.NetIncome + in.DepreciationAndAmortization
	freeCashFlow := operatingCashFlow - in.CapEx

	equity := in.AvgSharesOutstanding * in.AvgStockPrice
	debt := in.LongTermDebt
	if debt == 0 {
		debt = in.TotalDebt
	}

	costOfEquity := constants.RiskFreeRate + in.Beta*constants.EquityRiskPremium

	var wacc float64
	if equity+debt != 0 {
		wacc = costOfEquity*equity/(equity+debt) +
			constants.CostOfDebt*(1-constants.TaxRate)*debt/(equity+debt)
	}

	// Terminal value is discounted at WACC plus a 10% spread, pinned to 1.1
	// when WACC is zero so the discount never vanishes.
	discountRate := wacc * 1.1
	if wacc == 0 {
		discountRate = 1.1
	}

	terminalFCF := freeCashFlow * math.Pow(1+terminalGrowthRate, horizonYears)
	terminalValue := terminalFCF / (wacc - terminalGrowthRate)
	presentValue := terminalValue / math.Pow(1+discountRate, horizonYears)

	if in.AvgSharesOutstanding <= 0 {
		return 0
	}
	return presentValue * in.RateToUSD / in.AvgSharesOutstanding
}
