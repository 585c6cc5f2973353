package types

// IncomeRaw is the provider-native income statement payload, persisted as-is.
type IncomeRaw struct {
	Symbol                      string  `bson:"symbol" json:"symbol"`
	FiscalYear                  string  `bson:"fiscalYear" json:"fiscalYear"`
	ReportedCurrency            string  `bson:"reportedCurrency" json:"reportedCurrency"`
	Revenue                     float64 `bson:"revenue" json:"revenue"`
	CostOfRevenue               float64 `bson:"costOfRevenue" json:"costOfRevenue"`
	GrossProfit                 float64 `bson:"grossProfit" json:"grossProfit"`
	OperatingExpenses           float64 `bson:"operatingExpenses" json:"operatingExpenses"`
	OperatingIncome             float64 `bson:"operatingIncome" json:"operatingIncome"`
	DepreciationAndAmortization float64 `bson:"depreciationAndAmortization" json:"depreciationAndAmortization"`
	EBITDA                      float64 `bson:"ebitda" json:"ebitda"`
	NetIncome                   float64 `bson:"netIncome" json:"netIncome"`
	EPS                         float64 `bson:"eps" json:"eps"`
	EPSDiluted                  float64 `bson:"epsDiluted" json:"epsdiluted"`
	WeightedAverageShsOut       float64 `bson:"weightedAverageShsOut" json:"weightedAverageShsOut"`
	WeightedAverageShsOutDil    float64 `bson:"weightedAverageShsOutDil" json:"weightedAverageShsOutDil"`
}

// BalanceSheetRaw is the provider-native balance sheet payload.
type BalanceSheetRaw struct {
	Symbol                  string  `bson:"symbol" json:"symbol"`
	FiscalYear              string  `bson:"fiscalYear" json:"fiscalYear"`
	ReportedCurrency        string  `bson:"reportedCurrency" json:"reportedCurrency"`
	TotalAssets             float64 `bson:"totalAssets" json:"totalAssets"`
	TotalLiabilities        float64 `bson:"totalLiabilities" json:"totalLiabilities"`
	TotalEquity             float64 `bson:"totalEquity" json:"totalEquity"`
	TotalCurrentAssets      float64 `bson:"totalCurrentAssets" json:"totalCurrentAssets"`
	TotalCurrentLiabilities float64 `bson:"totalCurrentLiabilities" json:"totalCurrentLiabilities"`
	TotalDebt               float64 `bson:"totalDebt" json:"totalDebt"`
	LongTermDebt            float64 `bson:"longTermDebt" json:"longTermDebt"`
}

// CashflowRaw is the provider-native cashflow statement payload.
type CashflowRaw struct {
	Symbol                               string  `bson:"symbol" json:"symbol"`
	FiscalYear                           string  `bson:"fiscalYear" json:"fiscalYear"`
	ReportedCurrency                     string  `bson:"reportedCurrency" json:"reportedCurrency"`
	CapitalExpenditure                   float64 `bson:"capitalExpenditure" json:"capitalExpenditure"`
	DepreciationAndAmortization          float64 `bson:"depreciationAndAmortization" json:"depreciationAndAmortization"`
	NetCashProvidedByOperatingActivities float64 `bson:"netCashProvidedByOperatingActivities" json:"netCashProvidedByOperatingActivities"`
	FreeCashFlow                         float64 `bson:"freeCashFlow" json:"freeCashFlow"`
}

// IncomeStatement is one fiscal-year income observation keyed by ticker_year.
type IncomeStatement struct {
	Ticker     string    `bson:"ticker"`
	FiscalYear string    `bson:"fiscalYear"`
	TickerYear string    `bson:"ticker_year"`
	Raw        IncomeRaw `bson:"raw"`
}

type BalanceSheet struct {
	Ticker     string          `bson:"ticker"`
	FiscalYear string          `bson:"fiscalYear"`
	TickerYear string          `bson:"ticker_year"`
	Raw        BalanceSheetRaw `bson:"raw"`
}

type CashflowStatement struct {
	Ticker     string      `bson:"ticker"`
	FiscalYear string      `bson:"fiscalYear"`
	TickerYear string      `bson:"ticker_year"`
	Raw        CashflowRaw `bson:"raw"`
}

// ExchangeRate holds one rate-to-USD scalar keyed by currency_year.
type ExchangeRate struct {
	CurrencyYear string  `bson:"currency_year"`
	Currency     string  `bson:"currency"`
	Year         string  `bson:"year"`
	RateToUSD    float64 `bson:"rateToUSD"`
}

// Price is one per ticker: the latest close plus per-year averages.
type Price struct {
	Ticker        string             `bson:"ticker"`
	Price         float64            `bson:"price"`
	Date          string             `bson:"date"`
	AveragePrices map[string]float64 `bson:"averagePrices"`
}

type Profile struct {
	Ticker      string  `bson:"ticker" json:"symbol"`
	CompanyName string  `bson:"companyName" json:"companyName"`
	Exchange    string  `bson:"exchange" json:"exchange"`
	Sector      string  `bson:"sector" json:"sector"`
	Industry    string  `bson:"industry" json:"industry"`
	Beta        float64 `bson:"beta" json:"beta"`
}

// CalculationConstants are the per-year macro inputs to the DCF model.
type CalculationConstants struct {
	Year              string  `bson:"year"`
	RiskFreeRate      float64 `bson:"riskFreeRate"`
	EquityRiskPremium float64 `bson:"equityRiskPremium"`
	CostOfDebt        float64 `bson:"costOfDebt"`
	TaxRate           float64 `bson:"taxRate"`
}

// Ratio fields are pointers: a stored document may predate a given ratio,
// and a missing value disqualifies during screening, it never defaults.
type PerformanceData struct {
	ReturnOnEquity *float64 `bson:"returnOnEquity,omitempty"`
	SalesToEquity  *float64 `bson:"salesToEquity,omitempty"`
}

type ProfitabilityData struct {
	GrossMargin *float64 `bson:"grossMargin,omitempty"`
	NetMargin   *float64 `bson:"netMargin,omitempty"`
}

type StabilityData struct {
	DebtToEquity *float64 `bson:"debtToEquity,omitempty"`
	DebtToEbitda *float64 `bson:"debtToEbitda,omitempty"`
	CurrentRatio *float64 `bson:"currentRatio,omitempty"`
}

type ValueData struct {
	DCFValuePerShare float64  `bson:"dcfValuePerShare"`
	DCFToAvgPrice    *float64 `bson:"dcfToAvgPrice,omitempty"`
	PriceToEarnings  *float64 `bson:"priceToEarnings,omitempty"`
	EarningsYield    *float64 `bson:"earningsYield,omitempty"`
	PriceToSales     *float64 `bson:"priceToSales,omitempty"`
	PriceToBook      *float64 `bson:"priceToBook,omitempty"`
}

// Metric holds the derived ratios and DCF outputs for one ticker_year.
type Metric struct {
	Ticker            string            `bson:"ticker"`
	FiscalYear        string            `bson:"fiscalYear"`
	TickerYear        string            `bson:"ticker_year"`
	AvgStockPrice     float64           `bson:"avgStockPrice"`
	Industry          string            `bson:"industry"`
	Sector            string            `bson:"sector"`
	PerformanceData   PerformanceData   `bson:"performanceData"`
	ProfitabilityData ProfitabilityData `bson:"profitabilityData"`
	StabilityData     StabilityData     `bson:"stabilityData"`
	ValueData         ValueData         `bson:"valueData"`
}

// Summary flattens the raw fundamentals of one ticker_year.
type Summary struct {
	Ticker                      string  `bson:"ticker"`
	FiscalYear                  string  `bson:"fiscalYear"`
	TickerYear                  string  `bson:"ticker_year"`
	Beta                        float64 `bson:"beta"`
	Industry                    string  `bson:"industry"`
	Sector                      string  `bson:"sector"`
	Currency                    string  `bson:"currency"`
	Assets                      float64 `bson:"assets"`
	CurrentAssets               float64 `bson:"currentAssets"`
	CurrentLiabilities          float64 `bson:"currentLiabilities"`
	Equity                      float64 `bson:"equity"`
	Liabilities                 float64 `bson:"liabilities"`
	LongTermDebt                float64 `bson:"longTermDebt"`
	TotalDebt                   float64 `bson:"totalDebt"`
	AvgSharesOutstanding        float64 `bson:"avgSharesOutstanding"`
	AvgSharesOutstandingDiluted float64 `bson:"avgSharesOutstandingDiluted"`
	CostOfRevenue               float64 `bson:"costOfRevenue"`
	DepreciationAndAmortization float64 `bson:"depreciationAndAmortization"`
	EBITDA                      float64 `bson:"ebitda"`
	EPS                         float64 `bson:"eps"`
	EPSDiluted                  float64 `bson:"epsDiluted"`
	GrossProfit                 float64 `bson:"grossProfit"`
	NetIncome                   float64 `bson:"netIncome"`
	OperatingExpenses           float64 `bson:"operatingExpenses"`
	OperatingIncome             float64 `bson:"operatingIncome"`
	Revenue                     float64 `bson:"revenue"`
	CapEx                       float64 `bson:"capEx"`
	CashflowFromOps             float64 `bson:"cashflowFromOps"`
}

// Target is one screened candidate with its valuation and potential return.
type Target struct {
	Ticker           string  `bson:"ticker"`
	TickerYear       string  `bson:"ticker_year"`
	FiscalYear       string  `bson:"fiscalYear"`
	Exchange         string  `bson:"exchange"`
	Industry         string  `bson:"industry"`
	OriginalCurrency string  `bson:"originalCurrency"`
	ExchangeRate     float64 `bson:"exchangeRate"`
	DCFValueUSD      float64 `bson:"dcfValueUSD"`
	MarketPriceUSD   float64 `bson:"marketPriceUSD"`
	TargetPriceUSD   float64 `bson:"targetPriceUSD"`
	PotentialReturn  float64 `bson:"potentialReturn"`
}

// TickerYear is the bookkeeping record for one ticker_year observation.
type TickerYear struct {
	TickerYear string `bson:"ticker_year"`
	HasMetric  bool   `bson:"hasMetric"`
	HasSummary bool   `bson:"hasSummary"`
}
