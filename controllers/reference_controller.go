package controllers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"stockscreener/services"
	"stockscreener/types"
)

// ReferenceController maintains the two reference tables feeding the
// pipeline: exchange rates and per-year calculation constants. Numeric fields
// arrive as strings and are validated here, before reaching the core.
type ReferenceControllerI interface {
	CreateExchangeRate(ctx *gin.Context)
	UpdateExchangeRate(ctx *gin.Context)
	CreateCalculationConstants(ctx *gin.Context)
	UpdateCalculationConstants(ctx *gin.Context)
}

type referenceController struct{}

var ReferenceController ReferenceControllerI = &referenceController{}

type exchangeRateRequest struct {
	Currency  string `json:"currency" binding:"required"`
	Year      string `json:"year" binding:"required"`
	RateToUSD string `json:"rateToUSD" binding:"required"`
}

type constantsRequest struct {
	Year              string `json:"year" binding:"required"`
	RiskFreeRate      string `json:"riskFreeRate" binding:"required"`
	EquityRiskPremium string `json:"equityRiskPremium" binding:"required"`
	CostOfDebt        string `json:"costOfDebt" binding:"required"`
	TaxRate           string `json:"taxRate" binding:"required"`
}

func (r *referenceController) CreateExchangeRate(ctx *gin.Context) {
	var req exchangeRateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if !validYear(req.Year) || req.Year == "" {
		ctx.JSON(400, gin.H{"error": "Invalid year"})
		return
	}

	rateToUSD, err := parseNumeric("rateToUSD", req.RateToUSD)
	if err != nil {
		ctx.JSON(400, gin.H{"error": err.Error()})
		return
	}

	err = services.CreateExchangeRate(ctx, types.ExchangeRate{
		Currency:  req.Currency,
		Year:      req.Year,
		RateToUSD: rateToUSD,
	})
	if err != nil {
		ctx.JSON(conflictOr500(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(201, gin.H{"message": "Exchange rate created"})
}

func (r *referenceController) UpdateExchangeRate(ctx *gin.Context) {
	currency := ctx.Param("currency")
	year := ctx.Param("year")
	if !validYear(year) || year == "" {
		ctx.JSON(400, gin.H{"error": "Invalid year"})
		return
	}

	var req struct {
		RateToUSD string `json:"rateToUSD" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{"error": err.Error()})
		return
	}

	rateToUSD, err := parseNumeric("rateToUSD", req.RateToUSD)
	if err != nil {
		ctx.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateExchangeRate(ctx, currency, year, rateToUSD); err != nil {
		ctx.JSON(404, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(200, gin.H{"message": "Exchange rate updated"})
}

func (r *referenceController) CreateCalculationConstants(ctx *gin.Context) {
	constants, code, err := bindConstants(ctx)
	if err != nil {
		ctx.JSON(code, gin.H{"error": err.Error()})
		return
	}

	if err := services.CreateCalculationConstants(ctx, constants); err != nil {
		ctx.JSON(conflictOr500(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(201, gin.H{"message": "Calculation constants created"})
}

func (r *referenceController) UpdateCalculationConstants(ctx *gin.Context) {
	constants, code, err := bindConstants(ctx)
	if err != nil {
		ctx.JSON(code, gin.H{"error": err.Error()})
		return
	}
	if year := ctx.Param("year"); year != "" {
		constants.Year = year
	}

	if err := services.UpdateCalculationConstants(ctx, constants); err != nil {
		ctx.JSON(404, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(200, gin.H{"message": "Calculation constants updated"})
}

func bindConstants(ctx *gin.Context) (types.CalculationConstants, int, error) {
	var req constantsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return types.CalculationConstants{}, 400, err
	}
	if !validYear(req.Year) || req.Year == "" {
		return types.CalculationConstants{}, 400, fmt.Errorf("invalid year")
	}

	fields := map[string]string{
		"riskFreeRate":      req.RiskFreeRate,
		"equityRiskPremium": req.EquityRiskPremium,
		"costOfDebt":        req.CostOfDebt,
		"taxRate":           req.TaxRate,
	}
	parsed := make(map[string]float64, len(fields))
	for name, value := range fields {
		v, err := parseNumeric(name, value)
		if err != nil {
			return types.CalculationConstants{}, 400, err
		}
		parsed[name] = v
	}

	return types.CalculationConstants{
		Year:              req.Year,
		RiskFreeRate:      parsed["riskFreeRate"],
		EquityRiskPremium: parsed["equityRiskPremium"],
		CostOfDebt:        parsed["costOfDebt"],
		TaxRate:           parsed["taxRate"],
	}, 0, nil
}

func parseNumeric(name, value string) (float64, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, fmt.Errorf("%s must be a valid number or numeric string", name)
	}
	return parsed, nil
}

func conflictOr500(err error) int {
	if strings.Contains(err.Error(), "already exist") {
		return 409
	}
	return 500
}
