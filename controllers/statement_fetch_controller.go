package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stockscreener/services"
)

type StatementFetchControllerI interface {
	FetchStatements(ctx *gin.Context)
	FetchProfile(ctx *gin.Context)
	FetchPrice(ctx *gin.Context)
	UpdatePrice(ctx *gin.Context)
	UpdateAllPrices(ctx *gin.Context)
}

type statementFetchController struct{}

var StatementFetchController StatementFetchControllerI = &statementFetchController{}

// FetchStatements ingests statements and price history for a comma-separated
// ticker list, or for every profiled ticker when none is given. The ticker
// universe is resolved before acknowledging so an empty database surfaces as
// an error instead of a silent no-op run.
func (s *statementFetchController) FetchStatements(ctx *gin.Context) {
	period := ctx.DefaultQuery("period", "annual")
	limit := ctx.DefaultQuery("limit", "10")

	var tickers []string
	if raw := ctx.Query("tickers"); raw != "" {
		tickers = strings.Split(raw, ",")
	} else {
		var err error
		tickers, err = services.AllTickers(ctx)
		if err != nil {
			zap.L().Error("Error fetching tickers", zap.Error(err))
			ctx.JSON(500, gin.H{"error": "Error while fetching tickers"})
			return
		}
	}
	if len(tickers) == 0 {
		ctx.JSON(400, gin.H{"error": "No tickers to fetch"})
		return
	}

	jobID := services.SubmitJob("fetch-statements", func() {
		services.FetchStatementsForTickers(tickers, period, limit)
	})

	ctx.JSON(202, gin.H{
		"message": "Request accepted. Statements will be fetched in the background.",
		"jobId":   jobID,
	})
}

func (s *statementFetchController) FetchProfile(ctx *gin.Context) {
	ticker := ctx.Query("ticker")
	if ticker == "" {
		ctx.JSON(400, gin.H{"error": "Ticker is required"})
		return
	}

	result, err := services.FetchProfiles(ctx, ticker)
	if err != nil {
		zap.L().Error("Error fetching profile", zap.String("ticker", ticker), zap.Error(err))
		ctx.JSON(500, gin.H{"error": "Error while fetching profile"})
		return
	}
	ctx.JSON(201, result)
}

// FetchPrice creates the price document for one ticker. The default window
// reaches back eleven years so per-year averages cover the screening horizon.
func (s *statementFetchController) FetchPrice(ctx *gin.Context) {
	ticker := ctx.Query("ticker")
	if ticker == "" {
		ctx.JSON(400, gin.H{"error": "Ticker is required"})
		return
	}

	currentYear := time.Now().Year()
	from := ctx.DefaultQuery("from", fmt.Sprintf("%d-01-01", currentYear-11))
	to := ctx.DefaultQuery("to", fmt.Sprintf("%d-12-31", currentYear-1))

	if err := services.FetchPriceByTicker(ctx, ticker, from, to); err != nil {
		zap.L().Error("Error fetching price", zap.String("ticker", ticker), zap.Error(err))
		ctx.JSON(500, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(201, gin.H{"message": "Price data fetched"})
}

func (s *statementFetchController) UpdatePrice(ctx *gin.Context) {
	ticker := ctx.Query("ticker")
	if ticker == "" {
		ctx.JSON(400, gin.H{"error": "Ticker is required"})
		return
	}

	currentYear := time.Now().Year()
	from := ctx.DefaultQuery("from", fmt.Sprintf("%d-01-01", currentYear))
	to := ctx.DefaultQuery("to", fmt.Sprintf("%d-12-31", currentYear))

	if err := services.UpdatePriceByTicker(ctx, ticker, from, to); err != nil {
		zap.L().Error("Error updating price", zap.String("ticker", ticker), zap.Error(err))
		ctx.JSON(500, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(201, gin.H{"message": "Price data updated"})
}

func (s *statementFetchController) UpdateAllPrices(ctx *gin.Context) {
	currentYear := time.Now().Year()
	from := ctx.DefaultQuery("from", fmt.Sprintf("%d-01-01", currentYear))
	to := ctx.DefaultQuery("to", fmt.Sprintf("%d-12-31", currentYear))

	tickers, err := services.AllTickers(ctx)
	if err != nil {
		zap.L().Error("Error fetching tickers", zap.Error(err))
		ctx.JSON(500, gin.H{"error": "Error while fetching tickers"})
		return
	}
	if len(tickers) == 0 {
		ctx.JSON(400, gin.H{"error": "No tickers to update"})
		return
	}

	jobID := services.SubmitJob("update-all-prices", func() {
		services.UpdateAllPrices(tickers, from, to)
	})

	ctx.JSON(202, gin.H{
		"message": "Request accepted. Prices will be fetched & updated in the background.",
		"jobId":   jobID,
	})
}
