package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"stockscreener/services"
)

type GenerateControllerI interface {
	GenerateMetrics(ctx *gin.Context)
	GenerateSummaries(ctx *gin.Context)
	GenerateTargets(ctx *gin.Context)
}

type generateController struct{}

var GenerateController GenerateControllerI = &generateController{}

// GenerateMetrics triggers metric generation for one ticker or the whole
// universe, optionally scoped to a year. The work is queued and the request
// acknowledged immediately; there is no status channel back.
func (g *generateController) GenerateMetrics(ctx *gin.Context) {
	ticker := ctx.Query("ticker")
	year := ctx.Query("year")
	if !validYear(year) {
		ctx.JSON(400, gin.H{"error": "Invalid year"})
		return
	}

	jobID := services.SubmitJob("generate-metrics", func() {
		services.GenerateMetrics(ticker, year)
	})

	ctx.JSON(202, gin.H{
		"message": "Request accepted. Metrics will be generated in the background.",
		"jobId":   jobID,
	})
}

func (g *generateController) GenerateSummaries(ctx *gin.Context) {
	ticker := ctx.Query("ticker")
	year := ctx.Query("year")
	if !validYear(year) {
		ctx.JSON(400, gin.H{"error": "Invalid year"})
		return
	}

	jobID := services.SubmitJob("generate-summaries", func() {
		services.GenerateSummaries(ticker, year)
	})

	ctx.JSON(202, gin.H{
		"message": "Request accepted. Summaries will be generated in the background.",
		"jobId":   jobID,
	})
}

// GenerateTargets always rebuilds the full universe; it takes no parameters.
func (g *generateController) GenerateTargets(ctx *gin.Context) {
	jobID := services.SubmitJob("generate-targets", func() {
		services.GenerateTargets()
	})

	ctx.JSON(202, gin.H{
		"message": "Request accepted. Targets will be regenerated in the background.",
		"jobId":   jobID,
	})
}

// validYear accepts an empty year or a four-digit one.
func validYear(year string) bool {
	if year == "" {
		return true
	}
	if len(year) != 4 {
		return false
	}
	_, err := strconv.Atoi(year)
	return err == nil
}
