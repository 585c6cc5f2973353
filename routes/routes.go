package routes

import (
	"stockscreener/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	v1 := r.Group("/api")

	{
		v1.GET("/keepServerRunning", controllers.HealthController.IsRunning)

		v1.POST("/metrics/generate", controllers.GenerateController.GenerateMetrics)
		v1.POST("/summaries/generate", controllers.GenerateController.GenerateSummaries)
		v1.POST("/targets/generate", controllers.GenerateController.GenerateTargets)

		v1.POST("/statements/fetch", controllers.StatementFetchController.FetchStatements)
		v1.POST("/profiles/fetch", controllers.StatementFetchController.FetchProfile)
		v1.POST("/prices/fetch", controllers.StatementFetchController.FetchPrice)
		v1.POST("/prices/update", controllers.StatementFetchController.UpdatePrice)
		v1.POST("/prices/updateAll", controllers.StatementFetchController.UpdateAllPrices)

		v1.POST("/exchangeRates", controllers.ReferenceController.CreateExchangeRate)
		v1.PUT("/exchangeRates/:currency/:year", controllers.ReferenceController.UpdateExchangeRate)
		v1.POST("/calculationConstants", controllers.ReferenceController.CreateCalculationConstants)
		v1.PUT("/calculationConstants/:year", controllers.ReferenceController.UpdateCalculationConstants)
	}
}
