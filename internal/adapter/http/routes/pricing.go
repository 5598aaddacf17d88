package routes

import (
	"portal_pricing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPricing = "/pricing"
)

func addPricingRoutes(
	rg *gin.RouterGroup,
	settingsHandler *handlers.PriceSettingsHandler,
	statusHandler *handlers.PriceStatusHandler,
	overrideHandler *handlers.ManualOverrideHandler,
	batchHandler *handlers.BatchApplyHandler,
	formFieldHandler *handlers.FormFieldHandler,
) {
	pricing := rg.Group(PathPricing)

	settings := pricing.Group("/settings")
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.POST("", settingsHandler.SaveSettings)
		settings.POST("/validate", settingsHandler.ValidateFormula)
		settings.GET("/integrity", settingsHandler.GetIntegrity)
		settings.POST("/parameters", settingsHandler.AddParameter)
		settings.PUT("/parameters/:id", settingsHandler.UpdateParameter)
		settings.DELETE("/parameters/:id", settingsHandler.RemoveParameter)
		settings.POST("/cleanup", settingsHandler.ProposeCleanup)
		settings.POST("/cleanup/confirm", settingsHandler.ConfirmCleanup)
	}

	records := pricing.Group("/records")
	{
		records.GET("/:id/status", statusHandler.GetStatus)
		records.GET("/:id/comparison", statusHandler.GetComparison)
		records.POST("/:id/apply", statusHandler.ApplyPrice)
		records.PUT("/:id/override", overrideHandler.SetOverride)
		records.DELETE("/:id/override", overrideHandler.ClearOverride)
	}

	batches := pricing.Group("/batches")
	{
		batches.POST("", batchHandler.StartBatch)
		batches.GET("/:id", batchHandler.GetProgress)
		batches.POST("/:id/cancel", batchHandler.CancelBatch)
	}

	pricing.GET("/form-fields", formFieldHandler.ListFormFields)
	pricing.POST("/form-fields", formFieldHandler.SaveFormFields)
}
