package routes

import (
	"log"
	"strconv"

	_ "portal_pricing/docs" // swag-generated documentation
	"portal_pricing/internal/adapter/http/handlers"
	"portal_pricing/internal/adapter/persistence/repository"
	"portal_pricing/internal/infrastructure/database"
	"portal_pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ddb := database.ConnectDynamoDB()

	settingsRepo := repository.NewPriceSettingsDynamoRepository(ddb)
	fieldsRepo := repository.NewFormFieldDynamoRepository(ddb)
	recordsRepo := repository.NewRecordPriceDynamoRepository(ddb)

	settingsUseCase := usecase.NewPriceSettingsUseCase(settingsRepo, fieldsRepo, logger)
	statusUseCase := usecase.NewPriceStatusUseCase(settingsRepo, recordsRepo, logger)
	overrideUseCase := usecase.NewManualOverrideUseCase(recordsRepo, statusUseCase, logger)
	batchUseCase := usecase.NewBatchApplyUseCase(statusUseCase, recordsRepo, logger)

	settingsHandler := handlers.NewPriceSettingsHandler(settingsUseCase)
	statusHandler := handlers.NewPriceStatusHandler(statusUseCase)
	overrideHandler := handlers.NewManualOverrideHandler(overrideUseCase)
	batchHandler := handlers.NewBatchApplyHandler(batchUseCase)
	formFieldHandler := handlers.NewFormFieldHandler(fieldsRepo)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, settingsHandler, statusHandler, overrideHandler, batchHandler, formFieldHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
