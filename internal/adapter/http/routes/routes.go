package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/bernardoxlima/arqOS-mvp-sub004/docs" // This will be auto-generated
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/adapter/http/handlers"
	repository2 "github.com/bernardoxlima/arqOS-mvp-sub004/internal/adapter/persistence/repository"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/pricing"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/workflow"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/infrastructure/database"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/infrastructure/payments"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/usecase"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
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
	ddb := database.ConnectDynamoDB()

	budgetRepo := repository2.NewBudgetDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	paymentRepo := repository2.NewBudgetPaymentDynamoRepository(ddb)

	cfg := loadPricingConfig()
	calculator := pricing.NewCalculator(cfg)
	catalog := workflow.DefaultCatalog()

	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, calculator)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, budgetRepo, catalog, cfg.HourlyRate)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewBudgetPaymentUseCase(paymentRepo, budgetRepo, paymentGateway)

	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	budgetPaymentHandler := handlers.NewBudgetPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addArqosRoutes(v1, budgetHandler, projectHandler, budgetPaymentHandler)
}

func loadPricingConfig() pricing.Config {
	path := os.Getenv("PRICING_CONFIG_PATH")
	if path == "" {
		return pricing.Default()
	}
	cfg, err := pricing.LoadFromFile(path)
	if err != nil {
		log.Printf("[pricing][config] failed loading %s, using defaults: %v", path, err)
		return pricing.Default()
	}
	log.Printf("[pricing][config] loaded overrides from %s", path)
	return cfg
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
