package routes

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	_ "scale_workshop/docs" // registers the swagger document
	"scale_workshop/internal/adapter/http/handlers"
	"scale_workshop/internal/adapter/persistence/repository"
	"scale_workshop/internal/config"
	"scale_workshop/internal/domain/costs"
	"scale_workshop/internal/domain/documents"
	"scale_workshop/internal/domain/lifecycle"
	"scale_workshop/internal/infrastructure/database"
	"scale_workshop/internal/infrastructure/logger"
	"scale_workshop/internal/infrastructure/metrics"
	"scale_workshop/internal/infrastructure/payments"
	"scale_workshop/internal/infrastructure/render"
	"scale_workshop/internal/usecase"
	"scale_workshop/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const APIPrefix = "/v1"

// Handlers groups every HTTP handler of the service.
type Handlers struct {
	Customers *handlers.CustomerHandler
	Jobs      *handlers.JobHandler
	Workflow  *handlers.WorkflowHandler
	Documents *handlers.DocumentHandler
	Payments  *handlers.InvoicePaymentHandler
}

// Run will start the server
func Run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.SetDefault(logger.New(cfg.App.Env))

	var reg *prometheus.Registry
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
	}

	h, err := buildHandlers(context.Background(), cfg, m)
	if err != nil {
		return err
	}

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(h, reg)

	slog.Info("[http] listening", "addr", cfg.HTTP.Addr, "env", cfg.App.Env)
	if err := router.Run(cfg.HTTP.Addr); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func buildHandlers(ctx context.Context, cfg config.Config, m *metrics.Metrics) (Handlers, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return Handlers{}, err
	}
	tables := database.TablesFromConfig(cfg)
	customerRepo := repository.NewCustomerDynamoRepository(ddb, tables.Customers)
	jobRepo := repository.NewJobDynamoRepository(ddb, tables)

	rate, err := cfg.TaxRate()
	if err != nil {
		return Handlers{}, err
	}
	aggregator, err := costs.NewAggregator(rate)
	if err != nil {
		return Handlers{}, err
	}
	composer, err := documents.NewComposer(aggregator, costs.NewFormatter(costs.ParseLocale(cfg.Workshop.Locale)), cfg.Workshop.CurrencyCode, nil)
	if err != nil {
		return Handlers{}, fmt.Errorf("document composer: %w", err)
	}
	machine := lifecycle.NewMachine(nil)

	mock := cfg.PaymentMockEnabled()
	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken, mock)
	if err != nil {
		slog.Warn("[payment][gateway] Mercado Pago gateway not configured", "err", err)
	} else {
		gateway = mpGateway
	}

	return Handlers{
		Customers: handlers.NewCustomerHandler(usecase.NewCustomerUseCase(customerRepo)),
		Jobs:      handlers.NewJobHandler(usecase.NewJobUseCase(jobRepo, customerRepo, machine, m)),
		Workflow:  handlers.NewWorkflowHandler(usecase.NewWorkflowUseCase(jobRepo, machine, m)),
		Documents: handlers.NewDocumentHandler(usecase.NewDocumentUseCase(jobRepo, composer, machine, render.NewRenderer(cfg.Workshop.Name), m)),
		Payments: handlers.NewInvoicePaymentHandler(usecase.NewInvoicePaymentUseCase(jobRepo, gateway, machine, m, usecase.PaymentOptions{
			Strict:            !mock,
			DefaultPayerEmail: cfg.Payments.DefaultPayerEmail,
		}), mock),
	}, nil
}

// NewRouter mounts every route. reg may be nil, which disables /metrics.
func NewRouter(h Handlers, reg *prometheus.Registry) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if reg != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	v1 := router.Group(APIPrefix)
	addPingRoutes(v1)
	addCustomerRoutes(v1, h.Customers)
	addJobRoutes(v1, h.Jobs, h.Workflow, h.Documents, h.Payments)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("[http] recovered from panic", "path", c.FullPath(), "panic", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
