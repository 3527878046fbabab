package httpserver

import (
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"adminboard/internal/metrics"
)

// buildRouter wires routes for the API.
func buildRouter(logger zerolog.Logger, db *pgxpool.Pool, deps Deps, opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())
	if deps.Metrics != nil {
		router.Use(metricsMiddleware(deps.Metrics))
	}
	if len(opts.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		customers := api.Group("/customers")
		customers.GET("", listCustomers(deps.CustomerSvc))
		customers.POST("", createCustomer(deps.CustomerSvc))
		customers.GET("/:id", getCustomer(deps.CustomerSvc))
		customers.PUT("/:id", updateCustomer(deps.CustomerSvc))
		customers.DELETE("/:id", deleteCustomer(deps.CustomerSvc))

		employees := api.Group("/employees")
		employees.GET("", listEmployees(deps.EmployeeSvc))
		employees.POST("", createEmployee(deps.EmployeeSvc))
		employees.GET("/:id", getEmployee(deps.EmployeeSvc))
		employees.PUT("/:id", updateEmployee(deps.EmployeeSvc))
		employees.DELETE("/:id", deleteEmployee(deps.EmployeeSvc))

		products := api.Group("/products")
		products.GET("", listProducts(deps.ProductSvc))
		products.POST("", createProduct(deps.ProductSvc))
		products.GET("/:id", getProduct(deps.ProductSvc))
		products.PUT("/:id", updateProduct(deps.ProductSvc))
		products.DELETE("/:id", deleteProduct(deps.ProductSvc))

		orders := api.Group("/orders")
		orders.GET("", listOrders(deps.OrderSvc))
		orders.POST("", createOrder(deps.OrderSvc))
		orders.POST("/preview", previewOrder(deps.OrderSvc))
		orders.GET("/:id", getOrder(deps.OrderSvc))
		orders.PUT("/:id", updateOrder(deps.OrderSvc))
		orders.DELETE("/:id", deleteOrder(deps.OrderSvc))

		api.GET("/stats", getStats(deps.StatsRepo))
	}

	return router
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

func metricsMiddleware(m *metrics.ServerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
	}
}
