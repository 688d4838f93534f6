package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/sales-manager/internal/address"
	"github.com/BruksfildServices01/sales-manager/internal/audit"
	"github.com/BruksfildServices01/sales-manager/internal/config"
	"github.com/BruksfildServices01/sales-manager/internal/handlers"
	infraRepo "github.com/BruksfildServices01/sales-manager/internal/infra/repository"
	"github.com/BruksfildServices01/sales-manager/internal/middleware"
	ucDashboard "github.com/BruksfildServices01/sales-manager/internal/usecase/dashboard"
	ucSale "github.com/BruksfildServices01/sales-manager/internal/usecase/sale"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, cache *redis.Client) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	saleRepo := infraRepo.NewSaleGormRepository(db)
	dashboardRepo := infraRepo.NewDashboardGormRepository(db)

	resolver := address.NewViaCEP(cfg.ViaCEPBaseURL, cache)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createSaleUC := ucSale.NewCreateSale(saleRepo, auditDispatcher)
	updateSaleUC := ucSale.NewUpdateSale(saleRepo, auditDispatcher)

	clientViewUC := ucDashboard.NewClientView(dashboardRepo)
	saleViewUC := ucDashboard.NewSaleView(dashboardRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	clientHandler := handlers.NewClientHandler(db, resolver, auditDispatcher)
	planHandler := handlers.NewPlanHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	saleHandler := handlers.NewSaleHandler(db, saleRepo, createSaleUC, updateSaleUC, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(clientViewUC, saleViewUC)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// CLIENTES / PLANOS (públicos)
		// ------------------------------
		clientes := api.Group("/clientes")
		{
			clientes.POST("", clientHandler.Create)
			clientes.GET("", clientHandler.List)
			clientes.GET("/:id", clientHandler.Get)
			clientes.PUT("/:id", clientHandler.Update)
			clientes.DELETE("/:id", clientHandler.Delete)
		}

		planos := api.Group("/planos")
		{
			planos.POST("", planHandler.Create)
			planos.GET("", planHandler.List)
			planos.GET("/:id", planHandler.Get)
			planos.PUT("/:id", planHandler.Update)
			planos.DELETE("/:id", planHandler.Delete)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			servicos := secured.Group("/servicos")
			{
				servicos.POST("", serviceHandler.Create)
				servicos.GET("", serviceHandler.List)
				servicos.GET("/:id", serviceHandler.Get)
				servicos.PUT("/:id", serviceHandler.Update)
				servicos.DELETE("/:id", serviceHandler.Delete)
			}

			vendas := secured.Group("/vendas")
			{
				vendas.POST("", saleHandler.Create)
				vendas.GET("", saleHandler.List)
				vendas.GET("/:id", saleHandler.Get)
				vendas.PUT("/:id", saleHandler.Update)
				vendas.DELETE("/:id", saleHandler.Delete)
			}

			dashboard := secured.Group("/dashboard")
			{
				dashboard.GET("/clientes", dashboardHandler.Clients)
				dashboard.GET("/vendas", dashboardHandler.Sales)
			}
		}
	}
}
