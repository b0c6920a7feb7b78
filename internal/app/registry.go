package app

import (
	"context"
	"path/filepath"

	"opsdash/internal/analytics"
	"opsdash/internal/auth"
	"opsdash/internal/bootstrap"
	"opsdash/internal/bulkimport"
	"opsdash/internal/employee"
	"opsdash/internal/finance"
	"opsdash/internal/messaging/kafka"
	"opsdash/internal/middleware"
	"opsdash/internal/rbac"
	"opsdash/internal/rbac/infra"
	"opsdash/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	analyticsRepo := analytics.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo, rbacService)
	employeeService := employee.NewServiceWithOutbox(gormDB, employeeRepo, outboxRepo, rdb)
	analyticsService := analytics.NewService(analyticsRepo)
	importService := bulkimport.NewServiceWithAudit(employeeRepo, outboxRepo, bootstrap.NewStdoutAuditLogger())
	reportService := report.NewService(analyticsService)
	financeProvider := finance.NewStaticProvider()

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	analyticsHandler := analytics.NewHandler(analyticsService)
	importHandler := bulkimport.NewHandler(importService)
	reportHandler := report.NewHandler(reportService)
	financeHandler := finance.NewHandler(financeProvider)

	// Seed policies so tokens issued before a restart keep working.
	if err := seedGrants(authRepo, rbacService); err != nil {
		return err
	}

	// --- Middleware & Routes ---
	router.Use(middleware.RequestID(zap.L()))

	authMW := middleware.AuthMiddleware()
	loginLimiter := middleware.RateLimitByIP(rate.Limit(1), 5)

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMW, loginLimiter)

		protected := api.Group("")
		protected.Use(authMW)
		{
			employee.RegisterRoutes(protected, employeeHandler, rbacService)
			analytics.RegisterRoutes(protected, analyticsHandler, rbacService)
			bulkimport.RegisterRoutes(protected, importHandler, rbacService)
			report.RegisterRoutes(protected, reportHandler, rbacService)
			finance.RegisterRoutes(protected, financeHandler, rbacService)
		}
	}

	return nil
}

func seedGrants(authRepo auth.Repository, rbacService rbac.Service) error {
	users, err := authRepo.ListActive(context.Background())
	if err != nil {
		return err
	}

	for _, u := range users {
		if err := rbacService.Grant(u.ID.String(), u.Permissions); err != nil {
			return err
		}
	}

	zap.L().Info("rbac grants seeded", zap.Int("users", len(users)))
	return nil
}
