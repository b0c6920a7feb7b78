package app

import (
	"os"

	"opsdash/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const migrationsDir = "migrations"

// BuildApp connects the infrastructure, applies migrations, and registers
// every module's routes on the router.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	if err := connection.MigrateUp(gormDB, migrationsDir); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		zap.L().Warn("redis unavailable, continuing without cache", zap.Error(err))
		redisClient = nil
	}

	return registerModules(router, gormDB, redisClient)
}
