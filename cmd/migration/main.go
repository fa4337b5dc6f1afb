package main

import (
	"context"
	"time"

	"kemandirian-service/internal/app/config"
	"kemandirian-service/internal/app/drivers/database"
	zaplogger "kemandirian-service/internal/app/drivers/logger"
	"kemandirian-service/internal/app/services/core/assessments"
	redisrepo "kemandirian-service/internal/app/services/shared/redis"
)

// One-shot reconciliation of device-local records into the shared remote store.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := zaplogger.NewLogrusLogger(internalConfig)
	logger := zaplogger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)

	redisRepository := redisrepo.NewRedisRepository(redisClient)
	localRepository := assessments.NewAssessmentRedisRepository(redisRepository)
	remoteRepository := assessments.NewAssessmentMongoRepository(
		mongoClient,
		driverConfig.MongoDB.DbName,
		internalConfig.App.TenantID,
	)

	assessmentUsecase := assessments.NewAssessmentUsecase(
		localRepository,
		remoteRepository,
		internalConfig,
		logger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	log.Infof("Migrating local records to remote store for tenant %s..", internalConfig.App.TenantID)

	migrated, err := assessmentUsecase.MigrateLocalToRemote(ctx)
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}

	log.Infof("Migrated %d records!", migrated)

	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Fatalf("Error disconnecting MongoDB: %v", err)
	}
	if err := redisClient.Close(); err != nil {
		log.Fatalf("Error closing Redis: %v", err)
	}
}
