package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kemandirian-service/internal/app/config"
	"kemandirian-service/internal/app/delivery/http/middlewares"
	"kemandirian-service/internal/app/delivery/http/routers"
	"kemandirian-service/internal/app/drivers/database"
	zaplogger "kemandirian-service/internal/app/drivers/logger"
	"kemandirian-service/internal/app/drivers/messaging"
	miniodriver "kemandirian-service/internal/app/drivers/storage"
	"kemandirian-service/internal/app/services/core/assessments"
	"kemandirian-service/internal/app/services/core/exports"
	"kemandirian-service/internal/app/services/core/instruments"
	"kemandirian-service/internal/app/services/core/users"
	"kemandirian-service/internal/app/services/shared/exportqueue"
	redisrepo "kemandirian-service/internal/app/services/shared/redis"
	"kemandirian-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger := zaplogger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := miniodriver.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Minio:          minioClient,
		Logger:         logger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	workerStop := bootstrapTheApp(workerCtx, &bootstrap)
	bootstrap.WorkerStop = func() {
		workerCancel()
		workerStop()
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error shutting down app dependencies: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(workerCtx context.Context, bootstrap *config.Bootstrap) (workerStop func()) {
	// Shared
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	objectStorage := storage.NewMinioStorage(bootstrap.Minio, bootstrap.InternalConfig.App.MinioBucketName)
	exportQueue, err := exportqueue.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.ExportQueueName,
		10,
	)
	if err != nil {
		log.Fatalf("Error setting up export queue: %v", err)
	}

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Instruments
	instrumentUsecase := instruments.NewInstrumentUsecase(bootstrap.Logger)
	instrumentController := instruments.NewInstrumentController(bootstrap.Logger, instrumentUsecase)

	// Assessments
	localRepository := assessments.NewAssessmentRedisRepository(redisRepository)
	remoteRepository := assessments.NewAssessmentMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
		bootstrap.InternalConfig.App.TenantID,
	)
	assessmentUsecase := assessments.NewAssessmentUsecase(
		localRepository,
		remoteRepository,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	assessmentController := assessments.NewAssessmentController(bootstrap.Logger, assessmentUsecase)

	// Exports
	exportUsecase := exports.NewExportUsecase(
		localRepository,
		objectStorage,
		exportQueue,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	exportController := exports.NewExportController(bootstrap.Logger, exportUsecase)

	// Users
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	userUsecase := users.NewUserUsecase(userMongoRepository, bootstrap.Logger)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	// Spreadsheet worker
	worker := exports.NewWorker(bootstrap.Logger, exportQueue, exportUsecase, objectStorage, 5)
	stop := worker.Start(workerCtx)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		instrumentController,
		assessmentController,
		exportController,
		userController,
	)

	return stop
}
