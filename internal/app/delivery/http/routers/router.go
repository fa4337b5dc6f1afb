package routers

import (
	"fmt"
	"time"

	"kemandirian-service/internal/app/config"
	"kemandirian-service/internal/app/delivery/http/middlewares"
	"kemandirian-service/internal/app/services/core/assessments"
	"kemandirian-service/internal/app/services/core/exports"
	"kemandirian-service/internal/app/services/core/instruments"
	"kemandirian-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	instrumentController *instruments.InstrumentController,
	assessmentController *assessments.AssessmentController,
	exportController *exports.ExportController,
	userController *users.UserController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/instruments", func(r chi.Router) {
				attachInstrumentRoutes(r, instrumentController)
			})

			r.Route("/assessments", func(r chi.Router) {
				attachAssessmentRoutes(r, assessmentController)
			})

			r.Route("/exports", func(r chi.Router) {
				attachExportRoutes(r, exportController)
			})

			r.Route("/imports", func(r chi.Router) {
				attachImportRoutes(r, exportController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, userController)
			})
		})
	})
}
