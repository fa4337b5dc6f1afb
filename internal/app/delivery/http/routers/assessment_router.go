package routers

import (
	"fmt"

	"kemandirian-service/internal/app/services/core/assessments"
	"kemandirian-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, assessmentController *assessments.AssessmentController) {
	router.Post("/", assessmentController.CreateAssessment)
	router.Get("/", assessmentController.FindAssessments)
	router.Post("/migrate", assessmentController.MigrateLocalToRemote)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamAssessmentID), assessmentController.FindAssessmentByID)
	router.Delete(fmt.Sprintf("/{%s}", constvars.URLParamAssessmentID), assessmentController.DeleteAssessmentByID)
}
