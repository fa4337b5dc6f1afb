package routers

import (
	"kemandirian-service/internal/app/services/core/exports"

	"github.com/go-chi/chi/v5"
)

func attachExportRoutes(router chi.Router, exportController *exports.ExportController) {
	router.Get("/document", exportController.GetExportDocument)
	router.Post("/document/upload", exportController.UploadExportDocument)
	router.Post("/spreadsheet", exportController.EnqueueSpreadsheetExport)
}

func attachImportRoutes(router chi.Router, exportController *exports.ExportController) {
	router.Post("/", exportController.ImportAssessments)
}
