package exports

import (
	"context"
	"io"
	"net/http"
	"time"

	"kemandirian-service/internal/app/contracts"
	"kemandirian-service/internal/pkg/constvars"
	"kemandirian-service/internal/pkg/dto/requests"
	"kemandirian-service/internal/pkg/exceptions"
	"kemandirian-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ExportController struct {
	Log           *zap.Logger
	ExportUsecase contracts.ExportUsecase
}

func NewExportController(logger *zap.Logger, exportUsecase contracts.ExportUsecase) *ExportController {
	return &ExportController{
		Log:           logger,
		ExportUsecase: exportUsecase,
	}
}

func (ctrl *ExportController) GetExportDocument(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ExportUsecase.BuildExportDocument(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExportDocumentSuccessMessage, result)
}

func (ctrl *ExportController) UploadExportDocument(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.ExportUsecase.UploadExportDocument(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ExportUploadedSuccessMessage, result)
}

func (ctrl *ExportController) EnqueueSpreadsheetExport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ExportUsecase.EnqueueSpreadsheetExport(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.ExportSpreadsheetQueuedMessage, result)
}

func (ctrl *ExportController) ImportAssessments(w http.ResponseWriter, r *http.Request) {
	request := &requests.ImportAssessments{
		Mode: r.URL.Query().Get(constvars.URLQueryParamMode),
	}
	if request.Mode == "" {
		request.Mode = constvars.ImportModeMerge
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.ExportUsecase.ImportAssessments(ctx, payload, request.Mode)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.ImportMergeSuccessMessage
	if request.Mode == constvars.ImportModeReplace {
		message = constvars.ImportReplaceSuccessMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}
