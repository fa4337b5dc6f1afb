package instruments

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"kemandirian-service/internal/app/contracts"
	"kemandirian-service/internal/pkg/constvars"
	"kemandirian-service/internal/pkg/dto/requests"
	"kemandirian-service/internal/pkg/exceptions"
	"kemandirian-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type InstrumentController struct {
	Log               *zap.Logger
	InstrumentUsecase contracts.InstrumentUsecase
}

func NewInstrumentController(logger *zap.Logger, instrumentUsecase contracts.InstrumentUsecase) *InstrumentController {
	return &InstrumentController{
		Log:               logger,
		InstrumentUsecase: instrumentUsecase,
	}
}

func (ctrl *InstrumentController) ListInstruments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.InstrumentUsecase.ListInstruments(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindInstrumentsSuccessMessage, result)
}

func (ctrl *InstrumentController) GetInstrument(w http.ResponseWriter, r *http.Request) {
	instrumentID := chi.URLParam(r, constvars.URLParamInstrumentID)
	if instrumentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamInstrumentID))
		return
	}

	version := 0
	if raw := r.URL.Query().Get(constvars.URLQueryParamVersion); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLQueryParamVersion))
			return
		}
		version = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.InstrumentUsecase.GetInstrument(ctx, instrumentID, version)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindInstrumentSuccessMessage, result)
}

func (ctrl *InstrumentController) ScoreInstrument(w http.ResponseWriter, r *http.Request) {
	instrumentID := chi.URLParam(r, constvars.URLParamInstrumentID)
	if instrumentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamInstrumentID))
		return
	}

	request := new(requests.ScoreInstrument)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.InstrumentUsecase.ScoreInstrument(ctx, instrumentID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScoreInstrumentSuccessMessage, result)
}
