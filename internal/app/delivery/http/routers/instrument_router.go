package routers

import (
	"fmt"

	"kemandirian-service/internal/app/services/core/instruments"
	"kemandirian-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachInstrumentRoutes(router chi.Router, instrumentController *instruments.InstrumentController) {
	router.Get("/", instrumentController.ListInstruments)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamInstrumentID), instrumentController.GetInstrument)
	router.Post(fmt.Sprintf("/{%s}/score", constvars.URLParamInstrumentID), instrumentController.ScoreInstrument)
}
