package contracts

import (
	"context"

	"kemandirian-service/internal/pkg/dto/requests"
	"kemandirian-service/internal/pkg/dto/responses"
	"kemandirian-service/internal/pkg/instruments"
)

type InstrumentUsecase interface {
	ListInstruments(ctx context.Context) ([]responses.InstrumentSummary, error)
	GetInstrument(ctx context.Context, instrumentID string, version int) (*instruments.Definition, error)
	ScoreInstrument(ctx context.Context, instrumentID string, request *requests.ScoreInstrument) (*responses.ScorePreview, error)
}
