package instruments

import (
	"context"
	"sync"

	"kemandirian-service/internal/app/contracts"
	"kemandirian-service/internal/pkg/constvars"
	"kemandirian-service/internal/pkg/dto/requests"
	"kemandirian-service/internal/pkg/dto/responses"
	"kemandirian-service/internal/pkg/exceptions"
	"kemandirian-service/internal/pkg/instruments"

	"go.uber.org/zap"
)

type instrumentUsecase struct {
	Log *zap.Logger
}

var (
	instrumentUsecaseInstance contracts.InstrumentUsecase
	onceInstrumentUsecase     sync.Once
)

func NewInstrumentUsecase(logger *zap.Logger) contracts.InstrumentUsecase {
	onceInstrumentUsecase.Do(func() {
		instrumentUsecaseInstance = &instrumentUsecase{Log: logger}
	})
	return instrumentUsecaseInstance
}

func (uc *instrumentUsecase) ListInstruments(ctx context.Context) ([]responses.InstrumentSummary, error) {
	summaries := []responses.InstrumentSummary{}
	for _, def := range instruments.All() {
		summaries = append(summaries, responses.InstrumentSummary{
			ID:        def.ID,
			Version:   def.Version,
			Title:     def.Title,
			MaxScore:  def.MaxScore,
			ItemCount: len(def.Items),
		})
	}
	return summaries, nil
}

func (uc *instrumentUsecase) GetInstrument(ctx context.Context, instrumentID string, version int) (*instruments.Definition, error) {
	if version > 0 {
		def, ok := instruments.Lookup(instrumentID, version)
		if !ok {
			return nil, exceptions.ErrUnknownInstrument(instrumentID)
		}
		return def, nil
	}

	def, ok := instruments.LookupLatest(instrumentID)
	if !ok {
		return nil, exceptions.ErrUnknownInstrument(instrumentID)
	}
	return def, nil
}

// ScoreInstrument previews a score without persisting anything; incomplete
// responses still score, matching the live tally on the intake form.
func (uc *instrumentUsecase) ScoreInstrument(ctx context.Context, instrumentID string, request *requests.ScoreInstrument) (*responses.ScorePreview, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("InstrumentUsecase.ScoreInstrument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstrumentKey, instrumentID),
	)

	def, err := uc.GetInstrument(ctx, instrumentID, request.Version)
	if err != nil {
		return nil, err
	}

	result := instruments.Score(def, request.Responses)
	classification := instruments.Classify(def, result.TotalScore)

	return &responses.ScorePreview{
		InstrumentID: def.ID,
		Version:      def.Version,
		TotalScore:   result.TotalScore,
		MaxScore:     def.MaxScore,
		Complete:     result.Complete,
		TierCode:     classification.Tier.Code,
		TierLabel:    classification.Tier.Label,
		IsPJP:        classification.IsPJP,
	}, nil
}
