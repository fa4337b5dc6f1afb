package instruments

// Score sums the responses against the definition. Scoring is total over any
// partial input: missing or out-of-range answers count as 0 and never raise
// an error. Complete is reported separately so the caller decides whether an
// unanswered form may be saved.
func Score(def *Definition, responses map[string]int) Result {
	result := Result{
		InstrumentID: def.ID,
		Version:      def.Version,
		Responses:    responses,
		Complete:     true,
	}

	for idx := range def.Items {
		item := &def.Items[idx]
		value, answered := responses[item.ID]
		if !answered || !item.ValidValue(value) {
			result.Complete = false
			continue
		}
		result.TotalScore += value
	}
	return result
}

// Classify picks the tier whose band the total falls into. Bands are closed
// below and evaluated highest first, so a total equal to a lower bound lands
// in that band, not the one beneath it. Totals outside [0, MaxScore] yield
// TierUnclassifiable rather than an error.
func Classify(def *Definition, totalScore int) Classification {
	if totalScore < 0 || totalScore > def.MaxScore {
		return Classification{Tier: TierUnclassifiable}
	}
	for _, band := range def.Bands {
		if totalScore >= band.LowerBound {
			return Classification{Tier: band.Tier, IsPJP: band.Tier.Dependent}
		}
	}
	return Classification{Tier: TierUnclassifiable}
}
