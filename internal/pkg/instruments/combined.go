package instruments

// CombinedPolicy selects how the AKS and AIKS totals are reconciled into one
// classification. Exactly one policy is active per deployment; the source
// application carried several inconsistent tables, so the choice is made
// once, in configuration, and never mixed.
type CombinedPolicy string

const (
	// PolicyPercentage sums both totals and classifies the percentage of the
	// combined maximum: >=85% Mandiri, >=60% Ringan, >=40% Sedang, else Berat.
	PolicyPercentage CombinedPolicy = "percentage"
	// PolicyEither classifies each instrument with its own table and flags
	// PJP when either lands at or below its dependency cutoff.
	PolicyEither CombinedPolicy = "either"
)

// ClassifyCombined derives the combined tier and PJP flag for an AKS result
// paired with an AIKS result under the given policy.
func ClassifyCombined(policy CombinedPolicy, aksDef *Definition, aksTotal int, aiksDef *Definition, aiksTotal int) Classification {
	switch policy {
	case PolicyEither:
		aks := Classify(aksDef, aksTotal)
		aiks := Classify(aiksDef, aiksTotal)
		return Classification{
			Tier:  Worse(aks.Tier, aiks.Tier),
			IsPJP: aks.IsPJP || aiks.IsPJP,
		}
	default:
		return classifyCombinedPercentage(aksDef, aksTotal, aiksDef, aiksTotal)
	}
}

func classifyCombinedPercentage(aksDef *Definition, aksTotal int, aiksDef *Definition, aiksTotal int) Classification {
	total := aksTotal + aiksTotal
	maxScore := aksDef.MaxScore + aiksDef.MaxScore
	if total < 0 || total > maxScore {
		return Classification{Tier: TierUnclassifiable}
	}

	percentage := float64(total) / float64(maxScore) * 100

	var tier Tier
	switch {
	case percentage >= 85:
		tier = TierMandiri
	case percentage >= 60:
		tier = TierRingan
	case percentage >= 40:
		tier = TierSedang
	default:
		tier = TierBerat
	}
	return Classification{Tier: tier, IsPJP: tier.Dependent}
}
