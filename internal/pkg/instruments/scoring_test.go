package instruments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustLookup(t *testing.T, id string, version int) *Definition {
	t.Helper()
	def, ok := Lookup(id, version)
	assert.True(t, ok, "definition %s@%d must be registered", id, version)
	return def
}

func TestScore(t *testing.T) {
	aks := mustLookup(t, IDAKS, 2)

	t.Run("ExactSumOnCompleteResponses", func(t *testing.T) {
		responses := map[string]int{
			"mandi":       2,
			"berpakaian":  2,
			"toileting":   1,
			"berpindah":   2,
			"kontinensia": 1,
			"makan":       2,
		}

		result := Score(aks, responses)

		assert.Equal(t, 10, result.TotalScore)
		assert.True(t, result.Complete)
		assert.Equal(t, IDAKS, result.InstrumentID)
		assert.Equal(t, 2, result.Version)
	})

	t.Run("ScoringIsDeterministic", func(t *testing.T) {
		responses := map[string]int{
			"mandi":       0,
			"berpakaian":  1,
			"toileting":   2,
			"berpindah":   0,
			"kontinensia": 2,
			"makan":       1,
		}

		first := Score(aks, responses)
		second := Score(aks, responses)

		assert.Equal(t, first, second)
	})

	t.Run("MissingAnswerCountsZeroAndMarksIncomplete", func(t *testing.T) {
		responses := map[string]int{
			"mandi":      2,
			"berpakaian": 2,
		}

		result := Score(aks, responses)

		assert.Equal(t, 4, result.TotalScore)
		assert.False(t, result.Complete)
	})

	t.Run("OutOfRangeAnswerCountsZeroAndMarksIncomplete", func(t *testing.T) {
		responses := map[string]int{
			"mandi":       7,
			"berpakaian":  2,
			"toileting":   2,
			"berpindah":   2,
			"kontinensia": 2,
			"makan":       2,
		}

		result := Score(aks, responses)

		assert.Equal(t, 10, result.TotalScore)
		assert.False(t, result.Complete)
	})

	t.Run("UnknownKeysAreIgnored", func(t *testing.T) {
		responses := map[string]int{
			"mandi":       2,
			"berpakaian":  2,
			"toileting":   2,
			"berpindah":   2,
			"kontinensia": 2,
			"makan":       2,
			"aksScore":    99,
		}

		result := Score(aks, responses)

		assert.Equal(t, 12, result.TotalScore)
		assert.True(t, result.Complete)
	})

	t.Run("EmptyResponsesScoreZero", func(t *testing.T) {
		result := Score(aks, map[string]int{})

		assert.Equal(t, 0, result.TotalScore)
		assert.False(t, result.Complete)
	})

	t.Run("BarthelFifteenPointItems", func(t *testing.T) {
		barthel := mustLookup(t, IDBarthel, 1)
		responses := map[string]int{
			"makan":         10,
			"mandi":         5,
			"perawatanDiri": 5,
			"berpakaian":    10,
			"buangAirBesar": 10,
			"buangAirKecil": 10,
			"toilet":        10,
			"transfer":      15,
			"mobilitas":     15,
			"tangga":        10,
		}

		result := Score(barthel, responses)

		assert.Equal(t, 100, result.TotalScore)
		assert.True(t, result.Complete)
	})
}

func TestClassify(t *testing.T) {
	t.Run("AKSCondensedBands", func(t *testing.T) {
		aks := mustLookup(t, IDAKS, 2)

		tests := []struct {
			name  string
			total int
			tier  Tier
			isPJP bool
		}{
			{"full score is Mandiri", 12, TierMandiri, false},
			{"eleven is Ringan", 11, TierRingan, false},
			{"boundary six lands in Ringan", 6, TierRingan, false},
			{"five is Berat", 5, TierBerat, true},
			{"zero is Berat", 0, TierBerat, true},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				classification := Classify(aks, tt.total)
				assert.Equal(t, tt.tier, classification.Tier)
				assert.Equal(t, tt.isPJP, classification.IsPJP)
			})
		}
	})

	t.Run("AKSTwentyPointBands", func(t *testing.T) {
		aks := mustLookup(t, IDAKS, 1)

		tests := []struct {
			total int
			tier  Tier
		}{
			{20, TierMandiri},
			{19, TierRingan},
			{12, TierRingan},
			{11, TierSedang},
			{5, TierSedang},
			{4, TierTotal},
			{0, TierTotal},
		}
		for _, tt := range tests {
			classification := Classify(aks, tt.total)
			assert.Equal(t, tt.tier, classification.Tier, "total %d", tt.total)
		}
	})

	t.Run("AIKSBands", func(t *testing.T) {
		aiks := mustLookup(t, IDAIKS, 1)

		assert.Equal(t, TierMandiri, Classify(aiks, 8).Tier)
		assert.Equal(t, TierMandiri, Classify(aiks, 3).Tier)
		assert.Equal(t, TierBantuanSesekali, Classify(aiks, 2).Tier)
		assert.Equal(t, TierBantuanSepanjangHari, Classify(aiks, 1).Tier)
		assert.Equal(t, TierTidakMampu, Classify(aiks, 0).Tier)
	})

	t.Run("BarthelBands", func(t *testing.T) {
		barthel := mustLookup(t, IDBarthel, 1)

		assert.Equal(t, TierMandiri, Classify(barthel, 100).Tier)
		assert.Equal(t, TierRingan, Classify(barthel, 99).Tier)
		assert.Equal(t, TierRingan, Classify(barthel, 60).Tier)
		assert.Equal(t, TierSedang, Classify(barthel, 45).Tier)
		assert.Equal(t, TierSedang, Classify(barthel, 40).Tier)
		assert.Equal(t, TierBerat, Classify(barthel, 39).Tier)
		assert.Equal(t, TierBerat, Classify(barthel, 20).Tier)
		assert.Equal(t, TierTotal, Classify(barthel, 19).Tier)
		assert.Equal(t, TierTotal, Classify(barthel, 0).Tier)
	})

	t.Run("OutOfRangeTotalIsUnclassifiable", func(t *testing.T) {
		aks := mustLookup(t, IDAKS, 2)

		assert.Equal(t, TierUnclassifiable, Classify(aks, -1).Tier)
		assert.Equal(t, TierUnclassifiable, Classify(aks, 13).Tier)
		assert.False(t, Classify(aks, 13).IsPJP)
	})

	t.Run("DependentTiersFlagPJP", func(t *testing.T) {
		barthel := mustLookup(t, IDBarthel, 1)

		assert.False(t, Classify(barthel, 100).IsPJP)
		assert.False(t, Classify(barthel, 60).IsPJP)
		assert.True(t, Classify(barthel, 40).IsPJP)
		assert.True(t, Classify(barthel, 20).IsPJP)
		assert.True(t, Classify(barthel, 0).IsPJP)
	})
}

func TestScoreThenClassifyScenario(t *testing.T) {
	// Condensed AKS intake with two partially-assisted activities.
	aks := mustLookup(t, IDAKS, 2)
	responses := map[string]int{
		"mandi":       2,
		"berpakaian":  2,
		"toileting":   1,
		"berpindah":   2,
		"kontinensia": 1,
		"makan":       2,
	}

	result := Score(aks, responses)
	classification := Classify(aks, result.TotalScore)

	assert.Equal(t, 10, result.TotalScore)
	assert.True(t, result.Complete)
	assert.Equal(t, "Ketergantungan Ringan", classification.Tier.Label)
	assert.False(t, classification.IsPJP)
}

func TestClassifyCombined(t *testing.T) {
	aks := mustLookup(t, IDAKS, 2)
	aiks := mustLookup(t, IDAIKS, 1)

	t.Run("PercentagePolicy", func(t *testing.T) {
		tests := []struct {
			name      string
			aksTotal  int
			aiksTotal int
			tier      Tier
		}{
			{"full scores are Mandiri", 12, 8, TierMandiri},
			{"85 percent boundary is Mandiri", 12, 5, TierMandiri}, // 17/20
			{"below 85 percent is Ringan", 12, 4, TierRingan},      // 16/20
			{"60 percent boundary is Ringan", 8, 4, TierRingan},    // 12/20
			{"40 percent boundary is Sedang", 6, 2, TierSedang},    // 8/20
			{"below 40 percent is Berat", 5, 2, TierBerat},         // 7/20
			{"zero is Berat", 0, 0, TierBerat},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				classification := ClassifyCombined(PolicyPercentage, aks, tt.aksTotal, aiks, tt.aiksTotal)
				assert.Equal(t, tt.tier, classification.Tier)
				assert.Equal(t, tt.tier.Dependent, classification.IsPJP)
			})
		}
	})

	t.Run("PercentagePolicyOutOfRange", func(t *testing.T) {
		classification := ClassifyCombined(PolicyPercentage, aks, 99, aiks, 0)
		assert.Equal(t, TierUnclassifiable, classification.Tier)
	})

	t.Run("EitherPolicyTakesWorseTier", func(t *testing.T) {
		classification := ClassifyCombined(PolicyEither, aks, 12, aiks, 1)

		assert.Equal(t, TierBantuanSepanjangHari, classification.Tier)
		assert.True(t, classification.IsPJP)
	})

	t.Run("EitherPolicyFlagsPJPFromOneInstrument", func(t *testing.T) {
		classification := ClassifyCombined(PolicyEither, aks, 5, aiks, 8)

		assert.Equal(t, TierBerat, classification.Tier)
		assert.True(t, classification.IsPJP)
	})

	t.Run("EitherPolicyIndependentOnBoth", func(t *testing.T) {
		classification := ClassifyCombined(PolicyEither, aks, 12, aiks, 8)

		assert.Equal(t, TierMandiri, classification.Tier)
		assert.False(t, classification.IsPJP)
	})
}

func TestWorse(t *testing.T) {
	assert.Equal(t, TierBerat, Worse(TierRingan, TierBerat))
	assert.Equal(t, TierBerat, Worse(TierBerat, TierRingan))
	assert.Equal(t, TierMandiri, Worse(TierMandiri, TierMandiri))
}
