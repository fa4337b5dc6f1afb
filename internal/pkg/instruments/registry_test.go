package instruments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	t.Run("AllRegisteredDefinitionsAreConsistent", func(t *testing.T) {
		for _, def := range All() {
			assert.NoError(t, validateDefinition(def), def.Key())
		}
	})

	t.Run("AllIsOrderedByIDThenVersion", func(t *testing.T) {
		keys := []string{}
		for _, def := range All() {
			keys = append(keys, def.Key())
		}
		assert.Equal(t, []string{"aiks@1", "aks@1", "aks@2", "barthel@1"}, keys)
	})

	t.Run("LookupFindsExactVersion", func(t *testing.T) {
		def, ok := Lookup(IDAKS, 1)
		assert.True(t, ok)
		assert.Equal(t, 20, def.MaxScore)

		def, ok = Lookup(IDAKS, 2)
		assert.True(t, ok)
		assert.Equal(t, 12, def.MaxScore)
	})

	t.Run("LookupUnknownVersionFails", func(t *testing.T) {
		_, ok := Lookup(IDAKS, 9)
		assert.False(t, ok)

		_, ok = Lookup("katz", 1)
		assert.False(t, ok)
	})

	t.Run("LookupLatestPicksHighestVersion", func(t *testing.T) {
		def, ok := LookupLatest(IDAKS)
		assert.True(t, ok)
		assert.Equal(t, 2, def.Version)

		def, ok = LookupLatest(IDBarthel)
		assert.True(t, ok)
		assert.Equal(t, 1, def.Version)
	})

	t.Run("MaxScoreMatchesItemMaxima", func(t *testing.T) {
		for _, def := range All() {
			sum := 0
			for idx := range def.Items {
				sum += def.Items[idx].MaxValue()
			}
			assert.Equal(t, def.MaxScore, sum, def.Key())
		}
	})
}

func TestValidateDefinition(t *testing.T) {
	valid := func() *Definition {
		return &Definition{
			ID:       "probe",
			Version:  1,
			MaxScore: 2,
			Bands: []TierBand{
				{LowerBound: 2, Tier: TierMandiri},
				{LowerBound: 0, Tier: TierBerat},
			},
			Items: []Item{
				{ID: "a", Label: "A", Options: []Option{{Value: 0, Label: "no"}, {Value: 2, Label: "yes"}}},
			},
		}
	}

	t.Run("ValidDefinitionPasses", func(t *testing.T) {
		assert.NoError(t, validateDefinition(valid()))
	})

	t.Run("DuplicateItemIDFails", func(t *testing.T) {
		def := valid()
		def.Items = append(def.Items, def.Items[0])
		assert.Error(t, validateDefinition(def))
	})

	t.Run("DuplicateOptionValueFails", func(t *testing.T) {
		def := valid()
		def.Items[0].Options = append(def.Items[0].Options, Option{Value: 2, Label: "again"})
		assert.Error(t, validateDefinition(def))
	})

	t.Run("MaxScoreMismatchFails", func(t *testing.T) {
		def := valid()
		def.MaxScore = 5
		assert.Error(t, validateDefinition(def))
	})

	t.Run("BandsNotDescendingFails", func(t *testing.T) {
		def := valid()
		def.Bands = []TierBand{
			{LowerBound: 0, Tier: TierBerat},
			{LowerBound: 2, Tier: TierMandiri},
		}
		assert.Error(t, validateDefinition(def))
	})

	t.Run("LowestBandAboveZeroFails", func(t *testing.T) {
		def := valid()
		def.Bands = []TierBand{
			{LowerBound: 2, Tier: TierMandiri},
			{LowerBound: 1, Tier: TierBerat},
		}
		assert.Error(t, validateDefinition(def))
	})
}
