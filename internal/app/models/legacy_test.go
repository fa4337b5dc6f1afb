package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kemandirian-service/internal/pkg/instruments"
)

func TestNormalizeAssessment(t *testing.T) {
	t.Run("CurrentSchemaPassesThrough", func(t *testing.T) {
		raw := []byte(`{
			"id": "rec-1",
			"schemaVersion": 2,
			"timestamp": "2026-03-01T08:00:00Z",
			"demographic": {"nama": "Ibu Siti", "usia": "72"},
			"results": [{"instrumentId": "aks", "version": 2, "responses": {"mandi": 2}, "totalScore": 2, "complete": false}]
		}`)

		record, err := NormalizeAssessment(raw)

		assert.NoError(t, err)
		assert.Equal(t, "rec-1", record.ID)
		assert.Equal(t, 2, record.SchemaVersion)
		assert.Len(t, record.Results, 1)
		assert.Equal(t, 2, record.Results[0].TotalScore)
	})

	t.Run("LegacyResponseMapsAreRescored", func(t *testing.T) {
		raw := []byte(`{
			"id": "rec-2",
			"timestamp": "2025-11-20T10:30:00Z",
			"demographic": {"nama": "Pak Budi", "usia": "80"},
			"aksScores": {"mandi": 2, "berpakaian": 2, "toileting": 1, "berpindah": 2, "kontinensia": 1, "makan": 2}
		}`)

		record, err := NormalizeAssessment(raw)

		assert.NoError(t, err)
		assert.Equal(t, CurrentSchemaVersion, record.SchemaVersion)
		assert.Equal(t, time.Date(2025, 11, 20, 10, 30, 0, 0, time.UTC), record.Timestamp)

		result, ok := record.Result(instruments.IDAKS)
		assert.True(t, ok)
		assert.Equal(t, 10, result.TotalScore)
		assert.True(t, result.Complete)
	})

	t.Run("ScoreOnlyLegacyKeepsTotalAndMarksIncomplete", func(t *testing.T) {
		for _, raw := range [][]byte{
			[]byte(`{"id": "rec-3", "demographic": {"nama": "Ibu Ani", "usia": "68"}, "aksScore": 9}`),
			[]byte(`{"id": "rec-3", "demographic": {"nama": "Ibu Ani", "usia": "68"}, "aks_score": 9}`),
		} {
			record, err := NormalizeAssessment(raw)

			assert.NoError(t, err)
			result, ok := record.Result(instruments.IDAKS)
			assert.True(t, ok)
			assert.Equal(t, 9, result.TotalScore)
			assert.False(t, result.Complete)
		}
	})

	t.Run("EnglishDemographicAndBarthelKeysAreMapped", func(t *testing.T) {
		raw := []byte(`{
			"id": "rec-4",
			"timestamp": "2025-06-01T00:00:00Z",
			"demographic": {"name": "Oma Maria", "age": "85", "address": "Jl. Melati 3", "phoneNumber": "081234567890"},
			"barthel": {
				"feeding": 10, "bathing": 5, "grooming": 5, "dressing": 10,
				"bowels": 10, "bladder": 10, "toiletUse": 10, "transfers": 15,
				"mobility": 15, "stairs": 10, "totalScore": 100, "category": "Mandiri"
			}
		}`)

		record, err := NormalizeAssessment(raw)

		assert.NoError(t, err)
		assert.Equal(t, "Oma Maria", record.Demographic.Nama)
		assert.Equal(t, "85", record.Demographic.Usia)
		assert.Equal(t, "Jl. Melati 3", record.Demographic.Alamat)

		result, ok := record.Result(instruments.IDBarthel)
		assert.True(t, ok)
		assert.Equal(t, 100, result.TotalScore)
		assert.True(t, result.Complete)
	})

	t.Run("MalformedJSONFails", func(t *testing.T) {
		_, err := NormalizeAssessment([]byte(`{"id": `))
		assert.Error(t, err)
	})
}
