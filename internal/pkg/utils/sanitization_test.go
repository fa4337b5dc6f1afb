package utils

import (
	"testing"

	"kemandirian-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateAssessmentRequest(t *testing.T) {
	t.Run("Demographic Sanitization", func(t *testing.T) {
		request := &requests.CreateAssessment{
			Demographic: requests.Demographic{
				Nama:           "  Ibu Siti Aminah  ",
				Usia:           " 72 ",
				JenisKelamin:   "  PEREMPUAN  ",
				PenyakitKronis: []string{"  hipertensi  ", "  diabetes  "},
			},
		}

		SanitizeCreateAssessmentRequest(request)

		assert.Equal(t, "Ibu Siti Aminah", request.Demographic.Nama, "nama should be trimmed")
		assert.Equal(t, "72", request.Demographic.Usia, "usia should be trimmed")
		assert.Equal(t, "perempuan", request.Demographic.JenisKelamin, "jenis kelamin should be lowercase and trimmed")
		assert.Equal(t, []string{"hipertensi", "diabetes"}, request.Demographic.PenyakitKronis, "chronic diseases should be trimmed")
	})

	t.Run("Instrument ID Sanitization", func(t *testing.T) {
		request := &requests.CreateAssessment{
			Demographic: requests.Demographic{Nama: "Ibu Siti", Usia: "72"},
			Results: []requests.InstrumentResponses{
				{InstrumentID: "  AKS  ", Version: 2},
				{InstrumentID: "Aiks", Version: 1},
			},
			Timestamp: "  2025-06-03T14:00:00Z  ",
		}

		SanitizeCreateAssessmentRequest(request)

		assert.Equal(t, "aks", request.Results[0].InstrumentID)
		assert.Equal(t, "aiks", request.Results[1].InstrumentID)
		assert.Equal(t, "2025-06-03T14:00:00Z", request.Timestamp, "timestamp should be trimmed")
	})
}

func TestSanitizeCreateUserRequest(t *testing.T) {
	request := &requests.CreateUser{
		Username: "  Petugas01  ",
		FullName: "  Dewi Lestari  ",
		Role:     "  Admin  ",
	}

	SanitizeCreateUserRequest(request)

	assert.Equal(t, "petugas01", request.Username, "username should be lowercase and trimmed")
	assert.Equal(t, "Dewi Lestari", request.FullName, "full name should be trimmed")
	assert.Equal(t, "admin", request.Role, "role should be lowercase and trimmed")
}
