package utils

import (
	"strings"

	"kemandirian-service/internal/pkg/dto/requests"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func SanitizeCreateAssessmentRequest(input *requests.CreateAssessment) {
	input.Demographic.Nama = strings.TrimSpace(input.Demographic.Nama)
	input.Demographic.Usia = strings.TrimSpace(input.Demographic.Usia)
	input.Demographic.JenisKelamin = strings.ToLower(strings.TrimSpace(input.Demographic.JenisKelamin))
	input.Demographic.Alamat = strings.TrimSpace(input.Demographic.Alamat)
	input.Demographic.NoTelepon = strings.TrimSpace(input.Demographic.NoTelepon)
	input.Demographic.Pendidikan = strings.TrimSpace(input.Demographic.Pendidikan)
	input.Demographic.Pekerjaan = strings.TrimSpace(input.Demographic.Pekerjaan)
	input.Demographic.Agama = strings.TrimSpace(input.Demographic.Agama)
	input.Demographic.StatusPernikahan = strings.TrimSpace(input.Demographic.StatusPernikahan)
	input.Demographic.PenyakitKronis = cleanWhiteSpaceFromEachStringOfAnArray(input.Demographic.PenyakitKronis)
	input.Demographic.PenyakitLainnya = strings.TrimSpace(input.Demographic.PenyakitLainnya)
	input.Demographic.AsuransiKesehatan = strings.TrimSpace(input.Demographic.AsuransiKesehatan)

	for idx := range input.Results {
		input.Results[idx].InstrumentID = strings.ToLower(strings.TrimSpace(input.Results[idx].InstrumentID))
	}
	input.Timestamp = strings.TrimSpace(input.Timestamp)
}

func SanitizeCreateUserRequest(input *requests.CreateUser) {
	input.Username = strings.ToLower(strings.TrimSpace(input.Username))
	input.FullName = strings.TrimSpace(input.FullName)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeUpdateUserRequest(input *requests.UpdateUser) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}
