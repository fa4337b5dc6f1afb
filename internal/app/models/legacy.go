package models

import (
	"time"

	"github.com/goccy/go-json"

	"kemandirian-service/internal/pkg/instruments"
)

// Older exports stored assessments in several flat shapes: per-item response
// maps under aksScores/aiksScores, a barthel block with English item keys,
// or only a precomputed aksScore (sometimes snake_cased as aks_score) with
// the responses lost. NormalizeAssessment lifts any of them into the current
// record shape; current-schema records pass through untouched.
func NormalizeAssessment(raw json.RawMessage) (AssessmentRecord, error) {
	var record AssessmentRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return AssessmentRecord{}, err
	}
	if record.SchemaVersion >= CurrentSchemaVersion {
		return record, nil
	}

	var legacy legacyAssessment
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return AssessmentRecord{}, err
	}

	record.SchemaVersion = CurrentSchemaVersion
	record.Demographic = legacy.demographic()
	if record.Timestamp.IsZero() && legacy.Timestamp != "" {
		if parsed, err := time.Parse(time.RFC3339, legacy.Timestamp); err == nil {
			record.Timestamp = parsed
		}
	}
	if len(record.Results) == 0 {
		record.Results = legacy.results()
	}
	return record, nil
}

type legacyAssessment struct {
	Timestamp   string                 `json:"timestamp"`
	Demographic json.RawMessage        `json:"demographic"`
	AksScores   map[string]int         `json:"aksScores"`
	AiksScores  map[string]int         `json:"aiksScores"`
	Barthel     map[string]interface{} `json:"barthel"`
	AksScore    *int                   `json:"aksScore"`
	AksScoreAlt *int                   `json:"aks_score"`
}

type legacyDemographic struct {
	Name            string   `json:"name"`
	Age             string   `json:"age"`
	Gender          string   `json:"gender"`
	Address         string   `json:"address"`
	PhoneNumber     string   `json:"phoneNumber"`
	Education       string   `json:"education"`
	Occupation      string   `json:"occupation"`
	Religion        string   `json:"religion"`
	MaritalStatus   string   `json:"maritalStatus"`
	ChronicDiseases []string `json:"chronicDiseases"`
	OtherDisease    string   `json:"otherDisease"`
	HealthInsurance string   `json:"healthInsurance"`
}

func (l *legacyAssessment) demographic() Demographic {
	var demographic Demographic
	var en legacyDemographic
	if len(l.Demographic) > 0 {
		_ = json.Unmarshal(l.Demographic, &demographic)
		_ = json.Unmarshal(l.Demographic, &en)
	}
	if demographic.Nama == "" {
		demographic.Nama = en.Name
	}
	if demographic.Usia == "" {
		demographic.Usia = en.Age
	}
	if demographic.JenisKelamin == "" {
		demographic.JenisKelamin = en.Gender
	}
	if demographic.Alamat == "" {
		demographic.Alamat = en.Address
	}
	if demographic.NoTelepon == "" {
		demographic.NoTelepon = en.PhoneNumber
	}
	if demographic.Pendidikan == "" {
		demographic.Pendidikan = en.Education
	}
	if demographic.Pekerjaan == "" {
		demographic.Pekerjaan = en.Occupation
	}
	if demographic.Agama == "" {
		demographic.Agama = en.Religion
	}
	if demographic.StatusPernikahan == "" {
		demographic.StatusPernikahan = en.MaritalStatus
	}
	if len(demographic.PenyakitKronis) == 0 {
		demographic.PenyakitKronis = en.ChronicDiseases
	}
	if demographic.PenyakitLainnya == "" {
		demographic.PenyakitLainnya = en.OtherDisease
	}
	if demographic.AsuransiKesehatan == "" {
		demographic.AsuransiKesehatan = en.HealthInsurance
	}
	return demographic
}

// English item keys used by the oldest Barthel exports.
var legacyBarthelKeys = map[string]string{
	"feeding":   "makan",
	"bathing":   "mandi",
	"grooming":  "perawatanDiri",
	"dressing":  "berpakaian",
	"bowels":    "buangAirBesar",
	"bladder":   "buangAirKecil",
	"toiletUse": "toilet",
	"transfers": "transfer",
	"mobility":  "mobilitas",
	"stairs":    "tangga",
}

func (l *legacyAssessment) results() []instruments.Result {
	var results []instruments.Result

	if len(l.AksScores) > 0 {
		if def, ok := instruments.Lookup(instruments.IDAKS, 2); ok {
			results = append(results, instruments.Score(def, l.AksScores))
		}
	} else if score := l.aksTotal(); score != nil {
		// Responses are lost for score-only records; keep the recorded total
		// and mark the result incomplete.
		results = append(results, instruments.Result{
			InstrumentID: instruments.IDAKS,
			Version:      2,
			TotalScore:   *score,
			Complete:     false,
		})
	}

	if len(l.AiksScores) > 0 {
		if def, ok := instruments.Lookup(instruments.IDAIKS, 1); ok {
			results = append(results, instruments.Score(def, l.AiksScores))
		}
	}

	if len(l.Barthel) > 0 {
		responses := map[string]int{}
		for key, value := range l.Barthel {
			number, ok := value.(float64)
			if !ok {
				continue
			}
			itemID, known := legacyBarthelKeys[key]
			if !known {
				continue
			}
			responses[itemID] = int(number)
		}
		if def, ok := instruments.Lookup(instruments.IDBarthel, 1); ok && len(responses) > 0 {
			results = append(results, instruments.Score(def, responses))
		}
	}

	return results
}

func (l *legacyAssessment) aksTotal() *int {
	if l.AksScore != nil {
		return l.AksScore
	}
	return l.AksScoreAlt
}
