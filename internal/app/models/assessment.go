package models

import (
	"time"

	"kemandirian-service/internal/pkg/instruments"
)

// CurrentSchemaVersion marks records produced by this service. Records
// imported from older exports are normalized up to this shape before they
// are stored.
const CurrentSchemaVersion = 2

// Demographic is the lansia identity block captured alongside every
// assessment. Only Nama and Usia are mandatory at intake.
type Demographic struct {
	Nama              string   `json:"nama" bson:"nama"`
	Usia              string   `json:"usia" bson:"usia"`
	JenisKelamin      string   `json:"jenisKelamin,omitempty" bson:"jenisKelamin,omitempty"`
	Alamat            string   `json:"alamat,omitempty" bson:"alamat,omitempty"`
	NoTelepon         string   `json:"noTelepon,omitempty" bson:"noTelepon,omitempty"`
	Pendidikan        string   `json:"pendidikan,omitempty" bson:"pendidikan,omitempty"`
	Pekerjaan         string   `json:"pekerjaan,omitempty" bson:"pekerjaan,omitempty"`
	Agama             string   `json:"agama,omitempty" bson:"agama,omitempty"`
	StatusPernikahan  string   `json:"statusPernikahan,omitempty" bson:"statusPernikahan,omitempty"`
	PenyakitKronis    []string `json:"penyakitKronis,omitempty" bson:"penyakitKronis,omitempty"`
	PenyakitLainnya   string   `json:"penyakitLainnya,omitempty" bson:"penyakitLainnya,omitempty"`
	AsuransiKesehatan string   `json:"asuransiKesehatan,omitempty" bson:"asuransiKesehatan,omitempty"`
}

// Derived holds classifications computed from the stored instrument results.
// It is recomputed on every write so a record never carries a tier that its
// responses do not support.
type Derived struct {
	Tiers    map[string]instruments.Tier `json:"tiers" bson:"tiers"`
	Combined *instruments.Tier           `json:"combined,omitempty" bson:"combined,omitempty"`
	IsPJP    bool                        `json:"isPJP" bson:"isPJP"`
}

// AssessmentRecord is one completed (or partially completed) intake: who was
// assessed, when, the raw responses per instrument, and the derived
// classifications.
type AssessmentRecord struct {
	ID            string               `json:"id" bson:"_id,omitempty"`
	TenantID      string               `json:"tenantId,omitempty" bson:"tenantId"`
	SchemaVersion int                  `json:"schemaVersion" bson:"schemaVersion"`
	Timestamp     time.Time            `json:"timestamp" bson:"timestamp"`
	Demographic   Demographic          `json:"demographic" bson:"demographic"`
	Results       []instruments.Result `json:"results" bson:"results"`
	Derived       Derived              `json:"derived" bson:"derived"`
	TimeModel     `bson:",inline"`
}

// Rederive recomputes every stored tier from the raw responses under the
// active combined policy. Called on every write path so a record never
// carries a tier its responses do not support.
func (r *AssessmentRecord) Rederive(policy instruments.CombinedPolicy) {
	derived := Derived{Tiers: map[string]instruments.Tier{}}

	var aksResult, aiksResult *instruments.Result
	for idx := range r.Results {
		result := &r.Results[idx]
		def, ok := instruments.Lookup(result.InstrumentID, result.Version)
		if !ok {
			continue
		}
		classification := instruments.Classify(def, result.TotalScore)
		derived.Tiers[result.InstrumentID] = classification.Tier
		if classification.IsPJP {
			derived.IsPJP = true
		}

		switch result.InstrumentID {
		case instruments.IDAKS:
			aksResult = result
		case instruments.IDAIKS:
			aiksResult = result
		}
	}

	if aksResult != nil && aiksResult != nil {
		aksDef, aksOK := instruments.Lookup(aksResult.InstrumentID, aksResult.Version)
		aiksDef, aiksOK := instruments.Lookup(aiksResult.InstrumentID, aiksResult.Version)
		if aksOK && aiksOK {
			combined := instruments.ClassifyCombined(policy, aksDef, aksResult.TotalScore, aiksDef, aiksResult.TotalScore)
			derived.Combined = &combined.Tier
			derived.IsPJP = combined.IsPJP
		}
	}

	r.Derived = derived
}

// Result returns the stored result for an instrument id, if present.
func (r *AssessmentRecord) Result(instrumentID string) (*instruments.Result, bool) {
	for idx := range r.Results {
		if r.Results[idx].InstrumentID == instrumentID {
			return &r.Results[idx], true
		}
	}
	return nil, false
}

// HasDemographic reports whether the mandatory identity fields are filled.
func (r *AssessmentRecord) HasDemographic() bool {
	return r.Demographic.Nama != "" && r.Demographic.Usia != ""
}
