package requests

type Demographic struct {
	Nama              string   `json:"nama" validate:"required,max=100"`
	Usia              string   `json:"usia" validate:"required,usia"`
	JenisKelamin      string   `json:"jenisKelamin" validate:"omitempty,oneof=laki-laki perempuan"`
	Alamat            string   `json:"alamat" validate:"omitempty,max=200"`
	NoTelepon         string   `json:"noTelepon" validate:"omitempty,phone_number_id"`
	Pendidikan        string   `json:"pendidikan"`
	Pekerjaan         string   `json:"pekerjaan"`
	Agama             string   `json:"agama"`
	StatusPernikahan  string   `json:"statusPernikahan"`
	PenyakitKronis    []string `json:"penyakitKronis"`
	PenyakitLainnya   string   `json:"penyakitLainnya"`
	AsuransiKesehatan string   `json:"asuransiKesehatan"`
}

type InstrumentResponses struct {
	InstrumentID string         `json:"instrumentId" validate:"required"`
	Version      int            `json:"version" validate:"required,min=1"`
	Responses    map[string]int `json:"responses" validate:"required"`
}

type CreateAssessment struct {
	Demographic Demographic           `json:"demographic" validate:"required"`
	Results     []InstrumentResponses `json:"results" validate:"required,min=1,dive"`
	Timestamp   string                `json:"timestamp" validate:"omitempty"`
}

type ScoreInstrument struct {
	Version   int            `json:"version" validate:"omitempty,min=1"`
	Responses map[string]int `json:"responses" validate:"required"`
}

type AssessmentFilter struct {
	Nama         string
	Tier         string
	PJP          *bool
	CurrentMonth bool
}
