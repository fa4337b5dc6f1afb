package responses

type InstrumentSummary struct {
	ID        string `json:"id"`
	Version   int    `json:"version"`
	Title     string `json:"title"`
	MaxScore  int    `json:"max_score"`
	ItemCount int    `json:"item_count"`
}

type ScorePreview struct {
	InstrumentID string `json:"instrumentId"`
	Version      int    `json:"version"`
	TotalScore   int    `json:"totalScore"`
	MaxScore     int    `json:"maxScore"`
	Complete     bool   `json:"complete"`
	TierCode     string `json:"tierCode"`
	TierLabel    string `json:"tierLabel"`
	IsPJP        bool   `json:"isPJP"`
}
