package instruments

// Tier is an ordered dependency bucket. Rank 0 is full independence; higher
// ranks mean heavier dependency. Dependent marks tiers at or below the
// long-term-care (PJP) cutoff.
type Tier struct {
	Rank      int    `json:"rank"`
	Code      string `json:"code"`
	Label     string `json:"label"`
	Dependent bool   `json:"dependent"`
}

var (
	TierMandiri = Tier{Rank: 0, Code: "mandiri", Label: "Mandiri"}
	TierRingan  = Tier{Rank: 1, Code: "ketergantungan_ringan", Label: "Ketergantungan Ringan"}
	TierSedang  = Tier{Rank: 2, Code: "ketergantungan_sedang", Label: "Ketergantungan Sedang", Dependent: true}
	TierBerat   = Tier{Rank: 3, Code: "ketergantungan_berat", Label: "Ketergantungan Berat", Dependent: true}
	TierTotal   = Tier{Rank: 4, Code: "ketergantungan_total", Label: "Ketergantungan Total", Dependent: true}

	// AIKS vocabulary
	TierBantuanSesekali      = Tier{Rank: 2, Code: "perlu_bantuan_sesekali", Label: "Perlu Bantuan Sesekali", Dependent: true}
	TierBantuanSepanjangHari = Tier{Rank: 3, Code: "perlu_bantuan_sepanjang_waktu", Label: "Perlu Bantuan Sepanjang Waktu", Dependent: true}
	TierTidakMampu           = Tier{Rank: 4, Code: "tidak_dapat_melakukan", Label: "Tidak Dapat Melakukan Apa-apa", Dependent: true}

	// TierUnclassifiable is returned for totals outside [0, MaxScore].
	TierUnclassifiable = Tier{Rank: -1, Code: "unclassifiable", Label: "Tidak Terklasifikasi"}
)

// Worse returns the heavier-dependency tier of a and b.
func Worse(a, b Tier) Tier {
	if b.Rank > a.Rank {
		return b
	}
	return a
}
