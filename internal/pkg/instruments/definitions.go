package instruments

const (
	IDAKS     = "aks"
	IDAIKS    = "aiks"
	IDBarthel = "barthel"
)

// Instrument tables are data, not code: new versions are added by
// registering another Definition, never by touching the engine. Item labels
// follow the intake forms used in the field, hence the Indonesian wording.

func init() {
	register(aksV1)
	register(aksV2)
	register(aiksV1)
	register(barthelV1)
}

// aksV1 is the 20-point AKS (modified Barthel scale) used by the earliest
// intake forms.
var aksV1 = &Definition{
	ID:       IDAKS,
	Version:  1,
	Title:    "Penilaian AKS (Aktivitas Kehidupan Sehari-hari)",
	MaxScore: 20,
	Bands: []TierBand{
		{LowerBound: 20, Tier: TierMandiri},
		{LowerBound: 12, Tier: TierRingan},
		{LowerBound: 5, Tier: TierSedang},
		{LowerBound: 0, Tier: TierTotal},
	},
	Items: []Item{
		{
			ID:    "bab",
			Label: "Mengendalikan rangsang BAB",
			Options: []Option{
				{Value: 0, Label: "tidak terkendali/tidak teratur (perlu pencahar)"},
				{Value: 1, Label: "kadang-kadang tak terkendali (1x/minggu)"},
				{Value: 2, Label: "terkendali teratur"},
			},
		},
		{
			ID:    "bak",
			Label: "Mengendalikan rangsang BAK",
			Options: []Option{
				{Value: 0, Label: "tidak terkendali atau menggunakan kateter"},
				{Value: 1, Label: "kadang-kadang tak terkendali (1x24 jam)"},
				{Value: 2, Label: "terkendali teratur"},
			},
		},
		{
			ID:    "membersihkan",
			Label: "Membersihkan diri (mencuci wajah, menyikat rambut, mencukur kumis, sikat gigi)",
			Options: []Option{
				{Value: 0, Label: "butuh bantuan orang lain"},
				{Value: 1, Label: "mandiri"},
			},
		},
		{
			ID:    "toilet",
			Label: "Penggunaan toilet (masuk dan keluar WC, melepas dan memakai celana, menyiram)",
			Options: []Option{
				{Value: 0, Label: "tergantung pertolongan orang lain"},
				{Value: 1, Label: "perlu pertolongan pada beberapa kegiatan"},
				{Value: 2, Label: "mandiri"},
			},
		},
		{
			ID:    "makan",
			Label: "Makan minum (jika makanan harus berupa potongan, dianggap dibantu)",
			Options: []Option{
				{Value: 0, Label: "tidak mampu"},
				{Value: 1, Label: "perlu ditolong memotong makanan"},
				{Value: 2, Label: "mandiri"},
			},
		},
		{
			ID:    "berpindah",
			Label: "Bergerak dari kursi roda ke tempat tidur dan sebaliknya (termasuk duduk di tempat tidur)",
			Options: []Option{
				{Value: 0, Label: "tidak mampu"},
				{Value: 1, Label: "perlu banyak bantuan untuk bisa duduk (2 orang)"},
				{Value: 2, Label: "perlu sedikit bantuan (1 orang)"},
				{Value: 3, Label: "mandiri"},
			},
		},
		{
			ID:    "berjalan",
			Label: "Berjalan di tempat rata (atau jika tidak bisa berjalan, menjalankan kursi roda)",
			Options: []Option{
				{Value: 0, Label: "tidak mampu"},
				{Value: 1, Label: "mampu berpindah menggunakan kursi roda"},
				{Value: 2, Label: "berjalan dengan bantuan 1 orang"},
				{Value: 3, Label: "mandiri"},
			},
		},
		{
			ID:    "berpakaian",
			Label: "Berpakaian (termasuk memasang tali sepatu, mengencangkan sabuk)",
			Options: []Option{
				{Value: 0, Label: "tergantung orang lain"},
				{Value: 1, Label: "sebagian dibantu"},
				{Value: 2, Label: "mandiri"},
			},
		},
		{
			ID:    "tangga",
			Label: "Naik turun tangga",
			Options: []Option{
				{Value: 0, Label: "tidak mampu"},
				{Value: 1, Label: "butuh pertolongan"},
				{Value: 2, Label: "mandiri"},
			},
		},
		{
			ID:    "mandi",
			Label: "Mandi",
			Options: []Option{
				{Value: 0, Label: "tergantung orang lain"},
				{Value: 1, Label: "mandiri"},
			},
		},
	},
}

// aksV2 is the condensed 6-item AKS used by the current intake form.
var aksV2 = &Definition{
	ID:       IDAKS,
	Version:  2,
	Title:    "Penilaian AKS (Aktivitas Kehidupan Sehari-hari)",
	MaxScore: 12,
	Bands: []TierBand{
		{LowerBound: 12, Tier: TierMandiri},
		{LowerBound: 6, Tier: TierRingan},
		{LowerBound: 0, Tier: TierBerat},
	},
	Items: []Item{
		{ID: "mandi", Label: "Mandi", Options: aksV2Options},
		{ID: "berpakaian", Label: "Berpakaian", Options: aksV2Options},
		{ID: "toileting", Label: "Toileting", Options: aksV2Options},
		{ID: "berpindah", Label: "Berpindah", Options: aksV2Options},
		{ID: "kontinensia", Label: "Kontinensia (BAB/BAK)", Options: aksV2Options},
		{ID: "makan", Label: "Makan/Minum", Options: aksV2Options},
	},
}

var aksV2Options = []Option{
	{Value: 0, Label: "tergantung orang lain"},
	{Value: 1, Label: "perlu bantuan"},
	{Value: 2, Label: "mandiri"},
}

// aiksV1 is the 8-item instrumental activities instrument (Lawton scale).
var aiksV1 = &Definition{
	ID:       IDAIKS,
	Version:  1,
	Title:    "Penilaian AIKS (Aktivitas Instrumental Kehidupan Sehari-hari)",
	MaxScore: 8,
	Bands: []TierBand{
		{LowerBound: 3, Tier: TierMandiri},
		{LowerBound: 2, Tier: TierBantuanSesekali},
		{LowerBound: 1, Tier: TierBantuanSepanjangHari},
		{LowerBound: 0, Tier: TierTidakMampu},
	},
	Items: []Item{
		{
			ID:    "telepon",
			Label: "Dapat menggunakan telepon",
			Options: []Option{
				{Value: 1, Label: "mengoperasikan telepon sendiri atau menjawab telepon"},
				{Value: 0, Label: "tidak bisa menggunakan telepon sama sekali"},
			},
		},
		{
			ID:    "belanja",
			Label: "Dapat berbelanja",
			Options: []Option{
				{Value: 1, Label: "mengatur semua kebutuhan belanja sendiri"},
				{Value: 0, Label: "perlu bantuan atau sama sekali tidak mampu belanja"},
			},
		},
		{
			ID:    "persiapanMakanan",
			Label: "Dapat menyiapkan makanan",
			Options: []Option{
				{Value: 1, Label: "merencanakan, menyiapkan, dan menghidangkan makanan"},
				{Value: 0, Label: "perlu disiapkan atau dilayani"},
			},
		},
		{
			ID:    "rumahTangga",
			Label: "Dapat melakukan pekerjaan rumah tangga",
			Options: []Option{
				{Value: 1, Label: "merawat rumah sendiri atau dengan bantuan kadang-kadang"},
				{Value: 0, Label: "tidak berpartisipasi dalam perawatan rumah"},
			},
		},
		{
			ID:    "laundry",
			Label: "Dapat mencuci pakaian",
			Options: []Option{
				{Value: 1, Label: "mencuci pakaian sendiri"},
				{Value: 0, Label: "semua pakaian dicuci oleh orang lain"},
			},
		},
		{
			ID:    "transportasi",
			Label: "Mampu pergi ke suatu tempat",
			Options: []Option{
				{Value: 1, Label: "berpergian sendiri atau mengatur perjalanan sendiri"},
				{Value: 0, Label: "perlu disertai atau tidak melakukan perjalanan sama sekali"},
			},
		},
		{
			ID:    "obat",
			Label: "Dapat mengatur obat-obatan",
			Options: []Option{
				{Value: 1, Label: "meminum obat secara tepat dosis dan waktu tanpa bantuan"},
				{Value: 0, Label: "tidak mampu menyiapkan obat sendiri"},
			},
		},
		{
			ID:    "keuangan",
			Label: "Dapat mengatur keuangan",
			Options: []Option{
				{Value: 1, Label: "mengatur masalah finansial (tagihan, pergi ke bank)"},
				{Value: 0, Label: "tidak mampu mengambil keputusan finansial atau memegang uang"},
			},
		},
	},
}

// barthelV1 is the classic 100-point Barthel Index.
var barthelV1 = &Definition{
	ID:       IDBarthel,
	Version:  1,
	Title:    "Barthel Index",
	MaxScore: 100,
	Bands: []TierBand{
		{LowerBound: 100, Tier: TierMandiri},
		{LowerBound: 60, Tier: TierRingan},
		{LowerBound: 40, Tier: TierSedang},
		{LowerBound: 20, Tier: TierBerat},
		{LowerBound: 0, Tier: TierTotal},
	},
	Items: []Item{
		{
			ID:    "makan",
			Label: "Makan",
			Options: []Option{
				{Value: 10, Label: "mandiri"},
				{Value: 5, Label: "butuh bantuan"},
				{Value: 0, Label: "tidak mampu"},
			},
		},
		{
			ID:    "mandi",
			Label: "Mandi",
			Options: []Option{
				{Value: 5, Label: "mandiri"},
				{Value: 0, Label: "tergantung"},
			},
		},
		{
			ID:    "perawatanDiri",
			Label: "Perawatan Diri (cuci muka, sisir rambut, sikat gigi)",
			Options: []Option{
				{Value: 5, Label: "mandiri"},
				{Value: 0, Label: "butuh bantuan"},
			},
		},
		{
			ID:    "berpakaian",
			Label: "Berpakaian",
			Options: []Option{
				{Value: 10, Label: "mandiri"},
				{Value: 5, Label: "butuh bantuan"},
				{Value: 0, Label: "tergantung"},
			},
		},
		{
			ID:    "buangAirBesar",
			Label: "Buang Air Besar",
			Options: []Option{
				{Value: 10, Label: "kontinen"},
				{Value: 5, Label: "kadang inkontinen"},
				{Value: 0, Label: "inkontinen"},
			},
		},
		{
			ID:    "buangAirKecil",
			Label: "Buang Air Kecil",
			Options: []Option{
				{Value: 10, Label: "kontinen"},
				{Value: 5, Label: "kadang inkontinen"},
				{Value: 0, Label: "inkontinen/kateter"},
			},
		},
		{
			ID:    "toilet",
			Label: "Menggunakan Toilet",
			Options: []Option{
				{Value: 10, Label: "mandiri"},
				{Value: 5, Label: "butuh bantuan"},
				{Value: 0, Label: "tergantung"},
			},
		},
		{
			ID:    "transfer",
			Label: "Transfer (tempat tidur-kursi dan sebaliknya)",
			Options: []Option{
				{Value: 15, Label: "mandiri"},
				{Value: 10, Label: "butuh sedikit bantuan"},
				{Value: 5, Label: "butuh banyak bantuan"},
				{Value: 0, Label: "tidak mampu"},
			},
		},
		{
			ID:    "mobilitas",
			Label: "Mobilitas (berjalan di permukaan datar)",
			Options: []Option{
				{Value: 15, Label: "mandiri 50 meter"},
				{Value: 10, Label: "dengan bantuan 50 meter"},
				{Value: 5, Label: "kursi roda mandiri 50 meter"},
				{Value: 0, Label: "tidak mampu"},
			},
		},
		{
			ID:    "tangga",
			Label: "Naik Turun Tangga",
			Options: []Option{
				{Value: 10, Label: "mandiri"},
				{Value: 5, Label: "butuh bantuan"},
				{Value: 0, Label: "tidak mampu"},
			},
		},
	},
}
