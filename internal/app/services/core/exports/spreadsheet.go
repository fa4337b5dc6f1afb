package exports

import (
	"fmt"
	"strings"

	"kemandirian-service/internal/app/models"
	"kemandirian-service/internal/pkg/exceptions"
	"kemandirian-service/internal/pkg/instruments"

	"github.com/xuri/excelize/v2"
)

const summarySheetName = "Ringkasan"

var instrumentSheetPrefixes = map[string]string{
	instruments.IDAKS:     "AKS",
	instruments.IDAIKS:    "AIKS",
	instruments.IDBarthel: "Barthel",
}

// buildSpreadsheet renders the multi-sheet recap workbook: one summary
// sheet, then a demographic sheet and per-instrument detail sheets for each
// record, numbered in record order.
func buildSpreadsheet(records []models.AssessmentRecord) ([]byte, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := buildSummarySheet(workbook, records); err != nil {
		return nil, exceptions.ErrSpreadsheetBuild(err)
	}

	for idx := range records {
		record := &records[idx]
		if err := buildDemographicSheet(workbook, record, idx+1); err != nil {
			return nil, exceptions.ErrSpreadsheetBuild(err)
		}
		for resultIdx := range record.Results {
			if err := buildInstrumentSheet(workbook, record, &record.Results[resultIdx], idx+1); err != nil {
				return nil, exceptions.ErrSpreadsheetBuild(err)
			}
		}
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, exceptions.ErrSpreadsheetBuild(err)
	}
	return buffer.Bytes(), nil
}

func buildSummarySheet(workbook *excelize.File, records []models.AssessmentRecord) error {
	sheet := workbook.GetSheetName(workbook.GetActiveSheetIndex())
	if err := workbook.SetSheetName(sheet, summarySheetName); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"LAPORAN ASSESSMENT KEMANDIRIAN LANSIA"},
		{},
		{"No", "Tanggal", "Nama", "Usia", "Jenis Kelamin", "Skor AKS", "Skor AIKS", "Skor Barthel", "Status"},
	}
	for idx := range records {
		record := &records[idx]
		rows = append(rows, []interface{}{
			idx + 1,
			record.Timestamp.Format("02/01/2006"),
			record.Demographic.Nama,
			record.Demographic.Usia,
			record.Demographic.JenisKelamin,
			scoreCell(record, instruments.IDAKS),
			scoreCell(record, instruments.IDAIKS),
			scoreCell(record, instruments.IDBarthel),
			statusLabel(record),
		})
	}
	if err := writeRows(workbook, summarySheetName, rows); err != nil {
		return err
	}

	if err := workbook.SetColWidth(summarySheetName, "A", "A", 5); err != nil {
		return err
	}
	if err := workbook.SetColWidth(summarySheetName, "B", "E", 15); err != nil {
		return err
	}
	if err := workbook.SetColWidth(summarySheetName, "F", "I", 20); err != nil {
		return err
	}
	return workbook.MergeCell(summarySheetName, "A1", "I1")
}

func buildDemographicSheet(workbook *excelize.File, record *models.AssessmentRecord, number int) error {
	sheetName := fmt.Sprintf("Demo-%d", number)
	if _, err := workbook.NewSheet(sheetName); err != nil {
		return err
	}

	demographic := &record.Demographic
	rows := [][]interface{}{
		{fmt.Sprintf("DATA DEMOGRAFIS - %s", demographic.Nama)},
		{},
		{"Field", "Value"},
		{"Nama", demographic.Nama},
		{"Usia", demographic.Usia},
		{"Jenis Kelamin", orDash(demographic.JenisKelamin)},
		{"Alamat", orDash(demographic.Alamat)},
		{"No. Telepon", orDash(demographic.NoTelepon)},
		{"Pekerjaan", orDash(demographic.Pekerjaan)},
		{"Agama", orDash(demographic.Agama)},
		{"Status Pernikahan", orDash(demographic.StatusPernikahan)},
		{"Pendidikan Terakhir", orDash(demographic.Pendidikan)},
		{"Penyakit Kronis", orDash(strings.Join(demographic.PenyakitKronis, ", "))},
		{"Penyakit Lainnya", orDash(demographic.PenyakitLainnya)},
		{"Kepemilikan Asuransi", orDash(demographic.AsuransiKesehatan)},
	}
	if err := writeRows(workbook, sheetName, rows); err != nil {
		return err
	}

	if err := workbook.SetColWidth(sheetName, "A", "A", 25); err != nil {
		return err
	}
	if err := workbook.SetColWidth(sheetName, "B", "B", 40); err != nil {
		return err
	}
	return workbook.MergeCell(sheetName, "A1", "B1")
}

func buildInstrumentSheet(workbook *excelize.File, record *models.AssessmentRecord, result *instruments.Result, number int) error {
	prefix, known := instrumentSheetPrefixes[result.InstrumentID]
	if !known {
		prefix = strings.ToUpper(result.InstrumentID)
	}
	sheetName := fmt.Sprintf("%s-%d", prefix, number)
	if _, err := workbook.NewSheet(sheetName); err != nil {
		return err
	}

	def, ok := instruments.Lookup(result.InstrumentID, result.Version)
	if !ok {
		return fmt.Errorf("unknown instrument %s@%d", result.InstrumentID, result.Version)
	}

	rows := [][]interface{}{
		{fmt.Sprintf("%s - %s", strings.ToUpper(def.Title), record.Demographic.Nama)},
		{},
		{"No", "Aktivitas", "Skor", "Keterangan"},
	}
	for itemIdx := range def.Items {
		item := &def.Items[itemIdx]
		score, answered := result.Responses[item.ID]
		keterangan := "-"
		if answered {
			for _, option := range item.Options {
				if option.Value == score {
					keterangan = option.Label
					break
				}
			}
		}
		rows = append(rows, []interface{}{itemIdx + 1, item.Label, score, keterangan})
	}

	classification := instruments.Classify(def, result.TotalScore)
	rows = append(rows,
		[]interface{}{},
		[]interface{}{fmt.Sprintf("TOTAL SKOR %s", prefix), "", result.TotalScore, ""},
		[]interface{}{"STATUS", "", "", classification.Tier.Label},
	)

	if err := writeRows(workbook, sheetName, rows); err != nil {
		return err
	}

	if err := workbook.SetColWidth(sheetName, "A", "A", 5); err != nil {
		return err
	}
	if err := workbook.SetColWidth(sheetName, "B", "B", 35); err != nil {
		return err
	}
	if err := workbook.SetColWidth(sheetName, "C", "D", 25); err != nil {
		return err
	}
	return workbook.MergeCell(sheetName, "A1", "D1")
}

func writeRows(workbook *excelize.File, sheetName string, rows [][]interface{}) error {
	for idx, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+1)
		if err != nil {
			return err
		}
		if err := workbook.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func scoreCell(record *models.AssessmentRecord, instrumentID string) interface{} {
	if result, ok := record.Result(instrumentID); ok {
		return result.TotalScore
	}
	return "-"
}

func statusLabel(record *models.AssessmentRecord) string {
	if record.Derived.Combined != nil {
		return record.Derived.Combined.Label
	}
	worst := instruments.TierMandiri
	found := false
	for _, tier := range record.Derived.Tiers {
		worst = instruments.Worse(worst, tier)
		found = true
	}
	if !found {
		return "-"
	}
	return worst.Label
}
