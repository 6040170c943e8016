// file: internals/features/reports/exports/service/excel.go
package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	studentModel "sekolahku_backend/internals/features/school/students/model"
)

// FeeReportRow: satu baris laporan yuran per pelajar (nominal sudah
// melewati DiscountResolver).
type FeeReportRow struct {
	StudentCode    string
	StudentName    string
	StructureTitle string
	OriginalSen    int64
	DiscountSen    int64
	FinalSen       int64
	Status         string
	DueDate        string
}

// GenerateLevelFeeReportXLSX: laporan Excel yuran satu level.
func GenerateLevelFeeReportXLSX(level studentModel.Level, rows []FeeReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Laporan"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Laporan Yuran %s", level.String()))

	headers := []string{"No. Pelajar", "Nama", "Yuran", "Asal (RM)", "Diskaun (RM)", "Perlu Bayar (RM)", "Status", "Tarikh Akhir"}
	for i, hname := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, hname)
	}

	var totalFinal int64
	for i, r := range rows {
		rowIdx := i + 4
		values := []interface{}{
			r.StudentCode,
			r.StudentName,
			r.StructureTitle,
			float64(r.OriginalSen) / 100,
			float64(r.DiscountSen) / 100,
			float64(r.FinalSen) / 100,
			r.Status,
			r.DueDate,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, rowIdx)
			f.SetCellValue(sheet, cell, v)
		}
		totalFinal += r.FinalSen
	}

	sumRow := len(rows) + 5
	cell, _ := excelize.CoordinatesToCellName(5, sumRow)
	f.SetCellValue(sheet, cell, "JUMLAH")
	cell, _ = excelize.CoordinatesToCellName(6, sumRow)
	f.SetCellValue(sheet, cell, float64(totalFinal)/100)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
