// file: internals/features/reports/exports/service/pdf.go
package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	feeModel "sekolahku_backend/internals/features/finance/fees/model"
	paymentModel "sekolahku_backend/internals/features/finance/payments/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

func formatRM(sen int64) string {
	return fmt.Sprintf("RM %.2f", float64(sen)/100)
}

// GenerateReceiptPDF: resit rasmi satu pembayaran yang sudah completed.
func GenerateReceiptPDF(p paymentModel.PaymentModel, student studentModel.StudentModel, structureTitle string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "RESIT PEMBAYARAN YURAN", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"No. Resit", p.PaymentOrderID},
		{"Nama Pelajar", student.StudentName},
		{"No. Pelajar", student.StudentCode},
		{"Yuran", structureTitle},
		{"Jumlah", formatRM(p.PaymentAmountSen)},
		{"Kaedah", string(p.PaymentMethod)},
	}
	if p.PaymentPaidAt != nil {
		rows = append(rows, [2]string{"Tarikh Bayar", p.PaymentPaidAt.Format("02/01/2006 15:04")})
	}
	for _, r := range rows {
		pdf.CellFormat(50, 8, r[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, ": "+r[1], "", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Resit ini dijana secara automatik dan sah tanpa tandatangan.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateReminderPDF: surat peringatan untuk satu obligation tertunggak.
// finalSen = nominal selepas diskon (hasil resolver), itulah yang ditagih.
func GenerateReminderPDF(ob feeModel.FeeObligationModel, student studentModel.StudentModel, structureTitle string, finalSen int64) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "SURAT PERINGATAN YURAN TERTUNGGAK", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf(
		"Kepada ibu bapa/penjaga %s (%s),", student.StudentName, student.StudentCode), "", "L", false)
	pdf.Ln(2)

	due := "-"
	if ob.FeeObligationDueDate != nil {
		due = ob.FeeObligationDueDate.Format("02/01/2006")
	}
	pdf.MultiCell(0, 6, fmt.Sprintf(
		"Rekod kami menunjukkan yuran \"%s\" sebanyak %s yang sepatutnya dijelaskan pada %s masih belum diterima sehingga %s.",
		structureTitle, formatRM(finalSen), due, time.Now().Format("02/01/2006")), "", "L", false)
	pdf.Ln(2)
	pdf.MultiCell(0, 6,
		"Sila jelaskan bayaran tersebut melalui portal sekolah atau di pejabat sekolah dengan kadar segera. "+
			"Abaikan surat ini sekiranya bayaran telah dibuat.", "", "L", false)

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Surat ini dijana secara automatik.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
