package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"sekolahku_backend/internals/features/waqaf/waqaf/model"
)

// GenerateCertificatePDF: sijil waqaf untuk sumbangan yang sudah paid.
// Dirender on-demand, tidak disimpan.
func GenerateCertificatePDF(contrib model.WaqafContributionModel, assetName string, schoolName string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Times", "B", 28)
	pdf.CellFormat(0, 30, "SIJIL WAQAF", "", 1, "C", false, 0, "")

	pdf.SetFont("Times", "", 14)
	pdf.CellFormat(0, 10, schoolName, "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Times", "", 13)
	pdf.CellFormat(0, 8, "Dengan ini diperakui bahawa", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Times", "B", 20)
	pdf.CellFormat(0, 12, contrib.WaqafContributionName, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Times", "", 13)
	pdf.CellFormat(0, 8, "telah menyumbang kepada", "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "B", 15)
	pdf.CellFormat(0, 10, assetName, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Times", "", 13)
	amount := fmt.Sprintf("sebanyak RM %.2f", float64(contrib.WaqafContributionAmountSen)/100)
	pdf.CellFormat(0, 8, amount, "", 1, "C", false, 0, "")

	if contrib.WaqafContributionPaidAt != nil {
		pdf.Ln(6)
		pdf.SetFont("Times", "I", 11)
		pdf.CellFormat(0, 8, contrib.WaqafContributionPaidAt.Format("02 January 2006"), "", 1, "C", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Times", "I", 9)
	pdf.CellFormat(0, 6, "No. rujukan: "+contrib.WaqafContributionOrderID, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
