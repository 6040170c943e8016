// file: internals/features/finance/fees/service/discount_resolver.go
package service

import (
	"math"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/finance/fees/model"
)

/* =========================================================
   DiscountResolver — hitung jumlah yang benar-benar
   dibayar pelajar setelah semua waiver aktif diterapkan.
   Murni & read-only: dipanggil di jalur tampilan/laporan,
   TIDAK pernah mengubah nominal obligation.
========================================================= */

type AppliedWaiver struct {
	WaiverID    uuid.UUID           `json:"waiver_id"`
	Type        model.FeeWaiverType `json:"type"`
	Percentage  *float64            `json:"percentage,omitempty"`
	DiscountSen int64               `json:"discount_sen"`
}

type FeeResolution struct {
	OriginalSen int64           `json:"original_sen"`
	DiscountSen int64           `json:"discount_sen"`
	FinalSen    int64           `json:"final_sen"`
	Applied     []AppliedWaiver `json:"applied"`
}

// ResolveDiscount menerapkan semua waiver aktif milik (pelajar, kategori)
// obligation tsb pada nominalnya.
//
//   - aktif = status approved DAN start<=at<=end; status lain atau di luar
//     window di-skip diam-diam (normal filtering, bukan error)
//   - waiver dengan student/category NULL dianggap tidak berlaku
//   - persentase: diskon_i = original * pct / 100; selain itu potongan tetap
//   - waiver aktif menumpuk aditif; TIDAK ada clamping di 0 — final bisa
//     negatif kalau total diskon melebihi nominal (perilaku berjalan,
//     keputusan produk belum ada; jangan "diperbaiki" diam-diam)
func ResolveDiscount(ob model.FeeObligationModel, categoryID uuid.UUID, waivers []model.FeeWaiverModel, at time.Time) FeeResolution {
	res := FeeResolution{
		OriginalSen: ob.FeeObligationAmountSen,
		Applied:     []AppliedWaiver{},
	}

	for _, w := range waivers {
		if !waiverApplies(w, ob.FeeObligationStudentID, categoryID) {
			continue
		}
		if !w.IsActiveAt(at) {
			continue
		}

		var d int64
		if w.FeeWaiverPercentage != nil {
			d = int64(math.Round(float64(res.OriginalSen) * *w.FeeWaiverPercentage / 100))
		} else {
			d = w.FeeWaiverAmountSen
		}

		res.DiscountSen += d
		res.Applied = append(res.Applied, AppliedWaiver{
			WaiverID:    w.FeeWaiverID,
			Type:        w.FeeWaiverType,
			Percentage:  w.FeeWaiverPercentage,
			DiscountSen: d,
		})
	}

	res.FinalSen = res.OriginalSen - res.DiscountSen
	return res
}

func waiverApplies(w model.FeeWaiverModel, studentID, categoryID uuid.UUID) bool {
	if w.FeeWaiverStudentID == nil || w.FeeWaiverCategoryID == nil {
		return false
	}
	return *w.FeeWaiverStudentID == studentID && *w.FeeWaiverCategoryID == categoryID
}
