package service

import (
	"sekolahku_backend/internals/features/donations/donations/model"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// GenerateSnapToken membuat token Snap Midtrans berdasarkan data donasi dan donatur.
// Snap client global di-share dengan modul payments (satu init di boot).
func GenerateSnapToken(snapClient *snap.Client, d model.Donation, name string, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  d.DonationOrderID,
			GrossAmt: d.DonationAmountSen / 100,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := snapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}
