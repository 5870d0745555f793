//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/donations/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного пожертвования (разовое списание по умолчанию)
func MakeDonation(opts ...func(*domain.Donation)) domain.Donation {
	id := "don-" + UniqSuffix()
	now := time.Now().UTC().Truncate(time.Second)

	d := domain.Donation{
		ID:           id,
		Amount:       25,
		Interval:     domain.IntervalOnetime,
		ReceiptEmail: "donor@example.com",
		CampaignID:   "camp-" + UniqSuffix(),
		CustomerID:   "cus_" + UniqSuffix(),
		ChargeID:     "ch_" + UniqSuffix(),
		CreatedAt:    now,
	}

	for _, fn := range opts {
		fn(&d)
	}
	return d
}

func WithCampaign(campaignID string) func(*domain.Donation) {
	return func(d *domain.Donation) { d.CampaignID = campaignID }
}

func WithAmount(amount int64) func(*domain.Donation) {
	return func(d *domain.Donation) { d.Amount = amount }
}

// WithSubscription — регулярное пожертвование: подписка вместо разового списания.
func WithSubscription(interval domain.Interval) func(*domain.Donation) {
	return func(d *domain.Donation) {
		d.Interval = interval
		d.ChargeID = ""
		d.SubscriptionID = "sub_" + UniqSuffix()
	}
}

func WithDonationID(id string) func(*domain.Donation) {
	return func(d *domain.Donation) { d.ID = id }
}
