package ports

import (
	"context"

	"github.com/Gunvolt24/donations/internal/domain"
)

// DonationReadService — сервис чтения пожертвований.
type DonationReadService interface {
	GetDonation(ctx context.Context, id string) (*domain.Donation, error)
	DonationsByCampaign(ctx context.Context, campaignID string, limit, offset int) ([]*domain.Donation, error)
}
