package ports

import (
	"context"

	"github.com/Gunvolt24/donations/internal/domain"
)

type DonationRepository interface {
	// Save — сохраняет завершённое пожертвование. Запись создаётся один раз
	// и не изменяется.
	Save(ctx context.Context, donation *domain.Donation) error

	GetByID(ctx context.Context, id string) (*domain.Donation, error)
	ListByCampaign(ctx context.Context, campaignID string, limit, offset int) ([]*domain.Donation, error)
	LastN(ctx context.Context, n int) ([]*domain.Donation, error)
}
