package ports

import (
	"context"

	"github.com/Gunvolt24/donations/internal/domain"
)

// DonationCache — кэш завершённых пожертвований.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1);
// возврат копий сущности.
type DonationCache interface {
	// Get — вернуть пожертвование по ID; (donation, true) при попадании,
	// (nil, false) при промахе/истечении.
	Get(ctx context.Context, id string) (*domain.Donation, bool)

	// Set — сохранить/обновить запись в кэше.
	Set(ctx context.Context, donation *domain.Donation) error

	// WarmUp — массовая загрузка кэша (например, при старте).
	WarmUp(ctx context.Context, donations []*domain.Donation) error
}
