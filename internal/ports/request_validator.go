package ports

import (
	"context"

	"github.com/Gunvolt24/donations/internal/domain"
)

// RequestValidator — превращает сырой запрос пожертвования в типизированный
// доверенный DonationRequest или возвращает ошибку валидации с перечнем
// проблем по полям. Чистая трансформация, без побочных эффектов.
type RequestValidator interface {
	ValidateRequest(ctx context.Context, raw *domain.RawDonationRequest) (*domain.DonationRequest, error)
}
