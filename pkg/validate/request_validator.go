package validate

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"github.com/Gunvolt24/donations/internal/domain"
	"github.com/Gunvolt24/donations/internal/ports"
)

// Проверка, что RequestValidator удовлетворяет интерфейсу RequestValidator.
var _ ports.RequestValidator = (*RequestValidator)(nil)

// ErrInvalidRequest — базовая (sentinel error) ошибка валидации запроса.
var ErrInvalidRequest = errors.New("donation request validation failed")

// ErrMissingPaymentToken — отсутствие платёжного токена.
// Токен подставляется клиентским шагом (Stripe.js) до того, как запрос
// попадает к нам, поэтому его отсутствие — ошибка программирования
// вызывающей стороны, а не ошибка пользователя.
var ErrMissingPaymentToken = errors.New("payment token is missing")

// FieldError — проблема конкретного поля запроса.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError — перечень проблем по полям. Оборачивает ErrInvalidRequest,
// чтобы выше по стеку работал errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("%v: %s", ErrInvalidRequest, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidRequest }

// RequestValidator — нормализация и валидация сырого запроса пожертвования.
// Чистая трансформация: без побочных эффектов и без обращений к провайдеру.
type RequestValidator struct{}

// NewRequestValidator — конструктор RequestValidator.
func NewRequestValidator() *RequestValidator { return &RequestValidator{} }

// ValidateRequest — проверяет поля сырого запроса и собирает типизированный
// DonationRequest. Возвращает *ValidationError со ВСЕМИ проблемами полей,
// либо ErrMissingPaymentToken при отсутствии токена.
func (v *RequestValidator) ValidateRequest(_ context.Context, raw *domain.RawDonationRequest) (*domain.DonationRequest, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: запрос не может быть nil", ErrInvalidRequest)
	}

	// Токен — отдельный случай: его отсутствие фатально и не показывается
	// пользователю как ошибка формы.
	if strings.TrimSpace(raw.PaymentToken) == "" {
		return nil, ErrMissingPaymentToken
	}

	var fields []FieldError

	amount, err := parseAmount(raw.Amount)
	if err != nil {
		fields = append(fields, FieldError{Field: "amount", Message: err.Error()})
	}

	interval := domain.Interval(strings.TrimSpace(raw.Interval))
	if !interval.Valid() {
		fields = append(fields, FieldError{Field: "interval", Message: fmt.Sprintf("недопустимое значение %q", raw.Interval)})
	}

	// Пустой email нормализуется в «отсутствует» — провайдеру пустая строка
	// не передаётся никогда.
	email := strings.TrimSpace(raw.ReceiptEmail)
	if email != "" {
		if _, mailErr := mail.ParseAddress(email); mailErr != nil {
			fields = append(fields, FieldError{Field: "receipt_email", Message: "некорректный адрес"})
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return &domain.DonationRequest{
		Amount:       amount,
		Interval:     interval,
		ReceiptEmail: email,
		CampaignID:   strings.TrimSpace(raw.CampaignID),
		PaymentToken: raw.PaymentToken,
	}, nil
}

// parseAmount — сумма в долларах: целое число >= 1 (минимум платёжного API).
func parseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("сумма обязательна")
	}
	amount, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("не число: %q", s)
	}
	if amount < 1 {
		return 0, errors.New("сумма должна быть не меньше 1")
	}
	return amount, nil
}
