package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/donations/internal/domain"
	"github.com/Gunvolt24/donations/internal/ports"
)

// ValidateRequestFromJSON — строгий разбор и валидация запроса из JSON.
// Возвращает сырой запрос (для канонического вывода) и типизированный результат.
func ValidateRequestFromJSON(ctx context.Context, validator ports.RequestValidator, rawJSON []byte) (*domain.RawDonationRequest, *domain.DonationRequest, error) {
	var raw domain.RawDonationRequest
	dec := json.NewDecoder(bytes.NewReader(rawJSON))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, nil, fmt.Errorf("invalid json: trailing data")
	}
	req, err := validator.ValidateRequest(ctx, &raw)
	if err != nil {
		return nil, nil, err
	}
	return &raw, req, nil
}
