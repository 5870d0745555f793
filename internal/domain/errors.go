package domain

import (
	"errors"
	"fmt"
)

// FailureKind — классификация ошибок платёжного провайдера.
// Классификация выполняется один раз — на границе клиента провайдера,
// и дальше по слоям не переопределяется.
type FailureKind string

const (
	// FailureCardDeclined — карта отклонена (ошибка уровня карты).
	FailureCardDeclined FailureKind = "card_declined"
	// FailureRequestInvalid — провайдер счёл запрос некорректным; списания не было.
	// Для пользователя это «что-то пошло не так», для нас — признак бага.
	FailureRequestInvalid FailureKind = "processor_request_invalid"
	// FailureUnreachable — сеть/таймаут до провайдера; списания не было, можно повторить позже.
	FailureUnreachable FailureKind = "processor_unreachable"
	// FailureAuth — ошибка аутентификации у провайдера: неверные ключи.
	// Пользователю не показывается, требует вмешательства оператора.
	FailureAuth FailureKind = "processor_auth_failure"
	// FailureUnknown — любая другая ошибка провайдера; прокидывается наверх
	// без понижения, чтобы попасть в мониторинг.
	FailureUnknown FailureKind = "processor_unknown"
)

// ProcessorError — классифицированная ошибка платёжного провайдера.
// Detail — текст ответа провайдера (для card_declined показывается
// пользователю дословно).
type ProcessorError struct {
	Kind   FailureKind
	Detail string
	Err    error // исходная ошибка (сеть и т.п.), может быть nil
}

func (e *ProcessorError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("processor error (%s): %s", e.Kind, e.Detail)
	}
	if e.Err != nil {
		return fmt.Sprintf("processor error (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("processor error (%s)", e.Kind)
}

func (e *ProcessorError) Unwrap() error { return e.Err }

// Retryable — true, если списания гарантированно не было и попытку
// можно повторить позже (сетевые сбои).
func (e *ProcessorError) Retryable() bool { return e.Kind == FailureUnreachable }

// Operational — true для ошибок, которые нельзя показывать пользователю:
// они эскалируются операторам (неверные ключи, неизвестные сбои).
func (e *ProcessorError) Operational() bool {
	return e.Kind == FailureAuth || e.Kind == FailureUnknown
}

// UserMessage — готовое сообщение для пользователя.
// Для operational-ошибок возвращает пустую строку: слой представления
// обязан заменить их на общее извинение.
func (e *ProcessorError) UserMessage() string {
	switch e.Kind {
	case FailureCardDeclined:
		return fmt.Sprintf(
			"We're sorry but we had problems charging your card. Here is what our payment processor replied: %q", e.Detail)
	case FailureRequestInvalid:
		return "We're sorry but something went wrong while processing your card details. No charge was made. Please try again or get in touch with us."
	case FailureUnreachable:
		return "We're sorry but we have technical difficulties reaching our payment processor. No charge was made. Please try again later."
	default:
		return ""
	}
}

// PersistenceError — списание прошло, но долговечную запись сохранить
// не удалось. Никогда не проглатывается молча: содержит всё необходимое
// для ручной сверки (сумма, клиент, charge/subscription).
type PersistenceError struct {
	Donation *Donation
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("donation charged but not persisted (customer=%s charge=%s subscription=%s): %v",
		e.Donation.CustomerID, e.Donation.ChargeID, e.Donation.SubscriptionID, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// AsProcessorError — короткий помощник для errors.As.
func AsProcessorError(err error) (*ProcessorError, bool) {
	var pe *ProcessorError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
