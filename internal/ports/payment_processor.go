package ports

import "context"

// ChargeParams — параметры разового списания.
// AmountCents — сумма в МИНОРНЫХ единицах (центах): конвертация из долларов
// выполняется один раз в сервисе обработки и больше нигде.
// ReceiptEmail пустая строка означает «квитанция не нужна» — реализация
// обязана не передавать провайдеру пустую строку.
type ChargeParams struct {
	CustomerID   string
	AmountCents  int64
	Currency     string
	ReceiptEmail string
}

// SubscriptionParams — параметры подписки.
// PlanID — идентификатор плана (совпадает с интервалом),
// Quantity — сумма в долларах БЕЗ умножения на 100: для рекуррентных
// платежей сумма выражается множителем плана.
type SubscriptionParams struct {
	CustomerID string
	PlanID     string
	Quantity   int64
}

// PaymentProcessor — граница с внешним платёжным провайдером.
// Все ошибки реализация возвращает уже классифицированными
// (*domain.ProcessorError) — выше по стеку классификация не меняется.
type PaymentProcessor interface {
	// CreateCustomer — регистрирует клиента по одноразовому токену карты.
	CreateCustomer(ctx context.Context, token string) (customerID string, err error)

	// CreateCharge — разовое списание с клиента.
	CreateCharge(ctx context.Context, params ChargeParams) (chargeID string, err error)

	// CreateSubscription — подписка на регулярные списания.
	CreateSubscription(ctx context.Context, params SubscriptionParams) (subscriptionID string, err error)
}
