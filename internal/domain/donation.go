package domain

import "time"

// Interval — периодичность пожертвования. Значение onetime означает
// разовый платёж, все остальные — подписку у платёжного провайдера.
type Interval string

const (
	IntervalMonthly   Interval = "monthly"
	IntervalQuarterly Interval = "quarterly"
	IntervalYearly    Interval = "yearly"
	IntervalOnetime   Interval = "onetime"
)

// Valid — проверяет, что значение входит в список допустимых.
func (i Interval) Valid() bool {
	switch i {
	case IntervalMonthly, IntervalQuarterly, IntervalYearly, IntervalOnetime:
		return true
	}
	return false
}

// Recurring — true для всех интервалов, кроме onetime.
func (i Interval) Recurring() bool { return i != IntervalOnetime }

// RawDonationRequest — сырой запрос пожертвования, как он приходит
// из очереди (или файла). Поля ещё не проверены — перед обработкой
// запрос обязан пройти через валидатор.
type RawDonationRequest struct {
	Amount       string `json:"amount"`        // сумма в долларах (мажорные единицы), строка из формы
	Interval     string `json:"interval"`      // monthly|quarterly|yearly|onetime
	ReceiptEmail string `json:"receipt_email"` // опционально; пустая строка = «без квитанции»
	CampaignID   string `json:"campaign_id"`   // опциональная ссылка на кампанию (проверяется выше)
	PaymentToken string `json:"payment_token"` // одноразовый токен карты (Stripe.js)
}

// DonationRequest — провалидированный запрос пожертвования.
// Иммутабелен после валидации; PaymentToken никогда не логируется
// и не сохраняется (поэтому исключён из сериализации).
type DonationRequest struct {
	Amount       int64    `json:"amount"` // доллары, >= 1
	Interval     Interval `json:"interval"`
	ReceiptEmail string   `json:"receipt_email,omitempty"` // пусто = квитанция не нужна
	CampaignID   string   `json:"campaign_id,omitempty"`
	PaymentToken string   `json:"-"`
}

// Donation — завершённое пожертвование: деньги списаны, запись долговечна.
// Инвариант: ровно одно из полей ChargeID/SubscriptionID непустое,
// в зависимости от Interval. После создания запись не изменяется.
type Donation struct {
	ID             string    `json:"id"`
	Amount         int64     `json:"amount"` // доллары
	Interval       Interval  `json:"interval"`
	ReceiptEmail   string    `json:"receipt_email,omitempty"`
	CampaignID     string    `json:"campaign_id,omitempty"`
	CustomerID     string    `json:"customer_id"`               // идентификатор клиента у провайдера
	ChargeID       string    `json:"charge_id,omitempty"`       // только при interval == onetime
	SubscriptionID string    `json:"subscription_id,omitempty"` // только при recurring
	CreatedAt      time.Time `json:"created_at"`
}
