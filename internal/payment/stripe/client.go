// Пакет stripe — REST-клиент платёжного провайдера.
// Клиент передаётся в сервис обработки явно (DI), без глобальных
// ключей на уровне процесса: в тестах подменяется моком порта.
package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/donations/internal/domain"
	"github.com/Gunvolt24/donations/internal/ports"
	"github.com/Gunvolt24/donations/pkg/metrics"
)

// Проверка, что Client удовлетворяет интерфейсу PaymentProcessor.
var _ ports.PaymentProcessor = (*Client)(nil)

const defaultBaseURL = "https://api.stripe.com"

// Config — параметры клиента.
type Config struct {
	APIKey  string
	BaseURL string        // пусто = боевой API
	Timeout time.Duration // таймаут HTTP-клиента; 0 = 10s
}

// Client — клиент Stripe-совместимого API (form-encoded запросы, Bearer-авторизация).
// Все ошибки возвращаются классифицированными (*domain.ProcessorError) —
// классификация выполняется здесь один раз и выше не меняется.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
	log     ports.Logger
}

// NewClient — конструктор клиента.
func NewClient(cfg Config, log ports.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// CreateCustomer — регистрирует клиента по одноразовому токену карты.
// Токен не логируется.
func (c *Client) CreateCustomer(ctx context.Context, token string) (string, error) {
	form := url.Values{}
	form.Set("card", token)
	return c.post(ctx, "create_customer", "/v1/customers", form)
}

// CreateCharge — разовое списание. Сумма уже в минорных единицах.
// receipt_email передаётся только когда он есть: пустая строка провайдеру
// не отправляется никогда (провайдер различает «нет» и «пустая строка»).
func (c *Client) CreateCharge(ctx context.Context, p ports.ChargeParams) (string, error) {
	form := url.Values{}
	form.Set("customer", p.CustomerID)
	form.Set("amount", strconv.FormatInt(p.AmountCents, 10))
	form.Set("currency", p.Currency)
	if p.ReceiptEmail != "" {
		form.Set("receipt_email", p.ReceiptEmail)
	}
	return c.post(ctx, "create_charge", "/v1/charges", form)
}

// CreateSubscription — подписка: план = интервал, quantity = сумма в долларах.
func (c *Client) CreateSubscription(ctx context.Context, p ports.SubscriptionParams) (string, error) {
	form := url.Values{}
	form.Set("customer", p.CustomerID)
	form.Set("plan", p.PlanID)
	form.Set("quantity", strconv.FormatInt(p.Quantity, 10))
	return c.post(ctx, "create_subscription", "/v1/subscriptions", form)
}

// apiError — конверт ошибки провайдера.
type apiError struct {
	Type        string `json:"type"`
	Message     string `json:"message"`
	Code        string `json:"code"`
	DeclineCode string `json:"decline_code"`
}

type apiResponse struct {
	ID    string    `json:"id"`
	Error *apiError `json:"error"`
}

// post — выполняет запрос и возвращает id созданного объекта.
func (c *Client) post(ctx context.Context, op, path string, form url.Values) (string, error) {
	start := time.Now()
	id, err := c.doPost(ctx, path, form)
	metrics.ProcessorRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ProcessorRequests.WithLabelValues(op, "error").Inc()
		return "", err
	}
	metrics.ProcessorRequests.WithLabelValues(op, "ok").Inc()
	return id, nil
}

func (c *Client) doPost(ctx context.Context, path string, form url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &domain.ProcessorError{Kind: domain.FailureRequestInvalid, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		// Сеть/таймаут/отмена: провайдер гарантирует отсутствие частичного
		// списания при сбое соединения.
		return "", &domain.ProcessorError{Kind: domain.FailureUnreachable, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.ProcessorError{Kind: domain.FailureUnreachable, Err: fmt.Errorf("read body: %w", err)}
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &domain.ProcessorError{
			Kind:   domain.FailureUnknown,
			Detail: fmt.Sprintf("status %d, unparsable body", resp.StatusCode),
			Err:    err,
		}
	}

	if parsed.Error != nil || resp.StatusCode >= 400 {
		return "", classify(resp.StatusCode, parsed.Error)
	}
	if parsed.ID == "" {
		return "", &domain.ProcessorError{Kind: domain.FailureUnknown, Detail: "response without object id"}
	}
	return parsed.ID, nil
}

// classify — единственное место, где ответы провайдера превращаются
// в локальную таксономию ошибок.
func classify(status int, e *apiError) *domain.ProcessorError {
	if e == nil {
		if status == http.StatusUnauthorized {
			return &domain.ProcessorError{Kind: domain.FailureAuth, Detail: fmt.Sprintf("status %d", status)}
		}
		return &domain.ProcessorError{Kind: domain.FailureUnknown, Detail: fmt.Sprintf("status %d", status)}
	}

	switch e.Type {
	case "card_error":
		// Причина отказа показывается пользователю дословно.
		return &domain.ProcessorError{Kind: domain.FailureCardDeclined, Detail: e.Message}
	case "invalid_request_error":
		return &domain.ProcessorError{Kind: domain.FailureRequestInvalid, Detail: e.Message}
	case "api_connection_error":
		return &domain.ProcessorError{Kind: domain.FailureUnreachable, Detail: e.Message}
	case "authentication_error":
		return &domain.ProcessorError{Kind: domain.FailureAuth, Detail: e.Message}
	default:
		if status == http.StatusUnauthorized {
			return &domain.ProcessorError{Kind: domain.FailureAuth, Detail: e.Message}
		}
		return &domain.ProcessorError{Kind: domain.FailureUnknown, Detail: e.Message}
	}
}

// IsProcessorError — удобный помощник для вызывающих слоёв.
func IsProcessorError(err error) bool {
	var pe *domain.ProcessorError
	return errors.As(err, &pe)
}
