package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/Gunvolt24/donations/internal/domain"
	"github.com/Gunvolt24/donations/pkg/metrics"
	"github.com/Gunvolt24/donations/pkg/validate"
	"github.com/segmentio/kafka-go"
)

// handleMessage обрабатывает одно сообщение и определяет нужно ли коммитить оффсет.
//
// Редоставка сообщения с пожертвованием небезопасна: платёжный токен
// одноразовый, а после успешного списания повтор означал бы второе списание.
// Поэтому почти все исходы терминальные (коммит), повторяем только то,
// что заведомо не дошло до списания.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.service.ProcessFromMessage(ctxTimeout, msg.Value)
	cancel()

	if err == nil {
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	}
	metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()

	// Невалидные данные: логируем и коммитим, чтобы не обрабатывать повторно.
	if errors.Is(err, validate.ErrInvalidRequest) || errors.Is(err, validate.ErrMissingPaymentToken) {
		c.log.Warnf(ctx, "invalid message offset=%d: %v (skipped)", msg.Offset, err)
		return true
	}

	// Запись не сохранилась, но деньги уже списаны: повтор привёл бы ко
	// второму списанию. Коммитим; детали для сверки уже в логе сервиса.
	var perr *domain.PersistenceError
	if errors.As(err, &perr) {
		c.log.Errorf(ctx, "charged but not persisted offset=%d: %v (committed, needs reconciliation)", msg.Offset, err)
		return true
	}

	if pe, ok := domain.AsProcessorError(err); ok {
		switch pe.Kind {
		case domain.FailureUnreachable:
			// Провайдер недоступен — списания не было, повтор безопасен.
			c.log.Warnf(ctx, "processor unreachable offset=%d: %v (will retry without commit)", msg.Offset, err)
			return false
		case domain.FailureAuth:
			// Неверные ключи: проблема оператора, не данных. Не коммитим —
			// после исправления ключей сообщения будут обработаны.
			c.log.Errorf(ctx, "processor auth failure offset=%d: %v (operator action required, will retry)", msg.Offset, err)
			return false
		default:
			// Отказ карты / некорректный запрос / неизвестный отказ:
			// одноразовый токен повторно не провести.
			c.log.Warnf(ctx, "donation rejected offset=%d: %v (skipped)", msg.Offset, err)
			return true
		}
	}

	// Неклассифицированная ошибка (в т.ч. битый JSON): терминально.
	c.log.Warnf(ctx, "process failed offset=%d: %v (skipped)", msg.Offset, err)
	return true
}

// commitSafely пытается закоммитить оффсет и залогировать ошибку.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleepWithBackoff ждет backoff или останавливается по контексту.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// nextBackoff возвращает следующее время ожидания повтора с учетом retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > c.retryMax {
		return c.retryMax
	}
	return current
}

// withJitterEqual — умеренная случайность: половина задержки фиксирована,
// вторая половина — случайная. Баланс между стабильностью и случайностью.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(c.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}

// minDuration возвращает минимальное время из двух.
func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
