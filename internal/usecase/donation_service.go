package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Gunvolt24/donations/internal/domain"
	"github.com/Gunvolt24/donations/internal/ports"
	"github.com/Gunvolt24/donations/pkg/metrics"
	"github.com/google/uuid"
)

// Валюта разовых списаний. Провайдер принимает сумму в минорных единицах,
// поэтому доллары конвертируются в центы один раз — здесь и больше нигде.
const chargeCurrency = "usd"

// DonationService — прикладная логика обработки пожертвований
// (без знаний о транспорте).
type DonationService struct {
	processor ports.PaymentProcessor // клиент платёжного провайдера
	repo      ports.DonationRepository
	cache     ports.DonationCache
	log       ports.Logger
	validator ports.RequestValidator
}

// NewDonationService — DI-конструктор.
func NewDonationService(
	processor ports.PaymentProcessor,
	repo ports.DonationRepository,
	cache ports.DonationCache,
	log ports.Logger,
	validator ports.RequestValidator,
) *DonationService {
	return &DonationService{
		processor: processor,
		repo:      repo,
		cache:     cache,
		log:       log,
		validator: validator,
	}
}

// Process — основная транзакция пожертвования.
// Протокол (последовательный, без частичных повторов внутри вызова):
//  1. создать клиента у провайдера по одноразовому токену;
//  2. onetime → разовое списание (amount * 100 центов, usd);
//     иначе → подписка (план = интервал, quantity = amount без умножения);
//  3. собрать Donation (ровно одно из ChargeID/SubscriptionID) и сохранить.
//
// Ошибки провайдера приходят уже классифицированными и прокидываются без
// переклассификации. Повторы на этом уровне не выполняются.
//
// Отдельный случай — ошибка сохранения ПОСЛЕ успешного списания: деньги уже
// ушли, поэтому Donation возвращается вместе с *domain.PersistenceError,
// а детали для ручной сверки пишутся в лог.
func (s *DonationService) Process(ctx context.Context, req *domain.DonationRequest) (*domain.Donation, error) {
	if req == nil {
		return nil, errors.New("donation request is nil")
	}

	// Шаг 1: клиент у провайдера. Даёт цель для списания и стабильную
	// идентичность для будущих квитанций.
	customerID, err := s.processor.CreateCustomer(ctx, req.PaymentToken)
	if err != nil {
		s.countFailure(err)
		s.log.Warnf(ctx, "create customer failed amount=%d interval=%s err=%v", req.Amount, req.Interval, err)
		return nil, err
	}

	donation := &domain.Donation{
		ID:           uuid.NewString(),
		Amount:       req.Amount,
		Interval:     req.Interval,
		ReceiptEmail: req.ReceiptEmail,
		CampaignID:   req.CampaignID,
		CustomerID:   customerID,
		CreatedAt:    time.Now().UTC(),
	}

	// Шаг 2: списание или подписка — в зависимости от интервала.
	if req.Interval == domain.IntervalOnetime {
		chargeID, chErr := s.processor.CreateCharge(ctx, ports.ChargeParams{
			CustomerID:   customerID,
			AmountCents:  req.Amount * 100,
			Currency:     chargeCurrency,
			ReceiptEmail: req.ReceiptEmail,
		})
		if chErr != nil {
			s.countFailure(chErr)
			s.log.Warnf(ctx, "create charge failed amount=%d customer=%s err=%v", req.Amount, customerID, chErr)
			return nil, chErr
		}
		donation.ChargeID = chargeID
	} else {
		subscriptionID, subErr := s.processor.CreateSubscription(ctx, ports.SubscriptionParams{
			CustomerID: customerID,
			PlanID:     string(req.Interval),
			Quantity:   req.Amount,
		})
		if subErr != nil {
			s.countFailure(subErr)
			s.log.Warnf(ctx, "create subscription failed amount=%d customer=%s err=%v", req.Amount, customerID, subErr)
			return nil, subErr
		}
		donation.SubscriptionID = subscriptionID
	}

	// Шаг 3: долговечная запись.
	if saveErr := s.repo.Save(ctx, donation); saveErr != nil {
		// Списание уже прошло — об этом нельзя молчать: лог содержит всё
		// необходимое для ручной сверки.
		metrics.DonationsFailed.WithLabelValues("persistence").Inc()
		s.log.Errorf(ctx,
			"donation charged but not persisted: id=%s amount=%d customer=%s charge=%s subscription=%s err=%v",
			donation.ID, donation.Amount, donation.CustomerID, donation.ChargeID, donation.SubscriptionID, saveErr)
		return donation, &domain.PersistenceError{Donation: donation, Err: saveErr}
	}

	// Обновление кэша (промах некритичен).
	if cacheErr := s.cache.Set(ctx, donation); cacheErr != nil {
		s.log.Warnf(ctx, "cache.Set failed donation=%s err=%v", donation.ID, cacheErr)
	}

	metrics.DonationsProcessed.WithLabelValues(string(donation.Interval)).Inc()
	s.log.Infof(ctx, "donation processed id=%s amount=%d interval=%s charge=%s subscription=%s",
		donation.ID, donation.Amount, donation.Interval, donation.ChargeID, donation.SubscriptionID)
	return donation, nil
}

// ProcessFromMessage — обработка сырого запроса, пришедшего из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields);
//  2. валидация запроса (вернёт ошибку с validate.ErrInvalidRequest внутри);
//  3. Process — транзакция списания и сохранения.
//
// Валидационные ошибки до провайдера не доходят.
func (s *DonationService) ProcessFromMessage(ctx context.Context, raw []byte) error {
	var rawReq domain.RawDonationRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rawReq); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("invalid json: %w", err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("invalid json: trailing data")
	}

	req, err := s.validator.ValidateRequest(ctx, &rawReq)
	if err != nil {
		metrics.DonationsFailed.WithLabelValues("validation").Inc()
		s.log.Warnf(ctx, "validation failed amount=%q interval=%q err=%v", rawReq.Amount, rawReq.Interval, err)
		return fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.Process(ctx, req); err != nil {
		return err
	}
	return nil
}

// GetDonation — чтение по ID: сначала из кэша, при промахе — из БД с записью в кэш.
// Возвращает (*Donation, nil) или (nil, nil), если записи нет.
func (s *DonationService) GetDonation(ctx context.Context, id string) (*domain.Donation, error) {
	if donation, found := s.cache.Get(ctx, id); found {
		s.log.Infof(ctx, "cache hit for donation=%s", id)
		return donation, nil
	}
	s.log.Infof(ctx, "cache miss for donation=%s", id)

	start := time.Now()
	donation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed donation=%s err=%v", id, err)
		return nil, err
	}

	if donation != nil {
		if setErr := s.cache.Set(ctx, donation); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed donation=%s err=%v", id, setErr)
		}
	}

	s.log.Infof(ctx, "db fetch donation=%s took=%s", id, time.Since(start))
	return donation, nil
}

// DonationsByCampaign — проксирование в репозиторий (пагинация уже
// валидирована на верхнем уровне).
func (s *DonationService) DonationsByCampaign(
	ctx context.Context,
	campaignID string,
	limit, offset int,
) ([]*domain.Donation, error) {
	return s.repo.ListByCampaign(ctx, campaignID, limit, offset)
}

// WarmUpCache — прогрев кэша последними N пожертвованиями из БД.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (s *DonationService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.repo.LastN(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "repo.LastN failed n=%d err=%v", n, err)
		return err
	}
	if warmUpErr := s.cache.WarmUp(ctx, list); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d donations in %s", len(list), time.Since(start))
	return nil
}

// countFailure — метрика отказа по классификации провайдера.
func (s *DonationService) countFailure(err error) {
	if pe, ok := domain.AsProcessorError(err); ok {
		metrics.DonationsFailed.WithLabelValues(string(pe.Kind)).Inc()
		return
	}
	metrics.DonationsFailed.WithLabelValues("processor_unknown").Inc()
}
