package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/donations/internal/domain"
	"github.com/Gunvolt24/donations/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что DonationRepository удовлетворяет интерфейсу DonationRepository.
var _ ports.DonationRepository = (*DonationRepository)(nil)

const donationColumns = `
	id, amount, donation_interval, receipt_email, campaign_id,
	customer_id, charge_id, subscription_id, created_at`

// DonationRepository — реализация репозитория пожертвований на Postgres (pgxpool).
type DonationRepository struct {
	pool *pgxpool.Pool
}

// NewDonationRepository - конструктор DonationRepository.
func NewDonationRepository(pool *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{pool: pool}
}

// Save — сохраняет запись о пожертвовании. Запись плоская, транзакция не нужна.
// ON CONFLICT DO NOTHING: повторная вставка того же id безопасна (идемпотентность
// при редоставке сообщения).
func (r *DonationRepository) Save(ctx context.Context, donation *domain.Donation) error {
	if donation == nil || donation.ID == "" {
		return errors.New("donation is empty or id is required")
	}
	if donation.CustomerID == "" {
		return errors.New("customer_id is required")
	}
	// Ровно один идентификатор результата списания.
	if (donation.ChargeID == "") == (donation.SubscriptionID == "") {
		return errors.New("exactly one of charge_id/subscription_id is required")
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO donations (
			id, amount, donation_interval, receipt_email, campaign_id,
			customer_id, charge_id, subscription_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`,
		donation.ID, donation.Amount, string(donation.Interval), donation.ReceiptEmail,
		donation.CampaignID, donation.CustomerID, donation.ChargeID, donation.SubscriptionID,
		donation.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

// GetByID — получить пожертвование по id. Если не нашли, возвращает (nil, nil).
func (r *DonationRepository) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+donationColumns+`
		FROM donations WHERE id = $1
	`, id)

	donation, err := scanDonation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select donation: %w", err)
	}
	return donation, nil
}

// ListByCampaign — постраничный список пожертвований кампании (новые первыми).
func (r *DonationRepository) ListByCampaign(ctx context.Context, campaignID string, limit, offset int) ([]*domain.Donation, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+donationColumns+`
		FROM donations
		WHERE campaign_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, campaignID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select campaign donations: %w", err)
	}
	defer rows.Close()

	donations := make([]*domain.Donation, 0, limit)
	for rows.Next() {
		donation, scanErr := scanDonation(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan donation: %w", scanErr)
		}
		donations = append(donations, donation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("donations rows: %w", err)
	}
	return donations, nil
}

// LastN — последние N пожертвований (для прогрева кэша).
func (r *DonationRepository) LastN(ctx context.Context, n int) ([]*domain.Donation, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+donationColumns+`
		FROM donations
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("select last donations: %w", err)
	}
	defer rows.Close()

	var result []*domain.Donation
	for rows.Next() {
		donation, scanErr := scanDonation(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan donation: %w", scanErr)
		}
		result = append(result, donation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("last rows: %w", err)
	}
	return result, nil
}

// scanDonation — единая распаковка строки donations.
func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var donation domain.Donation
	var interval string
	if err := row.Scan(
		&donation.ID, &donation.Amount, &interval, &donation.ReceiptEmail, &donation.CampaignID,
		&donation.CustomerID, &donation.ChargeID, &donation.SubscriptionID, &donation.CreatedAt,
	); err != nil {
		return nil, err
	}
	donation.Interval = domain.Interval(interval)
	return &donation, nil
}
