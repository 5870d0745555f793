//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/donations/internal/domain"
	pgrepo "github.com/Gunvolt24/donations/internal/repo/postgres"
	"github.com/Gunvolt24/donations/internal/testutil"
)

func newRepo(t *testing.T) (*pgrepo.DonationRepository, *pgxpool.Pool, context.Context) {
	t.Helper()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	// миграции
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	// короткий контекст — на сами БД-операции
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pgrepo.NewDonationRepository(pool), pool, ctx
}

// 1) Сохранение и получение пожертвования
func TestRepo_SaveAndGet_TC(t *testing.T) {
	t.Parallel()

	repo, _, ctx := newRepo(t)

	d := testutil.MakeDonation()
	require.NoError(t, repo.Save(ctx, &d))

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, d.ID, got.ID)
	require.Equal(t, d.Amount, got.Amount)
	require.Equal(t, d.Interval, got.Interval)
	require.Equal(t, d.ChargeID, got.ChargeID)
	require.Empty(t, got.SubscriptionID)
}

// 2) Повторный Save того же id — no-op (идемпотентность при редоставке)
func TestRepo_Save_DuplicateIsNoop_TC(t *testing.T) {
	t.Parallel()

	repo, _, ctx := newRepo(t)

	d := testutil.MakeDonation(testutil.WithAmount(25))
	require.NoError(t, repo.Save(ctx, &d))

	// второй Save с теми же id, но другой суммой — запись не меняется
	dup := d
	dup.Amount = 999
	require.NoError(t, repo.Save(ctx, &dup))

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.EqualValues(t, 25, got.Amount)
}

// 3) GetByID — отсутствующая запись даёт (nil, nil)
func TestRepo_GetByID_NotFound_TC(t *testing.T) {
	t.Parallel()

	repo, _, ctx := newRepo(t)

	got, err := repo.GetByID(ctx, "missing-id")
	require.NoError(t, err)
	require.Nil(t, got)
}

// 4) Подписка: сохраняется subscription_id без charge_id
func TestRepo_Save_Subscription_TC(t *testing.T) {
	t.Parallel()

	repo, _, ctx := newRepo(t)

	d := testutil.MakeDonation(testutil.WithSubscription(domain.IntervalMonthly))
	require.NoError(t, repo.Save(ctx, &d))

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.IntervalMonthly, got.Interval)
	require.Equal(t, d.SubscriptionID, got.SubscriptionID)
	require.Empty(t, got.ChargeID)
}

// 5) ListByCampaign — пагинация и сортировка по created_at DESC, затем id DESC
func TestRepo_ListByCampaign_PaginationAndOrder_TC(t *testing.T) {
	t.Parallel()

	repo, _, ctx := newRepo(t)

	const camp = "camp-list"
	base := time.Now().UTC().Add(-time.Hour)

	// 5 пожертвований одной кампании с контролируемыми датами + 1 другой
	for i := 0; i < 5; i++ {
		d := testutil.MakeDonation(testutil.WithCampaign(camp))
		d.CreatedAt = base.Add(time.Duration(i) * time.Minute) // возрастающее время
		require.NoError(t, repo.Save(ctx, &d))
	}
	other := testutil.MakeDonation(testutil.WithCampaign("camp-other"))
	require.NoError(t, repo.Save(ctx, &other))

	// Страница 1: limit=2 offset=0 → 2 последних
	page1, err := repo.ListByCampaign(ctx, camp, 2, 0)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.True(t, !page1[0].CreatedAt.Before(page1[1].CreatedAt))

	// Страница 2: limit=2 offset=2 → ещё 2
	page2, err := repo.ListByCampaign(ctx, camp, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 2)

	// Страница 3: limit=2 offset=4 → только 1 оставшееся
	page3, err := repo.ListByCampaign(ctx, camp, 2, 4)
	require.NoError(t, err)
	require.Len(t, page3, 1)

	// Чужая кампания не подмешивается
	for _, page := range [][]*domain.Donation{page1, page2, page3} {
		for _, d := range page {
			require.Equal(t, camp, d.CampaignID)
		}
	}
}

// 6) LastN — возвращает N самых свежих пожертвований
func TestRepo_LastN_ReturnsLatest_TC(t *testing.T) {
	t.Parallel()

	repo, _, ctx := newRepo(t)

	base := time.Now().UTC().Add(-time.Hour)
	var saved []domain.Donation
	for i := 0; i < 4; i++ {
		d := testutil.MakeDonation()
		d.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Save(ctx, &d))
		saved = append(saved, d)
	}

	latest3, err := repo.LastN(ctx, 3)
	require.NoError(t, err)
	require.Len(t, latest3, 3)

	// saved[3] — самое позднее, затем [2], затем [1]
	expect := []string{saved[3].ID, saved[2].ID, saved[1].ID}
	actual := []string{latest3[0].ID, latest3[1].ID, latest3[2].ID}
	require.Equal(t, expect, actual)
}

// 7) Save — ошибки валидации входа
func TestRepo_Save_ValidationErrors_TC(t *testing.T) {
	t.Parallel()

	repo, _, ctx := newRepo(t)

	// nil
	require.Error(t, repo.Save(ctx, nil))

	// пустой id
	d1 := testutil.MakeDonation()
	d1.ID = ""
	require.Error(t, repo.Save(ctx, &d1))

	// пустой customer_id
	d2 := testutil.MakeDonation()
	d2.CustomerID = ""
	require.Error(t, repo.Save(ctx, &d2))

	// оба идентификатора списания сразу
	d3 := testutil.MakeDonation()
	d3.SubscriptionID = "sub_x"
	require.Error(t, repo.Save(ctx, &d3))

	// ни одного идентификатора списания
	d4 := testutil.MakeDonation()
	d4.ChargeID = ""
	require.Error(t, repo.Save(ctx, &d4))
}
