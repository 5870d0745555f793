//go:build integration

package rest_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	cachemem "github.com/Gunvolt24/donations/internal/cache/memory"
	"github.com/Gunvolt24/donations/internal/domain"
	"github.com/stretchr/testify/require"

	pgrepo "github.com/Gunvolt24/donations/internal/repo/postgres"
	"github.com/Gunvolt24/donations/internal/testutil"
	rest "github.com/Gunvolt24/donations/internal/transport/http"
	"github.com/Gunvolt24/donations/internal/usecase"
	"github.com/Gunvolt24/donations/pkg/logger"
	"github.com/Gunvolt24/donations/pkg/validate"
)

// newHTTPStack — постгрес в контейнере + read-only API поверх него.
func newHTTPStack(t *testing.T) (context.Context, *pgrepo.DonationRepository, *httptest.Server) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	t.Cleanup(cancel)

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	repo := pgrepo.NewDonationRepository(pg.Pool)
	// Обработка платежей тут не нужна — читающий стек живёт без процессора.
	svc := usecase.NewDonationService(nil, repo, cachemem.NewLRUCacheTTL(100, time.Minute), logg, validate.NewRequestValidator())

	h := rest.NewHandler(svc, logg, 2*time.Second)
	r := rest.NewRouter(h, "", "")
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return ctx, repo, ts
}

// 1) GET /donation/:id — 200 успешная обработка
func TestHTTP_GetDonation_TC(t *testing.T) {
	ctx, repo, ts := newHTTPStack(t)

	d := testutil.MakeDonation()
	require.NoError(t, repo.Save(ctx, &d))

	resp, err := http.Get(ts.URL + "/donation/" + d.ID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, d.ID, got["id"])
}

// 2) GET /donation/:id — 404 когда записи нет
func TestHTTP_GetDonation_NotFound_TC(t *testing.T) {
	_, _, ts := newHTTPStack(t)

	resp, err := http.Get(ts.URL + "/donation/not-existing-id")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "donation not found", got["error"])
}

// 3) POST /donation/:id — 405 Method Not Allowed + заголовок Allow: GET
func TestHTTP_GetDonation_MethodNotAllowed_TC(t *testing.T) {
	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	h := rest.NewHandler(noOpService{}, logg, 2*time.Second)
	r := rest.NewRouter(h, "", "")
	ts := httptest.NewServer(r)
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/donation/some-id", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	require.Equal(t, "GET", resp.Header.Get("Allow"))

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "method not allowed", got["error"])
}

// 4) GET /campaign/:id/donations — пагинация и фильтрация по campaign_id
func TestHTTP_ListDonationsByCampaign_Pagination_TC(t *testing.T) {
	ctx, repo, ts := newHTTPStack(t)

	// seed: 3 пожертвования одной кампании + 1 другой
	const camp = "camp-pagination"
	for i := 0; i < 3; i++ {
		d := testutil.MakeDonation(testutil.WithCampaign(camp))
		require.NoError(t, repo.Save(ctx, &d))
	}
	dOther := testutil.MakeDonation(testutil.WithCampaign("camp-other"))
	require.NoError(t, repo.Save(ctx, &dOther))

	// limit=2 offset=1 — ожидаем 2 пожертвования данной кампании
	resp, err := http.Get(ts.URL + fmt.Sprintf("/campaign/%s/donations?limit=2&offset=1", camp))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []domain.Donation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	require.Len(t, got, 2)
	for _, d := range got {
		require.Equal(t, camp, d.CampaignID)
	}
}

// 5) /ping, /metrics, 404 на неизвестный маршрут
func TestHTTP_Health_Metrics_And_404_TC(t *testing.T) {
	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	h := rest.NewHandler(noOpService{}, logg, 2*time.Second)
	r := rest.NewRouter(h, "", "")
	ts := httptest.NewServer(r)
	defer ts.Close()

	// /ping
	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "pong", string(readAll(t, resp.Body)))

	// /metrics
	respM, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer respM.Body.Close()
	require.Equal(t, http.StatusOK, respM.StatusCode)
	require.NotEmpty(t, readAll(t, respM.Body)) // достаточно, что не пусто

	// 404
	resp404, err := http.Get(ts.URL + "/no/such/route")
	require.NoError(t, err)
	defer resp404.Body.Close()
	require.Equal(t, http.StatusNotFound, resp404.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp404.Body).Decode(&got))
	require.Equal(t, "route not found", got["error"])
}

// 6) Таймаут запросов: Handler с коротким reqTimeout должен вернуть 500
func TestHTTP_GetDonation_Timeout_500_TC(t *testing.T) {
	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	h := rest.NewHandler(slowService{}, logg, 10*time.Millisecond)
	r := rest.NewRouter(h, "", "")
	ts := httptest.NewServer(r)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/donation/any")
	require.NoError(t, err)
	defer resp.Body.Close()

	// slowService вернёт ctx.Err() по таймауту
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "internal server error", got["error"])
}

// --- функции помощники ---

// noOpService — простая заглушка для роутера, где неважно, что вернёт бизнес-логика.
type noOpService struct{}

func (noOpService) GetDonation(context.Context, string) (*domain.Donation, error) { return nil, nil }
func (noOpService) DonationsByCampaign(context.Context, string, int, int) ([]*domain.Donation, error) {
	return nil, nil
}

// slowService — всегда ждёт ctx.Done() и возвращает ошибку контекста (для проверки таймаута 500).
type slowService struct{}

func (slowService) GetDonation(ctx context.Context, _ string) (*domain.Donation, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
func (slowService) DonationsByCampaign(ctx context.Context, _ string, _, _ int) ([]*domain.Donation, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// readAll — просто прочитать тело.
func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return b
}
