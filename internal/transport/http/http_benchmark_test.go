//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/donations/internal/domain"
)

func benchDonation(id string) *domain.Donation {
	return &domain.Donation{
		ID:           id,
		Amount:       25,
		Interval:     domain.IntervalOnetime,
		ReceiptEmail: "donor@example.com",
		CampaignID:   "bench-camp",
		CustomerID:   "cus_bench",
		ChargeID:     "ch_bench",
		CreatedAt:    time.Now().UTC(),
	}
}

// --- Бенчмарки ---

// Базовый бенч: GetDonation — сравниваем LEAN vs FULL пайплайн
func BenchmarkHTTP_GetDonation(b *testing.B) {
	log := nopLogger{}
	d := benchDonation("don-bench")
	h := NewHandler(svcOne{d: d}, log, 2*time.Second)

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServeGET(b, lean, "/donation/"+d.ID)
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServeGET(b, full, "/donation/"+d.ID)
	})
}

// Потолок без маршалинга: та же запись, но заранее закодированный JSON.
// Показывает, сколько «ест» encoding/json в хендлере.
func BenchmarkHTTP_GetDonation_PreMarshaledBytes(b *testing.B) {
	d := benchDonation("don-raw")
	raw, _ := json.Marshal(d)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	// отдельный эндпоинт, который просто отдаёт готовый []byte
	r.GET("/donation/:id", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", raw)
	})

	benchServeGET(b, r, "/donation/"+d.ID)
}

// Пагинация: 10/50/100 — измеряем рост аллокаций и времени
func BenchmarkHTTP_ListByCampaign(b *testing.B) {
	log := nopLogger{}

	for _, n := range []int{10, 50, 100} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			list := make([]*domain.Donation, 0, n)
			for i := 0; i < n; i++ {
				list = append(list, benchDonation("don-"+strconv.Itoa(i)))
			}
			h := NewHandler(svcList{list: list}, log, 2*time.Second)

			lean := makeLeanRouter(h)
			benchServeGET(b, lean, "/campaign/bench-camp/donations?limit="+strconv.Itoa(n))
		})
	}
}

// Ошибочный путь (404): "цена" роутера и 404-хендлера
func BenchmarkHTTP_404(b *testing.B) {
	log := nopLogger{}
	h := NewHandler(svcOne{d: benchDonation("don-404")}, log, 2*time.Second)
	r := makeLeanRouter(h)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/nope", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusNotFound {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- Стабы ---

type svcOne struct{ d *domain.Donation }

func (s svcOne) GetDonation(context.Context, string) (*domain.Donation, error) { return s.d, nil }
func (s svcOne) DonationsByCampaign(context.Context, string, int, int) ([]*domain.Donation, error) {
	return []*domain.Donation{s.d}, nil
}

type svcList struct{ list []*domain.Donation }

func (s svcList) GetDonation(context.Context, string) (*domain.Donation, error) {
	return s.list[0], nil
}
func (s svcList) DonationsByCampaign(context.Context, string, int, int) ([]*domain.Donation, error) {
	return s.list, nil
}

// --- функции-помощники ---

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — получаем меньшую аллокацию
	r.GET("/donation/:id", h.getDonationByID)
	r.GET("/campaign/:id/donations", h.listDonationsByCampaign)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	// prod пайплайн из NewRouter
	return NewRouter(h, "", "")
}

func benchServeGET(b *testing.B, r *gin.Engine, path string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	// Параллельный режим ближе к реальности без TCP
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			// вычитываем тело
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
