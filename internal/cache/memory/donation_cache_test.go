package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Gunvolt24/donations/internal/domain"
)

func newDonation(id string) *domain.Donation {
	return &domain.Donation{
		ID:       id,
		Amount:   25,
		Interval: domain.IntervalOnetime,
		ChargeID: "ch_" + id,
	}
}

func TestSetGet_HitMiss(t *testing.T) {
	c := NewLRUCacheTTL(2, 5*time.Minute)
	ctx := context.Background()

	// miss
	if _, ok := c.Get(ctx, "id-1"); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit после Set
	_ = c.Set(ctx, newDonation("id-1"))
	got, ok := c.Get(ctx, "id-1")
	if !ok || got.ID != "id-1" {
		t.Fatalf("expected hit for id-1")
	}
}

func TestTTL_Expiry(t *testing.T) {
	c := NewLRUCacheTTL(2, 100*time.Millisecond)
	ctx := context.Background()

	_ = c.Set(ctx, newDonation("ttl"))
	if _, ok := c.Get(ctx, "ttl"); !ok {
		t.Fatalf("expected hit right after Set")
	}
	time.Sleep(150 * time.Millisecond)
	if _, ok := c.Get(ctx, "ttl"); ok {
		t.Fatalf("expected miss after TTL expires")
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewLRUCacheTTL(2, 0) // 0 = без TTL
	ctx := context.Background()

	_ = c.Set(ctx, newDonation("A"))
	_ = c.Set(ctx, newDonation("B"))
	// A сделать «свежим»
	if _, ok := c.Get(ctx, "A"); !ok {
		t.Fatalf("expected hit for A")
	}
	// Добавляем C — вытеснит B (самый старый)
	_ = c.Set(ctx, newDonation("C"))

	if _, ok := c.Get(ctx, "B"); ok {
		t.Fatalf("expected B to be evicted")
	}
	if _, ok := c.Get(ctx, "A"); !ok || c.ll.Len() != 2 {
		t.Fatalf("expected A & C to stay in cache")
	}
}

func TestCloneImmutability(t *testing.T) {
	c := NewLRUCacheTTL(1, 0)
	ctx := context.Background()
	_ = c.Set(ctx, newDonation("Z"))

	// меняем то, что вернул Get — не должно влиять на кэш
	d1, _ := c.Get(ctx, "Z")
	d1.ChargeID = "changed"

	d2, _ := c.Get(ctx, "Z")
	if d2.ChargeID == "changed" {
		t.Fatalf("cache should return clones, not pointers to internal value")
	}
}

func TestSet_NilAndEmptyIgnored(t *testing.T) {
	c := NewLRUCacheTTL(2, 0)
	ctx := context.Background()

	if err := c.Set(ctx, nil); err != nil {
		t.Fatalf("nil donation must be a no-op, got %v", err)
	}
	if err := c.Set(ctx, &domain.Donation{}); err != nil {
		t.Fatalf("empty id must be a no-op, got %v", err)
	}
	if c.ll.Len() != 0 {
		t.Fatalf("cache must stay empty")
	}
}
