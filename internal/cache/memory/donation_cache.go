package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/donations/internal/domain"
	"github.com/Gunvolt24/donations/internal/ports"
	"github.com/Gunvolt24/donations/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет интерфейсу DonationCache.
var _ ports.DonationCache = (*LRUCacheTTL)(nil)

type entry struct {
	id        string
	donation  *domain.Donation
	expiresAt time.Time
}

// LRUCacheTTL — кэш пожертвований: LRU-вытеснение по ёмкости + TTL на запись.
// ttl <= 0 отключает истечение.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *LRUCacheTTL) Get(_ context.Context, id string) (*domain.Donation, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[id]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	// sliding TTL: чтение продлевает жизнь записи
	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneDonation(ent.donation), true
}

func (c *LRUCacheTTL) Set(_ context.Context, donation *domain.Donation) error {
	if donation == nil || donation.ID == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[donation.ID]; ok {
		ent := elem.Value.(*entry)
		ent.donation = cloneDonation(donation)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		id:        donation.ID,
		donation:  cloneDonation(donation),
		expiresAt: c.expiryFrom(now),
	})
	c.index[donation.ID] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

func (c *LRUCacheTTL) WarmUp(ctx context.Context, donations []*domain.Donation) error {
	for _, donation := range donations {
		if err := c.Set(ctx, donation); err != nil {
			return err
		}
	}
	return nil
}
