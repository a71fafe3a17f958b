package store

import (
	"sync"
	"time"

	"fleetforge-server/models"
)

// CartStore keeps every session's cart in memory. Carts are created
// lazily on first mutation, hold at most one line item per product id,
// and are discarded when the session goes idle past the TTL. There is no
// persistence; a restart empties every cart.
// Safe for concurrent use via internal RWMutex.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]*cartEntry
	ttl   time.Duration
}

type cartEntry struct {
	items   []models.CartItem
	touched time.Time
}

// NewCartStore creates an empty cart store whose carts expire after the
// given idle TTL.
func NewCartStore(ttl time.Duration) *CartStore {
	return &CartStore{
		carts: make(map[string]*cartEntry),
		ttl:   ttl,
	}
}

// Get returns a snapshot of the session's cart with derived totals
// available through the returned value. A session without a cart gets an
// empty cart; Get never creates one.
func (s *CartStore) Get(sessionID string) models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart := models.Cart{SessionID: sessionID, Items: []models.CartItem{}}
	entry, exists := s.carts[sessionID]
	if !exists {
		return cart
	}

	cart.Items = make([]models.CartItem, len(entry.items))
	copy(cart.Items, entry.items)
	return cart
}

// AddItem puts one unit of the product into the session's cart. If the
// product is already a line item its quantity is incremented, otherwise
// a new line item with quantity 1 is appended. AddItem never fails.
func (s *CartStore) AddItem(sessionID string, product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entry(sessionID)
	for i, item := range entry.items {
		if item.ID == product.ID {
			entry.items[i].Quantity++
			return
		}
	}

	entry.items = append(entry.items, models.CartItem{Product: product, Quantity: 1})
}

// RemoveItem deletes the line item with the given product id. Removing
// an absent product is a no-op, not an error.
func (s *CartStore) RemoveItem(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.carts[sessionID]
	if !exists {
		return
	}
	entry.touched = time.Now()

	for i, item := range entry.items {
		if item.ID == productID {
			entry.items = append(entry.items[:i], entry.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line item's quantity to an absolute value. A
// quantity below 1 removes the line item entirely. Unknown product ids
// are a no-op.
func (s *CartStore) UpdateQuantity(sessionID, productID string, quantity int) {
	if quantity < 1 {
		s.RemoveItem(sessionID, productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.carts[sessionID]
	if !exists {
		return
	}
	entry.touched = time.Now()

	for i, item := range entry.items {
		if item.ID == productID {
			entry.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the session's cart unconditionally.
func (s *CartStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
}

// Prune drops carts idle longer than the TTL and reports how many were
// removed. Called periodically from a background janitor.
func (s *CartStore) Prune(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for sessionID, entry := range s.carts {
		if now.Sub(entry.touched) > s.ttl {
			delete(s.carts, sessionID)
			pruned++
		}
	}
	return pruned
}

// entry returns the session's cart entry, creating it when missing.
// Callers must hold the write lock.
func (s *CartStore) entry(sessionID string) *cartEntry {
	entry, exists := s.carts[sessionID]
	if !exists {
		entry = &cartEntry{items: []models.CartItem{}}
		s.carts[sessionID] = entry
	}
	entry.touched = time.Now()
	return entry
}
