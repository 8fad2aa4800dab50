// Package memstore holds the process-local hotel registry. All state lives
// in memory and is lost on exit; the registry mutex supplies the per-hotel
// serialization the lock-free domain aggregate expects from its host.
package memstore

import (
	"strings"
	"sync"

	"hotel-reservation-core/internal/domain/hotel"
	"hotel-reservation-core/internal/pkg/errs"
)

var (
	ErrHotelAlreadyExists   = errs.New("a hotel with this name already exists")
	ErrHotelNotFound        = errs.New("hotel not found")
	ErrHotelHasReservations = errs.New("hotel has existing reservations")
)

type Registry struct {
	mu     sync.RWMutex
	hotels map[string]*hotel.Hotel
	order  []string
}

func NewRegistry() *Registry {
	return &Registry{
		hotels: make(map[string]*hotel.Hotel),
	}
}

// Insert atomically checks name uniqueness and registers the hotel.
func (r *Registry) Insert(h *hotel.Hotel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.hotels[h.Name()]; exists {
		return ErrHotelAlreadyExists
	}
	r.hotels[h.Name()] = h
	r.order = append(r.order, h.Name())
	return nil
}

// Remove deletes a hotel; only legal while its reservation ledger is empty.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, exists := r.hotels[name]
	if !exists {
		return ErrHotelNotFound
	}
	if h.HasReservations() {
		return ErrHotelHasReservations
	}
	delete(r.hotels, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Rename re-checks uniqueness and rekeys the hotel under its new name.
func (r *Registry) Rename(oldName, newName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, exists := r.hotels[oldName]
	if !exists {
		return ErrHotelNotFound
	}
	if oldName == newName {
		return nil
	}
	if _, taken := r.hotels[newName]; taken {
		return ErrHotelAlreadyExists
	}
	if err := h.Rename(newName); err != nil {
		return err
	}
	delete(r.hotels, oldName)
	r.hotels[h.Name()] = h
	for i, n := range r.order {
		if n == oldName {
			r.order[i] = h.Name()
			break
		}
	}
	return nil
}

// Update runs fn against the named hotel under the write lock, serializing
// all mutation of one hotel.
func (r *Registry) Update(name string, fn func(*hotel.Hotel) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, exists := r.hotels[name]
	if !exists {
		return ErrHotelNotFound
	}
	return fn(h)
}

// View runs fn against the named hotel under the read lock.
func (r *Registry) View(name string, fn func(*hotel.Hotel) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, exists := r.hotels[name]
	if !exists {
		return ErrHotelNotFound
	}
	return fn(h)
}

// Reconfigure applies a rename and a base-price change as one edit. Both
// halves are validated before either mutates, so a failing half never leaves
// the other committed.
func (r *Registry) Reconfigure(name string, newName *string, basePrice *float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, exists := r.hotels[name]
	if !exists {
		return ErrHotelNotFound
	}

	target := name
	if newName != nil {
		target = strings.TrimSpace(*newName)
		if target == "" {
			return hotel.ErrEmptyHotelName
		}
		if target != name {
			if _, taken := r.hotels[target]; taken {
				return ErrHotelAlreadyExists
			}
		}
	}

	if basePrice != nil {
		if err := h.SetBasePrice(*basePrice); err != nil {
			return err
		}
	}

	if target != name {
		if err := h.Rename(target); err != nil {
			return err
		}
		delete(r.hotels, name)
		r.hotels[h.Name()] = h
		for i, n := range r.order {
			if n == name {
				r.order[i] = h.Name()
				break
			}
		}
	}
	return nil
}

// ViewAll runs fn against every hotel, in registration order, under the read
// lock. Aggregate pointers must not be retained past fn's return.
func (r *Registry) ViewAll(fn func([]*hotel.Hotel) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hotels := make([]*hotel.Hotel, 0, len(r.order))
	for _, name := range r.order {
		hotels = append(hotels, r.hotels[name])
	}
	return fn(hotels)
}
