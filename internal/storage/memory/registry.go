// Package memory holds the in-process customer registry. Customers are
// keyed by name, created lazily on first interaction and live only for the
// duration of the process.
package memory

import (
	"sync"

	"github.com/Biggeorgian/hotel-project/internal/hotel"
	"github.com/Biggeorgian/hotel-project/internal/logger"
)

type Config struct {
	L *logger.Logger
}

type Registry struct {
	mu        sync.Mutex
	l         *logger.Logger
	customers map[string]*hotel.Customer
}

func New(conf Config) *Registry {
	return &Registry{
		l:         conf.L,
		customers: make(map[string]*hotel.Customer),
	}
}

// Customer looks up a customer by name.
func (r *Registry) Customer(name string) (*hotel.Customer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer, ok := r.customers[name]

	return customer, ok
}

// GetOrCreate returns the customer with the given name, creating one with
// the provided starting budget when the name is unknown. The second return
// reports whether a new account was created.
func (r *Registry) GetOrCreate(name string, budget float64) (*hotel.Customer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if customer, ok := r.customers[name]; ok {
		return customer, false
	}

	customer := hotel.NewCustomer(name, budget)
	r.customers[name] = customer

	r.l.LogInfo("Created account for customer %q", name)

	return customer, true
}

// Len returns the number of registered customers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.customers)
}
