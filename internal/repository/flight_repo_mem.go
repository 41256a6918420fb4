package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Domenick1991/airseating/internal/domain"
)

var (
	ErrFlightNotFound = errors.New("flight not found")
	ErrFlightExists   = errors.New("flight already exists")
)

type FlightRepository interface {
	List(ctx context.Context) ([]*domain.Flight, error)
	GetByNumber(ctx context.Context, number string) (*domain.Flight, error)
	Add(ctx context.Context, flight *domain.Flight) error
}

// MemFlightRepository keeps flights for the lifetime of the process.
type MemFlightRepository struct {
	mu      sync.RWMutex
	flights map[string]*domain.Flight
}

func NewFlightRepository() FlightRepository {
	return &MemFlightRepository{flights: make(map[string]*domain.Flight)}
}

func (r *MemFlightRepository) List(ctx context.Context) ([]*domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	flights := make([]*domain.Flight, 0, len(r.flights))
	for _, f := range r.flights {
		flights = append(flights, f)
	}
	sort.Slice(flights, func(i, j int) bool {
		return flights[i].Number() < flights[j].Number()
	})
	return flights, nil
}

func (r *MemFlightRepository) GetByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.flights[number]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFlightNotFound, number)
	}
	return f, nil
}

func (r *MemFlightRepository) Add(ctx context.Context, flight *domain.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.flights[flight.Number()]; ok {
		return fmt.Errorf("%w: %s", ErrFlightExists, flight.Number())
	}
	r.flights[flight.Number()] = flight
	return nil
}

var _ FlightRepository = (*MemFlightRepository)(nil)
