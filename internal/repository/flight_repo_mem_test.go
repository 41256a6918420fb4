package repository

import (
	"context"
	"testing"

	"github.com/Domenick1991/airseating/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlight(t *testing.T, number string) *domain.Flight {
	t.Helper()
	f, err := domain.NewFlight(number, domain.NewAircraft("G-EUPT", domain.AirbusA319{}), domain.NewRoute("EDB", "LHR"))
	require.NoError(t, err)
	return f
}

func TestNewFlightRepository(t *testing.T) {
	repo := NewFlightRepository()
	assert.NotNil(t, repo)

	flights, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestMemFlightRepository_AddAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewFlightRepository()

	f := newFlight(t, "BA100")
	require.NoError(t, repo.Add(ctx, f))

	got, err := repo.GetByNumber(ctx, "BA100")
	require.NoError(t, err)
	assert.Same(t, f, got)

	_, err = repo.GetByNumber(ctx, "BA101")
	assert.ErrorIs(t, err, ErrFlightNotFound)

	err = repo.Add(ctx, newFlight(t, "BA100"))
	assert.ErrorIs(t, err, ErrFlightExists)
}

func TestMemFlightRepository_ListSorted(t *testing.T) {
	ctx := context.Background()
	repo := NewFlightRepository()

	for _, number := range []string{"LH9", "AF72", "BA758"} {
		require.NoError(t, repo.Add(ctx, newFlight(t, number)))
	}

	flights, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, flights, 3)
	assert.Equal(t, "AF72", flights[0].Number())
	assert.Equal(t, "BA758", flights[1].Number())
	assert.Equal(t, "LH9", flights[2].Number())
}
