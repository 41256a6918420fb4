package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlight(t *testing.T, kind AircraftType) *Flight {
	t.Helper()
	f, err := NewFlight("BA758", NewAircraft("G-EUPT", kind), NewRoute("EDB", "LHR"))
	require.NoError(t, err)
	return f
}

func TestNewFlight_ValidNumbers(t *testing.T) {
	for _, number := range []string{"BA1", "BA12", "BA758", "AF9999", "ZZ0000", "EZ0042"} {
		t.Run(number, func(t *testing.T) {
			f, err := NewFlight(number, NewAircraft("G-EUPT", AirbusA319{}), NewRoute("EDB", "LHR"))
			require.NoError(t, err)
			assert.Equal(t, number, f.Number())
			assert.Equal(t, number[:2], f.Airline())
		})
	}
}

func TestNewFlight_InvalidNumbers(t *testing.T) {
	testCases := []struct {
		number string
		reason string
	}{
		{"", "no airline code"},
		{"B", "no airline code"},
		{"1A100", "no airline code"},
		{"B4100", "no airline code"},
		{"ba100", "invalid airline code"},
		{"Ba100", "invalid airline code"},
		{"BA", "invalid route number"},
		{"BA10000", "invalid route number"},
		{"BA12X", "invalid route number"},
		{"BA-12", "invalid route number"},
		{"BA 12", "invalid route number"},
		{"BAA12", "invalid route number"},
	}

	for _, tc := range testCases {
		t.Run(tc.number, func(t *testing.T) {
			f, err := NewFlight(tc.number, NewAircraft("G-EUPT", AirbusA319{}), NewRoute("EDB", "LHR"))
			assert.Nil(t, f)

			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, "flight number", formatErr.Field)
			assert.Equal(t, tc.number, formatErr.Value)
			assert.Equal(t, tc.reason, formatErr.Reason)
		})
	}
}

func TestNewFlight_AllSeatsFree(t *testing.T) {
	a319 := newTestFlight(t, AirbusA319{})
	assert.Equal(t, 22*6, a319.NumAvailableSeats())

	b777 := newTestFlight(t, Boeing777{})
	assert.Equal(t, 55*10, b777.NumAvailableSeats())
	assert.Len(t, b777.seating, 550)
}

func TestFlight_AllocateSeat(t *testing.T) {
	f := newTestFlight(t, AirbusA319{})

	require.NoError(t, f.AllocateSeat("12A", "Guido van Rossum"))
	require.NoError(t, f.AllocateSeat("1F", "Richard Hickey"))

	occupant, err := f.Occupant("12A")
	require.NoError(t, err)
	assert.Equal(t, "Guido van Rossum", occupant)

	occupant, err = f.Occupant("12B")
	require.NoError(t, err)
	assert.Empty(t, occupant)

	assert.Equal(t, 132-2, f.NumAvailableSeats())
}

func TestFlight_AllocateSeat_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		seat      string
		passenger string
		err       error
	}{
		{name: "unknown letter", seat: "12G", passenger: "Ann", err: ErrInvalidSeatLetter},
		{name: "lowercase letter", seat: "12a", passenger: "Ann", err: ErrInvalidSeatLetter},
		{name: "empty designator", seat: "", passenger: "Ann", err: ErrInvalidSeatLetter},
		{name: "non numeric row", seat: "XA", passenger: "Ann", err: ErrInvalidSeatRow},
		{name: "missing row", seat: "A", passenger: "Ann", err: ErrInvalidSeatRow},
		{name: "row zero", seat: "0A", passenger: "Ann", err: ErrRowOutOfRange},
		{name: "row after last", seat: "23A", passenger: "Ann", err: ErrRowOutOfRange},
		{name: "negative row", seat: "-1A", passenger: "Ann", err: ErrRowOutOfRange},
		{name: "empty passenger", seat: "1A", passenger: "", err: ErrEmptyPassenger},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestFlight(t, AirbusA319{})
			err := f.AllocateSeat(tc.seat, tc.passenger)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, 132, f.NumAvailableSeats())
		})
	}
}

func TestFlight_AllocateSeat_Occupied(t *testing.T) {
	f := newTestFlight(t, Boeing777{})

	require.NoError(t, f.AllocateSeat("55K", "Guido van Rossum"))
	err := f.AllocateSeat("55K", "John Smith")
	assert.ErrorIs(t, err, ErrSeatOccupied)

	occupant, err := f.Occupant("55K")
	require.NoError(t, err)
	assert.Equal(t, "Guido van Rossum", occupant)
}

func TestFlight_NumAvailableSeats(t *testing.T) {
	f := newTestFlight(t, AirbusA319{})
	total := f.Aircraft().NumSeats()

	seats := []string{"1A", "1B", "2C", "10F", "22A"}
	for i, seat := range seats {
		require.NoError(t, f.AllocateSeat(seat, "Passenger"))
		assert.Equal(t, total-(i+1), f.NumAvailableSeats())
	}
}

func TestFlight_FreeSeats_Order(t *testing.T) {
	f := newTestFlight(t, Boeing777{})
	require.NoError(t, f.AllocateSeat("1A", "Ann"))
	require.NoError(t, f.AllocateSeat("1C", "Bob"))
	require.NoError(t, f.AllocateSeat("2H", "Cid"))

	plan := f.Aircraft().SeatingPlan()
	var got []string
	var prev Seat
	for designator := range f.FreeSeats() {
		seat, err := plan.ParseSeat(designator)
		require.NoError(t, err)
		if len(got) > 0 {
			assert.True(t, plan.before(prev, seat), "%s after %s", seat, prev)
		}
		occupant, err := f.Occupant(designator)
		require.NoError(t, err)
		assert.Empty(t, occupant)

		got = append(got, designator)
		prev = seat
	}

	assert.Len(t, got, 550-3)
	assert.Equal(t, []string{"1B", "1D", "1E", "1F", "1G", "1H", "1J", "1K", "2A"}, got[:9])
	assert.NotContains(t, got, "2H")
	assert.Equal(t, "55K", got[len(got)-1])
}

func TestFlight_FreeSeats_Restartable(t *testing.T) {
	f := newTestFlight(t, AirbusA319{})

	first, err := f.NextFreeSeat()
	require.NoError(t, err)
	assert.Equal(t, "1A", first)

	again, err := f.NextFreeSeat()
	require.NoError(t, err)
	assert.Equal(t, "1A", again)
	assert.Equal(t, 132, f.NumAvailableSeats())

	require.NoError(t, f.AllocateSeat(first, "Alice"))
	next, err := f.NextFreeSeat()
	require.NoError(t, err)
	assert.Equal(t, "1B", next)
}

func TestFlight_FreeSeats_AllocateWhileIterating(t *testing.T) {
	f := newTestFlight(t, AirbusA319{})

	count := 0
	for seat := range f.FreeSeats() {
		require.NoError(t, f.AllocateSeat(seat, "Passenger"))
		count++
	}
	assert.Equal(t, 132, count)
	assert.Zero(t, f.NumAvailableSeats())

	_, err := f.NextFreeSeat()
	assert.ErrorIs(t, err, ErrSeatCapacityExhausted)
}

func TestFlight_FlightRoute(t *testing.T) {
	f := newTestFlight(t, AirbusA319{})

	route, ok := f.FlightRoute()
	assert.True(t, ok)
	assert.Equal(t, Route{Departure: "EDB", Destination: "LHR"}, route)

	bad, err := NewFlight("BA1", NewAircraft("G-EUPT", AirbusA319{}), NewRoute("EDB", "BFS"))
	require.NoError(t, err)
	_, ok = bad.FlightRoute()
	assert.False(t, ok)

	assert.Equal(t, []string{"LCY", "LGW", "LHR"}, f.AvailableRoutes().Destinations("EDB"))
}

func TestFlight_MakeBoardingCards_SortedByPassenger(t *testing.T) {
	f := newTestFlight(t, AirbusA319{})
	require.NoError(t, f.AllocateSeat("3A", "Zed"))
	require.NoError(t, f.AllocateSeat("2B", "Ann"))

	var cards []BoardingCard
	f.MakeBoardingCards(func(card BoardingCard) {
		cards = append(cards, card)
	})

	require.Len(t, cards, 2)
	assert.Equal(t, BoardingCard{
		Passenger:     "Ann",
		Seat:          "2B",
		Departure:     "EDB",
		Destination:   "LHR",
		FlightNumber:  "BA758",
		AircraftModel: "Airbus A319",
	}, cards[0])
	assert.Equal(t, "Zed", cards[1].Passenger)
	assert.Equal(t, "3A", cards[1].Seat)
	assert.Equal(t, 130, f.NumAvailableSeats())
}

func TestFlight_BoardingCards_SamePassengerBySeat(t *testing.T) {
	f := newTestFlight(t, AirbusA319{})
	require.NoError(t, f.AllocateSeat("12A", "Ann"))
	require.NoError(t, f.AllocateSeat("2F", "Ann"))
	require.NoError(t, f.AllocateSeat("2A", "Ann"))

	cards := f.BoardingCards()
	require.Len(t, cards, 3)
	assert.Equal(t, "2A", cards[0].Seat)
	assert.Equal(t, "2F", cards[1].Seat)
	assert.Equal(t, "12A", cards[2].Seat)
}

func TestFlight_Allocations(t *testing.T) {
	f := newTestFlight(t, Boeing777{})
	require.NoError(t, f.AllocateSeat("4B", "Anders Hejlsberg"))
	require.NoError(t, f.AllocateSeat("4A", "Paul McCarthy"))
	require.NoError(t, f.AllocateSeat("33G", "John Smith"))

	assert.Equal(t, []Allocation{
		{Seat: Seat{Row: 4, Letter: 'A'}, Passenger: "Paul McCarthy"},
		{Seat: Seat{Row: 4, Letter: 'B'}, Passenger: "Anders Hejlsberg"},
		{Seat: Seat{Row: 33, Letter: 'G'}, Passenger: "John Smith"},
	}, f.Allocations())
}
