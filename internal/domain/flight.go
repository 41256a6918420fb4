package domain

import (
	"fmt"
	"iter"
	"sort"
	"strconv"
	"sync"
)

const flightNumberField = "flight number"

// Flight is one scheduled flight and the occupancy of its seats.
type Flight struct {
	number   string
	aircraft *Aircraft
	route    Route

	mu      sync.Mutex
	seating map[Seat]string
}

// NewFlight validates the flight number and starts with every seat free.
func NewFlight(number string, aircraft *Aircraft, route Route) (*Flight, error) {
	if err := ValidateFlightNumber(number); err != nil {
		return nil, err
	}

	plan := aircraft.SeatingPlan()
	seating := make(map[Seat]string, plan.NumSeats())
	for _, seat := range plan.Seats() {
		seating[seat] = ""
	}

	return &Flight{
		number:   number,
		aircraft: aircraft,
		route:    route,
		seating:  seating,
	}, nil
}

// ValidateFlightNumber accepts two uppercase letters followed by 1-4 digits.
func ValidateFlightNumber(number string) error {
	if len(number) < 2 || !isLetter(number[0]) || !isLetter(number[1]) {
		return &FormatError{Field: flightNumberField, Value: number, Reason: "no airline code"}
	}
	if !isUpper(number[0]) || !isUpper(number[1]) {
		return &FormatError{Field: flightNumberField, Value: number, Reason: "invalid airline code"}
	}

	digits := number[2:]
	if len(digits) < 1 || len(digits) > 4 {
		return &FormatError{Field: flightNumberField, Value: number, Reason: "invalid route number"}
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return &FormatError{Field: flightNumberField, Value: number, Reason: "invalid route number"}
		}
	}
	return nil
}

func isLetter(c byte) bool { return isUpper(c) || (c >= 'a' && c <= 'z') }
func isUpper(c byte) bool  { return c >= 'A' && c <= 'Z' }

func (f *Flight) Number() string      { return f.number }
func (f *Flight) Airline() string     { return f.number[:2] }
func (f *Flight) Aircraft() *Aircraft { return f.aircraft }
func (f *Flight) Route() Route        { return f.route }

func (f *Flight) AircraftModel() string {
	return f.aircraft.Model()
}

func (f *Flight) AvailableRoutes() RouteTable {
	return f.aircraft.AvailableRoutes()
}

// FlightRoute looks up the flight's own route on its aircraft.
func (f *Flight) FlightRoute() (Route, bool) {
	return f.aircraft.FlightRoute(f.route.Departure, f.route.Destination)
}

// AllocateSeat puts passenger in the seat named by designator, e.g. "12A".
func (f *Flight) AllocateSeat(designator, passenger string) error {
	if passenger == "" {
		return ErrEmptyPassenger
	}

	seat, err := f.aircraft.SeatingPlan().ParseSeat(designator)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seating[seat] != "" {
		return fmt.Errorf("seat %s: %w", seat, ErrSeatOccupied)
	}
	f.seating[seat] = passenger
	return nil
}

// Occupant returns the passenger in the seat, or "" when it is free.
func (f *Flight) Occupant(designator string) (string, error) {
	seat, err := f.aircraft.SeatingPlan().ParseSeat(designator)
	if err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seating[seat], nil
}

func (f *Flight) NumAvailableSeats() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	free := 0
	for _, passenger := range f.seating {
		if passenger == "" {
			free++
		}
	}
	return free
}

// FreeSeats yields free seat designators in row then column order. Each step
// reads the current occupancy, so seats taken during iteration are skipped.
func (f *Flight) FreeSeats() iter.Seq[string] {
	plan := f.aircraft.SeatingPlan()
	return func(yield func(string) bool) {
		for row := plan.FirstRow; row <= plan.LastRow; row++ {
			for i := 0; i < len(plan.Letters); i++ {
				seat := Seat{Row: row, Letter: plan.Letters[i]}
				if !f.isFree(seat) {
					continue
				}
				if !yield(seat.String()) {
					return
				}
			}
		}
	}
}

func (f *Flight) isFree(seat Seat) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seating[seat] == ""
}

// NextFreeSeat returns the first free seat designator.
func (f *Flight) NextFreeSeat() (string, error) {
	for seat := range f.FreeSeats() {
		return seat, nil
	}
	return "", fmt.Errorf("flight %s: %w", f.number, ErrSeatCapacityExhausted)
}

// Allocations lists occupied seats in seat order.
func (f *Flight) Allocations() []Allocation {
	plan := f.aircraft.SeatingPlan()

	f.mu.Lock()
	allocations := make([]Allocation, 0, len(f.seating))
	for seat, passenger := range f.seating {
		if passenger != "" {
			allocations = append(allocations, Allocation{Seat: seat, Passenger: passenger})
		}
	}
	f.mu.Unlock()

	sort.Slice(allocations, func(i, j int) bool {
		return plan.before(allocations[i].Seat, allocations[j].Seat)
	})
	return allocations
}

// BoardingCards returns a card per occupied seat ordered by passenger name.
func (f *Flight) BoardingCards() []BoardingCard {
	plan := f.aircraft.SeatingPlan()
	allocations := f.Allocations()

	sort.SliceStable(allocations, func(i, j int) bool {
		if allocations[i].Passenger != allocations[j].Passenger {
			return allocations[i].Passenger < allocations[j].Passenger
		}
		return plan.before(allocations[i].Seat, allocations[j].Seat)
	})

	cards := make([]BoardingCard, 0, len(allocations))
	for _, a := range allocations {
		cards = append(cards, BoardingCard{
			Passenger:     a.Passenger,
			Seat:          a.Seat.String(),
			Departure:     f.route.Departure,
			Destination:   f.route.Destination,
			FlightNumber:  f.number,
			AircraftModel: f.aircraft.Model(),
		})
	}
	return cards
}

func (f *Flight) MakeBoardingCards(render CardRenderer) {
	for _, card := range f.BoardingCards() {
		render(card)
	}
}

func (f *Flight) String() string {
	return f.number + " " + f.route.String() + " " + f.aircraft.Model() + " (" + f.aircraft.Registration() + ") " +
		strconv.Itoa(f.NumAvailableSeats()) + "/" + strconv.Itoa(f.aircraft.NumSeats()) + " free"
}
