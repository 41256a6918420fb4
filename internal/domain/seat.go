package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type Seat struct {
	Row    int
	Letter byte
}

func (s Seat) String() string {
	return strconv.Itoa(s.Row) + string(s.Letter)
}

// SeatingPlan is a contiguous 1-based row range and the ordered column letters.
type SeatingPlan struct {
	FirstRow int
	LastRow  int
	Letters  string
}

func (p SeatingPlan) NumRows() int {
	if p.LastRow < p.FirstRow {
		return 0
	}
	return p.LastRow - p.FirstRow + 1
}

func (p SeatingPlan) NumSeats() int {
	return p.NumRows() * len(p.Letters)
}

func (p SeatingPlan) HasRow(row int) bool {
	return row >= p.FirstRow && row <= p.LastRow
}

func (p SeatingPlan) Column(letter byte) int {
	return strings.IndexByte(p.Letters, letter)
}

// Seats lists every seat in row-major order.
func (p SeatingPlan) Seats() []Seat {
	seats := make([]Seat, 0, p.NumSeats())
	for row := p.FirstRow; row <= p.LastRow; row++ {
		for i := 0; i < len(p.Letters); i++ {
			seats = append(seats, Seat{Row: row, Letter: p.Letters[i]})
		}
	}
	return seats
}

// ParseSeat checks a designator such as "12A" against the plan.
func (p SeatingPlan) ParseSeat(designator string) (Seat, error) {
	if designator == "" {
		return Seat{}, fmt.Errorf("%w: empty designator", ErrInvalidSeatLetter)
	}

	letter := designator[len(designator)-1]
	if p.Column(letter) < 0 {
		return Seat{}, fmt.Errorf("%w %q", ErrInvalidSeatLetter, string(letter))
	}

	rowText := designator[:len(designator)-1]
	row, err := strconv.Atoi(rowText)
	if err != nil {
		return Seat{}, fmt.Errorf("%w %q", ErrInvalidSeatRow, rowText)
	}

	if !p.HasRow(row) {
		return Seat{}, fmt.Errorf("%w: %d not in %d-%d", ErrRowOutOfRange, row, p.FirstRow, p.LastRow)
	}

	return Seat{Row: row, Letter: letter}, nil
}

// before orders seats row-major using the plan's column order.
func (p SeatingPlan) before(a, b Seat) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return p.Column(a.Letter) < p.Column(b.Letter)
}
