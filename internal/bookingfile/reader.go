// Package bookingfile reads comma separated booking files.
package bookingfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/airseating/internal/domain"
	"github.com/jszwec/csvutil"
)

// Booking files carry no header line; columns are always in this order.
var header = []string{"name", "departure", "destination", "flight_number", "aircraft_type", "registration"}

func ReadFile(path string) ([]domain.BookingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open booking file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses one booking per line.
func Decode(r io.Reader) ([]domain.BookingRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	dec, err := csvutil.NewDecoder(cr, header...)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create booking decoder: %w", err)
	}

	var records []domain.BookingRecord
	for {
		var record domain.BookingRecord
		if err := dec.Decode(&record); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Encode writes records back in booking file format.
func Encode(w io.Writer, records []domain.BookingRecord) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	enc.AutoHeader = false

	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("failed to encode booking: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write bookings: %w", err)
	}
	return nil
}
