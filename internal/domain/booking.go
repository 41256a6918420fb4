package domain

// BookingRecord is one parsed line of a booking file.
type BookingRecord struct {
	Passenger    string `csv:"name" json:"name"`
	Departure    string `csv:"departure" json:"departure"`
	Destination  string `csv:"destination" json:"destination"`
	FlightNumber string `csv:"flight_number" json:"flight_number"`
	AircraftType string `csv:"aircraft_type" json:"aircraft_type"`
	Registration string `csv:"registration" json:"registration"`
}

func (b BookingRecord) Route() Route {
	return NewRoute(b.Departure, b.Destination)
}

type BoardingCard struct {
	Passenger     string `json:"passenger"`
	Seat          string `json:"seat"`
	Departure     string `json:"departure"`
	Destination   string `json:"destination"`
	FlightNumber  string `json:"flight_number"`
	AircraftModel string `json:"aircraft_model"`
}

// CardRenderer is called once per occupied seat.
type CardRenderer func(card BoardingCard)

type Allocation struct {
	Seat      Seat
	Passenger string
}
