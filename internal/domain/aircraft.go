package domain

import (
	"fmt"
	"sort"
	"strings"
)

// AircraftType is the capability set every aircraft model provides.
type AircraftType interface {
	Model() string
	SeatingPlan() SeatingPlan
	AvailableRoutes() RouteTable
}

// TODO take these routes from a route API once one is available.
var (
	airbusA319Routes = newRouteTable(map[string][]string{
		"EDB": {"LCY", "LGW", "LHR"},
		"LCY": {"ABZ", "GLA", "EDB"},
		"LGW": {"ABZ", "EDB", "GLA"},
		"LHR": {"ABZ", "EDB", "GLA"},
	})
	boeing777Routes = newRouteTable(map[string][]string{
		"EDB": {"LHR"},
		"LGW": {"BFS", "EDB", "GLA"},
		"LHR": {"BFS", "EDB", "GLA"},
	})
)

type AirbusA319 struct{}

func (AirbusA319) Model() string { return "Airbus A319" }

func (AirbusA319) SeatingPlan() SeatingPlan {
	return SeatingPlan{FirstRow: 1, LastRow: 22, Letters: "ABCDEF"}
}

func (AirbusA319) AvailableRoutes() RouteTable { return airbusA319Routes }

type Boeing777 struct{}

func (Boeing777) Model() string { return "Boeing 777" }

func (Boeing777) SeatingPlan() SeatingPlan {
	return SeatingPlan{FirstRow: 1, LastRow: 55, Letters: "ABCDEFGHJK"}
}

func (Boeing777) AvailableRoutes() RouteTable { return boeing777Routes }

// Aircraft is a registered airframe of a given type.
type Aircraft struct {
	registration string
	kind         AircraftType
}

func NewAircraft(registration string, kind AircraftType) *Aircraft {
	return &Aircraft{registration: strings.TrimSpace(registration), kind: kind}
}

func (a *Aircraft) Registration() string        { return a.registration }
func (a *Aircraft) Type() AircraftType          { return a.kind }
func (a *Aircraft) Model() string               { return a.kind.Model() }
func (a *Aircraft) SeatingPlan() SeatingPlan    { return a.kind.SeatingPlan() }
func (a *Aircraft) AvailableRoutes() RouteTable { return a.kind.AvailableRoutes() }

func (a *Aircraft) NumSeats() int {
	return a.kind.SeatingPlan().NumSeats()
}

// FlightRoute reports whether dest is reachable from dept on this aircraft type.
func (a *Aircraft) FlightRoute(dept, dest string) (Route, bool) {
	return a.kind.AvailableRoutes().Lookup(dept, dest)
}

// Registry maps booking-file type names to aircraft types.
type Registry struct {
	types map[string]AircraftType
}

func NewRegistry() *Registry {
	return &Registry{types: make(map[string]AircraftType)}
}

// DefaultRegistry knows the models the fleet flies today.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("AirbusA319", AirbusA319{})
	r.Register("Boeing777", Boeing777{})
	return r
}

func (r *Registry) Register(name string, kind AircraftType) {
	r.types[strings.TrimSpace(name)] = kind
}

func (r *Registry) Lookup(name string) (AircraftType, error) {
	kind, ok := r.types[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnrecognizedAircraftType, name)
	}
	return kind, nil
}

// NewAircraft builds an airframe of the named type.
func (r *Registry) NewAircraft(typeName, registration string) (*Aircraft, error) {
	kind, err := r.Lookup(typeName)
	if err != nil {
		return nil, err
	}
	return NewAircraft(registration, kind), nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
