package domain

import (
	"slices"
	"sort"
	"strings"
)

type Route struct {
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
}

func NewRoute(dept, dest string) Route {
	return Route{Departure: NormalizeAirportCode(dept), Destination: NormalizeAirportCode(dest)}
}

func (r Route) String() string {
	return r.Departure + "-" + r.Destination
}

// NormalizeAirportCode trims and upper-cases an IATA code.
func NormalizeAirportCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// RouteTable is a read-only departure -> destinations lookup.
type RouteTable struct {
	routes map[string][]string
}

func newRouteTable(routes map[string][]string) RouteTable {
	m := make(map[string][]string, len(routes))
	for dept, dests := range routes {
		sorted := slices.Clone(dests)
		sort.Strings(sorted)
		m[dept] = sorted
	}
	return RouteTable{routes: m}
}

// Destinations returns the sorted destinations reachable from dept.
func (t RouteTable) Destinations(dept string) []string {
	return slices.Clone(t.routes[NormalizeAirportCode(dept)])
}

func (t RouteTable) Departures() []string {
	depts := make([]string, 0, len(t.routes))
	for dept := range t.routes {
		depts = append(depts, dept)
	}
	sort.Strings(depts)
	return depts
}

func (t RouteTable) Has(dept, dest string) bool {
	_, found := slices.BinarySearch(t.routes[NormalizeAirportCode(dept)], NormalizeAirportCode(dest))
	return found
}

// Lookup returns the route and true when dest is reachable from dept.
func (t RouteTable) Lookup(dept, dest string) (Route, bool) {
	if !t.Has(dept, dest) {
		return Route{}, false
	}
	return NewRoute(dept, dest), true
}

// Map returns a copy of the table.
func (t RouteTable) Map() map[string][]string {
	m := make(map[string][]string, len(t.routes))
	for dept, dests := range t.routes {
		m[dept] = slices.Clone(dests)
	}
	return m
}
