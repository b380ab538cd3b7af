package stationstats

import (
	"fmt"

	"bikeshare/domain/business/frequency"
	"bikeshare/domain/entities/trip"
)

// StationStats most used stations. On ties the station seen first wins.
// + PopularStartStation: station in which most trips begin
// + PopularEndStation: station in which most trips end
// + DistinctRoutes: amount of different (start, end) pairs
//
// The routes are grouped but the most popular route is not reported as such: the popular
// start and end stations are reported separately and they are not necessarily a route.
type StationStats struct {
	Trips                   int    `json:"trips"`
	PopularStartStation     string `json:"popular_start_station"`
	PopularStartStationHits int    `json:"popular_start_station_hits"`
	PopularEndStation       string `json:"popular_end_station"`
	PopularEndStationHits   int    `json:"popular_end_station_hits"`
	DistinctRoutes          int    `json:"distinct_routes"`

	routes *StationPairCounter
}

// Compute calculates the most common start and end stations and groups the trips by route
func Compute(table trip.Table) (*StationStats, error) {
	startStations, err := table.Strings(trip.StartStationColumn)
	if err != nil {
		return nil, err
	}

	endStations, err := table.Strings(trip.EndStationColumn)
	if err != nil {
		return nil, err
	}

	if len(startStations) != len(endStations) {
		return nil, fmt.Errorf("station columns length mismatch: %v start stations, %v end stations", len(startStations), len(endStations))
	}

	routes := NewStationPairCounter()
	for idx := range startStations {
		routes.UpdateCounter(startStations[idx], endStations[idx])
	}

	stats := &StationStats{
		Trips:          len(startStations),
		DistinctRoutes: routes.Distinct(),
		routes:         routes,
	}
	stats.PopularStartStation, stats.PopularStartStationHits, _ = frequency.CountValues(startStations).Mode()
	stats.PopularEndStation, stats.PopularEndStationHits, _ = frequency.CountValues(endStations).Mode()

	return stats, nil
}

func (ss *StationStats) HasData() bool {
	return ss.Trips > 0
}

// Routes returns the trips grouped by (start station, end station)
func (ss *StationStats) Routes() *StationPairCounter {
	return ss.routes
}
