package stationstats

import (
	"fmt"

	"bikeshare/domain/business/frequency"
)

// StationPair a trip route: the station in which the trip begins and the one in which it ends
type StationPair struct {
	StartStation string `json:"start_station"`
	EndStation   string `json:"end_station"`
}

func (sp StationPair) GetKey() string {
	return fmt.Sprintf("%s-%s", sp.StartStation, sp.EndStation)
}

// StationPairCounter counts the amount of trips of each (start station, end station) pair
type StationPairCounter struct {
	counter *frequency.Counter[StationPair]
}

func NewStationPairCounter() *StationPairCounter {
	return &StationPairCounter{
		counter: frequency.NewCounter[StationPair](),
	}
}

func (spc *StationPairCounter) UpdateCounter(startStation string, endStation string) {
	spc.counter.Add(StationPair{StartStation: startStation, EndStation: endStation})
}

func (spc *StationPairCounter) GetCounter(startStation string, endStation string) int {
	return spc.counter.Get(StationPair{StartStation: startStation, EndStation: endStation})
}

// Distinct returns the amount of different routes
func (spc *StationPairCounter) Distinct() int {
	return spc.counter.Distinct()
}

// Counts returns every route with its amount of trips, most used first
func (spc *StationPairCounter) Counts() []frequency.Count[StationPair] {
	return spc.counter.MostCommon()
}
