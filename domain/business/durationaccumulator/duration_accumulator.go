package durationaccumulator

import (
	"math"

	"bikeshare/domain/entities/trip"
)

// DurationAccumulator struct that collects the duration of the trips, in seconds.
// + Counter: counts the amount of durations collected
// + TotalDuration: sum of the durations
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

// Compute accumulates the Trip Duration column. Missing durations are skipped.
func Compute(table trip.Table) (*DurationAccumulator, error) {
	durations, err := table.Floats(trip.DurationColumn)
	if err != nil {
		return nil, err
	}

	accumulator := NewDurationAccumulator()
	for _, duration := range durations {
		if math.IsNaN(duration) {
			continue
		}
		accumulator.UpdateAccumulator(duration)
	}
	return accumulator, nil
}

func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	da.Counter += 1
	da.TotalDuration += duration
}

func (da *DurationAccumulator) HasData() bool {
	return da.Counter > 0
}

// GetAverageDuration returns TotalDuration / Counter. The boolean is false if nothing was accumulated
func (da *DurationAccumulator) GetAverageDuration() (float64, bool) {
	if da.Counter == 0 {
		return 0, false
	}
	return da.TotalDuration / float64(da.Counter), true
}
