package timestats

import (
	"time"

	"bikeshare/domain/business/frequency"
	"bikeshare/domain/entities/trip"
)

// TimeStats most frequent times of travel. On ties the value seen first in the trips wins.
// + Trips: amount of trips analyzed. If zero, no popular value is set
// + PopularMonth: month number, January = 1
// + PopularDay: weekday name
// + PopularHour: start hour, 0 to 23
type TimeStats struct {
	Trips            int    `json:"trips"`
	PopularMonth     int    `json:"popular_month"`
	PopularMonthHits int    `json:"popular_month_hits"`
	PopularDay       string `json:"popular_day"`
	PopularDayHits   int    `json:"popular_day_hits"`
	PopularHour      int    `json:"popular_hour"`
	PopularHourHits  int    `json:"popular_hour_hits"`
}

// Compute calculates the most common month, day and start hour of the trips
func Compute(table trip.Table) (*TimeStats, error) {
	months, err := table.Ints(trip.MonthColumn)
	if err != nil {
		return nil, err
	}

	days, err := table.Strings(trip.DayColumn)
	if err != nil {
		return nil, err
	}

	hours, err := table.Ints(trip.HourColumn)
	if err != nil {
		return nil, err
	}

	stats := &TimeStats{Trips: len(months)}
	stats.PopularMonth, stats.PopularMonthHits, _ = frequency.CountValues(months).Mode()
	stats.PopularDay, stats.PopularDayHits, _ = frequency.CountValues(days).Mode()
	stats.PopularHour, stats.PopularHourHits, _ = frequency.CountValues(hours).Mode()

	return stats, nil
}

func (ts *TimeStats) HasData() bool {
	return ts.Trips > 0
}

// PopularMonthName returns the name of PopularMonth, e.g. June
func (ts *TimeStats) PopularMonthName() string {
	if !ts.HasData() {
		return ""
	}
	return time.Month(ts.PopularMonth).String()
}
