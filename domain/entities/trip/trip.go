package trip

import (
	"fmt"
	"time"
)

// TripData struct that contains one bike rental
// + StartTime: date and time in which the trip begins
// + EndTime: date and time in which the trip ends
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds
// + UserType: Subscriber, Customer, ...
// + Gender: empty if the city does not record it
// + BirthYear: zero if the city does not record it
type TripData struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	Duration     float64   `json:"duration"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    int       `json:"birth_year,omitempty"`
}

func (td TripData) String() string {
	line := fmt.Sprintf("%s | %s -> %s | %.0fs | %s",
		td.StartTime.Format("2006-01-02 15:04:05"), td.StartStation, td.EndStation, td.Duration, td.UserType)
	if td.Gender != "" {
		line += " | " + td.Gender
	}
	if td.BirthYear != 0 {
		line += fmt.Sprintf(" | %d", td.BirthYear)
	}
	return line
}
