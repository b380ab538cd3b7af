package filter

import (
	"errors"
	"fmt"

	"bikeshare/utils"
)

// All is the value that disables a month or day filter
const All = "All"

var (
	ErrInvalidCity  = errors.New("invalid city")
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidDay   = errors.New("invalid day")
)

var (
	// Cities supported by the explorer
	Cities = []string{"Chicago", "New York City", "Washington"}
	// Months offered by the explorer. The extracts only cover January through June.
	Months = []string{"January", "February", "March", "April", "May", "June"}
	// Days of the week, title-cased as derived from the trip start time
	Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
)

// Spec contains the filters chosen for one query cycle
// + City: one of Cities
// + Month: one of Months or All
// + Day: one of Days or All
type Spec struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

// NewSpec validates and normalizes raw user input into a Spec
func NewSpec(city string, month string, day string) (Spec, error) {
	parsedCity, err := ParseCity(city)
	if err != nil {
		return Spec{}, err
	}

	parsedMonth, err := ParseMonth(month)
	if err != nil {
		return Spec{}, err
	}

	parsedDay, err := ParseDay(day)
	if err != nil {
		return Spec{}, err
	}

	return Spec{City: parsedCity, Month: parsedMonth, Day: parsedDay}, nil
}

// ParseCity returns the title-cased city name if it is a supported city
func ParseCity(input string) (string, error) {
	city := utils.TitleCase(input)
	if !utils.ContainsString(city, Cities) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCity, input)
	}
	return city, nil
}

// ParseMonth returns the title-cased month name, or All
func ParseMonth(input string) (string, error) {
	month := utils.TitleCase(input)
	if month != All && !utils.ContainsString(month, Months) {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonth, input)
	}
	return month, nil
}

// ParseDay returns the title-cased weekday name, or All
func ParseDay(input string) (string, error) {
	day := utils.TitleCase(input)
	if day != All && !utils.ContainsString(day, Days) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDay, input)
	}
	return day, nil
}

// MonthNumber returns the 1-indexed month number (January=1) and false if the month filter is All
func (s Spec) MonthNumber() (int, bool) {
	idx := utils.IndexOfString(s.Month, Months)
	if idx < 0 {
		return 0, false
	}
	return idx + 1, true
}

// FiltersDay returns true when a weekday filter must be applied
func (s Spec) FiltersDay() bool {
	return s.Day != All && s.Day != ""
}

func (s Spec) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", s.City, s.Month, s.Day)
}
