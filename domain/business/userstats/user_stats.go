package userstats

import (
	"math"
	"sort"

	"bikeshare/domain/business/frequency"
	"bikeshare/domain/entities/trip"
)

// UserStats demographics of the riders. Counts are sorted by descending frequency and
// missing cells are not counted.
// + HasGender / HasBirthYear: false when the city extract does not have the column, or
// when the column has no values for the selected trips
// + CommonBirthYears: every birth year tied for the highest count, ascending
type UserStats struct {
	Trips               int                       `json:"trips"`
	UserTypes           []frequency.Count[string] `json:"user_types"`
	HasGender           bool                      `json:"has_gender"`
	Genders             []frequency.Count[string] `json:"genders,omitempty"`
	HasBirthYear        bool                      `json:"has_birth_year"`
	EarliestBirthYear   int                       `json:"earliest_birth_year,omitempty"`
	MostRecentBirthYear int                       `json:"most_recent_birth_year,omitempty"`
	CommonBirthYears    []int                     `json:"common_birth_years,omitempty"`
}

// Compute counts user types and, if the columns exist, genders and birth years
func Compute(table trip.Table) (*UserStats, error) {
	userTypes, err := table.Strings(trip.UserTypeColumn)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{
		Trips:     table.Len(),
		UserTypes: countPresent(userTypes).MostCommon(),
	}

	if table.HasColumn(trip.GenderColumn) {
		genders, err := table.Strings(trip.GenderColumn)
		if err != nil {
			return nil, err
		}
		stats.Genders = countPresent(genders).MostCommon()
		stats.HasGender = len(stats.Genders) > 0
	}

	if table.HasColumn(trip.BirthYearColumn) {
		birthYears, err := table.Floats(trip.BirthYearColumn)
		if err != nil {
			return nil, err
		}
		stats.setBirthYears(birthYears)
	}

	return stats, nil
}

func (us *UserStats) setBirthYears(rawBirthYears []float64) {
	birthYears := frequency.NewCounter[int]()
	for _, rawBirthYear := range rawBirthYears {
		if math.IsNaN(rawBirthYear) {
			continue
		}

		birthYear := int(rawBirthYear)
		if birthYears.Total() == 0 || birthYear < us.EarliestBirthYear {
			us.EarliestBirthYear = birthYear
		}
		if birthYears.Total() == 0 || birthYear > us.MostRecentBirthYear {
			us.MostRecentBirthYear = birthYear
		}
		birthYears.Add(birthYear)
	}

	if birthYears.Total() == 0 {
		return
	}

	us.HasBirthYear = true
	us.CommonBirthYears = birthYears.Modes()
	sort.Ints(us.CommonBirthYears)
}

func countPresent(values []string) *frequency.Counter[string] {
	counter := frequency.NewCounter[string]()
	for _, value := range values {
		if trip.IsMissing(value) {
			continue
		}
		counter.Add(value)
	}
	return counter
}
