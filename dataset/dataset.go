package dataset

import (
	"fmt"
	"io"
	"math"
	"time"

	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// The extracts may contain fractional seconds, time.Parse accepts them with the first layout
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
}

// Numeric columns. Every other column is kept as a string
var columnTypes = map[string]series.Type{
	trip.DurationColumn:  series.Float,
	trip.BirthYearColumn: series.Float,
}

// Dataset trips of one city, with the month, day and hour columns derived from the start time
type Dataset struct {
	City string
	df   dataframe.DataFrame
}

// Read parses a city extract. The start time of every row must be valid.
func Read(city string, reader io.Reader) (*Dataset, error) {
	df := dataframe.ReadCSV(reader,
		dataframe.DetectTypes(false),
		dataframe.WithTypes(columnTypes),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("[city: %s] error reading trips: %w", city, df.Err)
	}

	ds := &Dataset{City: city, df: df}
	for _, column := range trip.RequiredColumns {
		if !ds.HasColumn(column) {
			return nil, fmt.Errorf("[city: %s] %w: %s", city, ErrMissingColumn, column)
		}
	}

	if err := ds.deriveTimeColumns(); err != nil {
		return nil, err
	}

	return ds, nil
}

func (ds *Dataset) deriveTimeColumns() error {
	startTimes := ds.df.Col(trip.StartTimeColumn).Records()
	months := make([]int, len(startTimes))
	days := make([]string, len(startTimes))
	hours := make([]int, len(startTimes))

	for idx, rawStartTime := range startTimes {
		startTime, err := parseTime(rawStartTime)
		if err != nil {
			return fmt.Errorf("[city: %s] %w: row %d: %q", ds.City, ErrInvalidDate, idx, rawStartTime)
		}
		months[idx] = int(startTime.Month())
		days[idx] = startTime.Weekday().String()
		hours[idx] = startTime.Hour()
	}

	df := ds.df.
		Mutate(series.New(months, series.Int, trip.MonthColumn)).
		Mutate(series.New(days, series.String, trip.DayColumn)).
		Mutate(series.New(hours, series.Int, trip.HourColumn))
	if df.Err != nil {
		return fmt.Errorf("[city: %s] error deriving time columns: %w", ds.City, df.Err)
	}

	ds.df = df
	return nil
}

// Filter returns the trips that match the month and the day of the spec. The receiver is not modified
// and the row order is kept.
func (ds *Dataset) Filter(spec filter.Spec) (*Dataset, error) {
	df := ds.df

	if month, ok := spec.MonthNumber(); ok {
		df = df.Filter(dataframe.F{Colname: trip.MonthColumn, Comparator: series.Eq, Comparando: month})
	}

	if spec.FiltersDay() {
		df = df.Filter(dataframe.F{Colname: trip.DayColumn, Comparator: series.Eq, Comparando: spec.Day})
	}

	if df.Err != nil {
		return nil, fmt.Errorf("[city: %s] error filtering trips by %s: %w", ds.City, spec, df.Err)
	}

	return &Dataset{City: ds.City, df: df}, nil
}

func (ds *Dataset) Len() int {
	return ds.df.Nrow()
}

func (ds *Dataset) Columns() []string {
	return ds.df.Names()
}

func (ds *Dataset) HasColumn(name string) bool {
	for _, column := range ds.df.Names() {
		if column == name {
			return true
		}
	}
	return false
}

func (ds *Dataset) Strings(column string) ([]string, error) {
	if !ds.HasColumn(column) {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, column)
	}
	return ds.df.Col(column).Records(), nil
}

func (ds *Dataset) Ints(column string) ([]int, error) {
	if !ds.HasColumn(column) {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, column)
	}

	values, err := ds.df.Col(column).Int()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidColumn, column, err.Error())
	}
	return values, nil
}

// Floats returns the column as float64. Missing values are NaN
func (ds *Dataset) Floats(column string) ([]float64, error) {
	if !ds.HasColumn(column) {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, column)
	}
	return ds.df.Col(column).Float(), nil
}

// Rows returns the trips in [start, end) converted to TripData. Out of range bounds are clipped.
func (ds *Dataset) Rows(start int, end int) ([]trip.TripData, error) {
	if start < 0 {
		start = 0
	}
	if end > ds.Len() {
		end = ds.Len()
	}
	if start >= end {
		return nil, nil
	}

	indexes := make([]int, 0, end-start)
	for idx := start; idx < end; idx++ {
		indexes = append(indexes, idx)
	}

	page := ds.df.Subset(indexes)
	if page.Err != nil {
		return nil, fmt.Errorf("[city: %s] error selecting rows %d to %d: %w", ds.City, start, end, page.Err)
	}

	return (&Dataset{City: ds.City, df: page}).toTrips()
}

func (ds *Dataset) toTrips() ([]trip.TripData, error) {
	startTimes, _ := ds.Strings(trip.StartTimeColumn)
	startStations, _ := ds.Strings(trip.StartStationColumn)
	endStations, _ := ds.Strings(trip.EndStationColumn)
	userTypes, _ := ds.Strings(trip.UserTypeColumn)
	durations, _ := ds.Floats(trip.DurationColumn)

	// optional columns, nil slices if the city does not have them
	endTimes, _ := ds.Strings(trip.EndTimeColumn)
	genders, _ := ds.Strings(trip.GenderColumn)
	birthYears, _ := ds.Floats(trip.BirthYearColumn)

	trips := make([]trip.TripData, 0, ds.Len())
	for idx := 0; idx < ds.Len(); idx++ {
		startTime, err := parseTime(startTimes[idx])
		if err != nil {
			return nil, fmt.Errorf("[city: %s] %w: %q", ds.City, ErrInvalidDate, startTimes[idx])
		}

		tripData := trip.TripData{
			StartTime:    startTime,
			StartStation: startStations[idx],
			EndStation:   endStations[idx],
			Duration:     durations[idx],
			UserType:     userTypes[idx],
		}

		if endTimes != nil {
			// an invalid end time is not fatal, it is never used by the statistics
			tripData.EndTime, _ = parseTime(endTimes[idx])
		}
		if genders != nil && !trip.IsMissing(genders[idx]) {
			tripData.Gender = genders[idx]
		}
		if birthYears != nil && !math.IsNaN(birthYears[idx]) {
			tripData.BirthYear = int(birthYears[idx])
		}

		trips = append(trips, tripData)
	}

	return trips, nil
}

func parseTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
