package trip

// Column names of the city extracts
const (
	StartTimeColumn    = "Start Time"
	EndTimeColumn      = "End Time"
	DurationColumn     = "Trip Duration"
	StartStationColumn = "Start Station"
	EndStationColumn   = "End Station"
	UserTypeColumn     = "User Type"
	GenderColumn       = "Gender"
	BirthYearColumn    = "Birth Year"
)

// Columns derived from StartTimeColumn when a city is loaded
const (
	MonthColumn = "month"
	DayColumn   = "day"
	HourColumn  = "hour"
)

// RequiredColumns must be present in every city extract
var RequiredColumns = []string{
	StartTimeColumn,
	StartStationColumn,
	EndStationColumn,
	DurationColumn,
	UserTypeColumn,
}

// Table is a read-only, column oriented view over trip records
type Table interface {
	Len() int
	HasColumn(name string) bool
	Strings(column string) ([]string, error)
	Ints(column string) ([]int, error)
	Floats(column string) ([]float64, error)
}

// IsMissing returns true for empty cells and the markers used for missing values
func IsMissing(value string) bool {
	return value == "" || value == "NaN" || value == "NA"
}
