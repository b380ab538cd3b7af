package timestats

import (
	"strings"
	"testing"

	"bikeshare/dataset"
	"bikeshare/domain/entities/filter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n"

func readTrips(t *testing.T, rows ...string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Read("Washington", strings.NewReader(header+strings.Join(rows, "\n")+"\n"))
	require.NoError(t, err)
	return ds
}

func TestCompute(t *testing.T) {
	ds := readTrips(t,
		"2017-06-05 08:10:00,2017-06-05 08:15:00,300,A,B,Subscriber",
		"2017-06-06 17:10:00,2017-06-06 17:15:00,300,A,B,Subscriber",
		"2017-03-06 08:10:00,2017-03-06 08:15:00,300,A,B,Subscriber",
		"2017-06-12 09:10:00,2017-06-12 09:15:00,300,A,B,Subscriber",
	)

	stats, err := Compute(ds)
	require.NoError(t, err)

	assert.True(t, stats.HasData())
	assert.Equal(t, 4, stats.Trips)
	assert.Equal(t, 6, stats.PopularMonth)
	assert.Equal(t, 3, stats.PopularMonthHits)
	assert.Equal(t, "June", stats.PopularMonthName())
	assert.Equal(t, "Monday", stats.PopularDay)
	assert.Equal(t, 3, stats.PopularDayHits)
	assert.Equal(t, 8, stats.PopularHour)
	assert.Equal(t, 2, stats.PopularHourHits)
}

func TestComputeTieKeepsFirstSeen(t *testing.T) {
	ds := readTrips(t,
		"2017-02-14 18:20:00,2017-02-14 18:32:00,720,A,B,Subscriber",
		"2017-01-02 09:00:00,2017-01-02 09:07:30,450,A,B,Subscriber",
		"2017-01-09 09:00:00,2017-01-09 09:07:30,450,A,B,Subscriber",
		"2017-02-21 18:20:00,2017-02-21 18:32:00,720,A,B,Subscriber",
	)

	stats, err := Compute(ds)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.PopularMonth)
	assert.Equal(t, "Tuesday", stats.PopularDay)
	assert.Equal(t, 18, stats.PopularHour)
}

func TestComputeWithoutTrips(t *testing.T) {
	ds := readTrips(t, "2017-02-14 18:20:00,2017-02-14 18:32:00,720,A,B,Subscriber")
	empty, err := ds.Filter(filter.Spec{City: "Washington", Month: "June", Day: filter.All})
	require.NoError(t, err)

	stats, err := Compute(empty)
	require.NoError(t, err)
	assert.False(t, stats.HasData())
	assert.Empty(t, stats.PopularMonthName())
}
