package durationaccumulator

import (
	"strings"
	"testing"

	"bikeshare/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	csv := "Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n" +
		"2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,A,B,Subscriber\n" +
		"2017-03-11 10:40:00,2017-03-11 10:46:42,402.549,A,B,Subscriber\n" +
		"2017-05-30 01:02:59,2017-05-30 01:13:36,,A,B,Customer\n" +
		"2017-01-27 17:13:00,2017-01-27 17:29:45,1005.0,A,B,Customer\n"
	ds, err := dataset.Read("Washington", strings.NewReader(csv))
	require.NoError(t, err)

	accumulator, err := Compute(ds)
	require.NoError(t, err)

	assert.True(t, accumulator.HasData())
	assert.Equal(t, 3, accumulator.Counter)
	assert.InDelta(t, 1896.615, accumulator.TotalDuration, 1e-9)

	average, ok := accumulator.GetAverageDuration()
	assert.True(t, ok)
	assert.InDelta(t, accumulator.TotalDuration/3, average, 1e-9)
}

func TestAverageWithoutData(t *testing.T) {
	accumulator := NewDurationAccumulator()

	average, ok := accumulator.GetAverageDuration()
	assert.False(t, ok)
	assert.Zero(t, average)
	assert.False(t, accumulator.HasData())
}
