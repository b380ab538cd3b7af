package frequency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeFirstSeenWinsOnTie(t *testing.T) {
	counter := CountValues([]string{"b", "a", "a", "b", "c"})

	mode, count, ok := counter.Mode()
	assert.True(t, ok)
	assert.Equal(t, "b", mode)
	assert.Equal(t, 2, count)
}

func TestModesReturnsAllTies(t *testing.T) {
	counter := CountValues([]int{1989, 1990, 1990, 1989, 1975})
	assert.Equal(t, []int{1989, 1990}, counter.Modes())
}

func TestMostCommon(t *testing.T) {
	counter := CountValues([]string{"Customer", "Subscriber", "Subscriber", "Dependent", "Subscriber", "Customer"})

	expected := []Count[string]{
		{Value: "Subscriber", Count: 3},
		{Value: "Customer", Count: 2},
		{Value: "Dependent", Count: 1},
	}
	assert.Equal(t, expected, counter.MostCommon())
	assert.Equal(t, 6, counter.Total())
	assert.Equal(t, 3, counter.Distinct())
	assert.Equal(t, 2, counter.Get("Customer"))
}

func TestEmptyCounter(t *testing.T) {
	counter := NewCounter[string]()

	_, _, ok := counter.Mode()
	assert.False(t, ok)
	assert.Nil(t, counter.Modes())
	assert.Empty(t, counter.MostCommon())
}
