package stationstats

import (
	"testing"

	"bikeshare/config"
	"bikeshare/dataset"
	"bikeshare/domain/business/frequency"
	"bikeshare/domain/entities/filter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadChicago(t *testing.T, month string, day string) *dataset.Dataset {
	t.Helper()
	cfg := config.Default()
	cfg.Dataset.DataDir = "../../../datasets"
	cfg.Dataset.TestMode = true

	ds, err := dataset.NewLoader(cfg.Dataset).Load(filter.Spec{City: "Chicago", Month: month, Day: day})
	require.NoError(t, err)
	return ds
}

func TestCompute(t *testing.T) {
	stats, err := Compute(loadChicago(t, filter.All, filter.All))
	require.NoError(t, err)

	assert.True(t, stats.HasData())
	assert.Equal(t, 12, stats.Trips)
	assert.Equal(t, "Canal St & Madison St", stats.PopularStartStation)
	assert.Equal(t, 5, stats.PopularStartStationHits)
	assert.Equal(t, "Clark St & Elm St", stats.PopularEndStation)
	assert.Equal(t, 5, stats.PopularEndStationHits)
	assert.Equal(t, 7, stats.DistinctRoutes)
}

func TestComputeGroupsRoutes(t *testing.T) {
	stats, err := Compute(loadChicago(t, filter.All, filter.All))
	require.NoError(t, err)

	routes := stats.Routes()
	assert.Equal(t, 4, routes.GetCounter("Canal St & Madison St", "Clark St & Elm St"))
	assert.Equal(t, 3, routes.GetCounter("Clark St & Elm St", "Canal St & Madison St"))
	assert.Equal(t, 0, routes.GetCounter("Clark St & Elm St", "Clark St & Elm St"))

	counts := routes.Counts()
	require.Len(t, counts, 7)
	assert.Equal(t, frequency.Count[StationPair]{
		Value: StationPair{StartStation: "Canal St & Madison St", EndStation: "Clark St & Elm St"},
		Count: 4,
	}, counts[0])
	assert.Equal(t, "Canal St & Madison St-Clark St & Elm St", counts[0].Value.GetKey())
}

func TestComputeFiltered(t *testing.T) {
	stats, err := Compute(loadChicago(t, "June", "Monday"))
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Trips)
	assert.Equal(t, "Canal St & Madison St", stats.PopularStartStation)
	assert.Equal(t, 3, stats.PopularStartStationHits)
	// Clark St & Elm St and Lake Shore Dr & Monroe St tie with 2 trips, Clark St is seen first
	assert.Equal(t, "Clark St & Elm St", stats.PopularEndStation)
}

func TestComputeWithoutTrips(t *testing.T) {
	stats, err := Compute(loadChicago(t, "February", "Sunday"))
	require.NoError(t, err)

	assert.False(t, stats.HasData())
	assert.Empty(t, stats.PopularStartStation)
	assert.Zero(t, stats.DistinctRoutes)
}
