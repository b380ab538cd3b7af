package queryresponse

import (
	"encoding/json"
	"testing"

	"bikeshare/config"
	"bikeshare/dataset"
	"bikeshare/domain/entities/filter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryResponse(t *testing.T, spec filter.Spec) *QueryResponse {
	t.Helper()
	cfg := config.Default()
	cfg.Dataset.DataDir = "../../../datasets"
	cfg.Dataset.TestMode = true

	ds, err := dataset.NewLoader(cfg.Dataset).Load(spec)
	require.NoError(t, err)

	qr, err := NewQueryResponse(spec, ds)
	require.NoError(t, err)
	return qr
}

func TestNewQueryResponse(t *testing.T) {
	spec := filter.Spec{City: "Chicago", Month: filter.All, Day: filter.All}
	qr := newQueryResponse(t, spec)

	assert.NotEmpty(t, qr.GetQueryID())
	assert.True(t, qr.HasData())
	assert.Equal(t, spec, qr.Filter)
	assert.Equal(t, 12, qr.Trips)
	assert.Equal(t, "Chicago", qr.Metadata.City)
	assert.Equal(t, reportType, qr.Metadata.Type)

	assert.Equal(t, 6, qr.Time.PopularMonth)
	assert.Equal(t, "Monday", qr.Time.PopularDay)
	assert.Equal(t, 8, qr.Time.PopularHour)
	assert.Equal(t, "Canal St & Madison St", qr.Stations.PopularStartStation)
	assert.Equal(t, 9780.0, qr.Duration.TotalDuration)

	average, ok := qr.Duration.GetAverageDuration()
	assert.True(t, ok)
	assert.Equal(t, 815.0, average)
	assert.True(t, qr.Users.HasGender)
}

func TestNewQueryResponseWithoutTrips(t *testing.T) {
	qr := newQueryResponse(t, filter.Spec{City: "Chicago", Month: "February", Day: "Sunday"})

	assert.False(t, qr.HasData())
	assert.False(t, qr.Time.HasData())
	assert.False(t, qr.Stations.HasData())
	assert.False(t, qr.Duration.HasData())
	assert.Empty(t, qr.Users.UserTypes)
}

func TestQueryResponseIDsAreUnique(t *testing.T) {
	spec := filter.Spec{City: "Washington", Month: filter.All, Day: filter.All}
	assert.NotEqual(t, newQueryResponse(t, spec).QueryID, newQueryResponse(t, spec).QueryID)
}

func TestQueryResponseJSON(t *testing.T) {
	qr := newQueryResponse(t, filter.Spec{City: "Washington", Month: filter.All, Day: filter.All})

	payload, err := json.Marshal(qr)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, qr.QueryID, decoded["query_id"])
	assert.Equal(t, "Washington", decoded["filter"].(map[string]any)["city"])

	users := decoded["users"].(map[string]any)
	assert.Equal(t, false, users["has_gender"])
	assert.NotContains(t, users, "genders")
}
