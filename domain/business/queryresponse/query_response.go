package queryresponse

import (
	"fmt"
	"time"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/stationstats"
	"bikeshare/domain/business/timestats"
	"bikeshare/domain/business/userstats"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	reportType  = "report"
	reportStage = "explorer"
)

// QueryResponse contains the statistics of one query cycle
// + Metadata: metadata added to the structure when it leaves the explorer
// + QueryID: unique ID of the query
// + Filter: filters used to select the trips
// + Trips: amount of trips that match the filters
type QueryResponse struct {
	Metadata  entities.Metadata                        `json:"metadata"`
	QueryID   string                                   `json:"query_id"`
	Filter    filter.Spec                              `json:"filter"`
	Trips     int                                      `json:"trips"`
	CreatedAt time.Time                                `json:"created_at"`
	Time      *timestats.TimeStats                     `json:"time"`
	Stations  *stationstats.StationStats               `json:"stations"`
	Duration  *durationaccumulator.DurationAccumulator `json:"duration"`
	Users     *userstats.UserStats                     `json:"users"`
}

// NewQueryResponse runs every aggregator over the trips
func NewQueryResponse(spec filter.Spec, table trip.Table) (*QueryResponse, error) {
	qr := &QueryResponse{
		QueryID:   uuid.NewString(),
		Filter:    spec,
		Trips:     table.Len(),
		CreatedAt: time.Now().UTC(),
	}
	qr.Metadata = entities.NewMetadata(spec.City, reportType, reportStage,
		fmt.Sprintf("%v trips for %s", qr.Trips, spec))

	var err error
	if qr.Time, err = timed(qr.QueryID, "time stats", func() (*timestats.TimeStats, error) {
		return timestats.Compute(table)
	}); err != nil {
		return nil, err
	}

	if qr.Stations, err = timed(qr.QueryID, "station stats", func() (*stationstats.StationStats, error) {
		return stationstats.Compute(table)
	}); err != nil {
		return nil, err
	}

	if qr.Duration, err = timed(qr.QueryID, "trip duration stats", func() (*durationaccumulator.DurationAccumulator, error) {
		return durationaccumulator.Compute(table)
	}); err != nil {
		return nil, err
	}

	if qr.Users, err = timed(qr.QueryID, "user stats", func() (*userstats.UserStats, error) {
		return userstats.Compute(table)
	}); err != nil {
		return nil, err
	}

	return qr, nil
}

func (qr *QueryResponse) GetQueryID() string {
	return qr.QueryID
}

func (qr *QueryResponse) HasData() bool {
	return qr.Trips > 0
}

func timed[T any](queryID string, name string, compute func() (T, error)) (T, error) {
	startTime := time.Now()
	result, err := compute()
	if err != nil {
		log.Errorf("[query: %s][method: NewQueryResponse][status: ERROR] error computing %s: %s", queryID, name, err.Error())
		return result, fmt.Errorf("error computing %s: %w", name, err)
	}

	log.Debugf("[query: %s][method: NewQueryResponse][status: OK] %s took %s", queryID, name, time.Since(startTime))
	return result, nil
}
