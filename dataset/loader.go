package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bikeshare/config"
	"bikeshare/domain/entities/filter"

	log "github.com/sirupsen/logrus"
)

// Loader reads the city extracts from the data directory
type Loader struct {
	config config.DatasetConfig
}

func NewLoader(datasetConfig config.DatasetConfig) *Loader {
	return &Loader{
		config: datasetConfig,
	}
}

// Load reads the extract of spec.City and keeps the trips that match the month and day filters.
// A new Dataset is built on every call.
func (l *Loader) Load(spec filter.Spec) (*Dataset, error) {
	tripsFilepath, err := l.GetFilePath(spec.City)
	if err != nil {
		return nil, err
	}

	dataFile, err := os.Open(tripsFilepath)
	if err != nil {
		log.Debugf("[city: %s][method: Load] error opening %s: %s", spec.City, tripsFilepath, err.Error())
		return nil, fmt.Errorf("[city: %s] error opening trips file: %w", spec.City, err)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", tripsFilepath, err.Error())
		}
	}(dataFile)

	startTime := time.Now()
	cityTrips, err := Read(spec.City, dataFile)
	if err != nil {
		return nil, err
	}
	log.Debugf("[city: %s][method: Load] %v trips read from %s in %s", spec.City, cityTrips.Len(), tripsFilepath, time.Since(startTime))

	filteredTrips, err := cityTrips.Filter(spec)
	if err != nil {
		return nil, err
	}
	log.Infof("[city: %s][month: %s][day: %s][status: OK] %v of %v trips match the filters",
		spec.City, spec.Month, spec.Day, filteredTrips.Len(), cityTrips.Len())

	return filteredTrips, nil
}

// GetFilePath returns the path to the .csv file of the city.
// + City possible values: the keys of the city_files config (Chicago, New York City, Washington)
func (l *Loader) GetFilePath(city string) (string, error) {
	fileName, ok := l.config.CityFiles[city]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}

	if l.config.TestMode {
		extension := filepath.Ext(fileName)
		testFileName := strings.TrimSuffix(fileName, extension) + "_test" + extension
		return filepath.Join(l.config.DataDir, "test", testFileName), nil
	}

	return filepath.Join(l.config.DataDir, fileName), nil
}
