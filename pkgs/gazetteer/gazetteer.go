// Package gazetteer loads the Geonames reference data the location
// resolver matches against: country names with their ISO codes and
// city names with country code and population.
package gazetteer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

const (
	COUNTRY_INFO_URL = "https://download.geonames.org/export/dump/countryInfo.txt"
	CITIES_URL       = "https://download.geonames.org/export/dump/cities15000.zip"

	COUNTRY_INFO_FILE = "countryInfo.txt"
	CITIES_FILE       = "cities15000.zip"
)

type CountryRecord struct {
	ISO  string
	Name string
}

type CityRecord struct {
	Name        string
	CountryCode string
	Population  int
}

// Index holds the reference dataset in memory. It is loaded once at
// startup and read-only afterwards.
type Index struct {
	Countries []CountryRecord
	Cities    []CityRecord
}

// Load reads the Geonames dump files from dataDir, downloading any
// missing file first.
func Load(ctx context.Context, dataDir string) (*Index, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to make gazetteer data dir: %v", err)
	}

	countryPath := filepath.Join(dataDir, COUNTRY_INFO_FILE)
	if err := ensureFile(ctx, COUNTRY_INFO_URL, countryPath); err != nil {
		return nil, fmt.Errorf("failed to fetch country data: %w", err)
	}
	citiesPath := filepath.Join(dataDir, CITIES_FILE)
	if err := ensureFile(ctx, CITIES_URL, citiesPath); err != nil {
		return nil, fmt.Errorf("failed to fetch city data: %w", err)
	}

	index := &Index{}

	countryFile, err := os.Open(countryPath)
	if err != nil {
		return nil, err
	}
	defer countryFile.Close()
	index.Countries, err = parseCountryInfo(countryFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", COUNTRY_INFO_FILE, err)
	}

	index.Cities, err = loadCitiesZip(citiesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", CITIES_FILE, err)
	}

	log.WithFields(log.Fields{
		"countries": len(index.Countries),
		"cities":    len(index.Cities),
	}).Infoln("gazetteer is loaded")
	return index, nil
}
