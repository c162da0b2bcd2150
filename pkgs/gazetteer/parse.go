package gazetteer

import (
	"archive/zip"
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Geonames dumps are tab separated with 19 columns per row. Comment
// lines start with '#'.
const geonamesFieldCount = 19

func parseCountryInfo(r io.Reader) ([]CountryRecord, error) {
	records := make([]CountryRecord, 0, 256)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		fields := strings.SplitN(line, "\t", geonamesFieldCount)
		if len(fields) != geonamesFieldCount || fields[0] == "" {
			continue
		}

		records = append(records, CountryRecord{
			ISO:  fields[0],
			Name: fields[4],
		})
	}
	return records, scanner.Err()
}

func parseCities(r io.Reader) ([]CityRecord, error) {
	records := make([]CityRecord, 0, 32768)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.SplitN(scanner.Text(), "\t", geonamesFieldCount)
		if len(fields) != geonamesFieldCount {
			continue
		}

		name := strings.TrimSpace(fields[1])
		if name == "" {
			continue
		}
		population, _ := strconv.Atoi(fields[14])

		records = append(records, CityRecord{
			Name:        name,
			CountryCode: fields[8],
			Population:  population,
		})
	}
	return records, scanner.Err()
}

// loadCitiesZip streams the city dump out of the zip archive without
// extracting it to disk.
func loadCitiesZip(path string) ([]CityRecord, error) {
	rz, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip file: %w", err)
	}
	defer rz.Close()

	records := make([]CityRecord, 0, 32768)
	for _, zf := range rz.File {
		entry, err := readZipEntry(zf)
		if err != nil {
			return nil, err
		}
		records = append(records, entry...)
	}
	return records, nil
}

func readZipEntry(zf *zip.File) ([]CityRecord, error) {
	fi, err := zf.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file in zip: %w", err)
	}
	defer fi.Close()

	return parseCities(fi)
}
