// Package importer reads address CSV files for loading into the locations table.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"latlng-api/internal/latlng"
	"latlng-api/internal/models"

	"github.com/rs/zerolog/log"
)

// Column layout of the address CSV.
const (
	colPrefecture   = 0
	colMunicipality = 1
	colAddress1     = 2
	colAddress2     = 3
	colBlockLot     = 4
	colLatitude     = 9
	colLongitude    = 10

	minColumns = 11
)

// Result is what ReadCSV extracted from a file.
type Result struct {
	Locations []models.Location
	// Skipped counts rows whose coordinates are unreadable or outside Japan.
	Skipped int
}

// ReadCSV parses an address CSV with a header row. Coordinates may be in DEG or DMM notation
// and are stored in decimal degrees. A row with too few columns aborts the import; a row
// with an unusable coordinate is skipped.
func ReadCSV(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	if _, err := reader.Read(); err != nil {
		return Result{}, fmt.Errorf("importer: failed to read header: %w", err)
	}

	var res Result
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("importer: failed to read record: %w", err)
		}

		if len(record) < minColumns {
			return Result{}, fmt.Errorf("importer: line %d: invalid record length %d, expected at least %d columns", line, len(record), minColumns)
		}

		ll, ok := latlng.AnalyzeInput(record[colLatitude] + "," + record[colLongitude])
		if !ok {
			log.Warn().Int("line", line).Str("lat", record[colLatitude]).Str("lon", record[colLongitude]).Msg("skipping row with unusable coordinate")
			res.Skipped++
			continue
		}

		res.Locations = append(res.Locations, models.Location{
			Prefecture:   record[colPrefecture],
			Municipality: record[colMunicipality],
			Address1:     record[colAddress1],
			Address2:     record[colAddress2],
			BlockLot:     record[colBlockLot],
			Latitude:     ll.Latitude,
			Longitude:    ll.Longitude,
		})
	}

	return res, nil
}
