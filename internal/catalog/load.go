package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// Load reads the vehicle catalog from a CSV file. The catalog is the only
// mandatory collaborator of the advisor: a load failure is returned to the
// caller as-is and must end the session.
func Load(path string, logger *zap.Logger) (*Vehicles, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	vehicles, err := Parse(file, logger)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %q: %w", path, err)
	}

	return vehicles, nil
}

// Parse decodes catalog rows from CSV data. The header row names the
// columns; Brand and Model are required, everything else is optional and
// kept as best-effort matchable text.
func Parse(r io.Reader, logger *zap.Logger) (*Vehicles, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rawHeader, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	header := make([]string, len(rawHeader))
	for i, column := range rawHeader {
		header[i] = CleanColumnName(column)
	}

	if err := requireColumns(header, BrandColumn, ModelColumn); err != nil {
		return nil, err
	}

	vehicles := &Vehicles{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		vehicle, err := decodeRow(header, record)
		if err != nil {
			return nil, fmt.Errorf("decode row %d: %w", line, err)
		}

		if vehicle.Brand == "" && vehicle.Model == "" {
			if logger != nil {
				logger.Debug("skipping blank catalog row", zap.Int("line", line))
			}
			continue
		}

		vehicles.Items = append(vehicles.Items, vehicle)
	}

	if logger != nil {
		logger.Debug("catalog parsed",
			zap.Int("vehicles", vehicles.Len()),
			zap.Strings("columns", header),
		)
	}

	return vehicles, nil
}

func decodeRow(header []string, record []string) (*Vehicle, error) {
	row := make(map[string]any, len(header))
	for i, column := range header {
		if column == "" || i >= len(record) {
			continue
		}

		value := strings.TrimSpace(record[i])
		if column == ModelYearColumn {
			// Unparsable years stay zero, they only lose the
			// newest-first tie-break.
			year, err := strconv.Atoi(value)
			if err == nil {
				row[column] = year
			}
			continue
		}

		row[column] = value
	}

	var vehicle Vehicle
	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &vehicle,
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(row); err != nil {
		return nil, err
	}

	vehicle.MSRPMin, vehicle.MSRPMax = ParseMSRPRange(vehicle.MSRPRange)

	return &vehicle, nil
}

func requireColumns(header []string, required ...string) error {
	for _, want := range required {
		found := false
		for _, column := range header {
			if strings.EqualFold(column, want) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("catalog is missing required column %q", want)
		}
	}
	return nil
}

// CleanColumnName normalizes a CSV header cell: surrounding whitespace is
// trimmed and internal runs of whitespace collapse to a single space.
func CleanColumnName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
