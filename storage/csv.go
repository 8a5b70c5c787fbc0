package storage

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"nyc-airbnb-dashboard/models"
	"nyc-airbnb-dashboard/utils"
)

// CSVSource loads the raw listing table from a CSV export of the ab_nyc
// dataset. Empty cells map to SQL nulls.
type CSVSource struct {
	path   string
	logger *utils.Logger
}

// NewCSVSource creates a CSVSource reading from path.
func NewCSVSource(path string, logger *utils.Logger) *CSVSource {
	return &CSVSource{path: path, logger: logger}
}

// FetchAll parses the whole file. The header row is validated against
// models.RequiredColumns before any record is read; extra columns are
// ignored.
func (s *CSVSource) FetchAll() ([]*models.Listing, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[col] = i
	}
	for _, required := range models.RequiredColumns {
		if _, ok := idx[required]; !ok {
			return nil, &models.SchemaError{Source: "csv", Column: required}
		}
	}

	var listings []*models.Listing
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read record: %w", err)
		}
		line++

		l, err := parseRecord(record, idx)
		if err != nil {
			return nil, fmt.Errorf("csv: line %d: %w", line, err)
		}
		listings = append(listings, l)
	}

	s.logger.Debug("[csv] Loaded %d rows from %s", len(listings), s.path)
	return listings, nil
}

// Close is a no-op; the file handle only lives for the duration of FetchAll.
func (s *CSVSource) Close() error {
	return nil
}

func parseRecord(record []string, idx map[string]int) (*models.Listing, error) {
	cell := func(col string) string {
		i := idx[col]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	l := &models.Listing{
		NeighbourhoodGroup: cell("neighbourhood_group"),
		Neighbourhood:      cell("neighbourhood"),
		RoomType:           cell("room_type"),
		Name:               nullString(cell("name")),
		HostName:           nullString(cell("host_name")),
		LastReview:         nullString(cell("last_review")),
	}

	var err error
	if l.ID, err = strconv.ParseInt(cell("id"), 10, 64); err != nil {
		return nil, fmt.Errorf("column id: %w", err)
	}
	if l.HostID, err = strconv.ParseInt(cell("host_id"), 10, 64); err != nil {
		return nil, fmt.Errorf("column host_id: %w", err)
	}
	if l.NumberOfReviews, err = parseIntDefault(cell("number_of_reviews")); err != nil {
		return nil, fmt.Errorf("column number_of_reviews: %w", err)
	}
	if l.CalculatedHostListingsCount, err = parseIntDefault(cell("calculated_host_listings_count")); err != nil {
		return nil, fmt.Errorf("column calculated_host_listings_count: %w", err)
	}

	if l.Latitude, err = nullFloat(cell("latitude")); err != nil {
		return nil, fmt.Errorf("column latitude: %w", err)
	}
	if l.Longitude, err = nullFloat(cell("longitude")); err != nil {
		return nil, fmt.Errorf("column longitude: %w", err)
	}
	if l.Price, err = nullFloat(cell("price")); err != nil {
		return nil, fmt.Errorf("column price: %w", err)
	}
	if l.ReviewsPerMonth, err = nullFloat(cell("reviews_per_month")); err != nil {
		return nil, fmt.Errorf("column reviews_per_month: %w", err)
	}
	if l.MinimumNights, err = nullInt(cell("minimum_nights")); err != nil {
		return nil, fmt.Errorf("column minimum_nights: %w", err)
	}
	if l.Availability365, err = nullInt(cell("availability_365")); err != nil {
		return nil, fmt.Errorf("column availability_365: %w", err)
	}

	return l, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullFloat(s string) (sql.NullFloat64, error) {
	if s == "" {
		return sql.NullFloat64{}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{}, err
	}
	return sql.NullFloat64{Float64: f, Valid: true}, nil
}

func nullInt(s string) (sql.NullInt64, error) {
	if s == "" {
		return sql.NullInt64{}, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return sql.NullInt64{}, err
	}
	return sql.NullInt64{Int64: n, Valid: true}, nil
}

func parseIntDefault(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
