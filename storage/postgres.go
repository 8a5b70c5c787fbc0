package storage

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"nyc-airbnb-dashboard/models"
	"nyc-airbnb-dashboard/utils"
)

// PostgresSource reads the raw listing table from PostgreSQL.
type PostgresSource struct {
	db    *sql.DB
	table string
}

// NewPostgresSource opens a connection to PostgreSQL and verifies it with
// the given retry policy before returning a ready-to-use source.
func NewPostgresSource(dsn, table string, retry *utils.RetryConfig) (*PostgresSource, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := retry.Do("postgres ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	return &PostgresSource{db: db, table: table}, nil
}

// FetchAll retrieves every row of the listing table in source order. The
// result set's column names are checked against models.RequiredColumns
// before any row is scanned; extra columns are ignored.
func (s *PostgresSource) FetchAll() ([]*models.Listing, error) {
	rows, err := s.db.Query(fmt.Sprintf("SELECT * FROM %s", pq.QuoteIdentifier(s.table)))
	if err != nil {
		return nil, fmt.Errorf("postgres: query %s: %w", s.table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("postgres: columns: %w", err)
	}

	idx := make(map[string]int, len(cols))
	for i, col := range cols {
		idx[col] = i
	}
	for _, required := range models.RequiredColumns {
		if _, ok := idx[required]; !ok {
			return nil, &models.SchemaError{Source: "postgres", Column: required}
		}
	}

	var listings []*models.Listing
	for rows.Next() {
		l := &models.Listing{}

		targets := make([]any, len(cols))
		for i := range targets {
			targets[i] = new(sql.RawBytes)
		}
		targets[idx["id"]] = &l.ID
		targets[idx["name"]] = &l.Name
		targets[idx["host_id"]] = &l.HostID
		targets[idx["host_name"]] = &l.HostName
		targets[idx["neighbourhood_group"]] = &l.NeighbourhoodGroup
		targets[idx["neighbourhood"]] = &l.Neighbourhood
		targets[idx["latitude"]] = &l.Latitude
		targets[idx["longitude"]] = &l.Longitude
		targets[idx["room_type"]] = &l.RoomType
		targets[idx["price"]] = &l.Price
		targets[idx["minimum_nights"]] = &l.MinimumNights
		targets[idx["number_of_reviews"]] = &l.NumberOfReviews
		targets[idx["last_review"]] = &l.LastReview
		targets[idx["reviews_per_month"]] = &l.ReviewsPerMonth
		targets[idx["calculated_host_listings_count"]] = &l.CalculatedHostListingsCount
		targets[idx["availability_365"]] = &l.Availability365

		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate rows: %w", err)
	}
	return listings, nil
}

// Close releases the database connection.
func (s *PostgresSource) Close() error {
	return s.db.Close()
}
