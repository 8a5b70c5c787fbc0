package models

import (
	"database/sql"
	"fmt"
)

// Listing is one row of the AB_NYC dataset. Columns the cleaning pipeline
// filters on are nullable so that a null value fails the filter predicate
// the same way a null comparison does in SQL.
type Listing struct {
	ID                          int64
	Name                        sql.NullString
	HostID                      int64
	HostName                    sql.NullString
	NeighbourhoodGroup          string
	Neighbourhood               string
	Latitude                    sql.NullFloat64
	Longitude                   sql.NullFloat64
	RoomType                    string
	Price                       sql.NullFloat64
	MinimumNights               sql.NullInt64
	NumberOfReviews             int64
	LastReview                  sql.NullString
	ReviewsPerMonth             sql.NullFloat64
	CalculatedHostListingsCount int64
	Availability365             sql.NullInt64
}

// RequiredColumns is the column set every data source must supply, in the
// order they appear in the ab_nyc table.
var RequiredColumns = []string{
	"id",
	"name",
	"host_id",
	"host_name",
	"neighbourhood_group",
	"neighbourhood",
	"latitude",
	"longitude",
	"room_type",
	"price",
	"minimum_nights",
	"number_of_reviews",
	"last_review",
	"reviews_per_month",
	"calculated_host_listings_count",
	"availability_365",
}

// SchemaError reports a required column missing from a data source. It is
// fatal: the cleaning pipeline never runs against a partial schema.
type SchemaError struct {
	Source string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: required column %q missing from dataset", e.Source, e.Column)
}
