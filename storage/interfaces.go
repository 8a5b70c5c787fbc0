package storage

import "nyc-airbnb-dashboard/models"

// ListingSource is the interface any data backend must satisfy. FetchAll
// returns the raw listing table; a missing required column surfaces as a
// *models.SchemaError.
type ListingSource interface {
	FetchAll() ([]*models.Listing, error)
	Close() error
}
