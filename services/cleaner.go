package services

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"nyc-airbnb-dashboard/models"
	"nyc-airbnb-dashboard/utils"
)

// stripRegexp matches every rune that is not a word character
// (letter, digit, underscore) or whitespace.
var stripRegexp = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// NYC bounding box and stay-length limits applied by the pipeline.
const (
	minLatitude  = 40.0
	maxLatitude  = 41.0
	minLongitude = -75.0
	maxLongitude = -73.0
	maxNights    = 365
	maxDays      = 365
)

// Cleaner transforms a raw listing table into an analysis-ready one.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean removes duplicate ids, price outliers and out-of-range rows, and
// normalizes the name and host_name columns. The input slice and its
// Listing values are never modified; a fresh table is returned.
//
// Step order matters: the price fence is computed on the de-duplicated
// set, not the raw one.
func (c *Cleaner) Clean(raw []*models.Listing) []*models.Listing {
	deduped := c.dedupeByID(raw)

	lo, hi, ok := priceFence(deduped)
	if !ok {
		// Fence on an all-null price column excludes every row, the same
		// way comparisons against a null quantile do.
		c.logger.Warn("[cleaner] No price values present — dropping all %d rows", len(deduped))
		return []*models.Listing{}
	}
	c.logger.Debug("[cleaner] Price fence: [%.2f, %.2f]", lo, hi)

	result := make([]*models.Listing, 0, len(deduped))
	for _, l := range deduped {
		if !l.Price.Valid || l.Price.Float64 < lo || l.Price.Float64 > hi {
			continue
		}
		if !l.Availability365.Valid || l.Availability365.Int64 < 0 || l.Availability365.Int64 > maxDays {
			continue
		}
		if !l.MinimumNights.Valid || l.MinimumNights.Int64 <= 0 || l.MinimumNights.Int64 >= maxNights {
			continue
		}
		if !l.Latitude.Valid || l.Latitude.Float64 < minLatitude || l.Latitude.Float64 > maxLatitude {
			continue
		}
		if !l.Longitude.Valid || l.Longitude.Float64 < minLongitude || l.Longitude.Float64 > maxLongitude {
			continue
		}

		cp := *l
		if cp.Name.Valid {
			cp.Name.String = titleCase(stripRegexp.ReplaceAllString(cp.Name.String, ""))
		}
		if cp.HostName.Valid {
			cp.HostName.String = titleCase(cp.HostName.String)
		}
		result = append(result, &cp)
	}

	c.logger.Info("[cleaner] Cleaned %d → %d listings (dropped %d)",
		len(raw), len(result), len(raw)-len(result))
	return result
}

// dedupeByID keeps the first occurrence of each id, in source order.
func (c *Cleaner) dedupeByID(raw []*models.Listing) []*models.Listing {
	seen := make(map[int64]struct{}, len(raw))
	result := make([]*models.Listing, 0, len(raw))

	for _, l := range raw {
		if _, dup := seen[l.ID]; dup {
			c.logger.Debug("[cleaner] Duplicate id skipped: %d", l.ID)
			continue
		}
		seen[l.ID] = struct{}{}
		result = append(result, l)
	}
	return result
}

// priceFence computes the IQR outlier bounds [Q1−1.5·IQR, Q3+1.5·IQR] over
// the non-null prices of the de-duplicated table. ok is false when the
// table has no price values at all.
func priceFence(listings []*models.Listing) (lo, hi float64, ok bool) {
	prices := make([]float64, 0, len(listings))
	for _, l := range listings {
		if l.Price.Valid {
			prices = append(prices, l.Price.Float64)
		}
	}
	if len(prices) == 0 {
		return 0, 0, false
	}

	sort.Float64s(prices)
	q1 := Quantile(prices, 0.25)
	q3 := Quantile(prices, 0.75)
	iqr := q3 - q1
	return q1 - 1.5*iqr, q3 + 1.5*iqr, true
}

// titleCase uppercases the first rune of each whitespace-delimited token
// and lowercases the rest, preserving the whitespace itself.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	startOfToken := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			startOfToken = true
			b.WriteRune(r)
			continue
		}
		if startOfToken {
			b.WriteRune(unicode.ToUpper(r))
			startOfToken = false
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
