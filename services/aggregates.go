package services

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"nyc-airbnb-dashboard/models"
)

// BoxSummary is the reviews-per-month distribution for one room type.
type BoxSummary struct {
	RoomType string
	Stats    FiveNum
	Count    int
}

// ReviewsByRoomType computes a five-number summary of reviews_per_month for
// each room type. Rows with a null reviews_per_month are skipped. Results
// are ordered by room type name.
func ReviewsByRoomType(listings []*models.Listing) []BoxSummary {
	byType := make(map[string][]float64)
	for _, l := range listings {
		if !l.ReviewsPerMonth.Valid {
			continue
		}
		byType[l.RoomType] = append(byType[l.RoomType], l.ReviewsPerMonth.Float64)
	}

	summaries := make([]BoxSummary, 0, len(byType))
	for roomType, values := range byType {
		stats, ok := Summarize(values)
		if !ok {
			continue
		}
		summaries = append(summaries, BoxSummary{
			RoomType: roomType,
			Stats:    stats,
			Count:    len(values),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].RoomType < summaries[j].RoomType
	})
	return summaries
}

// RoomTypePivot is a zero-filled count of listings per
// (neighbourhood_group, room_type) combination.
type RoomTypePivot struct {
	Groups    []string
	RoomTypes []string
	// Counts[i][j] is the number of listings of RoomTypes[i] in Groups[j].
	Counts [][]int
}

// RoomTypeCounts pivots the table into listing counts by neighbourhood
// group and room type, with both axes sorted for stable chart output.
func RoomTypeCounts(listings []*models.Listing) RoomTypePivot {
	groupSet := make(map[string]struct{})
	typeSet := make(map[string]struct{})
	counts := make(map[string]map[string]int)

	for _, l := range listings {
		groupSet[l.NeighbourhoodGroup] = struct{}{}
		typeSet[l.RoomType] = struct{}{}
		if counts[l.RoomType] == nil {
			counts[l.RoomType] = make(map[string]int)
		}
		counts[l.RoomType][l.NeighbourhoodGroup]++
	}

	pivot := RoomTypePivot{
		Groups:    sortedKeys(groupSet),
		RoomTypes: sortedKeys(typeSet),
	}
	pivot.Counts = make([][]int, len(pivot.RoomTypes))
	for i, roomType := range pivot.RoomTypes {
		row := make([]int, len(pivot.Groups))
		for j, group := range pivot.Groups {
			row[j] = counts[roomType][group]
		}
		pivot.Counts[i] = row
	}
	return pivot
}

// ScatterSeries is the price/availability point set for one room type.
type ScatterSeries struct {
	RoomType string
	// Points are (price, availability_365) pairs.
	Points [][2]float64
}

// PriceAvailability groups (price, availability_365) points by room type,
// ordered by room type name.
func PriceAvailability(listings []*models.Listing) []ScatterSeries {
	byType := make(map[string][][2]float64)
	for _, l := range listings {
		if !l.Price.Valid || !l.Availability365.Valid {
			continue
		}
		byType[l.RoomType] = append(byType[l.RoomType],
			[2]float64{l.Price.Float64, float64(l.Availability365.Int64)})
	}

	series := make([]ScatterSeries, 0, len(byType))
	for roomType, points := range byType {
		series = append(series, ScatterSeries{RoomType: roomType, Points: points})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].RoomType < series[j].RoomType
	})
	return series
}

// NeighbourhoodAverage holds per-neighbourhood mean coordinates and price.
type NeighbourhoodAverage struct {
	Neighbourhood      string
	NeighbourhoodGroup string
	Latitude           float64
	Longitude          float64
	Price              float64
	Count              int
}

// NeighbourhoodAverages computes mean latitude, longitude and price per
// (neighbourhood, neighbourhood_group), ordered by group then
// neighbourhood.
func NeighbourhoodAverages(listings []*models.Listing) []NeighbourhoodAverage {
	type key struct{ neighbourhood, group string }
	type acc struct{ lats, lons, prices []float64 }

	accs := make(map[key]*acc)
	for _, l := range listings {
		if !l.Latitude.Valid || !l.Longitude.Valid || !l.Price.Valid {
			continue
		}
		k := key{l.Neighbourhood, l.NeighbourhoodGroup}
		a := accs[k]
		if a == nil {
			a = &acc{}
			accs[k] = a
		}
		a.lats = append(a.lats, l.Latitude.Float64)
		a.lons = append(a.lons, l.Longitude.Float64)
		a.prices = append(a.prices, l.Price.Float64)
	}

	averages := make([]NeighbourhoodAverage, 0, len(accs))
	for k, a := range accs {
		averages = append(averages, NeighbourhoodAverage{
			Neighbourhood:      k.neighbourhood,
			NeighbourhoodGroup: k.group,
			Latitude:           stat.Mean(a.lats, nil),
			Longitude:          stat.Mean(a.lons, nil),
			Price:              stat.Mean(a.prices, nil),
			Count:              len(a.prices),
		})
	}

	sort.Slice(averages, func(i, j int) bool {
		if averages[i].NeighbourhoodGroup != averages[j].NeighbourhoodGroup {
			return averages[i].NeighbourhoodGroup < averages[j].NeighbourhoodGroup
		}
		return averages[i].Neighbourhood < averages[j].Neighbourhood
	})
	return averages
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
