package services

import (
	"database/sql"
	"math"
	"testing"

	"nyc-airbnb-dashboard/models"
)

func aggListings() []*models.Listing {
	mk := func(id int64, group, neighbourhood, roomType string, price, lat, lon float64) *models.Listing {
		return &models.Listing{
			ID:                 id,
			NeighbourhoodGroup: group,
			Neighbourhood:      neighbourhood,
			RoomType:           roomType,
			Price:              nf(price),
			Latitude:           nf(lat),
			Longitude:          nf(lon),
			ReviewsPerMonth:    nf(float64(id)),
			Availability365:    ni(100 + id),
		}
	}
	return []*models.Listing{
		mk(1, "Brooklyn", "Williamsburg", "Private room", 80, 40.70, -73.95),
		mk(2, "Brooklyn", "Williamsburg", "Private room", 120, 40.72, -73.97),
		mk(3, "Brooklyn", "Bushwick", "Entire home/apt", 200, 40.69, -73.92),
		mk(4, "Manhattan", "Harlem", "Entire home/apt", 150, 40.81, -73.94),
	}
}

func TestReviewsByRoomTypeSkipsNulls(t *testing.T) {
	listings := aggListings()
	listings[0].ReviewsPerMonth = sql.NullFloat64{}

	summaries := ReviewsByRoomType(listings)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 room types, got %d", len(summaries))
	}
	// Sorted: "Entire home/apt" < "Private room"
	if summaries[0].RoomType != "Entire home/apt" || summaries[0].Count != 2 {
		t.Errorf("first summary: got %s/%d, want Entire home/apt/2",
			summaries[0].RoomType, summaries[0].Count)
	}
	if summaries[1].RoomType != "Private room" || summaries[1].Count != 1 {
		t.Errorf("second summary: got %s/%d, want Private room/1",
			summaries[1].RoomType, summaries[1].Count)
	}
}

func TestRoomTypeCountsZeroFilled(t *testing.T) {
	pivot := RoomTypeCounts(aggListings())

	wantGroups := []string{"Brooklyn", "Manhattan"}
	wantTypes := []string{"Entire home/apt", "Private room"}
	for i, g := range wantGroups {
		if pivot.Groups[i] != g {
			t.Fatalf("groups: got %v, want %v", pivot.Groups, wantGroups)
		}
	}
	for i, rt := range wantTypes {
		if pivot.RoomTypes[i] != rt {
			t.Fatalf("room types: got %v, want %v", pivot.RoomTypes, wantTypes)
		}
	}

	// Counts[roomType][group]
	if pivot.Counts[0][0] != 1 || pivot.Counts[0][1] != 1 {
		t.Errorf("Entire home/apt counts: got %v, want [1 1]", pivot.Counts[0])
	}
	if pivot.Counts[1][0] != 2 || pivot.Counts[1][1] != 0 {
		t.Errorf("Private room counts: got %v, want [2 0] (zero-filled)", pivot.Counts[1])
	}
}

func TestPriceAvailabilitySeries(t *testing.T) {
	series := PriceAvailability(aggListings())
	if len(series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(series))
	}
	if series[1].RoomType != "Private room" || len(series[1].Points) != 2 {
		t.Fatalf("Private room series: got %d points", len(series[1].Points))
	}
	p := series[1].Points[0]
	if p[0] != 80 || p[1] != 101 {
		t.Errorf("first point: got (%v, %v), want (80, 101)", p[0], p[1])
	}
}

func TestNeighbourhoodAverages(t *testing.T) {
	averages := NeighbourhoodAverages(aggListings())
	if len(averages) != 3 {
		t.Fatalf("expected 3 neighbourhoods, got %d", len(averages))
	}

	// Ordered by group then neighbourhood: Bushwick, Williamsburg, Harlem.
	w := averages[1]
	if w.Neighbourhood != "Williamsburg" {
		t.Fatalf("expected Williamsburg second, got %s", w.Neighbourhood)
	}
	if w.Count != 2 {
		t.Errorf("Williamsburg count: got %d, want 2", w.Count)
	}
	if math.Abs(w.Price-100) > 1e-9 {
		t.Errorf("Williamsburg mean price: got %v, want 100", w.Price)
	}
	if math.Abs(w.Latitude-40.71) > 1e-9 {
		t.Errorf("Williamsburg mean latitude: got %v, want 40.71", w.Latitude)
	}
}

func TestAggregatesEmptyInput(t *testing.T) {
	if got := ReviewsByRoomType(nil); len(got) != 0 {
		t.Errorf("ReviewsByRoomType(nil): got %d summaries", len(got))
	}
	if got := NeighbourhoodAverages(nil); len(got) != 0 {
		t.Errorf("NeighbourhoodAverages(nil): got %d rows", len(got))
	}
	pivot := RoomTypeCounts(nil)
	if len(pivot.Groups) != 0 || len(pivot.RoomTypes) != 0 {
		t.Errorf("RoomTypeCounts(nil): got %v/%v", pivot.Groups, pivot.RoomTypes)
	}
}
