package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nyc-airbnb-dashboard/models"
	"nyc-airbnb-dashboard/utils"
)

func testListings() []*models.Listing {
	mk := func(id int64, group, neighbourhood, roomType string, price float64) *models.Listing {
		return &models.Listing{
			ID:                 id,
			Name:               sql.NullString{String: "Apt", Valid: true},
			HostName:           sql.NullString{String: "Host", Valid: true},
			NeighbourhoodGroup: group,
			Neighbourhood:      neighbourhood,
			RoomType:           roomType,
			Latitude:           sql.NullFloat64{Float64: 40.7, Valid: true},
			Longitude:          sql.NullFloat64{Float64: -73.95, Valid: true},
			Price:              sql.NullFloat64{Float64: price, Valid: true},
			MinimumNights:      sql.NullInt64{Int64: 2, Valid: true},
			ReviewsPerMonth:    sql.NullFloat64{Float64: 1.5, Valid: true},
			Availability365:    sql.NullInt64{Int64: 200, Valid: true},
		}
	}
	return []*models.Listing{
		mk(1, "Brooklyn", "Williamsburg", "Private room", 90),
		mk(2, "Brooklyn", "Bushwick", "Entire home/apt", 180),
		mk(3, "Manhattan", "Harlem", "Entire home/apt", 220),
		mk(4, "Manhattan", "Midtown", "Shared room", 60),
	}
}

func testRouter() http.Handler {
	server := NewServer(testListings(), utils.NewLogger(utils.LevelError))
	return server.Router("../templates/*")
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestIndexPage(t *testing.T) {
	w := get(t, testRouter(), "/")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /: status %d", w.Code)
	}
	body := w.Body.String()
	for _, path := range []string{"/chart_boxplot", "/bar_graph", "/chart_map", "/scatter_plot"} {
		if !strings.Contains(body, path) {
			t.Errorf("index page missing link to %s", path)
		}
	}
}

func TestChartRoutes(t *testing.T) {
	tests := []struct {
		path  string
		title string
	}{
		{"/chart_boxplot", "Distribution of Reviews per Month by Room Type"},
		{"/bar_graph", "Most Common Room Types in Each Neighborhood"},
		{"/scatter_plot", "Scatter Plot of Price vs. Availability by Room Type"},
		{"/chart_map", "Average Airbnb Prices by Neighborhood"},
	}

	router := testRouter()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(t, router, tt.path)
			if w.Code != http.StatusOK {
				t.Fatalf("GET %s: status %d", tt.path, w.Code)
			}
			body := w.Body.String()
			if !strings.Contains(body, "echarts") {
				t.Errorf("GET %s: body does not embed a chart", tt.path)
			}
			if !strings.Contains(body, tt.title) {
				t.Errorf("GET %s: body missing title %q", tt.path, tt.title)
			}
		})
	}
}

func TestChartRoutesDoNotMutateTable(t *testing.T) {
	listings := testListings()
	server := NewServer(listings, utils.NewLogger(utils.LevelError))
	router := server.Router("../templates/*")

	for i := 0; i < 3; i++ {
		for _, path := range []string{"/chart_boxplot", "/bar_graph", "/scatter_plot", "/chart_map"} {
			w := get(t, router, path)
			if w.Code != http.StatusOK {
				t.Fatalf("GET %s (pass %d): status %d", path, i, w.Code)
			}
		}
	}

	if len(listings) != 4 || listings[0].Price.Float64 != 90 {
		t.Error("cleaned table changed while serving charts")
	}
}
