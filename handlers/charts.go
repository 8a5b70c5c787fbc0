package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"nyc-airbnb-dashboard/services"
)

// ChartBoxplot renders a box plot of reviews per month by room type.
func (s *Server) ChartBoxplot(c *gin.Context) {
	summaries := services.ReviewsByRoomType(s.listings)

	roomTypes := make([]string, 0, len(summaries))
	data := make([]opts.BoxPlotData, 0, len(summaries))
	for _, summary := range summaries {
		roomTypes = append(roomTypes, summary.RoomType)
		data = append(data, opts.BoxPlotData{
			Name: summary.RoomType,
			Value: []float64{
				summary.Stats.Min,
				summary.Stats.Q1,
				summary.Stats.Median,
				summary.Stats.Q3,
				summary.Stats.Max,
			},
		})
	}

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Distribution of Reviews per Month by Room Type"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Room Type"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Reviews per Month"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Reviews per Month"}),
	)
	box.SetXAxis(roomTypes).AddSeries("reviews per month", data)

	s.render(c, box)
}

// BarGraph renders grouped bars of room-type counts per neighbourhood group.
func (s *Server) BarGraph(c *gin.Context) {
	pivot := services.RoomTypeCounts(s.listings)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Most Common Room Types in Each Neighborhood"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Neighborhood"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Listings"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Room Types by Neighborhood"}),
	)
	bar.SetXAxis(pivot.Groups)

	for i, roomType := range pivot.RoomTypes {
		data := make([]opts.BarData, len(pivot.Groups))
		for j, count := range pivot.Counts[i] {
			data[j] = opts.BarData{Value: count}
		}
		bar.AddSeries(roomType, data)
	}

	s.render(c, bar)
}

// ScatterPlot renders price vs. availability, one series per room type.
func (s *Server) ScatterPlot(c *gin.Context) {
	series := services.PriceAvailability(s.listings)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Scatter Plot of Price vs. Availability by Room Type"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Price", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Availability (365 Days)", Type: "value"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Price vs. Availability"}),
	)

	for _, ss := range series {
		data := make([]opts.ScatterData, len(ss.Points))
		for i, p := range ss.Points {
			data[i] = opts.ScatterData{
				Value:      []any{p[0], p[1]},
				SymbolSize: 6,
			}
		}
		scatter.AddSeries(ss.RoomType, data)
	}

	s.render(c, scatter)
}

// ChartMap renders average prices by neighbourhood as a coordinate scatter:
// each point sits at the neighbourhood's mean location and is sized by its
// mean price.
func (s *Server) ChartMap(c *gin.Context) {
	averages := services.NeighbourhoodAverages(s.listings)

	var maxPrice float64
	for _, a := range averages {
		if a.Price > maxPrice {
			maxPrice = a.Price
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Average Airbnb Prices by Neighborhood"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Longitude", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Latitude", Type: "value"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Average Prices by Neighborhood"}),
	)

	byGroup := make(map[string][]opts.ScatterData)
	var groups []string
	for _, a := range averages {
		if _, seen := byGroup[a.NeighbourhoodGroup]; !seen {
			groups = append(groups, a.NeighbourhoodGroup)
		}
		byGroup[a.NeighbourhoodGroup] = append(byGroup[a.NeighbourhoodGroup], opts.ScatterData{
			Name:       a.Neighbourhood,
			Value:      []any{a.Longitude, a.Latitude},
			SymbolSize: symbolSize(a.Price, maxPrice),
		})
	}
	for _, group := range groups {
		scatter.AddSeries(group, byGroup[group])
	}

	s.render(c, scatter)
}

// symbolSize scales a price into a 4–20px marker, mirroring the area-based
// sizing of the original map view.
func symbolSize(price, maxPrice float64) int {
	if maxPrice <= 0 {
		return 4
	}
	return 4 + int(16*price/maxPrice)
}

type renderer interface {
	Render(w io.Writer) error
}

func (s *Server) render(c *gin.Context, chart renderer) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := chart.Render(c.Writer); err != nil {
		s.logger.Error("[charts] Render failed for %s: %v", c.Request.URL.Path, err)
	}
}
