package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nyc-airbnb-dashboard/models"
	"nyc-airbnb-dashboard/utils"
)

// Server serves the dashboard over the cleaned listing table. The table is
// read-only after construction, so handlers need no locking.
type Server struct {
	listings []*models.Listing
	logger   *utils.Logger
}

// NewServer creates a Server over the cleaned table.
func NewServer(listings []*models.Listing, logger *utils.Logger) *Server {
	return &Server{listings: listings, logger: logger}
}

// ChartLink is one entry on the index page.
type ChartLink struct {
	URL         string
	Description string
}

var chartLinks = []ChartLink{
	{
		URL:         "/chart_boxplot",
		Description: "Entire homes/apartments and private rooms receive more reviews per month compared to shared rooms, with outliers indicating some listings are highly reviewed.",
	},
	{
		URL:         "/bar_graph",
		Description: "Private rooms and entire apartments dominate listings in Brooklyn and Manhattan, with shared rooms being relatively rare across all neighborhoods.",
	},
	{
		URL:         "/chart_map",
		Description: "The map shows that Airbnb prices are concentrated in Manhattan and parts of Brooklyn, with higher prices in central neighborhoods.",
	},
	{
		URL:         "/scatter_plot",
		Description: "Room prices vary significantly, but most highly available listings are either private rooms or entire apartments.",
	},
}

// Router builds the gin engine with all dashboard routes. templateGlob is
// the pattern passed to LoadHTMLGlob (parameterized so tests can point at
// the templates directory from their own working directory).
func (s *Server) Router(templateGlob string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.LoadHTMLGlob(templateGlob)

	r.GET("/", s.Index)
	r.GET("/chart_boxplot", s.ChartBoxplot)
	r.GET("/bar_graph", s.BarGraph)
	r.GET("/scatter_plot", s.ScatterPlot)
	r.GET("/chart_map", s.ChartMap)

	return r
}

// Index renders the main page with chart descriptions.
func (s *Server) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Charts": chartLinks,
		"Total":  len(s.listings),
	})
}
