// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelogue/internal/http/handlers"
	"travelogue/internal/http/middleware"
)

// Routes builds the gin engine serving the form, the JSON API and the PDF download.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(), middleware.Recovery())
	r.SetHTMLTemplate(handlers.Templates())

	itinerary := handlers.NewItineraryHandler(s.planner, s.form)
	r.GET("/", itinerary.Index)
	r.POST("/itinerary", itinerary.Submit)

	api := r.Group("/api")
	if len(s.corsOrigins) > 0 {
		api.Use(middleware.CORS(s.corsOrigins))
		// Group middleware only runs on matched routes; give preflights one.
		api.OPTIONS("/*path", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
	}
	api.GET("/options", itinerary.Options)
	api.POST("/itinerary", itinerary.Create)
	api.POST("/itinerary/pdf", itinerary.Download)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
