// README: Itinerary handlers: HTML form, JSON API and PDF download.
package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"travelogue/internal/config"
	"travelogue/internal/http/middleware"
	"travelogue/internal/maps"
	"travelogue/internal/pdf"
	"travelogue/internal/service"
)

type ItineraryHandler struct {
	planner *service.Planner
	form    config.FormConfig
}

func NewItineraryHandler(planner *service.Planner, form config.FormConfig) *ItineraryHandler {
	return &ItineraryHandler{planner: planner, form: form}
}

// tripForm is the HTML form payload; destinations are newline separated.
type tripForm struct {
	Destinations string   `form:"destinations"`
	NumDays      int      `form:"num_days"`
	Budget       float64  `form:"budget"`
	NumPeople    int      `form:"num_people"`
	HasChildren  bool     `form:"has_children"`
	Preferences  []string `form:"preferences"`
}

func (f tripForm) Selected(tag string) bool {
	for _, p := range f.Preferences {
		if p == tag {
			return true
		}
	}
	return false
}

type itineraryReq struct {
	Destinations []string `json:"destinations"`
	NumDays      int      `json:"num_days"`
	Budget       float64  `json:"budget"`
	NumPeople    int      `json:"num_people"`
	HasChildren  bool     `json:"has_children"`
	Preferences  []string `json:"preferences"`
}

func (r itineraryReq) tripRequest(form config.FormConfig) service.TripRequest {
	return service.TripRequest{
		Destinations: r.Destinations,
		NumDays:      r.NumDays,
		Budget:       r.Budget,
		NumPeople:    r.NumPeople,
		HasChildren:  r.HasChildren,
		Preferences:  r.Preferences,
	}.WithFormDefaults(form)
}

type destinationResp struct {
	Name            string `json:"name"`
	Itinerary       string `json:"itinerary"`
	ItineraryFailed bool   `json:"itinerary_failed"`
	Weather         string `json:"weather"`
	WeatherFailed   bool   `json:"weather_failed"`
}

type pdfResp struct {
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
	Base64   string `json:"base64"`
}

type itineraryResp struct {
	Title             string            `json:"title"`
	NumDays           int               `json:"num_days"`
	Destinations      []destinationResp `json:"destinations"`
	ItineraryMarkdown string            `json:"itinerary_markdown"`
	WeatherSummary    string            `json:"weather_summary"`
	Points            []maps.Point      `json:"points"`
	PDF               *pdfResp          `json:"pdf"`
	ExportError       string            `json:"export_error,omitempty"`
}

// Index handles GET /.
func (h *ItineraryHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{Form: h.form, Input: h.defaultInput()})
}

// Submit handles POST /itinerary from the HTML form.
func (h *ItineraryHandler) Submit(c *gin.Context) {
	var in tripForm
	if err := c.ShouldBind(&in); err != nil {
		c.HTML(http.StatusBadRequest, "index.html", pageData{Form: h.form, Input: h.defaultInput(), Error: "invalid form input"})
		return
	}

	req := service.TripRequest{
		Destinations: service.ParseDestinations(in.Destinations),
		NumDays:      in.NumDays,
		Budget:       in.Budget,
		NumPeople:    in.NumPeople,
		HasChildren:  in.HasChildren,
		Preferences:  in.Preferences,
	}.WithFormDefaults(h.form)
	in.NumDays, in.Budget, in.NumPeople = req.NumDays, req.Budget, req.NumPeople

	it, err := h.planner.Plan(c.Request.Context(), req)
	if err != nil {
		status, msg := http.StatusInternalServerError, "internal error"
		if errors.Is(err, service.ErrNoDestinations) {
			status, msg = http.StatusBadRequest, NoDestinationsMessage
		}
		c.HTML(status, "index.html", pageData{Form: h.form, Input: in, Error: msg})
		return
	}

	logPlan(c, it)
	c.HTML(http.StatusOK, "index.html", pageData{Form: h.form, Input: in, Result: newResultView(it)})
}

// Create handles POST /api/itinerary.
func (h *ItineraryHandler) Create(c *gin.Context) {
	var req itineraryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	it, err := h.planner.Plan(c.Request.Context(), req.tripRequest(h.form))
	if err != nil {
		writePlanError(c, err)
		return
	}
	logPlan(c, it)
	writeJSON(c, http.StatusOK, newItineraryResp(it))
}

// Download handles POST /api/itinerary/pdf and streams the document as an attachment.
func (h *ItineraryHandler) Download(c *gin.Context) {
	var req itineraryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	it, err := h.planner.Plan(c.Request.Context(), req.tripRequest(h.form))
	if err != nil {
		writePlanError(c, err)
		return
	}
	logPlan(c, it)
	if it.ExportErr != nil {
		writeError(c, http.StatusUnprocessableEntity, it.ExportErr.Error())
		return
	}

	c.DataFromReader(http.StatusOK, int64(it.PDF.Len()), pdf.MIMEType, it.PDF.Reader(), map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, pdf.Filename),
	})
}

// Options handles GET /api/options.
func (h *ItineraryHandler) Options(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.form)
}

func (h *ItineraryHandler) defaultInput() tripForm {
	return tripForm{
		NumDays:   h.form.Days.Default,
		Budget:    float64(h.form.Budget.Default),
		NumPeople: h.form.People.Default,
	}
}

func logPlan(c *gin.Context, it *service.Itinerary) {
	failed := 0
	for _, r := range it.Results {
		if r.Itinerary.Failed() || r.Weather.Failed() {
			failed++
		}
	}
	log.Printf("[ITINERARY] action=plan request_id=%s destinations=%d with_failures=%d pdf=%t",
		middleware.GetRequestID(c), len(it.Results), failed, it.PDF != nil)
}

func newItineraryResp(it *service.Itinerary) itineraryResp {
	resp := itineraryResp{
		Title:             it.Title,
		NumDays:           it.Request.NumDays,
		Destinations:      make([]destinationResp, 0, len(it.Results)),
		ItineraryMarkdown: it.Report.ItineraryMarkdown,
		WeatherSummary:    it.Report.WeatherSummary,
		Points:            it.Points,
	}
	for _, r := range it.Results {
		resp.Destinations = append(resp.Destinations, destinationResp{
			Name:            r.Name,
			Itinerary:       r.Itinerary.Display(),
			ItineraryFailed: r.Itinerary.Failed(),
			Weather:         r.Weather.Display(),
			WeatherFailed:   r.Weather.Failed(),
		})
	}
	if it.PDF != nil {
		resp.PDF = &pdfResp{
			Filename: pdf.Filename,
			MIMEType: pdf.MIMEType,
			Base64:   base64.StdEncoding.EncodeToString(it.PDF.Bytes()),
		}
	}
	if it.ExportErr != nil {
		resp.ExportError = it.ExportErr.Error()
	}
	return resp
}

type pageData struct {
	Form   config.FormConfig
	Input  tripForm
	Error  string
	Result *resultView
}

type pointView struct {
	Name string
	Lat  float64
	Lon  float64
	Link string
}

type resultView struct {
	*service.Itinerary
	Points      []pointView
	PDFHref     template.URL
	PDFName     string
	ExportError string
}

func newResultView(it *service.Itinerary) *resultView {
	v := &resultView{Itinerary: it, PDFName: pdf.Filename}
	for i, p := range it.Points {
		name := ""
		if i < len(it.Request.Destinations) {
			name = it.Request.Destinations[i]
		}
		v.Points = append(v.Points, pointView{Name: name, Lat: p.Lat, Lon: p.Lon, Link: osmLink(p)})
	}
	if it.PDF != nil {
		// Built from base64 output only, so it is safe to mark as a URL.
		v.PDFHref = template.URL("data:" + pdf.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(it.PDF.Bytes()))
	}
	if it.ExportErr != nil {
		v.ExportError = it.ExportErr.Error()
	}
	return v
}

func osmLink(p maps.Point) string {
	q := url.Values{}
	q.Set("mlat", fmt.Sprintf("%g", p.Lat))
	q.Set("mlon", fmt.Sprintf("%g", p.Lon))
	return fmt.Sprintf("https://www.openstreetmap.org/?%s#map=10/%g/%g", q.Encode(), p.Lat, p.Lon)
}
