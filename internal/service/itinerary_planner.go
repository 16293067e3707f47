package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"travelogue/internal/ai"
	"travelogue/internal/maps"
	"travelogue/internal/pdf"
	"travelogue/internal/report"
	"travelogue/internal/weather"
)

// ErrNoDestinations is the validation error for an empty or blank destination list.
var ErrNoDestinations = errors.New("no destinations")

// TripRequest carries the trip parameters for one run of the flow.
type TripRequest struct {
	Destinations []string
	NumDays      int
	Budget       float64
	NumPeople    int
	HasChildren  bool
	Preferences  []string
}

// Itinerary is everything one run produced.
// PDF is nil when ExportErr is set; the report is valid either way.
type Itinerary struct {
	Title     string
	Request   TripRequest
	Results   []report.DestinationResult
	Report    report.Report
	Points    []maps.Point
	PDF       *pdf.Document
	ExportErr error
}

// Planner runs the itinerary flow: per destination a Gemini call and a weather lookup,
// then report assembly, map points and PDF export.
type Planner struct {
	generator   ai.ItineraryGenerator
	weather     weather.Reporter
	points      maps.PointProvider
	callTimeout time.Duration
}

// NewPlanner creates a Planner. callTimeout bounds each itinerary call; zero means none.
func NewPlanner(generator ai.ItineraryGenerator, weather weather.Reporter, points maps.PointProvider, callTimeout time.Duration) *Planner {
	return &Planner{
		generator:   generator,
		weather:     weather,
		points:      points,
		callTimeout: callTimeout,
	}
}

// ParseDestinations splits newline-separated user input into trimmed, non-empty names.
func ParseDestinations(raw string) []string {
	return normalizeDestinations(strings.Split(raw, "\n"))
}

func normalizeDestinations(in []string) []string {
	out := make([]string, 0, len(in))
	for _, d := range in {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}

// JoinTitle builds the combined title used in the PDF heading.
func JoinTitle(destinations []string) string {
	return strings.Join(destinations, " & ")
}

// Plan runs the flow to completion. The only returned error is ErrNoDestinations.
// Provider failures are rendered inline and export failures land in Itinerary.ExportErr.
func (p *Planner) Plan(ctx context.Context, req TripRequest) (*Itinerary, error) {
	req.Destinations = normalizeDestinations(req.Destinations)
	if len(req.Destinations) == 0 {
		return nil, ErrNoDestinations
	}

	results := make([]report.DestinationResult, 0, len(req.Destinations))
	for _, dest := range req.Destinations {
		results = append(results, report.DestinationResult{
			Name:      dest,
			Itinerary: p.itinerary(ctx, dest, req),
			Weather:   p.weatherFor(ctx, dest),
		})
	}

	out := &Itinerary{
		Title:   JoinTitle(req.Destinations),
		Request: req,
		Results: results,
		Report:  report.Assemble(results),
		Points:  p.points.Points(ctx, req.Destinations),
	}

	doc, err := pdf.Export(out.Title, req.NumDays, out.Report)
	if err != nil {
		log.Printf("[PLANNER] action=export_pdf title=%q err=%v", out.Title, err)
		out.ExportErr = err
	} else {
		out.PDF = doc
	}
	return out, nil
}

func (p *Planner) itinerary(ctx context.Context, dest string, req TripRequest) report.Outcome {
	prompt := ai.BuildItineraryPrompt(dest, req.NumDays, req.Budget, req.NumPeople, req.HasChildren, req.Preferences)

	callCtx := ctx
	if p.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, p.callTimeout)
		defer cancel()
	}

	text, err := p.generator.GenerateItinerary(callCtx, prompt)
	if err != nil {
		log.Printf("[PLANNER] action=generate_itinerary destination=%q err=%v", dest, err)
		return report.Failure("Error generating itinerary", err)
	}
	return report.Success(text)
}

func (p *Planner) weatherFor(ctx context.Context, dest string) report.Outcome {
	summary, err := p.weather.Summary(ctx, dest)
	if err != nil {
		log.Printf("[PLANNER] action=fetch_weather destination=%q err=%v", dest, err)
		return report.Failure("Error fetching weather", err)
	}
	return report.Success(summary)
}
