package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"travelogue/internal/config"
	"travelogue/internal/pdf"
	"travelogue/internal/service"
)

func main() {
	days := flag.Int("days", 0, "number of days")
	budget := flag.Float64("budget", 0, "budget in dollars")
	people := flag.Int("people", 0, "number of people")
	children := flag.Bool("children", false, "children included")
	prefs := flag.String("prefs", "", "comma separated preferences, e.g. \"Adventure,Food & Drink\"")
	out := flag.String("out", pdf.Filename, "PDF output path")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	planner, closeFn, err := service.NewPlannerFromConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize planner: %v", err)
	}
	defer closeFn()

	var preferences []string
	for _, p := range strings.Split(*prefs, ",") {
		if p = strings.TrimSpace(p); p != "" {
			preferences = append(preferences, p)
		}
	}

	// Destinations come from the arguments, or one per line on stdin.
	destinations := flag.Args()
	if len(destinations) == 0 {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("read stdin: %v", err)
		}
		destinations = service.ParseDestinations(string(raw))
	}

	req := service.TripRequest{
		Destinations: destinations,
		NumDays:      *days,
		Budget:       *budget,
		NumPeople:    *people,
		HasChildren:  *children,
		Preferences:  preferences,
	}.WithFormDefaults(cfg.Form)

	it, err := planner.Plan(ctx, req)
	if errors.Is(err, service.ErrNoDestinations) {
		log.Fatal("Please enter at least one destination.")
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("## Your Itinerary:")
	fmt.Println(it.Report.ItineraryMarkdown)
	fmt.Println("## Destination Weather:")
	fmt.Println(it.Report.WeatherSummary)
	fmt.Println()
	for i, p := range it.Points {
		fmt.Printf("%s: lat=%.4f lon=%.4f\n", it.Request.Destinations[i], p.Lat, p.Lon)
	}

	if it.ExportErr != nil {
		log.Fatalf("PDF export failed: %v", it.ExportErr)
	}
	if err := os.WriteFile(*out, it.PDF.Bytes(), 0o644); err != nil {
		log.Fatalf("write pdf: %v", err)
	}
	fmt.Printf("\nPDF written to %s\n", *out)
}
