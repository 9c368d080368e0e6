package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/ff"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/shashank-neo/GeoLib/dms"
	"github.com/shashank-neo/GeoLib/latlon"
)

type Waypoint struct {
	Name  string `json:"name" yaml:"name"`
	Point string `json:"point" yaml:"point"`
}

type Route struct {
	Name      string     `json:"name" yaml:"name"`
	Waypoints []Waypoint `json:"waypoints" yaml:"waypoints"`
}

type Leg struct {
	From     string  `json:"from" yaml:"from"`
	To       string  `json:"to" yaml:"to"`
	Distance float64 `json:"distance" yaml:"distance"`
	Bearing  float64 `json:"bearing" yaml:"bearing"`
	Compass  string  `json:"compass" yaml:"compass"`
}

type Report struct {
	Route string  `json:"route" yaml:"route"`
	Legs  []Leg   `json:"legs" yaml:"legs"`
	Total float64 `json:"total" yaml:"total"`
}

func loadRoute(path string) (*Route, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("route file: %w", err)
	}

	var r Route
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &r)
	default:
		err = json.Unmarshal(content, &r)
	}
	if err != nil {
		return nil, fmt.Errorf("route file '%s': %w", path, err)
	}
	return &r, nil
}

// legs walks the waypoints pairwise. A route with fewer than two
// waypoints has no legs.
func (r *Route) legs(path latlon.Path) ([]Leg, float64, error) {
	points := make([]latlon.LatLon, len(r.Waypoints))
	for i, w := range r.Waypoints {
		p, err := parsePoint(w.Point)
		if err != nil {
			return nil, 0, fmt.Errorf("waypoint '%s': %w", w.Name, err)
		}
		points[i] = p
	}

	legs := []Leg{}
	total := 0.0
	for i := 1; i < len(points); i++ {
		d, b := path.DistanceAndBearing(points[i-1], points[i])
		legs = append(legs, Leg{
			From:     r.Waypoints[i-1].Name,
			To:       r.Waypoints[i].Name,
			Distance: d,
			Bearing:  b,
			Compass:  dms.CompassPoint(b, 3),
		})
		total += d
	}
	return legs, total, nil
}

func runRoute(args []string) error {
	fs := flag.NewFlagSet("geod route", flag.ExitOnError)
	var (
		file       = fs.String("file", "", "route file, json or yaml")
		radius     = fs.Float64("radius", latlon.EarthRadius, "sphere radius, sets the distance unit")
		rhumb      = fs.Bool("rhumb", false, "rhumb line instead of great circle")
		output     = fs.String("o", "text", "output: text, json or yaml")
		cpuprofile = fs.Bool("cpuprofile", false, "write a cpu profile")
		verbose    = fs.Bool("verbose", false, "debug logs")
	)
	ff.Parse(fs, args, ff.WithEnvVarPrefix("GEOD"))
	setupLog(*verbose)

	if *cpuprofile {
		defer profile.Start().Stop()
	}

	r, err := loadRoute(*file)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"route":     r.Name,
		"waypoints": len(r.Waypoints),
	}).Debug("route loaded")

	legs, total, err := r.legs(pathModel(*rhumb, *radius))
	if err != nil {
		return err
	}

	report := Report{Route: r.Name, Legs: legs, Total: total}
	switch *output {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		out, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	case "text":
		for _, leg := range legs {
			fmt.Printf("%-20s %-20s %12.2f %7.2f° %-3s\n", leg.From, leg.To, leg.Distance, leg.Bearing, leg.Compass)
		}
		fmt.Printf("total %.2f\n", total)
		return nil
	default:
		return fmt.Errorf("unknown output '%s'", *output)
	}
}
