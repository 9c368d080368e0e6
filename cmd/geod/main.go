package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/peterbourgon/ff"
	log "github.com/sirupsen/logrus"

	"github.com/shashank-neo/GeoLib/dms"
	"github.com/shashank-neo/GeoLib/latlon"
)

const usage = `usage: geod <command> [flags]

commands:
  inverse    distance, bearings and midpoint between two points
  direct     destination from a point, a distance and a bearing
  intersect  intersection of two paths given by point and bearing
  xtrack     signed distance from a point to a great-circle path
  route      leg report for a route file (json or yaml)
  parse      parse coordinate strings to decimal degrees
  format     format decimal degrees as d, dm or dms
  compass    compass point names for bearings

flags are listed by 'geod <command> -h', and every flag can also be
set through the environment as GEOD_<FLAG>.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "inverse":
		err = runInverse(os.Args[2:])
	case "direct":
		err = runDirect(os.Args[2:])
	case "intersect":
		err = runIntersect(os.Args[2:])
	case "xtrack":
		err = runXtrack(os.Args[2:])
	case "route":
		err = runRoute(os.Args[2:])
	case "parse":
		err = runParse(os.Args[2:])
	case "format":
		err = runFormat(os.Args[2:])
	case "compass":
		err = runCompass(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func setupLog(verbose bool) {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// parsePoint reads a "lat,lon" pair. Each half goes through dms.Parse,
// so decimal degrees and sexagesimal strings both work.
func parsePoint(s string) (latlon.LatLon, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return latlon.LatLon{}, fmt.Errorf("point '%s': want \"lat,lon\"", s)
	}
	lat, err := dms.Parse(parts[0])
	if err != nil {
		return latlon.LatLon{}, fmt.Errorf("point '%s': %w", s, err)
	}
	lon, err := dms.Parse(parts[1])
	if err != nil {
		return latlon.LatLon{}, fmt.Errorf("point '%s': %w", s, err)
	}
	return latlon.LatLon{Lat: lat, Lon: lon}, nil
}

func pathModel(rhumb bool, radius float64) latlon.Path {
	if rhumb {
		return latlon.RhumbLine{Radius: radius}
	}
	return latlon.GreatCircle{Radius: radius}
}

func runInverse(args []string) error {
	fs := flag.NewFlagSet("geod inverse", flag.ExitOnError)
	var (
		from      = fs.String("from", "", "start point \"lat,lon\"")
		to        = fs.String("to", "", "end point \"lat,lon\"")
		radius    = fs.Float64("radius", latlon.EarthRadius, "sphere radius, sets the distance unit")
		rhumb     = fs.Bool("rhumb", false, "rhumb line instead of great circle")
		format    = fs.String("format", "dms", "coordinate format: d, dm or dms")
		precision = fs.Int("precision", -1, "decimal places, -1 for the format default")
		verbose   = fs.Bool("verbose", false, "debug logs")
	)
	ff.Parse(fs, args, ff.WithEnvVarPrefix("GEOD"))
	setupLog(*verbose)

	p1, err := parsePoint(*from)
	if err != nil {
		return err
	}
	p2, err := parsePoint(*to)
	if err != nil {
		return err
	}

	path := pathModel(*rhumb, *radius)
	log.Debugf("%T from {%f,%f} to {%f,%f}", path, p1.Lat, p1.Lon, p2.Lat, p2.Lon)

	d, b := path.DistanceAndBearing(p1, p2)
	fmt.Printf("distance %.3f\n", d)
	fmt.Printf("bearing  %s %s\n", dms.Bearing(b, *format, *precision), dms.CompassPoint(b, 3))
	if gc, ok := path.(latlon.GreatCircle); ok {
		fmt.Printf("final    %s\n", dms.Bearing(gc.FinalBearing(p1, p2), *format, *precision))
	}
	fmt.Printf("midpoint %s\n", path.Midpoint(p1, p2).Format(*format, *precision))
	return nil
}

func runDirect(args []string) error {
	fs := flag.NewFlagSet("geod direct", flag.ExitOnError)
	var (
		from      = fs.String("from", "", "start point \"lat,lon\"")
		distance  = fs.Float64("distance", 0, "distance to travel, in the radius unit")
		bearing   = fs.Float64("bearing", 0, "initial bearing in degrees")
		radius    = fs.Float64("radius", latlon.EarthRadius, "sphere radius, sets the distance unit")
		rhumb     = fs.Bool("rhumb", false, "rhumb line instead of great circle")
		format    = fs.String("format", "dms", "coordinate format: d, dm or dms")
		precision = fs.Int("precision", -1, "decimal places, -1 for the format default")
		verbose   = fs.Bool("verbose", false, "debug logs")
	)
	ff.Parse(fs, args, ff.WithEnvVarPrefix("GEOD"))
	setupLog(*verbose)

	p1, err := parsePoint(*from)
	if err != nil {
		return err
	}

	path := pathModel(*rhumb, *radius)
	log.Debugf("%T from {%f,%f} distance %f bearing %f", path, p1.Lat, p1.Lon, *distance, *bearing)

	fmt.Println(path.Destination(p1, *distance, *bearing).Format(*format, *precision))
	return nil
}

func runIntersect(args []string) error {
	fs := flag.NewFlagSet("geod intersect", flag.ExitOnError)
	var (
		from1     = fs.String("p1", "", "first point \"lat,lon\"")
		bearing1  = fs.Float64("b1", 0, "bearing from the first point, in degrees")
		from2     = fs.String("p2", "", "second point \"lat,lon\"")
		bearing2  = fs.Float64("b2", 0, "bearing from the second point, in degrees")
		format    = fs.String("format", "dms", "coordinate format: d, dm or dms")
		precision = fs.Int("precision", -1, "decimal places, -1 for the format default")
		verbose   = fs.Bool("verbose", false, "debug logs")
	)
	ff.Parse(fs, args, ff.WithEnvVarPrefix("GEOD"))
	setupLog(*verbose)

	p1, err := parsePoint(*from1)
	if err != nil {
		return err
	}
	p2, err := parsePoint(*from2)
	if err != nil {
		return err
	}

	p, ok := latlon.GreatCircle{}.Intersection(p1, *bearing1, p2, *bearing2)
	if !ok {
		fmt.Println("no unique intersection")
		return nil
	}
	fmt.Println(p.Format(*format, *precision))
	return nil
}

func runXtrack(args []string) error {
	fs := flag.NewFlagSet("geod xtrack", flag.ExitOnError)
	var (
		point     = fs.String("point", "", "point off the path \"lat,lon\"")
		pathStart = fs.String("start", "", "path start \"lat,lon\"")
		pathEnd   = fs.String("end", "", "path end \"lat,lon\"")
		radius    = fs.Float64("radius", latlon.EarthRadius, "sphere radius, sets the distance unit")
		verbose   = fs.Bool("verbose", false, "debug logs")
	)
	ff.Parse(fs, args, ff.WithEnvVarPrefix("GEOD"))
	setupLog(*verbose)

	p, err := parsePoint(*point)
	if err != nil {
		return err
	}
	start, err := parsePoint(*pathStart)
	if err != nil {
		return err
	}
	end, err := parsePoint(*pathEnd)
	if err != nil {
		return err
	}

	d := latlon.GreatCircle{Radius: *radius}.CrossTrackDistance(p, start, end)
	side := "right of the path"
	if d < 0 {
		side = "left of the path"
	} else if d == 0 {
		side = "on the path"
	}
	fmt.Printf("%.3f %s\n", d, side)
	return nil
}

func runParse(args []string) error {
	fs := flag.NewFlagSet("geod parse", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "debug logs")
	ff.Parse(fs, args, ff.WithEnvVarPrefix("GEOD"))
	setupLog(*verbose)

	if len(fs.Args()) == 0 {
		return fmt.Errorf("no coordinates given")
	}
	for _, arg := range fs.Args() {
		v, err := dms.Parse(arg)
		if err != nil {
			log.Warnf("'%s': %v", arg, err)
			continue
		}
		fmt.Println(strconv.FormatFloat(v, 'f', -1, 64))
	}
	return nil
}

func runFormat(args []string) error {
	fs := flag.NewFlagSet("geod format", flag.ExitOnError)
	var (
		lat       = fs.Bool("lat", false, "format as a latitude with N/S")
		lon       = fs.Bool("lon", false, "format as a longitude with E/W")
		bearing   = fs.Bool("bearing", false, "format as a bearing in [0,360)")
		format    = fs.String("format", "dms", "coordinate format: d, dm or dms")
		precision = fs.Int("precision", -1, "decimal places, -1 for the format default")
		verbose   = fs.Bool("verbose", false, "debug logs")
	)
	ff.Parse(fs, args, ff.WithEnvVarPrefix("GEOD"))
	setupLog(*verbose)

	if len(fs.Args()) == 0 {
		return fmt.Errorf("no degree values given")
	}
	for _, arg := range fs.Args() {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("'%s': %w", arg, err)
		}
		switch {
		case *lat:
			fmt.Println(dms.Latitude(v, *format, *precision))
		case *lon:
			fmt.Println(dms.Longitude(v, *format, *precision))
		case *bearing:
			fmt.Println(dms.Bearing(v, *format, *precision))
		default:
			s, err := dms.Format(v, *format, *precision)
			if err != nil {
				return err
			}
			fmt.Println(s)
		}
	}
	return nil
}

func runCompass(args []string) error {
	fs := flag.NewFlagSet("geod compass", flag.ExitOnError)
	var (
		precision = fs.Int("precision", 3, "compass rose precision: 1 cardinal, 2 intercardinal, 3 secondary")
		verbose   = fs.Bool("verbose", false, "debug logs")
	)
	ff.Parse(fs, args, ff.WithEnvVarPrefix("GEOD"))
	setupLog(*verbose)

	if len(fs.Args()) == 0 {
		return fmt.Errorf("no bearings given")
	}
	for _, arg := range fs.Args() {
		b, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("'%s': %w", arg, err)
		}
		fmt.Println(dms.CompassPoint(b, *precision))
	}
	return nil
}
