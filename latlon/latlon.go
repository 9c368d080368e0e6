// Package latlon provides great-circle and rhumb-line geodesy on a
// spherical Earth model: distances, bearings, midpoints, destination
// points, path intersections and cross-track distances over decimal
// degree coordinates.
package latlon

import (
	"math"

	"github.com/shashank-neo/GeoLib/dms"
)

const π = math.Pi

// EarthRadius is the mean Earth radius in metres, the sphere every path
// model defaults to.
const EarthRadius = 6371e3

// Path is a path model over the sphere. GreatCircle follows the shortest
// arc between two points, RhumbLine a line of constant bearing.
type Path interface {
	Distance(from, to LatLon) float64
	Bearing(from, to LatLon) float64
	DistanceAndBearing(from, to LatLon) (float64, float64)
	Midpoint(from, to LatLon) LatLon
	Destination(from LatLon, distance, bearing float64) LatLon
}

// LatLon is a point in decimal degrees. The type does no range checking;
// out-of-range values pass through to the formulas unchanged.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// String renders the point as degrees/minutes/seconds,
// "12°58′19″N,077°35′37″E".
func (ll LatLon) String() string {
	return ll.Format("dms", -1)
}

// Format renders the point in the given sexagesimal format (d, dm or dms,
// empty meaning dms) at the given precision, negative meaning the format's
// default. Rendering is total: an unknown format yields placeholder dashes
// rather than an error.
func (ll LatLon) Format(format string, precision int) string {
	if format == "" {
		format = "dms"
	}
	return dms.Latitude(ll.Lat, format, precision) + "," + dms.Longitude(ll.Lon, format, precision)
}

func toRadians(a float64) float64 {
	return a * π / 180.0
}

func toDegrees(a float64) float64 {
	return a * 180.0 / π
}

func wrap360(d float64) float64 {
	if 0.0 <= d && d < 360.0 {
		return d
	}
	return math.Mod(math.Mod(d, 360.0)+360.0, 360.0)
}
