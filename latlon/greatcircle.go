package latlon

import "math"

// GreatCircle computes along great-circle (orthodromic) paths on a sphere
// of the given radius. The zero value uses EarthRadius, so distances come
// out in metres.
type GreatCircle struct {
	Radius float64
}

func (g GreatCircle) radius() float64 {
	if g.Radius == 0 {
		return EarthRadius
	}
	return g.Radius
}

// Distance returns the haversine distance between the two points, in the
// units of the sphere radius.
func (g GreatCircle) Distance(from, to LatLon) float64 {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δφ := φ2 - φ1

	Δλ := toRadians(to.Lon - from.Lon)

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	δ := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return g.radius() * δ
}

// Bearing returns the initial bearing from the first point to the second,
// in degrees within [0,360). The bearing changes along the arc; see
// FinalBearing for the other end.
func (GreatCircle) Bearing(from, to LatLon) float64 {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)

	Δλ := toRadians(to.Lon - from.Lon)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)
	θ := math.Atan2(y, x)

	return wrap360(toDegrees(θ))
}

// DistanceAndBearing returns both in one pass, sharing the trig between
// the two formulas.
func (g GreatCircle) DistanceAndBearing(from, to LatLon) (float64, float64) {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δφ := φ2 - φ1

	Δλ := toRadians(to.Lon - from.Lon)

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	δ := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	d := g.radius() * δ

	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)
	θ := math.Atan2(y, x)

	return d, wrap360(toDegrees(θ))
}

// FinalBearing returns the bearing at the destination end of the arc, the
// reverse bearing turned half a circle.
func (g GreatCircle) FinalBearing(from, to LatLon) float64 {
	return wrap360(g.Bearing(to, from) + 180)
}

// Midpoint returns the point halfway along the arc between the two points.
func (GreatCircle) Midpoint(from, to LatLon) LatLon {
	φ1 := toRadians(from.Lat)
	λ1 := toRadians(from.Lon)
	φ2 := toRadians(to.Lat)
	Δλ := toRadians(to.Lon - from.Lon)

	bx := math.Cos(φ2) * math.Cos(Δλ)
	by := math.Cos(φ2) * math.Sin(Δλ)

	φm := math.Atan2(math.Sin(φ1)+math.Sin(φ2),
		math.Sqrt((math.Cos(φ1)+bx)*(math.Cos(φ1)+bx)+by*by))
	λm := λ1 + math.Atan2(by, math.Cos(φ1)+bx)
	λm = math.Mod(λm+3*π, 2*π) - π

	return LatLon{Lat: toDegrees(φm), Lon: toDegrees(λm)}
}

// Destination solves the direct problem: the point reached by travelling
// the given distance (in radius units) on the given initial bearing.
func (g GreatCircle) Destination(from LatLon, distance, bearing float64) LatLon {
	φ1 := toRadians(from.Lat)
	λ1 := toRadians(from.Lon)
	θ := toRadians(bearing)

	δ := distance / g.radius()

	φ2 := math.Asin(math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1), math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))
	λ2 = math.Mod(λ2+3*π, 2*π) - π

	return LatLon{Lat: toDegrees(φ2), Lon: toDegrees(λ2)}
}

// Intersection returns the point where the two paths, each given by a
// start point and an initial bearing, cross. The second value is false
// when no single crossing exists: coincident start points, paths along
// the same great circle, or an ambiguous geometry. Arguments of acos are
// not clamped; a near-antipodal geometry can surface as NaN coordinates.
func (GreatCircle) Intersection(p1 LatLon, bearing1 float64, p2 LatLon, bearing2 float64) (LatLon, bool) {
	φ1 := toRadians(p1.Lat)
	λ1 := toRadians(p1.Lon)
	φ2 := toRadians(p2.Lat)
	λ2 := toRadians(p2.Lon)
	θ13 := toRadians(bearing1)
	θ23 := toRadians(bearing2)
	Δφ := φ2 - φ1
	Δλ := λ2 - λ1

	δ12 := 2 * math.Asin(math.Sqrt(math.Sin(Δφ/2)*math.Sin(Δφ/2)+
		math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)))
	if δ12 == 0 {
		return LatLon{}, false
	}

	θa := math.Acos((math.Sin(φ2) - math.Sin(φ1)*math.Cos(δ12)) / (math.Sin(δ12) * math.Cos(φ1)))
	θb := math.Acos((math.Sin(φ1) - math.Sin(φ2)*math.Cos(δ12)) / (math.Sin(δ12) * math.Cos(φ2)))

	var θ12, θ21 float64
	if math.Sin(Δλ) > 0 {
		θ12 = θa
		θ21 = 2*π - θb
	} else {
		θ12 = 2*π - θa
		θ21 = θb
	}

	α1 := math.Mod(θ13-θ12+π, 2*π) - π // angle 2-1-3
	α2 := math.Mod(θ21-θ23+π, 2*π) - π // angle 1-2-3

	if math.Sin(α1) == 0 && math.Sin(α2) == 0 {
		return LatLon{}, false // infinite intersections
	}
	if math.Sin(α1)*math.Sin(α2) < 0 {
		return LatLon{}, false // ambiguous intersection
	}

	α3 := math.Acos(-math.Cos(α1)*math.Cos(α2) + math.Sin(α1)*math.Sin(α2)*math.Cos(δ12))
	δ13 := math.Atan2(math.Sin(δ12)*math.Sin(α1)*math.Sin(α2), math.Cos(α2)+math.Cos(α1)*math.Cos(α3))
	φ3 := math.Asin(math.Sin(φ1)*math.Cos(δ13) + math.Cos(φ1)*math.Sin(δ13)*math.Cos(θ13))
	Δλ13 := math.Atan2(math.Sin(θ13)*math.Sin(δ13)*math.Cos(φ1), math.Cos(δ13)-math.Sin(φ1)*math.Sin(φ3))
	λ3 := λ1 + Δλ13
	λ3 = math.Mod(λ3+3*π, 2*π) - π

	return LatLon{Lat: toDegrees(φ3), Lon: toDegrees(λ3)}, true
}

// CrossTrackDistance returns the signed distance from the point to the
// great circle through pathStart and pathEnd: negative left of the path,
// positive right of it.
func (g GreatCircle) CrossTrackDistance(point, pathStart, pathEnd LatLon) float64 {
	r := g.radius()

	δ13 := g.Distance(pathStart, point) / r
	θ13 := toRadians(g.Bearing(pathStart, point))
	θ12 := toRadians(g.Bearing(pathStart, pathEnd))

	return math.Asin(math.Sin(δ13)*math.Sin(θ13-θ12)) * r
}
