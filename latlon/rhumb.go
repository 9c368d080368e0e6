package latlon

import "math"

// RhumbLine computes along rhumb lines (loxodromes), paths of constant
// bearing, on a sphere of the given radius. The zero value uses
// EarthRadius. Rhumb lines are longer than great-circle arcs but steer a
// single course the whole way.
type RhumbLine struct {
	Radius float64
}

func (r RhumbLine) radius() float64 {
	if r.Radius == 0 {
		return EarthRadius
	}
	return r.Radius
}

// Distance returns the length of the rhumb line between the two points,
// Pythagoras on the Mercator projection with a latitude stretch factor.
func (r RhumbLine) Distance(from, to LatLon) float64 {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δφ := φ2 - φ1

	Δλ := toRadians(math.Abs(to.Lon - from.Lon))
	// over 180° take the shorter line across the antimeridian
	if math.Abs(Δλ) > π {
		if Δλ > 0 {
			Δλ = -(2*π - Δλ)
		} else {
			Δλ = 2*π + Δλ
		}
	}

	// q is the Mercator stretch factor, ill-conditioned (0/0) on an
	// east-west line, where cos φ1 is its limit
	Δψ := math.Log(math.Tan(φ2/2+π/4) / math.Tan(φ1/2+π/4))
	q := math.Cos(φ1)
	if math.Abs(Δψ) > 10e-12 {
		q = Δφ / Δψ
	}

	δ := math.Sqrt(Δφ*Δφ + q*q*Δλ*Δλ)

	return δ * r.radius()
}

// Bearing returns the constant bearing of the rhumb line from the first
// point to the second, in degrees within [0,360).
func (RhumbLine) Bearing(from, to LatLon) float64 {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)

	Δλ := toRadians(to.Lon - from.Lon)
	if math.Abs(Δλ) > π {
		if Δλ > 0 {
			Δλ = -(2*π - Δλ)
		} else {
			Δλ = 2*π + Δλ
		}
	}

	Δψ := math.Log(math.Tan(φ2/2+π/4) / math.Tan(φ1/2+π/4))
	θ := math.Atan2(Δλ, Δψ)

	return wrap360(toDegrees(θ))
}

// DistanceAndBearing returns both in one pass, sharing the Mercator terms.
func (r RhumbLine) DistanceAndBearing(from, to LatLon) (float64, float64) {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δφ := φ2 - φ1

	Δλ := toRadians(to.Lon - from.Lon)
	if math.Abs(Δλ) > π {
		if Δλ > 0 {
			Δλ = -(2*π - Δλ)
		} else {
			Δλ = 2*π + Δλ
		}
	}

	Δψ := math.Log(math.Tan(φ2/2+π/4) / math.Tan(φ1/2+π/4))
	q := math.Cos(φ1)
	if math.Abs(Δψ) > 10e-12 {
		q = Δφ / Δψ
	}

	d := math.Sqrt(Δφ*Δφ+q*q*Δλ*Δλ) * r.radius()
	θ := math.Atan2(Δλ, Δψ)

	return d, wrap360(toDegrees(θ))
}

// Midpoint returns the loxodromic midpoint, halfway along the rhumb line.
func (RhumbLine) Midpoint(from, to LatLon) LatLon {
	φ1 := toRadians(from.Lat)
	λ1 := toRadians(from.Lon)
	φ2 := toRadians(to.Lat)
	λ2 := toRadians(to.Lon)

	if math.Abs(λ2-λ1) > π {
		λ1 += 2 * π
	}

	φm := (φ1 + φ2) / 2
	f1 := math.Tan(π/4 + φ1/2)
	f2 := math.Tan(π/4 + φ2/2)
	fm := math.Tan(π/4 + φm/2)
	λm := ((λ2-λ1)*math.Log(fm) + λ1*math.Log(f2) - λ2*math.Log(f1)) / math.Log(f2/f1)

	// along a parallel the formula is 0/0, the mean longitude is exact
	if math.IsNaN(λm) || math.IsInf(λm, 0) {
		λm = (λ1 + λ2) / 2
	}

	λm = math.Mod(λm+3*π, 2*π) - π

	return LatLon{Lat: toDegrees(φm), Lon: toDegrees(λm)}
}

// Destination returns the point reached by following the given bearing
// for the given distance (in radius units).
func (r RhumbLine) Destination(from LatLon, distance, bearing float64) LatLon {
	φ1 := toRadians(from.Lat)
	λ1 := toRadians(from.Lon)
	θ := toRadians(bearing)

	δ := distance / r.radius()

	Δφ := δ * math.Cos(θ)
	φ2 := φ1 + Δφ

	// normalise latitude if the line runs past a pole
	if math.Abs(φ2) > π/2 {
		if φ2 > 0 {
			φ2 = π - φ2
		} else {
			φ2 = -π - φ2
		}
	}

	Δψ := math.Log(math.Tan(φ2/2+π/4) / math.Tan(φ1/2+π/4))
	q := math.Cos(φ1)
	if math.Abs(Δψ) > 10e-12 {
		q = Δφ / Δψ
	}

	Δλ := δ * math.Sin(θ) / q
	λ2 := λ1 + Δλ
	λ2 = math.Mod(λ2+3*π, 2*π) - π

	return LatLon{Lat: toDegrees(φ2), Lon: toDegrees(λ2)}
}
