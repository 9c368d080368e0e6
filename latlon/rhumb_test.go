package latlon

import (
	"math"
	"testing"
)

func TestRhumbDistance(t *testing.T) {
	dover := LatLon{Lat: 51.127, Lon: 1.338}
	calais := LatLon{Lat: 50.964, Lon: 1.853}
	d := RhumbLine{}.Distance(dover, calais)
	if math.Round(d) != 40308 {
		t.Errorf("{%f,%f}.Distance({%f,%f}) = %f; want 40308", dover.Lat, dover.Lon, calais.Lat, calais.Lon, d)
	}
}

func TestRhumbBearing(t *testing.T) {
	dover := LatLon{Lat: 51.127, Lon: 1.338}
	calais := LatLon{Lat: 50.964, Lon: 1.853}
	b := RhumbLine{}.Bearing(dover, calais)
	if math.Round(b*10)/10 != 116.7 {
		t.Errorf("{%f,%f}.Bearing({%f,%f}) = %f; want 116.7", dover.Lat, dover.Lon, calais.Lat, calais.Lon, b)
	}
}

func TestRhumbDistanceAndBearing(t *testing.T) {
	dover := LatLon{Lat: 51.127, Lon: 1.338}
	calais := LatLon{Lat: 50.964, Lon: 1.853}
	d, b := RhumbLine{}.DistanceAndBearing(dover, calais)
	if d != (RhumbLine{}).Distance(dover, calais) || b != (RhumbLine{}).Bearing(dover, calais) {
		t.Errorf("DistanceAndBearing = %f, %f; want the values of Distance and Bearing", d, b)
	}
}

func TestRhumbDestination(t *testing.T) {
	dover := LatLon{Lat: 51.127, Lon: 1.338}
	p := RhumbLine{}.Destination(dover, 40300, 116.7)
	if math.Round(p.Lat*10000)/10000 != 50.9642 {
		t.Errorf("Destination.Lat = %f; want 50.9642", p.Lat)
	}
	if math.Round(p.Lon*10000)/10000 != 1.853 {
		t.Errorf("Destination.Lon = %f; want 1.8530", p.Lon)
	}
	if got := p.Format("d", -1); got != "50.9642°N,001.8530°E" {
		t.Errorf("Destination = %q; want 50.9642°N,001.8530°E", got)
	}
}

func TestRhumbMidpoint(t *testing.T) {
	dover := LatLon{Lat: 51.127, Lon: 1.338}
	calais := LatLon{Lat: 50.964, Lon: 1.853}
	m := RhumbLine{}.Midpoint(dover, calais)
	if got := m.Format("d", -1); got != "51.0455°N,001.5957°E" {
		t.Errorf("Midpoint = %q; want 51.0455°N,001.5957°E", got)
	}
}

func TestRhumbEastWest(t *testing.T) {
	p1 := LatLon{Lat: 10, Lon: 0}
	p2 := LatLon{Lat: 10, Lon: 10}
	b := RhumbLine{}.Bearing(p1, p2)
	if math.Abs(b-90) > 1e-9 {
		t.Errorf("Bearing along the 10° parallel = %f; want 90", b)
	}
	d := RhumbLine{}.Distance(p1, p2)
	if math.Abs(d-1095056) > 10 {
		t.Errorf("Distance along the 10° parallel = %f; want about 1095056", d)
	}
}

func TestRhumbAntimeridian(t *testing.T) {
	p1 := LatLon{Lat: 5, Lon: 179}
	p2 := LatLon{Lat: 5, Lon: -179}
	d := RhumbLine{}.Distance(p1, p2)
	if math.Abs(d-221544) > 10 {
		t.Errorf("Distance(179°E, 179°W) = %f; want about 221544 (the short way)", d)
	}
	b := RhumbLine{}.Bearing(p1, p2)
	if math.Abs(b-90) > 1e-9 {
		t.Errorf("Bearing(179°E, 179°W) = %f; want 90 (the short way)", b)
	}
}

func TestRhumbDestinationPastPole(t *testing.T) {
	p1 := LatLon{Lat: 89.9, Lon: 0}
	d := EarthRadius * toRadians(1)
	p2 := RhumbLine{}.Destination(p1, d, 0)
	if math.Abs(p2.Lat-89.1) > 1e-6 {
		t.Errorf("Destination past the pole: Lat = %f; want 89.1", p2.Lat)
	}
	if p2.Lon != 0 {
		t.Errorf("Destination past the pole: Lon = %f; want 0", p2.Lon)
	}
}

func TestRhumbMidpointParallel(t *testing.T) {
	p1 := LatLon{Lat: 10, Lon: 0}
	p2 := LatLon{Lat: 10, Lon: 10}
	m := RhumbLine{}.Midpoint(p1, p2)
	if math.Abs(m.Lat-10) > 1e-9 || math.Abs(m.Lon-5) > 1e-9 {
		t.Errorf("Midpoint along the 10° parallel = {%f,%f}; want {10,5}", m.Lat, m.Lon)
	}
}

func TestRhumbRadius(t *testing.T) {
	dover := LatLon{Lat: 51.127, Lon: 1.338}
	calais := LatLon{Lat: 50.964, Lon: 1.853}
	d := RhumbLine{Radius: 3959}.Distance(dover, calais)
	if math.Round(d*100)/100 != 25.05 {
		t.Errorf("Distance on a 3959 mile sphere = %f; want 25.05", d)
	}
}
