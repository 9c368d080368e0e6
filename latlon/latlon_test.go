package latlon

import "testing"

func TestWrap360(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 359},
		{361, 1},
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{720, 0},
		{-721, 359},
	}
	for _, tt := range tests {
		if got := wrap360(tt.in); got != tt.want {
			t.Errorf("wrap360(%f) = %f; want %f", tt.in, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	bangalore := LatLon{Lat: 12.97194, Lon: 77.59369}
	if got := bangalore.String(); got != "12°58′19″N,077°35′37″E" {
		t.Errorf("String() = %q; want 12°58′19″N,077°35′37″E", got)
	}
}

func TestFormat(t *testing.T) {
	bangalore := LatLon{Lat: 12.97194, Lon: 77.59369}
	tests := []struct {
		format    string
		precision int
		want      string
	}{
		{"d", 4, "12.9719°N,077.5937°E"},
		{"d", 2, "12.97°N,077.59°E"},
		{"d", 0, "13°N,078°E"},
		{"", -1, "12°58′19″N,077°35′37″E"},
		{"x", -1, "–,–"},
	}
	for _, tt := range tests {
		if got := bangalore.Format(tt.format, tt.precision); got != tt.want {
			t.Errorf("Format(%q, %d) = %q; want %q", tt.format, tt.precision, got, tt.want)
		}
	}

	santiago := LatLon{Lat: -33.8688, Lon: -70.6693}
	if got := santiago.Format("d", 2); got != "33.87°S,070.67°W" {
		t.Errorf("Format(d, 2) = %q; want 33.87°S,070.67°W", got)
	}
}
