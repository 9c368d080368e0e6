// Package dms converts between decimal degrees and sexagesimal
// degrees/minutes/seconds notation, in the movable-type style: parsing is
// permissive about separators, formatting is fixed-width with ° ′ ″
// symbols and N/S/E/W suffixes.
package dms

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// placeholder marks a value that could not be rendered, U+2013.
const placeholder = "–"

var (
	tokenSplit      = regexp.MustCompile(`[^0-9.,]+`)
	trailingCompass = regexp.MustCompile(`(?i)[nsew]$`)
	southOrWest     = regexp.MustCompile(`(?i)[ws]$`)
)

// Parse converts a coordinate string to decimal degrees. It accepts signed
// decimal degrees ("-40.7486") as well as degrees, degrees/minutes or
// degrees/minutes/seconds in any separator style ("40°44′55″N",
// "40 44 55", "40° 44.9167W"). A leading minus or a trailing S or W makes
// the result negative.
func Parse(text string) (float64, error) {
	s := strings.TrimSpace(text)

	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return v, nil
	}

	body := strings.TrimPrefix(s, "-")
	body = trailingCompass.ReplaceAllString(body, "")

	tokens := tokenSplit.Split(body, -1)
	if n := len(tokens); n > 0 && tokens[n-1] == "" {
		tokens = tokens[:n-1]
	}

	vals := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, fmt.Errorf("dms: cannot parse %q", text)
		}
		vals[i] = v
	}

	var deg float64
	switch len(vals) {
	case 3:
		deg = vals[0] + vals[1]/60 + vals[2]/3600
	case 2:
		deg = vals[0] + vals[1]/60
	case 1:
		deg = vals[0]
	default:
		return 0, fmt.Errorf("dms: cannot parse %q", text)
	}

	if strings.HasPrefix(s, "-") || southOrWest.MatchString(s) {
		deg = -deg
	}
	return deg, nil
}

// Format renders decimal degrees in the given format: "d" (decimal
// degrees), "dm" (degrees and decimal minutes) or "dms" (degrees, minutes
// and decimal seconds), with the long aliases "deg", "deg+min" and
// "deg+min+sec" also accepted. A negative precision selects the format's
// default (4, 2 and 0 decimals respectively). The sign is discarded;
// Latitude, Longitude and Bearing restore it as a suffix or a wrap.
func Format(degrees float64, format string, precision int) (string, error) {
	deg := math.Abs(degrees)

	switch strings.ToLower(format) {
	case "d", "deg":
		if precision < 0 {
			precision = 4
		}
		p := math.Pow(10, float64(precision))
		d := math.Round(deg*p) / p
		return pad(d, 3, precision) + "°", nil

	case "dm", "deg+min":
		if precision < 0 {
			precision = 2
		}
		// round on the minutes value before decomposing, so that
		// 59.999′ carries into the degrees
		p := math.Pow(10, float64(precision))
		min := math.Round(deg*60*p) / p
		d := math.Floor(min / 60)
		m := math.Mod(min, 60)
		return pad(d, 3, 0) + "°" + pad(m, 2, precision) + "′", nil

	case "dms", "deg+min+sec":
		if precision < 0 {
			precision = 0
		}
		// same: round on the seconds value, decompose afterwards
		p := math.Pow(10, float64(precision))
		sec := math.Round(deg*3600*p) / p
		d := math.Floor(sec / 3600)
		m := math.Mod(math.Floor(sec/60), 60)
		s := math.Mod(sec, 60)
		return pad(d, 3, 0) + "°" + pad(m, 2, 0) + "′" + pad(s, 2, precision) + "″", nil
	}

	return "", fmt.Errorf("dms: unknown format %q", format)
}

// pad renders v with the integer part zero-padded to the given number of
// digits.
func pad(v float64, digits, precision int) string {
	w := digits
	if precision > 0 {
		w += 1 + precision
	}
	return fmt.Sprintf("%0*.*f", w, precision, v)
}

// Latitude renders degrees of latitude with an N or S suffix,
// "40°44′55″N". Unknown formats yield the placeholder.
func Latitude(degrees float64, format string, precision int) string {
	s, err := Format(degrees, format, precision)
	if err != nil {
		return placeholder
	}
	hemi := "N"
	if degrees < 0 {
		hemi = "S"
	}
	// latitude is two-digit; drop the leading pad digit
	return s[1:] + hemi
}

// Longitude renders degrees of longitude with an E or W suffix,
// "077°35′37″E".
func Longitude(degrees float64, format string, precision int) string {
	s, err := Format(degrees, format, precision)
	if err != nil {
		return placeholder
	}
	hemi := "E"
	if degrees < 0 {
		hemi = "W"
	}
	return s + hemi
}

// Bearing renders a bearing wrapped into [0,360). A value that rounds up
// to a full circle comes out as 0°, not 360°: the rendered string is
// patched, first occurrence only, keeping the wrap boundary closed without
// re-rounding.
func Bearing(degrees float64, format string, precision int) string {
	s, err := Format(wrap360(degrees), format, precision)
	if err != nil {
		return placeholder
	}
	return strings.Replace(s, "360", "0", 1)
}

var compassRose = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CompassPoint names the compass point closest to the bearing. Precision
// 1, 2 or 3 selects the 4-, 8- or 16-wind rose; any other value means 3.
// Ties round clockwise, so 225° on the 4-wind rose is W.
func CompassPoint(bearing float64, precision int) string {
	if precision <= 0 || precision > 3 {
		precision = 3
	}

	b := wrap360(bearing)
	n := 4 << (precision - 1)
	i := int(math.Round(b*float64(n)/360)) % n

	return compassRose[i*(16/n)]
}

func wrap360(d float64) float64 {
	if 0.0 <= d && d < 360.0 {
		return d
	}
	return math.Mod(math.Mod(d, 360.0)+360.0, 360.0)
}
