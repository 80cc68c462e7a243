package measurement

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Unit thresholds
const (
	kilometerThreshold       = 100.0
	squareKilometerThreshold = 1e6
	tenThousandKm2Threshold  = 1e10
)

// Formatter renders raw magnitudes as localized display strings
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter for the closest supported language
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(matchLanguage(tag))}
}

// Format renders a measurement. Planar magnitudes are returned without units.
func (f *Formatter) Format(m Measurement) string {
	if !m.Geodesic {
		if m.Kind == KindLength {
			return formatNumber(round2(m.Magnitude))
		}
		return formatNumber(m.Magnitude)
	}
	if m.Kind == KindLength {
		return f.Length(m.Magnitude)
	}
	return f.Area(m.Magnitude)
}

// Length formats meters, switching to kilometers above 100m
func (f *Formatter) Length(meters float64) string {
	if meters > kilometerThreshold {
		return f.withUnit(meters/1000, msgKilometers)
	}
	return f.withUnit(meters, msgMeters)
}

// Area formats square meters, switching to square kilometers above 1e6 and
// to ten-thousand square kilometers above 1e10
func (f *Formatter) Area(squareMeters float64) string {
	switch {
	case squareMeters > tenThousandKm2Threshold:
		return f.withUnit(squareMeters/tenThousandKm2Threshold, msgTenThousandSquareKilometers)
	case squareMeters > squareKilometerThreshold:
		return f.withUnit(squareMeters/squareKilometerThreshold, msgSquareKilometers)
	default:
		return f.withUnit(squareMeters, msgSquareMeters)
	}
}

// Sprintf translates one of the catalog messages
func (f *Formatter) Sprintf(key message.Reference, args ...interface{}) string {
	return f.printer.Sprintf(key, args...)
}

func (f *Formatter) withUnit(value float64, unit message.Reference) string {
	return formatNumber(round2(value)) + " " + f.printer.Sprintf(unit)
}

// round2 rounds half up to two decimals
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
