package measurement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatLength(t *testing.T) {
	f := NewFormatter(language.English)

	tests := []struct {
		meters float64
		want   string
	}{
		{0, "0 meters"},
		{50, "50 meters"},
		{12.125, "12.13 meters"},
		{100, "100 meters"},
		{150, "0.15 kilometers"},
		{1234.5, "1.23 kilometers"},
		{42000, "42 kilometers"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Length(tt.meters), "Length(%v)", tt.meters)
	}
}

func TestFormatArea(t *testing.T) {
	f := NewFormatter(language.English)

	tests := []struct {
		squareMeters float64
		want         string
	}{
		{999999, "999999 square meters"},
		{1000000, "1000000 square meters"},
		{1000001, "1 square kilometers"},
		{2500000, "2.5 square kilometers"},
		{1e10, "10000 square kilometers"},
		{2.5e10, "2.5 ten-thousand square kilometers"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Area(tt.squareMeters), "Area(%v)", tt.squareMeters)
	}
}

func TestFormatPlanarSkipsUnits(t *testing.T) {
	f := NewFormatter(language.English)

	assert.Equal(t, "123.46", f.Format(Measurement{Kind: KindLength, Magnitude: 123.456789}))
	assert.Equal(t, "1234.5678", f.Format(Measurement{Kind: KindArea, Magnitude: 1234.5678}))
	assert.Equal(t, "0.5", f.Format(Measurement{Kind: KindCircle, Magnitude: 0.5}))
}

func TestFormatGeodesicDispatchesOnKind(t *testing.T) {
	f := NewFormatter(language.English)

	assert.Equal(t, "0.15 kilometers", f.Format(Measurement{Kind: KindLength, Magnitude: 150, Geodesic: true}))
	assert.Equal(t, "150 square meters", f.Format(Measurement{Kind: KindArea, Magnitude: 150, Geodesic: true}))
	assert.Equal(t, "150 square meters", f.Format(Measurement{Kind: KindCircle, Magnitude: 150, Geodesic: true}))
}

func TestFormatChinese(t *testing.T) {
	f := NewFormatter(language.Chinese)

	assert.Equal(t, "50 米", f.Length(50))
	assert.Equal(t, "0.15 公里", f.Length(150))
	assert.Equal(t, "2.5 万平方公里", f.Area(2.5e10))
	assert.Equal(t, "总长：1 公里", f.Sprintf(msgTotalLength, f.Length(1000)))
}

func TestFormatUnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	f := NewFormatter(language.German)
	assert.Equal(t, "50 meters", f.Length(50))
}
