package viewer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/geomeasure/internal/measurement"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestDecodeImageDefaultRemoveButton(t *testing.T) {
	res, err := decodeImage(measurement.DefaultRemoveButtonSrc)
	if err != nil {
		t.Fatalf("Expected default remove button to decode, got %v", err)
	}
	if !bytes.HasPrefix(res.Content(), pngMagic) {
		t.Errorf("Expected PNG content, got % x", res.Content()[:8])
	}
	if res.Name() != "remove.png" {
		t.Errorf("Expected name remove.png, got %s", res.Name())
	}
}

func TestDecodeImagePlainDataURI(t *testing.T) {
	res, err := decodeImage("data:image/svg+xml,%3Csvg%3E%3C%2Fsvg%3E")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(res.Content()) != "<svg></svg>" {
		t.Errorf("Expected unescaped svg, got %q", res.Content())
	}
	if res.Name() != "remove.svg" {
		t.Errorf("Expected name remove.svg, got %s", res.Name())
	}
}

func TestDecodeImageFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "remove.png")
	if err := os.WriteFile(path, pngMagic, 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := decodeImage(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bytes.Equal(res.Content(), pngMagic) {
		t.Errorf("Expected file content, got % x", res.Content())
	}
}

func TestDecodeImageInvalid(t *testing.T) {
	tests := []string{
		"",
		"data:image/png;base64,not*base64",
		"data:image/png;base64",
		"data:image/png;base64,",
		filepath.Join(os.TempDir(), "geomeasure-missing", "remove.png"),
	}

	for _, src := range tests {
		if res, err := decodeImage(src); err == nil {
			t.Errorf("Expected error for %q, got resource %v", src, res.Name())
		}
	}
}

func TestIconForCachesBySource(t *testing.T) {
	v := &MapView{}

	first := v.iconFor(measurement.DefaultRemoveButtonSrc)
	second := v.iconFor(measurement.DefaultRemoveButtonSrc)
	if first != second {
		t.Errorf("Expected cached resource to be reused")
	}
	if !bytes.HasPrefix(first.Content(), pngMagic) {
		t.Errorf("Expected decoded image instead of the fallback icon")
	}
	if len(v.icons) != 1 {
		t.Errorf("Expected one cached icon, got %d", len(v.icons))
	}
}
