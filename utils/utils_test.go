package utils

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestUtils_ShouldDecorateText(t *testing.T) {
	out := DecorateText("carving", SuccessMessage)
	if !strings.HasPrefix(out, SuccessColor) {
		t.Errorf("Expected the decorated text to start with the success color, got: %q", out)
	}
	if !strings.HasSuffix(out, DefaultColor) {
		t.Errorf("Expected the decorated text to reset the color, got: %q", out)
	}

	out = DecorateText("carving", MessageType(42))
	if out != "carving" {
		t.Errorf("An unknown message type should leave the text alone, got: %q", out)
	}
}

func TestUtils_ShouldFormatTime(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{42 * time.Second, "42.00s"},
		{90 * time.Second, "1m 30.00s"},
		{3690 * time.Second, "1h 1m 30.00s"},
		{25 * time.Hour, "1d 1h 0m 0.00s"},
	}
	for _, test := range tests {
		if got := FormatTime(test.duration); got != test.expected {
			t.Errorf("FormatTime(%v) = %q, expected %q", test.duration, got, test.expected)
		}
	}
}

func TestUtils_MinMaxAbs(t *testing.T) {
	if got := Min(2, 7); got != 2 {
		t.Errorf("Min(2, 7) = %d", got)
	}
	if got := Min(7.5, 2.5); got != 2.5 {
		t.Errorf("Min(7.5, 2.5) = %f", got)
	}
	if got := Max(2, 7); got != 7 {
		t.Errorf("Max(2, 7) = %d", got)
	}
	if got := Abs(-3); got != 3 {
		t.Errorf("Abs(-3) = %d", got)
	}
	if got := Abs(3.5); got != 3.5 {
		t.Errorf("Abs(3.5) = %f", got)
	}
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	if !IsValidUrl("https://example.com/sample.jpg") {
		t.Errorf("A valid URL should have been accepted")
	}
	if IsValidUrl("testdata/sample.jpg") {
		t.Errorf("A relative path should not pass as URL")
	}
	if IsValidUrl("://missing.scheme") {
		t.Errorf("A malformed URL should not pass")
	}
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	sampleImg := filepath.Join(t.TempDir(), "sample.png")
	f, err := os.Create(sampleImg)
	if err != nil {
		t.Fatalf("could not create the sample file: %v", err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("could not encode the sample image: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("could not close the sample file: %v", err)
	}

	ftype, err := DetectContentType(sampleImg)
	if err != nil {
		t.Fatalf("could not detect content type: %v", err)
	}
	if !strings.Contains(ftype, "image") {
		t.Errorf("Content type expected to be of type image, got: %v", ftype)
	}
}
