package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestPNG encodes a small gradient PNG at path.
func writeTestPNG(t *testing.T, path string, width, height int) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 90, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
}

func TestFileLoaderLoad(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "test.png")
	writeTestPNG(t, pngPath, 4, 2)

	notImage := filepath.Join(dir, "not-an-image.txt")
	if err := os.WriteFile(notImage, []byte("plain text"), 0o600); err != nil {
		t.Fatalf("failed to write text file: %v", err)
	}

	t.Run("valid png", func(t *testing.T) {
		img, err := NewFileLoader().Load(pngPath)
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		bounds := img.Bounds()
		if bounds.Dx() != 4 || bounds.Dy() != 2 {
			t.Errorf("loaded image is %dx%d, want 4x2", bounds.Dx(), bounds.Dy())
		}
	})

	errTests := []struct {
		name    string
		path    string
		wantMsg string
	}{
		{name: "empty path", path: "", wantMsg: "image path cannot be empty"},
		{name: "missing file", path: filepath.Join(dir, "missing.png"), wantMsg: "image file not found"},
		{name: "directory", path: dir, wantMsg: "path is a directory"},
		{name: "not an image", path: notImage, wantMsg: "failed to decode image"},
	}

	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileLoader().Load(tt.path)
			if err == nil {
				t.Fatalf("Load(%q) expected an error", tt.path)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Load(%q) error = %q, want it to contain %q", tt.path, err, tt.wantMsg)
			}
		})
	}
}

func TestValidateImagePath(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "test.png")
	writeTestPNG(t, pngPath, 2, 2)

	notImage := filepath.Join(dir, "not-an-image.txt")
	if err := os.WriteFile(notImage, []byte("plain text"), 0o600); err != nil {
		t.Fatalf("failed to write text file: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "valid png", path: pngPath},
		{name: "empty path", path: "", wantErr: true},
		{name: "missing file", path: filepath.Join(dir, "missing.png"), wantErr: true},
		{name: "directory", path: dir, wantErr: true},
		{name: "not an image", path: notImage, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImagePath(tt.path)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateImagePath(%q) expected an error", tt.path)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateImagePath(%q) returned error: %v", tt.path, err)
			}
		})
	}
}
