package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/Kaesebrot84/iris/internal/palette"
)

func TestSwatch(t *testing.T) {
	tests := []struct {
		name  string
		color palette.Color
		want  string
	}{
		{
			name:  "red",
			color: palette.Color{R: 255, A: 255},
			want:  "\033[48;2;255;0;0m        \033[0m  #ff0000",
		},
		{
			name:  "white",
			color: palette.Color{R: 255, G: 255, B: 255, A: 255},
			want:  "\033[48;2;255;255;255m        \033[0m  #ffffff",
		},
		{
			name:  "semi-transparent alpha is not rendered",
			color: palette.Color{R: 18, G: 52, B: 86, A: 128},
			want:  "\033[48;2;18;52;86m        \033[0m  #123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := swatch(tt.color); got != tt.want {
				t.Errorf("swatch(%v) = %q, want %q", tt.color, got, tt.want)
			}
		})
	}
}

// A buffer is not a terminal, so the preview must stay silent.
func TestPrintPreviewSkipsNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	printPreview(&buf, []palette.Color{{R: 255, A: 255}})

	if buf.Len() != 0 {
		t.Errorf("printPreview wrote %q to a non-terminal writer", buf.String())
	}
}

func TestClampIterations(t *testing.T) {
	tests := []struct {
		name       string
		iterations int
		want       int
	}{
		{name: "below minimum", iterations: 0, want: 1},
		{name: "negative", iterations: -3, want: 1},
		{name: "minimum", iterations: 1, want: 1},
		{name: "in range", iterations: 2, want: 2},
		{name: "maximum", iterations: 4, want: 4},
		{name: "above maximum", iterations: 5, want: 4},
		{name: "far above maximum", iterations: 100, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampIterations(tt.iterations); got != tt.want {
				t.Errorf("clampIterations(%d) = %d, want %d", tt.iterations, got, tt.want)
			}
		})
	}
}

func TestClampIterationsWarns(t *testing.T) {
	var buf bytes.Buffer
	configureLogger(&buf, false)
	defer configureLogger(io.Discard, false)

	clampIterations(9)
	if !strings.Contains(buf.String(), "switching to maximum number of iterations") {
		t.Errorf("clamping above the maximum logged %q, want a clamp warning", buf.String())
	}

	buf.Reset()
	clampIterations(0)
	if !strings.Contains(buf.String(), "switching to minimum number of iterations") {
		t.Errorf("clamping below the minimum logged %q, want a clamp warning", buf.String())
	}

	buf.Reset()
	clampIterations(2)
	if buf.Len() != 0 {
		t.Errorf("in-range iterations logged %q, want no output", buf.String())
	}
}

func TestConfigureLoggerLevels(t *testing.T) {
	defer configureLogger(io.Discard, false)

	configureLogger(io.Discard, true)
	if !logger.IsDebug() {
		t.Error("verbose logger does not log at debug level")
	}

	configureLogger(io.Discard, false)
	if logger.IsDebug() {
		t.Error("non-verbose logger logs at debug level")
	}
	if !logger.IsWarn() {
		t.Error("non-verbose logger suppresses warnings")
	}
}
