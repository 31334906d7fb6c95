package palette

import "testing"

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []uint8
		want   uint8
	}{
		{name: "mixed values", values: []uint8{33, 13, 255, 0, 42}, want: 68},
		{name: "single value", values: []uint8{7}, want: 7},
		{name: "floor division", values: []uint8{1, 2}, want: 1},
		{name: "all zero", values: []uint8{0, 0, 0}, want: 0},
		{name: "all max", values: []uint8{255, 255, 255, 255}, want: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mean(tt.values); got != tt.want {
				t.Errorf("mean(%v) = %d, want %d", tt.values, got, tt.want)
			}
		})
	}
}

// The sum of many large samples must not wrap before division.
func TestMeanNoOverflow(t *testing.T) {
	values := make([]uint8, 100000)
	for i := range values {
		values[i] = 255
	}

	if got := mean(values); got != 255 {
		t.Errorf("mean of 100000x255 = %d, want 255", got)
	}
}
