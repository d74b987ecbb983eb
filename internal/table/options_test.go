package table

import "testing"

func TestPositiveInt(t *testing.T) {
	tests := []struct {
		name string
		opts map[string]string
		keys []string
		want int
	}{
		{"absent", map[string]string{}, []string{"w", "width"}, 72},
		{"valid first key", map[string]string{"w": "100"}, []string{"w", "width"}, 100},
		{"valid alias", map[string]string{"width": "90"}, []string{"w", "width"}, 90},
		{"garbage", map[string]string{"w": "wide"}, []string{"w", "width"}, 72},
		{"zero falls back", map[string]string{"w": "0"}, []string{"w", "width"}, 72},
		{"negative falls back", map[string]string{"w": "-4"}, []string{"w", "width"}, 72},
		{"garbage then valid alias", map[string]string{"w": "x", "width": "80"}, []string{"w", "width"}, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := positiveInt(tt.opts, 72, tt.keys...); got != tt.want {
				t.Errorf("positiveInt(%v) = %d, want %d", tt.opts, got, tt.want)
			}
		})
	}
}

func TestNonNegativeInt(t *testing.T) {
	tests := []struct {
		name string
		opts map[string]string
		want int
	}{
		{"absent", map[string]string{}, 0},
		{"zero is accepted", map[string]string{"i": "0"}, 0},
		{"positive", map[string]string{"i": "7"}, 7},
		{"negative falls back", map[string]string{"i": "-1"}, 0},
		{"garbage", map[string]string{"i": "first"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nonNegativeInt(tt.opts, 0, "i", "index"); got != tt.want {
				t.Errorf("nonNegativeInt(%v) = %d, want %d", tt.opts, got, tt.want)
			}
		})
	}
}
