package input

import (
	"testing"
	"time"
)

func TestWheelNormalizer(t *testing.T) {
	interval := 10 * time.Millisecond
	testCases := map[string]struct {
		pre       []float64
		input     []float64
		expected  []float64
		tolerance float64
	}{
		"BinaryWheel1": {
			pre:      []float64{1, 1, -1, 0, -1, -1},
			input:    []float64{1, -1, 0},
			expected: []float64{1, -1, 0},
		},
		"BinaryWheel100": {
			pre:      []float64{100, 100, -100, 0, -100, -100},
			input:    []float64{100, -100, 0},
			expected: []float64{1, -1, 0},
		},
		"TouchPad3": {
			pre:       []float64{2, 4, 3, 0, -1, 2},
			input:     []float64{3, -2, 0},
			expected:  []float64{3, -2, 0},
			tolerance: 0.25,
		},
		"TouchPad30": {
			pre:       []float64{20, 40, 30, 0, -10, 20},
			input:     []float64{30, -20, 0},
			expected:  []float64{3, -2, 0},
			tolerance: 0.25,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			wn := &WheelNormalizer{}
			now := time.Unix(1000, 0)
			for _, v := range tt.pre {
				now = now.Add(interval)
				wn.Normalize(v, now)
			}
			for i, v := range tt.input {
				now = now.Add(interval)
				o, ok := wn.Normalize(v, now)
				if !ok {
					t.Error("Normalizer must be ready")
					continue
				}
				if o < tt.expected[i]-tt.tolerance || tt.expected[i]+tt.tolerance < o {
					t.Errorf("Expected: %f, got: %f", tt.expected[i], o)
				}
			}
		})
	}
}

func TestWheelNormalizer_NotReady(t *testing.T) {
	wn := &WheelNormalizer{}
	if _, ok := wn.Normalize(1, time.Unix(1000, 0)); ok {
		t.Error("Normalizer must not be ready on the first event")
	}
}
