package mathutil

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Rounds down below half cent", input: 1.004, expected: 1.00},
		{name: "Rounds up above half cent", input: 1.006, expected: 1.01},
		{name: "Negative rounds away from zero", input: -1.006, expected: -1.01},
		{name: "Monthly interest on 100k at 5 percent", input: 416.6666667, expected: 416.67},
		{name: "Already exact", input: 99879.85, expected: 99879.85},
		{name: "Zero", input: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if result != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Errorf("IsZero(0.005) = false, expected true")
	}
	if !IsZero(-0.01) {
		t.Errorf("IsZero(-0.01) = false, expected true")
	}
	if IsZero(0.02) {
		t.Errorf("IsZero(0.02) = true, expected false")
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.00, 100.009, 0.01) {
		t.Errorf("WithinTolerance(100.00, 100.009, 0.01) = false, expected true")
	}
	if WithinTolerance(100.00, 100.02, 0.01) {
		t.Errorf("WithinTolerance(100.00, 100.02, 0.01) = true, expected false")
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{name: "Quarter", value: 25, total: 100, expected: 25},
		{name: "Interest share", value: 93000, total: 193000, expected: 48.186528497409325},
		{name: "Zero total", value: 50, total: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculatePercentage(tt.value, tt.total)
			if !WithinTolerance(result, tt.expected, 1e-9) {
				t.Errorf("CalculatePercentage(%v, %v) = %v, expected %v", tt.value, tt.total, result, tt.expected)
			}
		})
	}
}
