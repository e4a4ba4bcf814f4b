package game

import (
	"errors"
	"testing"
)

func TestSpeedBonusBoundaries(t *testing.T) {
	testCases := []struct {
		elapsed float64
		want    int
	}{
		{0, 3},
		{1.99, 3},
		{2, 2},
		{3.99, 2},
		{4, 1},
		{5.99, 1},
		{6, 0},
		{120, 0},
	}

	for _, tc := range testCases {
		if got := speedBonus(tc.elapsed); got != tc.want {
			t.Errorf("speedBonus(%v) = %d, want %d", tc.elapsed, got, tc.want)
		}
	}
}

func TestCoerceInt(t *testing.T) {
	testCases := []struct {
		name    string
		in      any
		want    int
		wantErr bool
	}{
		{"int", 42, 42, false},
		{"int64", int64(7), 7, false},
		{"whole float64", float64(36), 36, false},
		{"negative string", "-3", -3, false},
		{"padded string", " 12 ", 12, false},
		{"fractional float64", 3.5, 0, true},
		{"word", "forty-two", 0, true},
		{"empty string", "", 0, true},
		{"nil", nil, 0, true},
		{"bool", false, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := coerceInt(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("Expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("coerceInt(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}
