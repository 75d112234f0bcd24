package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"fish and hook overlap", NewRect(10, 8, 5, 3), NewRect(12, 9, 1, 1), true},
		{"hook left of fish", NewRect(10, 8, 5, 3), NewRect(9, 9, 1, 1), false},
		{"hook right edge exclusive", NewRect(10, 8, 5, 3), NewRect(15, 9, 1, 1), false},
		{"hook below fish", NewRect(10, 8, 5, 3), NewRect(12, 11, 1, 1), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	fish := NewRect(20, 10, 5, 3)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"nose row", 24, 10, true},
		{"tail row", 20, 12, true},
		{"past width", 25, 11, false},
		{"past rows", 22, 13, false},
		{"above", 22, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := fish.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
		{3, 0, -1, 0}, // empty range collapses to min
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
