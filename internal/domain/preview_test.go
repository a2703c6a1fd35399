package domain

import "testing"

func TestPlacePreview(t *testing.T) {
	viewport := Size{Width: 100, Height: 40}
	panel := Size{Width: 30, Height: 10}

	tests := []struct {
		name   string
		target Rect
		want   Point
	}{
		{
			name:   "fits to the right",
			target: Rect{X: 10, Y: 5, Width: 20, Height: 4},
			want:   Point{X: 32, Y: 5},
		},
		{
			name:   "flips left near right edge",
			target: Rect{X: 60, Y: 5, Width: 20, Height: 4},
			want:   Point{X: 28, Y: 5},
		},
		{
			name:   "lifts near bottom edge",
			target: Rect{X: 10, Y: 35, Width: 20, Height: 4},
			want:   Point{X: 32, Y: 29},
		},
		{
			name:   "flips and lifts in bottom right corner",
			target: Rect{X: 70, Y: 38, Width: 20, Height: 2},
			want:   Point{X: 38, Y: 29},
		},
		{
			name:   "never negative",
			target: Rect{X: 5, Y: 0, Width: 90, Height: 4},
			want:   Point{X: 0, Y: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlacePreview(tt.target, viewport, panel, 2, 1)
			if got != tt.want {
				t.Errorf("PlacePreview() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
