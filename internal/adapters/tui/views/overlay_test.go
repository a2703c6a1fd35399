package views

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestOverlayAt(t *testing.T) {
	tests := []struct {
		name   string
		bg     string
		fg     string
		x, y   int
		width  int
		height int
		want   string
	}{
		{
			name:   "inside",
			bg:     "aaaaa\nbbbbb\nccccc",
			fg:     "XY\nZW",
			x:      1,
			y:      1,
			width:  5,
			height: 3,
			want:   "aaaaa\nbXYbb\ncZWcc",
		},
		{
			name:   "cut at right edge",
			bg:     "aaaaa",
			fg:     "XYZ",
			x:      3,
			y:      0,
			width:  5,
			height: 1,
			want:   "aaaXY",
		},
		{
			name:   "pads short background",
			bg:     "a",
			fg:     "X",
			x:      3,
			y:      1,
			width:  5,
			height: 2,
			want:   "a\n   X",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(overlayAt(tt.bg, tt.fg, tt.x, tt.y, tt.width, tt.height))
			if got != tt.want {
				t.Errorf("overlayAt() = %q, want %q", got, tt.want)
			}
		})
	}
}
