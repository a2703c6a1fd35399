package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayAt draws fg over bg with its top-left corner at (x, y).
// bg is padded to height lines; fg lines wider than the screen are cut.
func overlayAt(bg, fg string, x, y, width, height int) string {
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	fgLines := strings.Split(fg, "\n")
	fgW := 0
	for _, ln := range fgLines {
		fgW = max(fgW, ansi.StringWidth(ln))
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x+fgW > width {
		fgW = max(width-x, 0)
	}
	if fgW == 0 {
		return strings.Join(bgLines, "\n")
	}

	for i := 0; i < len(fgLines) && y+i < len(bgLines); i++ {
		bgLine := bgLines[y+i]
		if n := ansi.StringWidth(bgLine); n < x {
			bgLine += strings.Repeat(" ", x-n)
		}
		left := ansi.Cut(bgLine, 0, x)
		right := ansi.Cut(bgLine, x+fgW, width)

		fgLine := fgLines[i]
		if n := ansi.StringWidth(fgLine); n < fgW {
			fgLine += strings.Repeat(" ", fgW-n)
		} else if n > fgW {
			fgLine = ansi.Cut(fgLine, 0, fgW)
		}

		bgLines[y+i] = left + fgLine + right
	}
	return strings.Join(bgLines, "\n")
}
