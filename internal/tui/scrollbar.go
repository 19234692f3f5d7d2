package tui

import (
	"math"
	"strings"
)

const (
	ScrollbarWidth = 1

	scrollbarThumb = "█"
	scrollbarTrack = "░"
)

// Scrollbar renders a vertical scrollbar for a viewport of the given
// height showing visible lines out of total, scrolled down by offset.
func Scrollbar(height, total, visible, offset int) string {
	ratio := float64(height) / float64(total)
	thumb := max(1, int(math.Round(float64(visible)*ratio)))
	top := max(0, min(height-thumb, int(math.Round(float64(offset)*ratio))))

	var b strings.Builder
	for i := 0; i < height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i >= top && i < top+thumb {
			b.WriteString(scrollbarThumb)
		} else {
			b.WriteString(scrollbarTrack)
		}
	}
	return b.String()
}
