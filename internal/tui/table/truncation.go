package table

import (
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

var defaultTruncationFunc = TruncateRight

// TruncationFunc cuts s down to a display width of w cells, marking the
// cut with tail (or prefix, for left truncation).
type TruncationFunc func(s string, w int, tailOrPrefix string) string

// TruncateRight drops the end of an overlong string. The default for
// names and labels.
func TruncateRight(s string, w int, tail string) string {
	return truncate.StringWithTail(s, uint(w), tail)
}

// TruncateLeft drops the start of an overlong string, keeping the
// rightmost cells. Used for values whose tail is the significant part,
// such as endpoint URLs.
func TruncateLeft(s string, w int, prefix string) string {
	if runewidth.StringWidth(s) <= w {
		return s
	}
	keep := max(0, w-runewidth.StringWidth(prefix))
	var (
		width int
		runes = []rune(s)
		pos   = len(runes)
	)
	for i := len(runes) - 1; i >= 0; i-- {
		cw := runewidth.RuneWidth(runes[i])
		if width+cw > keep {
			break
		}
		width += cw
		pos = i
	}
	return prefix + string(runes[pos:])
}
