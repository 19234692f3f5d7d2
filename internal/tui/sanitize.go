package tui

import "bytes"

// SanitizeColors rewrites ANSI-colored text so that any color in effect
// is reset before each newline and re-applied after it. Viewports crop
// and scroll lines independently, so a color spanning lines would
// otherwise leak past the crop.
func SanitizeColors(b []byte) []byte {
	var (
		out    bytes.Buffer
		seq    bytes.Buffer
		inSeq  bool
		active []byte
	)
	for _, c := range b {
		if c == '\x1B' {
			inSeq = true
			seq.Reset()
		}
		if inSeq {
			seq.WriteByte(c)
			if c != '\x1B' && isSeqTerminator(c) {
				inSeq = false
				if c != 'm' || bytes.HasSuffix(seq.Bytes(), []byte("[0m")) {
					// Not a color sequence, or a reset: nothing to carry
					// over to the next line.
					active = active[:0]
				} else {
					active = append(active[:0], seq.Bytes()...)
				}
			}
			out.WriteByte(c)
			continue
		}
		if c == '\n' && len(active) > 0 {
			out.WriteString("\x1B[0m\n")
			out.Write(active)
			continue
		}
		out.WriteByte(c)
	}
	return out.Bytes()
}

func isSeqTerminator(c byte) bool {
	return (c >= 0x40 && c <= 0x5a) || (c >= 0x61 && c <= 0x7a)
}
