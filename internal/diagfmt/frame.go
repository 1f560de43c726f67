package diagfmt

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"lyra/internal/source"
)

// DefaultContextLines is the number of lines shown above and below the
// target line in a code frame.
const DefaultContextLines = 2

// FormatCodeFrame renders the line containing the byte offset with
// contextLines of surrounding context:
//
//	  11 | <form>
//	> 12 |   <img src="/x.png" />
//	     |   ^^^^
//	  13 | </form>
//
// The caret run sits under the offending column span, clamped so it never
// extends past the target line. Returns "" when the offset is out of range.
func FormatCodeFrame(src string, start, length, contextLines int) string {
	if start < 0 || start > len(src) {
		return ""
	}
	if length < 0 {
		length = 0
	}

	lines := strings.Split(src, "\n")
	pos := source.OffsetToLineCol([]byte(src), start)
	targetIdx := int(pos.Line) - 1
	if targetIdx >= len(lines) {
		return ""
	}

	first := max(targetIdx-contextLines, 0)
	last := min(targetIdx+contextLines, len(lines)-1)
	numWidth := len(fmt.Sprintf("%d", last+1))

	var sb strings.Builder
	for i := first; i <= last; i++ {
		prefix := "  "
		if i == targetIdx {
			prefix = "> "
		}
		fmt.Fprintf(&sb, "%s%*d | %s\n", prefix, numWidth, i+1, lines[i])

		if i != targetIdx {
			continue
		}

		line := lines[i]
		col := int(pos.Col) - 1
		if col > len(line) {
			col = len(line)
		}
		span := length
		if span < 1 {
			span = 1
		}
		if col+span > len(line) {
			span = len(line) - col
			if span < 1 {
				span = 1
			}
		}

		// Align by display width so wide runes before the span do not
		// shift the carets.
		pad := runewidth.StringWidth(line[:col])
		caret := runewidth.StringWidth(line[col:min(col+span, len(line))])
		if caret < 1 {
			caret = 1
		}
		fmt.Fprintf(&sb, "  %s | %s%s\n",
			strings.Repeat(" ", numWidth),
			strings.Repeat(" ", pad),
			strings.Repeat("^", caret))
	}
	return sb.String()
}
