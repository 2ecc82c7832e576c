package iconsync

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ErrMarkerNotFound is returned when the target file does not contain
// exactly one begin marker followed by exactly one end marker.
var ErrMarkerNotFound = errors.New("generated block markers not found")

// Entry is one icon in the generated block: the key it is exposed under and
// its normalized SVG markup.
type Entry struct {
	Key string
	SVG string
}

// FormatEntries renders the entries as JavaScript template-literal
// assignments, one blank line between entries. Multi-line SVGs keep the
// first tag on the key line, indent continuation lines four spaces, and
// dedent the closing </svg> tag two spaces so it aligns with the key.
func FormatEntries(entries []Entry) string {
	blocks := lo.Map(entries, func(entry Entry, _ int) string {
		return formatEntry(entry)
	})

	return strings.Join(blocks, "\n\n")
}

func formatEntry(entry Entry) string {
	lines := strings.Split(entry.SVG, "\n")
	if len(lines) == 1 {
		return fmt.Sprintf("  %s: `%s`,", entry.Key, entry.SVG)
	}

	out := []string{fmt.Sprintf("  %s: `%s", entry.Key, lines[0])}
	for _, line := range lines[1:] {
		indent := "    "
		if strings.HasPrefix(line, "</svg") {
			indent = "  "
		}
		out = append(out, indent+line)
	}
	out[len(out)-1] += "`,"

	return strings.Join(out, "\n")
}

// Target describes the marker-delimited region of a generated file. The
// lines between Begin and End are machine-owned and rewritten wholesale.
type Target struct {
	Begin string
	End   string
}

// Inject replaces the marker region of content (markers inclusive) with
// begin, block, and end on separate lines. Both markers must occur exactly
// once, begin before end; anything else fails with ErrMarkerNotFound and
// leaves the content untouched.
func (t Target) Inject(content, block string) (string, error) {
	if strings.Count(content, t.Begin) != 1 || strings.Count(content, t.End) != 1 {
		return "", fmt.Errorf("%w: expected exactly one %q and one %q", ErrMarkerNotFound, t.Begin, t.End)
	}

	start := strings.Index(content, t.Begin)
	end := strings.Index(content, t.End)
	if end < start {
		return "", fmt.Errorf("%w: end marker precedes begin marker", ErrMarkerNotFound)
	}

	region := t.Begin + "\n" + block + "\n" + t.End

	return content[:start] + region + content[end+len(t.End):], nil
}
