package iconsync

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    string
	}{
		{
			name:    "single line entry",
			entries: []Entry{{Key: "steam", SVG: `<svg width="16"/>`}},
			want:    "  steam: `<svg width=\"16\"/>`,",
		},
		{
			name: "multi line entry dedents closing tag",
			entries: []Entry{{
				Key: "nintendo",
				SVG: "<svg width=\"16\">\n<path d=\"M0 0\"/>\n</svg>",
			}},
			want: "  nintendo: `<svg width=\"16\">\n    <path d=\"M0 0\"/>\n  </svg>`,",
		},
		{
			name: "entries joined by a blank line",
			entries: []Entry{
				{Key: "a", SVG: "<svg/>"},
				{Key: "b", SVG: "<svg/>"},
			},
			want: "  a: `<svg/>`,\n\n  b: `<svg/>`,",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatEntries(tt.entries)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FormatEntries() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInject(t *testing.T) {
	target := Target{Begin: "// BEGIN ICONS", End: "// END ICONS"}

	content := "const ICONS = {\n// BEGIN ICONS\nstale\n// END ICONS\n};\n"

	got, err := target.Inject(content, "  a: `<svg/>`,")
	require.NoError(t, err)

	want := "const ICONS = {\n// BEGIN ICONS\n  a: `<svg/>`,\n// END ICONS\n};\n"
	assert.Equal(t, want, got)
}

func TestInjectIdempotent(t *testing.T) {
	target := Target{Begin: "// BEGIN ICONS", End: "// END ICONS"}
	block := "  a: `<svg/>`,"

	content := "// BEGIN ICONS\nold\n// END ICONS\n"

	once, err := target.Inject(content, block)
	require.NoError(t, err)

	twice, err := target.Inject(once, block)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestInjectMarkerErrors(t *testing.T) {
	target := Target{Begin: "// BEGIN ICONS", End: "// END ICONS"}

	tests := []struct {
		name    string
		content string
	}{
		{name: "missing begin marker", content: "// END ICONS\n"},
		{name: "missing end marker", content: "// BEGIN ICONS\n"},
		{name: "no markers at all", content: "const ICONS = {};\n"},
		{name: "duplicate begin marker", content: "// BEGIN ICONS\n// BEGIN ICONS\n// END ICONS\n"},
		{name: "end before begin", content: "// END ICONS\n// BEGIN ICONS\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := target.Inject(tt.content, "block")
			require.ErrorIs(t, err, ErrMarkerNotFound)
		})
	}
}
