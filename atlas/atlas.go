// Package atlas lays equal-height panels side by side and pulls single panels
// back out of the result.
//
// Every panel row starts and ends with palette.Border and no body cell is
// ever a Border, so inside an atlas the Border runs mark the edges and seams
// and can be used as a field separator.
package atlas

import (
	"strings"
	"unicode/utf8"

	"asciiatlas/palette"
)

// Compose concatenates panels line by line. All panels need the same number
// of lines and each panel must be rectangular; panels may differ in width.
// The result keeps the panels' trailing newline and adds none of its own.
func Compose(panels ...string) (string, error) {
	if len(panels) == 0 {
		return "", nil
	}

	split := make([][]string, len(panels))
	for i, p := range panels {
		split[i] = strings.Split(p, "\n")
		if err := checkRectangular(i, split[i]); err != nil {
			return "", err
		}
		if n, want := len(split[i]), len(split[0]); n != want {
			return "", &HeightError{Panel: i, Lines: n, Want: want}
		}
	}

	lines := make([]string, len(split[0]))
	var sb strings.Builder
	for y := range lines {
		sb.Reset()
		for _, p := range split {
			sb.WriteString(p[y])
		}
		lines[y] = sb.String()
	}

	return strings.Join(lines, "\n"), nil
}

func checkRectangular(panel int, lines []string) error {
	// a trailing newline leaves an empty last element
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var want int
	for y, line := range lines {
		w := utf8.RuneCountInString(line)
		if y == 0 {
			want = w
			continue
		}
		if w != want {
			return &RaggedPanelError{Panel: panel, Line: y, Width: w, Want: want}
		}
	}
	return nil
}

// Extract returns the body of panel k: its rows without the border rows and
// without the framing Border on each side, joined by newlines.
func Extract(atlas string, k int) (string, error) {
	var body []string
	for y, line := range strings.Split(atlas, "\n") {
		fields := splitFields(line)
		if len(fields) == 0 {
			continue
		}
		if k < 0 || k >= len(fields) {
			return "", &IndexError{Index: k, Line: y, Panels: len(fields)}
		}
		body = append(body, fields[k])
	}
	return strings.Join(body, "\n"), nil
}

// Count returns the number of panels found on the first body row, or 0 when
// the atlas has no body rows.
func Count(atlas string) int {
	for line := range strings.SplitSeq(atlas, "\n") {
		if n := len(splitFields(line)); n > 0 {
			return n
		}
	}
	return 0
}

func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == palette.Border
	})
}
