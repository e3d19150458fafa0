package atlas

import (
	"errors"
	"fmt"
)

var (
	ErrMismatchedPanelHeights = errors.New("mismatched panel heights")
	ErrPanelIndexOutOfRange   = errors.New("panel index out of range")
)

// HeightError reports a panel whose line count differs from the first panel.
type HeightError struct {
	Panel int
	Lines int
	Want  int
}

func (e *HeightError) Error() string {
	return fmt.Sprintf("%s: panel %d has %d lines, want %d", ErrMismatchedPanelHeights, e.Panel, e.Lines, e.Want)
}

func (e *HeightError) Is(target error) bool {
	return target == ErrMismatchedPanelHeights
}

// RaggedPanelError reports a panel whose lines are not all the same width,
// which would shift every panel to its right on that line.
type RaggedPanelError struct {
	Panel int
	Line  int
	Width int
	Want  int
}

func (e *RaggedPanelError) Error() string {
	return fmt.Sprintf("%s: panel %d line %d is %d wide, want %d",
		ErrMismatchedPanelHeights, e.Panel, e.Line, e.Width, e.Want)
}

func (e *RaggedPanelError) Is(target error) bool {
	return target == ErrMismatchedPanelHeights
}

type IndexError struct {
	Index  int
	Line   int
	Panels int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d, atlas line %d holds %d panels", ErrPanelIndexOutOfRange, e.Index, e.Line, e.Panels)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrPanelIndexOutOfRange
}
