package art

import (
	"errors"
	"fmt"
	"strings"

	"github.com/moltimon/cardsmith/internal/termtext"
)

// ErrDimensionMismatch is matched by every *DimensionError.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// DimensionError reports a text block whose shape differs from the one
// required. ActualWidth is the width of the first line.
type DimensionError struct {
	ExpectedWidth  int
	ExpectedHeight int
	ActualWidth    int
	ActualHeight   int
	Reason         string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s (expected %dx%d, got %dx%d)",
		e.Reason, e.ExpectedWidth, e.ExpectedHeight, e.ActualWidth, e.ActualHeight)
}

// Is lets errors.Is match ErrDimensionMismatch.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// ValidateDimensions checks that block has exactly height lines, all of the
// same display width, and that the width is exactly width.
func ValidateDimensions(block string, width, height int) error {
	lines := strings.Split(block, "\n")
	actualHeight := len(lines)
	actualWidth := termtext.Width(lines[0])

	fail := func(reason string) error {
		return &DimensionError{
			ExpectedWidth:  width,
			ExpectedHeight: height,
			ActualWidth:    actualWidth,
			ActualHeight:   actualHeight,
			Reason:         reason,
		}
	}

	for i, line := range lines[1:] {
		if w := termtext.Width(line); w != actualWidth {
			return fail(fmt.Sprintf("inconsistent line widths: line %d is %d columns, line 1 is %d", i+2, w, actualWidth))
		}
	}
	if actualWidth != width {
		return fail(fmt.Sprintf("width must be exactly %d columns, got %d", width, actualWidth))
	}
	if actualHeight != height {
		return fail(fmt.Sprintf("height must be exactly %d lines, got %d", height, actualHeight))
	}
	return nil
}
