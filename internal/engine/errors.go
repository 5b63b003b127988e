package engine

import (
	"errors"
	"fmt"

	"github.com/fchimpan/termclock/internal/surface"
)

// SurfaceTooSmallError is returned by a Renderer's Layout when the grid
// cannot fit its minimum layout. The engine recovers from it by showing a
// message until a later size fits.
type SurfaceTooSmallError struct {
	Size   surface.GridSize
	Reason string
}

func (e *SurfaceTooSmallError) Error() string {
	if e == nil {
		return "surface too small"
	}
	if e.Reason == "" {
		return fmt.Sprintf("surface too small (%dx%d)", e.Size.Cols, e.Size.Rows)
	}
	return fmt.Sprintf("surface too small (%dx%d): %s", e.Size.Cols, e.Size.Rows, e.Reason)
}

func IsSurfaceTooSmall(err error) bool {
	var e *SurfaceTooSmallError
	return errors.As(err, &e)
}
