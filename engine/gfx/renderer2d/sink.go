package renderer2d

import (
	"errors"
	"fmt"
)

// Sink uploads one finished frame to the GPU and presents it.
// Slices passed to Submit are reused by the renderer afterwards; a Sink
// must copy anything it wants to keep.
type Sink interface {
	Submit(vertices []Vertex, indices []uint16, texts []TextRequest) error
	Resize(width, height int)
}

// TextMeasurer is implemented by sinks that know the font, so text can be
// sized before it is queued. Scales are in pixels as in TextRequest.
type TextMeasurer interface {
	MeasureText(s string, scaleX, scaleY float32) (width, height float32)
}

type SurfaceErrorKind int

const (
	SurfaceOther SurfaceErrorKind = iota
	SurfaceLost
	SurfaceOutdated
	SurfaceOutOfMemory
)

func (k SurfaceErrorKind) String() string {
	switch k {
	case SurfaceLost:
		return "lost"
	case SurfaceOutdated:
		return "outdated"
	case SurfaceOutOfMemory:
		return "out of memory"
	default:
		return "other"
	}
}

// SurfaceError is returned by a Sink when a frame could not be presented.
type SurfaceError struct {
	Kind SurfaceErrorKind
	Err  error
}

func (e *SurfaceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("surface %s", e.Kind)
	}
	return fmt.Sprintf("surface %s: %v", e.Kind, e.Err)
}

func (e *SurfaceError) Unwrap() error { return e.Err }

// Transient errors go away after the surface is reconfigured.
func (e *SurfaceError) Transient() bool {
	return e.Kind == SurfaceLost || e.Kind == SurfaceOutdated
}

func (e *SurfaceError) Fatal() bool { return e.Kind == SurfaceOutOfMemory }

func IsTransient(err error) bool {
	var se *SurfaceError
	return errors.As(err, &se) && se.Transient()
}

func IsFatal(err error) bool {
	var se *SurfaceError
	return errors.As(err, &se) && se.Fatal()
}
