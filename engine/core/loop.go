package core

import (
	"github.com/hubastard/poliosis/engine/gfx/renderer2d"
	"github.com/hubastard/poliosis/engine/logging"
	"github.com/hubastard/poliosis/engine/profiler"
)

// FrameFunc draws one frame. rd and in must not be retained past the call.
type FrameFunc func(rd *renderer2d.Renderer2D, in *Input)

// Loop turns platform events into input state, callbacks and frames.
// It has no platform dependency; Run feeds it from a Window.
type Loop struct {
	rd      *renderer2d.Renderer2D
	in      *Input
	frame   FrameFunc
	observe func(Event)

	keepStale bool
	closed    bool
	err       error
}

func NewLoop(rd *renderer2d.Renderer2D, in *Input, frame FrameFunc) *Loop {
	return &Loop{rd: rd, in: in, frame: frame}
}

// KeepStaleHitRegions disables the per-frame reset of mouse registrations.
func (l *Loop) KeepStaleHitRegions(keep bool) { l.keepStale = keep }

// SetObserver installs a hook that sees every event before it is handled.
func (l *Loop) SetObserver(fn func(Event)) { l.observe = fn }

func (l *Loop) Closed() bool { return l.closed }
func (l *Loop) Close()       { l.closed = true }

// Err is the fatal error that closed the loop, if any.
func (l *Loop) Err() error { return l.err }

func (l *Loop) Dispatch(ev Event) {
	if l.closed {
		return
	}
	if l.observe != nil {
		l.observe(ev)
	}

	switch e := ev.(type) {
	case EventResize:
		if e.W > 0 && e.H > 0 {
			l.rd.Resize(e.W, e.H)
		}
	case EventCloseRequested:
		l.closed = true
	case EventCursorMoved:
		w, h := l.rd.Size()
		if w <= 0 || h <= 0 {
			return
		}
		l.in.setCursor(e.X, e.Y, w, h)
	case EventMouseButton:
		l.in.handleMouse(e.Button, e.Action)
	case EventKey:
		l.in.handleKey(e.Key, e.Action)
	case EventFrameTick:
		if err := l.Frame(); err != nil {
			l.err = err
		}
	}
}

// Frame runs the frame function once and submits the result. Transient
// surface errors reconfigure the surface; fatal ones close the loop and are
// returned; anything else is logged and the loop carries on.
func (l *Loop) Frame() error {
	end := profiler.Start("frame")
	defer end()

	if !l.keepStale {
		l.in.BeginFrame()
	}
	if l.frame != nil {
		l.frame(l.rd, l.in)
	}

	err := l.rd.Render()
	switch {
	case err == nil:
		return nil
	case renderer2d.IsTransient(err):
		w, h := l.rd.Size()
		logging.Logger().Warn("surface reconfigured", "err", err, "width", w, "height", h)
		l.rd.Resize(w, h)
		return nil
	case renderer2d.IsFatal(err):
		logging.Logger().Error("surface failed", "err", err)
		l.closed = true
		return err
	default:
		logging.Logger().Error("frame dropped", "err", err)
		return nil
	}
}
