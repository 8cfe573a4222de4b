package core

import (
	"time"

	"github.com/hubastard/poliosis/engine/gfx/renderer2d"
)

// Engine exposes core services to layers.
type Engine struct {
	Window   Window
	Renderer *renderer2d.Renderer2D
	Input    *Input
	Config   Config

	loop      *Loop
	start     time.Time
	frameTime time.Duration
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// FrameTime is the wall time between the last two frame ticks.
func (e *Engine) FrameTime() time.Duration { return e.frameTime }

// Close stops the loop after the current frame.
func (e *Engine) Close() {
	if e.loop != nil {
		e.loop.Close()
	}
	if e.Window != nil {
		e.Window.RequestClose()
	}
}

// Window abstraction. Implementations push platform events through the
// callback set with SetEventCallback.
type Window interface {
	PollEvents()
	WaitEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Destroy()
}
