package core

import "github.com/hubastard/poliosis/engine/geom"

type Callback func(Action)

type mouseBinding struct {
	bounds geom.Rect
	cb     Callback
}

// Input holds the cursor in NDC and the key and mouse callback registries.
// There is one registration per key and per button; the last one wins.
type Input struct {
	cursor geom.Point
	keys   map[Key]Callback
	mouse  map[MouseButton]mouseBinding
	held   map[Key]bool
}

func NewInput() *Input {
	return &Input{
		keys:  map[Key]Callback{},
		mouse: map[MouseButton]mouseBinding{},
		held:  map[Key]bool{},
	}
}

func (in *Input) Cursor() geom.Point      { return in.cursor }
func (in *Input) IsKeyDown(k Key) bool    { return in.held[k] }
func (in *Input) MouseRegions() int       { return len(in.mouse) }
func (in *Input) RemoveKeyCallback(k Key) { delete(in.keys, k) }

func (in *Input) AddKeyCallback(k Key, cb Callback) {
	in.keys[k] = cb
}

// AddMouseClickCallback registers a hit region for button. A nil bounds
// covers the whole frame.
func (in *Input) AddMouseClickCallback(b MouseButton, bounds *geom.Rect, cb Callback) {
	r := geom.FullScreen
	if bounds != nil {
		r = *bounds
	}
	in.mouse[b] = mouseBinding{bounds: r, cb: cb}
}

// BeginFrame drops the mouse hit regions. Widgets re-register every frame
// they are drawn, so regions of widgets no longer on screen stop firing.
func (in *Input) BeginFrame() {
	clear(in.mouse)
}

// setCursor maps framebuffer pixels to NDC, flipping Y.
func (in *Input) setCursor(x, y float64, w, h int) {
	in.cursor = geom.Pt(
		float32(x/(float64(w)/2)-1),
		float32(-y/(float64(h)/2)+1),
	)
}

func (in *Input) handleKey(k Key, a Action) {
	in.held[k] = a.Down()
	if cb, ok := in.keys[k]; ok && cb != nil {
		cb(a)
	}
}

func (in *Input) handleMouse(b MouseButton, a Action) {
	m, ok := in.mouse[b]
	if !ok || m.cb == nil {
		return
	}
	if m.bounds.Contains(in.cursor) {
		m.cb(a)
	}
}
