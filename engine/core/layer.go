package core

// Layer is one slice of the application. Layers update and render bottom to
// top and see events top to bottom.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // return true if handled; propagation stops
}

type LayerStack struct{ list []Layer }

func (ls *LayerStack) Len() int     { return len(ls.list) }
func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }
func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list = ls.list[:i]
	return l, true
}

func (ls *LayerStack) ForEach(f func(Layer)) {
	for _, l := range ls.list {
		f(l)
	}
}

func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if stop := f(ls.list[i]); stop {
			break
		}
	}
}

func (ls *LayerStack) attach(e *Engine) { ls.ForEach(func(l Layer) { l.OnAttach(e) }) }

func (ls *LayerStack) detach(e *Engine) {
	ls.ForEachReverse(func(l Layer) bool { l.OnDetach(e); return false })
}

func (ls *LayerStack) update(e *Engine, dt float64) {
	ls.ForEach(func(l Layer) { l.OnUpdate(e, dt) })
}

func (ls *LayerStack) render(e *Engine, alpha float64) {
	ls.ForEach(func(l Layer) { l.OnRender(e, alpha) })
}

func (ls *LayerStack) event(e *Engine, ev Event) {
	ls.ForEachReverse(func(l Layer) bool { return l.OnEvent(e, ev) })
}
