package scene

import "github.com/hubastard/poliosis/engine/core"

// TileController: WASD pan one tile, Q/E zoom in/out.
type TileController struct {
	Camera   *TileCamera
	ZoomStep int
}

func NewTileController(cam *TileCamera) *TileController {
	return &TileController{Camera: cam, ZoomStep: 2}
}

// Bind registers the controller's keys. Held keys repeat.
func (tc *TileController) Bind(in *core.Input) {
	move := func(dx, dy int) core.Callback {
		return func(a core.Action) {
			if a.Down() {
				tc.Camera.Move(dx, dy)
			}
		}
	}
	in.AddKeyCallback(core.KeyW, move(0, 1))
	in.AddKeyCallback(core.KeyS, move(0, -1))
	in.AddKeyCallback(core.KeyA, move(-1, 0))
	in.AddKeyCallback(core.KeyD, move(1, 0))
	in.AddKeyCallback(core.KeyQ, func(a core.Action) {
		if a.Down() {
			tc.Camera.Zoom(-tc.ZoomStep)
		}
	})
	in.AddKeyCallback(core.KeyE, func(a core.Action) {
		if a.Down() {
			tc.Camera.Zoom(tc.ZoomStep)
		}
	})
}
