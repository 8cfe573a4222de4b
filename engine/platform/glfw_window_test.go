package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/poliosis/engine/core"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want core.Key
	}{
		{glfw.KeyA, core.KeyA},
		{glfw.KeyQ, core.KeyQ},
		{glfw.KeyZ, core.KeyZ},
		{glfw.Key0, core.Key0},
		{glfw.Key5, core.Key5},
		{glfw.KeyKP3, core.Key3},
		{glfw.KeyEnter, core.KeyEnter},
		{glfw.KeyKPEnter, core.KeyEnter},
		{glfw.KeyEscape, core.KeyEscape},
		{glfw.KeyUp, core.KeyUp},
		{glfw.KeyRight, core.KeyRight},
		{glfw.KeyF3, core.KeyF3},
		{glfw.KeyF12, core.KeyUnknown},
	}
	for _, tt := range tests {
		if got := translateKey(tt.in); got != tt.want {
			t.Errorf("translateKey(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTranslateActionAndButton(t *testing.T) {
	if translateAction(glfw.Press) != core.ActionPress ||
		translateAction(glfw.Repeat) != core.ActionRepeat ||
		translateAction(glfw.Release) != core.ActionRelease {
		t.Error("action mapping wrong")
	}
	if b, ok := translateButton(glfw.MouseButtonRight); !ok || b != core.MouseRight {
		t.Errorf("right button = %v, %v", b, ok)
	}
	if _, ok := translateButton(glfw.MouseButton4); ok {
		t.Error("extra button mapped")
	}
}

func TestTranslateMods(t *testing.T) {
	got := translateMods(glfw.ModShift | glfw.ModSuper)
	if got != core.ModShift|core.ModSuper {
		t.Errorf("mods = %b", got)
	}
}

func TestToFramebuffer(t *testing.T) {
	x, y := toFramebuffer(100, 50, 800, 600, 1600, 1200)
	if x != 200 || y != 100 {
		t.Errorf("hidpi = (%v,%v), want (200,100)", x, y)
	}
	x, y = toFramebuffer(10, 20, 0, 0, 0, 0)
	if x != 10 || y != 20 {
		t.Errorf("minimized = (%v,%v)", x, y)
	}
}
