package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestShader(t *testing.T) {
	for _, name := range []string{"geometry.vert.glsl", "geometry.frag.glsl", "text.vert.glsl", "text.frag.glsl"} {
		src, err := Shader(name)
		if err != nil {
			t.Fatalf("Shader(%q): %v", name, err)
		}
		if !strings.HasPrefix(src, "#version 330 core") {
			t.Errorf("%s: unexpected header %q", name, src[:20])
		}
		if !strings.HasSuffix(src, "\x00") {
			t.Errorf("%s: not null-terminated", name)
		}
	}
	if _, err := Shader("missing.glsl"); err == nil {
		t.Error("missing shader loaded")
	}
}

func TestLoadIcon(t *testing.T) {
	def, err := LoadIcon("")
	if err != nil {
		t.Fatal(err)
	}
	if def.Bounds().Dx() != 32 || def.RGBAAt(0, 0) != (color.RGBA{0xff, 0xff, 0, 0xff}) || def.RGBAAt(16, 16) != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("default icon looks wrong")
	}

	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	src.Set(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	path := filepath.Join(t.TempDir(), "icon.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	icon, err := LoadIcon(path)
	if err != nil {
		t.Fatalf("LoadIcon: %v", err)
	}
	if icon.Bounds().Dx() != 4 || icon.Bounds().Dy() != 2 {
		t.Errorf("bounds = %v", icon.Bounds())
	}
	if got := icon.RGBAAt(1, 1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("pixel = %v", got)
	}

	if _, err := LoadIcon(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("missing icon loaded")
	}
}
