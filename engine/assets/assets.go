// Package assets embeds the engine's shaders and provides the window icon.
package assets

import (
	"embed"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

//go:embed shaders/*.glsl
var shaders embed.FS

// Shader returns the named GLSL source, null-terminated for OpenGL.
func Shader(name string) (string, error) {
	b, err := shaders.ReadFile("shaders/" + name)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

// LoadIcon decodes a PNG icon, or draws the built-in one when path is empty.
func LoadIcon(path string) (*image.RGBA, error) {
	if path == "" {
		return DefaultIcon(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode png %q: %w", path, err)
	}
	return toRGBA(img), nil
}

// DefaultIcon is a 32x32 yellow tile frame on black, the selection cursor.
func DefaultIcon() *image.RGBA {
	const size, frame = 32, 4
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)
	yellow := image.NewUniform(color.RGBA{0xff, 0xff, 0, 0xff})
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, size, frame),
		image.Rect(0, size-frame, size, size),
		image.Rect(0, 0, frame, size),
		image.Rect(size-frame, 0, size, size),
	} {
		draw.Draw(img, r, yellow, image.Point{}, draw.Src)
	}
	return img
}

func toRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Stride == m.Rect.Dx()*4 && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
