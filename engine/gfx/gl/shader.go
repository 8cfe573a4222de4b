package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/poliosis/engine/assets"
)

// loadProgram builds a program from the embedded <name>.vert.glsl and
// <name>.frag.glsl pair.
func loadProgram(name string) (uint32, error) {
	vs, err := assets.Shader(name + ".vert.glsl")
	if err != nil {
		return 0, err
	}
	fs, err := assets.Shader(name + ".frag.glsl")
	if err != nil {
		return 0, err
	}
	prog, err := buildProgram(
		stage{gl.VERTEX_SHADER, name + ".vert.glsl", vs},
		stage{gl.FRAGMENT_SHADER, name + ".frag.glsl", fs},
	)
	if err != nil {
		return 0, fmt.Errorf("%s program: %w", name, err)
	}
	return prog, nil
}

// stage is one shader stage awaiting compilation.
type stage struct {
	kind uint32
	name string
	src  string
}

// buildProgram compiles every stage and links them. Stage objects are
// released whatever the outcome; the program only on failure.
func buildProgram(stages ...stage) (uint32, error) {
	ids := make([]uint32, 0, len(stages))
	defer func() {
		for _, id := range ids {
			gl.DeleteShader(id)
		}
	}()
	for _, st := range stages {
		id, err := compile(st)
		if err != nil {
			return 0, err
		}
		ids = append(ids, id)
	}

	prog := gl.CreateProgram()
	for _, id := range ids {
		gl.AttachShader(prog, id)
	}
	gl.LinkProgram(prog)
	if ok := status(prog, gl.GetProgramiv, gl.LINK_STATUS); !ok {
		msg := infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link: %s", msg)
	}
	for _, id := range ids {
		gl.DetachShader(prog, id)
	}
	return prog, nil
}

func compile(st stage) (uint32, error) {
	id := gl.CreateShader(st.kind)
	src, free := gl.Strs(st.src + "\x00")
	gl.ShaderSource(id, 1, src, nil)
	free()
	gl.CompileShader(id)
	if !status(id, gl.GetShaderiv, gl.COMPILE_STATUS) {
		msg := infoLog(id, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(id)
		return 0, fmt.Errorf("compile %s: %s", st.name, msg)
	}
	return id, nil
}

func status(obj uint32, get func(uint32, uint32, *int32), param uint32) bool {
	var v int32
	get(obj, param, &v)
	return v != gl.FALSE
}

// infoLog reads a shader or program log without the trailing NUL.
func infoLog(obj uint32, get func(uint32, uint32, *int32), read func(uint32, int32, *int32, *uint8)) string {
	var n int32
	get(obj, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no log"
	}
	buf := make([]byte, n)
	read(obj, n, nil, &buf[0])
	return strings.TrimSpace(strings.TrimRight(string(buf), "\x00"))
}
