package glbackend

import (
	"testing"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// fakeObject answers the parameter queries of one shader or program.
type fakeObject struct {
	params map[uint32]int32
	log    string
}

func (f *fakeObject) get(_ uint32, pname uint32, v *int32) { *v = f.params[pname] }

func (f *fakeObject) read(_ uint32, n int32, _ *int32, dst *uint8) {
	copy(unsafe.Slice(dst, int(n)), f.log)
}

func TestStatus(t *testing.T) {
	ok := &fakeObject{params: map[uint32]int32{gl.COMPILE_STATUS: gl.TRUE}}
	if !status(1, ok.get, gl.COMPILE_STATUS) {
		t.Error("compiled shader reported as failed")
	}
	bad := &fakeObject{params: map[uint32]int32{gl.LINK_STATUS: gl.FALSE}}
	if status(1, bad.get, gl.LINK_STATUS) {
		t.Error("failed link reported as ok")
	}
}

func TestInfoLog(t *testing.T) {
	msg := "0:3(1): error: syntax error\n\x00"
	obj := &fakeObject{params: map[uint32]int32{gl.INFO_LOG_LENGTH: int32(len(msg))}, log: msg}
	if got := infoLog(1, obj.get, obj.read); got != "0:3(1): error: syntax error" {
		t.Errorf("infoLog = %q", got)
	}

	empty := &fakeObject{params: map[uint32]int32{}}
	if got := infoLog(1, empty.get, empty.read); got != "no log" {
		t.Errorf("empty infoLog = %q", got)
	}
}
