package scratch

import (
	"testing"
	"time"
)

func TestLines(t *testing.T) {
	b := New(0)
	if b.Cap() != 1024 {
		t.Errorf("default capacity = %d", b.Cap())
	}

	first := b.Begin().S("Frame: ").I(42).End()
	second := b.Begin().Pad(2, ' ').S("Vertices: ").I(-7).R('é').End()
	if first != "Frame: 42" {
		t.Errorf("first = %q", first)
	}
	if second != "  Vertices: -7é" {
		t.Errorf("second = %q", second)
	}

	b.Reset()
	if b.Len() != 0 {
		t.Errorf("len after reset = %d", b.Len())
	}
	b.Begin().S("overwrite").End()
	if first != "Frame: 42" {
		t.Errorf("line changed after reset: %q", first)
	}
}

func TestUnits(t *testing.T) {
	b := New(64)
	tests := []struct {
		got  string
		want string
	}{
		{b.Begin().F(3.14159, 2).End(), "3.14"},
		{b.Begin().MB(3 << 20).End(), "3.000 MB"},
		{b.Begin().Ms(1500 * time.Microsecond).End(), "1.500 ms"},
		{b.Begin().Bool(true).End(), "true"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
