package geom

import "testing"

func TestConvert(t *testing.T) {
	if got := FromArray([2]float32{1, 0}); got != (Point{1, 0}) {
		t.Errorf("FromArray = %v", got)
	}
	if got := (Point{1, 0}).Vec3(); got != [3]float32{1, 0, 0} {
		t.Errorf("Vec3 = %v", got)
	}
	if got := Pt(0.25, -0.5).Array(); got != [2]float32{0.25, -0.5} {
		t.Errorf("Array = %v", got)
	}
}

func TestOps(t *testing.T) {
	tests := []struct {
		name      string
		got, want Point
	}{
		{"add", Pt(0.25, 0.75).Add(Pt(0.75, 0.25)), Pt(1, 1)},
		{"sub", Pt(0.75, 1).Sub(Pt(0.25, 0.5)), Pt(0.5, 0.5)},
		{"add scalar", Pt(0.25, 0.5).AddScalar(0.25), Pt(0.5, 0.75)},
		{"sub scalar", Pt(0.5, 1).SubScalar(0.25), Pt(0.25, 0.75)},
		{"add x sub y", Pt(-0.5, 0.5).AddXSubY(0.5), Pt(0, 0)},
		{"scale", Pt(0.5, -1).Scale(2), Pt(1, -2)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestWithin(t *testing.T) {
	a, b := Pt(-0.5, 0.5), Pt(0.5, -0.5)
	tests := []struct {
		p    Point
		want bool
	}{
		{Origin, true},
		{Pt(0.5, 0.5), true}, // inclusive
		{Pt(-0.5, -0.5), true},
		{Pt(0.9, 0.9), false},
		{Pt(0, 0.51), false},
	}
	for _, tt := range tests {
		if got := tt.p.Within(a, b); got != tt.want {
			t.Errorf("%v.Within(%v,%v) = %v, want %v", tt.p, a, b, got, tt.want)
		}
		// corner order is irrelevant
		if got := tt.p.Within(b, a); got != tt.want {
			t.Errorf("%v.Within(%v,%v) = %v, want %v", tt.p, b, a, got, tt.want)
		}
		if got := tt.p.Within(Pt(a.X, b.Y), Pt(b.X, a.Y)); got != tt.want {
			t.Errorf("%v.Within(flipped) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if !FullScreen.Contains(Pt(1, -1)) {
		t.Error("FullScreen should contain its corner")
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		p    Point
		want float32
	}{
		{Origin, 0},
		{Pt(3, 4), 5},
		{Pt(-1, 0), 1},
	}
	for _, tt := range tests {
		if got := tt.p.Len(); got != tt.want {
			t.Errorf("%v.Len() = %v, want %v", tt.p, got, tt.want)
		}
	}
	if v := Pt(1, 2).Vec2(); v.X() != 1 || v.Y() != 2 {
		t.Errorf("Vec2 = %v", v)
	}
}
