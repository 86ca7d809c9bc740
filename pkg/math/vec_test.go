package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec2IsFinite(t *testing.T) {
	tests := []struct {
		v    Vec2
		want bool
	}{
		{Vec2{1, 2}, true},
		{Vec2{math.Inf(1), 0}, false},
		{Vec2{0, math.Inf(-1)}, false},
		{Vec2{math.NaN(), 0}, false},
	}
	for _, tt := range tests {
		if got := tt.v.IsFinite(); got != tt.want {
			t.Errorf("%v.IsFinite() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Homogeneous(t *testing.T) {
	got := Vec3{1, 2, 3}.Homogeneous()
	if got != (Vec4{1, 2, 3, 1}) {
		t.Errorf("Homogeneous() = %v, want {1 2 3 1}", got)
	}
	if got.XYZ() != (Vec3{1, 2, 3}) {
		t.Errorf("XYZ() = %v, want {1 2 3}", got.XYZ())
	}
}
