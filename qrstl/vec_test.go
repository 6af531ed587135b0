package qrstl

import "testing"

func TestVecArithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	if got, want := Add(a, b), (Vec3{5, -3, 9}); got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
	if got, want := Sub(a, b), (Vec3{-3, 7, -3}); got != want {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
	if got, want := Neg(a), (Vec3{-1, -2, -3}); got != want {
		t.Errorf("Neg() = %v, want %v", got, want)
	}
	if got, want := Scale(2.5, a), (Vec3{2.5, 5, 7.5}); got != want {
		t.Errorf("Scale() = %v, want %v", got, want)
	}
}

func TestCross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if got, want := Cross(x, y), (Vec3{0, 0, 1}); got != want {
		t.Errorf("Cross(x, y) = %v, want %v", got, want)
	}
	if got, want := Cross(y, x), (Vec3{0, 0, -1}); got != want {
		t.Errorf("Cross(y, x) = %v, want %v", got, want)
	}
}

func TestScaleTriangleKeepsNormal(t *testing.T) {
	tri := Triangle{
		Normal:   Vec3{0, 0, 1},
		Vertices: [3]Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	}
	got := ScaleTriangle(3, tri)
	if got.Normal != tri.Normal {
		t.Errorf("normal changed to %v", got.Normal)
	}
	want := [3]Vec3{{3, 0, 0}, {0, 3, 0}, {0, 0, 3}}
	if got.Vertices != want {
		t.Errorf("vertices = %v, want %v", got.Vertices, want)
	}
}

func TestUnit(t *testing.T) {
	if got := Unit(Vec3{}); got != (Vec3{}) {
		t.Errorf("Unit(zero) = %v, want zero", got)
	}
	l := Length(Unit(Vec3{3, 4, 12}))
	if l < 0.999 || l > 1.001 {
		t.Errorf("Length(Unit()) = %v, want ~1", l)
	}
}

func TestFaceNormal(t *testing.T) {
	ccw := Triangle{Vertices: [3]Vec3{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}}}
	if got, want := FaceNormal(ccw), (Vec3{0, 0, 1}); got != want {
		t.Errorf("FaceNormal(ccw) = %v, want %v", got, want)
	}
	degenerate := Triangle{Vertices: [3]Vec3{{1, 1, 1}, {1, 1, 1}, {2, 2, 2}}}
	if got := FaceNormal(degenerate); got != (Vec3{}) {
		t.Errorf("FaceNormal(degenerate) = %v, want zero", got)
	}
}
