package qrstl

import "math"

// Vec3 is a position or direction in model space.
type Vec3 [3]float32

// Triangle is one facet of a non-indexed mesh. A zero Normal means the
// normal is unset and left to the consumer.
type Triangle struct {
	Normal   Vec3
	Vertices [3]Vec3
}

var noNormal = Vec3{0, 0, 0}

func Add(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func Sub(a, b Vec3) Vec3 {
	return Add(a, Neg(b))
}

func Neg(a Vec3) Vec3 {
	return Vec3{-a[0], -a[1], -a[2]}
}

// Scale multiplies every component of a by s.
func Scale(s float32, a Vec3) Vec3 {
	return Vec3{a[0] * s, a[1] * s, a[2] * s}
}

// ScaleTriangle scales the three vertices of t by s. The normal is kept as is.
func ScaleTriangle(s float32, t Triangle) Triangle {
	return Triangle{
		Normal: t.Normal,
		Vertices: [3]Vec3{
			Scale(s, t.Vertices[0]),
			Scale(s, t.Vertices[1]),
			Scale(s, t.Vertices[2]),
		},
	}
}

// Cross returns the cross product a x b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func Length(a Vec3) float32 {
	return float32(math.Sqrt(float64(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])))
}

// Unit returns a with length 1, or the zero vector if a has no length.
func Unit(a Vec3) Vec3 {
	l := Length(a)
	if l == 0 {
		return Vec3{}
	}
	return Scale(1/l, a)
}

// FaceNormal is the right-handed unit normal of t's vertex order.
func FaceNormal(t Triangle) Vec3 {
	v := t.Vertices
	return Unit(Cross(Sub(v[1], v[0]), Sub(v[2], v[0])))
}
