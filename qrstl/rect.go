package qrstl

// Rect splits the axis-aligned rectangle with opposite corners p1 and p2
// into two triangles sharing the p1-p2 diagonal.
//
// The remaining corners are mixed from both points: the first triangle takes
// (max x, min y, max z), the second (min x, max y, min z). Which side the
// face points to is decided by the argument order alone, so swapping p1 and
// p2 turns the face inside out. Every call site relies on this.
func Rect(p1, p2 Vec3) [2]Triangle {
	tri1 := Triangle{
		Normal: noNormal,
		Vertices: [3]Vec3{
			p2,
			p1,
			{max(p1[0], p2[0]), min(p1[1], p2[1]), max(p1[2], p2[2])},
		},
	}
	tri2 := Triangle{
		Normal: noNormal,
		Vertices: [3]Vec3{
			p1,
			p2,
			{min(p1[0], p2[0]), max(p1[1], p2[1]), min(p1[2], p2[2])},
		},
	}
	return [2]Triangle{tri1, tri2}
}

// appendRect appends the two triangles of Rect(p1, p2) to tris.
func appendRect(tris []Triangle, p1, p2 Vec3) []Triangle {
	r := Rect(p1, p2)
	return append(tris, r[0], r[1])
}
