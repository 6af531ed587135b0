package qrstl

// FrameTriangles builds the closed base the relief sits in: a bottom plate
// at z=0, a top surround at z=height spanning base to inner on both axes
// around a square opening, and the four outer side walls. The outline is
// inner+base on each side.
//
// inner must be computed exactly like the relief's far edge so both share
// float32 coordinates. Corner order of each Rect call fixes the facing; all
// faces point out.
func FrameTriangles(base, inner, height float32) []Triangle {
	total := inner + base
	tris := make([]Triangle, 0, 18)

	// bottom
	tris = appendRect(tris, Vec3{total, total, 0}, Vec3{0, 0, 0})

	// surround
	tris = appendRect(tris, Vec3{0, 0, height}, Vec3{inner, base, height})
	tris = appendRect(tris, Vec3{0, base, height}, Vec3{base, total, height})
	tris = appendRect(tris, Vec3{base, inner, height}, Vec3{inner, total, height})
	tris = appendRect(tris, Vec3{inner, 0, height}, Vec3{total, total, height})

	// sides
	tris = appendRect(tris, Vec3{total, 0, 0}, Vec3{0, 0, height})
	tris = appendRect(tris, Vec3{0, 0, 0}, Vec3{0, total, height})
	tris = appendRect(tris, Vec3{total, total, height}, Vec3{total, 0, 0})
	tris = appendRect(tris, Vec3{0, total, height}, Vec3{total, total, 0})

	return tris
}
