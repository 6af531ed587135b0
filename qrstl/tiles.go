package qrstl

// ThicknessRatio is the relief height of an on module, relative to the
// module size.
const ThicknessRatio = 0.25

// wallSpec describes the side wall of a raised module facing one neighbour.
// from and to are the ends of the shared edge in module units, relative to
// the module's top-left corner. invert swaps the corners handed to Rect so
// the wall faces away from the module.
type wallSpec struct {
	dx, dy   int
	from, to [2]float32
	invert   bool
}

var walls = []wallSpec{
	// left
	{-1, 0, [2]float32{0, 0}, [2]float32{0, 1}, false},
	// down
	{0, 1, [2]float32{1, 1}, [2]float32{0, 1}, true},
	// right
	{1, 0, [2]float32{1, 0}, [2]float32{1, 1}, true},
	// up
	{0, -1, [2]float32{1, 0}, [2]float32{0, 0}, false},
}

// MatrixToTriangles extrudes m into tiles of size pixelSize: on modules
// become raised tiles of height pixelSize*ThicknessRatio with walls toward
// every off neighbour, off modules become flat floor tiles at z=0. The
// result is open along the outline of the matrix at z=0.
func MatrixToTriangles(m Matrix, pixelSize float32) []Triangle {
	thickness := pixelSize * ThicknessRatio
	cellThickness := float32(ThicknessRatio)

	var tris []Triangle
	for my, row := range m {
		for mx, val := range row {
			x := float32(mx)
			y := float32(my)

			if !val {
				tris = appendRect(tris,
					Scale(pixelSize, Vec3{x, y, 0}),
					Scale(pixelSize, Vec3{x + 1, y + 1, 0}),
				)
				continue
			}

			tris = appendRect(tris,
				Scale(pixelSize, Vec3{x, y, cellThickness}),
				Scale(pixelSize, Vec3{x + 1, y + 1, cellThickness}),
			)

			for _, w := range walls {
				if m.Sample(mx+w.dx, my+w.dy) {
					continue
				}
				p1 := Scale(pixelSize, Vec3{x + w.from[0], y + w.from[1], 0})
				p2 := Scale(pixelSize, Vec3{x + w.to[0], y + w.to[1], 0})
				p2[2] = thickness
				if w.invert {
					p1, p2 = p2, p1
				}
				tris = appendRect(tris, p1, p2)
			}
		}
	}
	return tris
}

// OffsetTriangles translates every vertex of tris by offset in place.
func OffsetTriangles(tris []Triangle, offset Vec3) {
	for i := range tris {
		for j := range tris[i].Vertices {
			tris[i].Vertices[j] = Add(tris[i].Vertices[j], offset)
		}
	}
}
