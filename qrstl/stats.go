package qrstl

// Stats summarises a triangle sequence.
type Stats struct {
	Triangles int
	Min, Max  Vec3
}

// Size is the extent of the bounding box.
func (s Stats) Size() Vec3 {
	return Sub(s.Max, s.Min)
}

// Measure returns the triangle count and bounding box of tris. The box is
// zero for an empty sequence.
func Measure(tris []Triangle) Stats {
	st := Stats{Triangles: len(tris)}
	for i, t := range tris {
		for j, v := range t.Vertices {
			if i == 0 && j == 0 {
				st.Min, st.Max = v, v
				continue
			}
			for k := range v {
				st.Min[k] = min(st.Min[k], v[k])
				st.Max[k] = max(st.Max[k], v[k])
			}
		}
	}
	return st
}
