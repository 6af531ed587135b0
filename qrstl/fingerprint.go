package qrstl

import (
	"encoding/binary"
	"math"

	xxhash "github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the exact float32 bits of every normal and vertex in
// order. Identical triangle sequences always share a fingerprint.
func Fingerprint(tris []Triangle) uint64 {
	d := xxhash.New()
	var buf [48]byte
	for _, t := range tris {
		off := 0
		for _, v := range [4]Vec3{t.Normal, t.Vertices[0], t.Vertices[1], t.Vertices[2]} {
			for _, f := range v {
				binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
				off += 4
			}
		}
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
