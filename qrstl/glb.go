package qrstl

import (
	"bytes"
	"errors"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// weld merges identical (position, normal) pairs into an indexed mesh.
// Faces keep their own flat normal, so only coplanar neighbours share
// vertices.
func weld(tris []Triangle) (positions, normals [][3]float32, indices []uint32) {
	type key struct{ p, n Vec3 }
	seen := make(map[key]uint32, len(tris))
	indices = make([]uint32, 0, len(tris)*3)
	for _, t := range tris {
		n := FaceNormal(t)
		for _, v := range t.Vertices {
			k := key{v, n}
			idx, ok := seen[k]
			if !ok {
				idx = uint32(len(positions))
				seen[k] = idx
				positions = append(positions, v)
				normals = append(normals, n)
			}
			indices = append(indices, idx)
		}
	}
	return positions, normals, indices
}

// ErrEmptyMesh is wrapped when there is nothing to put in a glTF mesh.
var ErrEmptyMesh = errors.New("mesh has no triangles")

// WriteGLB writes tris to w as a binary glTF with one mesh and node.
// glTF primitives need at least one attribute, so tris must not be empty.
func WriteGLB(w io.Writer, tris []Triangle) error {
	if len(tris) == 0 {
		return &SerializationError{Err: ErrEmptyMesh}
	}
	positions, normals, indices := weld(tris)

	doc := gltf.NewDocument()
	doc.Asset.Generator = "qrstl -> GLB"

	prim := &gltf.Primitive{
		Attributes: map[string]int{
			gltf.POSITION: modeler.WritePosition(doc, positions),
			gltf.NORMAL:   modeler.WriteNormal(doc, normals),
		},
		Indices:  gltf.Index(modeler.WriteIndices(doc, indices)),
		Material: gltf.Index(0),
	}

	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float64{1, 1, 1, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	doc.Materials = []*gltf.Material{{PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}}
	doc.Meshes = []*gltf.Mesh{{Name: SolidName, Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: SolidName, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return &SerializationError{Err: err}
	}
	return nil
}

// GLBBytes returns tris as an in-memory .glb file.
func GLBBytes(tris []Triangle) ([]byte, error) {
	var out bytes.Buffer
	if err := WriteGLB(&out, tris); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
