// Package export writes classified cube frames to interchange formats.
package export

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/wirecube/pkg/cube"
	"github.com/taigrr/wirecube/pkg/render"
)

// Primitive names, also used as material names.
const (
	FrontName  = "front"
	HiddenName = "hidden"
)

// Document builds a glTF document holding the rotated cube as one mesh with
// a LINES primitive per non-empty edge set of f. f must come from c so the
// rotation matches.
//
// The pipeline is y-down looking along +Z; glTF is y-up looking along -Z.
// A half turn about X maps one onto the other.
func Document(c *cube.Cube, f cube.Frame, theme render.Theme) *gltf.Document {
	doc := gltf.NewDocument()

	toGLTF := mgl64.Rotate3DX(math.Pi)
	positions := make([][3]float32, cube.NumVertices)
	for i := range positions {
		p := c.Rotated(i)
		q := toGLTF.Mul3x1(mgl64.Vec3{p.X, p.Y, p.Z})
		positions[i] = [3]float32{float32(q.X()), float32(q.Y()), float32(q.Z())}
	}
	pos := modeler.WritePosition(doc, positions)

	mesh := &gltf.Mesh{Name: "wirecube"}
	edges := c.Edges()
	add := func(name string, segs []cube.Segment, style render.Style) {
		if len(segs) == 0 {
			return
		}
		indices := make([]uint16, 0, 2*len(segs))
		for _, s := range segs {
			e := edges[s.Edge]
			indices = append(indices, uint16(e.Start), uint16(e.End))
		}
		doc.Materials = append(doc.Materials, &gltf.Material{
			Name: name,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float64{
					float64(style.Color.R) / 255,
					float64(style.Color.G) / 255,
					float64(style.Color.B) / 255,
					float64(style.Color.A) / 255,
				},
			},
			AlphaMode: gltf.AlphaBlend,
		})
		mesh.Primitives = append(mesh.Primitives, &gltf.Primitive{
			Mode:       gltf.PrimitiveLines,
			Indices:    gltf.Index(modeler.WriteIndices(doc, indices)),
			Attributes: map[string]int{gltf.POSITION: pos},
			Material:   gltf.Index(len(doc.Materials) - 1),
			Extras:     map[string]any{"set": name},
		})
	}
	add(FrontName, f.Front, theme.Front)
	add(HiddenName, f.Hidden, theme.Hidden)

	doc.Meshes = append(doc.Meshes, mesh)
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "wirecube", Mesh: gltf.Index(len(doc.Meshes) - 1)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	return doc
}

// WriteGLB encodes the frame as binary glTF to w.
func WriteGLB(w io.Writer, c *cube.Cube, f cube.Frame, theme render.Theme) error {
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(Document(c, f, theme)); err != nil {
		return fmt.Errorf("encode glb: %w", err)
	}
	return nil
}

// SaveGLB writes the frame as a .glb file.
func SaveGLB(path string, c *cube.Cube, f cube.Frame, theme render.Theme) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return WriteGLB(out, c, f, theme)
}
