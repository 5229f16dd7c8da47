package gltfutils

import (
	"io"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

var identityMatrix = [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

func NewDocument() *gltf.Document {
	return gltf.NewDocument()
}

func ExportBinary(w io.Writer, doc *gltf.Document) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	return encoder.Encode(doc)
}

// DecodeBinary reads a self-contained document, external buffers are not resolved
func DecodeBinary(r io.Reader) (*gltf.Document, error) {
	var doc gltf.Document
	if err := gltf.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrapf(err, "Failed to decode gltf")
	}
	return &doc, nil
}

// SceneRoots returns root nodes of the default scene, or of the first
// scene, or every parentless node when the document has no scenes.
func SceneRoots(doc *gltf.Document) []uint32 {
	if len(doc.Scenes) != 0 {
		iScene := uint32(0)
		if doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes) {
			iScene = *doc.Scene
		}
		return doc.Scenes[iScene].Nodes
	}

	isChild := make([]bool, len(doc.Nodes))
	for _, node := range doc.Nodes {
		for _, child := range node.Children {
			if int(child) < len(isChild) {
				isChild[child] = true
			}
		}
	}
	roots := make([]uint32, 0)
	for iNode := range doc.Nodes {
		if !isChild[iNode] {
			roots = append(roots, uint32(iNode))
		}
	}
	return roots
}

// WithRootTranslation returns a shallow copy of doc whose default scene
// hangs under one new node translated by t. doc itself is not modified.
func WithRootTranslation(doc *gltf.Document, name string, t [3]float32) *gltf.Document {
	out := *doc

	roots := SceneRoots(doc)
	children := make([]uint32, len(roots))
	copy(children, roots)

	out.Nodes = make([]*gltf.Node, len(doc.Nodes), len(doc.Nodes)+1)
	copy(out.Nodes, doc.Nodes)
	out.Nodes = append(out.Nodes, &gltf.Node{
		Name:        name,
		Matrix:      identityMatrix,
		Rotation:    [4]float32{0, 0, 0, 1},
		Scale:       [3]float32{1, 1, 1},
		Translation: t,
		Children:    children,
	})

	out.Scenes = []*gltf.Scene{{
		Name:  name,
		Nodes: []uint32{uint32(len(out.Nodes) - 1)},
	}}
	out.Scene = gltf.Index(0)
	return &out
}
