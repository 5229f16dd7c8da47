// Package model loads a glTF asset and measures it for framing.
package model

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"

	"github.com/mogaika/model_viewer/frame"
	"github.com/mogaika/model_viewer/utils"
	"github.com/mogaika/model_viewer/utils/gltfutils"
)

type Model struct {
	Name   string
	Doc    *gltf.Document
	Bounds frame.BoundingBox
}

func New(name string, doc *gltf.Document) (*Model, error) {
	bounds, err := ComputeBounds(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "Model %q", name)
	}
	return &Model{Name: name, Doc: doc, Bounds: bounds}, nil
}

// Open reads .gltf (with external buffers next to it) or .glb
func Open(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open %q", path)
	}
	return New(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), doc)
}

func Decode(name string, r io.Reader) (*Model, error) {
	doc, err := gltfutils.DecodeBinary(r)
	if err != nil {
		return nil, errors.Wrapf(err, "Model %q", name)
	}
	return New(name, doc)
}

func (m *Model) Sphere() frame.BoundingSphere {
	return m.Bounds.Sphere()
}

func (m *Model) Centering() mgl64.Vec3 {
	return frame.CenteringTranslation(m.Bounds)
}

// ExportCentered writes the model as .glb under a root node that moves
// it to the origin.
func (m *Model) ExportCentered(w io.Writer) error {
	doc := gltfutils.WithRootTranslation(m.Doc, m.Name, utils.Vec3To32(m.Centering()))
	if err := gltfutils.ExportBinary(w, doc); err != nil {
		return errors.Wrapf(err, "Failed to export %q", m.Name)
	}
	return nil
}
