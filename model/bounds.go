package model

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/mogaika/model_viewer/frame"
	"github.com/mogaika/model_viewer/utils"
	"github.com/mogaika/model_viewer/utils/gltfutils"
)

var ErrNoGeometry = errors.New("no geometry")

// ComputeBounds returns the world space box of every mesh position
// reachable from the scene roots. Skins are ignored, bind pose is measured.
func ComputeBounds(doc *gltf.Document) (frame.BoundingBox, error) {
	box := frame.EmptyBox()
	visited := make([]bool, len(doc.Nodes))

	var walk func(iNode uint32, parent mgl64.Mat4) error
	walk = func(iNode uint32, parent mgl64.Mat4) error {
		if int(iNode) >= len(doc.Nodes) {
			return errors.Errorf("node %d out of range (%d nodes)", iNode, len(doc.Nodes))
		}
		if visited[iNode] {
			return errors.Errorf("node %d referenced twice", iNode)
		}
		visited[iNode] = true

		node := doc.Nodes[iNode]
		world := parent.Mul4(LocalMatrix(node))

		if node.Mesh != nil {
			if err := extendByMesh(doc, *node.Mesh, world, &box); err != nil {
				return errors.Wrapf(err, "node %d %q", iNode, node.Name)
			}
		}
		for _, child := range node.Children {
			if err := walk(child, world); err != nil {
				return err
			}
		}
		return nil
	}

	for _, root := range gltfutils.SceneRoots(doc) {
		if err := walk(root, mgl64.Ident4()); err != nil {
			return box, err
		}
	}

	if box.Empty() {
		return box, ErrNoGeometry
	}
	return box, nil
}

func extendByMesh(doc *gltf.Document, iMesh uint32, world mgl64.Mat4, box *frame.BoundingBox) error {
	if int(iMesh) >= len(doc.Meshes) {
		return errors.Errorf("mesh %d out of range", iMesh)
	}
	mesh := doc.Meshes[iMesh]

	var positions [][3]float32
	for iPrimitive, primitive := range mesh.Primitives {
		iAccessor, ok := primitive.Attributes["POSITION"]
		if !ok {
			continue
		}
		if int(iAccessor) >= len(doc.Accessors) {
			return errors.Errorf("mesh %q primitive %d: accessor %d out of range", mesh.Name, iPrimitive, iAccessor)
		}

		var err error
		positions, err = modeler.ReadPosition(doc, doc.Accessors[iAccessor], positions[:0])
		if err != nil {
			return errors.Wrapf(err, "mesh %q primitive %d", mesh.Name, iPrimitive)
		}

		for _, p := range positions {
			v := mgl64.TransformCoordinate(utils.Vec3From32(p), world)
			if utils.IsFiniteV3(v) {
				box.Extend(v)
			}
		}
	}
	return nil
}

var zeroMatrix [16]float32

// LocalMatrix is the node transform. Zero valued fields mean "not set"
// and fall back to glTF defaults.
func LocalMatrix(node *gltf.Node) mgl64.Mat4 {
	if node.Matrix != zeroMatrix {
		if m := utils.Mat4From32(node.Matrix); m != mgl64.Ident4() {
			return m
		}
	}

	rotation := mgl64.QuatIdent()
	if node.Rotation != [4]float32{} {
		rotation = utils.QuatFrom32(node.Rotation)
	}
	scale := mgl64.Vec3{1, 1, 1}
	if node.Scale != [3]float32{} {
		scale = utils.Vec3From32(node.Scale)
	}
	return utils.TRS(utils.Vec3From32(node.Translation), rotation, scale)
}
