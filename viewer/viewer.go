// Package viewer keeps the state of a single model viewing session: the
// scene setup, the camera, the interaction controls and the framed model.
package viewer

import (
	"context"
	"io"
	"log"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/mogaika/model_viewer/config"
	"github.com/mogaika/model_viewer/controls"
	"github.com/mogaika/model_viewer/frame"
	"github.com/mogaika/model_viewer/model"
	"github.com/mogaika/model_viewer/status"
	"github.com/mogaika/model_viewer/utils"
)

var (
	ErrNotLoaded  = errors.New("model not loaded")
	errSuperseded = errors.New("load superseded by a newer one")
)

type State struct {
	ModelId   string             `json:"model_id"`
	ModelName string             `json:"model_name"`
	Bounds    frame.BoundingBox  `json:"bounds"`
	Frame     frame.CameraFrame  `json:"frame"`
	Centering mgl64.Vec3         `json:"centering"`
	Camera    Camera             `json:"camera"`
	Transform controls.Transform `json:"transform"`
}

type Viewer struct {
	cfg      config.Config
	scene    Scene
	controls *controls.Controls
	status   *status.Hub
	names    utils.RandomNameGenerator

	lock       sync.Mutex
	camera     Camera
	model      *model.Model
	modelId    uuid.UUID
	frame      frame.CameraFrame
	centering  mgl64.Vec3
	generation uint64
}

// New creates a viewer reporting load progress to hub
func New(cfg config.Config, hub *status.Hub) *Viewer {
	return &Viewer{
		cfg:      cfg,
		scene:    NewScene(cfg),
		controls: controls.New(cfg.Controls),
		status:   hub,
		camera:   NewCamera(cfg.Camera),
	}
}

func (v *Viewer) Controls() *controls.Controls {
	return v.controls
}

func (v *Viewer) Scene() Scene {
	return v.scene
}

// Load starts load in the background. Once the model arrives its frame is
// computed and applied to the camera. The returned channel reports the
// outcome once. A newer Load or Upload wins over an older one still running.
func (v *Viewer) Load(ctx context.Context, name string, load model.LoadFunc) <-chan error {
	v.lock.Lock()
	v.generation++
	gen := v.generation
	fov := v.camera.Fov
	v.lock.Unlock()

	v.status.Progress(0, "Loading model %q", name)
	results := model.LoadAsync(ctx, load, fov, v.cfg.Frame)

	done := make(chan error, 1)
	go func() {
		defer close(done)
		r := <-results
		err := v.apply(gen, r)
		switch {
		case err == nil:
			v.status.Progress(1, "Model %q framed at distance %.3f", r.Model.Name, r.Frame.Distance)
		case errors.Is(err, errSuperseded):
			log.Printf("[viewer] Dropped result for %q: %v", name, err)
		default:
			log.Printf("[viewer] Failed to load %q: %v", name, err)
			v.status.Error("Failed to load model %q: %v", name, err)
		}
		done <- err
	}()
	return done
}

func (v *Viewer) LoadFile(ctx context.Context, path string) <-chan error {
	return v.Load(ctx, path, model.OpenFunc(path))
}

// Upload replaces the current model with a .glb stream. An empty name gets
// a random one.
func (v *Viewer) Upload(ctx context.Context, name string, r io.Reader) (State, error) {
	if name == "" {
		name = v.names.RandomName()
	}
	m, err := model.Decode(name, r)
	if err != nil {
		return State{}, err
	}
	if err := <-v.Load(ctx, name, model.ReadyFunc(m)); err != nil {
		return State{}, err
	}
	return v.State()
}

func (v *Viewer) apply(gen uint64, r model.Result) error {
	if r.Err != nil {
		return r.Err
	}

	v.lock.Lock()
	defer v.lock.Unlock()
	if gen != v.generation {
		return errSuperseded
	}

	v.model = r.Model
	v.modelId = uuid.New()
	v.frame = r.Frame
	v.centering = r.Centering
	v.camera.Apply(r.Frame)
	v.controls.Reset()
	return nil
}

func (v *Viewer) Loaded() bool {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.model != nil
}

func (v *Viewer) State() (State, error) {
	v.lock.Lock()
	defer v.lock.Unlock()
	if v.model == nil {
		return State{}, ErrNotLoaded
	}
	return State{
		ModelId:   v.modelId.String(),
		ModelName: v.model.Name,
		Bounds:    v.model.Bounds,
		Frame:     v.frame,
		Centering: v.centering,
		Camera:    v.camera,
		Transform: v.controls.Transform(),
	}, nil
}

func (v *Viewer) Camera() Camera {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.camera
}

func (v *Viewer) Resize(width, height int) (Camera, error) {
	v.lock.Lock()
	defer v.lock.Unlock()
	if err := v.camera.Resize(width, height); err != nil {
		return v.camera, err
	}
	return v.camera, nil
}

// ExportModel writes the current model, already centered, as .glb
func (v *Viewer) ExportModel(w io.Writer) (string, error) {
	v.lock.Lock()
	m := v.model
	v.lock.Unlock()
	if m == nil {
		return "", ErrNotLoaded
	}
	return m.Name, m.ExportCentered(w)
}

// ModelMatrix is the world transform of the model: user rotation and
// scale applied over the centering translation.
func (v *Viewer) ModelMatrix() (mgl64.Mat4, error) {
	v.lock.Lock()
	defer v.lock.Unlock()
	if v.model == nil {
		return mgl64.Ident4(), ErrNotLoaded
	}
	c := v.centering
	return v.controls.Transform().Matrix().Mul4(mgl64.Translate3D(c[0], c[1], c[2])), nil
}
