package model

import (
	"context"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mogaika/model_viewer/frame"
)

type LoadFunc func(ctx context.Context) (*Model, error)

// Result is handed over once per load, by value.
type Result struct {
	Model     *Model
	Frame     frame.CameraFrame
	Centering mgl64.Vec3
	Err       error
}

func OpenFunc(path string) LoadFunc {
	return func(ctx context.Context) (*Model, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Open(path)
	}
}

func ReadyFunc(m *Model) LoadFunc {
	return func(ctx context.Context) (*Model, error) {
		return m, nil
	}
}

// LoadAsync runs load in its own goroutine and computes the camera frame in
// its continuation. The channel yields exactly one Result and is closed.
// The frame is never computed when the load fails or ctx is done.
func LoadAsync(ctx context.Context, load LoadFunc, fov float64, params frame.Params) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)

		m, err := load(ctx)
		if err == nil {
			err = ctx.Err()
		}
		if err != nil {
			out <- Result{Err: err}
			return
		}

		f, err := frame.ComputeFrameWithParams(m.Bounds, fov, params)
		if err != nil {
			out <- Result{Model: m, Err: err}
			return
		}
		out <- Result{
			Model:     m,
			Frame:     f,
			Centering: frame.CenteringTranslation(m.Bounds),
		}
	}()
	return out
}
