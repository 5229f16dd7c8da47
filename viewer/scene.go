package viewer

import (
	"math"
	"net/url"
	"path"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mogaika/model_viewer/config"
	"github.com/mogaika/model_viewer/utils"
)

// Scene is the declarative setup the browser renderer builds once.
type Scene struct {
	Camera   SceneCamera `json:"camera"`
	Lights   []Light     `json:"lights"`
	Grid     Grid        `json:"grid"`
	Ground   Plane       `json:"ground"`
	Renderer Renderer    `json:"renderer"`
	ModelURL string      `json:"model_url"`
}

type SceneCamera struct {
	FovDegrees float64    `json:"fov"`
	Near       float64    `json:"near"`
	Far        float64    `json:"far"`
	Position   mgl64.Vec3 `json:"position"`
}

const (
	LightAmbient     = "ambient"
	LightDirectional = "directional"
)

type Light struct {
	Kind      string         `json:"kind"`
	Color     utils.HexColor `json:"color"`
	Intensity float64        `json:"intensity"`
	Position  *mgl64.Vec3    `json:"position,omitempty"`
}

type Grid struct {
	Size        float64        `json:"size"`
	Divisions   int            `json:"divisions"`
	CenterColor utils.HexColor `json:"center_color"`
	LineColor   utils.HexColor `json:"line_color"`
}

type Plane struct {
	Size        float64        `json:"size"`
	Color       utils.HexColor `json:"color"`
	Opacity     float64        `json:"opacity"`
	Transparent bool           `json:"transparent"`
	RotationX   float64        `json:"rotation_x"`
	// below the grid to avoid z-fighting
	PositionY float64 `json:"position_y"`
}

type Renderer struct {
	Antialias  bool           `json:"antialias"`
	ClearColor utils.HexColor `json:"clear_color"`
	Shadows    bool           `json:"shadows"`
}

func NewScene(cfg config.Config) Scene {
	return Scene{
		Camera: SceneCamera{
			FovDegrees: cfg.Camera.FovDegrees,
			Near:       cfg.Camera.Near,
			Far:        cfg.Camera.Far,
			Position:   mgl64.Vec3(cfg.Camera.Position),
		},
		Lights: []Light{
			{Kind: LightAmbient, Color: 0xffffff, Intensity: 0.5},
			{Kind: LightDirectional, Color: 0xffffff, Intensity: 0.5, Position: &mgl64.Vec3{0, 1, 1}},
		},
		Grid: Grid{
			Size:        cfg.Grid.Size,
			Divisions:   cfg.Grid.Divisions,
			CenterColor: utils.HexColor(cfg.Grid.Color),
			LineColor:   utils.HexColor(cfg.Grid.Color),
		},
		Ground: Plane{
			Size:        cfg.Grid.Size,
			Color:       0x111111,
			Opacity:     0.6,
			Transparent: true,
			RotationX:   -math.Pi / 2,
			PositionY:   -0.01,
		},
		Renderer: Renderer{
			Antialias:  true,
			ClearColor: 0x000000,
			Shadows:    true,
		},
		ModelURL: ModelURL(cfg.Model),
	}
}

// ModelURL is where the web server exposes a file of the models directory
func ModelURL(modelPath string) string {
	u := url.URL{Path: path.Join("/models", modelPath)}
	return u.EscapedPath()
}
