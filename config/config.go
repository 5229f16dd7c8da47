// Package config holds viewer settings. A YAML file may override any of
// the defaults.
package config

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mogaika/model_viewer/controls"
	"github.com/mogaika/model_viewer/frame"
)

type Camera struct {
	FovDegrees float64    `yaml:"fov"`
	Near       float64    `yaml:"near"`
	Far        float64    `yaml:"far"`
	Position   [3]float64 `yaml:"position"`
}

type Grid struct {
	Size      float64 `yaml:"size"`
	Divisions int     `yaml:"divisions"`
	Color     uint32  `yaml:"color"`
}

type Config struct {
	Listen    string `yaml:"listen"`
	WebPath   string `yaml:"web"`
	ModelsDir string `yaml:"models"`
	// path inside ModelsDir
	Model string `yaml:"model"`

	Camera   Camera          `yaml:"camera"`
	Grid     Grid            `yaml:"grid"`
	Frame    frame.Params    `yaml:"frame"`
	Controls controls.Params `yaml:"controls"`
}

func Default() Config {
	return Config{
		Listen:    ":8000",
		WebPath:   "web",
		ModelsDir: "models",
		Model:     "human/female Avatar.glb",
		Camera: Camera{
			FovDegrees: 75,
			Near:       0.1,
			Far:        1000,
			Position:   [3]float64{0, 1.5, 3},
		},
		Grid: Grid{
			Size:      30,
			Divisions: 20,
			Color:     0x9370DB,
		},
		Frame:    frame.DefaultParams,
		Controls: controls.DefaultParams,
	}
}

// Load reads path over the defaults, keys missing in the file keep defaults
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "Cannot read config %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "Cannot parse config %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "Config %q", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if math.IsNaN(c.Camera.FovDegrees) || c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		return errors.Errorf("camera fov %v outside (0, 180)", c.Camera.FovDegrees)
	}
	if math.IsNaN(c.Camera.Near) || math.IsNaN(c.Camera.Far) || c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return errors.Errorf("camera clip planes near %v far %v", c.Camera.Near, c.Camera.Far)
	}
	if c.Controls.MinScale <= 0 || c.Controls.MaxScale < c.Controls.MinScale {
		return errors.Errorf("controls scale range [%v, %v]", c.Controls.MinScale, c.Controls.MaxScale)
	}
	if c.Grid.Divisions <= 0 {
		return errors.Errorf("grid divisions %d", c.Grid.Divisions)
	}
	return c.Frame.Validate()
}
