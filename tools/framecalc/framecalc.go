package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mogaika/model_viewer/config"
	"github.com/mogaika/model_viewer/frame"
	"github.com/mogaika/model_viewer/model"
	"github.com/mogaika/model_viewer/utils"
)

type output struct {
	Model     string            `json:"model"`
	Bounds    frame.BoundingBox `json:"bounds"`
	Centering mgl64.Vec3        `json:"centering"`
	Frame     frame.CameraFrame `json:"frame"`
}

func main() {
	var cfgPath, modelPath, centered string
	var fov float64
	var dump bool
	flag.StringVar(&cfgPath, "config", "", "Path to yaml config for frame params")
	flag.StringVar(&modelPath, "model", "", "Path to .gltf/.glb")
	flag.Float64Var(&fov, "fov", 75, "Vertical field of view in degrees")
	flag.StringVar(&centered, "centered", "", "Write centered .glb to this path")
	flag.BoolVar(&dump, "dump", false, "Spew dump instead of json")
	flag.Parse()

	if modelPath == "" {
		flag.PrintDefaults()
		return
	}

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			log.Fatal(err)
		}
	}

	m, err := model.Open(modelPath)
	if err != nil {
		log.Fatal(err)
	}

	f, err := frame.ComputeFrameWithParams(m.Bounds, mgl64.DegToRad(fov), cfg.Frame)
	if err != nil {
		log.Fatal(err)
	}

	out := output{
		Model:     m.Name,
		Bounds:    m.Bounds,
		Centering: m.Centering(),
		Frame:     f,
	}

	if centered != "" {
		file, err := os.Create(centered)
		if err != nil {
			log.Fatal(err)
		}
		if err := m.ExportCentered(file); err != nil {
			log.Fatal(err)
		}
		if err := file.Close(); err != nil {
			log.Fatal(err)
		}
	}

	if dump {
		utils.Dump(out)
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}
