package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"

	"github.com/mogaika/model_viewer/config"
	"github.com/mogaika/model_viewer/status"
	"github.com/mogaika/model_viewer/utils"
	"github.com/mogaika/model_viewer/viewer"
	"github.com/mogaika/model_viewer/web"
)

func main() {
	var cfgPath, addr, webPath, modelsDir, modelPath string
	var fov float64
	var debug bool
	flag.StringVar(&cfgPath, "config", "", "Path to yaml config, defaults are used when empty")
	flag.StringVar(&addr, "i", "", "Address of server (overrides config)")
	flag.StringVar(&webPath, "web", "", "Path to folder with web/data (overrides config)")
	flag.StringVar(&modelsDir, "models", "", "Path to models folder (overrides config)")
	flag.StringVar(&modelPath, "model", "", "Model to show, relative to models folder (overrides config)")
	flag.Float64Var(&fov, "fov", 0, "Vertical field of view in degrees (overrides config)")
	flag.BoolVar(&debug, "debug", false, "Dump config and computed frame to log")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			log.Fatal(err)
		}
	}
	if addr != "" {
		cfg.Listen = addr
	}
	if webPath != "" {
		cfg.WebPath = webPath
	}
	if modelsDir != "" {
		cfg.ModelsDir = modelsDir
	}
	if modelPath != "" {
		cfg.Model = modelPath
	}
	if fov != 0 {
		cfg.Camera.FovDegrees = fov
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if debug {
		utils.LogDump("[main] config", cfg)
	}

	hub := status.Default()
	v := viewer.New(cfg, hub)

	done := v.LoadFile(context.Background(), filepath.Join(cfg.ModelsDir, filepath.FromSlash(cfg.Model)))
	go func() {
		if err := <-done; err != nil {
			log.Printf("[main] Initial model not loaded: %v", err)
			return
		}
		if debug {
			if st, err := v.State(); err == nil {
				utils.LogDump("[main] framed", st)
			}
		}
	}()

	s := &web.Server{
		Viewer:    v,
		Status:    hub,
		WebPath:   cfg.WebPath,
		ModelsDir: cfg.ModelsDir,
	}
	if err := web.StartServer(cfg.Listen, s); err != nil {
		log.Fatal(err)
	}
}
