package main

import (
	"flag"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"limits-fits/api"
	"limits-fits/core/material"
	"limits-fits/internal/config"
	"limits-fits/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgFile := flag.String("config", "", "config file path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	path := *cfgFile
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".limits-fits", "config.json")
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		logging.Fatal("loading config", zap.Error(err))
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Fatal("initializing logging", zap.Error(err))
	}
	defer logging.Sync()

	library := material.NewLibrary()
	if cfg.Library.Path != "" {
		if err := library.LoadFile(cfg.Library.Path); err != nil {
			logging.Fatal("loading material library", zap.Error(err))
		}
	}

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	server := api.NewServer(library, version)
	if err := server.Start(listen); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
}
