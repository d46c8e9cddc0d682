package main

import (
	"flag"
	"log"
	"strings"

	"custdb/pkg/api"
	"custdb/pkg/config"
	"custdb/pkg/core"
	"custdb/pkg/storage"
)

func main() {
	configPath := flag.String("config", "", "Config file path (default: configs/custdb.yaml)")
	dataPath := flag.String("data", "", "Dataset path (overrides config)")
	format := flag.String("format", "", "Dataset format: csv or sqlite (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dataPath != "" {
		cfg.Data.Path = *dataPath
	}
	if *format != "" {
		cfg.Data.Format = strings.ToLower(*format)
	}

	var source storage.Source
	if cfg.Data.Format == "sqlite" {
		source = storage.SQLiteSource{Path: cfg.Data.Path}
	} else {
		source = storage.CSVSource{Path: cfg.Data.Path}
	}

	rows, err := source.Rows()
	if err != nil {
		log.Fatalf("Failed to read dataset %s: %v", cfg.Data.Path, err)
	}

	engine := core.NewEngine()
	engine.Load(rows)

	server := api.NewServer(engine, cfg.Display.Limit)
	if err := server.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
