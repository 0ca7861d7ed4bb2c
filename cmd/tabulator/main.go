package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/app"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/config"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/logger"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (default: $TABULATOR_CONFIG)")
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	logLevel := flag.String("loglevel", "", "Log level: debug, info, warn, error (overrides config)")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `tabulator - Competition Classification & Award Ranking Server

Usage:
  tabulator [options]

Options:
  -config string    Path to YAML config file (default: $TABULATOR_CONFIG)
  -addr string      HTTP listen address (overrides config)
  -loglevel string  Log level: debug, info, warn, error (overrides config)
  -version          Show version and exit
  -help             Show this help message

Configuration may also be supplied via TABULATOR_-prefixed environment
variables (TABULATOR_ADDR, TABULATOR_MASTER_DB_PATH, TABULATOR_EVENT_DIR,
TABULATOR_LOG_LEVEL).

Examples:
  tabulator                            # Run with defaults on :8080
  tabulator -addr :9000                # Custom listen address
  tabulator -config tabulator.yaml     # Explicit config file
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("tabulator %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	appLog := logger.NewWithLevel(logger.ParseLevel(cfg.LogLevel))

	a, err := app.New(appLog, cfg)
	if err != nil {
		log.Fatal("Failed to initialize application: ", err)
	}
	defer a.Close()

	if err := a.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
