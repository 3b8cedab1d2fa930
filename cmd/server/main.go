package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/docmanager/backend/internal/api"
	"github.com/docmanager/backend/internal/config"
	"github.com/docmanager/backend/internal/dms"
	"github.com/docmanager/backend/internal/logger"
	"github.com/docmanager/backend/internal/metrics"
	"github.com/docmanager/backend/internal/parser"
	"github.com/docmanager/backend/internal/storage"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	configFlag := flag.String("config", "", "path to the XML configuration file")
	flag.Parse()

	// A missing .env is not an error
	_ = godotenv.Load()

	configPath := *configFlag
	if configPath == "" {
		// Get the executable's directory for config resolution
		exePath, err := os.Executable()
		if err != nil {
			fmt.Printf("Failed to get executable path: %v\n", err)
			os.Exit(1)
		}
		configPath = filepath.Join(filepath.Dir(exePath), "docmanager.config")
	}

	// Load XML configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Ensure all data directories exist
	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Printf("Failed to create directories: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Advanced.LogLevel,
		Pretty: cfg.Advanced.PrettyLogs,
	})

	// Built-in importers plus the optional YAML table
	registry := parser.NewRegistry()
	if cfg.Importers.RegistrationFile != "" {
		regs, err := parser.LoadRegistrations(cfg.Importers.RegistrationFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.Importers.RegistrationFile).Msg("failed to load importer table")
		}
		if err := registry.Apply(regs); err != nil {
			log.Fatal().Err(err).Msg("failed to register importers")
		}
		log.Info().Int("count", len(regs)).Msg("importer table loaded")
	}

	system := dms.NewSystem(registry)
	m := metrics.New()

	// Files named on the command line are imported before serving
	for _, path := range flag.Args() {
		doc, err := system.ImportFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("startup import failed")
			continue
		}
		m.ImportsTotal.WithLabelValues(string(doc.Type())).Inc()
		log.Info().Str("path", path).Str("type", string(doc.Type())).Msg("document imported")
	}
	m.DocumentsStored.Set(float64(system.Len()))

	// Initialize storage
	fileStore, err := storage.NewLocalStore(cfg.GetUploadDir())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize storage")
	}

	e := echo.New()
	e.HideBanner = true

	// Configure middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			// Skip logging if disabled in config
			if !cfg.Advanced.EnableRequestLogging {
				return true
			}
			path := c.Request().URL.Path
			return path == "/api/health" || path == "/metrics"
		},
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 1024 * 4,
	}))

	// Body limit middleware
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// CORS configuration
	if cfg.Server.EnableCORS {
		origins := strings.Split(cfg.Server.AllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		if len(origins) == 1 && origins[0] == "" {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	api.SetupMiddleware(e, cfg.Advanced.LogLevel == "debug")
	api.RegisterRoutes(e, &api.Dependencies{
		System:          system,
		Store:           fileStore,
		Metrics:         m,
		Logger:          log,
		Version:         Version,
		AllowPathImport: cfg.Importers.AllowPathImport,
		ExposeMetrics:   cfg.Advanced.EnableMetrics,
	})

	// Configure server with settings from XML config
	s := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	fmt.Printf("\n")
	fmt.Printf("╔═══════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║           Document Manager Server                         ║\n")
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Version:    %-45s║\n", Version)
	fmt.Printf("║  Build Time: %-45s║\n", BuildTime)
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Config:    %-46s║\n", configPath)
	fmt.Printf("║  Listen:    http://%-38s║\n", cfg.GetServerAddr())
	fmt.Printf("║  Data Dir:  %-46s║\n", cfg.GetDataDir())
	fmt.Printf("║  Importers: %-46s║\n", strings.Join(registry.Extensions(), ", "))
	fmt.Printf("╚═══════════════════════════════════════════════════════════╝\n")
	fmt.Printf("\n")

	log.Info().Str("addr", s.Addr).Int("documents", system.Len()).Msg("server starting")
	if err := e.StartServer(s); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
