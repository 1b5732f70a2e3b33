// Package app wires configuration, storage, clients, and services into the
// shared core used by cmd/kabuto-server.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hnakamura/kabuto/internal/clients/fmp"
	"github.com/hnakamura/kabuto/internal/clients/gemini"
	"github.com/hnakamura/kabuto/internal/clients/gnews"
	"github.com/hnakamura/kabuto/internal/common"
	"github.com/hnakamura/kabuto/internal/fx"
	"github.com/hnakamura/kabuto/internal/interfaces"
	"github.com/hnakamura/kabuto/internal/services/advisor"
	"github.com/hnakamura/kabuto/internal/services/institutional"
	"github.com/hnakamura/kabuto/internal/storage"
)

// App holds all initialized services and clients.
type App struct {
	Config               *common.Config
	Logger               *common.Logger
	Store                interfaces.AssetStore
	StoreDegraded        bool
	Rates                fx.Table
	AdvisorService       interfaces.AdvisorService
	InstitutionalService interfaces.InstitutionalService
	StartupTime          time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes storage, clients, and services. configPath may be
// empty, in which case KABUTO_CONFIG and then the binary directory are
// checked.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	if configPath == "" {
		configPath = os.Getenv("KABUTO_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "kabuto.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/kabuto.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	// Initialize storage with demo fallback
	store, degraded := storage.NewAssetStore(logger, config)

	// Initialize API clients; absent keys select the mock paths
	var geminiClient interfaces.GeminiClient
	if key := config.Clients.Gemini.APIKey; key != "" {
		client, err := gemini.NewClient(context.Background(), key,
			gemini.WithLogger(logger),
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithTemperature(config.Clients.Gemini.Temperature),
			gemini.WithMaxOutputTokens(config.Clients.Gemini.MaxOutputTokens),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client - AI analysis will use mock data")
		} else {
			geminiClient = client
		}
	} else {
		logger.Warn().Msg("Gemini API key not configured - AI analysis will use mock data")
	}

	var fmpClient interfaces.FMPClient
	if key := config.Clients.FMP.APIKey; key != "" {
		fmpClient = fmp.NewClient(key,
			fmp.WithLogger(logger),
			fmp.WithBaseURL(config.Clients.FMP.BaseURL),
			fmp.WithRateLimit(config.Clients.FMP.RateLimit),
			fmp.WithTimeout(config.Clients.FMP.GetTimeout()),
		)
	} else {
		logger.Warn().Msg("FMP API key not configured - institutional lookups will use mock data")
	}

	newsClient := gnews.NewClient(
		gnews.WithLogger(logger),
		gnews.WithBaseURL(config.Clients.News.BaseURL),
		gnews.WithTimeout(config.Clients.News.GetTimeout()),
		gnews.WithMarketLimit(config.Clients.News.MarketLimit),
	)

	rates := fx.DefaultTable()

	advisorService := advisor.NewService(geminiClient, newsClient, rates, logger,
		advisor.WithPerStockLimit(config.Clients.News.PerStockLimit),
	)
	institutionalService := institutional.NewService(fmpClient, geminiClient, logger)

	a := &App{
		Config:               config,
		Logger:               logger,
		Store:                store,
		StoreDegraded:        degraded,
		Rates:                rates,
		AdvisorService:       advisorService,
		InstitutionalService: institutionalService,
		StartupTime:          startupStart,
	}

	logger.Info().
		Dur("startup", time.Since(startupStart)).
		Bool("store_degraded", degraded).
		Msg("App initialized")

	return a, nil
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.Store != nil {
		a.Store.Close()
		a.Store = nil
	}
}
