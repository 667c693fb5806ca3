package infrastructure

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"gradpath-server/internal/config"
	"gradpath-server/internal/domain/counselling"
	"gradpath-server/internal/infrastructure/crontab"
	"gradpath-server/internal/infrastructure/database"
	"gradpath-server/internal/infrastructure/database/repository"
	"gradpath-server/internal/infrastructure/logger"
	"gradpath-server/internal/infrastructure/metrics"
	"gradpath-server/internal/infrastructure/reasoning"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideDatabase provides a database connection
func ProvideDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	log := logger.GetLogger()
	if cfg.AutoMigrate {
		log.Info().Msg("Running database migrations...")
		if err := database.Migration(db); err != nil {
			log.Error().Err(err).Msg("Failed to run database migrations")
			return nil, err
		}
		log.Info().Msg("Database migrations completed successfully")
	}

	return db, nil
}

// ProvideGateway exposes the reasoning client as the counselling gateway
func ProvideGateway(client *reasoning.Client) counselling.Gateway {
	return client
}

// Infrastructure holds all infrastructure dependencies
type Infrastructure struct {
	DB *gorm.DB
}

// NewInfrastructure creates a new infrastructure instance
func NewInfrastructure(db *gorm.DB) *Infrastructure {
	return &Infrastructure{DB: db}
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Database
	ProvideDatabase,

	// Repositories
	repository.RepositoryProvider,

	// Logger
	logger.GetLogger,

	// Reasoning engine client
	reasoning.NewClient,
	ProvideGateway,

	// Counselling metrics
	metrics.NewCounsellingMetrics,

	// Crontab for conversation retention
	crontab.NewCrontab,

	// Infrastructure struct
	NewInfrastructure,
)
