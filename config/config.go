package config

import (
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// DefaultDraftTTL is how long an untouched booking draft survives before the
// sweeper discards it.
const DefaultDraftTTL = 30 * time.Minute

// Config holds the project config values
type Config struct {
	UpstreamURL string
	BaseUrl     string
	Port        string
	Environment string
	DraftTTL    time.Duration
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger, err := setLogger(os.Getenv("ENVIRONMENT"))
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		UpstreamURL: os.Getenv("UPSTREAM_URL"),
		BaseUrl:     os.Getenv("BASE_URL"),
		Port:        os.Getenv("PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		DraftTTL:    draftTTL(),
	}

}

// setLogger picks the zap preset for the given environment
func setLogger(environment string) (*zap.Logger, error) {
	switch environment {
	case "development":
		return zap.NewDevelopment()
	case "production":
		return zap.NewProduction()
	default:
		return zap.NewExample(), nil
	}
}

func draftTTL() time.Duration {
	mins, err := strconv.Atoi(os.Getenv("DRAFT_TTL_MINUTES"))
	if err != nil || mins <= 0 {
		return DefaultDraftTTL
	}
	return time.Duration(mins) * time.Minute
}
