package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the ambient settings of a run. Analysis thresholds are
// not configurable here.
type AppConfig struct {
	LogDir    string
	LogToFile bool
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try the executable's directory first
	exeDir := ""
	if exePath, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables")
	}

	// 3. Resolve log folder
	logDir := os.Getenv("LOGS_FOLDER")
	if logDir == "" {
		if exeDir != "" {
			logDir = filepath.Join(exeDir, "logs")
		} else {
			logDir = "logs"
		}
	}

	return &AppConfig{
		LogDir:    logDir,
		LogToFile: getEnvBool("LOG_TO_FILE", false),
	}, nil
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
