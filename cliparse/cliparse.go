package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/sustainify/server/models"
)

const (
	DefaultPort            = 3318
	DefaultDatabaseType    = "sqlite"
	DefaultUploadDir       = "static/uploads"
	DefaultUploadURLPrefix = "/static/uploads/"
	DefaultRewardPoints    = models.DefaultRewardPoints
	DefaultMaxUploadBytes  = 10 * 1000 * 1000 // "10 MB"
)

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	CredentialsFile string
	UploadDir       string
	UploadURLPrefix string
	RewardPoints    int64
	MaxUploadBytes  int64
	Verbose         bool
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var reward, maxUpload string

	fs := flag.NewFlagSet("sustainify", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or pgx)")
	fs.StringVar(&cfg.CredentialsFile, "credentials", "", "Dotenv file holding DATABASE_URL / DATABASE_TYPE")

	// Uploads
	fs.StringVar(&cfg.UploadDir, "upload-dir", "", "Directory for uploaded images")
	fs.StringVar(&cfg.UploadURLPrefix, "upload-url", "", "URL prefix uploaded images are served under")
	fs.StringVar(&maxUpload, "max-upload", "", "Maximum request body size, e.g. 10MB")

	fs.StringVar(&reward, "reward", "", "Points awarded to the top user per post")
	fs.BoolVar(&cfg.Verbose, "v", false, "Debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = os.Getenv("CREDENTIALS_FILE")
	}
	var creds map[string]string
	if cfg.CredentialsFile != "" {
		var err error
		creds, err = godotenv.Read(cfg.CredentialsFile)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read credentials file: %w", err)
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = creds["DATABASE_URL"]
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d, DATABASE_URL env or a credentials file)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = creds["DATABASE_TYPE"]
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = DefaultDatabaseType
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = getenv("UPLOAD_DIR", DefaultUploadDir)
	}
	if cfg.UploadURLPrefix == "" {
		cfg.UploadURLPrefix = getenv("UPLOAD_URL_PREFIX", DefaultUploadURLPrefix)
	}

	if reward == "" {
		reward = os.Getenv("REWARD_POINTS")
	}
	cfg.RewardPoints = DefaultRewardPoints
	if reward != "" {
		n, err := strconv.ParseInt(reward, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid REWARD_POINTS %q: must be a positive integer", reward)
		}
		cfg.RewardPoints = n
	}

	if maxUpload == "" {
		maxUpload = os.Getenv("MAX_UPLOAD_SIZE")
	}
	cfg.MaxUploadBytes = DefaultMaxUploadBytes
	if maxUpload != "" {
		n, err := humanize.ParseBytes(maxUpload)
		if err != nil || n == 0 {
			return Config{}, fmt.Errorf("invalid MAX_UPLOAD_SIZE %q", maxUpload)
		}
		cfg.MaxUploadBytes = int64(n)
	}

	if !cfg.Verbose {
		cfg.Verbose = os.Getenv("LOG_LEVEL") == "debug"
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
