package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"bikeshare/communication"
	"bikeshare/utils"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFilepath = "./config/config.yaml"

	defaultLogLevel       = "info"
	defaultDataDir        = "./datasets"
	defaultPageSize       = 5
	defaultTimeoutSeconds = 5
	defaultContentType    = "application/json"
	defaultQueueName      = "bikeshare-reports"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var (
	ErrInvalidConfig = errors.New("invalid config")

	defaultCityFiles = map[string]string{
		"Chicago":       "chicago.csv",
		"New York City": "new_york_city.csv",
		"Washington":    "washington.csv",
	}
	defaultQuitWords = []string{"quit", "exit"}
)

// DatasetConfig tells the loader where the city extracts live
// + DataDir: directory that contains the csv files
// + TestMode: if true, <DataDir>/test/<name>_test.csv is read instead of <DataDir>/<name>.csv
// + CityFiles: city name -> csv file name
// + PageSize: amount of raw rows shown per page
type DatasetConfig struct {
	DataDir   string            `yaml:"data_dir"`
	TestMode  bool              `yaml:"test_mode"`
	CityFiles map[string]string `yaml:"city_files"`
	PageSize  int               `yaml:"page_size"`
}

// PromptConfig controls the interactive prompt loop
// + MaxAttempts: invalid answers allowed per question. Zero means no limit
// + QuitWords: answers that abort the session
type PromptConfig struct {
	MaxAttempts int      `yaml:"max_attempts"`
	QuitWords   []string `yaml:"quit_words"`
}

// PublisherConfig config of the RabbitMQ report publisher
type PublisherConfig struct {
	Enabled     bool                                 `yaml:"enabled"`
	URL         string                               `yaml:"url"`
	Queue       communication.QueueDeclarationConfig `yaml:"queue"`
	ContentType string                               `yaml:"content_type"`
}

// StoreConfig config of the SQL report store. An empty driver disables the store
type StoreConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type ReportConfig struct {
	TimeoutSeconds int             `yaml:"timeout_seconds"`
	Publisher      PublisherConfig `yaml:"rabbitmq"`
	Store          StoreConfig     `yaml:"store"`
}

type Config struct {
	LogLevel string        `yaml:"log_level"`
	Dataset  DatasetConfig `yaml:"dataset"`
	Prompt   PromptConfig  `yaml:"prompt"`
	Report   ReportConfig  `yaml:"report"`
}

// LoadConfig reads the yaml config file, loads the given .env files (.env if none is given)
// and applies environment overrides
func LoadConfig(configFilepath string, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Debugf("[method: LoadConfig] no .env file loaded, using system env vars: %s", err.Error())
	}

	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	err = yaml.Unmarshal(configFile, &cfg)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	cfg.setDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// FromEnv builds the config from the defaults and the environment, for when there is no config file
func FromEnv(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Debugf("[method: FromEnv] no .env file loaded, using system env vars: %s", err.Error())
	}

	cfg := Default()
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in config, without environment overrides
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	if c.Dataset.DataDir == "" {
		c.Dataset.DataDir = defaultDataDir
	}

	if len(c.Dataset.CityFiles) == 0 {
		c.Dataset.CityFiles = make(map[string]string, len(defaultCityFiles))
		for city, file := range defaultCityFiles {
			c.Dataset.CityFiles[city] = file
		}
	}

	if c.Dataset.PageSize <= 0 {
		c.Dataset.PageSize = defaultPageSize
	}

	if len(c.Prompt.QuitWords) == 0 {
		c.Prompt.QuitWords = defaultQuitWords
	}

	if c.Report.TimeoutSeconds <= 0 {
		c.Report.TimeoutSeconds = defaultTimeoutSeconds
	}

	if c.Report.Publisher.Queue.Name == "" {
		c.Report.Publisher.Queue.Name = defaultQueueName
		c.Report.Publisher.Queue.Durable = true
	}

	if c.Report.Publisher.ContentType == "" {
		c.Report.Publisher.ContentType = defaultContentType
	}
}

func (c *Config) applyEnv() {
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.Dataset.DataDir = getEnv("DATA_DIR", c.Dataset.DataDir)
	c.Dataset.TestMode = getEnvBool("TEST_MODE", c.Dataset.TestMode)

	if rabbitURL := os.Getenv("RABBIT_URL"); rabbitURL != "" {
		c.Report.Publisher.URL = rabbitURL
		c.Report.Publisher.Enabled = true
	}

	c.Report.Store.Driver = getEnv("REPORT_STORE_DRIVER", c.Report.Store.Driver)
	c.Report.Store.DSN = getEnv("REPORT_STORE_DSN", c.Report.Store.DSN)
}

// Validate checks the values that cannot be defaulted
func (c *Config) Validate() error {
	if c.Dataset.PageSize <= 0 {
		return fmt.Errorf("%w: page_size must be greater than 0", ErrInvalidConfig)
	}

	if c.Prompt.MaxAttempts < 0 {
		return fmt.Errorf("%w: max_attempts cannot be negative", ErrInvalidConfig)
	}

	switch c.Report.Store.Driver {
	case "":
	case DriverPostgres, DriverSQLite:
		if c.Report.Store.DSN == "" {
			return fmt.Errorf("%w: store driver %s needs a dsn", ErrInvalidConfig, c.Report.Store.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown store driver %q", ErrInvalidConfig, c.Report.Store.Driver)
	}

	if c.Report.Publisher.Enabled {
		if c.Report.Publisher.URL == "" || c.Report.Publisher.Queue.Name == "" {
			return fmt.Errorf("%w: rabbitmq publisher needs url and queue name", ErrInvalidConfig)
		}
	}

	return nil
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
		log.Warnf("[method: LoadConfig] ignoring %s=%q: %s", key, value, err.Error())
	}
	return fallback
}
