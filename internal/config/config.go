package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/anduckhmt146/leetpick/internal/countdown"
	"github.com/anduckhmt146/leetpick/internal/logging"
	"github.com/anduckhmt146/leetpick/internal/selection"
	"github.com/anduckhmt146/leetpick/internal/store"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LEETPICK_"

// DefaultEnvFile is the dotenv file Load reads when present.
const DefaultEnvFile = ".env"

// ErrInvalidConfig is returned (wrapped) for any invalid setting.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	DBPath     string
	SourcePath string // empty means the embedded question list
	BatchSize  int
	Duration   time.Duration
	Resume     bool
	Seed       uint64 // zero means a random seed per run
	LogPath    string // empty means leetpick.log next to the database
	LogLevel   string
}

// fileConfig mirrors the YAML layout. Pointers distinguish "absent" from
// zero values so a file only overrides what it names.
type fileConfig struct {
	DB       *string `yaml:"db"`
	Source   *string `yaml:"source"`
	Batch    *int    `yaml:"batch"`
	Duration *string `yaml:"duration"`
	Resume   *bool   `yaml:"resume"`
	Seed     *uint64 `yaml:"seed"`
	Log      struct {
		File  *string `yaml:"file"`
		Level *string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns the built-in settings.
func Default() Config {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		dbPath = "leetpick.db"
	}
	return Config{
		DBPath:    dbPath,
		BatchSize: selection.DefaultBatchSize,
		Duration:  countdown.DefaultDuration,
		LogLevel:  "info",
	}
}

// Load layers defaults, the YAML file at configPath (optional), the dotenv
// file at envFile (ignored when missing) and LEETPICK_* variables from the
// process environment. Real environment variables win over dotenv entries.
// Flags are applied by the caller on top of the result.
func Load(configPath, envFile string) (Config, error) {
	cfg := Default()

	if configPath != "" {
		if err := cfg.applyFile(configPath); err != nil {
			return Config{}, err
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			dotenv = m
		case errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}

	if fc.DB != nil {
		c.DBPath = *fc.DB
	}
	if fc.Source != nil {
		c.SourcePath = *fc.Source
	}
	if fc.Batch != nil {
		c.BatchSize = *fc.Batch
	}
	if fc.Duration != nil {
		d, err := time.ParseDuration(*fc.Duration)
		if err != nil {
			return fmt.Errorf("%w: duration %q in %s", ErrInvalidConfig, *fc.Duration, path)
		}
		c.Duration = d
	}
	if fc.Resume != nil {
		c.Resume = *fc.Resume
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if fc.Log.File != nil {
		c.LogPath = *fc.Log.File
	}
	if fc.Log.Level != nil {
		c.LogLevel = *fc.Log.Level
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	e := envReader{lookup: lookup}
	c.DBPath = e.strVal("DB", c.DBPath)
	c.SourcePath = e.strVal("SOURCE", c.SourcePath)
	c.BatchSize = e.intVal("BATCH", c.BatchSize)
	c.Duration = e.durationVal("DURATION", c.Duration)
	c.Resume = e.boolVal("RESUME", c.Resume)
	c.Seed = e.uintVal("SEED", c.Seed)
	c.LogPath = e.strVal("LOG_FILE", c.LogPath)
	c.LogLevel = e.strVal("LOG_LEVEL", c.LogLevel)
	return errors.Join(e.errs...)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("%w: database path must not be empty", ErrInvalidConfig)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("%w: batch must be positive, got %d", ErrInvalidConfig, c.BatchSize)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %s", ErrInvalidConfig, c.Duration)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.SourcePath != "" {
		info, err := os.Stat(c.SourcePath)
		if err != nil {
			return fmt.Errorf("%w: source %s: %v", ErrInvalidConfig, c.SourcePath, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: source %s is a directory", ErrInvalidConfig, c.SourcePath)
		}
	}
	return nil
}

// LogFile returns the log path, defaulting to leetpick.log beside the DB.
func (c Config) LogFile() string {
	if c.LogPath != "" {
		return c.LogPath
	}
	return filepath.Join(filepath.Dir(c.DBPath), "leetpick.log")
}

// envReader reads prefixed variables, keeping the fallback for unset or
// empty ones and collecting parse errors.
type envReader struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (e *envReader) raw(key string) (string, string, bool) {
	name := EnvPrefix + key
	v, ok := e.lookup(name)
	if !ok || v == "" {
		return name, "", false
	}
	return name, v, true
}

func (e *envReader) fail(name, v string, err error) {
	e.errs = append(e.errs, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, name, v, err))
}

func (e *envReader) strVal(key, fallback string) string {
	if _, v, ok := e.raw(key); ok {
		return v
	}
	return fallback
}

func (e *envReader) intVal(key string, fallback int) int {
	name, v, ok := e.raw(key)
	if !ok {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		e.fail(name, v, err)
		return fallback
	}
	return i
}

func (e *envReader) uintVal(key string, fallback uint64) uint64 {
	name, v, ok := e.raw(key)
	if !ok {
		return fallback
	}
	u, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		e.fail(name, v, err)
		return fallback
	}
	return u
}

func (e *envReader) boolVal(key string, fallback bool) bool {
	name, v, ok := e.raw(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(name, v, err)
		return fallback
	}
	return b
}

func (e *envReader) durationVal(key string, fallback time.Duration) time.Duration {
	name, v, ok := e.raw(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(name, v, err)
		return fallback
	}
	return d
}
