package config

import (
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/Rana718/sciseed/internal/errors"
	"github.com/Rana718/sciseed/internal/factory"
	"github.com/Rana718/sciseed/internal/gateway"
	"github.com/Rana718/sciseed/internal/sampler"
	"github.com/Rana718/sciseed/internal/seeder"
)

// FileName is the config file looked up in the working directory.
const FileName = "sciseed.config.json"

type Config struct {
	Version    string   `json:"version" mapstructure:"version"`
	ExportPath string   `json:"export_path" mapstructure:"export_path"`
	Database   Database `json:"database" mapstructure:"database"`
	Seed       Seed     `json:"seed" mapstructure:"seed"`
	Weights    Weights  `json:"weights,omitempty" mapstructure:"weights"`
	Log        Log      `json:"log" mapstructure:"log"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Seed struct {
	seeder.Plan `mapstructure:",squash"`
	Batch       int    `json:"batch" mapstructure:"batch"`
	RandomSeed  uint64 `json:"random_seed,omitempty" mapstructure:"random_seed"`
}

// Weights override catalog weights by label.
type Weights struct {
	Faculties map[string]float64 `json:"faculties,omitempty" mapstructure:"faculties"`
	Titles    map[string]float64 `json:"titles,omitempty" mapstructure:"titles"`
	Funders   map[string]float64 `json:"funders,omitempty" mapstructure:"funders"`
}

type Log struct {
	JSON  bool   `json:"json" mapstructure:"json"`
	Level string `json:"level" mapstructure:"level"`
}

func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	defaults := seeder.DefaultPlan()

	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.ExportPath == "" {
		cfg.ExportPath = "db/export"
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Seed.Faculties == 0 {
		cfg.Seed.Faculties = defaults.Faculties
	}
	if cfg.Seed.Conferences == 0 {
		cfg.Seed.Conferences = defaults.Conferences
	}
	if cfg.Seed.ScientistsPerFaculty == 0 {
		cfg.Seed.ScientistsPerFaculty = defaults.ScientistsPerFaculty
	}
	if !v.IsSet("seed.publications") {
		cfg.Seed.Publications = defaults.Publications
	}
	if !v.IsSet("seed.fundings") {
		cfg.Seed.Fundings = defaults.Fundings
	}
	if !v.IsSet("seed.unique") {
		cfg.Seed.Unique = defaults.Unique
	}
	if cfg.Seed.Batch == 0 {
		cfg.Seed.Batch = 100
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", errors.WithHintf(
			errors.Newf("database URL not found in environment variable %s", c.Database.URLEnv),
			"set %s or add it to .env", c.Database.URLEnv,
		)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	if !slices.Contains(gateway.Providers(), c.Database.Provider) {
		return errors.InvalidArgumentf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, gateway.Providers())
	}

	if c.ExportPath == "" {
		return errors.InvalidArgumentf("export_path cannot be empty")
	}

	if c.Seed.Batch <= 0 {
		return errors.InvalidArgumentf("seed.batch must be positive, got %d", c.Seed.Batch)
	}

	if err := c.Seed.Plan.Validate(); err != nil {
		return errors.Wrap(err, "invalid seed plan")
	}

	if _, err := c.Catalogs(); err != nil {
		return err
	}
	return nil
}

// Catalogs returns the default catalogs with any configured weight overrides.
func (c *Config) Catalogs() (factory.Catalogs, error) {
	catalogs := factory.DefaultCatalogs()
	var err error
	if len(c.Weights.Faculties) > 0 {
		if catalogs.Faculties, err = factory.WithWeights(catalogs.Faculties, relabel(catalogs.Faculties, c.Weights.Faculties)); err != nil {
			return factory.Catalogs{}, errors.Wrap(err, "weights.faculties")
		}
	}
	if len(c.Weights.Titles) > 0 {
		if catalogs.Titles, err = factory.WithWeights(catalogs.Titles, relabel(catalogs.Titles, c.Weights.Titles)); err != nil {
			return factory.Catalogs{}, errors.Wrap(err, "weights.titles")
		}
	}
	if len(c.Weights.Funders) > 0 {
		if catalogs.Funders, err = factory.WithWeights(catalogs.Funders, relabel(catalogs.Funders, c.Weights.Funders)); err != nil {
			return factory.Catalogs{}, errors.Wrap(err, "weights.funders")
		}
	}
	return catalogs, nil
}

// relabel maps weight keys back to catalog labels. Viper lowercases keys.
func relabel(catalog []sampler.Category, weights map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(weights))
	for key, w := range weights {
		label := key
		for _, c := range catalog {
			if strings.EqualFold(c.Label, key) {
				label = c.Label
				break
			}
		}
		out[label] = w
	}
	return out
}

// GatewayOptions maps the config onto gateway options.
func (c *Config) GatewayOptions(format string) gateway.Options {
	return gateway.Options{
		BatchSize:    c.Seed.Batch,
		ExportDir:    c.ExportPath,
		ExportFormat: format,
	}
}
