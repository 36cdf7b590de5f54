// Package config loads filtergen settings. Environment variables take
// precedence over filtergen.yaml, which takes precedence over defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/rpattn/filtergen/internal/codegen"
	"github.com/rpattn/filtergen/internal/db"
	"github.com/rpattn/filtergen/internal/logging"
	"github.com/rpattn/filtergen/pkg/filterquery"
)

// EnvPrefix prefixes every environment override, e.g.
// FILTERGEN_GENERATOR_BINDING or FILTERGEN_DATABASE_HOST.
const EnvPrefix = "FILTERGEN"

// Config is the full filtergen configuration.
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator"`
	Database  db.Config       `mapstructure:"database" yaml:"database"`
	Log       logging.Config  `mapstructure:"log" yaml:"log"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-" yaml:"-"`
}

// GeneratorConfig holds the code generation defaults.
type GeneratorConfig struct {
	Package       string `mapstructure:"package" yaml:"package"`
	Binding       string `mapstructure:"binding" yaml:"binding"`
	Dialect       string `mapstructure:"dialect" yaml:"dialect"`
	PerPage       int64  `mapstructure:"per_page" yaml:"per_page"`
	RuntimeImport string `mapstructure:"runtime_import" yaml:"runtime_import"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Generator: GeneratorConfig{
			Binding:       string(codegen.BindingJSON),
			Dialect:       filterquery.Postgres.String(),
			PerPage:       filterquery.DefaultPerPage,
			RuntimeImport: codegen.DefaultRuntimeImport,
		},
		Database: db.DefaultConfig(),
		Log:      logging.DefaultConfig(),
	}
}

// Load reads configuration. With an empty configFile, filtergen.yaml is
// looked up in the working directory and may be absent; an explicit file
// must exist.
func Load(configFile string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("filtergen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("generator.package", cfg.Generator.Package)
	v.SetDefault("generator.binding", cfg.Generator.Binding)
	v.SetDefault("generator.dialect", cfg.Generator.Dialect)
	v.SetDefault("generator.per_page", cfg.Generator.PerPage)
	v.SetDefault("generator.runtime_import", cfg.Generator.RuntimeImport)

	v.SetDefault("database.host", cfg.Database.Host)
	v.SetDefault("database.port", cfg.Database.Port)
	v.SetDefault("database.user", cfg.Database.User)
	v.SetDefault("database.password", cfg.Database.Password)
	v.SetDefault("database.dbname", cfg.Database.DBName)
	v.SetDefault("database.sslmode", cfg.Database.SSLMode)
	v.SetDefault("database.dsn", cfg.Database.DSN)

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
}

// Options converts the generator section into emit options.
func (g GeneratorConfig) Options() (codegen.Options, error) {
	binding, err := codegen.ParseBindingStyle(g.Binding)
	if err != nil {
		return codegen.Options{}, err
	}
	dialect, err := filterquery.ParseDialect(g.Dialect)
	if err != nil {
		return codegen.Options{}, err
	}
	return codegen.Options{
		Package:        g.Package,
		Binding:        binding,
		Dialect:        dialect,
		DefaultPerPage: g.PerPage,
		RuntimeImport:  g.RuntimeImport,
	}, nil
}
