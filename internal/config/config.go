// Package config layers defaults, an optional config.yaml and environment
// variables into the server settings.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PORTFOLIO_OUTPUTDIR.
const EnvPrefix = "PORTFOLIO"

type Config struct {
	Port         string `mapstructure:"port"`
	BaseURL      string `mapstructure:"baseURL"`
	StaticDir    string `mapstructure:"staticDir"`
	ImagesDir    string `mapstructure:"imagesDir"`
	TemplatesDir string `mapstructure:"templatesDir"`
	OutputDir    string `mapstructure:"outputDir"`

	Analytics Analytics `mapstructure:"analytics"`
}

// Analytics configures visit recording and the admin pages.
type Analytics struct {
	Enabled         bool   `mapstructure:"enabled"`
	DBPath          string `mapstructure:"dbPath"`
	AdminUser       string `mapstructure:"adminUser"`
	AdminPassword   string `mapstructure:"adminPassword"`
	RetentionMonths int    `mapstructure:"retentionMonths"`
}

// Addr is the listen address for Port.
func (c Config) Addr() string { return ":" + c.Port }

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("baseURL", "")
	v.SetDefault("staticDir", "static")
	v.SetDefault("imagesDir", "images")
	v.SetDefault("templatesDir", "internal/site/templates")
	v.SetDefault("outputDir", "public")

	v.SetDefault("analytics.enabled", false)
	v.SetDefault("analytics.dbPath", "portfolio.db")
	v.SetDefault("analytics.adminUser", "admin")
	v.SetDefault("analytics.adminPassword", "")
	v.SetDefault("analytics.retentionMonths", 12)
}

// Load reads cfgFile, or ./config.yaml when cfgFile is empty. A missing
// default file is fine; a missing explicit one is an error. The plain PORT,
// ADMIN_USERNAME and ADMIN_PASSWORD variables are honoured as well.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, plain := range map[string]string{
		"port":                    "PORT",
		"analytics.adminUser":     "ADMIN_USERNAME",
		"analytics.adminPassword": "ADMIN_PASSWORD",
	} {
		envKey := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envKey, plain); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if cfgFile != "" {
			return Config{}, fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
		log.Println("No config file found, using defaults and environment")
	} else {
		log.Println("Using config file:", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if cfg.Port == "" {
		return Config{}, errors.New("config: port is empty")
	}
	return cfg, nil
}
