package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Clips     ClipsConfig     `mapstructure:"clips"`
	Player    PlayerConfig    `mapstructure:"player"`
	Focus     FocusConfig     `mapstructure:"focus"`
	History   HistoryConfig   `mapstructure:"history"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
	Database  DatabaseConfig  `mapstructure:"database"`
}

type CatalogConfig struct {
	// File is optional. The embedded catalog is used when it is empty.
	File string `mapstructure:"file" validate:"omitempty,file"`
}

type ClipsConfig struct {
	Directory     string   `mapstructure:"directory" validate:"required"`
	BaseURL       string   `mapstructure:"base_url" validate:"omitempty,url"`
	Extensions    []string `mapstructure:"extensions" validate:"required,min=1,dive,alphanum"`
	RetryAttempts uint     `mapstructure:"retry_attempts"`
}

type PlayerConfig struct {
	Command []string `mapstructure:"command" validate:"required,min=1"`
}

type FocusConfig struct {
	DelayedGrants bool `mapstructure:"delayed_grants"`
}

const (
	HistoryBackendYAML     = "yaml"
	HistoryBackendDatabase = "database"
)

type HistoryConfig struct {
	Backend    string `mapstructure:"backend" validate:"oneof=yaml database"`
	File       string `mapstructure:"file" validate:"required_if=Backend yaml"`
	BufferSize int    `mapstructure:"buffer_size" validate:"gte=1"`
}

type TemplatesConfig struct {
	VocabularySheetTemplate string `mapstructure:"vocabulary_sheet_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/miwok")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("catalog.file", "")
	v.SetDefault("clips.directory", "clips")
	v.SetDefault("clips.base_url", "")
	v.SetDefault("clips.extensions", []string{"mp3", "wav", "ogg"})
	v.SetDefault("clips.retry_attempts", 3)
	v.SetDefault("player.command", []string{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"})
	v.SetDefault("focus.delayed_grants", false)
	v.SetDefault("history.backend", HistoryBackendYAML)
	v.SetDefault("history.file", filepath.Join("history", "play_logs.yml"))
	v.SetDefault("history.buffer_size", 16)
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.vocabulary_sheet_template", "")
	v.SetDefault("outputs.directory", filepath.Join("outputs", "vocabulary"))
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "miwok")
	v.SetDefault("database.username", "user")

	if err := v.BindEnv("clips.base_url", "MIWOK_CLIPS_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind MIWOK_CLIPS_BASE_URL environment variable: %w", err)
	}
	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
