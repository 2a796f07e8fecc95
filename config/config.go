/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads process configuration once at startup. Values come
// from the environment (optionally seeded from a .env file) with an
// optional YAML overlay; the populated Config is injected everywhere, no
// package reads the environment after Load returns.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Database configures the table engine connection.
type Database struct {
	AccessKey   string `yaml:"access_key" validate:"required"`
	SecretKey   string `yaml:"secret_key" validate:"required"`
	Region      string `yaml:"region" validate:"required"`
	Endpoint    string `yaml:"endpoint" validate:"required"`
	Table       string `yaml:"table" validate:"required"`
	TokensTable string `yaml:"tokens_table" validate:"required"`
}

// Objects configures the image bucket.
type Objects struct {
	AccessKey string `yaml:"access_key" validate:"required"`
	SecretKey string `yaml:"secret_key" validate:"required"`
	Region    string `yaml:"region" validate:"required"`
	Endpoint  string `yaml:"endpoint" validate:"required"`
	Bucket    string `yaml:"bucket" validate:"required"`
	URLPrefix string `yaml:"url_prefix" validate:"required,url"`
}

type Config struct {
	Port      int    `yaml:"port" validate:"min=1,max=65535"`
	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	TrialDays int    `yaml:"shop_trial_days" validate:"min=0"`

	Database Database `yaml:"database"`
	Objects  Objects  `yaml:"objects"`
}

// Load builds the Config: .env file if present, then environment
// variables, then the YAML overlay named by CONFIG_FILE. Fails fast on
// missing or malformed values so the process never starts half-configured.
func Load() (*Config, error) {
	// A missing .env is fine; deployments set real environment variables.
	_ = godotenv.Load()

	cfg := &Config{
		Port:      envInt("PORT", 8000),
		LogLevel:  envStr("LOGGER_LEVEL", "debug"),
		TrialDays: envInt("SHOP_TRIAL_DAYS", 7),
		Database: Database{
			AccessKey:   os.Getenv("YC_SERVICE_ACCOUNT_KEY_ID"),
			SecretKey:   os.Getenv("YC_SERVICE_ACCOUNT_SECRET_KEY"),
			Region:      envStr("YC_REGION", "ru-central1"),
			Endpoint:    os.Getenv("YC_DATABASE_URL"),
			Table:       os.Getenv("TABLE_SUFFIX"),
			TokensTable: envStr("TOKENS_TABLE_SUFFIX", os.Getenv("TABLE_SUFFIX")+"_tokens"),
		},
		Objects: Objects{
			AccessKey: os.Getenv("YC_SERVICE_ACCOUNT_KEY_ID"),
			SecretKey: os.Getenv("YC_SERVICE_ACCOUNT_SECRET_KEY"),
			Region:    envStr("YC_REGION", "ru-central1"),
			Endpoint:  envStr("YC_STORAGE_URL", "https://storage.yandexcloud.net"),
			Bucket:    os.Getenv("YC_PRODUCTS_BUCKET_NAME"),
			URLPrefix: envStr("YC_PRODUCTS_BUCKET_URL_PREFIX", "https://storage.yandexcloud.net"),
		},
	}

	if overlay := os.Getenv("CONFIG_FILE"); overlay != "" {
		if err := applyOverlay(cfg, overlay); err != nil {
			return nil, err
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyOverlay(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config overlay %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("failed to parse config overlay %s: %w", path, err)
	}
	return nil
}

func envStr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
