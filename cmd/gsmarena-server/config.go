package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gsmarena-backend/internal/gsmarena"
	"gsmarena-backend/lib/configutil"

	"dario.cat/mergo"
)

type Config struct {
	BaseUrl           string  `json:"base_url"`
	Port              int     `json:"port"`
	TimeoutSeconds    int     `json:"timeout_seconds"`
	RequestsPerSecond float64 `json:"requests_per_second"`
	UserAgent         string  `json:"user_agent"`
	CloudflareBypass  bool    `json:"cloudflare_bypass"`
}

func defaultConfig() Config {
	return Config{
		BaseUrl:        gsmarena.DefaultBaseUrl,
		Port:           8080,
		TimeoutSeconds: int(gsmarena.DefaultTimeout / time.Second),
	}
}

// LoadConfig reads config.json5 (a missing file means defaults), fills in
// defaults for unset fields and then applies environment overrides.
func LoadConfig() (Config, error) {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}
	err = mergo.Merge(&cfg, defaultConfig())
	if err != nil {
		return Config{}, err
	}

	cfg.BaseUrl = configutil.Getenv("GSMARENA_BASE_URL", cfg.BaseUrl)
	port := configutil.Getenv("GSMARENA_PORT", "")
	if port != "" {
		cfg.Port, err = strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("parse GSMARENA_PORT: %w", err)
		}
	}

	return cfg, nil
}

func (c Config) ClientOptions() gsmarena.ClientOptions {
	return gsmarena.ClientOptions{
		BaseUrl:           c.BaseUrl,
		Timeout:           time.Duration(c.TimeoutSeconds) * time.Second,
		UserAgent:         c.UserAgent,
		RequestsPerSecond: c.RequestsPerSecond,
		CloudflareBypass:  c.CloudflareBypass,
	}
}
