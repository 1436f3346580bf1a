package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Horizon struct {
		// EndpointFormat resolves the GraphQL endpoint from a subsite,
		// e.g. "https://horizon-api.%s/graphql".
		EndpointFormat string `yaml:"endpointFormat"`
		SubsitesURL    string `yaml:"subsitesUrl"`
		DefaultSubsite string `yaml:"defaultSubsite"`
	} `yaml:"horizon"`

	Defaults Defaults `yaml:"defaults"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Defaults seeds the per-invocation query filter flags.
type Defaults struct {
	Limit               int    `yaml:"limit"`
	Offset              int    `yaml:"offset"`
	Currency            string `yaml:"currency"`
	ShippingDestination string `yaml:"shippingDestination"`
	Sort                string `yaml:"sort"`
}

func Load() (Config, error) {
	cfg := Config{}
	cfg.Horizon.EndpointFormat = "https://horizon-api.%s/graphql"
	cfg.Horizon.SubsitesURL = "http://rocinante.io.thehut.local/api/v1/subsites"
	cfg.Horizon.DefaultSubsite = "www.myprotein.com"
	cfg.Defaults.Limit = 100
	cfg.Defaults.Offset = 0
	cfg.Defaults.Currency = "GBP"
	cfg.Defaults.ShippingDestination = "GB"
	cfg.Defaults.Sort = "RELEVANCE"
	cfg.Log.Level = "info"

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	// Environment overrides (expected in deploy).
	if v := os.Getenv("HORIZON_ENDPOINT_FORMAT"); v != "" {
		cfg.Horizon.EndpointFormat = v
	}
	if v := os.Getenv("HORIZON_SUBSITES_URL"); v != "" {
		cfg.Horizon.SubsitesURL = v
	}
	if v := os.Getenv("HORIZON_DEFAULT_SUBSITE"); v != "" {
		cfg.Horizon.DefaultSubsite = v
	}
	if v := os.Getenv("HORIZON_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse HORIZON_LIMIT: %w", err)
		}
		cfg.Defaults.Limit = n
	}
	if v := os.Getenv("HORIZON_OFFSET"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse HORIZON_OFFSET: %w", err)
		}
		cfg.Defaults.Offset = n
	}
	if v := os.Getenv("HORIZON_CURRENCY"); v != "" {
		cfg.Defaults.Currency = v
	}
	if v := os.Getenv("HORIZON_SHIPPING"); v != "" {
		cfg.Defaults.ShippingDestination = v
	}
	if v := os.Getenv("HORIZON_SORT"); v != "" {
		cfg.Defaults.Sort = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	if cfg.Horizon.DefaultSubsite == "" {
		return Config{}, errors.New("missing default subsite (set horizon.defaultSubsite in config or HORIZON_DEFAULT_SUBSITE)")
	}
	if !strings.Contains(cfg.Horizon.EndpointFormat, "%s") {
		return Config{}, errors.New("horizon.endpointFormat must contain a %s placeholder for the subsite")
	}
	if cfg.Horizon.SubsitesURL == "" {
		return Config{}, errors.New("missing subsites url (set horizon.subsitesUrl in config or HORIZON_SUBSITES_URL)")
	}

	return cfg, nil
}
