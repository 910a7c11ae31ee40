package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Feed struct {
	BaseURL            string `yaml:"base_url"`
	TimeoutSeconds     int    `yaml:"timeout_seconds"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute"`
}

type Root struct {
	DatabasePath   string `yaml:"database_path"`
	IntradayPolicy string `yaml:"intraday_policy"` // append | merge
	SecondCheck    string `yaml:"second_check"`    // HH:MM, default for symbols without one
	Limit          int    `yaml:"limit"`           // max rows returned per symbol
	EOD            Feed   `yaml:"eod"`
	Intraday       Feed   `yaml:"intraday"`
}

func Load(path string) (Root, error) {
	var c Root
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, err
	}
	applyDefaults(&c)
	return c, nil
}

// Default returns the configuration used when no file is given.
func Default() Root {
	var c Root
	applyDefaults(&c)
	return c
}

func applyDefaults(c *Root) {
	if c.DatabasePath == "" {
		c.DatabasePath = "data"
	}
	if c.IntradayPolicy == "" {
		c.IntradayPolicy = "append"
	}
	if c.SecondCheck == "" {
		c.SecondCheck = "18:00"
	}
	if c.Limit == 0 {
		c.Limit = 500
	}
	if c.EOD.TimeoutSeconds == 0 {
		c.EOD.TimeoutSeconds = 10
	}
	if c.EOD.RateLimitPerMinute == 0 {
		c.EOD.RateLimitPerMinute = 5
	}
	if c.Intraday.TimeoutSeconds == 0 {
		c.Intraday.TimeoutSeconds = 10
	}
	if c.Intraday.RateLimitPerMinute == 0 {
		c.Intraday.RateLimitPerMinute = 5
	}
}
