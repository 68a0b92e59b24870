package main

import (
	"fmt"
	"planzajec-backend/lib/chrono"
	"planzajec-backend/lib/scrapers/uek"
	"planzajec-backend/services/planzajec"
	"strings"
	"time"
)

type UpstreamConfig struct {
	BaseURL string `json:"base_url"`
	// Format is "xml" or "html".
	Format           string `json:"format"`
	TimeoutSeconds   int    `json:"timeout_seconds"`
	CloudflareBypass bool   `json:"cloudflare_bypass"`
}

type CacheConfig struct {
	Size       int `json:"size"`
	TTLMinutes int `json:"ttl_minutes"`
}

type Config struct {
	Port     int            `json:"port"`
	Upstream UpstreamConfig `json:"upstream"`
	Cache    CacheConfig    `json:"category_cache"`
	// ClockRefreshSeconds is how often the shared current time is refreshed.
	ClockRefreshSeconds int `json:"clock_refresh_seconds"`
}

var defaultConfig = Config{
	Port: 8000,
	Upstream: UpstreamConfig{
		BaseURL:        uek.DefaultBaseURL,
		Format:         "xml",
		TimeoutSeconds: 30,
	},
	Cache: CacheConfig{
		Size:       256,
		TTLMinutes: 360,
	},
	ClockRefreshSeconds: int(chrono.RefreshInterval / time.Second),
}

func (c UpstreamConfig) format() (uek.Format, error) {
	switch strings.ToLower(c.Format) {
	case "", "xml":
		return uek.FormatXML, nil
	case "html":
		return uek.FormatHTML, nil
	}
	return 0, fmt.Errorf("unknown upstream format %q", c.Format)
}

func (c Config) clientOptions() uek.ClientOptions {
	return uek.ClientOptions{
		BaseURL:          c.Upstream.BaseURL,
		Timeout:          time.Duration(c.Upstream.TimeoutSeconds) * time.Second,
		CloudflareBypass: c.Upstream.CloudflareBypass,
	}
}

func (c Config) serviceOptions() (planzajec.Options, error) {
	format, err := c.Upstream.format()
	if err != nil {
		return planzajec.Options{}, err
	}
	return planzajec.Options{
		Format:            format,
		CategoryCacheSize: c.Cache.Size,
		CategoryCacheTTL:  time.Duration(c.Cache.TTLMinutes) * time.Minute,
	}, nil
}
