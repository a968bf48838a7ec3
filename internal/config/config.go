// Package config reads the configuration of the server from the
// environment, an optional .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/currency"
)

// Store backends
const (
	BackendPebble = "pebble"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

var defaults = map[string]any{
	"port":               8080,
	"api_url":            "http://localhost:8080/api",
	"gin_mode":           "release",
	"log_format":         "",
	"store_backend":      BackendPebble,
	"store_path":         "data/expenses",
	"cache_size":         1024,
	"currency":           "USD",
	"timezone":           "Local",
	"cors_allow_origins": "",
	"enable_pprof":       false,
	"seed_on_start":      true,
}

type Config struct {
	Port    int
	APIURL  *url.URL
	GinMode string

	// LogFormat is "human" or "json". If empty, it is chosen by the gin mode.
	LogFormat string

	StoreBackend string
	StorePath    string

	// CacheSize is the number of values held by the read cache. 0 disables it.
	CacheSize int

	Currency currency.Unit
	Location *time.Location

	CORSAllowOrigins []string
	EnablePprof      bool
	SeedOnStart      bool
}

// Load reads the configuration.
//
// The env files are loaded first and default to ".env". Missing env files are
// ignored and variables that are already set are not overridden. Then every
// key is read from the environment variable of the same name in upper case,
// falling back to configFile if it is not empty.
func Load(configFile string, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("could not load %s: %w", f, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("could not read config file: %w", err)
		}
	}

	return parse(v)
}

// parse converts the raw values and reports all invalid ones at once.
func parse(v *viper.Viper) (Config, error) {
	var errs []error

	c := Config{
		Port:             v.GetInt("port"),
		GinMode:          v.GetString("gin_mode"),
		LogFormat:        v.GetString("log_format"),
		StoreBackend:     strings.ToLower(v.GetString("store_backend")),
		StorePath:        v.GetString("store_path"),
		CacheSize:        v.GetInt("cache_size"),
		CORSAllowOrigins: strings.Fields(v.GetString("cors_allow_origins")),
		EnablePprof:      v.GetBool("enable_pprof"),
		SeedOnStart:      v.GetBool("seed_on_start"),
	}

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	u, err := url.Parse(v.GetString("api_url"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("API_URL must be an absolute URL, got %q", v.GetString("api_url")))
	} else {
		c.APIURL = u
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE must be one of debug, release, test, got %q", c.GinMode))
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be human or json, got %q", c.LogFormat))
	}

	switch c.StoreBackend {
	case BackendPebble, BackendSQLite:
		if c.StorePath == "" {
			errs = append(errs, fmt.Errorf("STORE_PATH must be set for the %s backend", c.StoreBackend))
		}
	case BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND must be one of pebble, sqlite, memory, got %q", c.StoreBackend))
	}

	if c.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("CACHE_SIZE must not be negative, got %d", c.CacheSize))
	}

	c.Currency, err = currency.ParseISO(v.GetString("currency"))
	if err != nil {
		errs = append(errs, fmt.Errorf("CURRENCY must be an ISO 4217 code, got %q", v.GetString("currency")))
	}

	c.Location, err = time.LoadLocation(v.GetString("timezone"))
	if err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE must be a time zone name, got %q", v.GetString("timezone")))
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}

	return c, nil
}

// Now returns the current time in the configured location.
func (c Config) Now() time.Time {
	return time.Now().In(c.Location)
}
