// Package config handles loading and parsing application configuration.
// The config file path comes from, in priority order:
//  1. The CONFIG_PATH environment variable
//  2. The --config command-line flag
//
// A .env file in the working directory, when present, is loaded into the
// process environment first so that env:"..." overrides work the same
// way locally as they do in a container.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure. Every field maps to a key
// in the YAML file and can be overridden by the corresponding
// environment variable.
type Config struct {
	// Env controls log format and verbosity. Valid values: "dev",
	// "staging", "prod".
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	Storage Storage `yaml:"storage"`

	HTTPServer `yaml:"http_server"`
}

// Storage selects and parameterises the storage backend.
type Storage struct {
	// Driver is the storage backend to use: "sqlite" or "postgres".
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`

	// SQLitePath is the filesystem path to the SQLite .db file.
	// Only consulted when Driver is "sqlite".
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"storage/students.db"`

	// PostgresDSN is the lib/pq connection string, e.g.
	// "host=localhost user=app dbname=students sslmode=disable".
	// Only consulted when Driver is "postgres".
	PostgresDSN string `yaml:"postgres_dsn" env:"POSTGRES_DSN"`
}

// HTTPServer holds settings specific to the HTTP server.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8082".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`
}

// MustLoad reads, validates, and returns the application config.
// Following the usual Go convention, a function prefixed with "Must"
// terminates the program on failure; if it returns, the config is valid.
func MustLoad() *Config {
	loadDotEnv()

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flagPath := flag.String("config", "", "path to the configuration YAML file")
		flag.Parse()
		configPath = *flagPath
	}

	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}

// loadDotEnv populates the process environment from a .env file when one
// exists. Absence of the file is not an error: deployed environments set
// real environment variables instead.
func loadDotEnv() {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Fatalf("cannot load .env file: %s", err.Error())
	}
}
