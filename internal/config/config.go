// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-user-keeper server. It is populated by merging command-line flags,
// environment variables, an optional JSON or YAML file and the preset of the
// selected environment.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the environment name and password hashing settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the record store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener addresses, TLS material and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds settings of background maintenance workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// EnvName selects the environment preset ("staging" or "production").
	// Unknown names fall back to staging.
	// Env: APP_ENV
	EnvName string `env:"ENV"`

	// PasswordHashKey is the secret mixed into every password hash.
	// Must be kept confidential.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// PasswordHasher names the hashing algorithm: "hmac" (HMAC-SHA256) or
	// "argon2" (Argon2id).
	// Env: APP_PASSWORD_HASHER
	PasswordHasher string `env:"PASSWORD_HASHER"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the plaintext HTTP listener in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// HTTPSAddress is the TLS listener in "host:port" format.
	// Env: SERVER_HTTPS_ADDRESS
	HTTPSAddress string `env:"HTTPS_ADDRESS"`

	// TLSCertFile is the PEM certificate served by the HTTPS listener.
	// Env: SERVER_TLS_CERT_FILE
	TLSCertFile string `env:"TLS_CERT_FILE"`

	// TLSKeyFile is the PEM private key matching TLSCertFile.
	// Env: SERVER_TLS_KEY_FILE
	TLSKeyFile string `env:"TLS_KEY_FILE"`

	// GRPCAddress is the gRPC listener in "host:port" format.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// MetricsAddress is the listener serving Prometheus metrics on /metrics.
	// Env: SERVER_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`

	// RequestTimeout bounds reading a whole request. Zero disables it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of all record store backends.
type Storage struct {
	// Driver selects the backend: "files", "postgres", "sqlite" or "badger".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the directory of the JSON file store.
	Files Files `envPrefix:"FILES_"`

	// Badger holds the directory of the embedded key-value store.
	Badger Badger `envPrefix:"BADGER_"`
}

// DB holds connection settings for the relational database backends.
type DB struct {
	// DSN is the PostgreSQL connection string or the SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the JSON file store.
type Files struct {
	// DataDir is the root directory; records live in DataDir/<category>/<key>.json.
	// Env: STORAGE_FILES_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// Badger holds settings of the embedded Badger store.
type Badger struct {
	// Dir is the Badger data directory.
	// Env: STORAGE_BADGER_DIR
	Dir string `env:"DIR"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// GCInterval is the period of the Badger value-log GC. Zero disables it.
	// Env: WORKERS_GC_INTERVAL
	GCInterval time.Duration `env:"GC_INTERVAL"`
}

// Storage driver names.
const (
	DriverFiles    = "files"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverBadger   = "badger"
)

// Password hasher names.
const (
	HasherHMAC   = "hmac"
	HasherArgon2 = "argon2"
)

// GetStructuredConfig loads, merges, and validates the server configuration
// from the process arguments and environment.
func GetStructuredConfig() (*StructuredConfig, error) {
	return Load(os.Args[1:])
}

// Load builds the configuration from args and the environment. The first
// source holding a non-zero value for a field wins, in this order:
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file (path resolved from sources 1 and 2)
//  4. Environment preset (staging or production)
func Load(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(args).
		withEnv().
		withFile().
		withPreset().
		build()
	if err != nil {
		return nil, err
	}

	cfg.Server.dropDisabledListeners()
	return cfg, cfg.validate()
}

// ListenerDisabled switches off a listener that a higher-priority source or
// the preset would otherwise open, e.g. SERVER_HTTPS_ADDRESS=off. An empty
// value cannot do that because merging only fills zero fields.
const ListenerDisabled = "off"

func (s *Server) dropDisabledListeners() {
	for _, addr := range []*string{&s.HTTPAddress, &s.HTTPSAddress, &s.GRPCAddress, &s.MetricsAddress} {
		if strings.EqualFold(*addr, ListenerDisabled) {
			*addr = ""
		}
	}
}
