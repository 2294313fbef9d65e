package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrNoListenersConfigured indicates that none of the HTTP, HTTPS and
	// gRPC addresses is set.
	ErrNoListenersConfigured = errors.New("no listener address configured")
	// ErrInvalidTLSConfigs indicates an HTTPS address without a certificate
	// or key file.
	ErrInvalidTLSConfigs = errors.New("invalid TLS configuration")
	// ErrInvalidStorageConfigs indicates an unknown storage driver or a
	// driver without its location (DSN, data dir, badger dir).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing hash key or unknown hasher).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrUnsupportedConfigFile indicates a config file whose extension is
	// neither JSON nor YAML.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
