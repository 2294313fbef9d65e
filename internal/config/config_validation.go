// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] can start a
// server: at least one listener, complete TLS material for HTTPS, a
// password hash key and a usable storage backend.
func (cfg *StructuredConfig) validate() error {
	s := cfg.Server
	if s.HTTPAddress == "" && s.HTTPSAddress == "" && s.GRPCAddress == "" {
		return ErrNoListenersConfigured
	}

	if s.HTTPSAddress != "" && (s.TLSCertFile == "" || s.TLSKeyFile == "") {
		return ErrInvalidTLSConfigs
	}

	if cfg.App.PasswordHashKey == "" {
		return fmt.Errorf("%w: password hash key is empty", ErrInvalidAppConfigs)
	}

	switch cfg.App.PasswordHasher {
	case HasherHMAC, HasherArgon2:
	default:
		return fmt.Errorf("%w: unknown password hasher %q", ErrInvalidAppConfigs, cfg.App.PasswordHasher)
	}

	st := cfg.Storage
	switch st.Driver {
	case DriverFiles:
		if st.Files.DataDir == "" {
			return fmt.Errorf("%w: files driver needs a data dir", ErrInvalidStorageConfigs)
		}
	case DriverPostgres, DriverSQLite:
		if st.DB.DSN == "" {
			return fmt.Errorf("%w: %s driver needs a DSN", ErrInvalidStorageConfigs, st.Driver)
		}
	case DriverBadger:
		if st.Badger.Dir == "" {
			return fmt.Errorf("%w: badger driver needs a directory", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, st.Driver)
	}

	return nil
}
