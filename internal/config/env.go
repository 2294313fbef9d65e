// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads APP_*, SERVER_*, STORAGE_* and WORKERS_* variables into
// cfg. Unset variables leave fields zero so lower-priority sources can fill
// them during the merge.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}

	return nil
}
