package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_StagingDefaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, EnvStaging, cfg.App.EnvName)
	assert.Equal(t, "thisIsASecret", cfg.App.PasswordHashKey)
	assert.Equal(t, HasherHMAC, cfg.App.PasswordHasher)
	assert.Equal(t, ":3000", cfg.Server.HTTPAddress)
	assert.Equal(t, ":3001", cfg.Server.HTTPSAddress)
	assert.Equal(t, DriverFiles, cfg.Storage.Driver)
	assert.Equal(t, ".data", cfg.Storage.Files.DataDir)
}

func TestLoad_UnknownEnvFallsBackToStaging(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_ENV": "qa"})

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "qa", cfg.App.EnvName)
	assert.Equal(t, ":3000", cfg.Server.HTTPAddress)
}

func TestLoad_ProductionRequiresHashKey(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_ENV": EnvProduction})

	_, err := Load(nil)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
app:
  env: production
  password_hash_key: from-file
server:
  http_address: ":7000"
  grpc_address: ":7001"
  metrics_address: ":7002"
`)
	setEnvVars(t, map[string]string{
		"CONFIG":         path,
		"SERVER_ADDRESS": ":6000",
		"STORAGE_DRIVER": DriverSQLite,
	})

	cfg, err := Load([]string{"-a", ":8000", "-d", "users.db"})
	require.NoError(t, err)

	// flags beat env, env beats file, file beats preset
	assert.Equal(t, ":8000", cfg.Server.HTTPAddress)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "users.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":7001", cfg.Server.GRPCAddress)
	assert.Equal(t, ":7002", cfg.Server.MetricsAddress)
	assert.Equal(t, "from-file", cfg.App.PasswordHashKey)
	assert.Equal(t, ":5001", cfg.Server.HTTPSAddress)
}

func TestLoad_DisableListener(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_HTTPS_ADDRESS": "off"})

	cfg, err := Load([]string{"-grpc-address", "OFF", "-metrics-address", ":9090"})
	require.NoError(t, err)

	assert.Empty(t, cfg.Server.HTTPSAddress)
	assert.Empty(t, cfg.Server.GRPCAddress)
	assert.Equal(t, ":3000", cfg.Server.HTTPAddress)
	assert.Equal(t, ":9090", cfg.Server.MetricsAddress)
}

func TestLoad_AllListenersDisabled(t *testing.T) {
	clearEnvVars(t)

	_, err := Load([]string{"-a", "off", "-https-address", "off"})
	assert.ErrorIs(t, err, ErrNoListenersConfigured)
}

func TestLoad_InvalidFlag(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load([]string{"-a", "bogus"})
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		return &StructuredConfig{
			App:     App{PasswordHashKey: "k", PasswordHasher: HasherHMAC},
			Server:  Server{HTTPAddress: ":3000"},
			Storage: Storage{Driver: DriverFiles, Files: Files{DataDir: ".data"}},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *StructuredConfig)
		target error
	}{
		{name: "valid", mutate: func(c *StructuredConfig) {}},
		{name: "grpc only", mutate: func(c *StructuredConfig) {
			c.Server.HTTPAddress = ""
			c.Server.GRPCAddress = ":9090"
		}},
		{name: "no listeners", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, target: ErrNoListenersConfigured},
		{name: "https without cert", mutate: func(c *StructuredConfig) { c.Server.HTTPSAddress = ":3001" }, target: ErrInvalidTLSConfigs},
		{name: "empty hash key", mutate: func(c *StructuredConfig) { c.App.PasswordHashKey = "" }, target: ErrInvalidAppConfigs},
		{name: "unknown hasher", mutate: func(c *StructuredConfig) { c.App.PasswordHasher = "md5" }, target: ErrInvalidAppConfigs},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.Driver = "mongo" }, target: ErrInvalidStorageConfigs},
		{name: "files without dir", mutate: func(c *StructuredConfig) { c.Storage.Files.DataDir = "" }, target: ErrInvalidStorageConfigs},
		{name: "postgres without dsn", mutate: func(c *StructuredConfig) { c.Storage.Driver = DriverPostgres }, target: ErrInvalidStorageConfigs},
		{name: "badger without dir", mutate: func(c *StructuredConfig) { c.Storage.Driver = DriverBadger }, target: ErrInvalidStorageConfigs},
		{name: "sqlite with dsn", mutate: func(c *StructuredConfig) {
			c.Storage.Driver = DriverSQLite
			c.Storage.DB.DSN = "users.db"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.target == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.target)
		})
	}
}
