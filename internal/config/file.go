package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout of the configuration file. The same
// structure is decoded from JSON and YAML.
type fileConfig struct {
	App struct {
		EnvName         string `json:"env" yaml:"env"`
		PasswordHashKey string `json:"password_hash_key" yaml:"password_hash_key"`
		PasswordHasher  string `json:"password_hasher" yaml:"password_hasher"`
	} `json:"app" yaml:"app"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		HTTPSAddress   string   `json:"https_address" yaml:"https_address"`
		TLSCertFile    string   `json:"tls_cert_file" yaml:"tls_cert_file"`
		TLSKeyFile     string   `json:"tls_key_file" yaml:"tls_key_file"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		MetricsAddress string   `json:"metrics_address" yaml:"metrics_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`

	Storage struct {
		Driver string `json:"driver" yaml:"driver"`
		DB     struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
		Files struct {
			DataDir string `json:"data_dir" yaml:"data_dir"`
		} `json:"files" yaml:"files"`
		Badger struct {
			Dir string `json:"dir" yaml:"dir"`
		} `json:"badger" yaml:"badger"`
	} `json:"storage" yaml:"storage"`

	Workers struct {
		GCInterval Duration `json:"gc_interval" yaml:"gc_interval"`
	} `json:"workers" yaml:"workers"`
}

// parseFile reads a JSON (.json) or YAML (.yaml, .yml) configuration file.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	return fc.toStructuredConfig(), nil
}

func (fc fileConfig) toStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			EnvName:         fc.App.EnvName,
			PasswordHashKey: fc.App.PasswordHashKey,
			PasswordHasher:  fc.App.PasswordHasher,
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			HTTPSAddress:   fc.Server.HTTPSAddress,
			TLSCertFile:    fc.Server.TLSCertFile,
			TLSKeyFile:     fc.Server.TLSKeyFile,
			GRPCAddress:    fc.Server.GRPCAddress,
			MetricsAddress: fc.Server.MetricsAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Storage: Storage{
			Driver: fc.Storage.Driver,
			DB:     DB{DSN: fc.Storage.DB.DSN},
			Files:  Files{DataDir: fc.Storage.Files.DataDir},
			Badger: Badger{Dir: fc.Storage.Badger.Dir},
		},
		Workers: Workers{
			GCInterval: time.Duration(fc.Workers.GCInterval),
		},
	}
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	return d.set(v)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}

	return d.set(v)
}

func (d *Duration) set(v any) error {
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case int:
		*d = Duration(time.Duration(value))
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
	case nil:
		*d = 0
	default:
		return fmt.Errorf("invalid duration %v", v)
	}

	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
