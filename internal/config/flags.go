package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface. The value "off" marks the
// listener as disabled.
type NetAddress struct {
	Host     string
	Port     int
	Disabled bool
}

// parseFlags parses the server flags from args.
//
// Flags:
//
//	-env environment preset (staging, production)
//	-a http address in format [host]:[port]
//	-https-address https address in format [host]:[port], or off
//	-tls-cert / -tls-key PEM certificate and key for https
//	-grpc-address grpc address in format [host]:[port]
//	-metrics-address prometheus metrics address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-storage storage driver (files, postgres, sqlite, badger)
//	-d database DSN
//	-f file storage directory
//	-badger-dir badger directory
//	-gc-interval badger value-log GC interval
//	-c/-config json or yaml file path with configs
//	-password-hash-key password hash key
//	-password-hasher password hasher (hmac, argon2)
func parseFlags(args []string) (*StructuredConfig, error) {
	var httpAddress, httpsAddress, grpcAddress, metricsAddress NetAddress
	cfg := new(StructuredConfig)

	fs := flag.NewFlagSet("user-keeper-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.App.EnvName, "env", "", "Environment preset (staging, production)")
	fs.Var(&httpAddress, "a", "Net address host:port")
	fs.Var(&httpsAddress, "https-address", "Net https address host:port")
	fs.StringVar(&cfg.Server.TLSCertFile, "tls-cert", "", "TLS certificate file")
	fs.StringVar(&cfg.Server.TLSKeyFile, "tls-key", "", "TLS private key file")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc server address host:port")
	fs.Var(&metricsAddress, "metrics-address", "Net metrics address host:port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Storage.Driver, "storage", "", "Storage driver (files, postgres, sqlite, badger)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Files.DataDir, "f", "", "File storage directory")
	fs.StringVar(&cfg.Storage.Badger.Dir, "badger-dir", "", "Badger directory")
	fs.DurationVar(&cfg.Workers.GCInterval, "gc-interval", 0, "Badger value-log GC interval")
	fs.StringVar(&cfg.FilePath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&cfg.FilePath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&cfg.App.PasswordHashKey, "password-hash-key", "", "Password hash key")
	fs.StringVar(&cfg.App.PasswordHasher, "password-hasher", "", "Password hasher (hmac, argon2)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.HTTPSAddress = httpsAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()
	cfg.Server.MetricsAddress = metricsAddress.String()

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields an empty string.
func (a *NetAddress) String() string {
	if a.Disabled {
		return ListenerDisabled
	}
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	if strings.EqualFold(s, ListenerDisabled) {
		a.Disabled = true
		return nil
	}

	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && !strings.EqualFold(host, "localhost") && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from plain nanosecond numbers in JSON and YAML.
type Duration time.Duration
