package config

// Environment names accepted by APP_ENV / -env.
const (
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// presets holds the lowest-priority defaults of every known environment.
// Production deliberately has no password hash key so one must be supplied.
var presets = map[string]StructuredConfig{
	EnvStaging: {
		App: App{
			EnvName:         EnvStaging,
			PasswordHashKey: "thisIsASecret",
			PasswordHasher:  HasherHMAC,
		},
		Server: Server{
			HTTPAddress:  ":3000",
			HTTPSAddress: ":3001",
			TLSCertFile:  "https/cert.pem",
			TLSKeyFile:   "https/key.pem",
		},
		Storage: Storage{
			Driver: DriverFiles,
			Files:  Files{DataDir: ".data"},
		},
	},
	EnvProduction: {
		App: App{
			EnvName:        EnvProduction,
			PasswordHasher: HasherHMAC,
		},
		Server: Server{
			HTTPAddress:  ":5000",
			HTTPSAddress: ":5001",
			TLSCertFile:  "https/cert.pem",
			TLSKeyFile:   "https/key.pem",
		},
		Storage: Storage{
			Driver: DriverFiles,
			Files:  Files{DataDir: ".data"},
		},
	},
}

// preset returns a copy of the preset registered for name, or the staging
// preset when name is unknown.
func preset(name string) *StructuredConfig {
	p, ok := presets[name]
	if !ok {
		p = presets[EnvStaging]
	}

	return &p
}
