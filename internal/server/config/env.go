package config

import "os"

// parseEnv overlays configuration from environment variables. Only variables
// that are actually set override the current values.
//
// Recognized variables:
//
//	ADDRESS       bind address (":1313")
//	DATABASE_DSN  PostgreSQL DSN
//	JWT_SECRET    HMAC signing key
//	APP_ENV       deployment environment ("development" relaxes cookie Secure)
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("APP_ENV"); ok {
		config.Env = v
	}
}
